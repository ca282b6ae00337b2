package legal

import "github.com/yanqian/legal-assistant/internal/domain/knowledge"

// NoFilePlaceholder is echoed as the file name when no upload was sent.
const NoFilePlaceholder = "no file uploaded, sample analysis:"

var demoRisks = [...]string{
	"Clause 3: vague obligations (DEMO).",
	"Clause 7: one-sided penalty established (DEMO).",
	"Clause 9: no liability stated for non-performance (DEMO).",
}

// DemoRisks returns a fresh copy of the canned risk list used by AnalyzeRisk.
func DemoRisks() []string {
	risks := make([]string, len(demoRisks))
	copy(risks, demoRisks[:])
	return risks
}

// StatusSuccess marks successful document and risk responses.
const StatusSuccess = "success"

// DocumentRequest asks for a generated legal document template. Nil fields
// were absent from the request; empty strings are accepted.
type DocumentRequest struct {
	Type   *string `json:"type"`
	Client *string `json:"client"`
}

// DocumentResponse carries the generated document.
type DocumentResponse struct {
	Status       string `json:"status"`
	Document     string `json:"document"`
	DocumentHTML string `json:"documentHtml,omitempty"`
}

// RiskResponse is the demo contract analysis.
type RiskResponse struct {
	Status   string   `json:"status"`
	FileName string   `json:"fileName"`
	Risks    []string `json:"risks"`
}

// ChatRequest is a free-form legal question.
type ChatRequest struct {
	Question string `json:"question"`
}

// ChatResponse carries the model answer.
type ChatResponse struct {
	Answer string `json:"answer"`
}

// QuickChatRequest selects a canned answer.
type QuickChatRequest struct {
	Key string `json:"key"`
}

// QuickChatResponse mirrors knowledge.QuickAnswer on the wire.
type QuickChatResponse = knowledge.QuickAnswer

// NotaryRequest asks for notary information near a location.
type NotaryRequest struct {
	Location string `json:"location"`
}

// NotaryResponse mirrors knowledge.NotaryRecord on the wire.
type NotaryResponse = knowledge.NotaryRecord

// Health summarises readiness of the shared dependencies.
type Health struct {
	Status    string          `json:"status"`
	Gateway   string          `json:"gateway"`
	Knowledge knowledge.Stats `json:"knowledge"`
}
