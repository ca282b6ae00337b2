package knowledge

import "time"

// DefaultLocation is the notary key used when a location is unknown.
const DefaultLocation = "default"

// NotaryRecord describes the notary service available for one location.
type NotaryRecord struct {
	Nearest  string `json:"nearest" yaml:"nearest"`
	WaitTime string `json:"wait_time" yaml:"wait_time"`
	StateFee string `json:"state_fee" yaml:"state_fee"`
}

// QuickAnswer is a canned answer shown for a predefined question button.
type QuickAnswer struct {
	Title  string `json:"title" yaml:"title"`
	Answer string `json:"answer" yaml:"answer"`
}

// Sentinel returned for unknown quick answer keys.
const (
	notFoundTitle  = "Error"
	notFoundAnswer = "Selected question type not found."
)

// NotFoundAnswer returns the answer given for unknown quick answer keys.
func NotFoundAnswer() QuickAnswer {
	return QuickAnswer{Title: notFoundTitle, Answer: notFoundAnswer}
}

// Document is the on-disk layout of the knowledge source.
type Document struct {
	NotaryInfo   map[string]NotaryRecord `json:"notary_info" yaml:"notary_info"`
	QuickAnswers map[string]QuickAnswer  `json:"quick_answers" yaml:"quick_answers"`
}

// Stats summarises the loaded tables.
type Stats struct {
	Loaded        bool      `json:"loaded"`
	NotaryEntries int       `json:"notaryEntries"`
	QuickAnswers  int       `json:"quickAnswers"`
	LoadedAt      time.Time `json:"loadedAt"`
}
