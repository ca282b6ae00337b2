package knowledge

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/yanqian/legal-assistant/pkg/errors"
	"github.com/yanqian/legal-assistant/pkg/util"
)

// Error codes reported by Load.
const (
	CodeSourceUnavailable = "knowledge_source_unavailable"
	CodeMalformed         = "knowledge_malformed"
	CodeInvalid           = "knowledge_invalid"
)

var (
	// ErrEmptySection is reported when notary_info or quick_answers is absent or empty.
	ErrEmptySection = errors.New("notary_info or quick_answers section is empty")
	// ErrMissingDefault is reported when notary_info has no default entry.
	ErrMissingDefault = errors.New("notary_info has no default entry")
	// ErrDuplicateLocation is reported when two notary keys normalise to the same location.
	ErrDuplicateLocation = errors.New("notary_info has duplicate locations")
)

// Source provides the raw bytes of the knowledge document.
type Source interface {
	Name() string
	Read(ctx context.Context) ([]byte, error)
}

// Store holds the notary and quick answer tables. It is never mutated after
// construction, so concurrent readers need no locking.
type Store struct {
	notary   map[string]NotaryRecord
	answers  map[string]QuickAnswer
	loadedAt time.Time
}

// Empty returns the store used when the knowledge source cannot be loaded.
func Empty() *Store {
	return &Store{
		notary:  map[string]NotaryRecord{},
		answers: map[string]QuickAnswer{},
	}
}

// Load reads, decodes and validates the document behind src. Any failure
// yields no store at all; callers fall back to Empty.
func Load(ctx context.Context, src Source, format Format) (*Store, error) {
	data, err := src.Read(ctx)
	if err != nil {
		return nil, apperrors.Wrap(CodeSourceUnavailable, fmt.Sprintf("read knowledge source %s", src.Name()), err)
	}
	doc, err := Decode(data, format)
	if err != nil {
		return nil, apperrors.Wrap(CodeMalformed, fmt.Sprintf("knowledge source %s is malformed", src.Name()), err)
	}
	return NewStore(doc)
}

// NewStore validates doc and builds a store from it. Location keys are
// normalised the same way lookups are.
func NewStore(doc Document) (*Store, error) {
	if len(doc.NotaryInfo) == 0 || len(doc.QuickAnswers) == 0 {
		return nil, apperrors.Wrap(CodeInvalid, "knowledge document incomplete", ErrEmptySection)
	}

	notary := make(map[string]NotaryRecord, len(doc.NotaryInfo))
	for location, record := range doc.NotaryInfo {
		key := normalizeLocation(location)
		if _, dup := notary[key]; dup {
			return nil, apperrors.Wrap(CodeInvalid, fmt.Sprintf("notary location %q collides with another key", location), ErrDuplicateLocation)
		}
		notary[key] = record
	}
	if _, ok := notary[DefaultLocation]; !ok {
		return nil, apperrors.Wrap(CodeInvalid, "knowledge document incomplete", ErrMissingDefault)
	}

	answers := make(map[string]QuickAnswer, len(doc.QuickAnswers))
	for key, answer := range doc.QuickAnswers {
		answers[key] = answer
	}

	return &Store{
		notary:   notary,
		answers:  answers,
		loadedAt: util.NowUTC(),
	}, nil
}

// FindNotary returns the record for location, or the default record when the
// location is blank or unknown. An empty store yields the zero record.
func (s *Store) FindNotary(location string) NotaryRecord {
	key := normalizeLocation(location)
	if key == "" {
		return s.notary[DefaultLocation]
	}
	if record, ok := s.notary[key]; ok {
		return record
	}
	return s.notary[DefaultLocation]
}

// GetQuickAnswer returns the canned answer for key or NotFoundAnswer.
func (s *Store) GetQuickAnswer(key string) QuickAnswer {
	if answer, ok := s.answers[key]; ok {
		return answer
	}
	return NotFoundAnswer()
}

// Stats reports table sizes for health checks.
func (s *Store) Stats() Stats {
	return Stats{
		Loaded:        !s.loadedAt.IsZero(),
		NotaryEntries: len(s.notary),
		QuickAnswers:  len(s.answers),
		LoadedAt:      s.loadedAt,
	}
}
