package knowledgesource

import (
	"context"
	"fmt"
	"os"

	"github.com/yanqian/legal-assistant/internal/domain/knowledge"
)

// FileSource reads the knowledge document from the local filesystem.
type FileSource struct {
	path string
}

// NewFileSource constructs a file backed source.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the file path.
func (s *FileSource) Name() string {
	return s.path
}

// Read returns the file contents.
func (s *FileSource) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}
	return data, nil
}

var _ knowledge.Source = (*FileSource)(nil)
