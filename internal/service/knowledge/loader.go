package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sandevgo/footix/internal/core"
	"github.com/sandevgo/footix/pkg/log"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk layout of a knowledge file.
type Document struct {
	Entries []core.Entry `json:"entries" yaml:"entries"`
}

// FileSource reads knowledge entries from a YAML or JSON file. The format is
// picked from the extension; anything other than .json is parsed as YAML.
type FileSource struct {
	path string
	mu   sync.RWMutex
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Path() string {
	return s.path
}

func (s *FileSource) LoadEntries(ctx context.Context) ([]core.Entry, error) {
	s.mu.RLock()
	data, err := os.ReadFile(s.path)
	s.mu.RUnlock()

	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("knowledge file not found (run 'footix install' to create one): %w", err)
		}
		return nil, fmt.Errorf("failed to read knowledge file: %w", err)
	}

	doc, err := decode(s.path, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse knowledge file %s: %w", s.path, err)
	}

	log.FromCtx(ctx).Debug().Str("path", s.path).Int("entries", len(doc.Entries)).Msg("loaded knowledge file")
	return doc.Entries, nil
}

func (s *FileSource) SaveEntries(ctx context.Context, entries []core.Entry) error {
	data, err := encode(s.path, Document{Entries: entries})
	if err != nil {
		return fmt.Errorf("failed to encode knowledge file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create knowledge directory: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write knowledge file: %w", err)
	}
	return nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

func decode(path string, data []byte) (Document, error) {
	var doc Document
	if isJSON(path) {
		err := json.Unmarshal(data, &doc)
		return doc, err
	}
	err := yaml.Unmarshal(data, &doc)
	return doc, err
}

func encode(path string, doc Document) ([]byte, error) {
	if isJSON(path) {
		return json.MarshalIndent(doc, "", "  ")
	}
	return yaml.Marshal(doc)
}
