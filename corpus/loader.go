//go:generate go run go.uber.org/mock/mockgen -source=loader.go -destination=../mocks/mock_corpus_loader.go -package=mocks
package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chat-screener/errors"

	"github.com/gabriel-vasile/mimetype"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when no corpus location is configured.
var DefaultPath = filepath.Join("data", "corpus_filter.json")

// ILoader returns the banned word list. Implementations must not cache:
// the list can be edited while the service runs.
type ILoader interface {
	Load(ctx context.Context) ([]string, error)
}

// FileLoader reads the corpus document from disk on every call.
type FileLoader struct {
	path string
}

func NewFileLoader(path string) FileLoader {
	if path == "" {
		path = DefaultPath
	}
	return FileLoader{path: path}
}

func (l FileLoader) Path() string {
	return l.path
}

// document is the expected shape, whatever the encoding.
type document struct {
	BannedWords *[]string `json:"banned_words" yaml:"banned_words"`
}

// Load reads and parses the corpus file.
// A missing or unreadable file is ErrCorpusUnavailable, bad content is ErrCorpusMalformed.
func (l FileLoader) Load(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.CorpusUnavailable(l.path, err)
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, errors.CorpusUnavailable(l.path, err)
	}

	var doc document
	switch l.format(data) {
	case formatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, errors.CorpusMalformed(l.path, err)
	}
	if doc.BannedWords == nil {
		return nil, errors.CorpusMalformed(l.path, fmt.Errorf("missing 'banned_words' list"))
	}
	return *doc.BannedWords, nil
}

type format int

const (
	formatJSON format = iota
	formatYAML
)

// format trusts the extension first, then sniffs the content.
func (l FileLoader) format(data []byte) format {
	switch strings.ToLower(filepath.Ext(l.path)) {
	case ".json":
		return formatJSON
	case ".yaml", ".yml":
		return formatYAML
	}
	if mimetype.Detect(data).Is("application/json") {
		return formatJSON
	}
	return formatYAML
}
