package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"chat-screener/errors"

	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileLoader_Load(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		expected []string
	}{
		{
			name:     "JSON corpus",
			file:     "corpus.json",
			content:  `{"banned_words": ["scam", "fraude", "estafa", "robo"]}`,
			expected: []string{"scam", "fraude", "estafa", "robo"},
		},
		{
			name:     "YAML corpus",
			file:     "corpus.yaml",
			content:  "banned_words:\n  - scam\n  - robo\n",
			expected: []string{"scam", "robo"},
		},
		{
			name:     "Sniffed JSON without extension",
			file:     "corpus",
			content:  `{"banned_words": ["fraude"]}`,
			expected: []string{"fraude"},
		},
		{
			name:     "Sniffed YAML without extension",
			file:     "corpus.txt",
			content:  "banned_words:\n  - estafa\n",
			expected: []string{"estafa"},
		},
		{
			name:     "Empty list is valid",
			file:     "corpus.json",
			content:  `{"banned_words": []}`,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			loader := NewFileLoader(writeCorpus(t, tt.file, tt.content))

			words, err := loader.Load(context.Background())

			req.NoError(err)
			req.Equal(tt.expected, words)
		})
	}
}

func TestFileLoader_Load_FileNotFound(t *testing.T) {
	req := require.New(t)
	loader := NewFileLoader(filepath.Join(t.TempDir(), "missing.json"))

	_, err := loader.Load(context.Background())

	req.ErrorIs(err, errors.ErrCorpusUnavailable)
	req.ErrorIs(err, os.ErrNotExist)
}

func TestFileLoader_Load_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "Invalid JSON", file: "corpus.json", content: "{ invalid json content "},
		{name: "Missing field", file: "corpus.json", content: `{"words": ["scam"]}`},
		{name: "Wrong element type", file: "corpus.json", content: `{"banned_words": [1, 2]}`},
		{name: "Not a list", file: "corpus.json", content: `{"banned_words": "scam"}`},
		{name: "Invalid YAML", file: "corpus.yml", content: "banned_words: [scam"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			loader := NewFileLoader(writeCorpus(t, tt.file, tt.content))

			_, err := loader.Load(context.Background())

			req.ErrorIs(err, errors.ErrCorpusMalformed)
		})
	}
}

func TestFileLoader_Load_RereadsOnEveryCall(t *testing.T) {
	req := require.New(t)
	path := writeCorpus(t, "corpus.json", `{"banned_words": ["scam"]}`)
	loader := NewFileLoader(path)

	first, err := loader.Load(context.Background())
	req.NoError(err)
	req.Equal([]string{"scam"}, first)

	req.NoError(os.WriteFile(path, []byte(`{"banned_words": ["robo"]}`), 0o644))

	second, err := loader.Load(context.Background())
	req.NoError(err)
	req.Equal([]string{"robo"}, second)
}

func TestNewFileLoader_DefaultPath(t *testing.T) {
	require.Equal(t, DefaultPath, NewFileLoader("").Path())
}
