package moderation

import (
	"context"
	"log/slog"
	"testing"

	"chat-screener/errors"
	"chat-screener/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var defaultCorpus = []string{"scam", "fraude", "estafa", "robo"}

func newTestScreener(t *testing.T, words []string) Screener {
	t.Helper()
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockILoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(words, nil).AnyTimes()
	return NewScreener(loader, DefaultThreshold, logs.GetLoggerFromLevel(slog.LevelDebug))
}

func TestScreener_Screen(t *testing.T) {
	screener := newTestScreener(t, defaultCorpus)

	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{name: "Exact match", input: "Este mensaje tiene scam", expected: "scam", found: true},
		{name: "Exact match fraude", input: "Cuidado con el fraude", expected: "fraude", found: true},
		{name: "Exact match estafa", input: "Es una estafa", expected: "estafa", found: true},
		{name: "Exact match robo", input: "Intento de robo", expected: "robo", found: true},
		{name: "Upper case", input: "ES UN SCAM", expected: "scam", found: true},
		{name: "Capitalized", input: "Fraude con mayúscula inicial", expected: "fraude", found: true},
		{name: "Inverted punctuation", input: "¡Es un scam!", expected: "scam", found: true},
		{name: "Trailing punctuation", input: "Fraude, cuidado.", expected: "fraude", found: true},
		{name: "Question marks", input: "¿Estafa?", expected: "estafa", found: true},
		{name: "Colon", input: "Robo: evítalo", expected: "robo", found: true},
		{name: "One extra letter", input: "Esto es un scaam", expected: "scam", found: true},
		{name: "Swapped letters", input: "fraued bancario", expected: "fraude", found: true},
		{name: "Token order wins", input: "Este es un mensaje sobre scam y fraude", expected: "scam", found: true},
		{name: "One substituted letter in scam", input: "voy a hacer un scan del documento", found: false},
		{name: "One substituted letter in robo", input: "vi un lobo", found: false},
		{name: "Two substituted letters in fraude", input: "el fraile reza", found: false},
		{name: "Unrelated words", input: "palabra muy diferente", found: false},
		{name: "Greeting", input: "hola mundo", found: false},
		{name: "Clean sentence", input: "Mensaje normal sin problemas", found: false},
		{name: "Fixture content", input: "Hola, este es un mensaje de prueba", found: false},
		{name: "Empty string", input: "", found: false},
		{name: "Whitespace only", input: "   \t\n", found: false},
		{name: "Punctuation only", input: "¡¿...?!", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)

			word, found, err := screener.Screen(context.Background(), tt.input)

			req.NoError(err)
			req.Equal(tt.found, found)
			req.Equal(tt.expected, word)
		})
	}
}

func TestScreener_Screen_CorpusOrderWithinToken(t *testing.T) {
	req := require.New(t)
	// "robo" and "robot" both score above the threshold against "robot",
	// the first entry of the corpus wins.
	screener := newTestScreener(t, []string{"robo", "robot"})

	word, found, err := screener.Screen(context.Background(), "un robot")

	req.NoError(err)
	req.True(found)
	req.Equal("robo", word)
}

func TestScreener_Screen_LowerCasesCorpus(t *testing.T) {
	req := require.New(t)
	screener := newTestScreener(t, []string{"SCAM"})

	word, found, err := screener.Screen(context.Background(), "es un scam")

	req.NoError(err)
	req.True(found)
	req.Equal("scam", word)
}

func TestScreener_Screen_LoaderError(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockILoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(nil, errors.CorpusUnavailable("missing.json", nil)).Times(1)
	screener := NewScreener(loader, DefaultThreshold, slog.Default())

	_, found, err := screener.Screen(context.Background(), "hola")

	req.False(found)
	req.ErrorIs(err, errors.ErrCorpusUnavailable)
}

func TestScreener_Screen_EmptyTextSkipsCorpus(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockILoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Times(0)
	screener := NewScreener(loader, DefaultThreshold, slog.Default())

	_, found, err := screener.Screen(context.Background(), "")

	req.NoError(err)
	req.False(found)
}

func TestScreener_Screen_ReloadsCorpusEveryCall(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockILoader(ctrl)
	gomock.InOrder(
		loader.EXPECT().Load(gomock.Any()).Return([]string{"scam"}, nil),
		loader.EXPECT().Load(gomock.Any()).Return([]string{"robo"}, nil),
	)
	screener := NewScreener(loader, DefaultThreshold, slog.Default())

	_, found, err := screener.Screen(context.Background(), "robo")
	req.NoError(err)
	req.False(found)

	word, found, err := screener.Screen(context.Background(), "robo")
	req.NoError(err)
	req.True(found)
	req.Equal("robo", word)
}

func TestScreener_Threshold_IsInclusive(t *testing.T) {
	req := require.New(t)
	// "fraued" vs "fraude" scores exactly 83.
	score := Similarity("fraued", "fraude")
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockILoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return([]string{"fraude"}, nil).Times(2)

	atScore := NewScreener(loader, score, slog.Default())
	_, found, err := atScore.Screen(context.Background(), "fraued")
	req.NoError(err)
	req.True(found)

	aboveScore := NewScreener(loader, score+1, slog.Default())
	_, found, err = aboveScore.Screen(context.Background(), "fraued")
	req.NoError(err)
	req.False(found)
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"scam", "scam", 100},
		{"scaam", "scam", 89},
		{"fraued", "fraude", 83},
		{"robot", "robo", 89},
		{"scan", "scam", 75},
		{"lobo", "robo", 75},
		{"rojo", "robo", 75},
		{"fraile", "fraude", 67},
		{"hola", "robo", 25},
		{"", "", 100},
		{"abc", "", 0},
		{"año", "año", 100},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, Similarity(tt.a, tt.b), "Similarity(%q, %q)", tt.a, tt.b)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"Hola, mundo!", []string{"hola", "mundo"}},
		{"  espacios   extra  ", []string{"espacios", "extra"}},
		{"¿Qué tal?", []string{"qué", "tal"}},
		{"e-mail", []string{"email"}},
		{"", nil},
	}
	for _, tt := range tests {
		got := Tokenize(tt.input)
		if len(tt.expected) == 0 {
			require.Empty(t, got)
			continue
		}
		require.Equal(t, tt.expected, got, "Tokenize(%q)", tt.input)
	}
}
