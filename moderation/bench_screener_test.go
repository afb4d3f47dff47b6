package moderation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"chat-screener/mocks"

	"go.uber.org/mock/gomock"
)

// BenchmarkScreener_Screen measures a clean message against corpora of growing size,
// the worst case since every token is compared with every word.
func BenchmarkScreener_Screen(b *testing.B) {
	text := strings.Repeat("Hola, este es un mensaje de prueba ", 10)

	for _, size := range []int{4, 100, 1_000} {
		words := make([]string, size)
		for i := range words {
			words[i] = fmt.Sprintf("palabraprohibida%d", i)
		}

		b.Run(fmt.Sprintf("corpus_%d", size), func(b *testing.B) {
			ctrl := gomock.NewController(b)
			loader := mocks.NewMockILoader(ctrl)
			loader.EXPECT().Load(gomock.Any()).Return(words, nil).AnyTimes()
			screener := NewScreener(loader, DefaultThreshold, slog.Default())

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, found, _ := screener.Screen(context.Background(), text); found {
					b.Fatal("unexpected match")
				}
			}
		})
	}
}
