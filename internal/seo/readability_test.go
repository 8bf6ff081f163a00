package seo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("kata ", n))
}

func TestReadability(t *testing.T) {
	t.Parallel()

	tenWordSentence := "satu dua tiga empat lima enam tujuh delapan sembilan sepuluh. "

	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 100},
		{name: "short sentences", text: "Siswa belajar. Guru mengajar!", want: 100},
		{name: "long sentence", text: words(25) + ".", want: 97},
		{name: "very long sentence", text: words(35) + ".", want: 94},
		{name: "long paragraph", text: strings.Repeat(tenWordSentence, 13), want: 95},
		{name: "comma heavy", text: "a, b, c, d.", want: 95},
		{name: "clamped at zero", text: strings.Repeat(words(35)+".\n", 40), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Readability(tt.text))
		})
	}
}
