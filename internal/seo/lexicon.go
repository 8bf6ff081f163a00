package seo

import "strings"

// Lexicon carries the language-specific word lists and templates the engine uses.
type Lexicon struct {
	// Stopwords are dropped from slugs and keyword candidates.
	Stopwords []string
	// PowerWords raise the CTR score when they appear in a title.
	PowerWords []string
	// FallbackWithTitle describes an article that has a title but no content.
	// It may reference {title} and {brand}.
	FallbackWithTitle string
	// FallbackGeneric describes an article with neither title nor content.
	FallbackGeneric string
}

// IndonesianLexicon returns the default word lists for Indonesian school news.
func IndonesianLexicon() Lexicon {
	return Lexicon{
		Stopwords: []string{
			"yang", "dan", "di", "ke", "dari", "untuk", "dengan", "pada", "dalam", "ini",
			"itu", "adalah", "atau", "juga", "akan", "oleh", "sebagai", "karena", "tersebut",
			"bahwa", "para", "telah", "sudah", "bisa", "dapat", "ada", "tidak", "serta",
			"kami", "kita", "mereka", "saat", "lebih", "agar", "hingga", "sang", "si", "pun",
			"secara", "namun", "tetapi", "jika", "maka", "setelah", "sebelum", "antara",
			"yaitu", "yakni", "kepada", "bagi", "tentang", "seperti", "masih", "belum",
			"ia", "dia", "nya", "lah", "kah", "the", "a", "an", "of", "and", "to", "in",
		},
		PowerWords: []string{
			"terbaik", "juara", "prestasi", "nasional", "internasional", "gratis", "terbaru",
			"unggulan", "resmi", "lengkap", "panduan", "tips", "rahasia", "mudah", "penting",
			"inspiratif", "hebat", "sukses", "beasiswa", "eksklusif",
		},
		FallbackWithTitle: "Baca informasi lengkap tentang {title} di {brand}.",
		FallbackGeneric:   "Informasi terbaru seputar kegiatan sekolah di {brand}.",
	}
}

// withDefaults fills empty fields from the Indonesian lexicon.
func (l Lexicon) withDefaults() Lexicon {
	def := IndonesianLexicon()
	if len(l.Stopwords) == 0 {
		l.Stopwords = def.Stopwords
	}
	if len(l.PowerWords) == 0 {
		l.PowerWords = def.PowerWords
	}
	if strings.TrimSpace(l.FallbackWithTitle) == "" {
		l.FallbackWithTitle = def.FallbackWithTitle
	}
	if strings.TrimSpace(l.FallbackGeneric) == "" {
		l.FallbackGeneric = def.FallbackGeneric
	}
	return l
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

func foldedList(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
