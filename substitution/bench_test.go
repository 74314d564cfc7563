package substitution_test

import (
	"os"
	"testing"

	"github.com/katalvlaran/lvlcrypt/ngram"
	"github.com/katalvlaran/lvlcrypt/substitution"
)

// BenchmarkSolve_1000Epochs measures a short search on the test paragraph.
func BenchmarkSolve_1000Epochs(b *testing.B) {
	f, err := os.Open("../testdata/english.txt")
	if err != nil {
		b.Fatalf("open corpus: %v", err)
	}
	m, err := ngram.Build(f, 3)
	f.Close()
	if err != nil {
		b.Fatalf("build model: %v", err)
	}

	key, _ := substitution.ParseKey("PHQGIUMEAYLNOFDXJKRCVSTZWB")
	ct := substitution.Encrypt(plaintext, key)
	opts := substitution.DefaultOptions()
	opts.Epochs = 1000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := substitution.Solve(ct, m, opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}
