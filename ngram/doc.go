// Package ngram implements the n-gram language model that drives every
// key-free search in lvlcrypt.
//
// 🚀 What is an n-gram model?
//
//	A table of fixed-length letter sequences ("THE", "ING", …) with their
//	corpus counts. Counts are turned into natural-log probabilities
//	log(count/total); a text's score is the sum of the log-probabilities of
//	every n-letter window of its canonical form. Windows never seen in the
//	corpus get a fixed floor value. Higher scores mean "more English-like".
//
// ✨ Key features:
//   - Load / LoadFile: parse the "<ngram> <count>" corpus format.
//   - New: build from an in-memory count table.
//   - Count / Build: derive a table from raw corpus text.
//   - WriteTo: write a table back in the corpus format.
//   - WithFloorPolicy: choose how unseen n-grams are valued.
//
// ⚙️ Usage:
//
//	m, err := ngram.LoadFile("english_trigrams.txt")
//	if err != nil {
//	  // ErrIO, ErrParse or ErrDegenerateModel
//	}
//	s := m.Score("Attack at dawn")
//
// Corpus format:
//
//	THE 12345
//	AND 6789
//	...
//
// One record per line, two whitespace-separated fields, all grams the same
// length, no header. Blank lines are ignored.
//
// Performance:
//
//   - Score: O(len(text)) time, one map lookup per window, no allocation
//     beyond canonicalization.
//   - A *Model is immutable after construction and safe for concurrent use.
package ngram
