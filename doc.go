// Package lvlcrypt is a toolbox for breaking classical ciphers by statistics
// alone: no key, no crib, just a model of what English looks like.
//
// 🚀 What is lvlcrypt?
//
//	A small, deterministic-by-seed library that brings together:
//		• Text primitives: canonical A–Z text, case-preserving rotation
//		• Scoring: n-gram log-probability models, chi-squared letter frequency
//		• Caesar: exhaustive search over all 26 shifts
//		• Substitution: Metropolis hill climbing over letter permutations
//		• Vigenère: index-of-coincidence period estimate + coordinate key search
//
// ✨ Why lvlcrypt?
//
//   - One scoring contract – every scorer answers "higher is more English"
//   - Reproducible – every stochastic search takes a seed or a *rand.Rand
//   - Observable – solvers accept a *zap.Logger and report each improvement
//
// Packages:
//
//	alphabet/       canonicalization, rotation and letter helpers
//	score/          Scorer interface, chi-squared letter-frequency scorer
//	ngram/          n-gram model: load, build from a corpus, score
//	caesar/         shift cipher and exhaustive solver
//	substitution/   permutation keys and the hill-climbing solver
//	vigenere/       Vigenère cipher, period estimation, key search
//	cmd/lvlcrypt    command-line front end
//
// Quick example:
//
//	model, _ := ngram.LoadFile("english_trigrams.txt")
//	res, _ := caesar.Solve("YMJ VZNHP GWTBS KTC", model, caesar.DefaultOptions())
//	fmt.Println(res.Text, res.Shift) // THE QUICK BROWN FOX 5
//
// Heuristics fail gracefully: short or unusual texts may not be recovered,
// and the period estimate can land on a multiple of the true key length.
//
//	go install github.com/katalvlaran/lvlcrypt/cmd/lvlcrypt@latest
package lvlcrypt
