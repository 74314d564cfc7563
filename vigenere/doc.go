// Package vigenere implements the Vigenère cipher and a key-free attack on it.
//
// Cipher arithmetic:
//
//	A position counter i advances on letters only; punctuation, digits and
//	whitespace pass through without consuming a key letter. For the i-th
//	letter, k = key[i mod len(key)] − 'A' and
//	  Encrypt: c = (p + k) mod 26
//	  Decrypt: p = (c − k) mod 26
//	re-based to the original letter's case. Encrypt and Decrypt are exact
//	inverses for any fixed key.
//
// Attack, in two stages:
//
//  1. Period estimation (GuessPeriod). For each candidate period p in
//     [1, maxPeriod) split the canonical text into p interleaved slices,
//     average their indices of coincidence, and keep the period with the
//     highest average (ties → lowest p). Multiples of the true key length
//     score just as high, so a multiple may be returned; no correction is
//     attempted.
//
//  2. Key search (Solve). Start from "AA…A" (shift 0 everywhere). Each outer
//     iteration picks a random key position, tries all 26 letters there,
//     keeps the best, and accepts it only if it beats the global best.
//     Consecutive non-improving iterations are counted; once the count
//     exceeds Options.StallLimit the search stops early.
//
// Index of coincidence here is normalized by the alphabet size:
//
//	IOC = 26 · Σ c·(c−1) / (N·(N−1))
//
// English text is ≈1.73 (0.0667 unnormalized); uniformly random text ≈1.0
// (0.0385 unnormalized).
package vigenere
