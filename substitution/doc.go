// Package substitution breaks monoalphabetic substitution ciphers by
// stochastic hill climbing over letter permutations.
//
// Key:
//
//	A Key is a bijection A–Z → A–Z in the decode direction: Key[c] is the
//	plaintext letter for ciphertext letter c. It is a small value type; the
//	only mutation is Swap, which returns a new Key, so bijectivity holds by
//	construction. Key.Inverse is the encryption alphabet.
//
// Search (Metropolis rule, temperature fixed at 1):
//  1. current := identity, best := identity.
//  2. Each epoch draw two letters a, b uniformly (a == b allowed: no-op swap).
//  3. candidate := current.Swap(a, b); score Decode(text, candidate).
//  4. Accept if candidate > current, else with probability exp(candidate − current).
//  5. Track best-seen separately; it changes only on strict improvement.
//  6. Stop after Options.Epochs epochs. No convergence test, no cooling.
//
// Options.Selection decides what is returned: the state live at budget
// exhaustion (SelectCurrent, default) or the best state ever visited
// (SelectBest).
//
// Complexity: O(Epochs · len(text)).
package substitution
