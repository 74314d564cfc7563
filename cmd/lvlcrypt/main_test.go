package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const corpusPath = "../../testdata/english.txt"

// run executes the root command with args and returns what it printed.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

// writeFile stores content under t.TempDir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// trigramTable builds a trigram table from the fixture corpus through the
// ngrams command and returns its path.
func trigramTable(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trigrams.txt")
	_, _, err := run(t, "ngrams", "-n", "3", "-o", path, corpusPath)
	require.NoError(t, err)
	return path
}

func TestNGrams_Stdout(t *testing.T) {
	in := writeFile(t, "corpus.txt", "abab")
	out, _, err := run(t, "ngrams", "-n", "2", in)
	require.NoError(t, err)
	assert.Equal(t, "AB 2\nBA 1\n", out)
}

func TestNGrams_BadWidth(t *testing.T) {
	in := writeFile(t, "corpus.txt", "abab")
	_, _, err := run(t, "ngrams", "-n", "0", in)
	require.Error(t, err)
}

func TestCaesar_Crack(t *testing.T) {
	table := trigramTable(t)
	in := writeFile(t, "secret.txt", "YMJ VZNHP GWTBS KTC")

	out, errOut, err := run(t, "caesar", "--ngrams", table, in)
	require.NoError(t, err)
	assert.Equal(t, "THE QUICK BROWN FOX\n", out)
	assert.Contains(t, errOut, "caesar: best shift")
}

func TestCaesar_KnownShift(t *testing.T) {
	in := writeFile(t, "secret.txt", "YMJ VZNHP GWTBS KTC\n")
	out, _, err := run(t, "caesar", "--shift", "5", in)
	require.NoError(t, err)
	assert.Equal(t, "THE QUICK BROWN FOX\n", out)
}

func TestCaesar_Stdin(t *testing.T) {
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetIn(strings.NewReader("Ymj"))
	root.SetArgs([]string{"caesar", "-s", "5", "-"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "The\n", out.String())
}

func TestCaesar_MissingFiles(t *testing.T) {
	_, _, err := run(t, "caesar", filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)

	in := writeFile(t, "secret.txt", "YMJ")
	_, _, err = run(t, "caesar", "--ngrams", filepath.Join(t.TempDir(), "absent.txt"), in)
	require.Error(t, err, "a missing n-gram table fails the command")
}

func TestVigenere_EncryptDecrypt(t *testing.T) {
	plain := writeFile(t, "plain.txt", "Attack at dawn!")
	out, _, err := run(t, "vigenere", "--encrypt", "--key", "lemon", plain)
	require.NoError(t, err)
	assert.Equal(t, "Lxfopv ef rnhr!\n", out)

	secret := writeFile(t, "secret.txt", out)
	out, _, err = run(t, "vigenere", "--key", "LEMON", secret)
	require.NoError(t, err)
	assert.Equal(t, "Attack at dawn!\n", out)
}

func TestVigenere_EncryptNeedsKey(t *testing.T) {
	plain := writeFile(t, "plain.txt", "Attack at dawn!")
	_, _, err := run(t, "vigenere", "--encrypt", plain)
	require.ErrorIs(t, err, errKeyRequired)
}

// TestVigenere_SeededRunsAgree checks that --seed makes the search reproducible.
func TestVigenere_SeededRunsAgree(t *testing.T) {
	table := trigramTable(t)
	corpus, err := os.ReadFile(corpusPath)
	require.NoError(t, err)

	plain := writeFile(t, "plain.txt", string(corpus[:1200]))
	secret, _, err := run(t, "vigenere", "-e", "-k", "CIPHER", plain)
	require.NoError(t, err)
	in := writeFile(t, "secret.txt", secret)

	first, errOut, err := run(t, "vigenere", "--ngrams", table, "--seed", "7", "--max-key", "10", in)
	require.NoError(t, err)
	second, _, err := run(t, "vigenere", "--ngrams", table, "--seed", "7", "--max-key", "10", in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, errOut, "vigenere: result")
	assert.Contains(t, errOut, "seed")
}

func TestSubstitution_ZeroEpochs(t *testing.T) {
	table := trigramTable(t)
	in := writeFile(t, "secret.txt", "Hello, World")

	out, _, err := run(t, "substitution", "--ngrams", table, "--epochs", "0", in)
	require.NoError(t, err)
	assert.Equal(t, "Hello, World\n", out, "no proposals leave the identity decoding")
}

func TestSubstitution_KnownKey(t *testing.T) {
	in := writeFile(t, "secret.txt", "Uryyb")
	// ROT13 as a decode alphabet.
	out, _, err := run(t, "substitution", "--key", "NOPQRSTUVWXYZABCDEFGHIJKLM", in)
	require.NoError(t, err)
	assert.Equal(t, "Hello\n", out)

	_, _, err = run(t, "substitution", "--key", "AACDEFGHIJKLMNOPQRSTUVWXYZ", in)
	require.Error(t, err, "duplicate letters are not a permutation")
}

func TestVerbose_LogsImprovements(t *testing.T) {
	table := trigramTable(t)
	in := writeFile(t, "secret.txt", "YMJ VZNHP GWTBS KTC")

	_, quiet, err := run(t, "caesar", "--ngrams", table, in)
	require.NoError(t, err)
	assert.NotContains(t, quiet, "caesar: new best")

	_, loud, err := run(t, "caesar", "-v", "--ngrams", table, in)
	require.NoError(t, err)
	assert.Contains(t, loud, "caesar: new best")
}
