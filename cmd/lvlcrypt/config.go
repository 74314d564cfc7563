package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlcrypt/substitution"
	"github.com/katalvlaran/lvlcrypt/vigenere"
)

// config mirrors the optional YAML file. Command-line flags override it.
//
//	ngrams: english_trigrams.txt
//	floor: total
//	seed: 42
//	substitution:
//	  epochs: 10000
//	  select: best
//	vigenere:
//	  max_key: 20
//	  iterations: 100
//	  stall: 10
type config struct {
	NGrams string `yaml:"ngrams"`
	Floor  string `yaml:"floor"`
	Seed   int64  `yaml:"seed"`

	Substitution substitutionConfig `yaml:"substitution"`
	Vigenere     vigenereConfig     `yaml:"vigenere"`
}

type substitutionConfig struct {
	Epochs int    `yaml:"epochs"`
	Select string `yaml:"select"`
}

type vigenereConfig struct {
	MaxKey     int `yaml:"max_key"`
	Iterations int `yaml:"iterations"`
	Stall      int `yaml:"stall"`
}

const defaultNGramFile = "english_trigrams.txt"

func defaultConfig() config {
	vo := vigenere.DefaultOptions()
	return config{
		NGrams: defaultNGramFile,
		Floor:  "total",
		Substitution: substitutionConfig{
			Epochs: substitution.DefaultEpochs,
			Select: "current",
		},
		Vigenere: vigenereConfig{
			MaxKey:     vo.MaxKeyLength,
			Iterations: vo.Iterations,
			Stall:      vo.StallLimit,
		},
	}
}

var errBadConfig = errors.New("lvlcrypt: invalid config")

// loadConfig reads path over the defaults. Keys absent from the file keep
// their default values.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %w", errBadConfig, path, err)
	}
	if _, err = parseSelection(cfg.Substitution.Select); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func parseSelection(s string) (substitution.Selection, error) {
	switch s {
	case "", "current":
		return substitution.SelectCurrent, nil
	case "best":
		return substitution.SelectBest, nil
	}
	return 0, fmt.Errorf("%w: unknown substitution select %q (want current or best)", errBadConfig, s)
}
