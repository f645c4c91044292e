// Package bench compares tagged prediction corpora against a gold
// corpus for the seqeval-bench command.
package bench

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	seqeval "github.com/jamesainslie/go-seqeval"
	"github.com/jamesainslie/go-seqeval/conll"
)

// System names one prediction corpus to evaluate.
type System struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Config describes a comparison run.
type Config struct {
	Gold    string   `yaml:"gold"`
	Systems []System `yaml:"systems"`
}

// LoadConfig reads a comparison run description from a YAML file.
// Relative corpus paths are resolved against the config file's
// directory so a config can be invoked from anywhere.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Gold == "" {
		return Config{}, errors.New("config missing gold corpus path")
	}
	if len(cfg.Systems) == 0 {
		return Config{}, errors.New("config lists no systems")
	}

	dir := filepath.Dir(path)
	if !filepath.IsAbs(cfg.Gold) {
		cfg.Gold = filepath.Join(dir, cfg.Gold)
	}
	for i, sys := range cfg.Systems {
		if sys.Name == "" {
			return Config{}, fmt.Errorf("system %d has no name", i)
		}
		if sys.Path == "" {
			return Config{}, fmt.Errorf("system %q has no path", sys.Name)
		}
		if !filepath.IsAbs(sys.Path) {
			cfg.Systems[i].Path = filepath.Join(dir, sys.Path)
		}
	}

	return cfg, nil
}

// Result holds one system's scores against the gold corpus.
type Result struct {
	System  string
	Metrics seqeval.Metrics
	ByLabel map[string]seqeval.Metrics
}

// Compare scores every system's predictions against the gold corpus and
// returns the results sorted by F1 descending; ties keep input order.
// Every prediction corpus must carry the same sentences as the gold
// corpus, token for token.
func Compare(goldPath string, systems []System) ([]Result, error) {
	goldSents, err := conll.ReadFile(goldPath)
	if err != nil {
		return nil, fmt.Errorf("loading gold corpus: %w", err)
	}
	gold := conll.Tags(goldSents)

	var results []Result
	for _, sys := range systems {
		predSents, err := conll.ReadFile(sys.Path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", sys.Name, err)
		}
		predicted := conll.Tags(predSents)

		m, err := seqeval.Score(gold, predicted)
		if err != nil {
			return nil, fmt.Errorf("scoring %s: %w", sys.Name, err)
		}

		// Shapes match once Score succeeds, so the token columns can be
		// compared directly. A mismatch means the corpora are not the
		// same text and the scores would be meaningless.
		for i := range goldSents {
			for j, token := range goldSents[i].Tokens {
				if predSents[i].Tokens[j] != token {
					return nil, fmt.Errorf("%s: sentence %d token %d is %q, gold has %q",
						sys.Name, i, j, predSents[i].Tokens[j], token)
				}
			}
		}

		byLabel, err := seqeval.ScoreByLabel(gold, predicted)
		if err != nil {
			return nil, fmt.Errorf("scoring %s by label: %w", sys.Name, err)
		}

		results = append(results, Result{
			System:  sys.Name,
			Metrics: m,
			ByLabel: byLabel,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Metrics.F1 > results[j].Metrics.F1
	})

	return results, nil
}
