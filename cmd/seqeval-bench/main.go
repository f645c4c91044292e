package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	seqeval "github.com/jamesainslie/go-seqeval"
	"github.com/jamesainslie/go-seqeval/internal/bench"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to comparison config (YAML)")
		goldPath   = flag.String("gold", "", "Path to gold standard corpus (TSV)")
		preds      = flag.String("pred", "", "Comma-separated prediction corpus paths")
		byLabel    = flag.Bool("by-label", false, "Print per-label metrics for each system")
	)
	flag.Parse()

	if *configPath == "" && (*goldPath == "" || *preds == "") {
		fmt.Fprintln(os.Stderr, "error: -config or both -gold and -pred required")
		flag.Usage()
		os.Exit(1)
	}

	gold := *goldPath
	var systems []bench.System

	if *configPath != "" {
		cfg, err := bench.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
			os.Exit(1)
		}
		gold = cfg.Gold
		systems = cfg.Systems
	} else {
		for _, path := range strings.Split(*preds, ",") {
			path = strings.TrimSpace(path)
			if path == "" {
				continue
			}
			name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			systems = append(systems, bench.System{Name: name, Path: path})
		}
		if len(systems) == 0 {
			fmt.Fprintln(os.Stderr, "error: -pred lists no corpus paths")
			os.Exit(1)
		}
	}

	results, err := bench.Compare(gold, systems)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Comparing %d systems against %s\n", len(systems), gold)
	fmt.Println(strings.Repeat("-", 66))
	fmt.Printf("%-20s %-8s %-8s %-8s %-5s %-5s %-5s\n", "System", "Prec", "Rec", "F1", "TP", "FP", "FN")
	for _, r := range results {
		fmt.Printf("%-20s %-8.4f %-8.4f %-8.4f %-5d %-5d %-5d\n",
			r.System, r.Metrics.Precision, r.Metrics.Recall, r.Metrics.F1,
			r.Metrics.TruePositives, r.Metrics.FalsePositives, r.Metrics.FalseNegatives)
	}
	fmt.Println(strings.Repeat("-", 66))
	fmt.Printf("Best: %s (F1: %.4f)\n", results[0].System, results[0].Metrics.F1)

	if *byLabel {
		for _, r := range results {
			fmt.Printf("\n%s by label:\n", r.System)
			fmt.Printf("%-12s %-8s %-8s %-8s\n", "Label", "Prec", "Rec", "F1")
			for _, label := range sortedLabels(r.ByLabel) {
				lm := r.ByLabel[label]
				fmt.Printf("%-12s %-8.4f %-8.4f %-8.4f\n", label, lm.Precision, lm.Recall, lm.F1)
			}
		}
	}
}

func sortedLabels(m map[string]seqeval.Metrics) []string {
	labels := make([]string, 0, len(m))
	for label := range m {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
