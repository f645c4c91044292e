package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	seqeval "github.com/jamesainslie/go-seqeval"
	"github.com/jamesainslie/go-seqeval/conll"
)

func main() {
	goldPath := flag.String("gold", "", "Path to gold standard corpus (TSV)")
	predPath := flag.String("pred", "", "Path to predicted corpus (TSV)")
	byLabel := flag.Bool("by-label", false, "Print per-label metrics")
	chunks := flag.Bool("chunks", false, "Print extracted chunks from both corpora")

	flag.Parse()

	if *goldPath == "" || *predPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: seqeval-cli -gold GOLD.tsv -pred PRED.tsv [OPTIONS]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	goldSents, err := conll.ReadFile(*goldPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading gold corpus: %v\n", err)
		os.Exit(1)
	}
	predSents, err := conll.ReadFile(*predPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading predicted corpus: %v\n", err)
		os.Exit(1)
	}

	gold := conll.Tags(goldSents)
	predicted := conll.Tags(predSents)

	m, err := seqeval.Score(gold, predicted)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Score only checks shape. The corpora must also be the same text or
	// the numbers mean nothing.
	for i := range goldSents {
		for j, token := range goldSents[i].Tokens {
			if predSents[i].Tokens[j] != token {
				fmt.Fprintf(os.Stderr, "Error: sentence %d token %d is %q, gold has %q\n",
					i, j, predSents[i].Tokens[j], token)
				os.Exit(1)
			}
		}
	}

	fmt.Printf("Sentences: %d\n", len(gold))
	fmt.Printf("Precision: %.4f\n", m.Precision)
	fmt.Printf("Recall:    %.4f\n", m.Recall)
	fmt.Printf("F1:        %.4f\n", m.F1)
	fmt.Printf("(TP: %d, FP: %d, FN: %d)\n", m.TruePositives, m.FalsePositives, m.FalseNegatives)

	if *byLabel {
		labeled, err := seqeval.ScoreByLabel(gold, predicted)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("\n%-12s %-8s %-8s %-8s\n", "Label", "Prec", "Rec", "F1")
		for _, label := range sortedLabels(labeled) {
			lm := labeled[label]
			fmt.Printf("%-12s %-8.4f %-8.4f %-8.4f\n", label, lm.Precision, lm.Recall, lm.F1)
		}
	}

	if *chunks {
		fmt.Printf("\nGold chunks:\n")
		printChunks(seqeval.Extract(gold))
		fmt.Printf("\nPredicted chunks:\n")
		printChunks(seqeval.Extract(predicted))
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

func printChunks(set seqeval.ChunkSet) {
	chunks := make([]seqeval.Chunk, 0, len(set))
	for c := range set {
		chunks = append(chunks, c)
	}
	sort.Slice(chunks, func(i, j int) bool {
		if chunks[i].Sentence != chunks[j].Sentence {
			return chunks[i].Sentence < chunks[j].Sentence
		}
		if chunks[i].Start != chunks[j].Start {
			return chunks[i].Start < chunks[j].Start
		}
		return chunks[i].Label < chunks[j].Label
	})
	for _, c := range chunks {
		fmt.Printf("  sentence %d, tokens %d-%d: %s\n", c.Sentence, c.Start, c.End, c.Label)
	}
}
