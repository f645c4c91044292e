//go:build ignore

// Process the classic CoNLL-2003 shared task files into the two-column
// TSV corpus format read by the conll package. Keeps the token and the
// final (NER) column, drops -DOCSTART- document markers.
// Usage: go run ./scripts/process-conll2003.go
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jamesainslie/go-seqeval/conll"
)

func main() {
	inDir := "testdata/conll2003"
	outDir := "testdata/conll2003"

	splits := map[string]string{
		"eng.train": "train.tsv",
		"eng.testa": "valid.tsv",
		"eng.testb": "test.tsv",
	}

	for inName, outName := range splits {
		inFile := filepath.Join(inDir, inName)
		outFile := filepath.Join(outDir, outName)

		fmt.Printf("Processing %s...\n", inName)
		sentences, err := processSplit(inFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inFile, err)
			continue
		}

		if err := writeSplit(outFile, sentences); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outFile, err)
			continue
		}

		tokens := 0
		for _, s := range sentences {
			tokens += len(s.Tokens)
		}
		fmt.Printf("  -> %s (%d sentences, %d tokens)\n", outFile, len(sentences), tokens)
	}

	fmt.Println("\nDone! Corpus files created in testdata/conll2003/")
}

func processSplit(path string) ([]conll.Sentence, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	var (
		sentences []conll.Sentence
		current   conll.Sentence
	)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Document markers carry no annotation
		if strings.HasPrefix(line, "-DOCSTART-") {
			continue
		}

		// Blank line = end of sentence
		if line == "" {
			if len(current.Tokens) > 0 {
				sentences = append(sentences, current)
				current = conll.Sentence{}
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("malformed line %q", line)
		}
		current.Tokens = append(current.Tokens, fields[0])
		current.Tags = append(current.Tags, fields[len(fields)-1])
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning file: %w", err)
	}

	// Don't forget the last sentence if no trailing blank
	if len(current.Tokens) > 0 {
		sentences = append(sentences, current)
	}

	return sentences, nil
}

func writeSplit(path string, sentences []conll.Sentence) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	return conll.Write(file, sentences)
}
