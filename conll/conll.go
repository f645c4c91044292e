// Package conll reads and writes the two-column corpus format used to
// distribute token-level annotation: one token and its tag per line,
// separated by a tab, with a blank line between sentences.
package conll

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentence holds one sentence's tokens and their index-aligned tags.
type Sentence struct {
	Tokens []string
	Tags   []string
}

// Read parses sentences from r. Each non-blank line carries exactly two
// tab-separated fields, token then tag; a blank line ends the current
// sentence. A missing trailing blank line and repeated blank lines are
// both accepted.
func Read(r io.Reader) ([]Sentence, error) {
	var sentences []Sentence
	var current Sentence

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()

		if strings.TrimSpace(text) == "" {
			if len(current.Tokens) > 0 {
				sentences = append(sentences, current)
				current = Sentence{}
			}
			continue
		}

		fields := strings.Split(text, "\t")
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want 2 tab-separated fields, got %d", line, len(fields))
		}

		current.Tokens = append(current.Tokens, fields[0])
		current.Tags = append(current.Tags, fields[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	if len(current.Tokens) > 0 {
		sentences = append(sentences, current)
	}

	return sentences, nil
}

// ReadFile parses sentences from the file at path.
func ReadFile(path string) ([]Sentence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer func() { _ = f.Close() }()

	sentences, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return sentences, nil
}

// Write renders sentences to w in the format Read parses. Sentences
// whose token and tag counts disagree are rejected.
func Write(w io.Writer, sentences []Sentence) error {
	bw := bufio.NewWriter(w)

	for i, s := range sentences {
		if len(s.Tokens) != len(s.Tags) {
			return fmt.Errorf("sentence %d: %d tokens but %d tags", i, len(s.Tokens), len(s.Tags))
		}
		if i > 0 {
			fmt.Fprintln(bw)
		}
		for j, token := range s.Tokens {
			fmt.Fprintf(bw, "%s\t%s\n", token, s.Tags[j])
		}
	}

	return bw.Flush()
}

// Tags projects just the tag sequences, the dataset shape the scoring
// functions consume.
func Tags(sentences []Sentence) [][]string {
	out := make([][]string, len(sentences))
	for i, s := range sentences {
		out[i] = s.Tags
	}
	return out
}
