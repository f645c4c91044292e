package conll

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Sentence
	}{
		{
			name:  "two sentences",
			input: "John\tB-PER\nSmith\tI-PER\nleft\tO\n\nEmpty\tO\n",
			want: []Sentence{
				{Tokens: []string{"John", "Smith", "left"}, Tags: []string{"B-PER", "I-PER", "O"}},
				{Tokens: []string{"Empty"}, Tags: []string{"O"}},
			},
		},
		{
			name:  "no trailing newline",
			input: "John\tB-PER",
			want: []Sentence{
				{Tokens: []string{"John"}, Tags: []string{"B-PER"}},
			},
		},
		{
			name:  "repeated blank lines",
			input: "a\tO\n\n\n\nb\tO\n\n",
			want: []Sentence{
				{Tokens: []string{"a"}, Tags: []string{"O"}},
				{Tokens: []string{"b"}, Tags: []string{"O"}},
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "only blank lines",
			input: "\n\n\n",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("Read() got %d sentences, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if len(got[i].Tokens) != len(tt.want[i].Tokens) {
					t.Fatalf("sentence %d has %d tokens, want %d", i, len(got[i].Tokens), len(tt.want[i].Tokens))
				}
				for j := range tt.want[i].Tokens {
					if got[i].Tokens[j] != tt.want[i].Tokens[j] {
						t.Errorf("sentence %d token %d = %q, want %q", i, j, got[i].Tokens[j], tt.want[i].Tokens[j])
					}
					if got[i].Tags[j] != tt.want[i].Tags[j] {
						t.Errorf("sentence %d tag %d = %q, want %q", i, j, got[i].Tags[j], tt.want[i].Tags[j])
					}
				}
			}
		})
	}
}

func TestRead_MalformedLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "no tab", input: "John B-PER\n"},
		{name: "three fields", input: "John\tNNP\tB-PER\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error for malformed line")
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gold.tsv")
	content := "John\tB-PER\nSmith\tI-PER\n\nBerlin\tB-LOC\n"

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	sentences, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(sentences) != 2 {
		t.Errorf("got %d sentences, want 2", len(sentences))
	}
}

func TestReadFile_NotFound(t *testing.T) {
	if _, err := ReadFile("nonexistent/gold.tsv"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	sentences := []Sentence{
		{Tokens: []string{"John", "Smith"}, Tags: []string{"B-PER", "I-PER"}},
		{Tokens: []string{"Berlin"}, Tags: []string{"B-LOC"}},
	}

	var buf bytes.Buffer
	if err := Write(&buf, sentences); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if len(got) != len(sentences) {
		t.Fatalf("round trip got %d sentences, want %d", len(got), len(sentences))
	}
	for i := range sentences {
		for j := range sentences[i].Tokens {
			if got[i].Tokens[j] != sentences[i].Tokens[j] || got[i].Tags[j] != sentences[i].Tags[j] {
				t.Errorf("sentence %d token %d = (%q, %q), want (%q, %q)",
					i, j, got[i].Tokens[j], got[i].Tags[j], sentences[i].Tokens[j], sentences[i].Tags[j])
			}
		}
	}
}

func TestWrite_CountMismatch(t *testing.T) {
	bad := []Sentence{{Tokens: []string{"a", "b"}, Tags: []string{"O"}}}

	var buf bytes.Buffer
	if err := Write(&buf, bad); err == nil {
		t.Error("expected error for token/tag count mismatch")
	}
}

func TestTags(t *testing.T) {
	sentences := []Sentence{
		{Tokens: []string{"John"}, Tags: []string{"B-PER"}},
		{Tokens: []string{"went", "home"}, Tags: []string{"O", "O"}},
	}

	tags := Tags(sentences)
	if len(tags) != 2 {
		t.Fatalf("Tags() got %d sentences, want 2", len(tags))
	}
	if tags[0][0] != "B-PER" {
		t.Errorf("tags[0][0] = %q, want B-PER", tags[0][0])
	}
	if len(tags[1]) != 2 {
		t.Errorf("tags[1] has %d entries, want 2", len(tags[1]))
	}
}
