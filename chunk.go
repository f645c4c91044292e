package seqeval

import "strings"

// Chunk is a single labeled span: the index of the sentence that
// produced it, the inclusive token range within that sentence, and the
// span label. Two chunks are equal iff all four fields are equal, so
// Chunk is usable directly as a map key.
type Chunk struct {
	Sentence int
	Start    int
	End      int
	Label    string
}

// ChunkSet is an unordered collection of unique chunks.
type ChunkSet map[Chunk]struct{}

// Contains reports whether c is in the set.
func (s ChunkSet) Contains(c Chunk) bool {
	_, ok := s[c]
	return ok
}

// openChunk tracks the span currently being built while scanning a
// sentence. active distinguishes "no open span" from a span starting at
// token 0.
type openChunk struct {
	active bool
	start  int
	label  string
}

// splitTag parses a BIO tag into its marker and label. Tags split at
// the first hyphen only, so labels may themselves contain hyphens
// ("B-geo-loc" is marker "B", label "geo-loc"). Anything that does not
// split into two parts, including plain "O", is the outside marker.
func splitTag(tag string) (marker, label string) {
	if i := strings.Index(tag, "-"); i >= 0 {
		return tag[:i], tag[i+1:]
	}
	return "O", ""
}

// Extract converts a dataset of per-token BIO tags, one tag slice per
// sentence, into the set of labeled spans it encodes.
//
// Tags are scanned left to right within each sentence. "B-X" closes any
// open span at the previous token and opens a new span labeled X at the
// current one; "O" closes any open span; "I-X" continues: it neither
// closes nor opens, and its label is not compared against the open
// span's label, so the span keeps the label it was opened with. A span
// still open when the sentence ends is closed at the last token. Spans
// never cross sentence boundaries.
//
// Malformed tags never produce an error: a tag with no hyphen behaves
// as "O", and a marker other than "B" or "I" closes like "O". Extract
// is a pure function and is safe for concurrent use.
func Extract(dataset [][]string) ChunkSet {
	chunks := make(ChunkSet)

	for i, sentence := range dataset {
		var open openChunk

		for j, tag := range sentence {
			marker, label := splitTag(tag)

			switch marker {
			case "B":
				if open.active {
					chunks[Chunk{Sentence: i, Start: open.start, End: j - 1, Label: open.label}] = struct{}{}
				}
				open = openChunk{active: true, start: j, label: label}
			case "I":
				// Continuation only. The open span, if any, stays open
				// with its original label.
			default:
				if open.active {
					chunks[Chunk{Sentence: i, Start: open.start, End: j - 1, Label: open.label}] = struct{}{}
					open = openChunk{}
				}
			}
		}

		if open.active {
			chunks[Chunk{Sentence: i, Start: open.start, End: len(sentence) - 1, Label: open.label}] = struct{}{}
		}
	}

	return chunks
}
