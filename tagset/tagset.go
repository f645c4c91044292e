// Package tagset provides an immutable vocabulary mapping BIO tag
// strings to the class indices a sequence model emits and back.
package tagset

import "fmt"

// Tagset is a bidirectional tag/class-index mapping. Indices are dense,
// starting at 0, assigned in construction order. A Tagset is immutable
// after New returns and is safe for concurrent use.
type Tagset struct {
	ids  map[string]int
	tags []string
}

// New builds a Tagset from tags, assigning class indices in slice
// order. Duplicate tags keep their first index.
func New(tags []string) *Tagset {
	t := &Tagset{
		ids:  make(map[string]int, len(tags)),
		tags: make([]string, 0, len(tags)),
	}

	for _, tag := range tags {
		if _, ok := t.ids[tag]; ok {
			continue
		}
		t.ids[tag] = len(t.tags)
		t.tags = append(t.tags, tag)
	}

	return t
}

// ID returns the class index for tag.
func (t *Tagset) ID(tag string) (int, bool) {
	id, ok := t.ids[tag]
	return id, ok
}

// Tag returns the tag string for class index id.
func (t *Tagset) Tag(id int) (string, bool) {
	if id < 0 || id >= len(t.tags) {
		return "", false
	}
	return t.tags[id], true
}

// Len returns the number of distinct tags.
func (t *Tagset) Len() int {
	return len(t.tags)
}

// Tags returns the tags in class-index order. The returned slice is a
// copy.
func (t *Tagset) Tags() []string {
	out := make([]string, len(t.tags))
	copy(out, t.tags)
	return out
}

// Decode maps a padded matrix of class indices back to tag strings,
// truncating row i to its true length lengths[i]. Rows shorter than
// their stated length, a lengths slice that does not match the row
// count, or a class index outside the vocabulary are reported as
// errors.
func (t *Tagset) Decode(rows [][]int, lengths []int) ([][]string, error) {
	if len(lengths) != len(rows) {
		return nil, fmt.Errorf("got %d rows but %d lengths", len(rows), len(lengths))
	}

	decoded := make([][]string, len(rows))
	for i, row := range rows {
		n := lengths[i]
		if n < 0 || n > len(row) {
			return nil, fmt.Errorf("row %d: length %d out of range for %d tokens", i, n, len(row))
		}

		sentence := make([]string, n)
		for j := 0; j < n; j++ {
			tag, ok := t.Tag(row[j])
			if !ok {
				return nil, fmt.Errorf("row %d token %d: class %d not in tagset of size %d", i, j, row[j], t.Len())
			}
			sentence[j] = tag
		}
		decoded[i] = sentence
	}

	return decoded, nil
}
