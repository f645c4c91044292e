package seqeval

import "fmt"

// Metrics holds evaluation results for one gold/predicted comparison.
// Raw counts are carried alongside the derived rates so callers can sum
// counts across corpora and recompute with FromCounts.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
}

// FromCounts derives precision, recall, and F1 from raw span counts.
// Each rate is 0 when its denominator is 0; F1 is 0 when precision and
// recall are both 0. The result is never NaN.
func FromCounts(tp, fp, fn int) Metrics {
	m := Metrics{
		TruePositives:  tp,
		FalsePositives: fp,
		FalseNegatives: fn,
	}

	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}

	return m
}

// Score compares predicted tags against gold tags and computes span
// precision, recall, and F1.
//
// Both datasets must be aligned: the same number of sentences, with
// sentence i holding the same number of tokens in each. Misalignment
// indicates a bug in upstream batching or padding truncation and is
// reported as an error wrapping ErrAlignment, never repaired here.
//
// A predicted span counts as correct only when sentence index, token
// range, and label all match a gold span exactly; a partial overlap
// counts as both a false positive and a false negative. Score is pure
// and safe for concurrent use.
func Score(gold, predicted [][]string) (Metrics, error) {
	if err := checkAlignment(gold, predicted); err != nil {
		return Metrics{}, err
	}
	return scoreChunks(Extract(gold), Extract(predicted)), nil
}

// ScoreByLabel computes span metrics separately for each label that
// occurs in either dataset, under the same alignment contract as Score.
func ScoreByLabel(gold, predicted [][]string) (map[string]Metrics, error) {
	if err := checkAlignment(gold, predicted); err != nil {
		return nil, err
	}

	goldChunks := Extract(gold)
	predChunks := Extract(predicted)

	labels := make(map[string]struct{})
	for c := range goldChunks {
		labels[c.Label] = struct{}{}
	}
	for c := range predChunks {
		labels[c.Label] = struct{}{}
	}

	byLabel := make(map[string]Metrics, len(labels))
	for label := range labels {
		byLabel[label] = scoreChunks(filterLabel(goldChunks, label), filterLabel(predChunks, label))
	}

	return byLabel, nil
}

func checkAlignment(gold, predicted [][]string) error {
	if len(gold) != len(predicted) {
		return fmt.Errorf("%w: gold has %d sentences, predicted has %d",
			ErrAlignment, len(gold), len(predicted))
	}
	for i := range gold {
		if len(gold[i]) != len(predicted[i]) {
			return fmt.Errorf("%w: sentence %d has %d gold tokens and %d predicted tokens",
				ErrAlignment, i, len(gold[i]), len(predicted[i]))
		}
	}
	return nil
}

func scoreChunks(gold, predicted ChunkSet) Metrics {
	tp := 0
	for c := range predicted {
		if gold.Contains(c) {
			tp++
		}
	}

	return FromCounts(tp, len(predicted)-tp, len(gold)-tp)
}

func filterLabel(chunks ChunkSet, label string) ChunkSet {
	subset := make(ChunkSet)
	for c := range chunks {
		if c.Label == label {
			subset[c] = struct{}{}
		}
	}
	return subset
}
