// Package seqeval scores sequence-labeling predictions given in BIO/IOB
// notation, computing the span-level precision, recall, and F1 used to
// evaluate named-entity recognition output.
//
// # Quick Start
//
//	gold := [][]string{{"B-PER", "I-PER", "O", "B-ORG"}}
//	predicted := [][]string{{"B-PER", "I-PER", "O", "O"}}
//
//	m, err := seqeval.Score(gold, predicted)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("P: %.3f  R: %.3f  F1: %.3f\n", m.Precision, m.Recall, m.F1)
//
// Tags follow the BIO scheme: "B-X" begins a span labeled X, "I-X"
// continues it, and "O" marks tokens outside any span. A predicted span
// counts only on an exact match of sentence index, token range, and
// label; partial overlaps score zero.
//
// # Evaluation Driver
//
// Training loops that produce padded class-index matrices rather than
// tag strings drive an Evaluator through the per-epoch Hook boundary.
// It decodes indices through a tagset.Tagset, truncates padding, scores
// the spans, and records a per-epoch history:
//
//	ts := tagset.New([]string{"O", "B-PER", "I-PER"})
//	eval, err := seqeval.New(ts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, err := eval.AfterEpoch(epoch, predicted, gold, lengths)
//
// # Thread Safety
//
// Extract, Score, and ScoreByLabel are pure functions over their inputs
// and safe for concurrent use. An Evaluator accumulates history and
// belongs to a single training loop.
package seqeval
