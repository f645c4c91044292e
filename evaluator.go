package seqeval

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jamesainslie/go-seqeval/tagset"
)

// Hook is the boundary a training loop drives once per evaluation pass.
// Implementations receive the epoch number, the epoch's padded
// class-index matrices for predictions and gold labels, and each
// sentence's true length, and return the span metrics for that pass.
type Hook interface {
	AfterEpoch(epoch int, predicted, gold [][]int, lengths []int) (Metrics, error)
}

// Evaluator scores per-epoch model output against gold labels and
// records the result history. It decodes class indices through a
// caller-supplied tagset, truncates padding, and delegates to Score.
//
// An Evaluator accumulates history across calls and is meant to be
// driven by a single training loop; use one Evaluator per run. Score
// and Extract themselves remain safe for concurrent use.
type Evaluator struct {
	tags    *tagset.Tagset
	logger  *slog.Logger
	runID   string
	history []EpochMetrics
}

var _ Hook = (*Evaluator)(nil)

// EpochMetrics pairs an epoch number with the metrics scored for it.
type EpochMetrics struct {
	Epoch   int
	Metrics Metrics
}

// New creates an Evaluator that decodes class indices through tags.
func New(tags *tagset.Tagset, opts ...Option) (*Evaluator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if tags == nil || tags.Len() == 0 {
		return nil, errors.New("seqeval: tagset must contain at least one tag")
	}

	return &Evaluator{
		tags:   tags,
		logger: cfg.logger,
		runID:  cfg.runID,
	}, nil
}

// AfterEpoch decodes the epoch's padded prediction and gold matrices,
// truncates each sentence to its true length, scores the resulting
// spans, logs and records the outcome, and returns it unchanged.
//
// The three inputs must agree on sentence count, and every stated
// length must fit inside both matrices' rows; violations are reported
// wrapping ErrAlignment. A class index with no tag in the tagset is
// reported wrapping ErrUnknownClass. Padding beyond a sentence's true
// length is never decoded, so its contents are irrelevant.
func (e *Evaluator) AfterEpoch(epoch int, predicted, gold [][]int, lengths []int) (Metrics, error) {
	if err := checkShape(predicted, gold, lengths); err != nil {
		return Metrics{}, fmt.Errorf("%w: %w", ErrAlignment, err)
	}

	predTags, err := e.tags.Decode(predicted, lengths)
	if err != nil {
		return Metrics{}, fmt.Errorf("%w: %w", ErrUnknownClass, err)
	}

	goldTags, err := e.tags.Decode(gold, lengths)
	if err != nil {
		return Metrics{}, fmt.Errorf("%w: %w", ErrUnknownClass, err)
	}

	m, err := Score(goldTags, predTags)
	if err != nil {
		return Metrics{}, err
	}

	e.history = append(e.history, EpochMetrics{Epoch: epoch, Metrics: m})
	e.logger.Info("epoch evaluated",
		"run_id", e.runID,
		"epoch", epoch,
		"precision", m.Precision,
		"recall", m.Recall,
		"f1", m.F1,
	)

	return m, nil
}

// History returns the recorded results in call order. The returned
// slice is a copy.
func (e *Evaluator) History() []EpochMetrics {
	out := make([]EpochMetrics, len(e.history))
	copy(out, e.history)
	return out
}

// Best returns the recorded epoch with the highest F1, preferring the
// earliest on ties. ok is false when nothing has been recorded yet.
func (e *Evaluator) Best() (best EpochMetrics, ok bool) {
	if len(e.history) == 0 {
		return EpochMetrics{}, false
	}

	best = e.history[0]
	for _, em := range e.history[1:] {
		if em.Metrics.F1 > best.Metrics.F1 {
			best = em
		}
	}
	return best, true
}

// RunID returns the identifier attached to this evaluator's results.
func (e *Evaluator) RunID() string {
	return e.runID
}

// checkShape verifies the driver inputs agree before any decoding.
func checkShape(predicted, gold [][]int, lengths []int) error {
	if len(predicted) != len(gold) || len(predicted) != len(lengths) {
		return fmt.Errorf("got %d predicted rows, %d gold rows, %d lengths",
			len(predicted), len(gold), len(lengths))
	}
	for i := range predicted {
		n := lengths[i]
		if n < 0 || n > len(predicted[i]) || n > len(gold[i]) {
			return fmt.Errorf("sentence %d: length %d out of range (predicted row has %d tokens, gold row has %d)",
				i, n, len(predicted[i]), len(gold[i]))
		}
	}
	return nil
}
