package seqeval

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/jamesainslie/go-seqeval/tagset"
)

// testTags covers the labels used throughout the driver tests.
func testTags() *tagset.Tagset {
	return tagset.New([]string{"O", "B-PER", "I-PER", "B-ORG", "I-ORG"})
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew(t *testing.T) {
	eval, err := New(testTags(), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if eval.tags == nil {
		t.Error("expected non-nil tagset")
	}
	if eval.RunID() == "" {
		t.Error("expected a generated run ID")
	}
	if len(eval.History()) != 0 {
		t.Errorf("expected empty history, got %d entries", len(eval.History()))
	}
}

func TestNew_EmptyTagset(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("expected error for nil tagset")
	}
	if _, err := New(tagset.New(nil)); err == nil {
		t.Error("expected error for empty tagset")
	}
}

func TestNew_WithOptions(t *testing.T) {
	logger := quietLogger()

	eval, err := New(testTags(), WithLogger(logger), WithRunID("run-7"))
	if err != nil {
		t.Fatalf("New() with options failed: %v", err)
	}

	if eval.RunID() != "run-7" {
		t.Errorf("RunID() = %q, want run-7", eval.RunID())
	}
	if eval.logger != logger {
		t.Error("expected injected logger")
	}
}

func TestAfterEpoch(t *testing.T) {
	eval, err := New(testTags(), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// Class indices: O=0, B-PER=1, I-PER=2, B-ORG=3. The second
	// sentence is padded to the batch width with class 99, which is not
	// in the tagset; it must never be decoded.
	gold := [][]int{
		{1, 2, 0, 0, 0, 0, 3},
		{0, 0, 0, 99, 99, 99, 99},
	}
	predicted := [][]int{
		{1, 0, 0, 0, 1, 0, 3},
		{0, 0, 0, 99, 99, 99, 99},
	}
	lengths := []int{7, 3}

	m, err := eval.AfterEpoch(1, predicted, gold, lengths)
	if err != nil {
		t.Fatalf("AfterEpoch() error = %v", err)
	}

	if m.TruePositives != 1 {
		t.Errorf("TruePositives = %d, want 1", m.TruePositives)
	}
	if !almostEqual(m.Precision, 1.0/3.0) {
		t.Errorf("Precision = %v, want %v", m.Precision, 1.0/3.0)
	}
	if !almostEqual(m.Recall, 0.5) {
		t.Errorf("Recall = %v, want 0.5", m.Recall)
	}
	if !almostEqual(m.F1, 0.4) {
		t.Errorf("F1 = %v, want 0.4", m.F1)
	}

	history := eval.History()
	if len(history) != 1 {
		t.Fatalf("History() has %d entries, want 1", len(history))
	}
	if history[0].Epoch != 1 {
		t.Errorf("recorded epoch = %d, want 1", history[0].Epoch)
	}
	if !almostEqual(history[0].Metrics.F1, m.F1) {
		t.Errorf("recorded F1 = %v, want %v", history[0].Metrics.F1, m.F1)
	}
}

func TestAfterEpoch_Misaligned(t *testing.T) {
	eval, err := New(testTags(), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	tests := []struct {
		name      string
		predicted [][]int
		gold      [][]int
		lengths   []int
	}{
		{
			name:      "row count mismatch",
			predicted: [][]int{{0}},
			gold:      [][]int{{0}, {0}},
			lengths:   []int{1},
		},
		{
			name:      "lengths count mismatch",
			predicted: [][]int{{0}},
			gold:      [][]int{{0}},
			lengths:   []int{1, 1},
		},
		{
			name:      "length exceeds predicted row",
			predicted: [][]int{{0}},
			gold:      [][]int{{0, 0}},
			lengths:   []int{2},
		},
		{
			name:      "negative length",
			predicted: [][]int{{0}},
			gold:      [][]int{{0}},
			lengths:   []int{-1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eval.AfterEpoch(1, tt.predicted, tt.gold, tt.lengths)
			if err == nil {
				t.Fatal("expected error for misaligned inputs")
			}
			if !errors.Is(err, ErrAlignment) {
				t.Errorf("expected ErrAlignment, got: %v", err)
			}
		})
	}

	if len(eval.History()) != 0 {
		t.Errorf("failed epochs must not be recorded, history has %d entries", len(eval.History()))
	}
}

func TestAfterEpoch_UnknownClass(t *testing.T) {
	eval, err := New(testTags(), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// Class 7 is inside the true length, so decoding must fail.
	_, err = eval.AfterEpoch(1, [][]int{{7, 0}}, [][]int{{0, 0}}, []int{2})
	if err == nil {
		t.Fatal("expected error for unknown class index")
	}
	if !errors.Is(err, ErrUnknownClass) {
		t.Errorf("expected ErrUnknownClass, got: %v", err)
	}
}

func TestEvaluator_Best(t *testing.T) {
	eval, err := New(testTags(), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if _, ok := eval.Best(); ok {
		t.Error("Best() = ok before any epochs")
	}

	gold := [][]int{{1, 2, 0, 3}}
	lengths := []int{4}

	// Epoch 1: one of two spans correct. Epoch 2: perfect. Epoch 3:
	// back to partial.
	partial := [][]int{{1, 2, 0, 0}}
	perfect := [][]int{{1, 2, 0, 3}}

	epochs := []struct {
		epoch     int
		predicted [][]int
	}{
		{1, partial},
		{2, perfect},
		{3, partial},
	}
	for _, ep := range epochs {
		if _, err := eval.AfterEpoch(ep.epoch, ep.predicted, gold, lengths); err != nil {
			t.Fatalf("AfterEpoch(%d) error = %v", ep.epoch, err)
		}
	}

	best, ok := eval.Best()
	if !ok {
		t.Fatal("Best() not ok after three epochs")
	}
	if best.Epoch != 2 {
		t.Errorf("Best().Epoch = %d, want 2", best.Epoch)
	}
	if !almostEqual(best.Metrics.F1, 1.0) {
		t.Errorf("Best().Metrics.F1 = %v, want 1", best.Metrics.F1)
	}
}

func TestEvaluator_HistoryCopy(t *testing.T) {
	eval, err := New(testTags(), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if _, err := eval.AfterEpoch(1, [][]int{{1}}, [][]int{{1}}, []int{1}); err != nil {
		t.Fatalf("AfterEpoch() error = %v", err)
	}

	history := eval.History()
	history[0].Epoch = 42

	if eval.History()[0].Epoch != 1 {
		t.Error("mutating History() result changed internal state")
	}
}
