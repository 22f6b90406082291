// Package reconcile compares a client's tolerance and capacity results.
package reconcile

import (
	"errors"
	"fmt"

	"riskprofile/internal/classification"
)

var ErrUnknownLabel = errors.New("unknown band label")

// AlignmentThreshold is the smallest total difference that counts as a
// mismatch.
const AlignmentThreshold = 6

// Kind identifies which advisory message applies
type Kind string

const (
	Aligned                  Kind = "aligned"
	ToleranceExceedsCapacity Kind = "tolerance_exceeds_capacity"
	CapacityExceedsTolerance Kind = "capacity_exceeds_tolerance"
)

var messages = map[Kind]string{
	Aligned:                  "Your tolerance and capacity are broadly aligned — your overall position looks appropriate.",
	ToleranceExceedsCapacity: "Your risk tolerance is higher than your financial capacity. Please discuss this with your advisor.",
	CapacityExceedsTolerance: "Your financial capacity allows more risk than you currently feel comfortable taking. Review your goals.",
}

// Message returns the advisory text for k.
func (k Kind) Message() string { return messages[k] }

// Result is the reconciliation of both sections
type Result struct {
	Kind     Kind                `json:"kind" yaml:"kind"`
	Message  string              `json:"message" yaml:"message"`
	Diff     int                 `json:"diff" yaml:"diff"`
	Combined classification.Band `json:"-" yaml:"-"`
	// CombinedLabel is Combined's label, kept for serialization.
	CombinedLabel string `json:"combinedLabel" yaml:"combinedLabel"`
}

// Reconcile picks the advisory message from the total difference and
// recommends the more conservative of the two bands.
func Reconcile(tolTotal, capTotal int, tolBand, capBand classification.Band) Result {
	diff := tolTotal - capTotal
	if diff < 0 {
		diff = -diff
	}

	kind := Aligned
	switch {
	case diff < AlignmentThreshold:
	case tolTotal > capTotal:
		kind = ToleranceExceedsCapacity
	default:
		kind = CapacityExceedsTolerance
	}

	combined := classification.MoreConservative(tolBand, capBand)
	return Result{
		Kind:          kind,
		Message:       kind.Message(),
		Diff:          diff,
		Combined:      combined,
		CombinedLabel: combined.Label(),
	}
}

// ReconcileLabels is Reconcile for callers holding band labels rather than
// bands.
func ReconcileLabels(tolTotal, capTotal int, tolLabel, capLabel string) (Result, error) {
	tol, ok := classification.BandFromLabel(tolLabel)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownLabel, tolLabel)
	}
	capBand, ok := classification.BandFromLabel(capLabel)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownLabel, capLabel)
	}
	return Reconcile(tolTotal, capTotal, tol, capBand), nil
}
