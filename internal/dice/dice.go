// Package dice implements standard dice-notation parsing and evaluation.
package dice

import (
	"errors"
	"fmt"
	"math/rand"
)

// Bounds on a single roll. They keep Count x Sides work bounded; specs
// outside the bounds are rejected, never clamped.
const (
	MinSides = 2
	MaxSides = 1000
	MaxCount = 1000
)

// ErrInvalidNotation indicates a string that does not match dice notation.
var ErrInvalidNotation = errors.New("notation must take the form NdS with an optional +M or -M modifier")

// ErrInvalidCount indicates a dice count outside the 1-1000 range.
var ErrInvalidCount = errors.New("dice count must be between 1 and 1000")

// ErrInvalidSides indicates a side count outside the 2-1000 range.
var ErrInvalidSides = errors.New("dice sides must be between 2 and 1000")

// ErrInvalidModifier indicates a modifier too large to represent.
var ErrInvalidModifier = errors.New("dice modifier must fit in a machine integer")

// RollSpec describes a parsed dice-notation expression. It is immutable
// once parsed: evaluation never re-parses and parsing never rolls.
type RollSpec struct {
	Count    int
	Sides    int
	Modifier int
}

// RollResult captures the results of evaluating a RollSpec.
type RollResult struct {
	// Notation is the normalised notation for the spec that was rolled,
	// e.g. "2d6+3". The count is always explicit and the modifier signed.
	Notation string
	// Rolls holds the individual die results in roll order.
	Rolls []int
	// RawTotal is the sum of Rolls before the modifier is applied.
	RawTotal int
	// Total is RawTotal plus the modifier.
	Total int
}

// Validate reports whether the spec is within the supported bounds.
func (s RollSpec) Validate() error {
	if s.Count < 1 || s.Count > MaxCount {
		return ErrInvalidCount
	}
	if s.Sides < MinSides || s.Sides > MaxSides {
		return ErrInvalidSides
	}
	return nil
}

// Notation returns the normalised dice notation for the spec.
func (s RollSpec) Notation() string {
	if s.Modifier == 0 {
		return fmt.Sprintf("%dd%d", s.Count, s.Sides)
	}
	return fmt.Sprintf("%dd%d%+d", s.Count, s.Sides, s.Modifier)
}

// Roll evaluates the spec against the provided random source.
//
// Each die yields a uniformly distributed integer in [1, Sides], consumed
// from rng in roll order. The caller is expected to have validated the
// spec; Roll does not re-check bounds.
func (s RollSpec) Roll(rng *rand.Rand) RollResult {
	rolls := make([]int, s.Count)
	rawTotal := 0
	for i := 0; i < s.Count; i++ {
		value := rng.Intn(s.Sides) + 1
		rolls[i] = value
		rawTotal += value
	}

	return RollResult{
		Notation: s.Notation(),
		Rolls:    rolls,
		RawTotal: rawTotal,
		Total:    rawTotal + s.Modifier,
	}
}

// Roll validates the spec and evaluates it with a seeded random source.
//
// # Determinism
//
// Roll is deterministic with respect to seed. Given the same seed and the
// same spec, Roll always produces the same RollResult.
//
// # Totals
//
// RollResult.RawTotal is the sum of every die rolled and RollResult.Total
// adds the spec modifier, so Total == sum(Rolls) + Modifier always holds.
func Roll(spec RollSpec, seed int64) (RollResult, error) {
	if err := spec.Validate(); err != nil {
		return RollResult{}, err
	}

	rng := rand.New(rand.NewSource(seed))
	return spec.Roll(rng), nil
}
