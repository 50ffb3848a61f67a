package strategy

import (
	"fmt"
	"math"

	"Warren/internal/model"
)

// Tiers maps range positions to recommendations, highest bound first.
// A position belongs to the first tier whose MinPosition it reaches.
var Tiers = []struct {
	MinPosition    float64
	Recommendation model.Recommendation
}{
	{50, model.DontBuy},
	{0, model.Buy},
}

// MaxPosition is the highest position a well-formed history can produce.
const MaxPosition = 100.0

// InvariantError is the panic value raised when a position falls outside
// [0, MaxPosition]. It signals a defect in the range computation upstream.
type InvariantError struct {
	Position float64
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated: position %v outside [0, %v]", e.Position, MaxPosition)
}

// Recommend maps a range position to a recommendation: below 50 is Buy,
// 50 up to and including 100 is DontBuy. 100 is accepted because the latest
// close can be the period high. It panics with *InvariantError for negative,
// NaN or above-100 positions.
func Recommend(position float64) model.Recommendation {
	if math.IsNaN(position) || position > MaxPosition {
		panic(&InvariantError{Position: position})
	}
	for _, t := range Tiers {
		if position >= t.MinPosition {
			return t.Recommendation
		}
	}
	panic(&InvariantError{Position: position})
}
