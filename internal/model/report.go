package model

import (
	"fmt"
	"time"
)

// Recommendation is the label derived from a range position.
type Recommendation string

const (
	Buy     Recommendation = "Buy"
	DontBuy Recommendation = "Don't buy"
)

// Report is the result of analysing one symbol. Values are copied, never shared.
type Report struct {
	Symbol         string
	History        QuoteHistory
	Position       float64 // 0 = period low, 100 = period high
	Recommendation Recommendation
	GeneratedAt    time.Time
}

// String renders the report as a single line.
func (r Report) String() string {
	return fmt.Sprintf("%s: Current %.2f Low %.2f High %.2f Position %.2f%% - %s",
		r.Symbol, r.History.Current, r.History.Low, r.History.High, r.Position, r.Recommendation)
}
