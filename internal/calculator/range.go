package calculator

import (
	"errors"

	"Warren/internal/model"
)

var (
	// ErrNoData is returned when a history was aggregated from no quotes.
	ErrNoData = errors.New("no quotes in lookback window")
	// ErrFlatRange is returned when the period high equals the period low.
	ErrFlatRange = errors.New("insufficient price variation")
)

// Aggregate reduces quotes, oldest first, to the period high, period low and
// the close of the last quote. An empty slice yields model.EmptyHistory.
func Aggregate(quotes []model.Quote) model.QuoteHistory {
	h := model.EmptyHistory()
	for _, q := range quotes {
		h.Current = q.Close
		if q.High > h.High {
			h.High = q.High
		}
		if q.Low < h.Low {
			h.Low = q.Low
		}
	}
	return h
}

// Position returns where the current price sits within [low, high] as a
// percentage: 0 at the period low, 100 at the period high.
func Position(h model.QuoteHistory) (float64, error) {
	if h.Empty() {
		return 0, ErrNoData
	}
	rng := h.High - h.Low
	if rng == 0 {
		return 0, ErrFlatRange
	}
	return (h.Current - h.Low) / rng * 100.0, nil
}
