package model

import (
	"math"
	"time"
)

// Quote is one trading day of price data.
type Quote struct {
	Time     time.Time
	Open     float64
	High     float64
	Low      float64
	Close    float64
	Volume   float64
	AdjClose float64
}

// QuoteHistory is the aggregate of a quote series over the lookback window.
type QuoteHistory struct {
	High    float64
	Low     float64
	Current float64 // close of the most recent quote
}

// EmptyHistory returns the sentinel state produced by aggregating no quotes.
func EmptyHistory() QuoteHistory {
	return QuoteHistory{High: math.Inf(-1), Low: math.Inf(1)}
}

// Empty reports whether h still holds the "no data" sentinels.
func (h QuoteHistory) Empty() bool {
	return h.High < h.Low
}
