package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"Warren/internal/calculator"
	"Warren/internal/model"
)

// StaticSeries is a QuoteSeries over an in-memory slice, oldest first.
type StaticSeries []model.Quote

func (s StaticSeries) Quotes() ([]model.Quote, error) {
	return append([]model.Quote(nil), s...), nil
}

func (s StaticSeries) Last() (model.Quote, error) {
	if len(s) == 0 {
		return model.Quote{}, fmt.Errorf("%w: no price data", ErrDataShape)
	}
	return s[len(s)-1], nil
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price     float64
	DailyData []model.Quote
	Err       error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchQuoteRange(_ context.Context, _, _, _ string) (QuoteSeries, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.DailyData != nil {
		return StaticSeries(m.DailyData), nil
	}
	return StaticSeries(generateMockBars(m.Price, 63)), nil
}

// generateMockBars builds a gently rising series that closes below its
// midpoint on the last day.
func generateMockBars(basePrice float64, count int) []model.Quote {
	bars := make([]model.Quote, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Quote{
			Time:     time.Now().AddDate(0, 0, -(count - i)),
			Open:     p * 0.999,
			High:     p * 1.005,
			Low:      p * 0.995,
			Close:    p,
			Volume:   1000000,
			AdjClose: p,
		}
	}
	if count > 1 {
		bars[count-1].Close = basePrice * 0.99
	}
	return bars
}

// Collector fetches the lookback window for a symbol and aggregates it.
type Collector struct {
	Fetcher Fetcher
	Log     zerolog.Logger
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, log zerolog.Logger) *Collector {
	return &Collector{Fetcher: fetcher, Log: log}
}

// Collect fetches daily quotes over the last three months and returns their
// high, low and latest close.
func (c *Collector) Collect(ctx context.Context, symbol string) (model.QuoteHistory, error) {
	series, err := c.Fetcher.FetchQuoteRange(ctx, symbol, Interval, Range)
	if err != nil {
		return model.QuoteHistory{}, err
	}
	last, err := series.Last()
	if err != nil {
		return model.QuoteHistory{}, err
	}
	quotes, err := series.Quotes()
	if err != nil {
		return model.QuoteHistory{}, err
	}

	h := calculator.Aggregate(quotes)
	c.Log.Debug().
		Str("symbol", symbol).
		Str("source", c.Fetcher.Name()).
		Int("quotes", len(quotes)).
		Time("last_quote", last.Time).
		Float64("high", h.High).
		Float64("low", h.Low).
		Float64("current", h.Current).
		Msg("quote history collected")
	return h, nil
}
