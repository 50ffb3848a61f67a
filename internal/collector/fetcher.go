package collector

import (
	"context"
	"errors"

	"Warren/internal/model"
)

// Lookback window requested from the data source.
const (
	Interval = "1d"
	Range    = "3mo"
)

var (
	// ErrConnector is returned when a data source client cannot be built.
	ErrConnector = errors.New("connector construction failed")
	// ErrFetch wraps network failures and upstream API errors.
	ErrFetch = errors.New("quote fetch failed")
	// ErrDataShape wraps responses that cannot be turned into quotes.
	ErrDataShape = errors.New("unusable quote data")
)

// QuoteSeries is a fetched quote response.
type QuoteSeries interface {
	// Quotes returns every quote, oldest first.
	Quotes() ([]model.Quote, error)
	// Last returns the most recent quote.
	Last() (model.Quote, error)
}

// Fetcher defines the interface for fetching market data.
//
//go:generate mockgen -package=report -destination=../report/mock_fetcher_test.go -source=fetcher.go Fetcher
type Fetcher interface {
	FetchQuoteRange(ctx context.Context, symbol, interval, rng string) (QuoteSeries, error)
	Name() string
}
