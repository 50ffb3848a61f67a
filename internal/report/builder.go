package report

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"Warren/internal/calculator"
	"Warren/internal/collector"
	"Warren/internal/model"
	"Warren/internal/strategy"
)

// Builder produces a Report for a symbol.
type Builder struct {
	Collector *collector.Collector
	Log       zerolog.Logger
	Now       func() time.Time
}

// NewBuilder creates a Builder over the given fetcher.
func NewBuilder(fetcher collector.Fetcher, log zerolog.Logger) *Builder {
	return &Builder{
		Collector: collector.NewCollector(fetcher, log),
		Log:       log,
		Now:       time.Now,
	}
}

// Build fetches the symbol's recent history and returns its range position
// and recommendation. Fetch, data-shape and degenerate-range errors are
// returned wrapped with the symbol; the first failure ends the build.
func (b *Builder) Build(ctx context.Context, symbol string) (model.Report, error) {
	h, err := b.Collector.Collect(ctx, symbol)
	if err != nil {
		return model.Report{}, fmt.Errorf("%s: %w", symbol, err)
	}
	position, err := calculator.Position(h)
	if err != nil {
		return model.Report{}, fmt.Errorf("%s: %w", symbol, err)
	}
	rec := strategy.Recommend(position)

	r := model.Report{
		Symbol:         symbol,
		History:        h,
		Position:       position,
		Recommendation: rec,
		GeneratedAt:    b.Now(),
	}
	b.Log.Info().
		Str("symbol", symbol).
		Float64("position", position).
		Str("recommendation", string(rec)).
		Msg("report built")
	return r, nil
}
