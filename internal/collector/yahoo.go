package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"Warren/internal/httpx"
	"Warren/internal/model"
)

// DefaultYahooBaseURL is the public Yahoo Finance query host.
const DefaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher using the Yahoo Finance chart API.
type YahooFetcher struct {
	BaseURL   string
	Client    *http.Client
	SymbolMap map[string]string // maps internal symbol to Yahoo ticker
}

// NewYahooFetcher creates a Yahoo Finance fetcher. An empty baseURL selects
// DefaultYahooBaseURL; an empty proxyURL uses the environment proxy.
func NewYahooFetcher(baseURL, proxyURL string, timeout time.Duration) (*YahooFetcher, error) {
	if baseURL == "" {
		baseURL = DefaultYahooBaseURL
	}
	if u, err := url.Parse(baseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: bad yahoo base url %q", ErrConnector, baseURL)
	}
	client, err := httpx.NewClient(proxyURL, timeout)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnector, err)
	}
	return &YahooFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  client,
		SymbolMap: map[string]string{
			"SPX500": "^GSPC",
			"SPX":    "^GSPC",
			"SP500":  "^GSPC",
		},
	}, nil
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) yahooSymbol(symbol string) string {
	if mapped, ok := f.SymbolMap[strings.ToUpper(symbol)]; ok {
		return mapped
	}
	return symbol
}

// yahooChart is the response structure from Yahoo Finance chart API.
// Prices are pointers because Yahoo sends null for days without trading.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
				AdjClose []struct {
					AdjClose []*float64 `json:"adjclose"`
				} `json:"adjclose"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchQuoteRange requests the chart for symbol at the given interval and range.
func (f *YahooFetcher) FetchQuoteRange(ctx context.Context, symbol, interval, rng string) (QuoteSeries, error) {
	q := url.Values{}
	q.Set("interval", interval)
	q.Set("range", rng)
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", f.BaseURL, url.PathEscape(f.yahooSymbol(symbol)), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrFetch, err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: yahoo: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: yahoo read body: %w", ErrFetch, err)
	}

	var chart yahooChart
	decodeErr := json.Unmarshal(body, &chart)
	if decodeErr == nil && chart.Chart.Error != nil {
		return nil, fmt.Errorf("%w: yahoo api error: %s: %s", ErrFetch, chart.Chart.Error.Code, chart.Chart.Error.Description)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: yahoo: status %d, body: %s", ErrFetch, resp.StatusCode, truncate(body, 256))
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: yahoo decode: %w", ErrDataShape, decodeErr)
	}
	return &chartSeries{chart: chart}, nil
}

// chartSeries adapts a decoded chart response to QuoteSeries. The chart is
// converted once; Quotes and Last share the result.
type chartSeries struct {
	chart  yahooChart
	once   sync.Once
	quotes []model.Quote
	err    error
}

func (s *chartSeries) Quotes() ([]model.Quote, error) {
	s.once.Do(func() { s.quotes, s.err = s.convert() })
	return s.quotes, s.err
}

func (s *chartSeries) convert() ([]model.Quote, error) {
	if len(s.chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("%w: yahoo: no result in response", ErrDataShape)
	}
	result := s.chart.Chart.Result[0]
	if len(result.Timestamp) == 0 {
		return []model.Quote{}, nil
	}
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("%w: yahoo: no quote indicators", ErrDataShape)
	}
	quote := result.Indicators.Quote[0]
	n := len(result.Timestamp)
	if len(quote.Open) != n || len(quote.High) != n || len(quote.Low) != n || len(quote.Close) != n || len(quote.Volume) != n {
		return nil, fmt.Errorf("%w: yahoo: %d timestamps but open/high/low/close/volume lengths %d/%d/%d/%d/%d",
			ErrDataShape, n, len(quote.Open), len(quote.High), len(quote.Low), len(quote.Close), len(quote.Volume))
	}
	var adj []*float64
	if len(result.Indicators.AdjClose) > 0 && len(result.Indicators.AdjClose[0].AdjClose) == n {
		adj = result.Indicators.AdjClose[0].AdjClose
	}

	quotes := make([]model.Quote, 0, n)
	for i, ts := range result.Timestamp {
		if quote.High[i] == nil || quote.Low[i] == nil || quote.Close[i] == nil {
			continue // skip null bars (holidays etc.)
		}
		q := model.Quote{
			Time:   time.Unix(ts, 0).UTC(),
			Open:   deref(quote.Open[i]),
			High:   *quote.High[i],
			Low:    *quote.Low[i],
			Close:  *quote.Close[i],
			Volume: deref(quote.Volume[i]),
		}
		if adj != nil {
			q.AdjClose = deref(adj[i])
		}
		quotes = append(quotes, q)
	}

	sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].Time.Before(quotes[j].Time) })
	return quotes, nil
}

func (s *chartSeries) Last() (model.Quote, error) {
	quotes, err := s.Quotes()
	if err != nil {
		return model.Quote{}, err
	}
	if len(quotes) == 0 {
		return model.Quote{}, fmt.Errorf("%w: yahoo: no price data", ErrDataShape)
	}
	return quotes[len(quotes)-1], nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
