package alpaca

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// TradingAPI is the slice of the vendor's trading API this service consumes.
type TradingAPI interface {
	GetAssets(ctx context.Context, req GetAssetsRequest) ([]Asset, error)
}

// ScreenerAPI is the slice of the vendor's screener API this service consumes.
type ScreenerAPI interface {
	GetMostActives(ctx context.Context, req MostActivesRequest) (*MostActives, error)
	GetMarketMovers(ctx context.Context, req MarketMoversRequest) (*MarketMovers, error)
}

// DataAPI is the slice of the vendor's historical-data API this service
// consumes. Bar payloads are returned as decoded JSON and passed through
// largely opaque.
type DataAPI interface {
	GetStockBars(ctx context.Context, req GetBarsRequest) (map[string]any, error)
}

// APIError is a non-2xx answer from the vendor.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("alpaca: status %d: %s", e.StatusCode, e.Message)
}

// ClientConfig carries everything needed to build a Client.
type ClientConfig struct {
	TradingBaseURL string
	DataBaseURL    string
	PublicKey      string
	SecretKey      string
	Timeout        time.Duration
}

// Client talks to the vendor's trading, screener, and historical-data REST
// surfaces. It is constructed once at process start and is safe for
// concurrent use; it holds no per-request state.
type Client struct {
	cfg  ClientConfig
	http *http.Client
}

var _ TradingAPI = (*Client)(nil)
var _ ScreenerAPI = (*Client)(nil)
var _ DataAPI = (*Client)(nil)

// NewClient builds a Client with a tuned HTTP transport. The timeout bounds
// every vendor call; a zero timeout defaults to 30 seconds.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 3 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   3 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout, Transport: transport},
	}
}

// GetAssets lists assets of the requested class.
//
// Vendor contract: GET {trading}/v2/assets?status=&asset_class=
func (c *Client) GetAssets(ctx context.Context, req GetAssetsRequest) ([]Asset, error) {
	status := req.Status
	if status == "" {
		status = "active"
	}
	q := url.Values{}
	q.Set("status", status)
	if req.AssetClass != "" {
		q.Set("asset_class", string(req.AssetClass))
	}

	var out []Asset
	if err := c.get(ctx, c.cfg.TradingBaseURL, "/v2/assets", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMostActives fetches the most-active stocks ranked by the given metric.
//
// Vendor contract: GET {data}/v1beta1/screener/stocks/most-actives?by=&top=
func (c *Client) GetMostActives(ctx context.Context, req MostActivesRequest) (*MostActives, error) {
	q := url.Values{}
	if req.By != "" {
		q.Set("by", string(req.By))
	}
	if req.Top > 0 {
		q.Set("top", strconv.Itoa(req.Top))
	}

	var out MostActives
	if err := c.get(ctx, c.cfg.DataBaseURL, "/v1beta1/screener/stocks/most-actives", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMarketMovers fetches top gainers and losers for a market.
//
// Vendor contract: GET {data}/v1beta1/screener/{stocks|crypto}/movers?top=
func (c *Client) GetMarketMovers(ctx context.Context, req MarketMoversRequest) (*MarketMovers, error) {
	market := req.MarketType
	if market == "" {
		market = MarketTypeStocks
	}
	q := url.Values{}
	if req.Top > 0 {
		q.Set("top", strconv.Itoa(req.Top))
	}

	var out MarketMovers
	path := fmt.Sprintf("/v1beta1/screener/%s/movers", market)
	if err := c.get(ctx, c.cfg.DataBaseURL, path, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetStockBars fetches historical bars for one symbol. The decoded payload is
// returned as-is; unwrapping the "bars" envelope is the caller's concern.
//
// Vendor contract: GET {data}/v2/stocks/{symbol}/bars?timeframe=&start=&end=&limit=
func (c *Client) GetStockBars(ctx context.Context, req GetBarsRequest) (map[string]any, error) {
	q := url.Values{}
	if req.Timeframe != "" {
		q.Set("timeframe", req.Timeframe)
	}
	if !req.Start.IsZero() {
		q.Set("start", req.Start.Format(time.RFC3339))
	}
	if !req.End.IsZero() {
		q.Set("end", req.End.Format(time.RFC3339))
	}
	if req.Limit != 0 {
		// forwarded verbatim, negative values included; the vendor decides
		q.Set("limit", strconv.Itoa(req.Limit))
	}

	var out map[string]any
	path := "/v2/stocks/" + url.PathEscape(req.Symbol) + "/bars"
	if err := c.get(ctx, c.cfg.DataBaseURL, path, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// get performs one authenticated GET against the vendor and decodes the JSON
// answer into out. Non-2xx statuses become *APIError.
func (c *Client) get(ctx context.Context, base, path string, q url.Values, out any) error {
	u := base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("APCA-API-KEY-ID", c.cfg.PublicKey)
	req.Header.Set("APCA-API-SECRET-KEY", c.cfg.SecretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// readErrorMessage extracts the vendor's {"message": ...} error body, falling
// back to the raw body when it is not JSON.
func readErrorMessage(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(body) == 0 {
		return "no response body"
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return string(body)
}
