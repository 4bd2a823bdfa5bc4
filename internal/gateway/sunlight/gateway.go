// Package sunlight implements the sunlight-window gateway against the
// sunlight service HTTP API.
package sunlight

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/morningfm/front/internal/domain"
	"github.com/morningfm/front/internal/gateway"
)

const apiKeyHeader = "x-api-key"

// Gateway is the production sunlight gateway.
type Gateway struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewGateway creates a Gateway for the sunlight service at baseURL.
func NewGateway(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Gateway {
	return &Gateway{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("gateway", "sunlight"),
	}
}

// windowPayload is the body of GET /sunlight.
type windowPayload struct {
	SunriseUTC string `json:"sunrise_utc"`
	SunsetUTC  string `json:"sunset_utc"`
}

// errorPayload is the body of any non-success sunlight service response.
type errorPayload struct {
	Message string `json:"message"`
}

// FetchSunlightWindow fetches the sunrise/sunset window for one timezone
// and date.
func (g *Gateway) FetchSunlightWindow(ctx context.Context, ianaTimezone string, onDate time.Time) (domain.SunlightWindow, error) {
	params := url.Values{}
	params.Set("iana_timezone", ianaTimezone)
	params.Set("on_date", onDate.Format(gateway.WireDateLayout))

	g.log.DebugContext(ctx, "sunlight request",
		slog.String("iana_timezone", ianaTimezone),
		slog.String("on_date", onDate.Format(gateway.WireDateLayout)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/sunlight?"+params.Encode(), nil)
	if err != nil {
		return domain.SunlightWindow{}, fmt.Errorf("sunlight: create request: %w", err)
	}
	req.Header.Set(apiKeyHeader, g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return domain.SunlightWindow{}, fmt.Errorf("sunlight: fetch window: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.SunlightWindow{}, g.errorFromResponse(resp)
	}

	var payload windowPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.SunlightWindow{}, fmt.Errorf("sunlight: decode window: %w", err)
	}

	sunrise, err := gateway.ParseWireTime(payload.SunriseUTC)
	if err != nil {
		return domain.SunlightWindow{}, fmt.Errorf("sunlight: %w", err)
	}
	sunset, err := gateway.ParseWireTime(payload.SunsetUTC)
	if err != nil {
		return domain.SunlightWindow{}, fmt.Errorf("sunlight: %w", err)
	}

	return domain.SunlightWindow{SunriseUTC: sunrise, SunsetUTC: sunset}, nil
}

func (g *Gateway) errorFromResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("sunlight: read error body (status %d): %w", resp.StatusCode, err)
	}

	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("sunlight: undecodable error body (status %d): %w", resp.StatusCode, err)
	}

	return &domain.SunlightError{Message: payload.Message}
}
