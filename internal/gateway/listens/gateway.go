// Package listens implements the listen-log gateway against the listens
// service HTTP API.
package listens

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/morningfm/front/internal/domain"
	"github.com/morningfm/front/internal/gateway"
)

const apiKeyHeader = "x-api-key"

// Gateway is the production listen-log gateway.
type Gateway struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewGateway creates a Gateway for the listens service at baseURL.
func NewGateway(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Gateway {
	return &Gateway{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("gateway", "listens"),
	}
}

// FetchListen fetches one listen by id.
func (g *Gateway) FetchListen(ctx context.Context, id string) (domain.Listen, error) {
	reqURL := g.baseURL + "/listens/" + url.PathEscape(id)

	g.log.DebugContext(ctx, "listens request", slog.String("op", "fetch_listen"), slog.String("id", id))

	resp, err := g.get(ctx, reqURL)
	if err != nil {
		return domain.Listen{}, fmt.Errorf("listens: fetch listen %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Listen{}, g.errorFromResponse(ctx, resp)
	}

	var payload listenPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.Listen{}, fmt.Errorf("listens: decode listen %s: %w", id, err)
	}

	return payload.toDomain()
}

// FetchListens fetches up to limit listens in the given scan order, bounded
// by the optional exclusive before/after cursors.
func (g *Gateway) FetchListens(ctx context.Context, limit int, order domain.SortOrder, before, after *time.Time) ([]domain.Listen, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("sort_order", gateway.SortOrderWireValue(order))
	if before != nil {
		params.Set("before_utc", gateway.FormatWireTime(*before))
	}
	if after != nil {
		params.Set("after_utc", gateway.FormatWireTime(*after))
	}

	g.log.DebugContext(ctx, "listens request",
		slog.String("op", "fetch_listens"),
		slog.Int("limit", limit),
		slog.String("sort_order", order.String()),
	)

	resp, err := g.get(ctx, g.baseURL+"/listens?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("listens: fetch listens: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, g.errorFromResponse(ctx, resp)
	}

	var payload listensPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("listens: decode listens: %w", err)
	}

	items := make([]domain.Listen, 0, len(payload.Items))
	for _, raw := range payload.Items {
		listen, err := raw.toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, listen)
	}
	return items, nil
}

// SubmitListen posts one listen. The backend assigns the id and listen time
// and enforces submission policy; rejections come back as *domain.ListensError.
func (g *Gateway) SubmitListen(ctx context.Context, input domain.ListenInput) (domain.Listen, error) {
	body, err := json.Marshal(submitPayload{
		SongID:       input.SongID,
		SongProvider: input.SongProvider.String(),
		ListenerName: input.ListenerName,
		Note:         input.Note,
		IANATimezone: input.IANATimezone,
	})
	if err != nil {
		return domain.Listen{}, fmt.Errorf("listens: encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/listens", bytes.NewReader(body))
	if err != nil {
		return domain.Listen{}, fmt.Errorf("listens: create request: %w", err)
	}
	req.Header.Set(apiKeyHeader, g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	g.log.DebugContext(ctx, "listens request",
		slog.String("op", "submit_listen"),
		slog.String("listener_name", input.ListenerName),
	)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return domain.Listen{}, fmt.Errorf("listens: submit listen: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Listen{}, g.errorFromResponse(ctx, resp)
	}

	var payload listenPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.Listen{}, fmt.Errorf("listens: decode submission response: %w", err)
	}

	return payload.toDomain()
}

func (g *Gateway) get(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(apiKeyHeader, g.apiKey)
	return g.httpClient.Do(req)
}

// errorFromResponse turns a non-success response into a *domain.ListensError
// carrying the backend's message. A body that does not decode as the error
// shape is not part of the modeled taxonomy and stays a plain error.
func (g *Gateway) errorFromResponse(ctx context.Context, resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("listens: read error body (status %d): %w", resp.StatusCode, err)
	}

	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("listens: undecodable error body (status %d): %w", resp.StatusCode, err)
	}

	g.log.DebugContext(ctx, "listens error response",
		slog.Int("status", resp.StatusCode),
		slog.String("message", payload.Message),
	)

	return &domain.ListensError{Message: payload.Message}
}
