package graphql

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/morningfm/front/internal/domain"
)

func postGraphQL(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestHandlerRejectsNonPost(t *testing.T) {
	t.Parallel()

	h := NewHandler(newTestSchema(t, nil, nil), catalogStub(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
	if got := rec.Header().Get("Allow"); got != http.MethodPost {
		t.Errorf("Allow = %q", got)
	}
}

func TestHandlerRejectsMalformedBody(t *testing.T) {
	t.Parallel()

	h := NewHandler(newTestSchema(t, nil, nil), catalogStub(), testLogger())

	rec := postGraphQL(t, h, `{"query": `)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandlerServesQuery(t *testing.T) {
	t.Parallel()

	lg := &listensGatewayStub{
		fetchListenFunc: func(_ context.Context, id string) (domain.Listen, error) {
			return listenFixture(id, "abc", "Dorothy", time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)), nil
		},
	}
	h := NewHandler(newTestSchema(t, lg, nil), catalogStub(), testLogger())

	rec := postGraphQL(t, h, `{"query": "{ listen(id: \"42\") { id listenerName song { name } } }"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("content type = %q", got)
	}

	body := decodeBody(t, rec)
	if got := dig(t, body, "data", "listen", "listenerName"); got != "Dorothy" {
		t.Errorf("listenerName = %v", got)
	}
	if got := dig(t, body, "data", "listen", "song", "name"); got != "Song abc" {
		t.Errorf("song name = %v", got)
	}
}

func TestHandlerServesQueryWithVariables(t *testing.T) {
	t.Parallel()

	lg := &listensGatewayStub{
		fetchListenFunc: func(_ context.Context, id string) (domain.Listen, error) {
			return listenFixture(id, "abc", "Dorothy", time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)), nil
		},
	}
	h := NewHandler(newTestSchema(t, lg, nil), catalogStub(), testLogger())

	rec := postGraphQL(t, h, `{
		"query": "query One($id: ID!) { listen(id: $id) { id } }",
		"variables": {"id": "42"}
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if got := dig(t, body, "data", "listen", "id"); got != "42" {
		t.Errorf("id = %v", got)
	}
}

func TestHandlerFailsWholeRequestOnUnexpectedError(t *testing.T) {
	t.Parallel()

	lg := &listensGatewayStub{
		fetchListenFunc: func(_ context.Context, _ string) (domain.Listen, error) {
			return domain.Listen{}, context.DeadlineExceeded
		},
	}
	h := NewHandler(newTestSchema(t, lg, nil), catalogStub(), testLogger())

	rec := postGraphQL(t, h, `{"query": "{ listen(id: \"42\") { id } }"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	body := decodeBody(t, rec)
	errs, _ := body["errors"].([]interface{})
	if len(errs) != 1 {
		t.Fatalf("errors = %v", errs)
	}
	if got := dig(t, errs[0], "message"); got != "internal server error" {
		t.Errorf("message = %q, internals must not leak", got)
	}
	if _, hasData := body["data"]; hasData {
		t.Error("a fatal response must not carry partial data")
	}
}

func TestHandlerKeepsDomainErrorsPartial(t *testing.T) {
	t.Parallel()

	lg := &listensGatewayStub{
		fetchListenFunc: func(_ context.Context, _ string) (domain.Listen, error) {
			return domain.Listen{}, &domain.ListensError{Message: "no listen with id 42"}
		},
	}
	h := NewHandler(newTestSchema(t, lg, nil), catalogStub(), testLogger())

	rec := postGraphQL(t, h, `{"query": "{ listen(id: \"42\") { id } }"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for a partial response", rec.Code)
	}

	body := decodeBody(t, rec)
	if got := dig(t, body, "data", "listen"); got != nil {
		t.Errorf("listen = %v, want null", got)
	}
	errs, _ := body["errors"].([]interface{})
	if len(errs) != 1 {
		t.Fatalf("errors = %v", errs)
	}
	if got := dig(t, errs[0], "message"); got != "no listen with id 42" {
		t.Errorf("message = %q", got)
	}
}

func TestPlayground(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Playground().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/graphql", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", got)
	}
	if !strings.Contains(rec.Body.String(), "GraphiQL") {
		t.Error("page does not embed GraphiQL")
	}
}

func TestHandlerKeepsSyntaxErrorsClientSide(t *testing.T) {
	t.Parallel()

	h := NewHandler(newTestSchema(t, nil, nil), catalogStub(), testLogger())

	rec := postGraphQL(t, h, `{"query": "{ listen(id: "}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with a GraphQL error payload", rec.Code)
	}
	body := decodeBody(t, rec)
	errs, _ := body["errors"].([]interface{})
	if len(errs) == 0 {
		t.Error("expected a syntax error entry")
	}
}
