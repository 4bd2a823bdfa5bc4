package graphql

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/morningfm/front/internal/domain"
	"github.com/morningfm/front/internal/transport/graphql/dataloader"
	"github.com/morningfm/front/pkg/ctxutil"
)

// musicGateway is what the handler needs to build per-request loaders.
type musicGateway interface {
	FetchSongOfListen(ctx context.Context, listen domain.Listen) (domain.Song, error)
}

// Handler serves POST /graphql. It installs fresh dataloaders for each
// request, executes the operation, and decides whether the outcome is a
// (possibly partial) success or a fatal failure.
type Handler struct {
	schema graphql.Schema
	music  musicGateway
	log    *slog.Logger
}

// NewHandler creates a Handler over an executable schema.
func NewHandler(schema graphql.Schema, music musicGateway, logger *slog.Logger) *Handler {
	return &Handler{
		schema: schema,
		music:  music,
		log:    logger.With("component", "graphql"),
	}
}

// request is the standard GraphQL-over-HTTP POST body.
type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

type errorsEnvelope struct {
	Errors []errorEntry `json:"errors"`
}

type errorEntry struct {
	Message string `json:"message"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, errorsEnvelope{
			Errors: []errorEntry{{Message: "GraphQL requests must be POSTed"}},
		})
		return
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorsEnvelope{
			Errors: []errorEntry{{Message: "malformed request body"}},
		})
		return
	}

	ctx := dataloader.WithLoaders(r.Context(), dataloader.NewLoaders(h.music))

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})

	if fatal := firstFatal(result.Errors); fatal != nil {
		h.log.ErrorContext(ctx, "unexpected resolution error",
			slog.String("error", fatal.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
		)
		writeJSON(w, http.StatusInternalServerError, errorsEnvelope{
			Errors: []errorEntry{{Message: "internal server error"}},
		})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
