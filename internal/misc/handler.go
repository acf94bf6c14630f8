package misc

import (
	"context"
	"net/http"
	"time"

	"github.com/gorillabuild/gorillabuild/internal/telemetry/tracing"
	"github.com/gorillabuild/gorillabuild/pkg"

	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type dbExecutor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type healthResponse struct {
	Status    string `json:"status"`
	LatencyMs int64  `json:"latencyMs"`
	Timestamp string `json:"timestamp"`
}

type healthErrorResponse struct {
	Status string `json:"status"`
}

type Handler struct {
	db  dbExecutor
	now func() time.Time
}

func NewHandler(db dbExecutor) *Handler {
	return &Handler{
		db:  db,
		now: time.Now,
	}
}

// HandleHealth runs a trivial query and reports how long it took.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.misc.health")
	defer span.End()

	start := h.now()
	if _, err := h.db.Exec(ctx, "SELECT 1"); err != nil {
		log.Errorf("health check: %s", err)
		span.SetStatus(codes.Error, err.Error())
		pkg.WriteJSON(w, healthErrorResponse{Status: "error"}, http.StatusInternalServerError)
		return
	}
	end := h.now()

	latency := end.Sub(start).Milliseconds()
	span.SetAttributes(attribute.Int64("db.latency_ms", latency))
	pkg.WriteJSON(w, healthResponse{
		Status:    "ok",
		LatencyMs: latency,
		Timestamp: end.UTC().Format(time.RFC3339Nano),
	}, http.StatusOK)
}
