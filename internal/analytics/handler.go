package analytics

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/traintower/backend/internal/auth"
	"github.com/traintower/backend/internal/telemetry/tracing"
	"github.com/traintower/backend/pkg"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	analyzer *Analyzer
}

func NewHandler(analyzer *Analyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

// HandleGetReport serves GET /analytics/report?from=&to= with RFC3339
// bounds, defaulting to the last 30 days.
func (handler *Handler) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.report")
	defer span.End()

	trainerID, ok := auth.TrainerIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	to := time.Now()
	from := to.Add(-30 * 24 * time.Hour)
	if fromParam := r.URL.Query().Get("from"); fromParam != "" {
		parsed, err := time.Parse(time.RFC3339, fromParam)
		if err != nil {
			http.Error(w, "error, invalid from param", http.StatusBadRequest)
			return
		}
		from = parsed
	}
	if toParam := r.URL.Query().Get("to"); toParam != "" {
		parsed, err := time.Parse(time.RFC3339, toParam)
		if err != nil {
			http.Error(w, "error, invalid to param", http.StatusBadRequest)
			return
		}
		to = parsed
	}
	if !from.Before(to) {
		http.Error(w, "error, from must be before to", http.StatusBadRequest)
		return
	}

	report, err := handler.analyzer.GetReport(ctx, trainerID, from, to)
	if err != nil {
		log.Errorf("failed to get report for trainer %d: %s", trainerID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	reportJson, err := json.Marshal(report)
	if err != nil {
		log.Errorf("failed to marshal report: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, reportJson)
}
