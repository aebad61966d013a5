package measurements

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/traintower/backend/internal/auth"
	"github.com/traintower/backend/internal/telemetry/tracing"
	"github.com/traintower/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=measurements_test

type measurementsRepo interface {
	Add(ctx context.Context, trainerID int, m Measurement) (*Measurement, error)
	List(ctx context.Context, clientID, trainerID int) ([]Measurement, error)
	Delete(ctx context.Context, id, clientID, trainerID int) error
}

type ListResponse struct {
	Measurements []Measurement `json:"measurements"`
	Total        int           `json:"total"`
}

type Handler struct {
	repo measurementsRepo
}

func NewHandler(repo measurementsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.add")
	defer span.End()

	trainerID, ok := auth.TrainerIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	clientID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, client id invalid", http.StatusBadRequest)
		return
	}

	var m Measurement
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		log.Tracef("new measurement, unmarshal json params: %s", err)
		http.Error(w, "add measurement failed", http.StatusBadRequest)
		return
	}

	m.ClientID = clientID
	added, err := handler.repo.Add(ctx, trainerID, m)
	if err != nil {
		if errors.Is(err, ErrClientNotOwned) {
			http.Error(w, "client not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to add measurement for client %d: %s", clientID, err)
		http.Error(w, "error, failed to add measurement", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal new measurement: %s", err)
		http.Error(w, "error, failed to add measurement", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.list")
	defer span.End()

	trainerID, ok := auth.TrainerIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	clientID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, client id invalid", http.StatusBadRequest)
		return
	}

	measurements, err := handler.repo.List(ctx, clientID, trainerID)
	if err != nil {
		if errors.Is(err, ErrClientNotOwned) {
			http.Error(w, "client not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to list measurements for client %d: %s", clientID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListResponse{
		Measurements: measurements,
		Total:        len(measurements),
	})
	if err != nil {
		log.Errorf("failed to marshal measurements list: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.delete")
	defer span.End()

	trainerID, ok := auth.TrainerIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	clientID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, client id invalid", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(vars["mid"])
	if err != nil {
		http.Error(w, "error, measurement id invalid", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id, clientID, trainerID); err != nil {
		switch {
		case errors.Is(err, ErrClientNotOwned):
			http.Error(w, "client not found", http.StatusNotFound)
		case errors.Is(err, ErrMeasurementNotFound):
			http.Error(w, "measurement not found", http.StatusNotFound)
		default:
			log.Errorf("failed to delete measurement %d: %s", id, err)
			http.Error(w, "error, failed to delete measurement", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSONResponseOK(w, `{"deleted":true}`)
}
