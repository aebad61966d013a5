package appointments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/traintower/backend/internal/auth"
	"github.com/traintower/backend/internal/telemetry/metrics"
	"github.com/traintower/backend/internal/telemetry/tracing"
	"github.com/traintower/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type booker interface {
	Book(ctx context.Context, a Appointment) (*Appointment, error)
}

type handlerRepo interface {
	ListBetween(ctx context.Context, trainerID int, from, to time.Time) ([]Appointment, error)
	Delete(ctx context.Context, id, trainerID int) error
	Windows(ctx context.Context, trainerID int) ([]AvailabilityWindow, error)
	AddWindow(ctx context.Context, w AvailabilityWindow) (*AvailabilityWindow, error)
}

type ListResponse struct {
	Appointments []Appointment `json:"appointments"`
	Total        int           `json:"total"`
}

type WindowsResponse struct {
	Windows []AvailabilityWindow `json:"windows"`
}

type Handler struct {
	service booker
	repo    handlerRepo
	metrics *metrics.Manager
}

func NewHandler(service booker, repo handlerRepo, metrics *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		repo:    repo,
		metrics: metrics,
	}
}

func (handler *Handler) HandleBook(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.appointments.book")
	defer span.End()

	trainerID, ok := auth.TrainerIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var appointment Appointment
	if err := json.NewDecoder(r.Body).Decode(&appointment); err != nil {
		log.Tracef("book appointment, unmarshal json params: %s", err)
		http.Error(w, "book appointment failed", http.StatusBadRequest)
		return
	}

	appointment.TrainerID = trainerID
	if appointment.Kind == "" {
		appointment.Kind = KindSession
	}

	booked, err := handler.service.Book(ctx, appointment)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidTimeRange):
			http.Error(w, "error, start must be before end", http.StatusBadRequest)
		case errors.Is(err, ErrOutsideAvailability):
			http.Error(w, "error, outside availability", http.StatusBadRequest)
		case errors.Is(err, ErrConflict):
			handler.metrics.CounterAppointmentConflict.Inc()
			http.Error(w, "error, slot already taken", http.StatusConflict)
		default:
			log.Errorf("failed to book appointment for trainer %d: %s", trainerID, err)
			http.Error(w, "error, failed to book appointment", http.StatusInternalServerError)
		}
		return
	}

	handler.metrics.CounterAppointmentsBooked.Inc()

	bookedJson, err := json.Marshal(booked)
	if err != nil {
		log.Errorf("failed to marshal booked appointment: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("appointment booked: %d [%s - %s]", booked.ID, booked.StartsAt, booked.EndsAt)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, bookedJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.appointments.list")
	defer span.End()

	trainerID, ok := auth.TrainerIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	// defaults to the upcoming week
	from := time.Now().Truncate(24 * time.Hour)
	to := from.Add(7 * 24 * time.Hour)
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

	appointments, err := handler.repo.ListBetween(ctx, trainerID, from, to)
	if err != nil {
		log.Errorf("failed to list appointments for trainer %d: %s", trainerID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListResponse{
		Appointments: appointments,
		Total:        len(appointments),
	})
	if err != nil {
		log.Errorf("failed to marshal appointments list: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.appointments.delete")
	defer span.End()

	trainerID, ok := auth.TrainerIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id invalid", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id, trainerID); err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete appointment %d: %s", id, err)
		http.Error(w, "error, failed to delete appointment", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"deleted":true}`)
}

func (handler *Handler) HandleGetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.appointments.availability")
	defer span.End()

	trainerID, ok := auth.TrainerIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	windows, err := handler.repo.Windows(ctx, trainerID)
	if err != nil {
		log.Errorf("failed to get availability for trainer %d: %s", trainerID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(WindowsResponse{Windows: windows})
	if err != nil {
		log.Errorf("failed to marshal availability: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleAddAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.appointments.addAvailability")
	defer span.End()

	trainerID, ok := auth.TrainerIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var window AvailabilityWindow
	if err := json.NewDecoder(r.Body).Decode(&window); err != nil {
		log.Tracef("add availability, unmarshal json params: %s", err)
		http.Error(w, "add availability failed", http.StatusBadRequest)
		return
	}

	if window.StartMinute < 0 || window.EndMinute > 24*60 || window.StartMinute >= window.EndMinute {
		http.Error(w, "error, invalid window minutes", http.StatusBadRequest)
		return
	}

	window.TrainerID = trainerID
	added, err := handler.repo.AddWindow(ctx, window)
	if err != nil {
		log.Errorf("failed to add availability for trainer %d: %s", trainerID, err)
		http.Error(w, "error, failed to add availability", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}
