package programs

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/traintower/backend/internal/auth"
	"github.com/traintower/backend/internal/telemetry/metrics"
	"github.com/traintower/backend/internal/telemetry/tracing"
	"github.com/traintower/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=programs_test

type duplicator interface {
	Duplicate(ctx context.Context, programID, trainerID int, nameOverride *string) (*Program, error)
}

type handlerRepo interface {
	CreateProgram(ctx context.Context, program Program) (*Program, error)
	GetProgramTree(ctx context.Context, id, trainerID int) (*Program, error)
	ListPrograms(ctx context.Context, trainerID int) ([]Program, error)
	UpdateProgram(ctx context.Context, program *Program) error
	DeleteProgram(ctx context.Context, id, trainerID int) error
}

type DuplicateResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *Program `json:"data"`
}

type ValidationFailedResponse struct {
	Error   string             `json:"error"`
	Details []*ValidationError `json:"details"`
}

type DeleteProgramResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdateProgramResponse struct {
	UpdatedID int `json:"updatedId"`
}

type ListResponse struct {
	Programs []Program `json:"programs"`
	Total    int       `json:"total"`
}

type Handler struct {
	repo    handlerRepo
	service duplicator
	metrics *metrics.Manager
}

func NewHandler(repo handlerRepo, service duplicator, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		service: service,
		metrics: metrics,
	}
}

// HandleDuplicate copies a whole program tree for the logged in trainer.
// Response contract:
//   - 400 {"error": "Validation failed", "details": [...]} for a present but
//     empty name override,
//   - 404 {"error": "Program not found"} for a missing or foreign program,
//   - 201 {"success": true, "message": ..., "data": <program tree>} on success,
//   - 500 {"success": false, "error": "Failed to duplicate program"} otherwise,
//     with the real cause kept out of the response.
func (handler *Handler) HandleDuplicate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.duplicate")
	defer span.End()

	trainerID, ok := auth.TrainerIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSONError(w, "Program not found", http.StatusNotFound)
		return
	}

	// body is optional, an absent or empty body means no name override
	var params struct {
		Name *string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil && !errors.Is(err, io.EOF) {
		log.Tracef("duplicate program %d, unmarshal json params: %s", id, err)
		writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	duplicated, err := handler.service.Duplicate(ctx, id, trainerID, params.Name)
	if err != nil {
		var validationErr *ValidationError
		switch {
		case errors.As(err, &validationErr):
			handler.writeValidationFailed(w, validationErr)
		case errors.Is(err, ErrProgramNotFound):
			writeJSONError(w, "Program not found", http.StatusNotFound)
		default:
			log.Errorf("failed to duplicate program %d for trainer %d: %s", id, trainerID, err)
			respJson, err := json.Marshal(struct {
				Success bool   `json:"success"`
				Error   string `json:"error"`
			}{
				Success: false,
				Error:   "Failed to duplicate program",
			})
			if err != nil {
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusInternalServerError)
		}
		return
	}

	handler.metrics.CounterProgramsDuplicated.Inc()

	respJson, err := json.Marshal(DuplicateResponse{
		Success: true,
		Message: "Program duplicated successfully",
		Data:    duplicated,
	})
	if err != nil {
		log.Errorf("failed to marshal duplicated program %d: %s", duplicated.ID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("program %d duplicated to %d [%s]", id, duplicated.ID, duplicated.Name)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.create")
	defer span.End()

	trainerID, ok := auth.TrainerIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var program Program
	if err := json.NewDecoder(r.Body).Decode(&program); err != nil {
		log.Tracef("new program, unmarshal json params: %s", err)
		http.Error(w, "add program failed", http.StatusBadRequest)
		return
	}

	if validationErr := validateProgram(&program); validationErr != nil {
		handler.writeValidationFailed(w, validationErr)
		return
	}

	program.TrainerID = trainerID
	added, err := handler.repo.CreateProgram(ctx, program)
	if err != nil {
		log.Errorf("failed to add new program [%s]: %s", program.Name, err)
		http.Error(w, "error, failed to add new program", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal new program: %s", err)
		http.Error(w, "error, failed to add new program", http.StatusInternalServerError)
		return
	}

	log.Debugf("new program added: %d [%s]", added.ID, added.Name)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.get")
	defer span.End()

	trainerID, ok := auth.TrainerIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSONError(w, "Program not found", http.StatusNotFound)
		return
	}

	program, err := handler.repo.GetProgramTree(ctx, id, trainerID)
	if err != nil {
		if errors.Is(err, ErrProgramNotFound) {
			writeJSONError(w, "Program not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get program %d: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	programJson, err := json.Marshal(program)
	if err != nil {
		log.Errorf("failed to marshal program %d: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, programJson)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.list")
	defer span.End()

	trainerID, ok := auth.TrainerIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	programs, err := handler.repo.ListPrograms(ctx, trainerID)
	if err != nil {
		log.Errorf("failed to list programs for trainer %d: %s", trainerID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListResponse{
		Programs: programs,
		Total:    len(programs),
	})
	if err != nil {
		log.Errorf("failed to marshal programs list: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.update")
	defer span.End()

	trainerID, ok := auth.TrainerIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSONError(w, "Program not found", http.StatusNotFound)
		return
	}

	var program Program
	if err := json.NewDecoder(r.Body).Decode(&program); err != nil {
		log.Tracef("update program %d, unmarshal json params: %s", id, err)
		http.Error(w, "update program failed", http.StatusBadRequest)
		return
	}

	if validationErr := validateProgram(&program); validationErr != nil {
		handler.writeValidationFailed(w, validationErr)
		return
	}

	program.ID = id
	program.TrainerID = trainerID
	if err := handler.repo.UpdateProgram(ctx, &program); err != nil {
		if errors.Is(err, ErrProgramNotFound) {
			writeJSONError(w, "Program not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update program %d: %s", id, err)
		http.Error(w, "error, failed to update program", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(UpdateProgramResponse{UpdatedID: id})
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.delete")
	defer span.End()

	trainerID, ok := auth.TrainerIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSONError(w, "Program not found", http.StatusNotFound)
		return
	}

	if err := handler.repo.DeleteProgram(ctx, id, trainerID); err != nil {
		if errors.Is(err, ErrProgramNotFound) {
			writeJSONError(w, "Program not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete program %d: %s", id, err)
		http.Error(w, "error, failed to delete program", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(DeleteProgramResponse{DeletedID: id})
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) writeValidationFailed(w http.ResponseWriter, validationErr *ValidationError) {
	respJson, err := json.Marshal(ValidationFailedResponse{
		Error:   "Validation failed",
		Details: []*ValidationError{validationErr},
	})
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusBadRequest)
}

func validateProgram(program *Program) *ValidationError {
	if program.Name == "" {
		return &ValidationError{Field: "name", Message: "name must not be empty"}
	}
	if program.DurationWeeks < 0 {
		return &ValidationError{Field: "durationWeeks", Message: "duration must not be negative"}
	}
	return nil
}

func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	respJson, err := json.Marshal(struct {
		Error string `json:"error"`
	}{Error: message})
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, statusCode)
}
