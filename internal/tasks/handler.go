package tasks

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=tasks_test

type tasksRepo interface {
	Add(ctx context.Context, task Task) (*Task, error)
	Get(ctx context.Context, id, trainerID int) (*Task, error)
	List(ctx context.Context, trainerID int, status Status) ([]Task, error)
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, id, trainerID int) error
}

type ListResponse struct {
	Tasks []Task `json:"tasks"`
	Total int    `json:"total"`
}

type Handler struct {
	repo tasksRepo
}

func NewHandler(repo tasksRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tasks.add")
	defer span.End()

	trainerID, ok := auth.TrainerIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var task Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		log.Tracef("new task, unmarshal json params: %s", err)
		http.Error(w, "add task failed", http.StatusBadRequest)
		return
	}

	if task.Title == "" {
		http.Error(w, "error, task title empty", http.StatusBadRequest)
		return
	}
	if task.Status != "" && !task.Status.Valid() {
		http.Error(w, "error, invalid task status", http.StatusBadRequest)
		return
	}

	task.TrainerID = trainerID
	added, err := handler.repo.Add(ctx, task)
	if err != nil {
		log.Errorf("failed to add new task [%s]: %s", task.Title, err)
		http.Error(w, "error, failed to add new task", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal new task: %s", err)
		http.Error(w, "error, failed to add new task", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tasks.list")
	defer span.End()

	trainerID, ok := auth.TrainerIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	status := Status(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		http.Error(w, "error, invalid status filter", http.StatusBadRequest)
		return
	}

	tasks, err := handler.repo.List(ctx, trainerID, status)
	if err != nil {
		log.Errorf("failed to list tasks for trainer %d: %s", trainerID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListResponse{
		Tasks: tasks,
		Total: len(tasks),
	})
	if err != nil {
		log.Errorf("failed to marshal tasks list: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tasks.update")
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

	var update Task
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Tracef("update task %d, unmarshal json params: %s", id, err)
		http.Error(w, "update task failed", http.StatusBadRequest)
		return
	}

	if update.Title == "" {
		http.Error(w, "error, task title empty", http.StatusBadRequest)
		return
	}

	current, err := handler.repo.Get(ctx, id, trainerID)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get task %d: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if update.Status == "" {
		update.Status = current.Status
	}
	if err := ValidateTransition(current.Status, update.Status); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	update.ID = id
	update.TrainerID = trainerID
	if update.Priority == "" {
		update.Priority = current.Priority
	}
	if err := handler.repo.Update(ctx, &update); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update task %d: %s", id, err)
		http.Error(w, "error, failed to update task", http.StatusInternalServerError)
		return
	}

	updatedJson, err := json.Marshal(update)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, updatedJson)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tasks.delete")
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
		if errors.Is(err, ErrTaskNotFound) {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete task %d: %s", id, err)
		http.Error(w, "error, failed to delete task", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"deleted":true}`)
}
