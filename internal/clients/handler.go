package clients

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=clients_test

type clientsRepo interface {
	Add(ctx context.Context, client Client) (*Client, error)
	Get(ctx context.Context, id, trainerID int) (*Client, error)
	List(ctx context.Context, trainerID int, activeOnly bool) ([]Client, error)
	Update(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id, trainerID int) error
}

type ListResponse struct {
	Clients []Client `json:"clients"`
	Total   int      `json:"total"`
}

type DeleteClientResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo clientsRepo
}

func NewHandler(repo clientsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.clients.add")
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

	var client Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		log.Tracef("new client, unmarshal json params: %s", err)
		http.Error(w, "add client failed", http.StatusBadRequest)
		return
	}

	if client.Name == "" {
		http.Error(w, "error, client name empty", http.StatusBadRequest)
		return
	}

	client.TrainerID = trainerID
	client.Active = true
	added, err := handler.repo.Add(ctx, client)
	if err != nil {
		log.Errorf("failed to add new client [%s]: %s", client.Name, err)
		http.Error(w, "error, failed to add new client", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal new client: %s", err)
		http.Error(w, "error, failed to add new client", http.StatusInternalServerError)
		return
	}

	log.Debugf("new client added: %d [%s]", added.ID, added.Name)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.clients.get")
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

	client, err := handler.repo.Get(ctx, id, trainerID)
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			http.Error(w, "client not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get client %d: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	clientJson, err := json.Marshal(client)
	if err != nil {
		log.Errorf("failed to marshal client %d: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, clientJson)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.clients.list")
	defer span.End()

	trainerID, ok := auth.TrainerIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	activeOnly := r.URL.Query().Get("active") == "true"

	clients, err := handler.repo.List(ctx, trainerID, activeOnly)
	if err != nil {
		log.Errorf("failed to list clients for trainer %d: %s", trainerID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListResponse{
		Clients: clients,
		Total:   len(clients),
	})
	if err != nil {
		log.Errorf("failed to marshal clients list: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.clients.update")
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

	var client Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		log.Tracef("update client %d, unmarshal json params: %s", id, err)
		http.Error(w, "update client failed", http.StatusBadRequest)
		return
	}

	if client.Name == "" {
		http.Error(w, "error, client name empty", http.StatusBadRequest)
		return
	}

	client.ID = id
	client.TrainerID = trainerID
	if err := handler.repo.Update(ctx, &client); err != nil {
		if errors.Is(err, ErrClientNotFound) {
			http.Error(w, "client not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update client %d: %s", id, err)
		http.Error(w, "error, failed to update client", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"updated":true}`)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.clients.delete")
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
		if errors.Is(err, ErrClientNotFound) {
			http.Error(w, "client not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete client %d: %s", id, err)
		http.Error(w, "error, failed to delete client", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(DeleteClientResponse{DeletedID: id})
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
