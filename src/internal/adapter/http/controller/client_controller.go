package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/whiteshadows42/AccountManager/src/internal/adapter/http/models"
	"github.com/whiteshadows42/AccountManager/src/internal/commons"
)

type ClientService interface {
	CreateClient(ctx context.Context, req models.ClientRequest) (models.ClientResponse, error)
}

type ClientController struct {
	service ClientService
}

func NewClientController(service ClientService) *ClientController {
	return &ClientController{service: service}
}

func (c *ClientController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	handler := http.Handler(http.HandlerFunc(c.createClient))
	if authMiddleware != nil {
		handler = authMiddleware(handler)
	}
	mux.Handle("/clients", handler)
}

func (c *ClientController) createClient(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.ClientResponse]("method not allowed"))
		return
	}

	var req models.ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.ClientResponse]("invalid request body", err.Error()))
		return
	}

	response, err := c.service.CreateClient(r.Context(), req)
	if err != nil {
		logError(r, err, nil)
		status := statusForError(err)
		writeJSON(w, status, commons.ErrorResponse[models.ClientResponse]("failed to create client", err.Error()))
		logResponse(r, status, start)
		return
	}

	writeJSON(w, http.StatusCreated, commons.SuccessResponse("client created successfully", response))
	logResponse(r, http.StatusCreated, start)
}
