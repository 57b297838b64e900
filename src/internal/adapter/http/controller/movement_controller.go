package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/whiteshadows42/AccountManager/src/internal/adapter/http/models"
	"github.com/whiteshadows42/AccountManager/src/internal/commons"
)

type MovementService interface {
	Transfer(ctx context.Context, req models.TransferRequest) error
	History(ctx context.Context, accountNumber string, startDate, endDate *time.Time, page commons.PageRequest) (commons.Page[models.MovementResponse], error)
}

type MovementController struct {
	service MovementService
}

func NewMovementController(service MovementService) *MovementController {
	return &MovementController{service: service}
}

func (c *MovementController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	transferHandler := http.Handler(http.HandlerFunc(c.transfer))
	historyHandler := http.Handler(http.HandlerFunc(c.history))
	if authMiddleware != nil {
		transferHandler = authMiddleware(transferHandler)
		historyHandler = authMiddleware(historyHandler)
	}
	mux.Handle("/transfers", transferHandler)
	mux.Handle("/transfers/history", historyHandler)
}

func (c *MovementController) transfer(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[struct{}]("method not allowed"))
		return
	}

	var req models.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[struct{}]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[struct{}]("validation failed", err.Error()))
		return
	}

	if err := c.service.Transfer(r.Context(), req); err != nil {
		logError(r, err, nil)
		status := statusForError(err)
		writeJSON(w, status, commons.ErrorResponse[struct{}]("failed to process transfer", err.Error()))
		logResponse(r, status, start)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("transfer completed successfully", struct{}{}))
	logResponse(r, http.StatusOK, start)
}

func (c *MovementController) history(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[commons.Page[models.MovementResponse]]("method not allowed"))
		return
	}

	query := r.URL.Query()

	startDate, err := parseDateParam(query.Get("startDate"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[commons.Page[models.MovementResponse]]("validation failed", "startDate must be a valid YYYY-MM-DD date"))
		return
	}
	endDate, err := parseDateParam(query.Get("endDate"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[commons.Page[models.MovementResponse]]("validation failed", "endDate must be a valid YYYY-MM-DD date"))
		return
	}

	page, err := parsePageRequest(query.Get("page"), query.Get("size"), query.Get("sort"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[commons.Page[models.MovementResponse]]("validation failed", err.Error()))
		return
	}

	response, err := c.service.History(r.Context(), query.Get("accountNumber"), startDate, endDate, page)
	if err != nil {
		logError(r, err, nil)
		status := statusForError(err)
		writeJSON(w, status, commons.ErrorResponse[commons.Page[models.MovementResponse]]("failed to fetch history", err.Error()))
		logResponse(r, status, start)
		return
	}

	// An account with no matching movements is reported as not found, not as
	// an empty page.
	if response.TotalElements == 0 {
		writeJSON(w, http.StatusNotFound, commons.ErrorResponse[commons.Page[models.MovementResponse]]("no movements found"))
		logResponse(r, http.StatusNotFound, start)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("history fetched successfully", response))
	logResponse(r, http.StatusOK, start)
}

func parseDateParam(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parsePageRequest(pageRaw, sizeRaw, sortRaw string) (commons.PageRequest, error) {
	req := commons.PageRequest{}

	if trimmed := strings.TrimSpace(pageRaw); trimmed != "" {
		page, err := strconv.Atoi(trimmed)
		if err != nil || page < 0 {
			return commons.PageRequest{}, errors.New("page must be a non-negative integer")
		}
		req.Page = page
	}
	if trimmed := strings.TrimSpace(sizeRaw); trimmed != "" {
		size, err := strconv.Atoi(trimmed)
		if err != nil || size <= 0 {
			return commons.PageRequest{}, errors.New("size must be a positive integer")
		}
		req.Size = size
	}

	sort, err := commons.ParseSort(sortRaw)
	if err != nil {
		return commons.PageRequest{}, err
	}
	req.Sort = sort

	return req, nil
}
