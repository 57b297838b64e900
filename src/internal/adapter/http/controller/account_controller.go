package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/whiteshadows42/AccountManager/src/internal/adapter/http/models"
	"github.com/whiteshadows42/AccountManager/src/internal/commons"
)

type AccountService interface {
	CreateAccount(ctx context.Context, req models.AccountRequest) (models.AccountNumberResponse, error)
	GetBalance(ctx context.Context, accountNumber int64) (models.AccountBalanceResponse, error)
}

type AccountController struct {
	service AccountService
}

func NewAccountController(service AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	createHandler := http.Handler(http.HandlerFunc(c.createAccount))
	balanceHandler := http.Handler(http.HandlerFunc(c.getBalance))
	if authMiddleware != nil {
		createHandler = authMiddleware(createHandler)
		balanceHandler = authMiddleware(balanceHandler)
	}
	mux.Handle("/accounts", createHandler)
	mux.Handle("/accounts/balance", balanceHandler)
}

func (c *AccountController) createAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.AccountNumberResponse]("method not allowed"))
		return
	}

	var req models.AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountNumberResponse]("invalid request body", err.Error()))
		return
	}

	response, err := c.service.CreateAccount(r.Context(), req)
	if err != nil {
		logError(r, err, nil)
		status := statusForError(err)
		writeJSON(w, status, commons.ErrorResponse[models.AccountNumberResponse]("failed to create account", err.Error()))
		logResponse(r, status, start)
		return
	}

	writeJSON(w, http.StatusCreated, commons.SuccessResponse("account created successfully", response))
	logResponse(r, http.StatusCreated, start)
}

func (c *AccountController) getBalance(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.AccountBalanceResponse]("method not allowed"))
		return
	}

	raw := strings.TrimSpace(r.URL.Query().Get("accountNumber"))
	accountNumber, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountBalanceResponse]("validation failed", "accountNumber must be a positive integer"))
		return
	}

	response, err := c.service.GetBalance(r.Context(), accountNumber)
	if err != nil {
		logError(r, err, nil)
		status := statusForError(err)
		writeJSON(w, status, commons.ErrorResponse[models.AccountBalanceResponse]("failed to get balance", err.Error()))
		logResponse(r, status, start)
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("balance fetched successfully", response))
	logResponse(r, http.StatusOK, start)
}
