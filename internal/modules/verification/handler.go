package verification

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shoply/shoply-backend/internal/apperror"
	"github.com/shoply/shoply-backend/internal/httpx"
)

type Handler struct {
	service Service
	log     *zap.SugaredLogger
}

func NewHandler(service Service, log *zap.SugaredLogger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Post("/verification/send", h.sendCode)
	router.Post("/verification/confirm", h.confirm)
}

func (h *Handler) sendCode(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Email string `json:"email"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		httpx.Error(w, apperror.Input("malformed request body"))
		return
	}

	code, err := h.service.SendCode(r.Context(), req.Email)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	// The code goes to the mailbox, not the response body.
	h.log.Infow("verification code sent", "email", req.Email, "code", code)
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "verification code sent"})
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Email string `json:"email"`
		Code  int    `json:"code"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		httpx.Error(w, apperror.Input("malformed request body"))
		return
	}

	if err := h.service.Confirm(r.Context(), req.Code, req.Email); err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "email verified"})
}
