package account

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shoply/shoply-backend/internal/apperror"
	"github.com/shoply/shoply-backend/internal/httpx"
	"github.com/shoply/shoply-backend/internal/token"
	"github.com/shoply/shoply-backend/internal/upload"
)

type Handler struct {
	service Service
	tokens  *token.Issuer
	uploads *upload.Storage
	log     *zap.SugaredLogger
}

func NewHandler(service Service, tokens *token.Issuer, uploads *upload.Storage, log *zap.SugaredLogger) *Handler {
	return &Handler{service: service, tokens: tokens, uploads: uploads, log: log}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Post("/users/register", h.register)
	router.Get("/users", h.listProfiles)
	router.Get("/users/me", h.getOwnProfile)
	router.Put("/users/me", h.updateProfile)
	router.Get("/users/{id}", h.getProfile)
	router.Delete("/users/{id}", h.deleteProfile)
	router.Patch("/users/password", h.changePassword)
	router.Post("/users/me/profile-image", h.uploadProfileImage)
}

// bearerClaims verifies the request's bearer access token. Every protected
// operation does its own verification against the shared issuer.
func (h *Handler) bearerClaims(r *http.Request) (*token.Claims, error) {
	authz := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return nil, apperror.Authentication("missing bearer token")
	}
	claims, err := h.tokens.VerifyAccess(strings.TrimPrefix(authz, prefix))
	if err != nil {
		return nil, apperror.Authentication("invalid access token")
	}
	return claims, nil
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperror.Input("malformed request body"))
		return
	}

	u, err := h.service.Register(r.Context(), req)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, u)
}

func (h *Handler) getOwnProfile(w http.ResponseWriter, r *http.Request) {
	claims, err := h.bearerClaims(r)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	h.respondProfile(w, r, claims.UserID())
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	if _, err := h.bearerClaims(r); err != nil {
		httpx.Error(w, err)
		return
	}
	h.respondProfile(w, r, chi.URLParam(r, "id"))
}

func (h *Handler) respondProfile(w http.ResponseWriter, r *http.Request, id string) {
	p, err := h.service.GetProfile(r.Context(), id)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	claims, err := h.bearerClaims(r)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperror.Input("malformed request body"))
		return
	}

	p, err := h.service.UpdateProfile(r.Context(), claims.Email, req)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

func (h *Handler) listProfiles(w http.ResponseWriter, r *http.Request) {
	claims, err := h.bearerClaims(r)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	if claims.Role != string(RoleAdmin) {
		httpx.Error(w, apperror.Authentication("admin access required"))
		return
	}

	profiles, err := h.service.ListProfiles(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, profiles)
}

func (h *Handler) deleteProfile(w http.ResponseWriter, r *http.Request) {
	claims, err := h.bearerClaims(r)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	id := chi.URLParam(r, "id")
	if claims.UserID() != id && claims.Role != string(RoleAdmin) {
		httpx.Error(w, apperror.Authentication("cannot delete another account"))
		return
	}

	deleted, err := h.service.DeleteProfile(r.Context(), id)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, deleted)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperror.Input("malformed request body"))
		return
	}

	if err := h.service.ChangePassword(r.Context(), req); err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

// uploadResponse is the contract of the profile-image endpoint: {success,
// imageUrl} on success, {success:false, message} on rejection.
type uploadResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl,omitempty"`
	Message  string `json:"message,omitempty"`
}

func writeUpload(w http.ResponseWriter, status int, resp uploadResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) uploadProfileImage(w http.ResponseWriter, r *http.Request) {
	claims, err := h.bearerClaims(r)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	storedPath, err := h.uploads.SaveProfileImage(r)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrFileTooLarge):
			writeUpload(w, http.StatusBadRequest, uploadResponse{Message: "file too large"})
		case errors.Is(err, upload.ErrInvalidUpload):
			writeUpload(w, http.StatusBadRequest, uploadResponse{Message: "upload failed"})
		default:
			h.log.Errorw("profile image upload failed", "user", claims.UserID(), "error", err)
			writeUpload(w, http.StatusInternalServerError, uploadResponse{Message: "upload failed"})
		}
		return
	}

	imageURL, err := h.service.SetProfileImage(r.Context(), claims.UserID(), storedPath)
	if err != nil {
		appErr := apperror.From(err)
		writeUpload(w, appErr.Status, uploadResponse{Message: appErr.Message})
		return
	}
	writeUpload(w, http.StatusOK, uploadResponse{Success: true, ImageURL: imageURL})
}
