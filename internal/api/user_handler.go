package api

import (
	"net/http"

	"github.com/phrazzld/jobboard-api/internal/api/shared"
	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/service"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// UserHandler serves user reads and account management for the caller.
type UserHandler struct {
	users         store.UserStore
	accounts      *service.AccountService
	defaultOffset int
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users store.UserStore, accounts *service.AccountService, defaultOffset int) *UserHandler {
	return &UserHandler{users: users, accounts: accounts, defaultOffset: defaultOffset}
}

// GetUser handles GET /user/get-user/{id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	user, err := h.users.GetUserByID(r.Context(), domain.UserID(id))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// ListUsers handles GET /user/list-user.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r, h.defaultOffset)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	users, err := h.users.ListUsers(r.Context(), page)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// UpdateProfile handles PUT /user/update-user and /admin/update-admin.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	var req UpdateEmailRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	user, err := h.accounts.UpdateEmail(r.Context(), claims.UserID, req.Email)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// UpdatePassword handles PUT /user/update-password and /admin/update-password.
func (h *UserHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	var req UpdatePasswordRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := h.accounts.UpdatePassword(r.Context(), claims.UserID, req.Password); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteAccount handles PUT /user/delete-user and /admin/delete-admin.
func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := h.accounts.Delete(r.Context(), claims.UserID); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{Deleted: true})
}

// SetRole returns a handler for PUT /admin/set-hr and /admin/set-admin.
func (h *UserHandler) SetRole(role domain.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserRequest
		if err := decodeAndValidate(w, r, &req); err != nil {
			HandleAPIError(w, r, err)
			return
		}
		user, err := h.accounts.SetRole(r.Context(), req.UserID, role)
		if err != nil {
			HandleAPIError(w, r, err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, user)
	}
}

// AssignCompany handles PUT /admin/assign-company.
func (h *UserHandler) AssignCompany(w http.ResponseWriter, r *http.Request) {
	var req AssignCompanyRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	user, err := h.accounts.AssignCompany(r.Context(), req.UserID, req.CompanyID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}
