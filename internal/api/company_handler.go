package api

import (
	"net/http"

	"github.com/phrazzld/jobboard-api/internal/api/shared"
	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// CompanyHandler serves company endpoints. Mutations are admin-only and have
// no ownership rule, so it talks to the store directly.
type CompanyHandler struct {
	companies     store.CompanyStore
	defaultOffset int
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companies store.CompanyStore, defaultOffset int) *CompanyHandler {
	return &CompanyHandler{companies: companies, defaultOffset: defaultOffset}
}

// Create handles POST /company/create-company.
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.NewCompany
	if err := decodeAndValidate(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	company, err := h.companies.CreateCompany(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, company)
}

// Get handles GET /company/get-company/{id}.
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	company, err := h.companies.GetCompanyByID(r.Context(), domain.CompanyID(id))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, company)
}

// List handles GET /company/list-company.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r, h.defaultOffset)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	companies, err := h.companies.ListCompanies(r.Context(), page)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, companies)
}

// Update handles PUT /company/update-company.
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateCompanyRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	company, err := h.companies.UpdateCompany(r.Context(), &domain.Company{
		ID:          req.ID,
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		Description: req.Description,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, company)
}

// Delete handles PUT /company/delete-company.
func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req DeleteRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	deleted, err := h.companies.DeleteCompany(r.Context(), domain.CompanyID(req.ID))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{Deleted: deleted})
}
