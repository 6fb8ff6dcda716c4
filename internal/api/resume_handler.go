package api

import (
	"net/http"

	"github.com/phrazzld/jobboard-api/internal/api/shared"
	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/service"
)

// ResumeHandler serves resume endpoints. Every route acts on the caller's
// own resumes, except ListByJob which is the HR view of a job's applicants.
type ResumeHandler struct {
	resumes       *service.ResumeService
	jobs          *service.JobService
	defaultOffset int
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(resumes *service.ResumeService, jobs *service.JobService, defaultOffset int) *ResumeHandler {
	return &ResumeHandler{resumes: resumes, jobs: jobs, defaultOffset: defaultOffset}
}

// Create handles POST /resume/create-resume.
func (h *ResumeHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	var req ResumeRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	resume, err := h.resumes.Create(r.Context(), claims.UserID, domain.NewResume{Email: req.Email, URL: req.URL})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, resume)
}

// Get handles GET /resume/get-resume/{id}.
func (h *ResumeHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	resume, err := h.resumes.Get(r.Context(), claims.UserID, domain.ResumeID(id))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resume)
}

// ListByUser handles GET /resume/list-resume-by-user.
func (h *ResumeHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	page, err := pageFromQuery(r, h.defaultOffset)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	resumes, err := h.resumes.List(r.Context(), claims.UserID, page)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resumes)
}

// ListByJob handles GET /resume/list-resume-by-job?job_id=.
func (h *ResumeHandler) ListByJob(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	jobID, err := queryID(r, "job_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	page, err := pageFromQuery(r, h.defaultOffset)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	resumes, err := h.jobs.Applicants(r.Context(), claims.UserID, page, domain.JobID(jobID))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resumes)
}

// Update handles PUT /resume/update-resume.
func (h *ResumeHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	var req UpdateResumeRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	resume, err := h.resumes.Update(r.Context(), claims.UserID, &domain.Resume{
		ID:    req.ID,
		Email: req.Email,
		URL:   req.URL,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resume)
}

// Delete handles PUT /resume/delete-resume.
func (h *ResumeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	var req DeleteRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := h.resumes.Delete(r.Context(), claims.UserID, domain.ResumeID(req.ID)); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{Deleted: true})
}
