package api

import (
	"net/http"

	"github.com/phrazzld/jobboard-api/internal/api/shared"
	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/service"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// JobHandler serves job endpoints and applications.
type JobHandler struct {
	jobs          store.JobStore
	jobService    *service.JobService
	resumes       *service.ResumeService
	defaultOffset int
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(
	jobs store.JobStore,
	jobService *service.JobService,
	resumes *service.ResumeService,
	defaultOffset int,
) *JobHandler {
	return &JobHandler{
		jobs:          jobs,
		jobService:    jobService,
		resumes:       resumes,
		defaultOffset: defaultOffset,
	}
}

// Create handles POST /job/create-job.
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	var req CreateJobRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	job, err := h.jobService.Create(r.Context(), claims.UserID, domain.NewJob{
		Name:        req.Name,
		CompanyID:   req.CompanyID,
		Location:    req.Location,
		Quantity:    req.Quantity,
		Salary:      req.Salary,
		Level:       req.Level,
		Description: req.Description,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, job)
}

// Get handles GET /job/get-job/{id}.
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	job, err := h.jobs.GetJobByID(r.Context(), domain.JobID(id))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, job)
}

// List handles GET /job/list-job.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r, h.defaultOffset)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	jobs, err := h.jobs.ListJobs(r.Context(), page)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, jobs)
}

// ListByCompany handles GET /job/list-job-by-company?company_id=.
func (h *JobHandler) ListByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := queryID(r, "company_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	page, err := pageFromQuery(r, h.defaultOffset)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	jobs, err := h.jobs.ListJobsByCompany(r.Context(), page, domain.CompanyID(companyID))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, jobs)
}

// ListByResume handles GET /job/list-job-by-resume?resume_id=, the jobs one
// of the caller's resumes was submitted to.
func (h *JobHandler) ListByResume(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	resumeID, err := queryID(r, "resume_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	jobs, err := h.resumes.AppliedJobs(r.Context(), claims.UserID, domain.ResumeID(resumeID))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, jobs)
}

// Update handles PUT /job/update-job.
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	var req UpdateJobRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	job, err := h.jobService.Update(r.Context(), claims.UserID, &domain.Job{
		ID:          req.ID,
		Name:        req.Name,
		CompanyID:   req.CompanyID,
		Location:    req.Location,
		Quantity:    req.Quantity,
		Salary:      req.Salary,
		Level:       req.Level,
		Description: req.Description,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, job)
}

// Delete handles PUT /job/delete-job.
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
	if err := h.jobService.Delete(r.Context(), claims.UserID, domain.JobID(req.ID)); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{Deleted: true})
}

// Apply handles POST /job/apply-job.
func (h *JobHandler) Apply(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	var req ApplyRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	app, err := h.resumes.Apply(r.Context(), claims.UserID, req.ResumeID, req.JobID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, app)
}
