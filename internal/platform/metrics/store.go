package metrics

import (
	"context"
	"time"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// InstrumentStore wraps s so every call is counted and timed. Results and
// errors pass through unchanged.
func InstrumentStore(s store.Store, m *Metrics) store.Store {
	return &instrumentedStore{next: s, metrics: m}
}

type instrumentedStore struct {
	next    store.Store
	metrics *Metrics
}

var _ store.Store = (*instrumentedStore)(nil)

func (s *instrumentedStore) CreateUser(ctx context.Context, nu domain.NewUser) (_ *domain.User, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("create_user", start, err) }(time.Now())
	return s.next.CreateUser(ctx, nu)
}

func (s *instrumentedStore) GetUserByID(ctx context.Context, id domain.UserID) (_ *domain.User, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("get_user_by_id", start, err) }(time.Now())
	return s.next.GetUserByID(ctx, id)
}

func (s *instrumentedStore) GetUserByEmail(ctx context.Context, email string) (_ *domain.User, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("get_user_by_email", start, err) }(time.Now())
	return s.next.GetUserByEmail(ctx, email)
}

func (s *instrumentedStore) ListUsers(ctx context.Context, page store.Page) (_ []domain.User, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("list_users", start, err) }(time.Now())
	return s.next.ListUsers(ctx, page)
}

func (s *instrumentedStore) UpdateUser(ctx context.Context, user *domain.User) (_ *domain.User, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("update_user", start, err) }(time.Now())
	return s.next.UpdateUser(ctx, user)
}

func (s *instrumentedStore) UpdatePassword(ctx context.Context, id domain.UserID, passwordHash string) (_ *domain.User, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("update_password", start, err) }(time.Now())
	return s.next.UpdatePassword(ctx, id, passwordHash)
}

func (s *instrumentedStore) SetRole(ctx context.Context, id domain.UserID, role domain.Role) (_ *domain.User, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("set_role", start, err) }(time.Now())
	return s.next.SetRole(ctx, id, role)
}

func (s *instrumentedStore) DeleteUser(ctx context.Context, id domain.UserID) (_ bool, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("delete_user", start, err) }(time.Now())
	return s.next.DeleteUser(ctx, id)
}

func (s *instrumentedStore) CreateCompany(ctx context.Context, nc domain.NewCompany) (_ *domain.Company, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("create_company", start, err) }(time.Now())
	return s.next.CreateCompany(ctx, nc)
}

func (s *instrumentedStore) GetCompanyByID(ctx context.Context, id domain.CompanyID) (_ *domain.Company, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("get_company_by_id", start, err) }(time.Now())
	return s.next.GetCompanyByID(ctx, id)
}

func (s *instrumentedStore) GetCompanyByEmail(ctx context.Context, email string) (_ *domain.Company, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("get_company_by_email", start, err) }(time.Now())
	return s.next.GetCompanyByEmail(ctx, email)
}

func (s *instrumentedStore) ListCompanies(ctx context.Context, page store.Page) (_ []domain.Company, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("list_companies", start, err) }(time.Now())
	return s.next.ListCompanies(ctx, page)
}

func (s *instrumentedStore) UpdateCompany(ctx context.Context, company *domain.Company) (_ *domain.Company, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("update_company", start, err) }(time.Now())
	return s.next.UpdateCompany(ctx, company)
}

func (s *instrumentedStore) DeleteCompany(ctx context.Context, id domain.CompanyID) (_ bool, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("delete_company", start, err) }(time.Now())
	return s.next.DeleteCompany(ctx, id)
}

func (s *instrumentedStore) CreateJob(ctx context.Context, nj domain.NewJob) (_ *domain.Job, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("create_job", start, err) }(time.Now())
	return s.next.CreateJob(ctx, nj)
}

func (s *instrumentedStore) GetJobByID(ctx context.Context, id domain.JobID) (_ *domain.Job, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("get_job_by_id", start, err) }(time.Now())
	return s.next.GetJobByID(ctx, id)
}

func (s *instrumentedStore) ListJobs(ctx context.Context, page store.Page) (_ []domain.Job, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("list_jobs", start, err) }(time.Now())
	return s.next.ListJobs(ctx, page)
}

func (s *instrumentedStore) ListJobsByCompany(ctx context.Context, page store.Page, companyID domain.CompanyID) (_ []domain.Job, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("list_jobs_by_company", start, err) }(time.Now())
	return s.next.ListJobsByCompany(ctx, page, companyID)
}

func (s *instrumentedStore) UpdateJob(ctx context.Context, job *domain.Job) (_ *domain.Job, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("update_job", start, err) }(time.Now())
	return s.next.UpdateJob(ctx, job)
}

func (s *instrumentedStore) DeleteJob(ctx context.Context, id domain.JobID) (_ bool, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("delete_job", start, err) }(time.Now())
	return s.next.DeleteJob(ctx, id)
}

func (s *instrumentedStore) CreateResume(ctx context.Context, nr domain.NewResume) (_ *domain.Resume, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("create_resume", start, err) }(time.Now())
	return s.next.CreateResume(ctx, nr)
}

func (s *instrumentedStore) GetResumeByID(ctx context.Context, id domain.ResumeID) (_ *domain.Resume, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("get_resume_by_id", start, err) }(time.Now())
	return s.next.GetResumeByID(ctx, id)
}

func (s *instrumentedStore) ListResumesByUser(ctx context.Context, page store.Page, userID domain.UserID) (_ []domain.Resume, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("list_resumes_by_user", start, err) }(time.Now())
	return s.next.ListResumesByUser(ctx, page, userID)
}

func (s *instrumentedStore) UpdateResume(ctx context.Context, resume *domain.Resume) (_ *domain.Resume, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("update_resume", start, err) }(time.Now())
	return s.next.UpdateResume(ctx, resume)
}

func (s *instrumentedStore) DeleteResume(ctx context.Context, id domain.ResumeID) (_ bool, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("delete_resume", start, err) }(time.Now())
	return s.next.DeleteResume(ctx, id)
}

func (s *instrumentedStore) CreateApplication(ctx context.Context, resumeID domain.ResumeID, jobID domain.JobID) (_ *domain.Application, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("create_application", start, err) }(time.Now())
	return s.next.CreateApplication(ctx, resumeID, jobID)
}

func (s *instrumentedStore) ListApplicationsByJob(ctx context.Context, page store.Page, jobID domain.JobID) (_ []domain.Application, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("list_applications_by_job", start, err) }(time.Now())
	return s.next.ListApplicationsByJob(ctx, page, jobID)
}

func (s *instrumentedStore) ListApplicationsByResume(ctx context.Context, resumeID domain.ResumeID) (_ []domain.Application, err error) {
	defer func(start time.Time) { s.metrics.ObserveStore("list_applications_by_resume", start, err) }(time.Now())
	return s.next.ListApplicationsByResume(ctx, resumeID)
}
