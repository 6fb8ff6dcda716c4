package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/jobboard-api/internal/api/middleware"
	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/service"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// APIPrefix is the path every job board route is mounted under.
const APIPrefix = "/api/v1"

// Dependencies are what the routes need to build their handlers.
type Dependencies struct {
	Store         store.Store
	Accounts      *service.AccountService
	Jobs          *service.JobService
	Resumes       *service.ResumeService
	Auth          *middleware.AuthMiddleware
	DefaultOffset int
}

// RegisterRoutes mounts the job board routes on r under APIPrefix.
func RegisterRoutes(r chi.Router, deps Dependencies) {
	authHandler := NewAuthHandler(deps.Accounts)
	userHandler := NewUserHandler(deps.Store, deps.Accounts, deps.DefaultOffset)
	companyHandler := NewCompanyHandler(deps.Store, deps.DefaultOffset)
	jobHandler := NewJobHandler(deps.Store, deps.Jobs, deps.Resumes, deps.DefaultOffset)
	resumeHandler := NewResumeHandler(deps.Resumes, deps.Jobs, deps.DefaultOffset)

	admin := deps.Auth.RequireRole(domain.RoleAdmin)
	member := deps.Auth.RequireRole(domain.RoleUser, domain.RoleHR)
	user := deps.Auth.RequireRole(domain.RoleUser)
	hr := deps.Auth.RequireRole(domain.RoleHR)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Get("/role/list-role", ListRoles)

		r.Route("/user", func(r chi.Router) {
			r.Get("/get-user/{id}", userHandler.GetUser)
			r.Get("/list-user", userHandler.ListUsers)
			r.With(member).Put("/update-user", userHandler.UpdateProfile)
			r.With(member).Put("/update-password", userHandler.UpdatePassword)
			r.With(member).Put("/delete-user", userHandler.DeleteAccount)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(admin)
			r.Put("/update-admin", userHandler.UpdateProfile)
			r.Put("/update-password", userHandler.UpdatePassword)
			r.Put("/delete-admin", userHandler.DeleteAccount)
			r.Put("/set-hr", userHandler.SetRole(domain.RoleHR))
			r.Put("/set-admin", userHandler.SetRole(domain.RoleAdmin))
			r.Put("/assign-company", userHandler.AssignCompany)
		})

		r.Route("/company", func(r chi.Router) {
			r.Get("/list-company", companyHandler.List)
			r.Get("/get-company/{id}", companyHandler.Get)
			r.With(admin).Post("/create-company", companyHandler.Create)
			r.With(admin).Put("/update-company", companyHandler.Update)
			r.With(admin).Put("/delete-company", companyHandler.Delete)
		})

		r.Route("/job", func(r chi.Router) {
			r.Get("/list-job", jobHandler.List)
			r.Get("/get-job/{id}", jobHandler.Get)
			r.Get("/list-job-by-company", jobHandler.ListByCompany)
			r.With(hr).Post("/create-job", jobHandler.Create)
			r.With(hr).Put("/update-job", jobHandler.Update)
			r.With(hr).Put("/delete-job", jobHandler.Delete)
			r.With(user).Post("/apply-job", jobHandler.Apply)
			r.With(user).Get("/list-job-by-resume", jobHandler.ListByResume)
		})

		r.Route("/resume", func(r chi.Router) {
			r.With(user).Post("/create-resume", resumeHandler.Create)
			r.With(user).Get("/get-resume/{id}", resumeHandler.Get)
			r.With(user).Get("/list-resume-by-user", resumeHandler.ListByUser)
			r.With(user).Put("/update-resume", resumeHandler.Update)
			r.With(user).Put("/delete-resume", resumeHandler.Delete)
			r.With(hr).Get("/list-resume-by-job", resumeHandler.ListByJob)
		})
	})
}
