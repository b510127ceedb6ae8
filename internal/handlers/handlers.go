package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/jobpay/docs"
	adminhandlers "github.com/GlebRadaev/jobpay/internal/handlers/admin"
	balancehandlers "github.com/GlebRadaev/jobpay/internal/handlers/balances"
	contracthandlers "github.com/GlebRadaev/jobpay/internal/handlers/contracts"
	jobhandlers "github.com/GlebRadaev/jobpay/internal/handlers/jobs"
	"github.com/GlebRadaev/jobpay/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ContractHandler interface {
	GetContract(w http.ResponseWriter, r *http.Request)
	ListContracts(w http.ResponseWriter, r *http.Request)
}

type JobHandler interface {
	ListUnpaid(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	Deposit(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	BestProfession(w http.ResponseWriter, r *http.Request)
	BestClients(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	ContractHandler ContractHandler
	JobHandler      JobHandler
	BalanceHandler  BalanceHandler
	AdminHandler    AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		ContractHandler: contracthandlers.New(s.ContractService),
		JobHandler:      jobhandlers.New(s.JobService),
		BalanceHandler:  balancehandlers.New(s.BalanceService),
		AdminHandler:    adminhandlers.New(s.ReportService),
	}
}

// InitRoutes mounts the API. Every ledger route sits behind the caller
// resolution middleware; admin reports and docs stay open.
func (h *Handlers) InitRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Route("/contracts", func(r chi.Router) {
			r.Get("/", h.ContractHandler.ListContracts)
			r.Get("/{id}", h.ContractHandler.GetContract)
		})
		r.Route("/jobs", func(r chi.Router) {
			r.Get("/unpaid", h.JobHandler.ListUnpaid)
			r.Post("/{id}/pay", h.JobHandler.Pay)
		})
		r.Post("/balances/deposit/{id}", h.BalanceHandler.Deposit)
	})
	r.Route("/admin", func(r chi.Router) {
		r.Get("/best-profession", h.AdminHandler.BestProfession)
		r.Get("/best-clients", h.AdminHandler.BestClients)
	})

	return r
}
