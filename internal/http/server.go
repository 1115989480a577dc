package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"fintrack/internal/auth"
	"fintrack/internal/services"
)

// authRequestsPerMinute bounds signup/login attempts per client IP.
const authRequestsPerMinute = 20

// Server wires the services into a chi router behind the shared
// middleware stack.
type Server struct {
	http.Server

	authService      *services.AuthService
	categoryService  *services.CategoryService
	expenseService   *services.TransactionService
	incomeService    *services.TransactionService
	dashboardService *services.DashboardService

	authLimiter  *rateLimiter
	shutdownOnce sync.Once
}

// Deps collects everything the server needs; all fields are required.
type Deps struct {
	Tokens    *auth.TokenIssuer
	Auth      *services.AuthService
	Category  *services.CategoryService
	Expense   *services.TransactionService
	Income    *services.TransactionService
	Dashboard *services.DashboardService
}

// NewServer configures routes and middleware, returning a
// ready-to-run server listening on addr.
func NewServer(addr string, deps Deps) *Server {
	s := &Server{
		authService:      deps.Auth,
		categoryService:  deps.Category,
		expenseService:   deps.Expense,
		incomeService:    deps.Income,
		dashboardService: deps.Dashboard,
		authLimiter:      newRateLimiter(authRequestsPerMinute),
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	r.Use(requestLogger)

	r.Get("/api/health", s.handleHealth)

	r.Route("/api/auth", func(api chi.Router) {
		api.Use(s.authLimiter.middleware)
		api.Post("/signup", s.handleSignup)
		api.Post("/login", s.handleLogin)
	})

	r.Group(func(api chi.Router) {
		api.Use(requireAuth(deps.Tokens))

		api.Route("/api/categories", func(api chi.Router) {
			api.Get("/", s.handleListCategories)
			api.Post("/", s.handleCreateCategory)
			api.Get("/{id}", s.handleGetCategory)
			api.Put("/{id}", s.handleUpdateCategory)
			api.Delete("/{id}", s.handleDeleteCategory)
		})

		expenses := &transactionHandlers{service: deps.Expense}
		api.Route("/api/expenses", func(api chi.Router) {
			api.Get("/", expenses.list)
			api.Post("/", expenses.create)
			api.Get("/{id}", expenses.get)
			api.Put("/{id}", expenses.update)
			api.Delete("/{id}", expenses.delete)
		})

		incomes := &transactionHandlers{service: deps.Income}
		api.Route("/api/incomes", func(api chi.Router) {
			api.Get("/", incomes.list)
			api.Post("/", incomes.create)
			api.Get("/{id}", incomes.get)
			api.Put("/{id}", incomes.update)
			api.Delete("/{id}", incomes.delete)
		})

		api.Get("/api/dashboard", s.handleDashboard)
	})

	s.Server = http.Server{
		Addr:           addr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.Server.Handler
}

// Shutdown stops the rate limiter cleanup goroutine and then shuts
// down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		s.authLimiter.stop()
		err = s.Server.Shutdown(ctx)
	})
	return err
}
