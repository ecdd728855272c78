// Package httpapi exposes the account and cat record operations over a
// JSON HTTP API. Handlers stay thin: they decode input, call a service,
// and translate sentinel errors into HTTP status codes.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/catcurious/catcurious/internal/logging"
	"github.com/catcurious/catcurious/internal/server/models"
)

// UserOperations is the account surface the handlers need.
// Implemented by services.UserService.
type UserOperations interface {
	CreateAccount(ctx context.Context, username, password string) (int64, error)
	VerifyPassword(ctx context.Context, username, password string) (bool, error)
	UpdatePassword(ctx context.Context, username, newPassword string) error
	DeleteAccount(ctx context.Context, username string) error
	GetUserID(ctx context.Context, username string) (int64, error)
}

// CatOperations is the cat record and breed info surface the handlers need.
// Implemented by services.CatService.
type CatOperations interface {
	CreateCat(ctx context.Context, name, breed string, age, weight float64) (*models.Cat, error)
	DeleteCat(ctx context.Context, id int64) error
	GetCatByID(ctx context.Context, id int64) (*models.Cat, error)
	GetCatByName(ctx context.Context, name string) (*models.Cat, error)
	ClearAll(ctx context.Context) error
	BreedDescription(ctx context.Context, breed string) (string, error)
	BreedAffectionLevel(ctx context.Context, breed string) (int, error)
	BreedLifespan(ctx context.Context, breed string) (string, error)
	BreedImage(ctx context.Context, breed string) (string, error)
	RandomImage(ctx context.Context) (string, error)
	RandomFacts(ctx context.Context, count int) ([]string, error)
}

// Server hosts the HTTP endpoint.
type Server struct {
	addr   string
	users  UserOperations
	cats   CatOperations
	ping   func(ctx context.Context) error
	initDB func(ctx context.Context) error
	logger logging.Logger

	httpServer *http.Server
}

// NewServer wires the handlers to their dependencies. ping reports database
// reachability and initDB (re)applies schema migrations; both are injected
// as closures so the package stays free of *sql.DB.
func NewServer(addr string, users UserOperations, cats CatOperations,
	ping, initDB func(ctx context.Context) error, logger logging.Logger) *Server {
	return &Server{
		addr:   addr,
		users:  users,
		cats:   cats,
		ping:   ping,
		initDB: initDB,
		logger: logger.With("module", "httpapi"),
	}
}

// Routes builds the chi router with middleware and all API routes.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(s.requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/db-check", s.handleDBCheck)
		r.Post("/init-db", s.handleInitDB)

		r.Post("/create-account", s.handleCreateAccount)
		r.Post("/login", s.handleLogin)
		r.Post("/update-password", s.handleUpdatePassword)
		r.Post("/delete-user", s.handleDeleteUser)

		r.Post("/create-cat", s.handleCreateCat)
		r.Post("/clear-cats", s.handleClearCats)
		r.Delete("/delete-cat/{id}", s.handleDeleteCat)
		r.Get("/get-cat-by-id/{id}", s.handleGetCatByID)
		r.Get("/get-cat-by-name/{name}", s.handleGetCatByName)

		r.Get("/get-cat-info/{breed}", s.handleBreedInfo)
		r.Get("/get-affection-level/{breed}", s.handleAffectionLevel)
		r.Get("/get-cat-lifespan/{breed}", s.handleLifespan)
		r.Get("/get-cat-pic/{breed}", s.handleBreedPic)
		r.Get("/get-random-cat-image", s.handleRandomImage)
		r.Get("/get-cat-facts/{count}", s.handleCatFacts)
	})

	return r
}

// Run starts the HTTP listener and blocks until ctx is cancelled, then
// shuts down gracefully with a bounded drain period.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "starting HTTP server", "addr", s.addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
