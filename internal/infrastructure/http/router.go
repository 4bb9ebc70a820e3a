package http

import (
	"net/http"
	input "user-collection-service/internal/domain/ports/input"
	"user-collection-service/internal/infrastructure/config"
	"user-collection-service/internal/infrastructure/http/handlers/user"
	middlewares "user-collection-service/internal/infrastructure/http/middleware"
	"user-collection-service/internal/infrastructure/logger"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

type Router struct {
	router *chi.Mux
	log    *logger.Logger

	userService input.UserInputPort
}

func NewRouter(log *logger.Logger, userSvc input.UserInputPort) *Router {
	return &Router{
		router:      chi.NewRouter(),
		log:         log,
		userService: userSvc,
	}
}

func (r *Router) Setup(cfg *config.Config) {
	r.router.Use(middlewares.RequestID)
	r.router.Use(chiMiddleware.RealIP)
	r.router.Use(middlewares.Tracing)
	r.router.Use(middlewares.RequestLoggerMiddleware(r.log))
	r.router.Use(chiMiddleware.Recoverer)
	if cfg.HTTPServer.RequestTimeout > 0 {
		r.router.Use(chiMiddleware.Timeout(cfg.HTTPServer.RequestTimeout))
	}

	r.router.Get("/health", health)
	r.router.Mount("/users", r.setupUserRoutes())
}

// setupUserRoutes registers /stats ahead of /{id} so the literal path is never
// captured by the id parameter.
func (r *Router) setupUserRoutes() http.Handler {
	h := user.NewUserHandler(r.userService, r.log)
	sub := chi.NewRouter()
	sub.Get("/", h.ListUsers)
	sub.Post("/", h.CreateUser)
	sub.Get("/stats", h.Stats)
	sub.Get("/{id}", h.GetUser)
	sub.Put("/{id}", h.UpdateUser)
	sub.Delete("/{id}", h.DeleteUser)
	return sub
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (r *Router) GetRouter() *chi.Mux { return r.router }
