package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/notekeeper/server/internal/api/http/handler"
	"github.com/notekeeper/server/internal/api/http/middleware"
	"github.com/notekeeper/server/internal/logger"
	"github.com/notekeeper/server/internal/model"
	"github.com/notekeeper/server/internal/service"
)

// Router wires handlers and middleware into the HTTP route tree.
type Router struct {
	authService    *service.Auth
	noteService    *service.Notes
	userService    *service.Users
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	noteService *service.Notes,
	userService *service.Users,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		noteService:    noteService,
		userService:    userService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the chi route tree. Signup and login are open; everything
// else goes through the authentication middleware.
func (r *Router) Register() chi.Router {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.authService, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.authService, r.contextManager, r.logger)
	noteHandler := handler.NewNote(r.noteService, r.contextManager, r.logger)
	userHandler := handler.NewUser(r.userService, r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(logging.Handle)

	mux.Route("/api/v1", func(api chi.Router) {
		api.Post("/auth/signup", authHandler.SignUp)
		api.Post("/auth/login", authHandler.Login)

		api.Group(func(protected chi.Router) {
			protected.Use(authenticate.Handle)

			protected.Post("/auth/logout", authHandler.Logout)

			protected.Route("/notes", func(notes chi.Router) {
				notes.Get("/", noteHandler.List)
				notes.Post("/", noteHandler.Create)
				notes.Get("/{id}", noteHandler.Get)
				notes.Put("/{id}", noteHandler.Update)
				notes.Delete("/{id}", noteHandler.Delete)
			})

			protected.Route("/users/me", func(users chi.Router) {
				users.Get("/", userHandler.Get)
				users.Put("/", userHandler.Update)
				users.Delete("/", userHandler.Delete)
			})
		})
	})

	return mux
}
