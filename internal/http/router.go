package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"notekeeper/internal/handlers"
	"notekeeper/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	NotesService service.NotesService
	Store        handlers.Pinger

	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS(deps.CORSAllowedOrigins))
	r.Use(RateLimit(deps.RateLimitRPS, deps.RateLimitBurst))

	notesHandler := handlers.NewNotesHandler(deps.NotesService)
	sectionsHandler := handlers.NewSectionsHandler(deps.NotesService)
	trashHandler := handlers.NewTrashHandler(deps.NotesService)
	preferencesHandler := handlers.NewPreferencesHandler(deps.NotesService)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(deps.Store))

		r.Route("/notes", func(r chi.Router) {
			r.Get("/", notesHandler.List)
			r.Post("/", notesHandler.Create)
			r.Get("/search", notesHandler.Search)
			r.Get("/{id}", notesHandler.Get)
			r.Put("/{id}", notesHandler.Update)
			r.Delete("/{id}", notesHandler.Delete)
			r.Post("/{id}/move", notesHandler.Move)
			r.Post("/{id}/restore", notesHandler.Restore)
		})

		r.Route("/sections", func(r chi.Router) {
			r.Get("/", sectionsHandler.List)
			r.Post("/", sectionsHandler.Create)
			r.Get("/active", sectionsHandler.GetActive)
			r.Put("/active", sectionsHandler.SetActive)
			r.Get("/{id}/notes", sectionsHandler.Notes)
			r.Put("/{id}", sectionsHandler.Rename)
			r.Delete("/{id}", sectionsHandler.Delete)
			r.Post("/{id}/restore", sectionsHandler.Restore)
		})

		r.Route("/trash", func(r chi.Router) {
			r.Get("/notes", trashHandler.Notes)
			r.Get("/sections", trashHandler.Sections)
			r.Post("/empty", trashHandler.Empty)
			r.Post("/sweep", trashHandler.Sweep)
			r.Delete("/sections/{id}", trashHandler.PurgeSection)
		})

		r.Get("/preferences/sort", preferencesHandler.GetSort)
		r.Put("/preferences/sort", preferencesHandler.SetSort)
	})

	return r
}
