package api

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/lexacus/exercise-tracker/internal/service"
)

type Server struct {
	mx        *chi.Mux
	tracker   service.TrackerServiceI
	staticDir string
}

type ServerOptions struct {
	TrackerService service.TrackerServiceI
	// StaticDir holds the landing page and its assets. Empty disables
	// static serving.
	StaticDir string
}

func New(opts *ServerOptions) *Server {
	return &Server{
		mx:        chi.NewMux(),
		tracker:   opts.TrackerService,
		staticDir: opts.StaticDir,
	}
}

func (s *Server) registerRoutes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.CORSMiddleware)
	s.mx.Get("/", s.LandingPage)
	if s.staticDir != "" {
		fs := http.StripPrefix("/public/", http.FileServer(http.Dir(s.staticDir)))
		s.mx.Get("/public/*", fs.ServeHTTP)
	}
	s.mx.Post("/api/users", s.CreateUser)
	s.mx.Get("/api/users", s.ListUsers)
	s.mx.Post("/api/users/{id}/exercises", s.LogExercise)
	s.mx.Get("/api/users/{id}/logs", s.GetLog)
	s.mx.Get("/api/reset", s.Reset)
}

func (s *Server) Run(addr string) error {
	s.registerRoutes()
	return http.ListenAndServe(addr, s.mx)
}

func (s *Server) LandingPage(w http.ResponseWriter, r *http.Request) {
	if s.staticDir == "" {
		w.Write([]byte("Exercise tracker is up"))
		return
	}
	http.ServeFile(w, r, filepath.Join(s.staticDir, "index.html"))
}
