package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

type Options struct {
	Logger      zerolog.Logger
	Timeout     time.Duration
	CORSOrigins []string
	RPS         float64 // 0 disables the global throttle
	Burst       int
}

type Server struct {
	mux  *chi.Mux
	pipe *Pipeline
}

func New(o Options) *Server {
	if o.Timeout <= 0 {
		o.Timeout = 15 * time.Second
	}
	p := NewPipeline(o.Logger, DefaultStages()...)

	m := chi.NewRouter()
	// All middlewares go here (before any routes are added)
	m.Use(chimw.RealIP)
	m.Use(chimw.RequestID)
	m.Use(Logger(o.Logger))
	m.Use(Metrics)
	m.Use(Recover(p)) // recovered panics still pass through Logger and Metrics
	m.Use(Timeout(o.Timeout))
	if len(o.CORSOrigins) > 0 {
		m.Use(cors.Handler(cors.Options{
			AllowedOrigins: o.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
			MaxAge:         300,
		}))
	}
	if o.RPS > 0 {
		burst := o.Burst
		if burst <= 0 {
			burst = int(o.RPS) + 1
		}
		m.Use(Throttle(rate.NewLimiter(rate.Limit(o.RPS), burst)))
	}

	m.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "Route "+r.URL.Path+" was not found.")
	})
	m.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "Method "+r.Method+" is not allowed on "+r.URL.Path+".")
	})

	return &Server{mux: m, pipe: p}
}

func (s *Server) Mux() http.Handler { return s.mux }

// Mount attaches any extra handler (e.g., /metrics) to the router.
func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}
