package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/quizzical/internal/quiz"
)

// DefaultAddr is where serve listens unless told otherwise.
const DefaultAddr = ":8080"

// Server exposes quiz generation and hints over HTTP.
type Server struct {
	addr string
	log  *logrus.Logger
	http *http.Server
}

// New assembles the router and server. A nil logger disables request logging.
func New(addr string, gen quiz.Generator, hints *quiz.HintService, log *logrus.Logger) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}

	r := newRouter(NewHandler(gen, hints, log), log)

	return &Server{
		addr: addr,
		log:  log,
		http: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func newRouter(h *Handler, log *logrus.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))
	r.Use(corsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Post("/quiz", h.GenerateQuiz)
		r.Post("/hint", h.GenerateHint)
	})
	r.Get("/healthz", h.Health)

	return r
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.addr).Info("http server listening")
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
