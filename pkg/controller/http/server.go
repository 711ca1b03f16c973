package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/caselog-dev/caselog/pkg/usecase"
	"github.com/caselog-dev/caselog/pkg/utils/logging"
)

// Server exposes the case log to a local dashboard over JSON: the case
// list (optionally filtered), append, summary tiles, group counts for
// charts, and the xlsx download.
type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

// New builds the HTTP surface over the given session facade.
func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()
	s := &Server{
		router: r,
		uc:     uc,
	}

	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/cases", s.handleListCases)
		r.Post("/cases", s.handleLogCase)
		r.Get("/summary", s.handleSummary)
		r.Get("/groups/{field}", s.handleGroupCounts)
		r.Get("/export", s.handleExport)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests and embeds a
// request-scoped logger into the context.
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		logger := logging.Default().With("request_id", middleware.GetReqID(r.Context()))
		ctx := logging.With(r.Context(), logger)

		defer func() {
			logger.Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r.WithContext(ctx))
	})
}
