package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/appdock-io/appdock/pkg/usecase"
	"github.com/appdock-io/appdock/pkg/utils/logging"
)

type Server struct {
	router            *chi.Mux
	authUC            *usecase.AuthUseCase
	enableTokenIssuer bool
}

type Options func(*Server)

// WithTokenIssuer exposes POST /api/auth/token, which mints a session
// token for an arbitrary user. Development and testing only.
func WithTokenIssuer(enabled bool) Options {
	return func(s *Server) {
		s.enableTokenIssuer = enabled
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		authUC: uc.Auth,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		if s.enableTokenIssuer {
			r.Post("/auth/token", authTokenIssueHandler(s.authUC))
		}

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware(s.authUC))
			r.Get("/integrations", integrationsHandler(uc.Integrations))
			r.Get("/me", authMeHandler())
			r.Post("/auth/logout", authLogoutHandler(s.authUC))
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
