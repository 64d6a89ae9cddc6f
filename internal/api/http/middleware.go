package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"alumni-jobboard-backend/internal/config"
	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/logger"
	"alumni-jobboard-backend/internal/metrics"
)

// Authenticator resolves a bearer token to an account id.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

func routeName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil && route.GetName() != "" {
		return route.GetName()
	}
	return "unmatched"
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// authMiddleware resolves the caller per request according to the route's
// security level. A client-supplied identity is never trusted.
func authMiddleware(auth Authenticator) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			level := config.GetSecurityLevel(routeName(r))
			if level == config.SecurityPublic {
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r)
			if token == "" {
				if level == config.SecurityOptional {
					next.ServeHTTP(w, r.WithContext(withCaller(r.Context(), "")))
					return
				}
				writeError(w, r, domain.NewError(domain.KindUnauthenticated, "authorization token is not provided", nil))
				return
			}

			accountID, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				logger.WarnContext(r.Context(), "unauthorized access", "route", routeName(r), "error", err)
				writeError(w, r, err)
				return
			}

			ctx := withCaller(r.Context(), accountID)
			ctx = logger.WithContext(ctx, logger.Get().With("caller", accountID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func metricsMiddleware(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			route := routeName(r)
			m.ObserveRequest(route, strconv.Itoa(rec.status), time.Since(start))
			logger.Debug("http request", "method", r.Method, "route", route, "status", rec.status, "duration_ms", time.Since(start).Milliseconds())
		})
	}
}

func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				logger.ErrorContext(r.Context(), "panic in handler", "route", routeName(r), "panic", p)
				writeError(w, r, domain.NewError(domain.KindStoreUnavailable, "internal error", nil))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
