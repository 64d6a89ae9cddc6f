package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"alumni-jobboard-backend/internal/domain"
	"alumni-jobboard-backend/internal/logger"
)

const maxBodyBytes = 1 << 20

type envelope struct {
	OK      bool             `json:"ok"`
	Data    any              `json:"data,omitempty"`
	Reason  domain.ErrorKind `json:"reason,omitempty"`
	Message string           `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{OK: true, Data: data}); err != nil {
		logger.Warn("failed to encode response", "error", err)
	}
}

// writeError renders err as a failure envelope. Store failures keep their
// cause out of the message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := domain.KindOf(err)
	status := statusFor(kind)

	message := err.Error()
	var de *domain.Error
	if errors.As(err, &de) && de.Message != "" {
		message = de.Message
	}
	if kind == domain.KindStoreUnavailable {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		message = "service temporarily unavailable"
	}

	w.Header().Set("Content-Type", "application/json")
	if kind.Retryable() {
		w.Header().Set("Retry-After", "1")
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{OK: false, Reason: kind, Message: message})
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindNotVerified, domain.KindNotOwner, domain.KindNotAdmin, domain.KindUnrecognized:
		return http.StatusForbidden
	case domain.KindAlreadyApplied, domain.KindInvalidTransition:
		return http.StatusConflict
	case domain.KindJobInactive:
		return http.StatusUnprocessableEntity
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInvalidInput:
		return http.StatusBadRequest
	case domain.KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusServiceUnavailable
	}
}

// decodeJSON reads a JSON body into dst. An empty body leaves dst untouched.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return domain.NewError(domain.KindInvalidInput, "malformed request body", err)
	}
	return nil
}

func pathInt32(r *http.Request, name string) (int32, error) {
	v, err := strconv.ParseInt(mux.Vars(r)[name], 10, 32)
	if err != nil {
		return 0, domain.NewError(domain.KindInvalidInput, "invalid "+name, nil)
	}
	return int32(v), nil
}

// queryPage reads page and page_size. Missing or malformed values fall back
// to the service defaults.
func queryPage(r *http.Request) (int32, int32) {
	q := r.URL.Query()
	page, _ := strconv.ParseInt(q.Get("page"), 10, 32)
	size, _ := strconv.ParseInt(q.Get("page_size"), 10, 32)
	return int32(page), int32(size)
}

// writeUnavailable writes a 503 failure envelope carrying data, for
// endpoints such as health checks that report state rather than a domain error.
func writeUnavailable(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	_ = json.NewEncoder(w).Encode(envelope{OK: false, Data: data})
}
