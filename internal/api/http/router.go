package http

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"alumni-jobboard-backend/internal/metrics"
	"alumni-jobboard-backend/internal/service"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Services groups everything the handlers call into.
type Services struct {
	Auth          service.AuthService
	Roles         service.RoleService
	Verification  service.VerificationService
	Admin         service.AdminService
	Jobs          service.JobService
	Applications  service.ApplicationService
	Community     service.CommunityService
	Notifications service.NotificationService
}

type Handler struct {
	svc     Services
	health  HealthChecker
	metrics *metrics.Metrics
}

func NewHandler(svc Services, health HealthChecker, m *metrics.Metrics) *Handler {
	return &Handler{svc: svc, health: health, metrics: m}
}

// Router builds the HTTP routes. gatherer backs /metrics; nil uses the
// default registry.
func (h *Handler) Router(gatherer prometheus.Gatherer) *mux.Router {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := mux.NewRouter()
	r.Use(recoverMiddleware, metricsMiddleware(h.metrics), authMiddleware(h.svc.Auth))

	r.HandleFunc("/healthz", h.handleHealth).Methods(http.MethodGet).Name("ops.health")
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet).Name("ops.metrics")

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/register", h.handleRegister).Methods(http.MethodPost).Name("auth.register")
	api.HandleFunc("/auth/login", h.handleLogin).Methods(http.MethodPost).Name("auth.login")

	api.HandleFunc("/jobs", h.handleListJobs).Methods(http.MethodGet).Name("jobs.list")
	api.HandleFunc("/jobs", h.handleCreateJob).Methods(http.MethodPost).Name("jobs.create")
	api.HandleFunc("/jobs/{id:[0-9]+}", h.handleGetJob).Methods(http.MethodGet).Name("jobs.get")
	api.HandleFunc("/jobs/{id:[0-9]+}", h.handleUpdateJob).Methods(http.MethodPut).Name("jobs.update")
	api.HandleFunc("/jobs/{id:[0-9]+}", h.handleDeleteJob).Methods(http.MethodDelete).Name("jobs.delete")
	api.HandleFunc("/jobs/{id:[0-9]+}/active", h.handleSetJobActive).Methods(http.MethodPatch).Name("jobs.setActive")
	api.HandleFunc("/jobs/{id:[0-9]+}/applications", h.handleApply).Methods(http.MethodPost).Name("jobs.apply")
	api.HandleFunc("/jobs/{id:[0-9]+}/applications", h.handleListApplicants).Methods(http.MethodGet).Name("jobs.applicants")

	api.HandleFunc("/applications", h.handleMyApplications).Methods(http.MethodGet).Name("applications.mine")
	api.HandleFunc("/applications/{id:[0-9]+}", h.handleGetApplication).Methods(http.MethodGet).Name("applications.get")
	api.HandleFunc("/applications/{id:[0-9]+}/decision", h.handleDecide).Methods(http.MethodPost).Name("applications.decide")

	api.HandleFunc("/me/profile", h.handleMyProfile).Methods(http.MethodGet).Name("me.profile")
	api.HandleFunc("/me/role", h.handleMyRole).Methods(http.MethodGet).Name("me.role")
	api.HandleFunc("/me/verification", h.handleMyVerification).Methods(http.MethodGet).Name("me.verification")
	api.HandleFunc("/me/notifications", h.handleNotifications).Methods(http.MethodGet).Name("me.notifications")
	api.HandleFunc("/me/notifications/{id:[0-9]+}/read", h.handleMarkRead).Methods(http.MethodPost).Name("me.markRead")

	api.HandleFunc("/community/directory", h.handleDirectory).Methods(http.MethodGet).Name("community.directory")
	api.HandleFunc("/community/stats", h.handleStats).Methods(http.MethodGet).Name("community.stats")

	api.HandleFunc("/admin/verifications", h.handleListVerifications).Methods(http.MethodGet).Name("admin.verifications")
	api.HandleFunc("/admin/verifications/{accountID}/approve", h.handleApprove).Methods(http.MethodPost).Name("admin.approve")
	api.HandleFunc("/admin/verifications/{accountID}/reject", h.handleReject).Methods(http.MethodPost).Name("admin.reject")
	api.HandleFunc("/admin/members", h.handleListMembers).Methods(http.MethodGet).Name("admin.members")
	api.HandleFunc("/admin/members/{accountID}/role", h.handleSetRole).Methods(http.MethodPut).Name("admin.setRole")
	api.HandleFunc("/admin/members/{accountID}/verification", h.handleSetStatus).Methods(http.MethodPut).Name("admin.setStatus")

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.health.Health(r.Context()); err != nil {
		writeUnavailable(w, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
