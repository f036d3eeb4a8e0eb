package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

// pinger is satisfied by *pgxpool.Pool.
type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the operational probes of the workflow server.
type HealthHandler struct {
	db      pinger
	version string
	started time.Time
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler backed by the database pool.
func NewHealthHandler(db pinger, version string) *HealthHandler {
	now := func() time.Time { return time.Now().UTC() }
	return &HealthHandler{db: db, version: version, started: now(), now: now}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Uptime     string                     `json:"uptime,omitempty"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

// ComponentStatus is the state of one dependency.
type ComponentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live always answers 200 while the process is serving.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	now := h.now()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    statusOK,
		Version:   h.version,
		Uptime:    now.Sub(h.started).Truncate(time.Second).String(),
		Timestamp: now,
	})
}

// Ready answers 503 until the database accepts connections.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.checkDatabase(r.Context())
	writeJSON(w, httpStatus(db.Status), HealthResponse{
		Status:    db.Status,
		Timestamp: h.now(),
	})
}

// Health reports every component with its latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.checkDatabase(r.Context())
	writeJSON(w, httpStatus(db.Status), HealthResponse{
		Status:     db.Status,
		Version:    h.version,
		Components: map[string]ComponentStatus{"database": db},
		Timestamp:  h.now(),
	})
}

const (
	statusOK   = "ok"
	statusDown = "down"
)

func (h *HealthHandler) checkDatabase(ctx context.Context) ComponentStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return ComponentStatus{Status: statusDown, Error: err.Error()}
	}
	return ComponentStatus{Status: statusOK, Latency: time.Since(start).String()}
}

func httpStatus(status string) int {
	if status == statusOK {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
