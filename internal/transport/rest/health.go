package rest

import (
	"context"
	"net/http"
	"time"
)

const checkTimeout = 3 * time.Second

// pinger is anything whose availability can be checked.
type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
//
// The database is critical: when it is down the service is not ready. The
// tokenizer service is not: chapters still save without word statistics,
// so its outage only degrades /health.
type HealthHandler struct {
	db        pinger
	tokenizer pinger
	languages []string
	version   string
}

// NewHealthHandler creates a HealthHandler. tokenizer may be nil when no
// remote tokenizer is configured; languages lists the source languages
// that can be analysed.
func NewHealthHandler(db, tokenizer pinger, languages []string, version string) *HealthHandler {
	return &HealthHandler{db: db, tokenizer: tokenizer, languages: languages, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Languages  []string              `json:"languages,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live is the liveness check. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready is the readiness check: 200 when the database answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health reports every component with its latency.
// Status is "ok", "degraded" (tokenizer down, still 200) or "down" (503).
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	components := map[string]CompStatus{"database": checkComponent(ctx, h.db)}
	if h.tokenizer != nil {
		components["tokenizer"] = checkComponent(ctx, h.tokenizer)
	}

	overall, status := "ok", http.StatusOK
	switch {
	case components["database"].Status != "ok":
		overall, status = "down", http.StatusServiceUnavailable
	case h.tokenizer != nil && components["tokenizer"].Status != "ok":
		overall = "degraded"
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Languages:  h.languages,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func checkComponent(ctx context.Context, p pinger) CompStatus {
	start := time.Now()
	if err := p.Ping(ctx); err != nil {
		return CompStatus{Status: "down", Error: err.Error()}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}
