package discord

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
	ActiveSessions   int       `json:"active_sessions"`
	QueuedActions    int       `json:"queued_actions"`
}

// Health status values
const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

var (
	startTime       = time.Now()
	commandCounter  atomic.Int64
	lastCommandTime atomic.Int64
)

// RecordCommand increments the command counter
func RecordCommand() {
	commandCounter.Add(1)
	lastCommandTime.Store(time.Now().UnixNano())
}

// HandleHealth returns the bot's health status
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	connected := h.bot.Session != nil && h.bot.Session.DataReady

	health := HealthStatus{
		Status:           StatusHealthy,
		Uptime:           time.Since(startTime).String(),
		Connected:        connected,
		CommandsReceived: commandCounter.Load(),
	}
	if last := lastCommandTime.Load(); last > 0 {
		health.LastCommandTime = time.Unix(0, last)
	}
	if h.bot.Manager != nil {
		health.ActiveSessions = h.bot.Manager.Len()
	}
	if h.bot.Pool != nil {
		health.QueuedActions = h.bot.Pool.Pending()
	}

	w.Header().Set("Content-Type", "application/json")
	if !connected {
		health.Status = StatusDegraded
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	if err := json.NewEncoder(w).Encode(health); err != nil {
		// Headers are already sent
		_ = err
	}
}
