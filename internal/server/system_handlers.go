package server

import (
	"net/http"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/aristath/backtest/internal/modules/backtest"
	"github.com/aristath/backtest/internal/utils"
)

// SystemHandlers handles system monitoring endpoints
type SystemHandlers struct {
	log         zerolog.Logger
	startupTime time.Time
	service     *backtest.Service
	hostStats   func() (float64, float64)
}

// SystemStatusResponse represents system status
type SystemStatusResponse struct {
	Status        string                `json:"status"`
	CPUPercent    float64               `json:"cpu_percent"`
	MemoryPercent float64               `json:"memory_percent"`
	Goroutines    int                   `json:"goroutines"`
	UptimeSeconds float64               `json:"uptime_seconds"`
	StartedAt     string                `json:"started_at"`
	Analysis      utils.MetricsSnapshot `json:"analysis"`
}

// NewSystemHandlers creates a new system handlers instance
func NewSystemHandlers(log zerolog.Logger, service *backtest.Service) *SystemHandlers {
	h := &SystemHandlers{
		log:         log.With().Str("component", "system_handlers").Logger(),
		startupTime: time.Now(),
		service:     service,
	}
	h.hostStats = h.getSystemStats
	return h
}

// GetSystemStatusSnapshot returns a snapshot of the current system status
func (h *SystemHandlers) GetSystemStatusSnapshot() SystemStatusResponse {
	cpuPercent, memPercent := h.hostStats()

	response := SystemStatusResponse{
		Status:        "healthy",
		CPUPercent:    cpuPercent,
		MemoryPercent: memPercent,
		Goroutines:    runtime.NumGoroutine(),
		UptimeSeconds: time.Since(h.startupTime).Seconds(),
		StartedAt:     h.startupTime.UTC().Format(time.RFC3339),
	}
	if h.service != nil {
		response.Analysis = h.service.Metrics()
	}

	return response
}

// HandleSystemStatus handles GET /api/system/status
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	h.log.Debug().Msg("Getting system status")
	writeJSON(w, http.StatusOK, h.GetSystemStatusSnapshot(), h.log)
}

// getSystemStats returns CPU and RAM usage percentages.
// CPU is sampled over 100ms so the endpoint stays responsive.
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}
