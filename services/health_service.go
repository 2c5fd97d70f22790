package services

import (
	"mesero_server/database"
	"mesero_server/structs"
	"runtime"
	"time"

	"github.com/MonkyMars/gecho"
)

var uptimeStart time.Time

func init() {
	uptimeStart = time.Now()
}

type serverHealthStatus struct {
	Uptime       float64   `json:"uptime"` // in seconds
	CurrentTime  time.Time `json:"current_time"`
	ServiceAlive bool      `json:"service_alive"`
	RamStats     *RamStats `json:"ram_stats"`
}

type RamStats struct {
	TotalMB     uint64 `json:"total_mb"`
	UsedMB      uint64 `json:"used_mb"`
	FreeMB      uint64 `json:"free_mb"`
	UsedPercent uint64 `json:"used_percent"`
}

type databaseHealthStatus struct {
	Backend        string    `json:"backend"`
	Connected      bool      `json:"connected"`
	LastChecked    time.Time `json:"last_checked"`
	ResponseTimeMs int64     `json:"response_time_ms"`
}

type HealthService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	db     *database.DB // nil when the memory backend is active
}

func NewHealthService(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *HealthService {
	return &HealthService{
		logger: logger,
		cfg:    cfg,
		db:     db,
	}
}

func (hs *HealthService) GetServerHealthStatus() serverHealthStatus {
	return serverHealthStatus{
		Uptime:       time.Since(uptimeStart).Seconds(),
		CurrentTime:  time.Now(),
		ServiceAlive: true,
		RamStats:     getRamStats(),
	}
}

func (hs *HealthService) GetDatabaseHealthStatus() databaseHealthStatus {
	status := databaseHealthStatus{
		Backend:     hs.cfg.Storage.Backend,
		LastChecked: time.Now(),
	}

	if hs.db == nil {
		status.Connected = true // memory backend has nothing to ping
		return status
	}

	start := time.Now()
	err := hs.db.Health()
	status.ResponseTimeMs = time.Since(start).Milliseconds()
	status.Connected = err == nil
	if err != nil {
		hs.logger.Error("Database health check failed", gecho.Field("error", err))
	}

	return status
}

func getRamStats() *RamStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	totalMB := m.Sys / 1024 / 1024
	usedMB := m.Alloc / 1024 / 1024
	freeMB := totalMB - usedMB
	usedPercent := uint64(0)
	if totalMB > 0 {
		usedPercent = (usedMB * 100) / totalMB
	}

	return &RamStats{
		TotalMB:     totalMB,
		UsedMB:      usedMB,
		FreeMB:      freeMB,
		UsedPercent: usedPercent,
	}
}
