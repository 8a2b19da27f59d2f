package services

import (
	"context"
	"runtime"
	"time"
	"watchmarket_server/database"

	"github.com/MonkyMars/gecho"
	"github.com/shirou/gopsutil/v4/mem"
)

var uptimeStart time.Time

func init() {
	uptimeStart = time.Now()
}

type serverHealthStatus struct {
	Uptime       float64   `json:"uptime"`        // in seconds
	CurrentTime  time.Time `json:"current_time"`  // server current time
	ServiceAlive bool      `json:"service_alive"` // always true if service is running
	CatalogReady bool      `json:"catalog_ready"`
	Goroutines   int       `json:"goroutines"`
	RamStats     *RamStats `json:"ram_stats"`
}

type RamStats struct {
	TotalMB     uint64  `json:"total_mb"`
	UsedMB      uint64  `json:"used_mb"`
	FreeMB      uint64  `json:"free_mb"`
	UsedPercent float64 `json:"used_percent"`
	HeapMB      uint64  `json:"heap_mb"`
}

type storageHealthStatus struct {
	Backend        string    `json:"backend"`
	Connected      bool      `json:"connected"`
	LastChecked    time.Time `json:"last_checked"`
	ResponseTimeMs int64     `json:"response_time_ms"`
}

type HealthService struct {
	logger  *gecho.Logger
	store   database.Store
	catalog *CatalogService
}

func NewHealthService(logger *gecho.Logger, store database.Store, catalog *CatalogService) *HealthService {
	return &HealthService{
		logger:  logger,
		store:   store,
		catalog: catalog,
	}
}

// getRamStats reports host memory, falling back to the Go runtime when the host can't be read
func (hs *HealthService) getRamStats() *RamStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	heapMB := m.HeapAlloc / 1024 / 1024

	vm, err := mem.VirtualMemory()
	if err != nil {
		hs.logger.Debug("Host memory stats unavailable", gecho.Field("error", err))
		totalMB := m.Sys / 1024 / 1024
		usedMB := m.Alloc / 1024 / 1024
		stats := &RamStats{TotalMB: totalMB, UsedMB: usedMB, FreeMB: totalMB - min(usedMB, totalMB), HeapMB: heapMB}
		if totalMB > 0 {
			stats.UsedPercent = float64(usedMB*100) / float64(totalMB)
		}
		return stats
	}

	return &RamStats{
		TotalMB:     vm.Total / 1024 / 1024,
		UsedMB:      vm.Used / 1024 / 1024,
		FreeMB:      vm.Available / 1024 / 1024,
		UsedPercent: vm.UsedPercent,
		HeapMB:      heapMB,
	}
}

func (hs *HealthService) GetServerHealthStatus() serverHealthStatus {
	return serverHealthStatus{
		Uptime:       time.Since(uptimeStart).Seconds(),
		CurrentTime:  time.Now(),
		ServiceAlive: true,
		CatalogReady: hs.catalog.IsLoaded(),
		Goroutines:   runtime.NumGoroutine(),
		RamStats:     hs.getRamStats(),
	}
}

func (hs *HealthService) GetStorageHealthStatus(ctx context.Context) (storageHealthStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	start := time.Now()
	err := hs.store.Ping(ctx)

	status := storageHealthStatus{
		Backend:        string(hs.store.Backend()),
		Connected:      err == nil,
		LastChecked:    time.Now(),
		ResponseTimeMs: time.Since(start).Milliseconds(),
	}

	if err != nil {
		hs.logger.Error("Storage health check failed", gecho.Field("error", err))
	}

	return status, err
}
