package observability

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/process"
)

// ProcessStats is a sample of the backend's own process.
type ProcessStats struct {
	PID          int32   `json:"pid"`
	Status       string  `json:"status"`
	CPUPercent   float64 `json:"cpu_percent"`
	RAMPercent   float32 `json:"ram_percent"`
	RSSBytes     uint64  `json:"rss_bytes"`
	NumGoroutine int     `json:"num_goroutine"`
	AllocMemMb   uint64  `json:"alloc_mem_mb"`
}

// CollectProcessStats retrieves technical metrics (Memory, CPU, and OS Status) for the current process.
func CollectProcessStats() (ProcessStats, error) {
	pid := int32(os.Getpid())
	p, err := process.NewProcess(pid)
	if err != nil {
		return ProcessStats{}, err
	}
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return ProcessStats{}, err
	}
	cpu, err := p.CPUPercent()
	if err != nil {
		return ProcessStats{}, err
	}
	ram, err := p.MemoryPercent()
	if err != nil {
		return ProcessStats{}, err
	}
	status, err := p.Status()
	if err != nil {
		return ProcessStats{}, err
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return ProcessStats{
		PID:          pid,
		Status:       status,
		CPUPercent:   cpu,
		RAMPercent:   ram,
		RSSBytes:     memInfo.RSS,
		NumGoroutine: runtime.NumGoroutine(),
		AllocMemMb:   m.Alloc / 1024 / 1024,
	}, nil
}
