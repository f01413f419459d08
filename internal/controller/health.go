package controller

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/fazamuttaqien/statusreply/helper"
	"github.com/fazamuttaqien/statusreply/pkg/response"
	"github.com/shirou/gopsutil/v3/mem"
)

type memoryStats struct {
	TotalMB     uint64  `json:"totalMb"`
	UsedMB      uint64  `json:"usedMb"`
	UsedPercent float64 `json:"usedPercent"`
}

// GET /health
//
// 200 when the database answers, 503 otherwise. Memory figures are
// omitted (null) if the host does not expose them.
func (h *Controller) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := http.StatusOK
	database := "up"
	if err := h.db.Ping(ctx); err != nil {
		slog.Warn("Health check: database unreachable", slog.String("error", err.Error()))
		code = http.StatusServiceUnavailable
		database = "down"
	}

	var memory *memoryStats
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		memory = &memoryStats{
			TotalMB:     vm.Total / 1024 / 1024,
			UsedMB:      vm.Used / 1024 / 1024,
			UsedPercent: vm.UsedPercent,
		}
	}

	helper.Send(w, response.Message(code).
		Add("database", database).
		Add("uptimeSeconds", int64(time.Since(h.startedAt).Seconds())).
		Add("memory", memory))
}
