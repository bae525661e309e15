package endpoint

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// MetricsResponse is the JSON body of the metrics endpoint.
type MetricsResponse struct {
	UptimeSeconds  float64 `json:"uptime_seconds"`
	Goroutines     int     `json:"goroutines"`
	HeapAllocBytes uint64  `json:"heap_alloc_bytes"`
	HeapSysBytes   uint64  `json:"heap_sys_bytes"`
	NumGC          uint32  `json:"num_gc"`
}

// Metrics returns a handler that reports basic process runtime statistics.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		c.JSON(http.StatusOK, MetricsResponse{
			UptimeSeconds:  time.Since(startTime).Seconds(),
			Goroutines:     runtime.NumGoroutine(),
			HeapAllocBytes: m.HeapAlloc,
			HeapSysBytes:   m.HeapSys,
			NumGC:          m.NumGC,
		})
	}
}
