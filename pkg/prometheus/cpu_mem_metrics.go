package prometheus

import (
	"math"
	"runtime"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

func NewCpuMemoryMetricsHandler(serviceName string) *cpuMemoryMetricsHandler {
	labels := prometheus.Labels{"service_name": serviceName}
	h := &cpuMemoryMetricsHandler{
		memTotal:       prometheus.NewDesc("area_mem_total", "mem total number of bytes", nil, labels),
		memUsed:        prometheus.NewDesc("area_mem_used", "mem used number of bytes", nil, labels),
		memUsedPercent: prometheus.NewDesc("area_mem_used_percent", "mem used percent", nil, labels),
		cpuUser:        prometheus.NewDesc("area_cpu_user", "cpu user percent", nil, labels),
		cpuSystem:      prometheus.NewDesc("area_cpu_system", "cpu system percent", nil, labels),
		cpuIdle:        prometheus.NewDesc("area_cpu_idle", "cpu idle percent", nil, labels),
	}
	if times, err := cpu.Times(false); err == nil && len(times) > 0 {
		h.last = times[0]
	}
	return h
}

type cpuMemoryMetricsHandler struct {
	memTotal       *prometheus.Desc
	memUsed        *prometheus.Desc
	memUsedPercent *prometheus.Desc
	cpuUser        *prometheus.Desc
	cpuSystem      *prometheus.Desc
	cpuIdle        *prometheus.Desc

	mu   sync.Mutex
	last cpu.TimesStat
}

func (cp *cpuMemoryMetricsHandler) Describe(ch chan<- *prometheus.Desc) {
	ch <- cp.memTotal
	ch <- cp.memUsed
	ch <- cp.memUsedPercent
	ch <- cp.cpuUser
	ch <- cp.cpuSystem
	ch <- cp.cpuIdle
}

// Collect reports the cpu usage since the previous scrape
func (cp *cpuMemoryMetricsHandler) Collect(ch chan<- prometheus.Metric) {
	if v, err := mem.VirtualMemory(); err == nil {
		ch <- prometheus.MustNewConstMetric(cp.memTotal, prometheus.GaugeValue, float64(v.Total))
		ch <- prometheus.MustNewConstMetric(cp.memUsed, prometheus.GaugeValue, float64(v.Used))
		ch <- prometheus.MustNewConstMetric(cp.memUsedPercent, prometheus.GaugeValue, v.UsedPercent)
	}
	times, err := cpu.Times(false)
	if err != nil || len(times) == 0 {
		return
	}
	cp.mu.Lock()
	t1, t2 := cp.last, times[0]
	cp.last = t2
	cp.mu.Unlock()

	t1All, t2All := getTotal(t1), getTotal(t2)
	ch <- prometheus.MustNewConstMetric(cp.cpuUser, prometheus.GaugeValue, calculatePercent(t1.User, t2.User, t1All, t2All))
	ch <- prometheus.MustNewConstMetric(cp.cpuSystem, prometheus.GaugeValue, calculatePercent(t1.System, t2.System, t1All, t2All))
	ch <- prometheus.MustNewConstMetric(cp.cpuIdle, prometheus.GaugeValue, calculatePercent(t1.Idle, t2.Idle, t1All, t2All))
}

func getTotal(t cpu.TimesStat) float64 {
	tot := t.User + t.System + t.Idle + t.Nice + t.Iowait + t.Irq +
		t.Softirq + t.Steal + t.Guest + t.GuestNice

	if runtime.GOOS == "linux" {
		tot -= t.Guest     // Linux 2.6.24+
		tot -= t.GuestNice // Linux 3.2.0+
	}
	return tot
}

func calculatePercent(t1, t2, t1Total, t2Total float64) float64 {
	if t2 <= t1 {
		return 0
	}
	if t2Total <= t1Total {
		return 0
	}
	return math.Min(100, math.Max(0, (t2-t1)/(t2Total-t1Total)*100))
}
