package sysinfo

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
)

// Info describes the machine a report was produced on.
type Info struct {
	Platform             string `json:"platform" yaml:"platform"`
	Processor            string `json:"processor" yaml:"processor"`
	Architecture         string `json:"architecture" yaml:"architecture"`
	Machine              string `json:"machine" yaml:"machine"`
	System               string `json:"system" yaml:"system"`
	GoVersion            string `json:"go_version" yaml:"go_version"`
	NumCPU               int    `json:"num_cpu" yaml:"num_cpu"`
	AcceleratedAvailable bool   `json:"accelerated_available" yaml:"accelerated_available"`
}

// Probe sources, swapped out in tests.
var (
	hostInfo = host.Info
	cpuInfo  = cpu.Info
)

// Collect gathers system information. gopsutil failures fall back to runtime values.
func Collect(acceleratedAvailable bool) Info {
	info := Info{
		Platform:             runtime.GOOS,
		Processor:            "unknown",
		Architecture:         strconv.Itoa(strconv.IntSize) + "bit",
		Machine:              runtime.GOARCH,
		System:               runtime.GOOS,
		GoVersion:            runtime.Version(),
		NumCPU:               runtime.NumCPU(),
		AcceleratedAvailable: acceleratedAvailable,
	}

	if h, err := hostInfo(); err == nil && h != nil {
		info.Platform = platformString(h)
		if h.OS != "" {
			info.System = h.OS
		}
	}

	if cpus, err := cpuInfo(); err == nil && len(cpus) > 0 {
		if name := strings.TrimSpace(cpus[0].ModelName); name != "" {
			info.Processor = name
		}
	}

	return info
}

func platformString(h *host.InfoStat) string {
	parts := []string{}
	for _, p := range []string{h.OS, h.Platform, h.PlatformVersion, h.KernelVersion, h.KernelArch} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return runtime.GOOS
	}
	return strings.Join(parts, "-")
}

// String renders a one-line summary for logs.
func (i Info) String() string {
	return fmt.Sprintf("%s %s (%s, %d CPUs, %s)", i.Platform, i.Processor, i.Machine, i.NumCPU, i.GoVersion)
}
