package seqhash

import (
	"fmt"
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// LogicalCores is the number of logical processors the
// OS will run this process on. cpuid's own LogicalCores
// is per package (or the addressable-ID width), so it
// only feeds HostSummary.
func LogicalCores() int {
	return runtime.NumCPU()
}

// HostSummary describes the processor for the debug log.
func HostSummary() string {
	brand := cpuid.CPU.BrandName
	if brand == "" {
		brand = runtime.GOARCH
	}
	return fmt.Sprintf("%v; logical processors: %v; per package: physical cores: %v, logical cores: %v, threads/core: %v; GOMAXPROCS: %v",
		brand, LogicalCores(), cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores,
		cpuid.CPU.ThreadsPerCore, runtime.GOMAXPROCS(0))
}
