package bench

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// DetectHost reports the CPU model and core counts of the current machine.
func DetectHost() Host {
	return Host{
		CPU:           cpuid.CPU.BrandName,
		LogicalCores:  cpuid.CPU.LogicalCores,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		GOMAXPROCS:    runtime.GOMAXPROCS(0),
	}
}
