package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
)

var cpuProfiler *CPUProfilerStruct

type CPUProfilerStruct struct {
	profileOutput io.Writer
}

func StartCPUProfiler(profileOutput io.Writer) error {
	cpuProfiler = &CPUProfilerStruct{profileOutput: profileOutput}
	runtime.SetCPUProfileRate(500)
	if err := pprof.StartCPUProfile(profileOutput); err != nil {
		cpuProfiler = nil
		return fmt.Errorf("starting CPU profiler: %w", err)
	}
	return nil
}

func StopCPUProfiler() {
	if cpuProfiler != nil {
		pprof.StopCPUProfile()
		cpuProfiler = nil
	}
}

// WriteHeapProfile dumps the current heap to path, after a GC so the profile reflects live objects.
func WriteHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	runtime.GC()
	return pprof.WriteHeapProfile(f)
}

// startProfiling starts whichever profilers have an output path, returning a teardown that flushes them.
func startProfiling(cpuProfile, memProfile string) (func(), error) {
	var cpuProfileFile *os.File
	if cpuProfile != "" {
		var err error
		if cpuProfileFile, err = os.Create(cpuProfile); err != nil {
			return nil, err
		}
		if err = StartCPUProfiler(cpuProfileFile); err != nil {
			cpuProfileFile.Close()
			return nil, err
		}
	}

	return func() {
		if cpuProfileFile != nil {
			StopCPUProfiler()
			cpuProfileFile.Close()
		}
		if memProfile != "" {
			if err := WriteHeapProfile(memProfile); err != nil {
				log.Println("Error writing memory profile to disk")
			}
		}
	}, nil
}
