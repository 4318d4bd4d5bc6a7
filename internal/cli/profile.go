package cli

import (
	"bytes"
	"diffsteg/internal/logging"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"
)

var (
	// MemorySampleRate How often to dump the memory to a file in HZ. Values of less than 1 are recommended to avoid
	// having to sort through too many dump files
	MemorySampleRate = 0.5
)

type CPUProfiler struct {
	profileOutput *os.File
}

// StartCPUProfiler writes a CPU profile to profilePath until Stop is called
func StartCPUProfiler(profilePath string) (*CPUProfiler, error) {
	profileOutput, err := os.Create(profilePath)
	if err != nil {
		return nil, err
	}

	runtime.SetCPUProfileRate(500)
	if err = pprof.StartCPUProfile(profileOutput); err != nil {
		profileOutput.Close()
		return nil, fmt.Errorf("starting CPU profiler: %w", err)
	}
	return &CPUProfiler{profileOutput: profileOutput}, nil
}

func (p *CPUProfiler) Stop() error {
	pprof.StopCPUProfile()
	return p.profileOutput.Close()
}

type MemProfiler struct {
	dumpPath string

	mu        sync.Mutex
	heapDumps [][]byte

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// StartMemoryProfiler samples the heap at MemorySampleRate and writes every sample to dumpPath when stopped. It returns
// nil when sampling is disabled
func StartMemoryProfiler(dumpPath string) *MemProfiler {
	if MemorySampleRate <= 0 {
		return nil
	}

	p := &MemProfiler{dumpPath: dumpPath, stop: make(chan struct{}), done: make(chan struct{})}
	go func() {
		defer close(p.done)
		ticker := time.NewTicker(time.Duration((1/MemorySampleRate)*1000) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
				p.dump()
			}
		}
	}()
	return p
}

func (p *MemProfiler) dump() {
	w := bytes.NewBuffer(nil)
	if err := pprof.WriteHeapProfile(w); err != nil {
		logging.BuildLogger().WithError(err).Warn("Error sampling heap profile")
		return
	}
	p.mu.Lock()
	p.heapDumps = append(p.heapDumps, w.Bytes())
	p.mu.Unlock()
}

// Stop takes a last sample and writes all of them to disk. Calling it more than once is a no-op
func (p *MemProfiler) Stop() error {
	if p == nil {
		return nil
	}

	var err error
	p.stopOnce.Do(func() {
		close(p.stop)
		<-p.done
		p.dump()

		if err = os.MkdirAll(p.dumpPath, os.ModePerm); err != nil {
			return
		}
		p.mu.Lock()
		defer p.mu.Unlock()
		for dIdx, dump := range p.heapDumps {
			if err = os.WriteFile(filepath.Join(p.dumpPath, fmt.Sprintf("mem-%d.mprof", dIdx)), dump, 0o644); err != nil {
				return
			}
		}
	})
	return err
}
