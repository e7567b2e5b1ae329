// Package proc tracks the modules loaded into a live process by parsing
// its /proc/<pid>/maps, with gopsutil supplying process identity and the
// main executable path.
package proc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v4/process"

	pincererrors "github.com/pincerdbg/pincer/internal/errors"
)

// Module is one file-backed mapping group in the target process.
type Module struct {
	Base uint64
	End  uint64
	Path string
	Name string
}

// Tracker resolves addresses to modules for one attached process. It is
// shared with other debugger subsystems and locks internally; Refresh may
// be called whenever the target's module list is suspected stale.
type Tracker struct {
	pid    int32
	proc   *process.Process
	logger zerolog.Logger

	mu      sync.RWMutex
	exe     string
	modules []Module
}

// Attach creates a tracker for pid and captures its initial module list.
func Attach(pid int32, logger zerolog.Logger) (*Tracker, error) {
	p, err := process.NewProcess(pid)
	if err != nil {
		return nil, fmt.Errorf("process %d: %w", pid, err)
	}

	t := &Tracker{
		pid:    pid,
		proc:   p,
		logger: logger.With().Str("component", "proc").Int32("pid", pid).Logger(),
	}

	exe, err := p.Exe()
	if err != nil {
		t.logger.Warn().Err(err).Msg("Cannot resolve executable path")
	} else {
		t.exe = exe
	}

	if err := t.Refresh(); err != nil {
		return nil, err
	}

	name, _ := p.Name()
	t.logger.Info().Str("process", name).Int("modules", len(t.modules)).
		Msg("Attached to process")
	return t, nil
}

// Pid returns the tracked process id.
func (t *Tracker) Pid() int32 {
	return t.pid
}

// ExePath returns the target's main executable path, if known.
func (t *Tracker) ExePath() (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.exe, t.exe != ""
}

// Refresh re-reads the target's memory maps.
func (t *Tracker) Refresh() error {
	f, err := os.Open(fmt.Sprintf("/proc/%d/maps", t.pid))
	if err != nil {
		return fmt.Errorf("read maps: %w", err)
	}
	defer pincererrors.DeferClose(t.logger, f, "maps close failed")

	modules, err := parseMaps(f)
	if err != nil {
		return fmt.Errorf("parse maps: %w", err)
	}

	t.mu.Lock()
	t.modules = modules
	t.mu.Unlock()
	return nil
}

// Modules returns a copy of the current module snapshot, in map order.
func (t *Tracker) Modules() []Module {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Module, len(t.modules))
	copy(out, t.modules)
	return out
}

// NameFromAddress resolves the display name of the module containing addr.
func (t *Tracker) NameFromAddress(addr uint64) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, m := range t.modules {
		if addr >= m.Base && addr < m.End {
			return m.Name, true
		}
	}
	return "", false
}

// ImagePath returns the on-disk image path of the module loaded at base.
func (t *Tracker) ImagePath(base uint64) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, m := range t.modules {
		if m.Base == base {
			return m.Path, true
		}
	}
	return "", false
}

// parseMaps groups the file-backed mappings of a /proc/<pid>/maps stream
// into modules. The first mapping of a path sets the module base; later
// mappings of the same path only extend its end. Anonymous and pseudo
// mappings ([heap], [stack], [vdso]) are skipped.
func parseMaps(r io.Reader) ([]Module, error) {
	var (
		modules []Module
		index   = make(map[string]int)
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 6 {
			continue
		}

		path := fields[5]
		if strings.HasPrefix(path, "[") {
			continue
		}

		addrs := strings.SplitN(fields[0], "-", 2)
		if len(addrs) != 2 {
			continue
		}
		start, err := strconv.ParseUint(addrs[0], 16, 64)
		if err != nil {
			continue
		}
		end, err := strconv.ParseUint(addrs[1], 16, 64)
		if err != nil {
			continue
		}

		if i, ok := index[path]; ok {
			if end > modules[i].End {
				modules[i].End = end
			}
			continue
		}

		index[path] = len(modules)
		modules = append(modules, Module{
			Base: start,
			End:  end,
			Path: path,
			Name: filepath.Base(path),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return modules, nil
}
