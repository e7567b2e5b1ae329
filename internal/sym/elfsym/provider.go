// Package elfsym implements sym.Provider on top of debug/elf and
// debug/dwarf. It indexes the symbol tables of loaded images, sorted by
// address for nearest-symbol lookup, and maps addresses to source lines via
// DWARF line tables when the image carries them.
package elfsym

import (
	"debug/dwarf"
	"debug/elf"
	"fmt"
	"path"
	"sort"

	"github.com/rs/zerolog"

	pincererrors "github.com/pincerdbg/pincer/internal/errors"
	"github.com/pincerdbg/pincer/internal/sym"
)

// Provider holds per-target symbol state: one entry per loaded module plus
// the process-global search path. It is not safe for concurrent use; the
// debugger's command loop serializes access.
type Provider struct {
	logger     zerolog.Logger
	searchPath string
	mods       map[uint64]*module
	order      []uint64 // load order, stable across snapshots
}

type module struct {
	base      uint64
	limit     uint64 // base + image extent
	imagePath string
	debugPath string // file the debug info was read from
	bias      uint64 // runtime base minus link-time base, wraps for ET_EXEC
	syms      []symEntry
	dwarfData *dwarf.Data
}

// symEntry addresses are runtime (bias applied), sorted ascending.
type symEntry struct {
	addr uint64
	name string
}

// New creates an empty provider.
func New(logger zerolog.Logger) *Provider {
	return &Provider{
		logger: logger.With().Str("component", "elfsym").Logger(),
		mods:   make(map[uint64]*module),
	}
}

// LoadModule parses the ELF image at imagePath and indexes its symbols as
// loaded at base. Reloading an existing base replaces its symbols in place
// without changing its enumeration position.
func (p *Provider) LoadModule(imagePath string, base uint64) error {
	f, err := elf.Open(imagePath)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	defer pincererrors.DeferClose(p.logger, f, "image close failed")

	minVaddr, extent, err := imageExtent(f)
	if err != nil {
		return fmt.Errorf("image %s: %w", imagePath, err)
	}

	// Runtime address = link-time address + bias. For ET_EXEC the image is
	// loaded at its linked address and the bias is zero.
	bias := base - minVaddr

	m := &module{
		base:      base,
		limit:     base + extent,
		imagePath: imagePath,
		debugPath: imagePath,
		bias:      bias,
	}

	m.syms = collectSymbols(f, bias)

	dwarfData, err := f.DWARF()
	if err != nil {
		p.logger.Debug().Err(err).Str("image", imagePath).
			Msg("No DWARF data, line info unavailable")
	} else {
		m.dwarfData = dwarfData
	}

	if len(m.syms) == 0 && m.dwarfData == nil {
		return fmt.Errorf("image %s has no symbol information", imagePath)
	}

	if _, exists := p.mods[base]; !exists {
		p.order = append(p.order, base)
	}
	p.mods[base] = m

	p.logger.Debug().Str("image", imagePath).Uint64("base", base).
		Int("symbols", len(m.syms)).Bool("dwarf", m.dwarfData != nil).
		Msg("Module symbols loaded")
	return nil
}

// UnloadModule discards the symbols of the module loaded at base.
func (p *Provider) UnloadModule(base uint64) error {
	if _, ok := p.mods[base]; !ok {
		return fmt.Errorf("no module loaded at %#x", base)
	}
	delete(p.mods, base)
	for i, b := range p.order {
		if b == base {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return nil
}

// EnumerateModules visits loaded modules in load order.
func (p *Provider) EnumerateModules(fn func(name string, base uint64) bool) error {
	for _, base := range p.order {
		if !fn(p.mods[base].imagePath, base) {
			break
		}
	}
	return nil
}

// EnumerateSymbols visits the symbols of the module at base in address
// order. mask is a glob pattern; "*" matches everything.
func (p *Provider) EnumerateSymbols(base uint64, mask string, fn func(sym.SymbolInfo) bool) error {
	m, ok := p.mods[base]
	if !ok {
		return fmt.Errorf("no module loaded at %#x", base)
	}

	for _, e := range m.syms {
		if mask != "*" {
			matched, err := path.Match(mask, e.name)
			if err != nil {
				return fmt.Errorf("bad symbol mask %q: %w", mask, err)
			}
			if !matched {
				continue
			}
		}
		if !fn(sym.SymbolInfo{Address: e.addr, Name: e.name, ModuleBase: base}) {
			break
		}
	}
	return nil
}

// FindSymbolByName looks up an exact symbol name across all modules, in
// load order.
func (p *Provider) FindSymbolByName(name string) (sym.SymbolInfo, error) {
	for _, base := range p.order {
		for _, e := range p.mods[base].syms {
			if e.name == name {
				return sym.SymbolInfo{Address: e.addr, Name: e.name, ModuleBase: base}, nil
			}
		}
	}
	return sym.SymbolInfo{}, fmt.Errorf("symbol %q not found", name)
}

// FindSymbolByAddress returns the nearest symbol at or before addr within
// the containing module, plus the displacement from its start.
func (p *Provider) FindSymbolByAddress(addr uint64) (sym.SymbolInfo, uint64, error) {
	m, err := p.moduleFor(addr)
	if err != nil {
		return sym.SymbolInfo{}, 0, err
	}

	idx := sort.Search(len(m.syms), func(i int) bool {
		return m.syms[i].addr > addr
	})
	if idx == 0 {
		return sym.SymbolInfo{}, 0, fmt.Errorf("no symbol at or before %#x", addr)
	}

	e := m.syms[idx-1]
	return sym.SymbolInfo{Address: e.addr, Name: e.name, ModuleBase: m.base}, addr - e.addr, nil
}

// FindLineByAddress maps addr to a source file and line via the containing
// module's DWARF line table.
func (p *Provider) FindLineByAddress(addr uint64) (sym.LineInfo, error) {
	m, err := p.moduleFor(addr)
	if err != nil {
		return sym.LineInfo{}, err
	}
	if m.dwarfData == nil {
		return sym.LineInfo{}, fmt.Errorf("module %s has no line information", m.imagePath)
	}

	linkAddr := addr - m.bias

	reader := m.dwarfData.Reader()
	for {
		entry, err := reader.Next()
		if err != nil || entry == nil {
			break
		}
		if entry.Tag != dwarf.TagCompileUnit {
			continue
		}

		lineReader, err := m.dwarfData.LineReader(entry)
		if err != nil || lineReader == nil {
			continue
		}

		var le dwarf.LineEntry
		if err := lineReader.SeekPC(linkAddr, &le); err == nil && le.File != nil {
			return sym.LineInfo{File: le.File.Name, Line: le.Line}, nil
		}
		reader.SkipChildren()
	}

	return sym.LineInfo{}, fmt.Errorf("no line info for %#x", addr)
}

// DebugFilePath returns the file the containing module's debug info was
// loaded from.
func (p *Provider) DebugFilePath(addr uint64) (string, error) {
	m, err := p.moduleFor(addr)
	if err != nil {
		return "", err
	}
	return m.debugPath, nil
}

// SearchPath returns the current symbol search path.
func (p *Provider) SearchPath() (string, error) {
	return p.searchPath, nil
}

// SetSearchPath replaces the symbol search path. The string is passed
// through to symbol-server tooling untouched.
func (p *Provider) SetSearchPath(path string) error {
	p.searchPath = path
	return nil
}

func (p *Provider) moduleFor(addr uint64) (*module, error) {
	for _, base := range p.order {
		m := p.mods[base]
		if addr >= m.base && addr < m.limit {
			return m, nil
		}
	}
	return nil, fmt.Errorf("no module contains %#x", addr)
}

// imageExtent returns the lowest PT_LOAD vaddr and the size of the loaded
// image span.
func imageExtent(f *elf.File) (minVaddr, extent uint64, err error) {
	var maxEnd uint64
	found := false
	for _, prog := range f.Progs {
		if prog.Type != elf.PT_LOAD {
			continue
		}
		if !found || prog.Vaddr < minVaddr {
			minVaddr = prog.Vaddr
		}
		if end := prog.Vaddr + prog.Memsz; end > maxEnd {
			maxEnd = end
		}
		found = true
	}
	if !found {
		return 0, 0, fmt.Errorf("no loadable segments")
	}
	return minVaddr, maxEnd - minVaddr, nil
}

// collectSymbols merges .symtab and .dynsym into one address-sorted list.
// Either table may be absent; a stripped binary yields an empty list.
func collectSymbols(f *elf.File, bias uint64) []symEntry {
	var entries []symEntry
	seen := make(map[symEntry]struct{})

	add := func(syms []elf.Symbol) {
		for _, s := range syms {
			if s.Name == "" || s.Value == 0 {
				continue
			}
			if elf.ST_TYPE(s.Info) != elf.STT_FUNC && elf.ST_TYPE(s.Info) != elf.STT_OBJECT {
				continue
			}
			e := symEntry{addr: s.Value + bias, name: s.Name}
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			entries = append(entries, e)
		}
	}

	if syms, err := f.Symbols(); err == nil {
		add(syms)
	}
	if dynsyms, err := f.DynamicSymbols(); err == nil {
		add(dynsyms)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].addr != entries[j].addr {
			return entries[i].addr < entries[j].addr
		}
		return entries[i].name < entries[j].name
	})
	return entries
}
