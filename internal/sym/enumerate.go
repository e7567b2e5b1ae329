package sym

import (
	"fmt"
	"strings"

	"github.com/pincerdbg/pincer/internal/constants"
)

// EnumerateSymbols streams every symbol of the module loaded at base to
// sink, in provider order. The sink cannot stop the enumeration; it runs
// until the provider is exhausted or the provider call itself fails.
//
// Records are plain values; the sink may retain them freely.
func (s *Session) EnumerateSymbols(base uint64, sink func(SymbolRecord)) error {
	ok := s.prov.enumerateSymbols(base, constants.DefaultSymbolMask, func(si SymbolInfo) bool {
		// Ordinal-only exports at the module base carry no information.
		if strings.Contains(si.Name, "Ordinal") && si.Address == si.ModuleBase {
			return true
		}

		rec := SymbolRecord{
			Address:       si.Address,
			DecoratedName: si.Name,
		}
		if und, ok := undecorate(si.Name); ok && und != si.Name {
			rec.UndecoratedName = und
		}

		sink(rec)
		return true
	})
	if !ok {
		return fmt.Errorf("symbol enumeration failed for module at %#x", base)
	}
	return nil
}
