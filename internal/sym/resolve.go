package sym

import (
	"strings"
)

// ResolveSymbolicName produces the best display name for addr, rendered as
// "module.label", or "<label>" when no containing module is known. User
// labels win over provider symbols. A provider match is only accepted at
// zero displacement: a nearest symbol that merely precedes addr is not a
// name for it.
//
// The result is a fresh string on every call; nothing is cached or reused.
func (s *Session) ResolveSymbolicName(addr uint64) (string, bool) {
	label, ok := s.labels.LabelAt(addr)
	if !ok {
		si, displacement, ok := s.prov.findByAddress(addr)
		if !ok || displacement != 0 {
			return "", false
		}

		label = si.Name
		if s.cfg.UndecorateNames {
			if und, ok := undecorate(si.Name); ok {
				label = und
			}
		}
	}

	if mod, ok := s.modules.NameFromAddress(addr); ok && mod != "" {
		return mod + "." + label, true
	}
	return "<" + label + ">", true
}

// AddressFromName resolves a symbol name to its address. Empty names and
// "Ordinal"-prefixed placeholder exports never resolve.
func (s *Session) AddressFromName(name string) (uint64, bool) {
	if name == "" || hasOrdinalPrefix(name) {
		return 0, false
	}

	si, ok := s.prov.findByName(name)
	if !ok {
		return 0, false
	}
	return si.Address, true
}

func hasOrdinalPrefix(name string) bool {
	const prefix = "Ordinal"
	return len(name) >= len(prefix) && strings.EqualFold(name[:len(prefix)], prefix)
}
