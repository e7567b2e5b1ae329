package sym

import (
	"fmt"
)

// ListModules captures a point-in-time snapshot of the target's loaded
// modules, in provider enumeration order. Module names come from the module
// tracker; a module whose name cannot be resolved is kept with an empty name
// rather than dropped. Only a failure of the enumeration itself fails the
// snapshot.
func (s *Session) ListModules() ([]ModuleRecord, error) {
	var list []ModuleRecord

	ok := s.prov.enumerateModules(func(_ string, base uint64) bool {
		// The tracker owns user-facing module names; the provider's own
		// record is just the image path it loaded symbols from.
		name, ok := s.modules.NameFromAddress(base)
		if !ok {
			name = ""
		}
		list = append(list, ModuleRecord{Base: base, Name: name})
		return true
	})
	if !ok {
		return nil, fmt.Errorf("module snapshot failed")
	}
	return list, nil
}

// UpdateModuleList pushes a fresh module snapshot to the notifier. On
// snapshot failure the notifier receives an empty list so a stale one is
// never left on display.
func (s *Session) UpdateModuleList() {
	list, err := s.ListModules()
	if err != nil {
		s.notify.ModuleList(0, nil)
		return
	}
	s.notify.ModuleList(len(list), list)
}
