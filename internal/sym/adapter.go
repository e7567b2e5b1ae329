package sym

import (
	"fmt"

	"github.com/rs/zerolog"
)

// safeProvider is a failure-safe facade over the native Provider. Provider
// implementations wrap external debug-info machinery, so any call may fail
// or panic; neither is allowed to take down the host debugger. Failures are
// logged and degrade to "no result".
type safeProvider struct {
	p      Provider
	logger zerolog.Logger
}

func newSafeProvider(p Provider, logger zerolog.Logger) *safeProvider {
	return &safeProvider{p: p, logger: logger}
}

// guard runs one provider call, converting a panic into an error.
func (s *safeProvider) guard(op string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panic: %v", r)
			s.logger.Error().Str("op", op).Interface("panic", r).Msg("Symbol provider fault")
		}
	}()
	return fn()
}

func (s *safeProvider) enumerateModules(fn func(name string, base uint64) bool) bool {
	err := s.guard("EnumerateModules", func() error {
		return s.p.EnumerateModules(fn)
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("Module enumeration failed")
		return false
	}
	return true
}

func (s *safeProvider) enumerateSymbols(base uint64, mask string, fn func(SymbolInfo) bool) bool {
	err := s.guard("EnumerateSymbols", func() error {
		return s.p.EnumerateSymbols(base, mask, fn)
	})
	if err != nil {
		s.logger.Warn().Err(err).Uint64("base", base).Msg("Symbol enumeration failed")
		return false
	}
	return true
}

func (s *safeProvider) findByName(name string) (SymbolInfo, bool) {
	var si SymbolInfo
	err := s.guard("FindSymbolByName", func() error {
		var err error
		si, err = s.p.FindSymbolByName(name)
		return err
	})
	if err != nil {
		s.logger.Debug().Err(err).Str("name", name).Msg("Symbol name lookup failed")
		return SymbolInfo{}, false
	}
	return si, true
}

func (s *safeProvider) findByAddress(addr uint64) (SymbolInfo, uint64, bool) {
	var (
		si   SymbolInfo
		disp uint64
	)
	err := s.guard("FindSymbolByAddress", func() error {
		var err error
		si, disp, err = s.p.FindSymbolByAddress(addr)
		return err
	})
	if err != nil {
		s.logger.Debug().Err(err).Uint64("addr", addr).Msg("Symbol address lookup failed")
		return SymbolInfo{}, 0, false
	}
	return si, disp, true
}

func (s *safeProvider) lineAt(addr uint64) (LineInfo, bool) {
	var li LineInfo
	err := s.guard("FindLineByAddress", func() error {
		var err error
		li, err = s.p.FindLineByAddress(addr)
		return err
	})
	if err != nil {
		s.logger.Debug().Err(err).Uint64("addr", addr).Msg("Line lookup failed")
		return LineInfo{}, false
	}
	return li, true
}

func (s *safeProvider) debugFilePath(addr uint64) (string, bool) {
	var path string
	err := s.guard("DebugFilePath", func() error {
		var err error
		path, err = s.p.DebugFilePath(addr)
		return err
	})
	if err != nil {
		s.logger.Debug().Err(err).Uint64("addr", addr).Msg("Debug file lookup failed")
		return "", false
	}
	return path, true
}

func (s *safeProvider) searchPath() (string, bool) {
	var path string
	err := s.guard("SearchPath", func() error {
		var err error
		path, err = s.p.SearchPath()
		return err
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("Reading symbol search path failed")
		return "", false
	}
	return path, true
}

func (s *safeProvider) setSearchPath(path string) bool {
	err := s.guard("SetSearchPath", func() error {
		return s.p.SetSearchPath(path)
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("Setting symbol search path failed")
		return false
	}
	return true
}

// loadModule returns the error rather than a bool so bulk reload can feed it
// to the retry helper.
func (s *safeProvider) loadModule(imagePath string, base uint64) error {
	return s.guard("LoadModule", func() error {
		return s.p.LoadModule(imagePath, base)
	})
}

func (s *safeProvider) unloadModule(base uint64) bool {
	err := s.guard("UnloadModule", func() error {
		return s.p.UnloadModule(base)
	})
	if err != nil {
		s.logger.Warn().Err(err).Uint64("base", base).Msg("Symbol unload failed")
		return false
	}
	return true
}
