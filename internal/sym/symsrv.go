package sym

import (
	"context"
	"fmt"

	"github.com/pincerdbg/pincer/internal/retry"
)

// DownloadAllSymbols unloads and reloads every module's symbols against a
// symbol-server search path, then restores the previous search path no
// matter how the per-module loop went. serverURL defaults to the configured
// symbol server.
//
// Modules are processed strictly one at a time: the provider's search path
// is process-global state and must not be mutated concurrently. A module
// whose image path, unload, or reload fails is logged and skipped; the
// batch continues. Each reload is retried on failure since symbol-server
// fetches are network-bound and transiently flaky.
func (s *Session) DownloadAllSymbols(ctx context.Context, serverURL string) error {
	if serverURL == "" {
		serverURL = s.cfg.ServerURL
	}

	modules, err := s.ListModules()
	if err != nil {
		return err
	}
	if len(modules) == 0 {
		return nil
	}

	oldSearchPath, ok := s.prov.searchPath()
	if !ok {
		return fmt.Errorf("cannot read current symbol search path")
	}

	// SRV*<cache>*<server> is the conventional downstream-store syntax the
	// native provider understands.
	searchPath := fmt.Sprintf("SRV*%s*%s", s.cfg.CachePath, serverURL)
	if !s.prov.setSearchPath(searchPath) {
		return fmt.Errorf("provider rejected search path %q", searchPath)
	}

	defer func() {
		if !s.prov.setSearchPath(oldSearchPath) {
			s.logger.Warn().Str("path", oldSearchPath).Msg("Failed to restore symbol search path")
		}
	}()

	for _, mod := range modules {
		s.notify.Progress(fmt.Sprintf("Downloading symbols for %s...", mod.Name))

		imagePath, ok := s.modules.ImagePath(mod.Base)
		if !ok {
			s.logger.Warn().Uint64("base", mod.Base).Str("module", mod.Name).
				Msg("No image path for module, skipping")
			continue
		}

		if !s.prov.unloadModule(mod.Base) {
			continue
		}

		err := retry.Do(ctx, s.download, func() error {
			return s.prov.loadModule(imagePath, mod.Base)
		}, nil)
		if err != nil {
			s.logger.Warn().Err(err).Uint64("base", mod.Base).Str("module", mod.Name).
				Msg("Symbol reload failed, skipping module")
			continue
		}

		s.logger.Info().Str("module", mod.Name).Uint64("base", mod.Base).
			Msg("Symbols reloaded")
	}

	return nil
}
