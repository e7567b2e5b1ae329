package symbols

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pincerdbg/pincer/internal/config"
	"github.com/pincerdbg/pincer/internal/labels"
	"github.com/pincerdbg/pincer/internal/logging"
	"github.com/pincerdbg/pincer/internal/sym"
	"github.com/pincerdbg/pincer/internal/sym/elfsym"
	"github.com/pincerdbg/pincer/internal/sys/proc"
)

// RegisterCommands adds all symbol commands to the root command.
func RegisterCommands(root *cobra.Command) {
	root.AddCommand(
		newModulesCmd(),
		newSymbolsCmd(),
		newResolveCmd(),
		newAddrCmd(),
		newLineCmd(),
		newDownloadCmd(),
	)
}

// target bundles the collaborators of one attached process.
type target struct {
	cfg     *config.Config
	logger  zerolog.Logger
	tracker *proc.Tracker
	session *sym.Session
}

// attachTarget wires tracker, provider, label store, and session for pid,
// and primes the provider with every module the tracker can see. Modules
// without readable symbol information are skipped with a log line, matching
// the subsystem's degrade-not-fail policy.
func attachTarget(pid int32) (*target, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(logging.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	tracker, err := proc.Attach(pid, logger)
	if err != nil {
		return nil, fmt.Errorf("attach to pid %d: %w", pid, err)
	}

	provider := elfsym.New(logger)
	for _, m := range tracker.Modules() {
		if err := provider.LoadModule(m.Path, m.Base); err != nil {
			logger.Debug().Err(err).Str("module", m.Name).Msg("Skipping module without symbols")
		}
	}

	store := labels.New(logger)
	session := sym.NewSession(cfg.Symbols, logger, provider, tracker, store, consoleNotifier{})

	return &target{
		cfg:     cfg,
		logger:  logger,
		tracker: tracker,
		session: session,
	}, nil
}

// moduleBase resolves a module display name from the current snapshot.
func (t *target) moduleBase(name string) (uint64, error) {
	modules, err := t.session.ListModules()
	if err != nil {
		return 0, err
	}
	for _, m := range modules {
		if m.Name == name {
			return m.Base, nil
		}
	}
	return 0, fmt.Errorf("module %q not loaded", name)
}

// parseAddress accepts decimal or 0x-prefixed hex.
func parseAddress(s string) (uint64, error) {
	addr, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return addr, nil
}

// consoleNotifier prints module-list refreshes and download progress to
// stdout, standing in for the debugger UI.
type consoleNotifier struct{}

func (consoleNotifier) ModuleList(count int, modules []sym.ModuleRecord) {
	fmt.Printf("%d modules\n", count)
	for _, m := range modules {
		fmt.Printf("  %#016x  %s\n", m.Base, m.Name)
	}
}

func (consoleNotifier) Progress(text string) {
	fmt.Println(text)
}
