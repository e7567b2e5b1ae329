package sym

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pincerdbg/pincer/internal/config"
	"github.com/pincerdbg/pincer/internal/constants"
	"github.com/pincerdbg/pincer/internal/retry"
)

// Session is the symbol state of one attached target. It carries the native
// provider plus the collaborating subsystems explicitly; there are no
// package-level singletons.
//
// Sessions take no locks. The provider's state is process-global, so the
// debugger's command loop must serialize all Session calls.
type Session struct {
	id       string
	cfg      config.SymbolsConfig
	logger   zerolog.Logger
	prov     *safeProvider
	modules  ModuleResolver
	labels   LabelStore
	notify   Notifier
	download retry.Config
}

// NewSession creates a symbol session for an attached target. notify may be
// nil when no UI is attached.
func NewSession(cfg config.SymbolsConfig, logger zerolog.Logger, provider Provider,
	modules ModuleResolver, labels LabelStore, notify Notifier) *Session {

	id := uuid.NewString()
	logger = logger.With().
		Str("component", "symbols").
		Str("session_id", id).
		Logger()

	if notify == nil {
		notify = NopNotifier{}
	}

	return &Session{
		id:       id,
		cfg:      cfg,
		logger:   logger,
		prov:     newSafeProvider(provider, logger),
		modules:  modules,
		labels:   labels,
		notify:   notify,
		download: downloadRetryConfig(cfg.Download),
	}
}

// ID returns the session's identifier, used for log correlation.
func (s *Session) ID() string {
	return s.id
}

// downloadRetryConfig fills in defaults for unset download retry knobs.
func downloadRetryConfig(cfg config.DownloadConfig) retry.Config {
	rc := retry.Config{
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.InitialBackoff.Std(),
		MaxBackoff:     cfg.MaxBackoff.Std(),
	}
	if rc.MaxRetries <= 0 {
		rc.MaxRetries = constants.DefaultDownloadMaxRetries
	}
	if rc.InitialBackoff <= 0 {
		rc.InitialBackoff = constants.DefaultDownloadInitialBackoffMs * time.Millisecond
	}
	return rc
}
