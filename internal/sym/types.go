package sym

// SymbolRecord is one enumerated symbol, as handed to an enumeration sink.
type SymbolRecord struct {
	// Address is the symbol's virtual address in the target.
	Address uint64

	// DecoratedName is the raw (possibly mangled) name from the provider.
	DecoratedName string

	// UndecoratedName is the demangled form. Empty when demangling failed
	// or produced a name identical to DecoratedName.
	UndecoratedName string
}

// ModuleRecord is one entry of a point-in-time loaded-module snapshot.
// A snapshot is consistent only for the instant it was captured; the target
// process is live and modules may unload at any time afterward.
type ModuleRecord struct {
	Base uint64
	// Name is the module's display name, or empty when the module tracker
	// could not resolve one.
	Name string
}

// SourceLocation is an absolute source file path and a 1-based line number.
type SourceLocation struct {
	File string
	Line int
}

// ModuleResolver is the process/module tracking collaborator. It knows the
// user-facing names and on-disk image paths of the target's loaded modules.
type ModuleResolver interface {
	// NameFromAddress resolves the display name of the module containing
	// addr.
	NameFromAddress(addr uint64) (string, bool)

	// ImagePath returns the on-disk image path of the module loaded at
	// base.
	ImagePath(base uint64) (string, bool)
}

// LabelStore is the user-label collaborator. User-assigned labels take
// priority over provider symbols during name resolution.
type LabelStore interface {
	LabelAt(addr uint64) (string, bool)
}

// Notifier receives module-list refreshes and bulk-download progress text.
// Implementations belong to the UI layer; the nop implementation is used
// when no UI is attached.
type Notifier interface {
	ModuleList(count int, modules []ModuleRecord)
	Progress(text string)
}

// NopNotifier is a Notifier that discards everything.
type NopNotifier struct{}

func (NopNotifier) ModuleList(int, []ModuleRecord) {}
func (NopNotifier) Progress(string)                {}
