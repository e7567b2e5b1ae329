package sym

// SymbolInfo is a provider-reported symbol.
type SymbolInfo struct {
	Address uint64
	Name    string
	// ModuleBase is the load base of the module the symbol belongs to.
	ModuleBase uint64
}

// LineInfo is a provider-reported source line. File may be relative to the
// module's debug-file directory, depending on how the debug info was built.
type LineInfo struct {
	File string
	Line int
}

// Provider is the native symbol capability: a parser/index of debug-info
// formats for the attached target. Implementations hold process-wide mutable
// state (search path, per-module symbol tables), so callers must not invoke
// two operations concurrently.
//
// Every method may fail; the Session routes all calls through a failure-safe
// adapter that converts errors and panics into "no result".
type Provider interface {
	// EnumerateModules visits every module with loaded symbol information,
	// in a stable provider-defined order. Returning false from fn stops
	// the walk.
	EnumerateModules(fn func(name string, base uint64) bool) error

	// EnumerateSymbols visits every symbol of the module loaded at base
	// whose name matches mask ("*" matches all). Returning false from fn
	// stops the walk.
	EnumerateSymbols(base uint64, mask string, fn func(SymbolInfo) bool) error

	// FindSymbolByName looks a symbol up by exact name across all loaded
	// modules.
	FindSymbolByName(name string) (SymbolInfo, error)

	// FindSymbolByAddress returns the nearest symbol at or before addr,
	// plus the displacement (addr minus symbol start).
	FindSymbolByAddress(addr uint64) (SymbolInfo, uint64, error)

	// FindLineByAddress maps addr to a source file and line.
	FindLineByAddress(addr uint64) (LineInfo, error)

	// DebugFilePath returns the path of the loaded debug-info file (PDB
	// equivalent) for the module containing addr.
	DebugFilePath(addr uint64) (string, error)

	// SearchPath and SetSearchPath read and replace the provider's
	// process-global symbol search path.
	SearchPath() (string, error)
	SetSearchPath(path string) error

	// LoadModule loads (or reloads) symbol information for the image at
	// imagePath, mapped at base. UnloadModule discards a module's symbol
	// information.
	LoadModule(imagePath string, base uint64) error
	UnloadModule(base uint64) error
}
