// Package sym resolves machine addresses in a debugged process to
// human-meaningful names: exported symbols, demangled C++ names, user labels,
// and source file/line pairs.
//
// The core component is the Session, which represents the attached target's
// symbol state. It reconciles three naming authorities - the native symbol
// provider, the user label store, and loaded-module metadata - into a single
// priority-ordered answer, and tolerates missing debug info and provider
// failures by degrading to "no symbol" instead of failing the debugger.
//
// A Session takes no locks. The provider's search path and loaded symbol
// tables are shared mutable state, so the caller (the debugger's command
// loop) must serialize all calls into this package.
package sym
