// Package symbols provides CLI commands for inspecting symbols of a live
// process: listing loaded modules, enumerating a module's symbols,
// resolving addresses to names and source lines, and bulk symbol-server
// downloads.
package symbols
