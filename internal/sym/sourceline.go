package sym

import (
	"strings"
)

// ResolveSourceLine maps addr to an absolute source path and line number.
// When the provider reports a relative file fragment, the path is repaired
// by anchoring it to the directory of the module's loaded debug-info file.
// Paths are the target's, not the host's, so both drive-letter and rooted
// forms count as absolute and separators are preserved as reported.
func (s *Session) ResolveSourceLine(addr uint64) (SourceLocation, bool) {
	li, ok := s.prov.lineAt(addr)
	if !ok {
		return SourceLocation{}, false
	}

	if isAbsoluteSourcePath(li.File) {
		return SourceLocation{File: li.File, Line: li.Line}, true
	}

	debugFile, ok := s.prov.debugFilePath(addr)
	if !ok {
		return SourceLocation{}, false
	}

	return SourceLocation{
		File: debugFileDir(debugFile) + li.File,
		Line: li.Line,
	}, true
}

// isAbsoluteSourcePath recognizes "C:\..." / "C:/..." drive paths and
// rooted POSIX paths.
func isAbsoluteSourcePath(p string) bool {
	if strings.HasPrefix(p, "/") {
		return true
	}
	return len(p) >= 3 && p[1] == ':' && (p[2] == '\\' || p[2] == '/')
}

// debugFileDir strips the trailing filename from a debug-file path, keeping
// the final separator so a relative fragment can be appended directly.
func debugFileDir(p string) string {
	idx := strings.LastIndexAny(p, `\/`)
	if idx < 0 {
		return ""
	}
	return p[:idx+1]
}
