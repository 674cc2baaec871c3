// Package host supplies the concrete driver-facing Host implementation.
// pkg/moduletranslator, pkg/annotator, and pkg/externs only ever see it
// through their own narrow Host interfaces (structurally satisfied
// here) — never this concrete type directly.
package host

import (
	"path"
	"strings"

	"github.com/alippai/gots-annotate/pkg/moduletranslator"
)

// Host implements the driver-facing policy surface: pathToModuleName,
// convertIndexImportShorthand, typeBlacklistPaths, untyped,
// disableAutoQuoting, logWarning.
type Host struct {
	// ModuleNamer computes the canonical cross-module name for a target
	// module. Left nil to use the default (strip extension, as-is path).
	ModuleNamer func(importerPath, importedPath string) string

	ConvertIndexImportShorthandFlag bool
	Blacklist                       map[string]bool
	UntypedFlag                     bool
	DisableAutoQuotingFlag           bool

	// OutputFormatMatchesTargetFlag reports whether the driver's selected
	// output module format is the one tsickle_forward_declare-style type
	// aliasing targets (CommonJS/goog.module); when false, exported type
	// aliases are left untranslated since the downstream module-format
	// rewriter owns that conversion instead.
	OutputFormatMatchesTargetFlag bool

	// OnWarning receives every non-fatal diagnostic, in addition to it
	// being recorded in the owning ModuleTypeTranslator's Diagnostics.
	OnWarning func(moduletranslator.Diagnostic)
}

// PathToModuleName computes the canonical cross-module name for
// importedPath as seen from importerPath.
func (h *Host) PathToModuleName(importerPath, importedPath string) string {
	if h.ModuleNamer != nil {
		return h.ModuleNamer(importerPath, importedPath)
	}
	name := importedPath
	if !strings.HasPrefix(name, ".") {
		return name
	}
	dir := path.Dir(importerPath)
	joined := path.Join(dir, name)
	return strings.TrimSuffix(joined, path.Ext(joined))
}

// ConvertIndexImportShorthand reports whether trailing "/index" import
// suffixes should be rewritten explicitly.
func (h *Host) ConvertIndexImportShorthand() bool { return h.ConvertIndexImportShorthandFlag }

// IsBlacklistedPath reports whether path's types must render as "?".
func (h *Host) IsBlacklistedPath(p string) bool { return h.Blacklist != nil && h.Blacklist[p] }

// Untyped reports whether every type string must render as "?".
func (h *Host) Untyped() bool { return h.UntypedFlag }

// DisableAutoQuoting reports whether quotes around property accessors
// must be left as written.
func (h *Host) DisableAutoQuoting() bool { return h.DisableAutoQuotingFlag }

// OutputModuleFormatMatchesTarget reports whether the driver's selected
// output module format matches this system's target.
func (h *Host) OutputModuleFormatMatchesTarget() bool { return h.OutputFormatMatchesTargetFlag }

// LogWarning forwards d to the optional callback.
func (h *Host) LogWarning(d moduletranslator.Diagnostic) {
	if h.OnWarning != nil {
		h.OnWarning(d)
	}
}
