package host

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alippai/gots-annotate/pkg/moduletranslator"
)

func TestHost_PathToModuleName_DefaultRelative(t *testing.T) {
	h := &Host{}
	assert.Equal(t, "foo/bar", h.PathToModuleName("foo/baz.ts", "./bar"))
}

func TestHost_PathToModuleName_NonRelativePassesThrough(t *testing.T) {
	h := &Host{}
	assert.Equal(t, "some/pkg", h.PathToModuleName("foo/baz.ts", "some/pkg"))
}

func TestHost_PathToModuleName_CustomNamer(t *testing.T) {
	h := &Host{ModuleNamer: func(importer, imported string) string { return "custom:" + imported }}
	assert.Equal(t, "custom:./bar", h.PathToModuleName("foo/baz.ts", "./bar"))
}

func TestHost_IsBlacklistedPath(t *testing.T) {
	h := &Host{Blacklist: map[string]bool{"vendor/lib.ts": true}}
	assert.True(t, h.IsBlacklistedPath("vendor/lib.ts"))
	assert.False(t, h.IsBlacklistedPath("src/app.ts"))

	empty := &Host{}
	assert.False(t, empty.IsBlacklistedPath("anything.ts"))
}

func TestHost_UntypedAndDisableAutoQuoting(t *testing.T) {
	h := &Host{UntypedFlag: true, DisableAutoQuotingFlag: true}
	assert.True(t, h.Untyped())
	assert.True(t, h.DisableAutoQuoting())

	def := &Host{}
	assert.False(t, def.Untyped())
	assert.False(t, def.DisableAutoQuoting())
}

func TestHost_OutputModuleFormatMatchesTarget(t *testing.T) {
	h := &Host{OutputFormatMatchesTargetFlag: true}
	assert.True(t, h.OutputModuleFormatMatchesTarget())
}

func TestHost_LogWarning_ForwardsToCallback(t *testing.T) {
	var got moduletranslator.Diagnostic
	h := &Host{OnWarning: func(d moduletranslator.Diagnostic) { got = d }}

	d := moduletranslator.Diagnostic{File: "a.ts", MessageText: "oops"}
	h.LogWarning(d)

	assert.Equal(t, "a.ts", got.File)
	assert.Equal(t, "oops", got.MessageText)
}

func TestHost_LogWarning_NilCallbackIsNoop(t *testing.T) {
	h := &Host{}
	assert.NotPanics(t, func() {
		h.LogWarning(moduletranslator.Diagnostic{File: "a.ts"})
	})
}
