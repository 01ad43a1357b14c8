package testutil

import (
	"strings"
	"testing"

	"github.com/specialistvlad/uaschema/internal/model"
	"github.com/stretchr/testify/require"
)

// AssertLogged checks that the captured log output contains msg.
func AssertLogged(t *testing.T, result *HarnessResult, msg string) {
	t.Helper()
	require.True(t,
		strings.Contains(result.LogOutput, msg),
		"expected log output to contain %q", msg,
	)
}

// RequireDescriptor resolves ref in the loaded registry and fails the test if
// it is missing.
func RequireDescriptor(t *testing.T, result *HarnessResult, ref string) model.Descriptor {
	t.Helper()
	require.NoError(t, result.Err, "load failed")
	d, err := result.App.Registry().Lookup(ref)
	require.NoError(t, err)
	return d
}

// RequireStructure is RequireDescriptor for a structure.
func RequireStructure(t *testing.T, result *HarnessResult, ref string) *model.StructureDescriptor {
	t.Helper()
	d := RequireDescriptor(t, result, ref)
	s, ok := d.(*model.StructureDescriptor)
	require.True(t, ok, "%s is a %s, not a structure", ref, d.Kind())
	return s
}
