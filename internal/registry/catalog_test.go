package registry

import (
	"context"
	"testing"

	"github.com/specialistvlad/uaschema/internal/model"
	"github.com/specialistvlad/uaschema/internal/nodeid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finalizedRegistry(t *testing.T) *Registry {
	t.Helper()
	r := New()
	require.NoError(t, r.RegisterStructure(structure(0, 862, "ServerStatusDataType", model.Field("State", "ServerState"))))
	require.NoError(t, r.RegisterEnumeration(enumeration(0, 852, "ServerState", "Running", "Failed")))
	require.NoError(t, r.RegisterStructure(structure(0, 338, "BuildInfo", model.Field("ProductUri", "String"))))
	require.NoError(t, r.RegisterEnumeration(enumeration(2, 1, "BoilerState", "Idle", "Heating")))
	require.NoError(t, r.Finalize(context.Background()))
	return r
}

func identities(ds []model.Descriptor) []string {
	ids := make([]string, len(ds))
	for i, d := range ds {
		ids[i] = d.Identity().String()
	}
	return ids
}

func TestSnapshot(t *testing.T) {
	r := New()
	_, err := r.Snapshot()
	require.ErrorIs(t, err, ErrRegistryNotFinalized)

	r = finalizedRegistry(t)
	c, err := r.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, 4, c.Len())
	assert.Equal(t, []string{"ns=0;i=338", "ns=0;i=852", "ns=0;i=862", "ns=2;i=1"}, identities(c.Descriptors()))
	require.Len(t, c.Enumerations(), 2)
	assert.Equal(t, "ServerState", c.Enumerations()[0].Name())
	require.Len(t, c.Structures(), 2)
	assert.Equal(t, "BuildInfo", c.Structures()[0].Name())

	for _, s := range c.Structures() {
		assert.True(t, s.Resolved(), s.Name())
	}

	again, err := r.Snapshot()
	require.NoError(t, err)
	assert.Same(t, c, again)
}

func TestCatalog_Resolve(t *testing.T) {
	c, err := finalizedRegistry(t).Snapshot()
	require.NoError(t, err)

	d, ok := c.ResolveByIdentity(nodeid.Numeric(0, 852))
	require.True(t, ok)
	assert.Equal(t, "ServerState", d.Name())

	d, ok = c.ResolveByName(2, "BoilerState")
	require.True(t, ok)
	assert.Equal(t, "ns=2;i=1", d.Identity().String())

	d, ok = c.ResolveByName(0, "Double")
	require.True(t, ok)
	assert.Equal(t, model.KindPrimitive, d.Kind())

	_, ok = c.ResolveByName(0, "BoilerState")
	assert.False(t, ok)
	_, ok = c.ResolveByIdentity(nodeid.String(0, "ServerState"))
	assert.False(t, ok)
}

func TestCatalog_Lookup(t *testing.T) {
	r := finalizedRegistry(t)
	c, err := r.Snapshot()
	require.NoError(t, err)

	testCases := []struct {
		ref     string
		wantID  string
		wantErr error
	}{
		{ref: "ns=0;i=852", wantID: "ns=0;i=852"},
		{ref: "  ns=2;i=1 ", wantID: "ns=2;i=1"},
		{ref: "ServerState", wantID: "ns=0;i=852"},
		{ref: "2:BoilerState", wantID: "ns=2;i=1"},
		{ref: "0:UInt32", wantID: "ns=0;i=7"},
		{ref: "BoilerState", wantErr: ErrNotFound},
		{ref: "ns=0;i=99999", wantErr: ErrNotFound},
		{ref: "ns=0;i=abc", wantErr: nodeid.ErrMalformedIdentity},
	}
	for _, tc := range testCases {
		t.Run(tc.ref, func(t *testing.T) {
			for name, lookup := range map[string]func(string) (model.Descriptor, error){
				"catalog":  c.Lookup,
				"registry": r.Lookup,
			} {
				d, err := lookup(tc.ref)
				if tc.wantErr != nil {
					assert.ErrorIs(t, err, tc.wantErr, name)
					continue
				}
				require.NoError(t, err, name)
				assert.Equal(t, tc.wantID, d.Identity().String(), name)
			}
		})
	}
}

func TestRegistry_ResolveBeforeFinalize(t *testing.T) {
	r := New()
	s := structure(0, 862, "ServerStatusDataType", model.Field("State", "ServerState"))
	require.NoError(t, r.RegisterStructure(s))

	d, ok := r.ResolveByName(0, "ServerStatusDataType")
	require.True(t, ok)
	assert.Same(t, s, d)
	assert.ErrorIs(t, r.RequireFinalized(), ErrRegistryNotFinalized)
}
