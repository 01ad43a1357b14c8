package registry

import (
	"context"
	"fmt"
	"testing"

	"github.com/specialistvlad/uaschema/internal/model"
	"github.com/specialistvlad/uaschema/internal/nodeid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldTarget(t *testing.T, s *model.StructureDescriptor, name string) model.Descriptor {
	t.Helper()
	f, ok := s.Field(name)
	require.True(t, ok, "field %q not found", name)
	target, err := f.Type.Target()
	require.NoError(t, err)
	return target
}

func TestFinalize_ForwardReference(t *testing.T) {
	ctx := context.Background()
	r := New()

	serverState := model.NewEnumeration(nodeid.MustParse("ns=0;i=852"), "ServerState", []model.EnumValue{
		{Name: "Running", Value: 0},
		{Name: "Failed", Value: 1},
		{Name: "NoConfiguration", Value: 2},
		{Name: "Suspended", Value: 3},
		{Name: "Shutdown", Value: 4},
		{Name: "Test", Value: 5},
		{Name: "CommunicationFault", Value: 6},
		{Name: "Unknown", Value: 7},
	})
	serverStatus := structure(0, 864, "ServerStatus",
		model.Field("state", "ServerState"),
		model.Field("buildInfo", "BuildInfo"),
	)
	buildInfo := structure(0, 338, "BuildInfo",
		model.Field("ProductUri", "String"),
		model.Field("BuildDate", "UtcTime"),
	)

	require.NoError(t, r.RegisterEnumeration(serverState))
	require.NoError(t, r.RegisterStructure(serverStatus))
	require.NoError(t, r.RegisterStructure(buildInfo))
	require.NoError(t, r.Finalize(ctx))

	assert.Equal(t, StateFinalized, r.State())
	require.NoError(t, r.RequireFinalized())
	assert.True(t, serverStatus.Resolved())
	assert.Same(t, serverState, fieldTarget(t, serverStatus, "state"))
	assert.Same(t, buildInfo, fieldTarget(t, serverStatus, "buildInfo"))

	dateType := fieldTarget(t, buildInfo, "BuildDate")
	assert.Equal(t, model.KindPrimitive, dateType.Kind())
	assert.Equal(t, "ns=0;i=294", dateType.Identity().String())

	got, ok := r.ResolveByIdentity(nodeid.MustParse("ns=0;i=852"))
	require.True(t, ok)
	enum, ok := got.(*model.EnumerationDescriptor)
	require.True(t, ok)
	assert.Equal(t, 8, enum.Len())
	v, ok := enum.Value("CommunicationFault")
	require.True(t, ok)
	assert.EqualValues(t, 6, v)
}

func TestFinalize_MutualAndSelfReferences(t *testing.T) {
	r := New()
	a := structure(1, 1, "A", model.Field("b", "B"))
	b := structure(1, 2, "B", model.Field("a", "A"))
	node := structure(1, 3, "Node", model.Field("Value", "Int32"), model.ArrayField("Children", "Node"))

	require.NoError(t, r.RegisterStructure(a))
	require.NoError(t, r.RegisterStructure(b))
	require.NoError(t, r.RegisterStructure(node))
	require.NoError(t, r.Finalize(context.Background()))

	assert.Same(t, b, fieldTarget(t, a, "b"))
	assert.Same(t, a, fieldTarget(t, b, "a"))
	assert.Same(t, node, fieldTarget(t, node, "Children"))

	children, _ := node.Field("Children")
	assert.True(t, children.Array)
}

func TestFinalize_ReportsEveryUnresolvedField(t *testing.T) {
	r := New()

	fields := make([]model.FieldDescriptor, 42)
	for i := range fields {
		fields[i] = model.Field(fmt.Sprintf("Counter%02d", i), "ServiceCounter")
	}
	sessionDiagnostics := structure(0, 865, "SessionDiagnostics", fields...)
	require.NoError(t, r.RegisterStructure(sessionDiagnostics))

	err := r.Finalize(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnresolvedFieldType)
	assert.NotErrorIs(t, err, ErrAmbiguousFieldType)

	var ferr *FinalizationError
	require.ErrorAs(t, err, &ferr)
	require.Len(t, ferr.Unresolved, 42)
	for i, u := range ferr.Unresolved {
		assert.Equal(t, "SessionDiagnostics", u.Structure)
		assert.Equal(t, fmt.Sprintf("Counter%02d", i), u.Field)
		assert.Equal(t, "ServiceCounter", u.TypeRef)
		assert.Equal(t, "ns=0;i=865", u.Identity.String())
	}
	assert.Contains(t, err.Error(), "42 unresolved field type(s)")
	assert.Contains(t, err.Error(), "file test.hcl")

	assert.Equal(t, StateFailed, r.State())
	assert.False(t, sessionDiagnostics.Resolved())
	assert.ErrorIs(t, r.RequireFinalized(), ErrRegistryNotFinalized)
	_, err = r.Snapshot()
	assert.ErrorIs(t, err, ErrRegistryNotFinalized)
}

func TestFinalize_FailureBindsNothing(t *testing.T) {
	r := New()
	good := structure(1, 1, "Good", model.Field("X", "Double"))
	bad := structure(1, 2, "Bad", model.Field("Y", "Missing"))
	require.NoError(t, r.RegisterStructure(good))
	require.NoError(t, r.RegisterStructure(bad))

	require.Error(t, r.Finalize(context.Background()))
	assert.False(t, good.Resolved())
	assert.False(t, bad.Resolved())
}

func TestFinalize_RetryAfterFailure(t *testing.T) {
	ctx := context.Background()
	r := New()
	require.NoError(t, r.RegisterStructure(structure(0, 871, "ServiceCounterHolder", model.Field("Counter", "ServiceCounter"))))

	require.Error(t, r.Finalize(ctx))
	require.Equal(t, StateFailed, r.State())

	require.NoError(t, r.RegisterStructure(structure(0, 872, "ServiceCounter",
		model.Field("TotalCount", "UInt32"),
		model.Field("ErrorCount", "UInt32"),
	)))
	assert.Equal(t, StateFailed, r.State())

	require.NoError(t, r.Finalize(ctx))
	assert.Equal(t, StateFinalized, r.State())
}

func TestFinalize_Terminal(t *testing.T) {
	ctx := context.Background()
	r := New()
	require.NoError(t, r.RegisterEnumeration(enumeration(1, 1, "Mode", "On", "Off")))
	require.NoError(t, r.Finalize(ctx))

	err := r.RegisterEnumeration(enumeration(1, 2, "Late", "A"))
	assert.ErrorIs(t, err, ErrRegistryFinalized)
	err = r.RegisterStructure(structure(1, 3, "Later"))
	assert.ErrorIs(t, err, ErrRegistryFinalized)
	assert.ErrorIs(t, r.Finalize(ctx), ErrRegistryFinalized)

	_, ok := r.ResolveByName(1, "Late")
	assert.False(t, ok)
}

func TestFinalize_EmptyRegistry(t *testing.T) {
	r := New()
	require.NoError(t, r.Finalize(context.Background()))

	c, err := r.Snapshot()
	require.NoError(t, err)
	assert.Zero(t, c.Len())
	assert.Empty(t, c.Descriptors())
}

func TestFinalize_ResolutionTiers(t *testing.T) {
	testCases := []struct {
		name     string
		setup    []model.Descriptor
		owner    *model.StructureDescriptor
		wantID   string
		wantErr  error
		wantCand int
	}{
		{
			name:   "primitive wins over registered name",
			setup:  []model.Descriptor{structure(2, 50, "String")},
			owner:  structure(2, 1, "Holder", model.Field("F", "String")),
			wantID: "ns=0;i=12",
		},
		{
			name:   "qualified name reaches shadowed type",
			setup:  []model.Descriptor{structure(2, 50, "String")},
			owner:  structure(2, 1, "Holder", model.Field("F", "2:String")),
			wantID: "ns=2;i=50",
		},
		{
			name: "own namespace wins over others",
			setup: []model.Descriptor{
				enumeration(3, 10, "Mode", "A"),
				enumeration(2, 10, "Mode", "A"),
			},
			owner:  structure(2, 1, "Holder", model.Field("F", "Mode")),
			wantID: "ns=2;i=10",
		},
		{
			name:   "single match in another namespace",
			setup:  []model.Descriptor{enumeration(5, 10, "Unit", "A")},
			owner:  structure(2, 1, "Holder", model.Field("F", "Unit")),
			wantID: "ns=5;i=10",
		},
		{
			name:   "namespace zero type from another namespace",
			setup:  []model.Descriptor{structure(0, 338, "BuildInfo")},
			owner:  structure(4, 1, "Holder", model.Field("F", "BuildInfo")),
			wantID: "ns=0;i=338",
		},
		{
			name: "qualified name picks one of several",
			setup: []model.Descriptor{
				enumeration(3, 10, "Mode", "A"),
				enumeration(4, 10, "Mode", "A"),
			},
			owner:  structure(2, 1, "Holder", model.Field("F", "4:Mode")),
			wantID: "ns=4;i=10",
		},
		{
			name: "several matches in other namespaces",
			setup: []model.Descriptor{
				enumeration(4, 10, "Mode", "A"),
				enumeration(3, 10, "Mode", "A"),
			},
			owner:    structure(2, 1, "Holder", model.Field("F", "Mode")),
			wantErr:  ErrAmbiguousFieldType,
			wantCand: 2,
		},
		{
			name:    "qualified name in wrong namespace",
			setup:   []model.Descriptor{enumeration(3, 10, "Mode", "A")},
			owner:   structure(2, 1, "Holder", model.Field("F", "7:Mode")),
			wantErr: ErrUnresolvedFieldType,
		},
		{
			name:    "names are case-sensitive",
			owner:   structure(2, 1, "Holder", model.Field("F", "uint32")),
			wantErr: ErrUnresolvedFieldType,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := New()
			for _, d := range tc.setup {
				switch d := d.(type) {
				case *model.EnumerationDescriptor:
					require.NoError(t, r.RegisterEnumeration(d))
				case *model.StructureDescriptor:
					require.NoError(t, r.RegisterStructure(d))
				}
			}
			require.NoError(t, r.RegisterStructure(tc.owner))

			err := r.Finalize(context.Background())
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				var ferr *FinalizationError
				require.ErrorAs(t, err, &ferr)
				require.Len(t, ferr.Unresolved, 1)
				assert.Len(t, ferr.Unresolved[0].Candidates, tc.wantCand)
				if tc.wantCand > 1 {
					c := ferr.Unresolved[0].Candidates
					assert.Less(t, c[0].Namespace(), c[1].Namespace())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, fieldTarget(t, tc.owner, "F").Identity().String())
		})
	}
}

func TestSplitQualifiedRef(t *testing.T) {
	testCases := []struct {
		ref    string
		wantNS uint16
		want   string
		wantOK bool
	}{
		{"2:BoilerState", 2, "BoilerState", true},
		{"0:Int32", 0, "Int32", true},
		{"BoilerState", 0, "", false},
		{"02:X", 0, "", false},
		{"70000:X", 0, "", false},
		{"2:", 0, "", false},
		{":X", 0, "", false},
	}
	for _, tc := range testCases {
		t.Run(tc.ref, func(t *testing.T) {
			ns, name, ok := splitQualifiedRef(tc.ref)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantNS, ns)
			assert.Equal(t, tc.want, name)
		})
	}
}
