// internal/nodeid/types_test.go
package nodeid

import (
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	g := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")

	testCases := []struct {
		name       string
		namespace  int
		identifier any
		expectErr  bool
		expectedID ID
	}{
		{name: "int", namespace: 0, identifier: 852, expectedID: Numeric(0, 852)},
		{name: "uint32", namespace: 1, identifier: uint32(7), expectedID: Numeric(1, 7)},
		{name: "int64", namespace: 2, identifier: int64(99), expectedID: Numeric(2, 99)},
		{name: "string", namespace: 3, identifier: "Pump", expectedID: String(3, "Pump")},
		{name: "guid", namespace: 4, identifier: g, expectedID: GUID(4, g)},
		{name: "bytes", namespace: 5, identifier: []byte{1, 2}, expectedID: Opaque(5, []byte{1, 2})},
		{name: "prebuilt id", namespace: 0, identifier: Numeric(0, 1), expectedID: Numeric(0, 1)},
		{name: "error - negative namespace", namespace: -1, identifier: 1, expectErr: true},
		{name: "error - namespace too large", namespace: 70000, identifier: 1, expectErr: true},
		{name: "error - negative identifier", namespace: 0, identifier: -5, expectErr: true},
		{name: "error - identifier too large", namespace: 0, identifier: uint64(1) << 40, expectErr: true},
		{name: "error - empty string", namespace: 0, identifier: "", expectErr: true},
		{name: "error - empty bytes", namespace: 0, identifier: []byte{}, expectErr: true},
		{name: "error - float", namespace: 0, identifier: 1.5, expectErr: true},
		{name: "error - prebuilt id from other namespace", namespace: 1, identifier: Numeric(0, 1), expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := Make(tc.namespace, tc.identifier)
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrMalformedIdentity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedID, id)
		})
	}
}

func TestID_Accessors(t *testing.T) {
	id := MustParse("ns=2;s=Valve")
	assert.Equal(t, uint16(2), id.Namespace())
	assert.Equal(t, KindString, id.Kind())

	s, ok := id.StringValue()
	assert.True(t, ok)
	assert.Equal(t, "Valve", s)

	_, ok = id.NumericValue()
	assert.False(t, ok)
	_, ok = id.GUIDValue()
	assert.False(t, ok)
	_, ok = id.OpaqueValue()
	assert.False(t, ok)

	assert.True(t, ID{}.IsZero())
	assert.False(t, id.IsZero())
}

func TestOpaque_CopiesInput(t *testing.T) {
	raw := []byte{1, 2, 3}
	id := Opaque(0, raw)
	raw[0] = 9

	got, ok := id.OpaqueValue()
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, got)
}

func TestCompare(t *testing.T) {
	ordered := []ID{
		Numeric(0, 1),
		Numeric(0, 852),
		String(0, "A"),
		String(0, "B"),
		GUID(0, uuid.MustParse("00000000-0000-0000-0000-000000000001")),
		Opaque(0, []byte{0}),
		Numeric(1, 0),
		String(2, "x"),
	}

	shuffled := slices.Clone(ordered)
	slices.Reverse(shuffled)
	slices.SortFunc(shuffled, Compare)

	assert.Equal(t, ordered, shuffled)
	assert.Equal(t, 0, Compare(Numeric(3, 3), Numeric(3, 3)))
}
