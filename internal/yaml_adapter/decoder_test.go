package yaml_adapter

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/uaschema/internal/model"
	"github.com/specialistvlad/uaschema/internal/nodeid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serverTypesYAML = `
structures:
  - name: BuildInfo
    id: {namespace: 0, numeric: 338}
    description: Information about the software build.
    fields:
      - {name: ProductUri, type: String}
      - {name: LocaleIds, type: LocaleId, array: true}
  - name: Boiler
    namespace: 2
    id: 5001
    fields:
      - {name: State, type: "2:BoilerState"}

enumerations:
  - name: ServerState
    id: "ns=0;i=852"
    values:
      - {name: Running, value: 0}
      - {name: Failed, value: 1, description: The server failed.}
  - name: BoilerState
    id: {namespace: 2, string: BoilerState}
    values:
      - {name: Idle, value: 0}
`

func TestDecoder_Decode(t *testing.T) {
	doc, err := NewDecoder().Decode(context.Background(), "server.yaml", []byte(serverTypesYAML))
	require.NoError(t, err)
	require.Len(t, doc.Declarations, 4)

	got := make([]string, len(doc.Declarations))
	for i, d := range doc.Declarations {
		got[i] = d.Name() + " " + d.Identity().String()
	}
	want := []string{
		"BuildInfo ns=0;i=338",
		"Boiler ns=2;i=5001",
		"ServerState ns=0;i=852",
		"BoilerState ns=2;s=BoilerState",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("declarations mismatch (-want +got):\n%s", diff)
	}

	buildInfo := doc.Declarations[0].(*model.StructureDescriptor)
	assert.Equal(t, "Information about the software build.", buildInfo.Description())
	assert.Equal(t, model.FileSource("server.yaml"), buildInfo.Source())
	f, ok := buildInfo.Field("LocaleIds")
	require.True(t, ok)
	assert.True(t, f.Array)
	assert.Equal(t, "LocaleId", f.Type.Name())

	state := doc.Declarations[2].(*model.EnumerationDescriptor)
	assert.Equal(t, []model.EnumValue{
		{Name: "Running", Value: 0},
		{Name: "Failed", Value: 1, Description: "The server failed."},
	}, state.Values())
}

func TestDecoder_Identities(t *testing.T) {
	testCases := []struct {
		name    string
		id      string
		want    string
		wantErr bool
	}{
		{name: "text", id: `"ns=3;i=1"`, want: "ns=3;i=1"},
		{name: "bare number", id: `17`, want: "ns=0;i=17"},
		{name: "guid mapping", id: `{namespace: 1, guid: 72962b91-fa75-4ae6-8d28-b404dc7daf63}`, want: "ns=1;g=72962b91-fa75-4ae6-8d28-b404dc7daf63"},
		{name: "malformed text", id: `"ns=3;q=1"`, wantErr: true},
		{name: "negative number", id: `-4`, wantErr: true},
		{name: "two identifiers", id: `{numeric: 1, string: x}`, wantErr: true},
		{name: "no identifier", id: `{namespace: 1}`, wantErr: true},
		{name: "bad guid", id: `{guid: nope}`, wantErr: true},
		{name: "sequence", id: `[1, 2]`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := "enumerations:\n  - name: Mode\n    id: " + tc.id + "\n    values: [{name: On, value: 1}]\n"
			doc, err := NewDecoder().Decode(context.Background(), "mode.yaml", []byte(src))
			if tc.wantErr {
				require.ErrorIs(t, err, nodeid.ErrMalformedIdentity)
				assert.Contains(t, err.Error(), `mode.yaml:3: enumeration "Mode"`)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, doc.Declarations[0].Identity().String())
		})
	}
}

func TestDecoder_Errors(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		_, err := NewDecoder().Decode(context.Background(), "bad.yaml", []byte("runners: []\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode YAML file bad.yaml")
	})

	t.Run("every bad declaration is reported", func(t *testing.T) {
		src := `
enumerations:
  - name: A
    id: "x"
    values: [{name: On, value: 1}]
structures:
  - name: B
    id: "ns=1;i=1"
    namespace: 2
  - name: C
    id: "ns=1;i=2"
    fields:
      - {name: F}
`
		_, err := NewDecoder().Decode(context.Background(), "bad.yaml", []byte(src))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `enumeration "A"`)
		assert.Contains(t, err.Error(), `structure "B"`)
		assert.Contains(t, err.Error(), `field "F"`)
	})

	t.Run("empty file", func(t *testing.T) {
		doc, err := NewDecoder().Decode(context.Background(), "empty.yml", nil)
		require.NoError(t, err)
		assert.Empty(t, doc.Declarations)
	})
}

func TestEncoder_RoundTrip(t *testing.T) {
	ctx := context.Background()
	doc, err := NewDecoder().Decode(ctx, "server.yaml", []byte(serverTypesYAML))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewEncoder().Encode(ctx, &buf, doc.Declarations))
	assert.Contains(t, buf.String(), `ns=0;i=852`)

	again, err := NewDecoder().Decode(ctx, "dump.yaml", buf.Bytes())
	require.NoError(t, err, buf.String())

	render := func(ds []model.Descriptor) map[string]string {
		out := make(map[string]string)
		for _, d := range ds {
			out[d.Identity().String()] = model.Label(d)
			if s, ok := d.(*model.StructureDescriptor); ok {
				for _, f := range s.Fields() {
					out[d.Identity().String()] += " " + f.Name + ":" + f.Type.Name()
				}
			}
			if e, ok := d.(*model.EnumerationDescriptor); ok {
				for _, v := range e.Values() {
					out[d.Identity().String()] += " " + v.Name
				}
			}
		}
		return out
	}
	if diff := cmp.Diff(render(doc.Declarations), render(again.Declarations)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
