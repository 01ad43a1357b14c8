package hcl_adapter

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

type declView struct {
	Kind        model.Kind
	Name        string
	Identity    string
	Description string
	Values      []model.EnumValue
	Fields      []fieldView
}

func declViews(ds []model.Descriptor) []declView {
	out := make([]declView, 0, len(ds))
	for _, d := range ds {
		v := declView{Kind: d.Kind(), Name: d.Name(), Identity: d.Identity().String(), Description: d.Description()}
		switch d := d.(type) {
		case *model.EnumerationDescriptor:
			v.Values = d.Values()
		case *model.StructureDescriptor:
			v.Fields = fieldViews(d)
		}
		out = append(out, v)
	}
	return out
}

func TestEncoder_RoundTrip(t *testing.T) {
	ctx := context.Background()
	descriptors := []model.Descriptor{
		model.NewEnumeration(nodeid.Numeric(0, 852), "ServerState", []model.EnumValue{
			{Name: "Running", Value: 0},
			{Name: "Failed", Value: 1},
		}, model.WithEnumDescription("The current state of a server.")),
		model.NewEnumeration(nodeid.String(2, "Mode"), "Mode", []model.EnumValue{
			{Name: "Off", Value: -1, Description: "Switched off."},
			{Name: "On", Value: 1},
		}),
		model.NewStructure(nodeid.Numeric(0, 338), "BuildInfo", []model.FieldDescriptor{
			model.Field("ProductUri", "String"),
			model.ArrayField("LocaleIds", "LocaleId"),
			{Name: "Mode", Type: model.Ref("2:Mode"), Description: "Operating mode."},
		}),
	}
	double, ok := model.LookupPrimitive("Double")
	require.True(t, ok)
	descriptors = append(descriptors, double)

	var buf bytes.Buffer
	require.NoError(t, NewEncoder().Encode(ctx, &buf, descriptors))
	out := buf.String()
	assert.Contains(t, out, `enumeration "ServerState"`)
	assert.Contains(t, out, `"ns=0;i=852"`)
	assert.Contains(t, out, `value "Off"`)
	assert.NotContains(t, out, `"Double"`)

	doc, err := NewDecoder().Decode(ctx, "dump.hcl", buf.Bytes())
	require.NoError(t, err, out)

	if diff := cmp.Diff(declViews(descriptors[:3]), declViews(doc.Declarations)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncoder_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewEncoder().Encode(context.Background(), &buf, nil))
	assert.Empty(t, buf.String())
}
