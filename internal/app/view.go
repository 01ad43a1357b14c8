package app

import (
	"github.com/specialistvlad/uaschema/internal/model"
)

// DescriptorView is the JSON rendering of a descriptor.
type DescriptorView struct {
	Kind        string          `json:"kind"`
	Name        string          `json:"name"`
	Identity    string          `json:"identity"`
	Description string          `json:"description,omitempty"`
	Source      string          `json:"source,omitempty"`
	Encoding    string          `json:"encoding,omitempty"`
	Values      []EnumValueView `json:"values,omitempty"`
	Fields      []FieldView     `json:"fields,omitempty"`
}

// EnumValueView is one enumeration value of a DescriptorView.
type EnumValueView struct {
	Name        string `json:"name"`
	Value       int64  `json:"value"`
	Description string `json:"description,omitempty"`
}

// FieldView is one structure field of a DescriptorView. Target is the
// identity the type name resolved to, empty while unresolved.
type FieldView struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Target      string `json:"target,omitempty"`
	Array       bool   `json:"array,omitempty"`
	Description string `json:"description,omitempty"`
}

// Describe renders d for output.
func Describe(d model.Descriptor) DescriptorView {
	v := DescriptorView{
		Kind:        d.Kind().String(),
		Name:        d.Name(),
		Identity:    d.Identity().String(),
		Description: d.Description(),
	}
	if src := d.Source(); src != (model.Source{}) {
		v.Source = src.String()
	}

	switch d := d.(type) {
	case *model.Primitive:
		v.Encoding = d.Encoding().String()
	case *model.EnumerationDescriptor:
		for _, ev := range d.Values() {
			v.Values = append(v.Values, EnumValueView{Name: ev.Name, Value: ev.Value, Description: ev.Description})
		}
	case *model.StructureDescriptor:
		for _, f := range d.Fields() {
			fv := FieldView{Name: f.Name, Type: f.Type.Name(), Array: f.Array, Description: f.Description}
			if target, err := f.Type.Target(); err == nil {
				fv.Target = target.Identity().String()
			}
			v.Fields = append(v.Fields, fv)
		}
	}
	return v
}
