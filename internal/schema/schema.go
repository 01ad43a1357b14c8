// Package schema holds the gohcl block structures of an HCL declaration file.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// DeclarationFile represents the top-level structure of a declaration file.
// Any other top-level block or attribute is an error.
type DeclarationFile struct {
	Enumerations []*Enumeration `hcl:"enumeration,block"`
	Structures   []*Structure   `hcl:"structure,block"`
}

// Enumeration represents an `enumeration` block.
//
// Values are written either compactly in a `values` block, one attribute per
// symbolic name, or one `value` block each when they carry a description.
// Both forms may be mixed; source order decides the value order.
type Enumeration struct {
	Name        string         `hcl:"name,label"`
	ID          hcl.Expression `hcl:"id"`
	Namespace   hcl.Expression `hcl:"namespace,optional"`
	Description string         `hcl:"description,optional"`
	Values      []*ValuesBlock `hcl:"values,block"`
	Value       []*Value       `hcl:"value,block"`
}

// ValuesBlock represents the `values` block of an enumeration.
type ValuesBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// Value represents a `value` block of an enumeration.
type Value struct {
	Name        string         `hcl:"name,label"`
	Value       hcl.Expression `hcl:"value"`
	Description string         `hcl:"description,optional"`
}

// Structure represents a `structure` block.
type Structure struct {
	Name        string         `hcl:"name,label"`
	ID          hcl.Expression `hcl:"id"`
	Namespace   hcl.Expression `hcl:"namespace,optional"`
	Description string         `hcl:"description,optional"`
	Fields      []*Field       `hcl:"field,block"`
}

// Field represents a `field` block of a structure. Type is a type name,
// written as a string or a bare keyword, optionally qualified with a
// namespace as `"<ns>:<Name>"`.
type Field struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	Array       bool           `hcl:"array,optional"`
	Description string         `hcl:"description,optional"`
}
