package config

import "github.com/specialistvlad/uaschema/internal/model"

// Document is the decoded content of one declaration file.
type Document struct {
	// Path is the file the document was decoded from.
	Path string
	// Declarations holds enumerations and structures in source order.
	Declarations []model.Descriptor
}

// Counts returns the number of enumerations and structures in the document.
func (d *Document) Counts() (enumerations, structures int) {
	for _, decl := range d.Declarations {
		switch decl.Kind() {
		case model.KindEnumeration:
			enumerations++
		case model.KindStructure:
			structures++
		}
	}
	return enumerations, structures
}
