// Package dataaccess registers the namespace-0 data access types: ranges,
// engineering units and axis information.
package dataaccess

import (
	"github.com/specialistvlad/uaschema/internal/model"
	"github.com/specialistvlad/uaschema/internal/registry"
	"github.com/specialistvlad/uaschema/modules/declare"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Name implements registry.Module.
func (m *Module) Name() string { return "dataaccess" }

// Register registers the declarations with the registry.
func (m *Module) Register(r *registry.Registry) error {
	d := declare.New(r, m.Name())

	d.Struct(12079, "AxisInformation", "Defines physical dimensions of an axis.",
		model.Field("EngineeringUnits", "EUInformation"),
		model.Field("EURange", "Range"),
		model.Field("Title", "LocalizedText"),
		model.Field("AxisScaleType", "AxisScaleEnumeration"),
		model.ArrayField("AxisSteps", "Double"),
	)
	d.Struct(884, "Range", "Defines the range for a value.",
		model.Field("Low", "Double"),
		model.Field("High", "Double"),
	)
	d.Struct(887, "EUInformation", "Contains information about the engineering units of a value.",
		model.Field("NamespaceUri", "String"),
		model.Field("UnitId", "Int32"),
		model.Field("DisplayName", "LocalizedText"),
		model.Field("Description", "LocalizedText"),
	)
	d.Enum(12077, "AxisScaleEnumeration", "Identifies on which type of axis the data shall be displayed.",
		declare.V("Linear", 0),
		declare.V("Log", 1),
		declare.V("Ln", 2),
	)
	d.Enum(890, "ExceptionDeviationFormat", "",
		declare.V("AbsoluteValue", 0),
		declare.V("PercentOfValue", 1),
		declare.V("PercentOfRange", 2),
		declare.V("PercentOfEURange", 3),
		declare.V("Unknown", 4),
	)
	d.Struct(12080, "XVType", "",
		model.Field("X", "Double"),
		model.Field("Value", "Float"),
	)
	d.Struct(12171, "ComplexNumberType", "",
		model.Field("Real", "Float"),
		model.Field("Imaginary", "Float"),
	)
	d.Struct(12172, "DoubleComplexNumberType", "",
		model.Field("Real", "Double"),
		model.Field("Imaginary", "Double"),
	)

	return d.Err()
}
