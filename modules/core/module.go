// Package core registers the basic namespace-0 data types: server status,
// build and application information, and method arguments.
package core

import (
	"github.com/specialistvlad/uaschema/internal/model"
	"github.com/specialistvlad/uaschema/internal/registry"
	"github.com/specialistvlad/uaschema/modules/declare"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Name implements registry.Module.
func (m *Module) Name() string { return "core" }

// Register registers the declarations with the registry. Structures come
// before the types they reference; resolution happens at finalization.
func (m *Module) Register(r *registry.Registry) error {
	d := declare.New(r, m.Name())

	d.Struct(862, "ServerStatusDataType", "Contains elements that describe the status of the Server.",
		model.Field("StartTime", "UtcTime"),
		model.Field("CurrentTime", "UtcTime"),
		model.Field("State", "ServerState"),
		model.Field("BuildInfo", "BuildInfo"),
		model.Field("SecondsTillShutdown", "UInt32"),
		model.Field("ShutdownReason", "LocalizedText"),
	)
	d.Struct(853, "RedundantServerDataType", "",
		model.Field("ServerId", "String"),
		model.Field("ServiceLevel", "Byte"),
		model.Field("ServerState", "ServerState"),
	)
	d.Struct(308, "ApplicationDescription", "Describes an application and how to find it.",
		model.Field("ApplicationUri", "String"),
		model.Field("ProductUri", "String"),
		model.Field("ApplicationName", "LocalizedText"),
		model.Field("ApplicationType", "ApplicationType"),
		model.Field("GatewayServerUri", "String"),
		model.Field("DiscoveryProfileUri", "String"),
		model.ArrayField("DiscoveryUrls", "String"),
	)

	d.Enum(852, "ServerState", "The current state of a server.",
		declare.V("Running", 0),
		declare.V("Failed", 1),
		declare.V("NoConfiguration", 2),
		declare.V("Suspended", 3),
		declare.V("Shutdown", 4),
		declare.V("Test", 5),
		declare.V("CommunicationFault", 6),
		declare.V("Unknown", 7),
	)
	d.Struct(338, "BuildInfo", "Information about the software build.",
		model.Field("ProductUri", "String"),
		model.Field("ManufacturerName", "String"),
		model.Field("ProductName", "String"),
		model.Field("SoftwareVersion", "String"),
		model.Field("BuildNumber", "String"),
		model.Field("BuildDate", "UtcTime"),
	)
	d.Enum(851, "RedundancySupport", "",
		declare.V("None", 0),
		declare.V("Cold", 1),
		declare.V("Warm", 2),
		declare.V("Hot", 3),
		declare.V("Transparent", 4),
		declare.V("HotAndMirrored", 5),
	)
	d.Enum(307, "ApplicationType", "The types of applications.",
		declare.V("Server", 0),
		declare.V("Client", 1),
		declare.V("ClientAndServer", 2),
		declare.V("DiscoveryServer", 3),
	)
	d.Enum(257, "NodeClass", "A mask specifying the class of the node.",
		declare.V("Unspecified", 0),
		declare.V("Object", 1),
		declare.V("Variable", 2),
		declare.V("Method", 4),
		declare.V("ObjectType", 8),
		declare.V("VariableType", 16),
		declare.V("ReferenceType", 32),
		declare.V("DataType", 64),
		declare.V("View", 128),
	)
	d.Struct(296, "Argument", "An argument for a method.",
		model.Field("Name", "String"),
		model.Field("DataType", "NodeId"),
		model.Field("ValueRank", "Int32"),
		model.ArrayField("ArrayDimensions", "UInt32"),
		model.Field("Description", "LocalizedText"),
	)
	d.Struct(7594, "EnumValueType", "A mapping between a value of an enumerated type and a name and description.",
		model.Field("Value", "Int64"),
		model.Field("DisplayName", "LocalizedText"),
		model.Field("Description", "LocalizedText"),
	)
	d.Struct(8912, "TimeZoneDataType", "",
		model.Field("Offset", "Int16"),
		model.Field("DaylightSavingInOffset", "Boolean"),
	)

	return d.Err()
}
