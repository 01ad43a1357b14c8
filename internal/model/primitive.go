// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the fixed table of built-in primitive types. It is the
// first tier a field type name is resolved against during finalization.
//
// Every primitive has a namespace-0 identity and names the built-in encoding
// a codec uses for it. Aliases such as Duration or UtcTime are primitives of
// their own with a different identity, but they share the encoding of the
// type they alias (Double and DateTime respectively).
package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/uaschema/internal/nodeid"
)

// BuiltinType is one of the 25 wire-level encodings.
type BuiltinType uint8

const (
	BuiltinBoolean BuiltinType = iota + 1
	BuiltinSByte
	BuiltinByte
	BuiltinInt16
	BuiltinUInt16
	BuiltinInt32
	BuiltinUInt32
	BuiltinInt64
	BuiltinUInt64
	BuiltinFloat
	BuiltinDouble
	BuiltinString
	BuiltinDateTime
	BuiltinGUID
	BuiltinByteString
	BuiltinXMLElement
	BuiltinNodeID
	BuiltinExpandedNodeID
	BuiltinStatusCode
	BuiltinQualifiedName
	BuiltinLocalizedText
	BuiltinExtensionObject
	BuiltinDataValue
	BuiltinVariant
	BuiltinDiagnosticInfo
)

var builtinNames = [...]string{
	BuiltinBoolean:         "Boolean",
	BuiltinSByte:           "SByte",
	BuiltinByte:            "Byte",
	BuiltinInt16:           "Int16",
	BuiltinUInt16:          "UInt16",
	BuiltinInt32:           "Int32",
	BuiltinUInt32:          "UInt32",
	BuiltinInt64:           "Int64",
	BuiltinUInt64:          "UInt64",
	BuiltinFloat:           "Float",
	BuiltinDouble:          "Double",
	BuiltinString:          "String",
	BuiltinDateTime:        "DateTime",
	BuiltinGUID:            "Guid",
	BuiltinByteString:      "ByteString",
	BuiltinXMLElement:      "XmlElement",
	BuiltinNodeID:          "NodeId",
	BuiltinExpandedNodeID:  "ExpandedNodeId",
	BuiltinStatusCode:      "StatusCode",
	BuiltinQualifiedName:   "QualifiedName",
	BuiltinLocalizedText:   "LocalizedText",
	BuiltinExtensionObject: "ExtensionObject",
	BuiltinDataValue:       "DataValue",
	BuiltinVariant:         "Variant",
	BuiltinDiagnosticInfo:  "DiagnosticInfo",
}

func (b BuiltinType) String() string {
	if int(b) < len(builtinNames) && builtinNames[b] != "" {
		return builtinNames[b]
	}
	return fmt.Sprintf("BuiltinType(%d)", uint8(b))
}

// Primitive is a built-in type a field may reference without registration.
type Primitive struct {
	name     string
	id       nodeid.ID
	encoding BuiltinType
	abstract bool
}

func (p *Primitive) Kind() Kind          { return KindPrimitive }
func (p *Primitive) Name() string        { return p.name }
func (p *Primitive) Identity() nodeid.ID { return p.id }
func (p *Primitive) Namespace() uint16   { return p.id.Namespace() }
func (p *Primitive) Description() string { return "" }
func (p *Primitive) Source() Source      { return Source{} }

// Encoding returns the built-in type a codec uses on the wire.
func (p *Primitive) Encoding() BuiltinType { return p.encoding }

// Abstract reports whether values are encoded as a Variant because the
// concrete type is only known at runtime (Number, BaseDataType, ...).
func (p *Primitive) Abstract() bool { return p.abstract }

func primitive(name string, id uint32, enc BuiltinType) *Primitive {
	return &Primitive{name: name, id: nodeid.Numeric(0, id), encoding: enc}
}

func abstractPrimitive(name string, id uint32) *Primitive {
	return &Primitive{name: name, id: nodeid.Numeric(0, id), encoding: BuiltinVariant, abstract: true}
}

var primitives = []*Primitive{
	primitive("Boolean", 1, BuiltinBoolean),
	primitive("SByte", 2, BuiltinSByte),
	primitive("Byte", 3, BuiltinByte),
	primitive("Int16", 4, BuiltinInt16),
	primitive("UInt16", 5, BuiltinUInt16),
	primitive("Int32", 6, BuiltinInt32),
	primitive("UInt32", 7, BuiltinUInt32),
	primitive("Int64", 8, BuiltinInt64),
	primitive("UInt64", 9, BuiltinUInt64),
	primitive("Float", 10, BuiltinFloat),
	primitive("Double", 11, BuiltinDouble),
	primitive("String", 12, BuiltinString),
	primitive("DateTime", 13, BuiltinDateTime),
	primitive("Guid", 14, BuiltinGUID),
	primitive("ByteString", 15, BuiltinByteString),
	primitive("XmlElement", 16, BuiltinXMLElement),
	primitive("NodeId", 17, BuiltinNodeID),
	primitive("ExpandedNodeId", 18, BuiltinExpandedNodeID),
	primitive("StatusCode", 19, BuiltinStatusCode),
	primitive("QualifiedName", 20, BuiltinQualifiedName),
	primitive("LocalizedText", 21, BuiltinLocalizedText),
	primitive("Structure", 22, BuiltinExtensionObject),
	primitive("DataValue", 23, BuiltinDataValue),
	abstractPrimitive("BaseDataType", 24),
	primitive("DiagnosticInfo", 25, BuiltinDiagnosticInfo),
	abstractPrimitive("Number", 26),
	abstractPrimitive("Integer", 27),
	abstractPrimitive("UInteger", 28),
	primitive("Enumeration", 29, BuiltinInt32),
	primitive("Image", 30, BuiltinByteString),

	primitive("IntegerId", 288, BuiltinUInt32),
	primitive("Counter", 289, BuiltinUInt32),
	primitive("Duration", 290, BuiltinDouble),
	primitive("NumericRange", 291, BuiltinString),
	primitive("Time", 292, BuiltinString),
	primitive("Date", 293, BuiltinDateTime),
	primitive("UtcTime", 294, BuiltinDateTime),
	primitive("LocaleId", 295, BuiltinString),
	primitive("ApplicationInstanceCertificate", 311, BuiltinByteString),
	primitive("SessionAuthenticationToken", 388, BuiltinNodeID),
	primitive("ContinuationPoint", 521, BuiltinByteString),
	primitive("ImageBMP", 2000, BuiltinByteString),
	primitive("ImageGIF", 2001, BuiltinByteString),
	primitive("ImageJPG", 2002, BuiltinByteString),
	primitive("ImagePNG", 2003, BuiltinByteString),
	primitive("NormalizedString", 12877, BuiltinString),
	primitive("DecimalString", 12878, BuiltinString),
	primitive("DurationString", 12879, BuiltinString),
	primitive("TimeString", 12880, BuiltinString),
	primitive("DateString", 12881, BuiltinString),
	primitive("Index", 17588, BuiltinUInt32),
	primitive("VersionTime", 20998, BuiltinUInt32),
	primitive("UriString", 23751, BuiltinString),
}

// primitiveAliases are extra spellings found in declarations that name the
// wire encoding instead of the data type.
var primitiveAliases = map[string]string{
	"ExtensionObject": "Structure",
	"Variant":         "BaseDataType",
}

var primitivesByName = func() map[string]*Primitive {
	m := make(map[string]*Primitive, len(primitives)+len(primitiveAliases))
	for _, p := range primitives {
		m[p.name] = p
	}
	for alias, target := range primitiveAliases {
		m[alias] = m[target]
	}
	return m
}()

// LookupPrimitive returns the primitive with the given name or alias.
// Names are case-sensitive.
func LookupPrimitive(name string) (*Primitive, bool) {
	p, ok := primitivesByName[name]
	return p, ok
}

// Primitives returns the primitive table in identity order.
func Primitives() []*Primitive {
	return slices.Clone(primitives)
}

// PrimitiveNames returns every name LookupPrimitive accepts, sorted.
func PrimitiveNames() []string {
	names := make([]string, 0, len(primitivesByName))
	for name := range primitivesByName {
		names = append(names, name)
	}
	slices.SortFunc(names, strings.Compare)
	return names
}
