// Package model is a typed data model of the OGC GML 3.1.1 schema.
//
// Every XML Schema complex type FooType is a struct FooType. Schema type
// derivation is struct embedding, base type first, so that base content
// precedes derived content when encoded. Each field is tagged with its
// element or attribute name, and its cardinality where the default (0..1
// for singular fields, 0..* for slices) does not apply:
//
//	DirectedNode []DirectedNodePropertyType `xml:"directedNode" gml:"occurs=2..2"`
//
// Alternatives of an XML Schema choice share a gml:"choice=group" tag.
// The model does not enforce cardinality, choices, enumerations or any
// other constraint; see package schema.
//
// Substitution groups
//
// Each abstract element (_Geometry, _Curve, _Feature, _CRS, ...) is an
// interface satisfied by every type whose elements may substitute for
// it. Properties whose value is a substitution group member are
// Property[T], ArrayProperty[T], DirectedProperty[T] or Inline[T] with T
// the group interface; their members are decoded through the element
// registry (New, ElementName, Register). Members of unregistered
// elements in a _Feature slot decode to *GenericFeature.
//
// Interleaved alternatives whose document order matters, such as the
// pos, pointProperty, pointRep and coord control points of a LineString,
// are held in a slice of a tagged union (Points) with typed views
// (Points.Pos, Points.PointProperties, ...).
//
// Optional attributes with defaults
//
// Attr[T] distinguishes an absent attribute from one explicitly set to
// its default value. Types expose the effective value through FooValue
// methods returning the schema default when the attribute is unset:
//
//	edge.DirectedNode[0].OrientationValue() // "+" unless set
//
// Traversal
//
// Walk visits every contained value of a tree in document order. Values
// referred to by xlink:href are not followed; package resolve indexes
// them.
package model
