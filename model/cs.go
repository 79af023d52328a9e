package model

// CoordinateSystemAxisBaseType is an axis definition named by name.
type CoordinateSystemAxisBaseType struct {
	DefinitionType
}

// CoordinateSystemAxisType is one axis of a coordinate system.
type CoordinateSystemAxisType struct {
	CoordinateSystemAxisBaseType
	AxisID        []IdentifierType `xml:"axisID"`
	Remarks       *StringOrRefType `xml:"remarks"`
	AxisAbbrev    CodeType         `xml:"axisAbbrev" gml:"occurs=1..1"`
	AxisDirection CodeType         `xml:"axisDirection" gml:"occurs=1..1"`
	UOM           string           `xml:"http://www.opengis.net/gml uom,attr" gml:"occurs=1..1"`
}

// AbstractCoordinateSystemBaseType is a coordinate system definition
// named by csName.
type AbstractCoordinateSystemBaseType struct {
	DefinitionType
	CSName CodeType `xml:"csName" gml:"occurs=1..1"`
}

// AbstractCoordinateSystemType is the base of coordinate systems: a set
// of axes.
type AbstractCoordinateSystemType struct {
	AbstractCoordinateSystemBaseType
	CSID     []IdentifierType                      `xml:"csID"`
	Remarks  *StringOrRefType                      `xml:"remarks"`
	UsesAxis []Property[*CoordinateSystemAxisType] `xml:"usesAxis" gml:"occurs=1..*"`
}

func (c *AbstractCoordinateSystemType) AbstractCoordinateSystem() *AbstractCoordinateSystemType {
	return c
}

// Concrete coordinate systems, each restricting the number of axes.
type (
	EllipsoidalCSType      struct{ AbstractCoordinateSystemType }
	CartesianCSType        struct{ AbstractCoordinateSystemType }
	VerticalCSType         struct{ AbstractCoordinateSystemType }
	TemporalCSType         struct{ AbstractCoordinateSystemType }
	LinearCSType           struct{ AbstractCoordinateSystemType }
	UserDefinedCSType      struct{ AbstractCoordinateSystemType }
	SphericalCSType        struct{ AbstractCoordinateSystemType }
	PolarCSType            struct{ AbstractCoordinateSystemType }
	CylindricalCSType      struct{ AbstractCoordinateSystemType }
	ObliqueCartesianCSType struct{ AbstractCoordinateSystemType }
)

// AxisCount returns the number of axes allowed.
func (*EllipsoidalCSType) AxisCount() Occurs      { return Occurs{2, 3} }
func (*CartesianCSType) AxisCount() Occurs        { return Occurs{1, 3} }
func (*VerticalCSType) AxisCount() Occurs         { return Occurs{1, 1} }
func (*TemporalCSType) AxisCount() Occurs         { return Occurs{1, 1} }
func (*LinearCSType) AxisCount() Occurs           { return Occurs{1, 1} }
func (*UserDefinedCSType) AxisCount() Occurs      { return Occurs{1, Unbounded} }
func (*SphericalCSType) AxisCount() Occurs        { return Occurs{3, 3} }
func (*PolarCSType) AxisCount() Occurs            { return Occurs{2, 2} }
func (*CylindricalCSType) AxisCount() Occurs      { return Occurs{3, 3} }
func (*ObliqueCartesianCSType) AxisCount() Occurs { return Occurs{1, 3} }

// Coordinate system properties.
type (
	CoordinateSystemAxisRefType = Property[*CoordinateSystemAxisType]
	CoordinateSystemRefType     = Property[CoordinateSystem]
	EllipsoidalCSRefType        = Property[*EllipsoidalCSType]
	CartesianCSRefType          = Property[*CartesianCSType]
	VerticalCSRefType           = Property[*VerticalCSType]
	TemporalCSRefType           = Property[*TemporalCSType]
	LinearCSRefType             = Property[*LinearCSType]
	UserDefinedCSRefType        = Property[*UserDefinedCSType]
	SphericalCSRefType          = Property[*SphericalCSType]
	PolarCSRefType              = Property[*PolarCSType]
	CylindricalCSRefType        = Property[*CylindricalCSType]
	ObliqueCartesianCSRefType   = Property[*ObliqueCartesianCSType]
)
