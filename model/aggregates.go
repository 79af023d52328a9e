package model

// AbstractGeometricAggregateType is the base of geometry collections.
type AbstractGeometricAggregateType struct {
	AbstractGeometryType
}

func (a *AbstractGeometricAggregateType) AbstractGeometricAggregate() *AbstractGeometricAggregateType {
	return a
}

// MultiGeometryType is a collection of arbitrary geometries.
type MultiGeometryType struct {
	AbstractGeometricAggregateType
	GeometryMember  []Property[Geometry]     `xml:"geometryMember"`
	GeometryMembers *ArrayProperty[Geometry] `xml:"geometryMembers"`
}

// MultiPointType is a collection of points.
type MultiPointType struct {
	AbstractGeometricAggregateType
	PointMember  []Property[*PointType]     `xml:"pointMember"`
	PointMembers *ArrayProperty[*PointType] `xml:"pointMembers"`
}

// MultiCurveType is a collection of curves.
type MultiCurveType struct {
	AbstractGeometricAggregateType
	CurveMember  []Property[Curve]     `xml:"curveMember"`
	CurveMembers *ArrayProperty[Curve] `xml:"curveMembers"`
}

// MultiSurfaceType is a collection of surfaces.
type MultiSurfaceType struct {
	AbstractGeometricAggregateType
	SurfaceMember  []Property[Surface]     `xml:"surfaceMember"`
	SurfaceMembers *ArrayProperty[Surface] `xml:"surfaceMembers"`
}

// MultiSolidType is a collection of solids.
type MultiSolidType struct {
	AbstractGeometricAggregateType
	SolidMember  []Property[Solid]     `xml:"solidMember"`
	SolidMembers *ArrayProperty[Solid] `xml:"solidMembers"`
}

// MultiLineStringType is a collection of line strings. Deprecated: use
// MultiCurveType.
type MultiLineStringType struct {
	AbstractGeometricAggregateType
	LineStringMember []Property[*LineStringType] `xml:"lineStringMember"`
}

// MultiPolygonType is a collection of polygons. Deprecated: use
// MultiSurfaceType.
type MultiPolygonType struct {
	AbstractGeometricAggregateType
	PolygonMember []Property[*PolygonType] `xml:"polygonMember"`
}

// CompositeCurveType is a curve made of connected curves.
type CompositeCurveType struct {
	AbstractCurveType
	CurveMember []Property[Curve] `xml:"curveMember" gml:"occurs=1..*"`
}

// CompositeSurfaceType is a surface made of connected surfaces.
type CompositeSurfaceType struct {
	AbstractSurfaceType
	SurfaceMember []Property[Surface] `xml:"surfaceMember" gml:"occurs=1..*"`
}

// CompositeSolidType is a solid made of connected solids.
type CompositeSolidType struct {
	AbstractSolidType
	SolidMember []Property[Solid] `xml:"solidMember" gml:"occurs=1..*"`
}

// GeometricComplexType is a set of disjoint primitives.
type GeometricComplexType struct {
	AbstractGeometryType
	Element []Property[GeometricPrimitive] `xml:"element" gml:"occurs=1..*"`
}

// Aggregate and complex properties.
type (
	MultiGeometryPropertyType    = Property[GeometricAggregate]
	MultiPointPropertyType       = Property[*MultiPointType]
	MultiCurvePropertyType       = Property[*MultiCurveType]
	MultiSurfacePropertyType     = Property[*MultiSurfaceType]
	MultiSolidPropertyType       = Property[*MultiSolidType]
	MultiLineStringPropertyType  = Property[*MultiLineStringType]
	MultiPolygonPropertyType     = Property[*MultiPolygonType]
	CompositeCurvePropertyType   = Property[*CompositeCurveType]
	CompositeSurfacePropertyType = Property[*CompositeSurfaceType]
	CompositeSolidPropertyType   = Property[*CompositeSolidType]
	GeometricComplexPropertyType = Property[Geometry]
)

// GridType is an unrectified grid.
type GridType struct {
	AbstractGeometryType
	Limits    GridLimitsType `xml:"limits" gml:"occurs=1..1"`
	AxisName  []string       `xml:"axisName" gml:"occurs=1..*"`
	Dimension int            `xml:"dimension,attr" gml:"occurs=1..1"`
}

func (g *GridType) Grid() *GridType { return g }

// GridLimitsType contains the extent of a grid.
type GridLimitsType struct {
	GridEnvelope GridEnvelopeType `xml:"GridEnvelope" gml:"occurs=1..1"`
}

// GridEnvelopeType is a grid extent in integer cell coordinates.
type GridEnvelopeType struct {
	Low  IntegerList `xml:"low,omitempty" gml:"occurs=1..1"`
	High IntegerList `xml:"high,omitempty" gml:"occurs=1..1"`
}

// IsValid reports whether low and high have the same number of
// coordinates and low does not exceed high
func (e *GridEnvelopeType) IsValid() bool {
	if len(e.Low) != len(e.High) {
		return false
	}
	for i := range e.Low {
		if e.Low[i] > e.High[i] {
			return false
		}
	}
	return true
}

// RectifiedGridType is a grid with an origin and offset vectors in an
// external coordinate system.
type RectifiedGridType struct {
	GridType
	Origin       Property[*PointType] `xml:"origin" gml:"occurs=1..1"`
	OffsetVector []VectorType         `xml:"offsetVector" gml:"occurs=1..*"`
}
