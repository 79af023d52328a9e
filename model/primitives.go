package model

// CurveType is a curve composed of curve segments.
type CurveType struct {
	AbstractCurveType
	Segments ArrayProperty[CurveSegment] `xml:"segments" gml:"occurs=1..1"`
}

// OrientableCurveType is a curve with an orientation relative to its base
// curve.
type OrientableCurveType struct {
	AbstractCurveType
	BaseCurve   Property[Curve] `xml:"baseCurve" gml:"occurs=1..1"`
	Orientation Attr[SignType]  `xml:"orientation,attr"`
}

// OrientationValue returns the orientation, "+" when unset
func (c *OrientableCurveType) OrientationValue() SignType { return c.Orientation.Get(SignPositive) }

// AbstractCurveSegmentType is the base of curve segments.
type AbstractCurveSegmentType struct {
	NumDerivativesAtStart Attr[int] `xml:"numDerivativesAtStart,attr"`
	NumDerivativesAtEnd   Attr[int] `xml:"numDerivativesAtEnd,attr"`
	NumDerivativeInterior Attr[int] `xml:"numDerivativeInterior,attr"`
}

func (s *AbstractCurveSegmentType) AbstractCurveSegment() *AbstractCurveSegmentType { return s }

func (s *AbstractCurveSegmentType) NumDerivativesAtStartValue() int { return s.NumDerivativesAtStart.Get(0) }
func (s *AbstractCurveSegmentType) NumDerivativesAtEndValue() int   { return s.NumDerivativesAtEnd.Get(0) }
func (s *AbstractCurveSegmentType) NumDerivativeInteriorValue() int { return s.NumDerivativeInterior.Get(0) }

// LineStringSegmentType is a linearly interpolated segment.
type LineStringSegmentType struct {
	AbstractCurveSegmentType
	ControlPoints
	Interpolation Attr[CurveInterpolationType] `xml:"interpolation,attr"`
}

func (s *LineStringSegmentType) InterpolationValue() CurveInterpolationType {
	return s.Interpolation.Get(CurveLinear)
}

// ArcStringType is a sequence of arcs, each through three points.
type ArcStringType struct {
	AbstractCurveSegmentType
	ControlPoints
	Interpolation Attr[CurveInterpolationType] `xml:"interpolation,attr"`
	NumArc        Attr[int]                    `xml:"numArc,attr"`
}

func (s *ArcStringType) InterpolationValue() CurveInterpolationType {
	return s.Interpolation.Get(CurveCircularArc3Points)
}

// NumArcValue returns the number of arcs, derived from the positions
// when numArc is unset
func (s *ArcStringType) NumArcValue() int {
	if n := s.PositionCount(2); !s.NumArc.IsSet() && n >= 3 {
		return (n - 1) / 2
	}
	return s.NumArc.Get(1)
}

// ArcType is a single arc through three points.
type ArcType struct {
	ArcStringType
}

var singleArc = map[string]Restriction{"numArc": {Fixed: "1"}}

func (ArcType) restrictions() map[string]Restriction { return singleArc }

// CircleType is an arc closing on its start point.
type CircleType struct {
	ArcType
}

// ArcStringByBulgeType is a sequence of arcs given by end points and bulges.
type ArcStringByBulgeType struct {
	AbstractCurveSegmentType
	ControlPoints
	Bulge         []float64                    `xml:"bulge" gml:"occurs=1..*"`
	Normal        []VectorType                 `xml:"normal" gml:"occurs=1..*"`
	Interpolation Attr[CurveInterpolationType] `xml:"interpolation,attr"`
	NumArc        Attr[int]                    `xml:"numArc,attr"`
}

func (s *ArcStringByBulgeType) InterpolationValue() CurveInterpolationType {
	return s.Interpolation.Get(CurveCircularArc2PointWithBulge)
}

// ArcByBulgeType is a single arc given by end points and a bulge.
type ArcByBulgeType struct {
	ArcStringByBulgeType
}

var singleBulge = map[string]Restriction{
	"bulge":  {Occurs: Occurs{Min: 1, Max: 1}},
	"normal": {Occurs: Occurs{Min: 1, Max: 1}},
	"numArc": {Fixed: "1"},
}

func (ArcByBulgeType) restrictions() map[string]Restriction { return singleBulge }

// ArcByCenterPointType is an arc given by center point, radius and
// bearings.
type ArcByCenterPointType struct {
	AbstractCurveSegmentType
	ControlPoints
	Radius        LengthType                   `xml:"radius" gml:"occurs=1..1"`
	StartAngle    *AngleType                   `xml:"startAngle"`
	EndAngle      *AngleType                   `xml:"endAngle"`
	Interpolation Attr[CurveInterpolationType] `xml:"interpolation,attr"`
	NumArc        Attr[int]                    `xml:"numArc,attr" gml:"occurs=1..1,fixed=1"`
}

func (s *ArcByCenterPointType) InterpolationValue() CurveInterpolationType {
	return s.Interpolation.Get(CurveCircularArcCenterPointWithRadius)
}

// CircleByCenterPointType is a full circle given by center point and
// radius.
type CircleByCenterPointType struct {
	ArcByCenterPointType
}

// CubicSplineType is a cubic spline with given end tangents.
type CubicSplineType struct {
	AbstractCurveSegmentType
	ControlPoints
	VectorAtStart VectorType                   `xml:"vectorAtStart" gml:"occurs=1..1"`
	VectorAtEnd   VectorType                   `xml:"vectorAtEnd" gml:"occurs=1..1"`
	Interpolation Attr[CurveInterpolationType] `xml:"interpolation,attr"`
	Degree        Attr[int]                    `xml:"degree,attr" gml:"fixed=3"`
}

func (s *CubicSplineType) InterpolationValue() CurveInterpolationType {
	return s.Interpolation.Get(CurveCubicSpline)
}

// DegreeValue returns degree, which is fixed at 3
func (s *CubicSplineType) DegreeValue() int { return s.Degree.Get(3) }

// KnotType is a knot of a B-spline.
type KnotType struct {
	Value        float64 `xml:"value" gml:"occurs=1..1"`
	Multiplicity int     `xml:"multiplicity" gml:"occurs=1..1"`
	Weight       float64 `xml:"weight" gml:"occurs=1..1"`
}

// KnotPropertyType contains a knot.
type KnotPropertyType struct {
	Knot KnotType `xml:"Knot" gml:"occurs=1..1"`
}

// BSplineType is a piecewise polynomial or rational spline.
type BSplineType struct {
	AbstractCurveSegmentType
	ControlPoints
	Degree        int                          `xml:"degree" gml:"occurs=1..1"`
	Knot          []KnotPropertyType           `xml:"knot" gml:"occurs=2..*"`
	Interpolation Attr[CurveInterpolationType] `xml:"interpolation,attr"`
	IsPolynomial  Attr[bool]                   `xml:"isPolynomial,attr"`
	KnotType      Attr[KnotTypesType]          `xml:"knotType,attr"`
}

func (s *BSplineType) InterpolationValue() CurveInterpolationType {
	return s.Interpolation.Get(CurvePolynomialSpline)
}

// BezierType is a polynomial spline with a single knot pair.
type BezierType struct {
	BSplineType
}

var bezierKnots = map[string]Restriction{"knot": {Occurs: Occurs{Min: 2, Max: 2}}}

func (BezierType) restrictions() map[string]Restriction { return bezierKnots }

// GeodesicStringType is a sequence of geodesic segments.
type GeodesicStringType struct {
	AbstractCurveSegmentType
	ControlPoints
	Interpolation Attr[CurveInterpolationType] `xml:"interpolation,attr"`
}

func (s *GeodesicStringType) InterpolationValue() CurveInterpolationType {
	return s.Interpolation.Get(CurveGeodesic)
}

// GeodesicType is a single geodesic segment.
type GeodesicType struct {
	GeodesicStringType
}

// OffsetCurveType is a curve at a constant distance from a base curve.
type OffsetCurveType struct {
	AbstractCurveSegmentType
	OffsetBase   Property[Curve] `xml:"offsetBase" gml:"occurs=1..1"`
	Distance     LengthType      `xml:"distance" gml:"occurs=1..1"`
	RefDirection *VectorType     `xml:"refDirection"`
}

// AffinePlacementType places a local coordinate system in a target one.
type AffinePlacementType struct {
	Location     DirectPositionType `xml:"location" gml:"occurs=1..1"`
	RefDirection []VectorType       `xml:"refDirection" gml:"occurs=1..*"`
	InDimension  int                `xml:"inDimension" gml:"occurs=1..1"`
	OutDimension int                `xml:"outDimension" gml:"occurs=1..1"`
}

// RefLocationType contains the placement of a clothoid.
type RefLocationType struct {
	AffinePlacement AffinePlacementType `xml:"AffinePlacement" gml:"occurs=1..1"`
}

// ClothoidType is a spiral whose curvature changes linearly with length.
type ClothoidType struct {
	AbstractCurveSegmentType
	RefLocation    RefLocationType `xml:"refLocation" gml:"occurs=1..1"`
	ScaleFactor    float64         `xml:"scaleFactor" gml:"occurs=1..1"`
	StartParameter float64         `xml:"startParameter" gml:"occurs=1..1"`
	EndParameter   float64         `xml:"endParameter" gml:"occurs=1..1"`
}

// SurfaceType is a surface composed of surface patches.
type SurfaceType struct {
	AbstractSurfaceType
	Patches ArrayProperty[SurfacePatch] `xml:"patches" gml:"occurs=1..1"`
}

// OrientableSurfaceType is a surface with an orientation relative to its
// base surface.
type OrientableSurfaceType struct {
	AbstractSurfaceType
	BaseSurface Property[Surface] `xml:"baseSurface" gml:"occurs=1..1"`
	Orientation Attr[SignType]    `xml:"orientation,attr"`
}

// OrientationValue returns the orientation, "+" when unset
func (s *OrientableSurfaceType) OrientationValue() SignType { return s.Orientation.Get(SignPositive) }

// AbstractSurfacePatchType is the base of surface patches.
type AbstractSurfacePatchType struct{}

func (p *AbstractSurfacePatchType) AbstractSurfacePatch() *AbstractSurfacePatchType { return p }

// PolygonPatchType is a planar patch bounded by rings.
type PolygonPatchType struct {
	AbstractSurfacePatchType
	Exterior      *Inline[Ring]                  `xml:"exterior"`
	Interior      []Inline[Ring]                 `xml:"interior"`
	Interpolation Attr[SurfaceInterpolationType] `xml:"interpolation,attr"`
}

func (p *PolygonPatchType) InterpolationValue() SurfaceInterpolationType {
	return p.Interpolation.Get(SurfacePlanar)
}

// TriangleType is a planar patch bounded by a four point ring.
type TriangleType struct {
	AbstractSurfacePatchType
	Exterior      Inline[Ring]                   `xml:"exterior" gml:"occurs=1..1"`
	Interpolation Attr[SurfaceInterpolationType] `xml:"interpolation,attr"`
}

func (p *TriangleType) InterpolationValue() SurfaceInterpolationType {
	return p.Interpolation.Get(SurfacePlanar)
}

// RectangleType is a planar patch bounded by a five point ring.
type RectangleType struct {
	AbstractSurfacePatchType
	Exterior      Inline[Ring]                   `xml:"exterior" gml:"occurs=1..1"`
	Interpolation Attr[SurfaceInterpolationType] `xml:"interpolation,attr"`
}

func (p *RectangleType) InterpolationValue() SurfaceInterpolationType {
	return p.Interpolation.Get(SurfacePlanar)
}

// RingType is a closed curve composed of curves.
type RingType struct {
	AbstractRingType
	CurveMember []Property[Curve] `xml:"curveMember" gml:"occurs=1..*"`
}

// AbstractParametricCurveSurfaceType is the base of parametric surface
// patches.
type AbstractParametricCurveSurfaceType struct {
	AbstractSurfacePatchType
}

// RowType is one row of control points of a gridded surface.
type RowType struct {
	PosList *DirectPositionListType `xml:"posList" gml:"choice=positions"`
	Points  Points                  `xml:",any" gml:"choice=positions"`
}

// AbstractGriddedSurfaceType is a patch defined by a grid of control points.
type AbstractGriddedSurfaceType struct {
	AbstractParametricCurveSurfaceType
	Row     []RowType `xml:"row" gml:"occurs=1..*"`
	Rows    *int      `xml:"rows"`
	Columns *int      `xml:"columns"`
}

// ConeType is a gridded conic patch.
type ConeType struct {
	AbstractGriddedSurfaceType
	HorizontalCurveType Attr[CurveInterpolationType] `xml:"horizontalCurveType,attr"`
	VerticalCurveType   Attr[CurveInterpolationType] `xml:"verticalCurveType,attr"`
}

// CylinderType is a gridded cylindrical patch.
type CylinderType struct {
	AbstractGriddedSurfaceType
	HorizontalCurveType Attr[CurveInterpolationType] `xml:"horizontalCurveType,attr"`
	VerticalCurveType   Attr[CurveInterpolationType] `xml:"verticalCurveType,attr"`
}

// SphereType is a gridded spherical patch.
type SphereType struct {
	AbstractGriddedSurfaceType
	HorizontalCurveType Attr[CurveInterpolationType] `xml:"horizontalCurveType,attr"`
	VerticalCurveType   Attr[CurveInterpolationType] `xml:"verticalCurveType,attr"`
}

// PolyhedralSurfaceType is a surface of planar polygon patches.
type PolyhedralSurfaceType struct {
	AbstractSurfaceType
	PolygonPatches ArrayProperty[*PolygonPatchType] `xml:"polygonPatches" gml:"occurs=1..1"`
}

// TriangulatedSurfaceType is a surface of triangle patches.
type TriangulatedSurfaceType struct {
	AbstractSurfaceType
	TrianglePatches ArrayProperty[*TriangleType] `xml:"trianglePatches" gml:"occurs=1..1"`
}

// ControlPointType holds the control points of a triangulated irregular
// network.
type ControlPointType struct {
	PosList *DirectPositionListType `xml:"posList" gml:"choice=positions"`
	Points  Points                  `xml:",any" gml:"choice=positions"`
}

// TinType is a triangulated surface whose triangles are derived from
// control points and constraining lines.
type TinType struct {
	TriangulatedSurfaceType
	StopLines    []ArrayProperty[*LineStringSegmentType] `xml:"stopLines"`
	BreakLines   []ArrayProperty[*LineStringSegmentType] `xml:"breakLines"`
	MaxLength    LengthType                              `xml:"maxLength" gml:"occurs=1..1"`
	ControlPoint ControlPointType                        `xml:"controlPoint" gml:"occurs=1..1"`
}

// AbstractSolidType is the base of three-dimensional primitives.
type AbstractSolidType struct {
	AbstractGeometricPrimitiveType
}

func (s *AbstractSolidType) AbstractSolid() *AbstractSolidType { return s }

// SolidType is a solid bounded by surfaces.
type SolidType struct {
	AbstractSolidType
	Exterior *Property[Surface]  `xml:"exterior"`
	Interior []Property[Surface] `xml:"interior"`
}

// Primitive properties.
type (
	CurveSegmentArrayPropertyType      = ArrayProperty[CurveSegment]
	LineStringSegmentArrayPropertyType = ArrayProperty[*LineStringSegmentType]
	SurfacePatchArrayPropertyType      = ArrayProperty[SurfacePatch]
	PolygonPatchArrayPropertyType      = ArrayProperty[*PolygonPatchType]
	TrianglePatchArrayPropertyType     = ArrayProperty[*TriangleType]
	SolidPropertyType                  = Property[Solid]
	SolidArrayPropertyType             = ArrayProperty[Solid]
	GeometricPrimitivePropertyType     = Property[GeometricPrimitive]
)
