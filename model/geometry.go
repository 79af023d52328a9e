package model

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Coordinate separator defaults of CoordinatesType.
const (
	DefaultDecimal = "."
	DefaultCS      = ","
	DefaultTS      = " "
)

// SRSReferenceGroup names the reference system of a geometry or position.
type SRSReferenceGroup struct {
	SRSName      string     `xml:"srsName,attr,omitempty"`
	SRSDimension Attr[int]  `xml:"srsDimension,attr"`
	AxisLabels   NCNameList `xml:"axisLabels,attr,omitempty"`
	UOMLabels    NCNameList `xml:"uomLabels,attr,omitempty"`
}

// AbstractGeometryType is the base of every geometry.
type AbstractGeometryType struct {
	AbstractGMLType
	GID string `xml:"gid,attr,omitempty"`
	SRSReferenceGroup
}

func (g *AbstractGeometryType) AbstractGeometry() *AbstractGeometryType { return g }
func (*AbstractGeometryType) isValue()                                   {}

// AbstractGeometricPrimitiveType is the base of points, curves,
// surfaces and solids.
type AbstractGeometricPrimitiveType struct {
	AbstractGeometryType
}

func (g *AbstractGeometricPrimitiveType) AbstractGeometricPrimitive() *AbstractGeometricPrimitiveType {
	return g
}

// DirectPositionType is a position as a list of coordinates.
type DirectPositionType struct {
	SRSReferenceGroup
	Values DoubleList `xml:",chardata"`
}

// NewDirectPosition returns a position with the given coordinates
func NewDirectPosition(coords ...float64) *DirectPositionType {
	return &DirectPositionType{Values: coords}
}

// VectorType is a direction as a list of coordinates.
type VectorType = DirectPositionType

// DirectPositionListType is a list of positions in a single list of
// coordinates.
type DirectPositionListType struct {
	SRSReferenceGroup
	Count  Attr[int]  `xml:"count,attr"`
	Values DoubleList `xml:",chardata"`
}

// Len returns the number of positions: the count attribute when set,
// otherwise the number of coordinates divided by the dimension
// (srsDimension, or dim when unset).
func (l *DirectPositionListType) Len(dim int) int {
	if l.Count.IsSet() {
		return l.Count.Get(0)
	}
	if d := l.SRSDimension.Get(dim); d > 0 {
		return len(l.Values) / d
	}
	return 0
}

// CoordType is a position as explicit X, Y and Z ordinates.
type CoordType struct {
	X float64  `xml:"X" gml:"occurs=1..1"`
	Y *float64 `xml:"Y"`
	Z *float64 `xml:"Z"`
}

// CoordinatesType is a list of coordinate tuples as a string with
// configurable separators.
type CoordinatesType struct {
	Decimal Attr[string] `xml:"decimal,attr"`
	CS      Attr[string] `xml:"cs,attr"`
	TS      Attr[string] `xml:"ts,attr"`
	Value   string       `xml:",chardata"`
}

func (c *CoordinatesType) DecimalValue() string { return c.Decimal.Get(DefaultDecimal) }
func (c *CoordinatesType) CSValue() string      { return c.CS.Get(DefaultCS) }
func (c *CoordinatesType) TSValue() string      { return c.TS.Get(DefaultTS) }

// Tuples parses the coordinate tuples
func (c *CoordinatesType) Tuples() ([][]float64, error) {
	dec, cs, ts := c.DecimalValue(), c.CSValue(), c.TSValue()
	var tuples [][]float64
	for _, tuple := range splitSeparated(c.Value, ts) {
		var coords []float64
		for _, s := range splitSeparated(tuple, cs) {
			if dec != "." {
				s = strings.ReplaceAll(s, dec, ".")
			}
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "coordinate tuple %d", len(tuples)+1)
			}
			coords = append(coords, f)
		}
		tuples = append(tuples, coords)
	}
	return tuples, nil
}

func splitSeparated(s, sep string) []string {
	if strings.TrimSpace(sep) == "" {
		return strings.Fields(s)
	}
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// PointType is a single position.
type PointType struct {
	AbstractGeometricPrimitiveType
	Pos         *DirectPositionType `xml:"pos" gml:"choice=position"`
	Coordinates *CoordinatesType    `xml:"coordinates" gml:"choice=position"`
	Coord       *CoordType          `xml:"coord" gml:"choice=position"`
}

// NewPoint returns a point at the given coordinates
func NewPoint(coords ...float64) *PointType {
	return &PointType{Pos: NewDirectPosition(coords...)}
}

// AbstractCurveType is the base of one-dimensional primitives.
type AbstractCurveType struct {
	AbstractGeometricPrimitiveType
}

func (c *AbstractCurveType) AbstractCurve() *AbstractCurveType { return c }

// ControlPoints is a sequence of positions given as interleaved
// pos/pointProperty/pointRep/coord elements, a posList or coordinates.
type ControlPoints struct {
	Points      Points                  `xml:",any" gml:"choice=positions"`
	PosList     *DirectPositionListType `xml:"posList" gml:"choice=positions"`
	Coordinates *CoordinatesType        `xml:"coordinates" gml:"choice=positions"`
}

// PositionCount returns the number of positions, dividing a posList by
// dim when it has neither count nor srsDimension.
func (c *ControlPoints) PositionCount(dim int) int {
	switch {
	case c.PosList != nil:
		return c.PosList.Len(dim)
	case c.Coordinates != nil:
		tuples, err := c.Coordinates.Tuples()
		if err != nil {
			return 0
		}
		return len(tuples)
	}
	return len(c.Points)
}

// LineStringType is a curve of linearly interpolated positions.
type LineStringType struct {
	AbstractCurveType
	ControlPoints
}

// AbstractSurfaceType is the base of two-dimensional primitives.
type AbstractSurfaceType struct {
	AbstractGeometricPrimitiveType
}

func (s *AbstractSurfaceType) AbstractSurface() *AbstractSurfaceType { return s }

// AbstractRingType is the base of closed curves bounding surfaces.
type AbstractRingType struct {
	AbstractGeometryType
}

func (r *AbstractRingType) AbstractRing() *AbstractRingType { return r }

// LinearRingType is a closed line string.
type LinearRingType struct {
	AbstractRingType
	ControlPoints
}

// PolygonType is a planar surface bounded by rings.
type PolygonType struct {
	AbstractSurfaceType
	Exterior        *Inline[Ring]  `xml:"exterior" gml:"choice=exterior?"`
	OuterBoundaryIs *Inline[Ring]  `xml:"outerBoundaryIs" gml:"choice=exterior?"`
	Interior        []Inline[Ring] `xml:"interior"`
	InnerBoundaryIs []Inline[Ring] `xml:"innerBoundaryIs"`
}

// EnvelopeType is an extent given by two corner positions.
type EnvelopeType struct {
	SRSReferenceGroup
	LowerCorner *DirectPositionType  `xml:"lowerCorner" gml:"choice=extent.corners"`
	UpperCorner *DirectPositionType  `xml:"upperCorner" gml:"choice=extent.corners"`
	Coord       []CoordType          `xml:"coord" gml:"choice=extent"`
	Pos         []DirectPositionType `xml:"pos" gml:"choice=extent"`
	Coordinates *CoordinatesType     `xml:"coordinates" gml:"choice=extent"`
}

// NewEnvelope returns an envelope with the given corners
func NewEnvelope(srsName string, lower, upper []float64) *EnvelopeType {
	return &EnvelopeType{
		SRSReferenceGroup: SRSReferenceGroup{SRSName: srsName},
		LowerCorner:       NewDirectPosition(lower...),
		UpperCorner:       NewDirectPosition(upper...),
	}
}

// Geometry properties.
type (
	GeometryPropertyType      = Property[Geometry]
	GeometryArrayPropertyType = ArrayProperty[Geometry]
	PointPropertyType         = Property[*PointType]
	PointArrayPropertyType    = ArrayProperty[*PointType]
	CurvePropertyType         = Property[Curve]
	CurveArrayPropertyType    = ArrayProperty[Curve]
	LineStringPropertyType    = Property[*LineStringType]
	SurfacePropertyType       = Property[Surface]
	SurfaceArrayPropertyType  = ArrayProperty[Surface]
	PolygonPropertyType       = Property[*PolygonType]
	AbstractRingPropertyType  = Inline[Ring]
	LinearRingPropertyType    = Inline[*LinearRingType]
	RingPropertyType          = Inline[*RingType]
)
