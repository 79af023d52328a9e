package model

import (
	"bytes"
	"regexp"

	"golang.org/x/exp/slices"
)

// Enumerations decode any text; IsValid reports membership.

var otherValue = regexp.MustCompile(`^other:[\p{L}\p{N}_]{2,}$`)

func trimText(b []byte) string { return string(bytes.TrimSpace(b)) }

// SignType is the orientation of a directed topology primitive.
type SignType string

const (
	SignNegative SignType = "-"
	SignPositive SignType = "+"
)

func (v SignType) IsValid() bool                 { return v == SignNegative || v == SignPositive }
func (v SignType) MarshalText() ([]byte, error)  { return []byte(v), nil }
func (v *SignType) UnmarshalText(b []byte) error { *v = SignType(trimText(b)); return nil }

// KnotTypesType is the distribution of knots of a B-spline.
type KnotTypesType string

const (
	KnotUniform         KnotTypesType = "uniform"
	KnotQuasiUniform    KnotTypesType = "quasiUniform"
	KnotPiecewiseBezier KnotTypesType = "piecewiseBezier"
)

var knotTypes = []KnotTypesType{KnotUniform, KnotQuasiUniform, KnotPiecewiseBezier}

func (v KnotTypesType) IsValid() bool                 { return slices.Contains(knotTypes, v) }
func (v KnotTypesType) MarshalText() ([]byte, error)  { return []byte(v), nil }
func (v *KnotTypesType) UnmarshalText(b []byte) error { *v = KnotTypesType(trimText(b)); return nil }

// CurveInterpolationType is the interpolation method of a curve segment.
type CurveInterpolationType string

const (
	CurveLinear                           CurveInterpolationType = "linear"
	CurveGeodesic                         CurveInterpolationType = "geodesic"
	CurveCircularArc3Points               CurveInterpolationType = "circularArc3Points"
	CurveCircularArc2PointWithBulge       CurveInterpolationType = "circularArc2PointWithBulge"
	CurveCircularArcCenterPointWithRadius CurveInterpolationType = "circularArcCenterPointWithRadius"
	CurveElliptical                       CurveInterpolationType = "elliptical"
	CurveClothoid                         CurveInterpolationType = "clothoid"
	CurveConic                            CurveInterpolationType = "conic"
	CurvePolynomialSpline                 CurveInterpolationType = "polynomialSpline"
	CurveCubicSpline                      CurveInterpolationType = "cubicSpline"
	CurveRationalSpline                   CurveInterpolationType = "rationalSpline"
)

var curveInterpolations = []CurveInterpolationType{
	CurveLinear, CurveGeodesic, CurveCircularArc3Points, CurveCircularArc2PointWithBulge,
	CurveCircularArcCenterPointWithRadius, CurveElliptical, CurveClothoid, CurveConic,
	CurvePolynomialSpline, CurveCubicSpline, CurveRationalSpline,
}

func (v CurveInterpolationType) IsValid() bool                { return slices.Contains(curveInterpolations, v) }
func (v CurveInterpolationType) MarshalText() ([]byte, error) { return []byte(v), nil }
func (v *CurveInterpolationType) UnmarshalText(b []byte) error {
	*v = CurveInterpolationType(trimText(b))
	return nil
}

// SurfaceInterpolationType is the interpolation method of a surface patch.
type SurfaceInterpolationType string

const (
	SurfaceNone               SurfaceInterpolationType = "none"
	SurfacePlanar             SurfaceInterpolationType = "planar"
	SurfaceSpherical          SurfaceInterpolationType = "spherical"
	SurfaceElliptical         SurfaceInterpolationType = "elliptical"
	SurfaceConic              SurfaceInterpolationType = "conic"
	SurfaceTin                SurfaceInterpolationType = "tin"
	SurfaceParametricCurve    SurfaceInterpolationType = "parametricCurve"
	SurfacePolynomialSpline   SurfaceInterpolationType = "polynomialSpline"
	SurfaceRationalSpline     SurfaceInterpolationType = "rationalSpline"
	SurfaceTriangulatedSpline SurfaceInterpolationType = "triangulatedSpline"
)

var surfaceInterpolations = []SurfaceInterpolationType{
	SurfaceNone, SurfacePlanar, SurfaceSpherical, SurfaceElliptical, SurfaceConic, SurfaceTin,
	SurfaceParametricCurve, SurfacePolynomialSpline, SurfaceRationalSpline, SurfaceTriangulatedSpline,
}

func (v SurfaceInterpolationType) IsValid() bool                { return slices.Contains(surfaceInterpolations, v) }
func (v SurfaceInterpolationType) MarshalText() ([]byte, error) { return []byte(v), nil }
func (v *SurfaceInterpolationType) UnmarshalText(b []byte) error {
	*v = SurfaceInterpolationType(trimText(b))
	return nil
}

// TimeIndeterminateValueType qualifies an indeterminate time position.
type TimeIndeterminateValueType string

const (
	TimeAfter   TimeIndeterminateValueType = "after"
	TimeBefore  TimeIndeterminateValueType = "before"
	TimeNow     TimeIndeterminateValueType = "now"
	TimeUnknown TimeIndeterminateValueType = "unknown"
)

var timeIndeterminateValues = []TimeIndeterminateValueType{TimeAfter, TimeBefore, TimeNow, TimeUnknown}

func (v TimeIndeterminateValueType) IsValid() bool { return slices.Contains(timeIndeterminateValues, v) }
func (v TimeIndeterminateValueType) MarshalText() ([]byte, error) {
	return []byte(v), nil
}
func (v *TimeIndeterminateValueType) UnmarshalText(b []byte) error {
	*v = TimeIndeterminateValueType(trimText(b))
	return nil
}

// CompassPointEnumeration is one of the sixteen points of the compass.
type CompassPointEnumeration string

const (
	CompassN   CompassPointEnumeration = "N"
	CompassNNE CompassPointEnumeration = "NNE"
	CompassNE  CompassPointEnumeration = "NE"
	CompassENE CompassPointEnumeration = "ENE"
	CompassE   CompassPointEnumeration = "E"
	CompassESE CompassPointEnumeration = "ESE"
	CompassSE  CompassPointEnumeration = "SE"
	CompassSSE CompassPointEnumeration = "SSE"
	CompassS   CompassPointEnumeration = "S"
	CompassSSW CompassPointEnumeration = "SSW"
	CompassSW  CompassPointEnumeration = "SW"
	CompassWSW CompassPointEnumeration = "WSW"
	CompassW   CompassPointEnumeration = "W"
	CompassWNW CompassPointEnumeration = "WNW"
	CompassNW  CompassPointEnumeration = "NW"
	CompassNNW CompassPointEnumeration = "NNW"
)

var compassPoints = []CompassPointEnumeration{
	CompassN, CompassNNE, CompassNE, CompassENE, CompassE, CompassESE, CompassSE, CompassSSE,
	CompassS, CompassSSW, CompassSW, CompassWSW, CompassW, CompassWNW, CompassNW, CompassNNW,
}

func (v CompassPointEnumeration) IsValid() bool                { return slices.Contains(compassPoints, v) }
func (v CompassPointEnumeration) MarshalText() ([]byte, error) { return []byte(v), nil }
func (v *CompassPointEnumeration) UnmarshalText(b []byte) error {
	*v = CompassPointEnumeration(trimText(b))
	return nil
}

// IncrementOrder is the scan order of grid values along the axes.
type IncrementOrder string

const (
	IncrementXY       IncrementOrder = "+x+y"
	IncrementYX       IncrementOrder = "+y+x"
	IncrementXNegY    IncrementOrder = "+x-y"
	IncrementNegXNegY IncrementOrder = "-x-y"
)

var incrementOrders = []IncrementOrder{IncrementXY, IncrementYX, IncrementXNegY, IncrementNegXNegY}

func (v IncrementOrder) IsValid() bool                 { return slices.Contains(incrementOrders, v) }
func (v IncrementOrder) MarshalText() ([]byte, error)  { return []byte(v), nil }
func (v *IncrementOrder) UnmarshalText(b []byte) error { *v = IncrementOrder(trimText(b)); return nil }

// IsSphereType marks an ellipsoid as a sphere.
type IsSphereType string

const IsSphere IsSphereType = "sphere"

func (v IsSphereType) IsValid() bool                 { return v == IsSphere }
func (v IsSphereType) MarshalText() ([]byte, error)  { return []byte(v), nil }
func (v *IsSphereType) UnmarshalText(b []byte) error { *v = IsSphereType(trimText(b)); return nil }

// RelativePositionType is one of the thirteen temporal relations.
type RelativePositionType string

const (
	RelativeBefore       RelativePositionType = "Before"
	RelativeAfter        RelativePositionType = "After"
	RelativeBegins       RelativePositionType = "Begins"
	RelativeEnds         RelativePositionType = "Ends"
	RelativeDuring       RelativePositionType = "During"
	RelativeEquals       RelativePositionType = "Equals"
	RelativeContains     RelativePositionType = "Contains"
	RelativeOverlaps     RelativePositionType = "Overlaps"
	RelativeMeets        RelativePositionType = "Meets"
	RelativeOverlappedBy RelativePositionType = "OverlappedBy"
	RelativeMetBy        RelativePositionType = "MetBy"
	RelativeBegunBy      RelativePositionType = "BegunBy"
	RelativeEndedBy      RelativePositionType = "EndedBy"
)

var relativePositions = []RelativePositionType{
	RelativeBefore, RelativeAfter, RelativeBegins, RelativeEnds, RelativeDuring, RelativeEquals,
	RelativeContains, RelativeOverlaps, RelativeMeets, RelativeOverlappedBy, RelativeMetBy,
	RelativeBegunBy, RelativeEndedBy,
}

func (v RelativePositionType) IsValid() bool                { return slices.Contains(relativePositions, v) }
func (v RelativePositionType) MarshalText() ([]byte, error) { return []byte(v), nil }
func (v *RelativePositionType) UnmarshalText(b []byte) error {
	*v = RelativePositionType(trimText(b))
	return nil
}

// SequenceRuleNames names the traversal of grid cells.
type SequenceRuleNames string

const (
	SequenceLinear          SequenceRuleNames = "Linear"
	SequenceBoustrophedonic SequenceRuleNames = "Boustrophedonic"
	SequenceCantorDiagonal  SequenceRuleNames = "Cantor-diagonal"
	SequenceSpiral          SequenceRuleNames = "Spiral"
	SequenceMorton          SequenceRuleNames = "Morton"
	SequenceHilbert         SequenceRuleNames = "Hilbert"
)

var sequenceRules = []SequenceRuleNames{
	SequenceLinear, SequenceBoustrophedonic, SequenceCantorDiagonal, SequenceSpiral, SequenceMorton, SequenceHilbert,
}

func (v SequenceRuleNames) IsValid() bool                 { return slices.Contains(sequenceRules, v) }
func (v SequenceRuleNames) MarshalText() ([]byte, error)  { return []byte(v), nil }
func (v *SequenceRuleNames) UnmarshalText(b []byte) error { *v = SequenceRuleNames(trimText(b)); return nil }

// SuccessionType is how a dynamic feature's time slices follow each other.
type SuccessionType string

const (
	SuccessionSubstitution SuccessionType = "substitution"
	SuccessionDivision     SuccessionType = "division"
	SuccessionFusion       SuccessionType = "fusion"
	SuccessionInitiation   SuccessionType = "initiation"
)

var successions = []SuccessionType{SuccessionSubstitution, SuccessionDivision, SuccessionFusion, SuccessionInitiation}

func (v SuccessionType) IsValid() bool                 { return slices.Contains(successions, v) }
func (v SuccessionType) MarshalText() ([]byte, error)  { return []byte(v), nil }
func (v *SuccessionType) UnmarshalText(b []byte) error { *v = SuccessionType(trimText(b)); return nil }

// SymbolTypeEnumeration is the encoding of a style symbol.
type SymbolTypeEnumeration string

const (
	SymbolSVG   SymbolTypeEnumeration = "svg"
	SymbolXPath SymbolTypeEnumeration = "xpath"
	SymbolOther SymbolTypeEnumeration = "other"
)

var symbolTypes = []SymbolTypeEnumeration{SymbolSVG, SymbolXPath, SymbolOther}

func (v SymbolTypeEnumeration) IsValid() bool                { return slices.Contains(symbolTypes, v) }
func (v SymbolTypeEnumeration) MarshalText() ([]byte, error) { return []byte(v), nil }
func (v *SymbolTypeEnumeration) UnmarshalText(b []byte) error {
	*v = SymbolTypeEnumeration(trimText(b))
	return nil
}

// GraphTypeType is the kind of graph drawn by a topology style.
type GraphTypeType string

const (
	GraphDirected   GraphTypeType = "DIRECTED"
	GraphUndirected GraphTypeType = "UNDIRECTED"
)

func (v GraphTypeType) IsValid() bool                 { return v == GraphDirected || v == GraphUndirected }
func (v GraphTypeType) MarshalText() ([]byte, error)  { return []byte(v), nil }
func (v *GraphTypeType) UnmarshalText(b []byte) error { *v = GraphTypeType(trimText(b)); return nil }

// DrawingTypeType is the drawing method of a graph style.
type DrawingTypeType string

const (
	DrawingPolyline   DrawingTypeType = "POLYLINE"
	DrawingOrthogonal DrawingTypeType = "ORTHOGONAL"
)

func (v DrawingTypeType) IsValid() bool                 { return v == DrawingPolyline || v == DrawingOrthogonal }
func (v DrawingTypeType) MarshalText() ([]byte, error)  { return []byte(v), nil }
func (v *DrawingTypeType) UnmarshalText(b []byte) error { *v = DrawingTypeType(trimText(b)); return nil }

// LineTypeType is the line type of a graph style.
type LineTypeType string

const (
	LineStraight LineTypeType = "STRAIGHT"
	LineBent     LineTypeType = "BENT"
)

func (v LineTypeType) IsValid() bool                 { return v == LineStraight || v == LineBent }
func (v LineTypeType) MarshalText() ([]byte, error)  { return []byte(v), nil }
func (v *LineTypeType) UnmarshalText(b []byte) error { *v = LineTypeType(trimText(b)); return nil }

// AesheticCriteriaType is a graph layout criterion.
type AesheticCriteriaType string

const (
	AestheticMinCrossings         AesheticCriteriaType = "MIN_CROSSINGS"
	AestheticMinArea              AesheticCriteriaType = "MIN_AREA"
	AestheticMinBends             AesheticCriteriaType = "MIN_BENDS"
	AestheticMaxBends             AesheticCriteriaType = "MAX_BENDS"
	AestheticUniformBends         AesheticCriteriaType = "UNIFORM_BENDS"
	AestheticMinSlopes            AesheticCriteriaType = "MIN_SLOPES"
	AestheticMinEdgeLength        AesheticCriteriaType = "MIN_EDGE_LENGTH"
	AestheticMaxEdgeLength        AesheticCriteriaType = "MAX_EDGE_LENGTH"
	AestheticUniformEdgeLength    AesheticCriteriaType = "UNIFORM_EDGE_LENGTH"
	AestheticMaxAngularResolution AesheticCriteriaType = "MAX_ANGULAR_RESOLUTION"
	AestheticMinAspectEdge        AesheticCriteriaType = "MIN_ASPECT_EDGE"
	AestheticMaxSymmetries        AesheticCriteriaType = "MAX_SYMMETRIES"
)

var aestheticCriteria = []AesheticCriteriaType{
	AestheticMinCrossings, AestheticMinArea, AestheticMinBends, AestheticMaxBends, AestheticUniformBends,
	AestheticMinSlopes, AestheticMinEdgeLength, AestheticMaxEdgeLength, AestheticUniformEdgeLength,
	AestheticMaxAngularResolution, AestheticMinAspectEdge, AestheticMaxSymmetries,
}

func (v AesheticCriteriaType) IsValid() bool                { return slices.Contains(aestheticCriteria, v) }
func (v AesheticCriteriaType) MarshalText() ([]byte, error) { return []byte(v), nil }
func (v *AesheticCriteriaType) UnmarshalText(b []byte) error {
	*v = AesheticCriteriaType(trimText(b))
	return nil
}

// FileValueModelType is the layout of values in a coverage range file.
type FileValueModelType string

const FileValueModelRecordInterleaved FileValueModelType = "Record Interleaved"

func (v FileValueModelType) IsValid() bool                { return v == FileValueModelRecordInterleaved }
func (v FileValueModelType) MarshalText() ([]byte, error) { return []byte(v), nil }
func (v *FileValueModelType) UnmarshalText(b []byte) error {
	*v = FileValueModelType(trimText(b))
	return nil
}

// QueryGrammarEnumeration is the language of a style selector query.
type QueryGrammarEnumeration string

const (
	QueryXPath  QueryGrammarEnumeration = "xpath"
	QueryXQuery QueryGrammarEnumeration = "xquery"
	QueryOther  QueryGrammarEnumeration = "other"
)

var queryGrammars = []QueryGrammarEnumeration{QueryXPath, QueryXQuery, QueryOther}

func (v QueryGrammarEnumeration) IsValid() bool                { return slices.Contains(queryGrammars, v) }
func (v QueryGrammarEnumeration) MarshalText() ([]byte, error) { return []byte(v), nil }
func (v *QueryGrammarEnumeration) UnmarshalText(b []byte) error {
	*v = QueryGrammarEnumeration(trimText(b))
	return nil
}

// TimeUnitType is a standard unit of time or an "other:" extension.
type TimeUnitType string

const (
	TimeUnitYear   TimeUnitType = "year"
	TimeUnitMonth  TimeUnitType = "month"
	TimeUnitDay    TimeUnitType = "day"
	TimeUnitHour   TimeUnitType = "hour"
	TimeUnitMinute TimeUnitType = "minute"
	TimeUnitSecond TimeUnitType = "second"
)

var timeUnits = []TimeUnitType{TimeUnitYear, TimeUnitMonth, TimeUnitDay, TimeUnitHour, TimeUnitMinute, TimeUnitSecond}

func (v TimeUnitType) IsValid() bool {
	return slices.Contains(timeUnits, v) || otherValue.MatchString(string(v))
}
func (v TimeUnitType) MarshalText() ([]byte, error)  { return []byte(v), nil }
func (v *TimeUnitType) UnmarshalText(b []byte) error { *v = TimeUnitType(trimText(b)); return nil }

// NullEnumeration is a reason for a missing value.
type NullEnumeration string

const (
	NullInapplicable NullEnumeration = "inapplicable"
	NullMissing      NullEnumeration = "missing"
	NullTemplate     NullEnumeration = "template"
	NullUnknown      NullEnumeration = "unknown"
	NullWithheld     NullEnumeration = "withheld"
)

var nullReasons = []NullEnumeration{NullInapplicable, NullMissing, NullTemplate, NullUnknown, NullWithheld}

func (v NullEnumeration) IsValid() bool {
	return slices.Contains(nullReasons, v) || otherValue.MatchString(string(v))
}
func (v NullEnumeration) MarshalText() ([]byte, error)  { return []byte(v), nil }
func (v *NullEnumeration) UnmarshalText(b []byte) error { *v = NullEnumeration(trimText(b)); return nil }
