package model

// Substitution group heads. Each abstract GML element is an interface
// satisfied by every type whose elements may substitute for it; the
// accessor returns the embedded abstract base.

// Object is any identifiable GML object.
type Object interface {
	GML() *AbstractGMLType
}

// Value is a member of the gml:Value group: a value object, geometry,
// time object or null.
type Value interface {
	isValue()
}

// ScalarValue is a member of the gml:ScalarValue group.
type ScalarValue interface {
	Value
	isScalarValue()
}

// MetaData is the head of the _MetaData group.
type MetaData interface {
	AbstractMetaData() *AbstractMetaDataType
}

// Definition is the head of the Definition group.
type Definition interface {
	Object
	Definition() *DefinitionType
}

// Geometry is the head of the _Geometry group.
type Geometry interface {
	Object
	AbstractGeometry() *AbstractGeometryType
}

// GeometricPrimitive is the head of the _GeometricPrimitive group.
type GeometricPrimitive interface {
	Geometry
	AbstractGeometricPrimitive() *AbstractGeometricPrimitiveType
}

// Curve is the head of the _Curve group.
type Curve interface {
	GeometricPrimitive
	AbstractCurve() *AbstractCurveType
}

// Surface is the head of the _Surface group.
type Surface interface {
	GeometricPrimitive
	AbstractSurface() *AbstractSurfaceType
}

// Solid is the head of the _Solid group.
type Solid interface {
	GeometricPrimitive
	AbstractSolid() *AbstractSolidType
}

// Grid is a grid geometry: a Grid or a RectifiedGrid.
type Grid interface {
	Geometry
	Grid() *GridType
}

// Ring is the head of the _Ring group.
type Ring interface {
	Geometry
	AbstractRing() *AbstractRingType
}

// GeometricAggregate is the head of the _GeometricAggregate group.
type GeometricAggregate interface {
	Geometry
	AbstractGeometricAggregate() *AbstractGeometricAggregateType
}

// CurveSegment is the head of the _CurveSegment group.
type CurveSegment interface {
	AbstractCurveSegment() *AbstractCurveSegmentType
}

// SurfacePatch is the head of the _SurfacePatch group.
type SurfacePatch interface {
	AbstractSurfacePatch() *AbstractSurfacePatchType
}

// Feature is the head of the _Feature group.
type Feature interface {
	Object
	AbstractFeature() *AbstractFeatureType
}

// Coverage is the head of the _Coverage group.
type Coverage interface {
	Feature
	AbstractCoverage() *AbstractCoverageType
}

// TimeSlice is the head of the _TimeSlice group.
type TimeSlice interface {
	Object
	AbstractTimeSlice() *AbstractTimeSliceType
}

// TimeObject is the head of the _TimeObject group.
type TimeObject interface {
	Object
	AbstractTimeObject() *AbstractTimeObjectType
}

// TimePrimitive is the head of the _TimePrimitive group.
type TimePrimitive interface {
	TimeObject
	AbstractTimePrimitive() *AbstractTimePrimitiveType
}

// TimeGeometricPrimitive is the head of the _TimeGeometricPrimitive group.
type TimeGeometricPrimitive interface {
	TimePrimitive
	AbstractTimeGeometricPrimitive() *AbstractTimeGeometricPrimitiveType
}

// TimeTopologyPrimitive is the head of the _TimeTopologyPrimitive group.
type TimeTopologyPrimitive interface {
	TimePrimitive
	AbstractTimeTopologyPrimitive() *AbstractTimeTopologyPrimitiveType
}

// TimeComplex is the head of the _TimeComplex group.
type TimeComplex interface {
	TimeObject
	AbstractTimeComplex() *AbstractTimeComplexType
}

// TimeReferenceSystem is the head of the _TimeReferenceSystem group.
type TimeReferenceSystem interface {
	Definition
	AbstractTimeReferenceSystem() *AbstractTimeReferenceSystemType
}

// Topology is the head of the _Topology group.
type Topology interface {
	Object
	AbstractTopology() *AbstractTopologyType
}

// TopoPrimitive is the head of the _TopoPrimitive group.
type TopoPrimitive interface {
	Topology
	AbstractTopoPrimitive() *AbstractTopoPrimitiveType
}

// Style is the head of the _Style group.
type Style interface {
	Object
	AbstractStyle() *AbstractStyleType
}

// ReferenceSystem is the head of the _ReferenceSystem group.
type ReferenceSystem interface {
	Definition
	AbstractReferenceSystem() *AbstractReferenceSystemType
}

// CRS is the head of the _CRS group.
type CRS interface {
	ReferenceSystem
	isCRS()
}

// CoordinateSystem is the head of the _CoordinateSystem group.
type CoordinateSystem interface {
	Definition
	AbstractCoordinateSystem() *AbstractCoordinateSystemType
}

// Datum is the head of the _Datum group.
type Datum interface {
	Definition
	AbstractDatum() *AbstractDatumType
}

// CoordinateOperation is the head of the _CoordinateOperation group.
type CoordinateOperation interface {
	Definition
	AbstractCoordinateOperation() *AbstractCoordinateOperationType
}

// SingleOperation is the head of the _SingleOperation group.
type SingleOperation interface {
	CoordinateOperation
	isSingleOperation()
}

// Operation is the head of the _Operation group.
type Operation interface {
	SingleOperation
	isOperation()
}

// GeneralConversion is the head of the _GeneralConversion group.
type GeneralConversion interface {
	Operation
	AbstractGeneralConversion() *AbstractGeneralConversionType
}

// GeneralTransformation is the head of the _GeneralTransformation group.
type GeneralTransformation interface {
	Operation
	AbstractGeneralTransformation() *AbstractGeneralTransformationType
}

// GeneralOperationParameter is the head of the _GeneralOperationParameter group.
type GeneralOperationParameter interface {
	Definition
	AbstractGeneralOperationParameter() *AbstractGeneralOperationParameterType
}

// GeneralParameterValue is the head of the _generalParameterValue group.
type GeneralParameterValue interface {
	isGeneralParameterValue()
}

// PositionalAccuracy is the head of the _positionalAccuracy group.
type PositionalAccuracy interface {
	AbstractPositionalAccuracy() *AbstractPositionalAccuracyType
}
