package model

// Global elements of the GML namespace. Where several elements share a
// type the first listed is the type's canonical element.
func init() {
	// base objects and dictionaries
	register[BagType]("Bag")
	register[ArrayType]("Array")
	register[GenericMetaDataType]("GenericMetaData")
	register[DefinitionType]("Definition")
	register[DefinitionProxyType]("DefinitionProxy")
	register[DictionaryType]("Dictionary")
	register[DictionaryType]("DefinitionCollection")

	// values
	register[Boolean]("Boolean")
	register[CodeType]("Category")
	register[MeasureType]("Quantity")
	register[Count]("Count")
	register[BooleanOrNullListValue]("BooleanList")
	register[CodeOrNullListType]("CategoryList")
	register[MeasureOrNullListType]("QuantityList")
	register[CountListValue]("CountList")
	register[CategoryExtentType]("CategoryExtent")
	register[QuantityExtentType]("QuantityExtent")
	register[CountExtentType]("CountExtent")
	register[CompositeValueType]("CompositeValue")
	register[ValueArrayType]("ValueArray")
	register[NullType]("Null")
	register[MeasureType]("measure")

	// geometry primitives
	register[PointType]("Point")
	register[LineStringType]("LineString")
	register[LinearRingType]("LinearRing")
	register[PolygonType]("Polygon")
	register[EnvelopeType]("Envelope")
	register[EnvelopeWithTimePeriodType]("EnvelopeWithTimePeriod")
	register[CurveType]("Curve")
	register[OrientableCurveType]("OrientableCurve")
	register[SurfaceType]("Surface")
	register[OrientableSurfaceType]("OrientableSurface")
	register[RingType]("Ring")
	register[PolyhedralSurfaceType]("PolyhedralSurface")
	register[TriangulatedSurfaceType]("TriangulatedSurface")
	register[TinType]("Tin")
	register[SolidType]("Solid")

	// curve segments
	register[LineStringSegmentType]("LineStringSegment")
	register[ArcStringType]("ArcString")
	register[ArcType]("Arc")
	register[CircleType]("Circle")
	register[ArcStringByBulgeType]("ArcStringByBulge")
	register[ArcByBulgeType]("ArcByBulge")
	register[ArcByCenterPointType]("ArcByCenterPoint")
	register[CircleByCenterPointType]("CircleByCenterPoint")
	register[CubicSplineType]("CubicSpline")
	register[BSplineType]("BSpline")
	register[BezierType]("Bezier")
	register[GeodesicStringType]("GeodesicString")
	register[GeodesicType]("Geodesic")
	register[OffsetCurveType]("OffsetCurve")
	register[ClothoidType]("Clothoid")

	// surface patches
	register[PolygonPatchType]("PolygonPatch")
	register[TriangleType]("Triangle")
	register[RectangleType]("Rectangle")
	register[ConeType]("Cone")
	register[CylinderType]("Cylinder")
	register[SphereType]("Sphere")

	// aggregates, complexes and grids
	register[MultiGeometryType]("MultiGeometry")
	register[MultiPointType]("MultiPoint")
	register[MultiCurveType]("MultiCurve")
	register[MultiSurfaceType]("MultiSurface")
	register[MultiSolidType]("MultiSolid")
	register[MultiLineStringType]("MultiLineString")
	register[MultiPolygonType]("MultiPolygon")
	register[CompositeCurveType]("CompositeCurve")
	register[CompositeSurfaceType]("CompositeSurface")
	register[CompositeSolidType]("CompositeSolid")
	register[GeometricComplexType]("GeometricComplex")
	register[GridType]("Grid")
	register[RectifiedGridType]("RectifiedGrid")

	// topology
	register[NodeType]("Node")
	register[EdgeType]("Edge")
	register[FaceType]("Face")
	register[TopoSolidType]("TopoSolid")
	register[TopoPointType]("TopoPoint")
	register[TopoCurveType]("TopoCurve")
	register[TopoSurfaceType]("TopoSurface")
	register[TopoVolumeType]("TopoVolume")
	register[TopoComplexType]("TopoComplex")

	// temporal
	register[TimeInstantType]("TimeInstant")
	register[TimePeriodType]("TimePeriod")
	register[TimeNodeType]("TimeNode")
	register[TimeEdgeType]("TimeEdge")
	register[TimeTopologyComplexType]("TimeTopologyComplex")
	register[TimeCoordinateSystemType]("TimeCoordinateSystem")
	register[TimeOrdinalReferenceSystemType]("TimeOrdinalReferenceSystem")
	register[TimeOrdinalEraType]("TimeOrdinalEra")
	register[TimeCalendarType]("TimeCalendar")
	register[TimeCalendarEraType]("TimeCalendarEra")
	register[TimeClockType]("TimeClock")

	// features, dynamic features, observations
	register[FeatureCollectionType]("FeatureCollection")
	register[DynamicFeatureType]("DynamicFeature")
	register[DynamicFeatureCollectionType]("DynamicFeatureCollection")
	register[MovingObjectStatusType]("MovingObjectStatus")
	register[ObservationType]("Observation")
	register[DirectedObservationType]("DirectedObservation")
	register[DirectedObservationAtDistanceType]("DirectedObservationAtDistance")
	register[LocationKeyWordType]("LocationKeyWord")
	register[LocationStringType]("LocationString")

	// coverages
	register[MultiPointCoverageType]("MultiPointCoverage")
	register[MultiCurveCoverageType]("MultiCurveCoverage")
	register[MultiSurfaceCoverageType]("MultiSurfaceCoverage")
	register[MultiSolidCoverageType]("MultiSolidCoverage")
	register[GridCoverageType]("GridCoverage")
	register[RectifiedGridCoverageType]("RectifiedGridCoverage")

	// units
	register[UnitDefinitionType]("UnitDefinition")
	register[BaseUnitType]("BaseUnit")
	register[DerivedUnitType]("DerivedUnit")
	register[ConventionalUnitType]("ConventionalUnit")
	register[DMSAngleType]("dmsAngle")

	// styles
	register[StyleType]("Style")
	register[FeatureStyleType]("FeatureStyle")
	register[GeometryStyleType]("GeometryStyle")
	register[TopologyStyleType]("TopologyStyle")
	register[LabelStyleType]("LabelStyle")
	register[GraphStyleType]("GraphStyle")

	// reference systems
	register[GeographicCRSType]("GeographicCRS")
	register[VerticalCRSType]("VerticalCRS")
	register[GeocentricCRSType]("GeocentricCRS")
	register[ProjectedCRSType]("ProjectedCRS")
	register[DerivedCRSType]("DerivedCRS")
	register[EngineeringCRSType]("EngineeringCRS")
	register[ImageCRSType]("ImageCRS")
	register[TemporalCRSType]("TemporalCRS")
	register[CompoundCRSType]("CompoundCRS")

	// coordinate systems
	register[CoordinateSystemAxisType]("CoordinateSystemAxis")
	register[EllipsoidalCSType]("EllipsoidalCS")
	register[CartesianCSType]("CartesianCS")
	register[VerticalCSType]("VerticalCS")
	register[TemporalCSType]("TemporalCS")
	register[LinearCSType]("LinearCS")
	register[UserDefinedCSType]("UserDefinedCS")
	register[SphericalCSType]("SphericalCS")
	register[PolarCSType]("PolarCS")
	register[CylindricalCSType]("CylindricalCS")
	register[ObliqueCartesianCSType]("ObliqueCartesianCS")

	// datums
	register[EngineeringDatumType]("EngineeringDatum")
	register[ImageDatumType]("ImageDatum")
	register[VerticalDatumType]("VerticalDatum")
	register[TemporalDatumType]("TemporalDatum")
	register[GeodeticDatumType]("GeodeticDatum")
	register[PrimeMeridianType]("PrimeMeridian")
	register[EllipsoidType]("Ellipsoid")

	// coordinate operations and parameters
	register[ConversionType]("Conversion")
	register[TransformationType]("Transformation")
	register[ConcatenatedOperationType]("ConcatenatedOperation")
	register[PassThroughOperationType]("PassThroughOperation")
	register[OperationMethodType]("OperationMethod")
	register[OperationParameterType]("OperationParameter")
	register[OperationParameterGroupType]("OperationParameterGroup")
	register[ParameterValueType]("parameterValue")
	register[ParameterValueGroupType]("parameterValueGroup")

	// data quality
	register[AbsoluteExternalPositionalAccuracyType]("absoluteExternalPositionalAccuracy")
	register[RelativeInternalPositionalAccuracyType]("relativeInternalPositionalAccuracy")
	register[CovarianceMatrixType]("covarianceMatrix")
}
