package model

// AbstractReferenceSystemBaseType is a reference system definition named
// by srsName.
type AbstractReferenceSystemBaseType struct {
	DefinitionType
	SRSName CodeType `xml:"srsName" gml:"occurs=1..1"`
}

// AbstractReferenceSystemType is the base of reference systems.
type AbstractReferenceSystemType struct {
	AbstractReferenceSystemBaseType
	SRSID     []IdentifierType `xml:"srsID"`
	Remarks   *StringOrRefType `xml:"remarks"`
	ValidArea *ExtentType      `xml:"validArea"`
	Scope     string           `xml:"scope,omitempty"`
}

func (r *AbstractReferenceSystemType) AbstractReferenceSystem() *AbstractReferenceSystemType { return r }

// IdentifierType is an identifier of a definition in a code space.
type IdentifierType struct {
	Name    CodeType         `xml:"name" gml:"occurs=1..1"`
	Version string           `xml:"version,omitempty"`
	Remarks *StringOrRefType `xml:"remarks"`
}

// ExtentType is the area or time span in which an object is valid.
type ExtentType struct {
	Description     *StringOrRefType `xml:"description"`
	BoundingBox     []EnvelopeType   `xml:"boundingBox" gml:"choice=horizontal?"`
	BoundingPolygon []PolygonType    `xml:"boundingPolygon" gml:"choice=horizontal?"`
	VerticalExtent  []EnvelopeType   `xml:"verticalExtent"`
	TemporalExtent  []TimePeriodType `xml:"temporalExtent"`
}

// AbstractCRSType is the base of coordinate reference systems.
type AbstractCRSType struct {
	AbstractReferenceSystemType
}

func (*AbstractCRSType) isCRS() {}

// GeographicCRSType is a CRS based on an ellipsoidal approximation of the
// geoid.
type GeographicCRSType struct {
	AbstractCRSType
	UsesEllipsoidalCS Property[*EllipsoidalCSType] `xml:"usesEllipsoidalCS" gml:"occurs=1..1"`
	UsesGeodeticDatum Property[*GeodeticDatumType] `xml:"usesGeodeticDatum" gml:"occurs=1..1"`
}

// VerticalCRSType is a one-dimensional CRS of heights or depths.
type VerticalCRSType struct {
	AbstractCRSType
	UsesVerticalCS    Property[*VerticalCSType]    `xml:"usesVerticalCS" gml:"occurs=1..1"`
	UsesVerticalDatum Property[*VerticalDatumType] `xml:"usesVerticalDatum" gml:"occurs=1..1"`
}

// GeocentricCRSType is a three-dimensional CRS with its origin at the
// centre of the earth.
type GeocentricCRSType struct {
	AbstractCRSType
	UsesCartesianCS   *Property[*CartesianCSType]  `xml:"usesCartesianCS" gml:"choice=cs"`
	UsesSphericalCS   *Property[*SphericalCSType]  `xml:"usesSphericalCS" gml:"choice=cs"`
	UsesGeodeticDatum Property[*GeodeticDatumType] `xml:"usesGeodeticDatum" gml:"occurs=1..1"`
}

// AbstractGeneralDerivedCRSType is a CRS defined by a conversion from
// another CRS.
type AbstractGeneralDerivedCRSType struct {
	AbstractCRSType
	BaseCRS             Property[CRS]               `xml:"baseCRS" gml:"occurs=1..1"`
	DefinedByConversion Property[GeneralConversion] `xml:"definedByConversion" gml:"occurs=1..1"`
}

// ProjectedCRSType is a two-dimensional CRS derived from a geographic CRS
// by a map projection.
type ProjectedCRSType struct {
	AbstractGeneralDerivedCRSType
	UsesCartesianCS Property[*CartesianCSType] `xml:"usesCartesianCS" gml:"occurs=1..1"`
}

// DerivedCRSType is a CRS derived by conversion that is not a projected
// CRS.
type DerivedCRSType struct {
	AbstractGeneralDerivedCRSType
	DerivedType DerivedCRSTypeType         `xml:"derivedCRSType" gml:"occurs=1..1"`
	UsesCS      Property[CoordinateSystem] `xml:"usesCS" gml:"occurs=1..1"`
}

// DerivedCRSTypeType is the kind of a derived CRS.
type DerivedCRSTypeType struct {
	CodeType
}

// EngineeringCRSType is a local CRS.
type EngineeringCRSType struct {
	AbstractCRSType
	UsesCS               Property[CoordinateSystem]      `xml:"usesCS" gml:"occurs=1..1"`
	UsesEngineeringDatum Property[*EngineeringDatumType] `xml:"usesEngineeringDatum" gml:"occurs=1..1"`
}

// ImageCRSType is an engineering CRS applied to images.
type ImageCRSType struct {
	AbstractCRSType
	UsesCartesianCS        *Property[*CartesianCSType]        `xml:"usesCartesianCS" gml:"choice=cs"`
	UsesObliqueCartesianCS *Property[*ObliqueCartesianCSType] `xml:"usesObliqueCartesianCS" gml:"choice=cs"`
	UsesImageDatum         Property[*ImageDatumType]          `xml:"usesImageDatum" gml:"occurs=1..1"`
}

// TemporalCRSType is a one-dimensional CRS of time.
type TemporalCRSType struct {
	AbstractCRSType
	UsesTemporalCS    Property[*TemporalCSType]    `xml:"usesTemporalCS" gml:"occurs=1..1"`
	UsesTemporalDatum Property[*TemporalDatumType] `xml:"usesTemporalDatum" gml:"occurs=1..1"`
}

// CompoundCRSType is a CRS combining two or more single CRSs.
type CompoundCRSType struct {
	AbstractCRSType
	IncludesCRS []Property[CRS] `xml:"includesCRS" gml:"occurs=2..*"`
}

// Reference system properties.
type (
	ReferenceSystemRefType           = Property[ReferenceSystem]
	CRSRefType                       = Property[CRS]
	CoordinateReferenceSystemRefType = Property[CRS]
	GeographicCRSRefType             = Property[*GeographicCRSType]
	VerticalCRSRefType               = Property[*VerticalCRSType]
	GeocentricCRSRefType             = Property[*GeocentricCRSType]
	ProjectedCRSRefType              = Property[*ProjectedCRSType]
	DerivedCRSRefType                = Property[*DerivedCRSType]
	EngineeringCRSRefType            = Property[*EngineeringCRSType]
	ImageCRSRefType                  = Property[*ImageCRSType]
	TemporalCRSRefType               = Property[*TemporalCRSType]
	CompoundCRSRefType               = Property[*CompoundCRSType]
)
