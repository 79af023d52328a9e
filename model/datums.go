package model

// AbstractDatumBaseType is a datum definition named by datumName.
type AbstractDatumBaseType struct {
	DefinitionType
	DatumName CodeType `xml:"datumName" gml:"occurs=1..1"`
}

// AbstractDatumType is the base of datums: the relationship of a
// coordinate system to the earth or another object.
type AbstractDatumType struct {
	AbstractDatumBaseType
	DatumID          []IdentifierType `xml:"datumID"`
	Remarks          *StringOrRefType `xml:"remarks"`
	AnchorPoint      *CodeType        `xml:"anchorPoint"`
	RealizationEpoch string           `xml:"realizationEpoch,omitempty"`
	ValidArea        *ExtentType      `xml:"validArea"`
	Scope            string           `xml:"scope,omitempty"`
}

func (d *AbstractDatumType) AbstractDatum() *AbstractDatumType { return d }

// EngineeringDatumType is a local datum.
type EngineeringDatumType struct {
	AbstractDatumType
}

// ImageDatumType is an engineering datum for images.
type ImageDatumType struct {
	AbstractDatumType
	PixelInCell PixelInCellType `xml:"pixelInCell" gml:"occurs=1..1"`
}

// PixelInCellType is the position of a grid point within a cell.
type PixelInCellType struct {
	CodeType
}

// VerticalDatumType is the reference of heights or depths.
type VerticalDatumType struct {
	AbstractDatumType
	DatumType *VerticalDatumTypeType `xml:"verticalDatumType"`
}

// VerticalDatumTypeType is the kind of a vertical datum.
type VerticalDatumTypeType struct {
	CodeType
}

// TemporalDatumType is the origin of a temporal CRS.
type TemporalDatumType struct {
	AbstractDatumType
	Origin string `xml:"origin" gml:"occurs=1..1"`
}

// GeodeticDatumType relates a geographic or geocentric CRS to the earth.
type GeodeticDatumType struct {
	AbstractDatumType
	UsesPrimeMeridian Property[*PrimeMeridianType] `xml:"usesPrimeMeridian" gml:"occurs=1..1"`
	UsesEllipsoid     Property[*EllipsoidType]     `xml:"usesEllipsoid" gml:"occurs=1..1"`
}

// PrimeMeridianBaseType is a prime meridian definition named by
// meridianName.
type PrimeMeridianBaseType struct {
	DefinitionType
	MeridianName CodeType `xml:"meridianName" gml:"occurs=1..1"`
}

// PrimeMeridianType is the origin of longitudes.
type PrimeMeridianType struct {
	PrimeMeridianBaseType
	MeridianID         []IdentifierType `xml:"meridianID"`
	Remarks            *StringOrRefType `xml:"remarks"`
	GreenwichLongitude AngleChoiceType  `xml:"greenwichLongitude" gml:"occurs=1..1"`
}

// EllipsoidBaseType is an ellipsoid definition named by ellipsoidName.
type EllipsoidBaseType struct {
	DefinitionType
	EllipsoidName CodeType `xml:"ellipsoidName" gml:"occurs=1..1"`
}

// EllipsoidType is a geometric figure approximating the earth.
type EllipsoidType struct {
	EllipsoidBaseType
	EllipsoidID             []IdentifierType            `xml:"ellipsoidID"`
	Remarks                 *StringOrRefType            `xml:"remarks"`
	SemiMajorAxis           MeasureType                 `xml:"semiMajorAxis" gml:"occurs=1..1"`
	SecondDefiningParameter SecondDefiningParameterType `xml:"secondDefiningParameter" gml:"occurs=1..1"`
}

// SecondDefiningParameterType completes the definition of an ellipsoid.
type SecondDefiningParameterType struct {
	InverseFlattening *MeasureType  `xml:"inverseFlattening" gml:"choice=parameter"`
	SemiMinorAxis     *LengthType   `xml:"semiMinorAxis" gml:"choice=parameter"`
	IsSphere          *IsSphereType `xml:"isSphere" gml:"choice=parameter"`
}

// Datum properties.
type (
	DatumRefType            = Property[Datum]
	EngineeringDatumRefType = Property[*EngineeringDatumType]
	ImageDatumRefType       = Property[*ImageDatumType]
	VerticalDatumRefType    = Property[*VerticalDatumType]
	TemporalDatumRefType    = Property[*TemporalDatumType]
	GeodeticDatumRefType    = Property[*GeodeticDatumType]
	PrimeMeridianRefType    = Property[*PrimeMeridianType]
	EllipsoidRefType        = Property[*EllipsoidType]
)
