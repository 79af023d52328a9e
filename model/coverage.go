package model

import "encoding/xml"

// AbstractCoverageType is the base of coverages: features associating
// values from a range set with positions in a domain.
type AbstractCoverageType struct {
	AbstractFeatureType
	Domain    DomainChoice `xml:",any" gml:"occurs=1..1"`
	RangeSet  RangeSetType `xml:"rangeSet" gml:"occurs=1..1"`
	Dimension Attr[int]    `xml:"dimension,attr"`
}

func (c *AbstractCoverageType) AbstractCoverage() *AbstractCoverageType { return c }

// AbstractDiscreteCoverageType is a coverage over a discrete domain.
type AbstractDiscreteCoverageType struct {
	AbstractCoverageType
	CoverageFunction *CoverageFunctionType `xml:"coverageFunction"`
}

// Discrete coverages.
type (
	MultiPointCoverageType    struct{ AbstractDiscreteCoverageType }
	MultiCurveCoverageType    struct{ AbstractDiscreteCoverageType }
	MultiSurfaceCoverageType  struct{ AbstractDiscreteCoverageType }
	MultiSolidCoverageType    struct{ AbstractDiscreteCoverageType }
	GridCoverageType          struct{ AbstractDiscreteCoverageType }
	RectifiedGridCoverageType struct{ AbstractDiscreteCoverageType }
)

// DomainChoice is the domain of a coverage: a domainSet or one of the
// elements substituting for it.
type DomainChoice struct {
	DomainSet           *Property[Object]
	MultiPointDomain    *Property[*MultiPointType]
	MultiCurveDomain    *Property[*MultiCurveType]
	MultiSurfaceDomain  *Property[*MultiSurfaceType]
	MultiSolidDomain    *Property[*MultiSolidType]
	GridDomain          *Property[*GridType]
	RectifiedGridDomain *Property[*RectifiedGridType]
}

func (c *DomainChoice) fields() []unionField {
	return []unionField{
		{"domainSet", &c.DomainSet},
		{"multiPointDomain", &c.MultiPointDomain},
		{"multiCurveDomain", &c.MultiCurveDomain},
		{"multiSurfaceDomain", &c.MultiSurfaceDomain},
		{"multiSolidDomain", &c.MultiSolidDomain},
		{"gridDomain", &c.GridDomain},
		{"rectifiedGridDomain", &c.RectifiedGridDomain},
	}
}

func (c *DomainChoice) member() (string, any) { return unionMember(c.fields()) }

func (c *DomainChoice) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return unmarshalUnion(d, start, c.fields())
}

func (c DomainChoice) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	return marshalUnion(e, c.fields())
}

// Coverage domain properties.
type (
	DomainSetType           = Property[Object]
	MultiPointDomainType    = Property[*MultiPointType]
	MultiCurveDomainType    = Property[*MultiCurveType]
	MultiSurfaceDomainType  = Property[*MultiSurfaceType]
	MultiSolidDomainType    = Property[*MultiSolidType]
	GridDomainType          = Property[*GridType]
	RectifiedGridDomainType = Property[*RectifiedGridType]
)

// RangeSetType holds the values of a coverage.
type RangeSetType struct {
	ValueArray       []ValueArrayType `xml:"ValueArray" gml:"choice=range"`
	ScalarValueLists ScalarValueLists `xml:",any" gml:"choice=range"`
	DataBlock        *DataBlockType   `xml:"DataBlock" gml:"choice=range"`
	File             *FileType        `xml:"File" gml:"choice=range"`
}

// ScalarValueList is one list of scalar values of a range set.
type ScalarValueList struct {
	BooleanList  *BooleanOrNullListValue
	CategoryList *CodeOrNullListType
	CountList    *CountListValue
	QuantityList *MeasureOrNullListType
}

func (c *ScalarValueList) fields() []unionField {
	return []unionField{
		{"BooleanList", &c.BooleanList},
		{"CategoryList", &c.CategoryList},
		{"CountList", &c.CountList},
		{"QuantityList", &c.QuantityList},
	}
}

func (c *ScalarValueList) member() (string, any) { return unionMember(c.fields()) }

func (c *ScalarValueList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return unmarshalUnion(d, start, c.fields())
}

func (c ScalarValueList) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	return marshalUnion(e, c.fields())
}

// ScalarValueLists is the ordered scalar value lists of a range set.
type ScalarValueLists []ScalarValueList

// Len returns the total number of values in all lists
func (l ScalarValueLists) Len() int {
	n := 0
	for _, c := range l {
		switch {
		case c.BooleanList != nil:
			n += len(c.BooleanList.Value)
		case c.CategoryList != nil:
			n += len(c.CategoryList.Value)
		case c.CountList != nil:
			n += len(c.CountList.Value)
		case c.QuantityList != nil:
			n += len(c.QuantityList.Value)
		}
	}
	return n
}

// DataBlockType is a range set encoded as a block of tuples.
type DataBlockType struct {
	RangeParameters       Property[Value]  `xml:"rangeParameters" gml:"occurs=1..1"`
	TupleList             *CoordinatesType `xml:"tupleList" gml:"choice=tuples"`
	DoubleOrNullTupleList DoubleOrNullList `xml:"doubleOrNullTupleList,omitempty" gml:"choice=tuples"`
}

// RangeParametersType describes the values of a range set.
type RangeParametersType = Property[Value]

// FileType is a range set held in an external file.
type FileType struct {
	RangeParameters Property[Value]    `xml:"rangeParameters" gml:"occurs=1..1"`
	FileName        string             `xml:"fileName" gml:"occurs=1..1"`
	FileStructure   FileValueModelType `xml:"fileStructure" gml:"occurs=1..1"`
	MimeType        string             `xml:"mimeType,omitempty"`
	Compression     string             `xml:"compression,omitempty"`
}

// CoverageFunctionType maps domain positions to range values.
type CoverageFunctionType struct {
	MappingRule  *StringOrRefType  `xml:"MappingRule" gml:"choice=function"`
	GridFunction *GridFunctionType `xml:"GridFunction" gml:"choice=function"`
	IndexMap     *IndexMapType     `xml:"IndexMap" gml:"choice=function"`
}

// GridFunctionType maps grid points to range values in sequence.
type GridFunctionType struct {
	SequenceRule *SequenceRuleType `xml:"sequenceRule"`
	StartPoint   IntegerList       `xml:"startPoint,omitempty"`
}

// IndexMapType maps grid points to range values through a lookup table.
type IndexMapType struct {
	GridFunctionType
	LookUpTable IntegerList `xml:"lookUpTable,omitempty" gml:"occurs=1..1"`
}

// SequenceRuleType is the order in which grid points are enumerated.
type SequenceRuleType struct {
	Order Attr[IncrementOrder] `xml:"order,attr"`
	Value SequenceRuleNames    `xml:",chardata"`
}
