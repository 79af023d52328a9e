package model

// AbstractStyleType is the base of styles.
type AbstractStyleType struct {
	AbstractGMLType
}

func (s *AbstractStyleType) AbstractStyle() *AbstractStyleType { return s }

// DefaultStylePropertyType contains or refers to a style.
type DefaultStylePropertyType = Property[Style]

// StyleType is the default style of a set of features.
type StyleType struct {
	AbstractStyleType
	FeatureStyle []Property[*FeatureStyleType] `xml:"featureStyle" gml:"occurs=1..*"`
	GraphStyle   *Property[*GraphStyleType]    `xml:"graphStyle"`
}

// BaseStyleDescriptorType is the base of style descriptors: a resolution,
// variations and SMIL animations.
type BaseStyleDescriptorType struct {
	AbstractGMLType
	SpatialResolution *ScaleType           `xml:"spatialResolution"`
	StyleVariation    []StyleVariationType `xml:"styleVariation"`
	Animate           []RawElement         `xml:"http://www.w3.org/2001/SMIL20/ animate"`
	AnimateMotion     []RawElement         `xml:"http://www.w3.org/2001/SMIL20/ animateMotion"`
	AnimateColor      []RawElement         `xml:"http://www.w3.org/2001/SMIL20/ animateColor"`
	Set               []RawElement         `xml:"http://www.w3.org/2001/SMIL20/ set"`
}

// FeatureStyleType styles the features of one type.
type FeatureStyleType struct {
	AbstractGMLType
	FeatureConstraint string                         `xml:"featureConstraint,omitempty"`
	GeometryStyle     []Property[*GeometryStyleType] `xml:"geometryStyle"`
	TopologyStyle     []Property[*TopologyStyleType] `xml:"topologyStyle"`
	LabelStyle        *Property[*LabelStyleType]     `xml:"labelStyle"`
	FeatureType       string                         `xml:"featureType,attr,omitempty"`
	BaseType          string                         `xml:"baseType,attr,omitempty"`
	QueryGrammar      QueryGrammarEnumeration        `xml:"queryGrammar,attr,omitempty"`
}

// GeometryStyleType styles a geometry property.
type GeometryStyleType struct {
	BaseStyleDescriptorType
	Symbol           *SymbolType                `xml:"symbol" gml:"choice=symbol"`
	Style            string                     `xml:"style,omitempty" gml:"choice=symbol"`
	LabelStyle       *Property[*LabelStyleType] `xml:"labelStyle"`
	GeometryProperty string                     `xml:"geometryProperty,attr,omitempty"`
	GeometryType     string                     `xml:"geometryType,attr,omitempty"`
}

// TopologyStyleType styles a topology property.
type TopologyStyleType struct {
	BaseStyleDescriptorType
	Symbol           *SymbolType                `xml:"symbol" gml:"choice=symbol"`
	Style            string                     `xml:"style,omitempty" gml:"choice=symbol"`
	LabelStyle       *Property[*LabelStyleType] `xml:"labelStyle"`
	TopologyProperty string                     `xml:"topologyProperty,attr,omitempty"`
	TopologyType     string                     `xml:"topologyType,attr,omitempty"`
}

// LabelStyleType styles the labels of a feature.
type LabelStyleType struct {
	BaseStyleDescriptorType
	Style string    `xml:"style" gml:"occurs=1..1"`
	Label LabelType `xml:"label" gml:"occurs=1..1"`
}

// GraphStyleType styles a graph of topology primitives.
type GraphStyleType struct {
	BaseStyleDescriptorType
	Planar            *bool                  `xml:"planar"`
	Directed          *bool                  `xml:"directed"`
	Grid              *bool                  `xml:"grid"`
	MinDistance       *float64               `xml:"minDistance"`
	MinAngle          *float64               `xml:"minAngle"`
	GraphType         *GraphTypeType         `xml:"graphType"`
	DrawingType       *DrawingTypeType       `xml:"drawingType"`
	LineType          *LineTypeType          `xml:"lineType"`
	AestheticCriteria []AesheticCriteriaType `xml:"aestheticCriteria"`
}

// SymbolType is a graphic symbol, given inline or by reference.
type SymbolType struct {
	AssociationAttributes
	Kind      SymbolTypeEnumeration `xml:"symbolType,attr" gml:"occurs=1..1"`
	Transform string                `xml:"transform,attr,omitempty"`
	Content   string                `xml:",innerxml"`
}

// LabelType is label text with embedded feature property expressions.
type LabelType struct {
	Transform string `xml:"transform,attr,omitempty"`
	Content   string `xml:",innerxml"`
}

// StyleVariationType varies a style property over a range of feature
// property values.
type StyleVariationType struct {
	StyleProperty        string `xml:"styleProperty,attr" gml:"occurs=1..1"`
	FeaturePropertyRange string `xml:"featurePropertyRange,attr,omitempty"`
	Value                string `xml:",chardata"`
}

// Style properties.
type (
	FeatureStylePropertyType  = Property[*FeatureStyleType]
	GeometryStylePropertyType = Property[*GeometryStyleType]
	TopologyStylePropertyType = Property[*TopologyStyleType]
	LabelStylePropertyType    = Property[*LabelStyleType]
	GraphStylePropertyType    = Property[*GraphStyleType]
)
