package model

import "encoding/xml"

// AbstractFeatureType is the base of features.
type AbstractFeatureType struct {
	AbstractGMLType
	BoundedBy        *BoundingShapeType            `xml:"boundedBy"`
	Location         *Property[any]                `xml:"location" gml:"choice=location?"`
	PriorityLocation *PriorityLocationPropertyType `xml:"priorityLocation" gml:"choice=location?"`
}

func (f *AbstractFeatureType) AbstractFeature() *AbstractFeatureType { return f }

// BoundingShapeType is a feature's bounding envelope, or a null reason.
type BoundingShapeType struct {
	Envelope               *EnvelopeType               `xml:"Envelope" gml:"choice=bound"`
	EnvelopeWithTimePeriod *EnvelopeWithTimePeriodType `xml:"EnvelopeWithTimePeriod" gml:"choice=bound"`
	Null                   *NullType                   `xml:"Null" gml:"choice=bound"`
}

// NewBoundingShape returns a bounding shape around env
func NewBoundingShape(env *EnvelopeType) *BoundingShapeType {
	return &BoundingShapeType{Envelope: env}
}

// EnvelopeWithTimePeriodType is an envelope with a time extent.
type EnvelopeWithTimePeriodType struct {
	EnvelopeType
	TimePosition []TimePositionType `xml:"timePosition" gml:"occurs=2..2"`
	Frame        Attr[string]       `xml:"frame,attr"`
}

// FrameValue returns the reference system, DefaultFrame when unset
func (e *EnvelopeWithTimePeriodType) FrameValue() string { return e.Frame.Get(DefaultFrame) }

// LocationPropertyType gives a feature's location as a geometry, a
// keyword, a string or a null reason.
type LocationPropertyType = Property[any]

// LocationKeyWordType is a location given by a term.
type LocationKeyWordType struct {
	CodeType
}

// LocationStringType is a location given as text.
type LocationStringType struct {
	StringOrRefType
}

// PriorityLocationPropertyType is a location with a priority.
type PriorityLocationPropertyType struct {
	Property[any]
	Priority string `xml:"priority,attr,omitempty"`
}

func (p *PriorityLocationPropertyType) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return p.unmarshalWith(d, start, func(attr xml.Attr) error {
		if attr.Name == namePriority {
			p.Priority = attr.Value
		}
		return nil
	})
}

func (p PriorityLocationPropertyType) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return p.marshalWith(e, start, optionalAttrs(xml.Attr{Name: namePriority, Value: p.Priority}))
}

// Feature properties.
type (
	FeaturePropertyType      = Property[Feature]
	FeatureArrayPropertyType = ArrayProperty[Feature]
)

// AbstractFeatureCollectionType is the base of feature collections.
type AbstractFeatureCollectionType struct {
	AbstractFeatureType
	FeatureMember  []Property[Feature]     `xml:"featureMember"`
	FeatureMembers *ArrayProperty[Feature] `xml:"featureMembers"`
}

// Features returns the contained member features, in document order
func (c *AbstractFeatureCollectionType) Features() []Feature {
	var out []Feature
	for _, m := range c.FeatureMember {
		if m.HasValue() {
			out = append(out, m.Value)
		}
	}
	if c.FeatureMembers != nil {
		for _, f := range c.FeatureMembers.Members {
			if !isNil(f) {
				out = append(out, f)
			}
		}
	}
	return out
}

// FeatureCollectionType is a collection of features that is itself a
// feature.
type FeatureCollectionType struct {
	AbstractFeatureCollectionType
}

// DynamicProperties are the time-varying properties of dynamic features.
type DynamicProperties struct {
	ValidTime  *Property[TimePrimitive] `xml:"validTime"`
	History    *HistoryPropertyType     `xml:"history" gml:"choice=history?"`
	Track      *HistoryPropertyType     `xml:"track" gml:"choice=history?"`
	DataSource *StringOrRefType         `xml:"dataSource"`
}

// DynamicFeatureType is a feature whose properties change over time.
type DynamicFeatureType struct {
	AbstractFeatureType
	DynamicProperties
}

// DynamicFeatureCollectionType is a feature collection whose membership
// changes over time.
type DynamicFeatureCollectionType struct {
	FeatureCollectionType
	DynamicProperties
}

// HistoryPropertyType is a sequence of time slices.
type HistoryPropertyType struct {
	TimeSlices []Element[TimeSlice] `xml:",any" gml:"occurs=1..*"`
}

// TrackType is the history of a moving object.
type TrackType = HistoryPropertyType

// AbstractTimeSliceType is the base of time slices: the state of a
// feature during a time.
type AbstractTimeSliceType struct {
	AbstractGMLType
	ValidTime  Property[TimePrimitive] `xml:"validTime" gml:"occurs=1..1"`
	DataSource *StringOrRefType        `xml:"dataSource"`
}

func (s *AbstractTimeSliceType) AbstractTimeSlice() *AbstractTimeSliceType { return s }

// MovingObjectStatusType is the position and motion of a moving object
// during a time.
type MovingObjectStatusType struct {
	AbstractTimeSliceType
	Location     Property[any]          `xml:"location" gml:"occurs=1..1"`
	Speed        *MeasureType           `xml:"speed"`
	Bearing      *DirectionPropertyType `xml:"bearing"`
	Acceleration *MeasureType           `xml:"acceleration"`
	Elevation    *MeasureType           `xml:"elevation"`
	Status       *StringOrRefType       `xml:"status"`
}

// DirectionPropertyType gives a direction as a vector, a compass point,
// a keyword or a string.
type DirectionPropertyType struct {
	AssociationAttributes
	DirectionVector  *DirectionVectorType     `xml:"DirectionVector" gml:"choice=direction?"`
	CompassPoint     *CompassPointEnumeration `xml:"CompassPoint" gml:"choice=direction?"`
	DirectionKeyword *CodeType                `xml:"DirectionKeyword" gml:"choice=direction?"`
	DirectionString  *StringOrRefType         `xml:"DirectionString" gml:"choice=direction?"`
}

// DirectionVectorType is a direction as a vector or as horizontal and
// vertical angles.
type DirectionVectorType struct {
	Vector          *VectorType `xml:"vector" gml:"choice=direction"`
	HorizontalAngle *AngleType  `xml:"horizontalAngle" gml:"choice=direction.angles"`
	VerticalAngle   *AngleType  `xml:"verticalAngle" gml:"choice=direction.angles"`
}

// ObservationType is the act of observing a target.
type ObservationType struct {
	AbstractFeatureType
	ValidTime Property[TimePrimitive] `xml:"validTime" gml:"occurs=1..1"`
	Using     *Property[Feature]      `xml:"using"`
	Target    *Property[Object]       `xml:"target" gml:"choice=target?"`
	Subject   *Property[Object]       `xml:"subject" gml:"choice=target?"`
	ResultOf  Property[any]           `xml:"resultOf" gml:"occurs=1..1"`
}

// TargetPropertyType is the target of an observation: a feature or a
// geometry.
type TargetPropertyType = Property[Object]

// DirectedObservationType is an observation in a direction.
type DirectedObservationType struct {
	ObservationType
	Direction DirectionPropertyType `xml:"direction" gml:"occurs=1..1"`
}

// DirectedObservationAtDistanceType is a directed observation at a
// distance.
type DirectedObservationAtDistanceType struct {
	DirectedObservationType
	Distance MeasureType `xml:"distance" gml:"occurs=1..1"`
}
