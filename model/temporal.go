package model

import (
	"encoding/xml"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DefaultFrame is the default temporal reference system of positions and
// geometric time primitives.
const DefaultFrame = "#ISO-8601"

// AbstractTimeObjectType is the base of time objects.
type AbstractTimeObjectType struct {
	AbstractGMLType
}

func (t *AbstractTimeObjectType) AbstractTimeObject() *AbstractTimeObjectType { return t }
func (*AbstractTimeObjectType) isValue()                                     {}

// AbstractTimePrimitiveType is the base of time primitives.
type AbstractTimePrimitiveType struct {
	AbstractTimeObjectType
	RelatedTime []RelatedTimeType `xml:"relatedTime"`
}

func (t *AbstractTimePrimitiveType) AbstractTimePrimitive() *AbstractTimePrimitiveType { return t }

// AbstractTimeComplexType is the base of time complexes.
type AbstractTimeComplexType struct {
	AbstractTimeObjectType
}

func (t *AbstractTimeComplexType) AbstractTimeComplex() *AbstractTimeComplexType { return t }

// AbstractTimeGeometricPrimitiveType is the base of instants and periods.
type AbstractTimeGeometricPrimitiveType struct {
	AbstractTimePrimitiveType
	Frame Attr[string] `xml:"frame,attr"`
}

func (t *AbstractTimeGeometricPrimitiveType) AbstractTimeGeometricPrimitive() *AbstractTimeGeometricPrimitiveType {
	return t
}

// FrameValue returns the reference system, DefaultFrame when unset
func (t *AbstractTimeGeometricPrimitiveType) FrameValue() string { return t.Frame.Get(DefaultFrame) }

// TimeInstantType is a position in time.
type TimeInstantType struct {
	AbstractTimeGeometricPrimitiveType
	TimePosition TimePositionType `xml:"timePosition" gml:"occurs=1..1"`
}

// TimePeriodType is an extent in time between two instants.
type TimePeriodType struct {
	AbstractTimeGeometricPrimitiveType
	BeginPosition *TimePositionType           `xml:"beginPosition" gml:"choice=begin"`
	Begin         *Property[*TimeInstantType] `xml:"begin" gml:"choice=begin"`
	EndPosition   *TimePositionType           `xml:"endPosition" gml:"choice=end"`
	End           *Property[*TimeInstantType] `xml:"end" gml:"choice=end"`
	Duration      string                      `xml:"duration,omitempty" gml:"choice=length?"`
	TimeInterval  *TimeIntervalLengthType     `xml:"timeInterval" gml:"choice=length?"`
}

// TimePositionType is a position in time in a temporal reference system,
// or an indeterminate position.
type TimePositionType struct {
	Frame                 Attr[string]               `xml:"frame,attr"`
	CalendarEraName       string                     `xml:"calendarEraName,attr,omitempty"`
	IndeterminatePosition TimeIndeterminateValueType `xml:"indeterminatePosition,attr,omitempty"`
	Value                 string                     `xml:",chardata"`
}

// FrameValue returns the reference system, DefaultFrame when unset
func (p *TimePositionType) FrameValue() string { return p.Frame.Get(DefaultFrame) }

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02Z07:00",
	"2006-01-02",
	"2006-01",
	"2006",
}

// Time parses the position as an ISO 8601 date or date-time. It fails for
// other frames and indeterminate positions without a value.
func (p *TimePositionType) Time() (time.Time, error) {
	if f := p.FrameValue(); f != DefaultFrame {
		return time.Time{}, errors.Errorf("time position in frame %q is not ISO 8601", f)
	}
	v := strings.TrimSpace(p.Value)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("time position %q is not an ISO 8601 date or date-time", v)
}

func (p TimePositionType) String() string { return p.Value }

const (
	lexDate  = `-?\d{4,}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])`
	lexClock = `([01]\d|2[0-3]):[0-5]\d:[0-5]\d(\.\d+)?`
	lexZone  = `(Z|[+-](0\d|1[0-4]):[0-5]\d)?`
)

var (
	calDateRE  = regexp.MustCompile(`^-?\d{4,}(-(0[1-9]|1[0-2])(-(0[1-9]|[12]\d|3[01]))?)?` + lexZone + `$`)
	dateTimeRE = regexp.MustCompile(`^` + lexDate + `T` + lexClock + lexZone + `$`)
	clockRE    = regexp.MustCompile(`^` + lexClock + lexZone + `$`)
	decimalRE  = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)
)

// IsValid reports whether the position is a calendar date, date-time,
// time, decimal or absolute URI. It may be empty only when it is
// indeterminate.
func (p TimePositionType) IsValid() bool {
	v := strings.TrimSpace(p.Value)
	switch {
	case v == "":
		return p.IndeterminatePosition != ""
	case CalDate(v).IsValid(), dateTimeRE.MatchString(v), clockRE.MatchString(v), decimalRE.MatchString(v):
		return true
	case strings.ContainsAny(v, " \t\n\r"):
		return false
	}
	u, err := url.Parse(v)
	return err == nil && (u.Scheme != "" || strings.HasPrefix(v, "#"))
}

// CalDate is a calendar date of year, year and month, or year, month and
// day precision.
type CalDate string

// IsValid reports whether d is an xs:date, xs:gYearMonth or xs:gYear
func (d CalDate) IsValid() bool { return calDateRE.MatchString(strings.TrimSpace(string(d))) }

// NewTimePosition returns an ISO 8601 time position for t
func NewTimePosition(t time.Time) TimePositionType {
	return TimePositionType{Value: t.Format(time.RFC3339Nano)}
}

// TimeIntervalLengthType is a length of time in a unit, optionally
// expressed as value * radix^-factor.
type TimeIntervalLengthType struct {
	Unit   TimeUnitType `xml:"unit,attr" gml:"occurs=1..1"`
	Radix  Attr[int]    `xml:"radix,attr"`
	Factor Attr[int]    `xml:"factor,attr"`
	Value  float64      `xml:",chardata"`
}

// RelatedTimeType relates a time primitive to another one.
type RelatedTimeType struct {
	Property[TimePrimitive]
	RelativePosition RelativePositionType `xml:"relativePosition,attr,omitempty"`
}

var nameRelativePosition = xml.Name{Local: "relativePosition"}

func (p *RelatedTimeType) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return p.unmarshalWith(d, start, func(attr xml.Attr) error {
		if attr.Name == nameRelativePosition {
			return p.RelativePosition.UnmarshalText([]byte(attr.Value))
		}
		return nil
	})
}

func (p RelatedTimeType) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return p.marshalWith(e, start, optionalAttrs(xml.Attr{Name: nameRelativePosition, Value: string(p.RelativePosition)}))
}

// Temporal properties.
type (
	TimePrimitivePropertyType          = Property[TimePrimitive]
	TimeGeometricPrimitivePropertyType = Property[TimeGeometricPrimitive]
	TimeInstantPropertyType            = Property[*TimeInstantType]
	TimePeriodPropertyType             = Property[*TimePeriodType]
)

// AbstractTimeTopologyPrimitiveType is the base of time nodes and edges.
type AbstractTimeTopologyPrimitiveType struct {
	AbstractTimePrimitiveType
	Complex *ReferenceType `xml:"complex"`
}

func (t *AbstractTimeTopologyPrimitiveType) AbstractTimeTopologyPrimitive() *AbstractTimeTopologyPrimitiveType {
	return t
}

// TimeTopologyComplexType is a connected set of time nodes and edges.
type TimeTopologyComplexType struct {
	AbstractTimeComplexType
	Primitive []Property[TimeTopologyPrimitive] `xml:"primitive" gml:"occurs=1..*"`
}

// TimeNodeType is a zero-dimensional temporal topology primitive.
type TimeNodeType struct {
	AbstractTimeTopologyPrimitiveType
	PreviousEdge []Property[*TimeEdgeType]   `xml:"previousEdge"`
	NextEdge     []Property[*TimeEdgeType]   `xml:"nextEdge"`
	Position     *Property[*TimeInstantType] `xml:"position"`
}

// TimeEdgeType is a one-dimensional temporal topology primitive.
type TimeEdgeType struct {
	AbstractTimeTopologyPrimitiveType
	Start  Property[*TimeNodeType]    `xml:"start" gml:"occurs=1..1"`
	End    Property[*TimeNodeType]    `xml:"end" gml:"occurs=1..1"`
	Extent *Property[*TimePeriodType] `xml:"extent"`
}

// Temporal topology properties.
type (
	TimeTopologyPrimitivePropertyType = Property[TimeTopologyPrimitive]
	TimeTopologyComplexPropertyType   = Property[*TimeTopologyComplexType]
	TimeNodePropertyType              = Property[*TimeNodeType]
	TimeEdgePropertyType              = Property[*TimeEdgeType]
)

// AbstractTimeReferenceSystemType is the base of temporal reference
// systems.
type AbstractTimeReferenceSystemType struct {
	DefinitionType
	DomainOfValidity string `xml:"domainOfValidity" gml:"occurs=1..1"`
}

func (t *AbstractTimeReferenceSystemType) AbstractTimeReferenceSystem() *AbstractTimeReferenceSystemType {
	return t
}

// TimeCoordinateSystemType measures time as a count of intervals from an
// origin.
type TimeCoordinateSystemType struct {
	AbstractTimeReferenceSystemType
	OriginPosition *TimePositionType           `xml:"originPosition" gml:"choice=origin"`
	Origin         *Property[*TimeInstantType] `xml:"origin" gml:"choice=origin"`
	Interval       TimeIntervalLengthType      `xml:"interval" gml:"occurs=1..1"`
}

// TimeOrdinalReferenceSystemType is an ordered set of named eras.
type TimeOrdinalReferenceSystemType struct {
	AbstractTimeReferenceSystemType
	Component []Property[*TimeOrdinalEraType] `xml:"component" gml:"occurs=1..*"`
}

// TimeOrdinalEraType is one era of an ordinal reference system.
type TimeOrdinalEraType struct {
	DefinitionType
	RelatedTime []RelatedTimeType               `xml:"relatedTime"`
	Start       *Property[*TimeNodeType]        `xml:"start"`
	End         *Property[*TimeNodeType]        `xml:"end"`
	Extent      *Property[*TimePeriodType]      `xml:"extent"`
	Member      []Property[*TimeOrdinalEraType] `xml:"member"`
}

// TimeCalendarType is a calendar: a set of eras.
type TimeCalendarType struct {
	AbstractTimeReferenceSystemType
	ReferenceFrame []Property[*TimeCalendarEraType] `xml:"referenceFrame" gml:"occurs=1..*"`
}

// TimeCalendarEraType is a calendar era anchored at a reference event.
type TimeCalendarEraType struct {
	DefinitionType
	ReferenceEvent  StringOrRefType           `xml:"referenceEvent" gml:"occurs=1..1"`
	ReferenceDate   CalDate                   `xml:"referenceDate" gml:"occurs=1..1"`
	JulianReference float64                   `xml:"julianReference" gml:"occurs=1..1"`
	EpochOfUse      Property[*TimePeriodType] `xml:"epochOfUse" gml:"occurs=1..1"`
}

// TimeClockType is a clock: a system for measuring time within a day.
type TimeClockType struct {
	AbstractTimeReferenceSystemType
	ReferenceEvent StringOrRefType               `xml:"referenceEvent" gml:"occurs=1..1"`
	ReferenceTime  string                        `xml:"referenceTime" gml:"occurs=1..1"`
	UTCReference   string                        `xml:"utcReference" gml:"occurs=1..1"`
	DateBasis      []Property[*TimeCalendarType] `xml:"dateBasis"`
}

// Temporal reference system properties.
type (
	TimeOrdinalEraPropertyType  = Property[*TimeOrdinalEraType]
	TimeCalendarEraPropertyType = Property[*TimeCalendarEraType]
	TimeCalendarPropertyType    = Property[*TimeCalendarType]
	TimeClockPropertyType       = Property[*TimeClockType]
)
