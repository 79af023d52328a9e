package model

// CompositeValueType is an aggregate of values.
type CompositeValueType struct {
	AbstractGMLType
	ValueComponent  []Property[Value]     `xml:"valueComponent"`
	ValueComponents *ArrayProperty[Value] `xml:"valueComponents"`
}

func (*CompositeValueType) isValue() {}

// ValueArrayType is a homogeneous array of values sharing a code space
// or unit.
type ValueArrayType struct {
	CompositeValueType
	CodeSpace string `xml:"codeSpace,attr,omitempty"`
	UOM       string `xml:"uom,attr,omitempty"`
}

// CategoryExtentType is a range of categories.
type CategoryExtentType struct {
	CodeOrNullListType
}

// IsValid reports whether the extent has exactly two items
func (e *CategoryExtentType) IsValid() bool { return len(e.Value) == 2 }

// QuantityExtentType is a range of quantities.
type QuantityExtentType struct {
	MeasureOrNullListType
}

// IsValid reports whether the extent has exactly two items
func (e *QuantityExtentType) IsValid() bool { return len(e.Value) == 2 }

// Value properties.
type (
	ValuePropertyType       = Property[Value]
	ValueArrayPropertyType  = ArrayProperty[Value]
	ScalarValuePropertyType = Property[ScalarValue]
	BooleanPropertyType     = Property[*Boolean]
	CategoryPropertyType    = Property[*CodeType]
	QuantityPropertyType    = Property[*MeasureType]
	CountPropertyType       = Property[*Count]
)
