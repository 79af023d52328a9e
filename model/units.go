package model

import "strconv"

// Measures restricting MeasureType to a kind of quantity.
type (
	LengthType     = MeasureType
	ScaleType      = MeasureType
	GridLengthType = MeasureType
	AreaType       = MeasureType
	VolumeType     = MeasureType
	SpeedType      = MeasureType
	AngleType      = MeasureType
	TimeType       = MeasureType
)

// UnitOfMeasureType identifies a unit by reference.
type UnitOfMeasureType struct {
	UOM string `xml:"uom,attr" gml:"occurs=1..1"`
}

// UnitDefinitionType defines a unit of measure.
type UnitDefinitionType struct {
	DefinitionType
	QuantityType  StringOrRefType `xml:"quantityType" gml:"occurs=1..1"`
	CatalogSymbol *CodeType       `xml:"catalogSymbol"`
}

// BaseUnitType is a base unit of a system of units.
type BaseUnitType struct {
	UnitDefinitionType
	UnitsSystem ReferenceType `xml:"unitsSystem" gml:"occurs=1..1"`
}

// DerivedUnitType is a unit defined as a product of powers of other units.
type DerivedUnitType struct {
	UnitDefinitionType
	DerivationUnitTerm []DerivationUnitTermType `xml:"derivationUnitTerm" gml:"occurs=1..*"`
}

// ConventionalUnitType is a unit defined by conversion to a preferred unit.
type ConventionalUnitType struct {
	UnitDefinitionType
	ConversionToPreferredUnit      *ConversionToPreferredUnitType `xml:"conversionToPreferredUnit" gml:"choice=conversion"`
	RoughConversionToPreferredUnit *ConversionToPreferredUnitType `xml:"roughConversionToPreferredUnit" gml:"choice=conversion"`
	DerivationUnitTerm             []DerivationUnitTermType       `xml:"derivationUnitTerm"`
}

// DerivationUnitTermType is a unit raised to an integer exponent.
type DerivationUnitTermType struct {
	UnitOfMeasureType
	Exponent Attr[int] `xml:"exponent,attr"`
}

// ConversionToPreferredUnitType converts values to the preferred unit by
// a factor or a formula.
type ConversionToPreferredUnitType struct {
	UnitOfMeasureType
	Factor  *float64     `xml:"factor" gml:"choice=conversion"`
	Formula *FormulaType `xml:"formula" gml:"choice=conversion"`
}

// FormulaType is the conversion y = (a + b*x) / (c + d*x).
type FormulaType struct {
	A *float64 `xml:"a"`
	B float64  `xml:"b" gml:"occurs=1..1"`
	C float64  `xml:"c" gml:"occurs=1..1"`
	D *float64 `xml:"d"`
}

// Convert applies the formula to x. Unset a and d are zero.
func (f *FormulaType) Convert(x float64) float64 {
	var a, d float64
	if f.A != nil {
		a = *f.A
	}
	if f.D != nil {
		d = *f.D
	}
	return (a + f.B*x) / (f.C + d*x)
}

// AngleChoiceType is an angle as a measure or in degrees, minutes and
// seconds.
type AngleChoiceType struct {
	Angle    *MeasureType  `xml:"angle" gml:"choice=angle"`
	DMSAngle *DMSAngleType `xml:"dmsAngle" gml:"choice=angle"`
}

// DMSAngleType is an angle in degrees with decimal minutes, or minutes
// and seconds.
type DMSAngleType struct {
	Degrees        DegreesType         `xml:"degrees" gml:"occurs=1..1"`
	DecimalMinutes *DecimalMinutesType `xml:"decimalMinutes" gml:"choice=minutes?"`
	Minutes        *ArcMinutesType     `xml:"minutes" gml:"choice=minutes?.dms"`
	Seconds        *ArcSecondsType     `xml:"seconds" gml:"choice=minutes?.dms"`
}

// Decimal returns the angle in decimal degrees, positive north and east.
func (a *DMSAngleType) Decimal() float64 {
	deg := float64(a.Degrees.Value)
	switch {
	case a.DecimalMinutes != nil:
		deg += float64(*a.DecimalMinutes) / 60
	case a.Minutes != nil:
		deg += float64(*a.Minutes) / 60
		if a.Seconds != nil {
			deg += float64(*a.Seconds) / 3600
		}
	}
	switch a.Degrees.Direction {
	case "S", "W", "-":
		return -deg
	}
	return deg
}

// DegreesType is a whole number of degrees with a hemisphere or sign.
type DegreesType struct {
	Direction string          `xml:"direction,attr,omitempty"`
	Value     DegreeValueType `xml:",chardata"`
}

// IsValid reports whether the value and direction are in range
func (d DegreesType) IsValid() bool {
	switch d.Direction {
	case "", "N", "E", "S", "W", "+", "-":
		return d.Value.IsValid()
	}
	return false
}

func (d DegreesType) String() string { return d.Direction + strconv.Itoa(int(d.Value)) }
