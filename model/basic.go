package model

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// DoubleList is a whitespace separated list of doubles.
type DoubleList []float64

func (l DoubleList) MarshalText() ([]byte, error) {
	return joinText(l, func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }), nil
}

func (l *DoubleList) UnmarshalText(b []byte) error {
	v, err := splitText(b, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
	*l = v
	return err
}

// IntegerList is a whitespace separated list of integers.
type IntegerList []int64

func (l IntegerList) MarshalText() ([]byte, error) {
	return joinText(l, func(i int64) string { return strconv.FormatInt(i, 10) }), nil
}

func (l *IntegerList) UnmarshalText(b []byte) error {
	v, err := splitText(b, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) })
	*l = v
	return err
}

// BooleanList is a whitespace separated list of booleans.
type BooleanList []bool

func (l BooleanList) MarshalText() ([]byte, error) {
	return joinText(l, strconv.FormatBool), nil
}

func (l *BooleanList) UnmarshalText(b []byte) error {
	v, err := splitText(b, strconv.ParseBool)
	*l = v
	return err
}

var (
	nameRE   = regexp.MustCompile(`^[\p{L}_:][\p{L}\p{M}\p{N}_.:\x{B7}-]*$`)
	ncNameRE = regexp.MustCompile(`^[\p{L}_][\p{L}\p{M}\p{N}_.\x{B7}-]*$`)
	qNameRE  = regexp.MustCompile(`^([\p{L}_][\p{L}\p{M}\p{N}_.\x{B7}-]*:)?[\p{L}_][\p{L}\p{M}\p{N}_.\x{B7}-]*$`)
)

func allMatch(re *regexp.Regexp, items []string) bool {
	for _, s := range items {
		if !re.MatchString(s) {
			return false
		}
	}
	return true
}

// NameList is a whitespace separated list of XML names.
type NameList []string

func (l NameList) MarshalText() ([]byte, error) { return []byte(strings.Join(l, " ")), nil }
func (l *NameList) UnmarshalText(b []byte) error {
	*l = strings.Fields(string(b))
	return nil
}

// IsValid reports whether every item is an XML name
func (l NameList) IsValid() bool { return allMatch(nameRE, l) }

// NCNameList is a whitespace separated list of non-colonised names.
type NCNameList []string

func (l NCNameList) MarshalText() ([]byte, error) { return []byte(strings.Join(l, " ")), nil }
func (l *NCNameList) UnmarshalText(b []byte) error {
	*l = strings.Fields(string(b))
	return nil
}

func (l NCNameList) IsValid() bool { return allMatch(ncNameRE, l) }

// QNameList is a whitespace separated list of qualified names, kept in
// their lexical (prefixed) form.
type QNameList []string

func (l QNameList) MarshalText() ([]byte, error) { return []byte(strings.Join(l, " ")), nil }
func (l *QNameList) UnmarshalText(b []byte) error {
	*l = strings.Fields(string(b))
	return nil
}

func (l QNameList) IsValid() bool { return allMatch(qNameRE, l) }

// OrNull is a list item which holds either a value or a null reason.
type OrNull[T any] struct {
	Value T
	Null  NullEnumeration
}

// IsNull reports whether the item is a null reason
func (o OrNull[T]) IsNull() bool { return o.Null != "" }

func (o OrNull[T]) text() (string, error) {
	if o.IsNull() {
		return string(o.Null), nil
	}
	return formatText(o.Value)
}

func parseOrNull[T any](s string) (OrNull[T], error) {
	var o OrNull[T]
	if n := NullEnumeration(s); n.IsValid() {
		o.Null = n
		return o, nil
	}
	err := parseText(s, &o.Value)
	return o, err
}

// DoubleOrNullList is a list of doubles or null reasons.
type DoubleOrNullList []OrNull[float64]

func (l DoubleOrNullList) MarshalText() ([]byte, error)  { return marshalOrNull(l) }
func (l *DoubleOrNullList) UnmarshalText(b []byte) error { return unmarshalOrNull(b, (*[]OrNull[float64])(l)) }

// IntegerOrNullList is a list of integers or null reasons.
type IntegerOrNullList []OrNull[int64]

func (l IntegerOrNullList) MarshalText() ([]byte, error)  { return marshalOrNull(l) }
func (l *IntegerOrNullList) UnmarshalText(b []byte) error { return unmarshalOrNull(b, (*[]OrNull[int64])(l)) }

// BooleanOrNullList is a list of booleans or null reasons.
type BooleanOrNullList []OrNull[bool]

func (l BooleanOrNullList) MarshalText() ([]byte, error)  { return marshalOrNull(l) }
func (l *BooleanOrNullList) UnmarshalText(b []byte) error { return unmarshalOrNull(b, (*[]OrNull[bool])(l)) }

// NameOrNullList is a list of names or null reasons.
type NameOrNullList []OrNull[string]

func (l NameOrNullList) MarshalText() ([]byte, error)  { return marshalOrNull(l) }
func (l *NameOrNullList) UnmarshalText(b []byte) error { return unmarshalOrNull(b, (*[]OrNull[string])(l)) }

// CountExtentType is a pair of integers (or null reasons) bounding a
// count.
type CountExtentType []OrNull[int64]

func (l CountExtentType) MarshalText() ([]byte, error)  { return marshalOrNull(l) }
func (l *CountExtentType) UnmarshalText(b []byte) error { return unmarshalOrNull(b, (*[]OrNull[int64])(l)) }

func (CountExtentType) isValue() {}

// Integers returns the non-null items of the list
func (l IntegerOrNullList) Integers() []int64 {
	var out []int64
	for _, o := range l {
		if !o.IsNull() {
			out = append(out, o.Value)
		}
	}
	return out
}

func marshalOrNull[T any](l []OrNull[T]) ([]byte, error) {
	parts := make([]string, 0, len(l))
	for _, o := range l {
		s, err := o.text()
		if err != nil {
			return nil, err
		}
		parts = append(parts, s)
	}
	return []byte(strings.Join(parts, " ")), nil
}

func unmarshalOrNull[T any](b []byte, l *[]OrNull[T]) error {
	v, err := splitText(b, parseOrNull[T])
	*l = v
	return err
}

func joinText[T any](items []T, format func(T) string) []byte {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = format(item)
	}
	return []byte(strings.Join(parts, " "))
}

func splitText[T any](b []byte, parse func(string) (T, error)) ([]T, error) {
	fields := strings.Fields(string(b))
	if len(fields) == 0 {
		return nil, nil
	}
	out := make([]T, 0, len(fields))
	for i, f := range fields {
		v, err := parse(f)
		if err != nil {
			return out, errors.Wrapf(err, "list item %d", i+1)
		}
		out = append(out, v)
	}
	return out, nil
}

// Boolean is the gml:Boolean value object.
type Boolean bool

func (Boolean) isValue()       {}
func (Boolean) isScalarValue() {}

// Count is the gml:Count value object.
type Count int64

func (Count) isValue()       {}
func (Count) isScalarValue() {}

// NullType is a null reason or a URI explaining a missing value.
type NullType string

func (NullType) isValue() {}

// IsValid reports whether n is a null reason or a non-empty URI
func (n NullType) IsValid() bool {
	return NullEnumeration(n).IsValid() || (n != "" && !strings.ContainsAny(string(n), " \t\n"))
}

// CodeType is a term, optionally qualified by the dictionary it is
// defined in.
type CodeType struct {
	CodeSpace string `xml:"codeSpace,attr,omitempty"`
	Value     string `xml:",chardata"`
}

func (*CodeType) isValue()       {}
func (*CodeType) isScalarValue() {}

// CodeListType is a list of terms from one code space.
type CodeListType struct {
	CodeSpace string   `xml:"codeSpace,attr,omitempty"`
	Value     NameList `xml:",chardata"`
}

// CodeOrNullListType is a list of terms or null reasons.
type CodeOrNullListType struct {
	CodeSpace string         `xml:"codeSpace,attr,omitempty"`
	Value     NameOrNullList `xml:",chardata"`
}

func (*CodeOrNullListType) isValue() {}

// MeasureType is a number with a unit of measure.
type MeasureType struct {
	UOM   string  `xml:"uom,attr" gml:"occurs=1..1"`
	Value float64 `xml:",chardata"`
}

func (*MeasureType) isValue()       {}
func (*MeasureType) isScalarValue() {}

// MeasureListType is a list of numbers with one unit of measure.
type MeasureListType struct {
	UOM   string     `xml:"uom,attr" gml:"occurs=1..1"`
	Value DoubleList `xml:",chardata"`
}

// MeasureOrNullListType is a list of numbers or null reasons with one
// unit of measure.
type MeasureOrNullListType struct {
	UOM   string           `xml:"uom,attr" gml:"occurs=1..1"`
	Value DoubleOrNullList `xml:",chardata"`
}

func (*MeasureOrNullListType) isValue() {}

// BooleanOrNullListValue is the gml:BooleanList value object.
type BooleanOrNullListValue struct {
	Value BooleanOrNullList `xml:",chardata"`
}

func (*BooleanOrNullListValue) isValue() {}

// CountListValue is the gml:CountList value object.
type CountListValue struct {
	Value IntegerOrNullList `xml:",chardata"`
}

func (*CountListValue) isValue() {}

// StringOrRefType is a string, or a reference to remote text.
type StringOrRefType struct {
	AssociationAttributes
	Value string `xml:",chardata"`
}

// ReferenceType is a property which refers to its value but never
// contains it.
type ReferenceType struct {
	AssociationAttributes
}

// Bounded numeric types of the DMS angle representation.
type (
	ArcMinutesType     int
	ArcSecondsType     float64
	DecimalMinutesType float64
	DegreeValueType    int
)

func (v ArcMinutesType) IsValid() bool     { return v >= 0 && v <= 59 }
func (v ArcSecondsType) IsValid() bool     { return v >= 0 && v < 60 }
func (v DecimalMinutesType) IsValid() bool { return v >= 0 && v < 60 }
func (v DegreeValueType) IsValid() bool    { return v >= 0 && v <= 359 }

// IsValid reports whether the extent has exactly two items
func (l CountExtentType) IsValid() bool { return len(l) == 2 }

// Contains reports whether code is one of the list's terms
func (l *CodeListType) Contains(code string) bool { return slices.Contains(l.Value, code) }
