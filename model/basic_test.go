package model

import (
	"bytes"
	"encoding/xml"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andaru/gml/xmlutil"
)

// marshalAs encodes v as the GML element local.
func marshalAs(v any, local string) ([]byte, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	if err := enc.EncodeElement(v, xml.StartElement{Name: xmlutil.GMLName(local)}); err != nil {
		return nil, err
	}
	err := enc.Flush()
	return buf.Bytes(), err
}

func TestTextListRoundTrip(t *testing.T) {
	f := fuzz.New().NilChance(0)
	for i := 0; i < 500; i++ {
		var doubles DoubleList
		f.Fuzz(&doubles)
		b, err := doubles.MarshalText()
		require.NoError(t, err)
		var doublesBack DoubleList
		require.NoError(t, doublesBack.UnmarshalText(b))
		require.Equal(t, doubles, doublesBack, string(b))

		var ints IntegerList
		f.Fuzz(&ints)
		b, err = ints.MarshalText()
		require.NoError(t, err)
		var intsBack IntegerList
		require.NoError(t, intsBack.UnmarshalText(b))
		require.Equal(t, ints, intsBack, string(b))

		var bools BooleanList
		f.Fuzz(&bools)
		b, err = bools.MarshalText()
		require.NoError(t, err)
		var boolsBack BooleanList
		require.NoError(t, boolsBack.UnmarshalText(b))
		require.Equal(t, bools, boolsBack, string(b))
	}
}

func TestTextLists(t *testing.T) {
	for _, tc := range []struct {
		input   string
		list    interface{ UnmarshalText([]byte) error }
		want    any
		wantErr bool
	}{
		{input: "", list: new(DoubleList), want: new(DoubleList)},
		{input: "  1.5\n -2 3e2\t", list: new(DoubleList), want: &DoubleList{1.5, -2, 300}},
		{input: "1 x 3", list: new(DoubleList), wantErr: true},
		{input: "7 -8", list: new(IntegerList), want: &IntegerList{7, -8}},
		{input: "true 0 false", list: new(BooleanList), want: &BooleanList{true, false, false}},
		{input: "a b:c", list: new(QNameList), want: &QNameList{"a", "b:c"}},
		{
			input: "1.5 missing other:sensor 2",
			list:  new(DoubleOrNullList),
			want: &DoubleOrNullList{
				{Value: 1.5},
				{Null: NullMissing},
				{Null: "other:sensor"},
				{Value: 2},
			},
		},
		{input: "3 withheld", list: new(CountExtentType), want: &CountExtentType{{Value: 3}, {Null: NullWithheld}}},
		{input: "other:x", list: new(IntegerOrNullList), wantErr: true},
	} {
		t.Run(tc.input, func(t *testing.T) {
			a := assert.New(t)
			err := tc.list.UnmarshalText([]byte(tc.input))
			if tc.wantErr {
				a.Error(err)
				return
			}
			a.NoError(err)
			a.Equal(tc.want, tc.list)
		})
	}
}

func TestOrNullListMarshal(t *testing.T) {
	a := assert.New(t)
	l := DoubleOrNullList{{Value: 0.25}, {Null: NullInapplicable}}
	b, err := l.MarshalText()
	a.NoError(err)
	a.Equal("0.25 inapplicable", string(b))

	ext := CountExtentType{{Value: 1}, {Value: 9}}
	a.True(ext.IsValid())
	a.False(CountExtentType{{Value: 1}}.IsValid())

	counts := IntegerOrNullList{{Value: 4}, {Null: NullUnknown}, {Value: 5}}
	a.Equal([]int64{4, 5}, counts.Integers())
}

func TestEnumerations(t *testing.T) {
	a := assert.New(t)
	a.True(SignPositive.IsValid())
	a.False(SignType("*").IsValid())
	a.True(KnotTypesType("piecewiseBezier").IsValid())
	a.False(KnotTypesType("bezier").IsValid())
	a.True(NullEnumeration("other:reason").IsValid())
	a.False(NullEnumeration("other:x").IsValid())
	a.False(NullEnumeration("absent").IsValid())
	a.True(TimeUnitType("second").IsValid())
	a.True(TimeUnitType("other:fortnight").IsValid())
	a.False(TimeUnitType("fortnight").IsValid())
	a.True(NullType("http://example.com/why").IsValid())
	a.False(NullType("not a uri").IsValid())

	// decoding is lax: unknown literals are preserved
	var s SignType
	a.NoError(s.UnmarshalText([]byte(" * ")))
	a.Equal(SignType("*"), s)
}

func TestBoundedNumbers(t *testing.T) {
	a := assert.New(t)
	a.True(ArcMinutesType(59).IsValid())
	a.False(ArcMinutesType(60).IsValid())
	a.True(ArcSecondsType(59.99).IsValid())
	a.False(ArcSecondsType(60).IsValid())
	a.False(DecimalMinutesType(-0.5).IsValid())
	a.True(DegreeValueType(359).IsValid())
	a.False(DegreeValueType(360).IsValid())
}

func TestCodeList(t *testing.T) {
	a := assert.New(t)
	var c CodeListType
	a.NoError(xml.Unmarshal([]byte(`<CategoryList codeSpace="urn:x">red green</CategoryList>`), &c))
	a.Equal("urn:x", c.CodeSpace)
	a.True(c.Contains("green"))
	a.False(c.Contains("blue"))
}

func TestLexicalValues(t *testing.T) {
	for _, tc := range []struct {
		name  string
		value interface{ IsValid() bool }
		want  bool
	}{
		{name: "other reason in greek", value: NullEnumeration("other:αιτία"), want: true},
		{name: "other unit with digits", value: TimeUnitType("other:2weeks"), want: true},
		{name: "other reason with punctuation", value: NullEnumeration("other:a-b"), want: false},
		{name: "ncnames", value: NCNameList{"Lat", "Long", "höhe"}, want: true},
		{name: "ncname with colon", value: NCNameList{"gml:x"}, want: false},
		{name: "ncname starting with digit", value: NCNameList{"1st"}, want: false},
		{name: "names", value: NameList{"a:b", "_c.d", "e-f"}, want: true},
		{name: "name with slash", value: NameList{"m/s"}, want: false},
		{name: "qnames", value: QNameList{"a", "gml:Point"}, want: true},
		{name: "qname with two colons", value: QNameList{"a:b:c"}, want: false},
		{name: "empty list", value: NCNameList{}, want: true},
		{name: "date", value: TimePositionType{Value: "2001-01-01"}, want: true},
		{name: "year month", value: TimePositionType{Value: "2001-02"}, want: true},
		{name: "year", value: TimePositionType{Value: "-0044"}, want: true},
		{name: "date time", value: TimePositionType{Value: "2001-01-01T12:30:00.5+01:00"}, want: true},
		{name: "time", value: TimePositionType{Value: "12:30:00Z"}, want: true},
		{name: "decimal", value: TimePositionType{Value: "1.5e0"}, want: false},
		{name: "ordinal", value: TimePositionType{Value: "-12.5"}, want: true},
		{name: "uri", value: TimePositionType{Value: "urn:era:jurassic"}, want: true},
		{name: "fragment", value: TimePositionType{Value: "#t1"}, want: true},
		{name: "month out of range", value: TimePositionType{Value: "2001-13-01"}, want: false},
		{name: "date time without seconds", value: TimePositionType{Value: "2001-01-01T12:30"}, want: false},
		{name: "word", value: TimePositionType{Value: "yesterday"}, want: false},
		{name: "empty", value: TimePositionType{}, want: false},
		{name: "indeterminate", value: TimePositionType{IndeterminatePosition: "now"}, want: true},
		{name: "calendar date", value: CalDate("1066-10-14"), want: true},
		{name: "calendar date with time", value: CalDate("1066-10-14T09:00:00"), want: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.value.IsValid())
		})
	}
}
