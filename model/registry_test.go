package model

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andaru/gml/xmlutil"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		name xml.Name
		want any
	}{
		{name: xmlutil.GMLName("Point"), want: &PointType{}},
		{name: xml.Name{Local: "Point"}, want: &PointType{}},
		{name: xmlutil.GMLName("Edge"), want: &EdgeType{}},
		{name: xmlutil.GMLName("DefinitionCollection"), want: &DictionaryType{}},
		{name: xmlutil.GMLName("Boolean"), want: new(Boolean)},
		{name: xmlutil.GMLName("parameterValueGroup"), want: &ParameterValueGroupType{}},
		{name: xmlutil.GMLName("Pointy")},
		{name: xml.Name{Space: "urn:other", Local: "Point"}},
	} {
		t.Run(tc.name.Local, func(t *testing.T) {
			a := assert.New(t)
			got, ok := New(tc.name)
			a.Equal(tc.want != nil, ok)
			a.Equal(tc.want, got)
		})
	}
}

func TestElementName(t *testing.T) {
	for _, tc := range []struct {
		v    any
		want string
	}{
		{v: &PointType{}, want: "Point"},
		{v: &DictionaryType{}, want: "Dictionary"},
		{v: &MeasureType{}, want: "Quantity"},
		{v: &CodeType{}, want: "Category"},
		{v: &LocationKeyWordType{}, want: "LocationKeyWord"},
		{v: &CovarianceMatrixType{}, want: "covarianceMatrix"},
		{v: &GenericFeature{RawElement: RawElement{XMLName: xml.Name{Space: "urn:app", Local: "Road"}}}, want: "Road"},
		{v: PointType{}},
		{v: &AbstractFeatureType{}},
	} {
		a := assert.New(t)
		name, ok := ElementName(tc.v)
		a.Equal(tc.want != "", ok, "%T", tc.v)
		a.Equal(tc.want, name.Local, "%T", tc.v)
	}
}

type roadType struct {
	AbstractFeatureType
	Lanes int `xml:"lanes"`
}

func TestRegister(t *testing.T) {
	a := assert.New(t)
	name := xml.Name{Space: "urn:test:register", Local: "Road"}
	Register(name, func() any { return new(roadType) })

	v, ok := New(name)
	a.True(ok)
	a.IsType(&roadType{}, v)
	got, ok := ElementName(v)
	a.True(ok)
	a.Equal(name, got)
	a.Contains(Elements(), name)

	a.Panics(func() { Register(name, func() any { return new(roadType) }) }, "duplicate")
	a.Panics(func() { Register(xml.Name{Local: "value"}, func() any { return roadType{} }) }, "not a pointer")
}

func TestElementsSorted(t *testing.T) {
	names := Elements()
	assert.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		prev, cur := names[i-1], names[i]
		ordered := prev.Space < cur.Space || (prev.Space == cur.Space && prev.Local < cur.Local)
		assert.True(t, ordered, "%v before %v", prev, cur)
	}
}

func TestRegisteredElementsDecode(t *testing.T) {
	// every registered GML element decodes from its empty form
	for _, name := range Elements() {
		if name.Space != xmlutil.NSGML {
			continue
		}
		v, ok := New(name)
		if !assert.True(t, ok, name.Local) {
			continue
		}
		input := `<` + name.Local + ` xmlns="` + xmlutil.NSGML + `"/>`
		assert.NoError(t, xml.Unmarshal([]byte(input), v), name.Local)
	}
}
