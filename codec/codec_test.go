package codec

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andaru/gml/gmlerr"
	"github.com/andaru/gml/model"
	"github.com/andaru/gml/xmlutil"
)

const rootDecls = `xmlns="http://www.opengis.net/gml" xmlns:gml="http://www.opengis.net/gml" xmlns:xlink="http://www.w3.org/1999/xlink"`

func TestEncode(t *testing.T) {
	for _, tc := range []struct {
		name string
		v    any
		opts []Option
		want string
	}{
		{
			name: "point",
			v:    model.NewPoint(1, 2),
			want: `<Point ` + rootDecls + `><pos>1 2</pos></Point>`,
		},
		{
			name: "identified point",
			v: func() any {
				p := model.NewPoint(1, 2)
				p.ID = "p1"
				return p
			}(),
			want: `<Point ` + rootDecls + ` gml:id="p1"><pos>1 2</pos></Point>`,
		},
		{
			name: "indent and header",
			v:    model.NewPoint(1, 2),
			opts: []Option{WithIndent("  "), WithHeader()},
			want: `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
				`<Point ` + rootDecls + ">\n  <pos>1 2</pos>\n</Point>",
		},
		{
			name: "extra namespace",
			v:    model.NewPoint(3),
			opts: []Option{WithNamespace("app", "urn:app")},
			want: `<Point xmlns="http://www.opengis.net/gml" xmlns:app="urn:app" xmlns:gml="http://www.opengis.net/gml" xmlns:xlink="http://www.w3.org/1999/xlink"><pos>3</pos></Point>`,
		},
		{
			name: "escaped text",
			v: &model.PointType{Pos: &model.DirectPositionType{
				SRSReferenceGroup: model.SRSReferenceGroup{SRSName: `urn:a&b"c`},
				Values:            model.DoubleList{0},
			}},
			want: `<Point ` + rootDecls + `><pos srsName="urn:a&amp;b&quot;c">0</pos></Point>`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)
			got, err := Marshal(tc.v, tc.opts...)
			a.NoError(err)
			a.Equal(tc.want, string(got))
		})
	}
}

func TestEncodeNotGlobal(t *testing.T) {
	_, err := Marshal(model.PointType{})
	assert.ErrorContains(t, err, "not a global element")
	_, err = Marshal(&model.AbstractFeatureType{})
	assert.Error(t, err)
}

const polygonXML = `<gml:Polygon xmlns:gml="http://www.opengis.net/gml" gml:id="poly" srsName="EPSG:4326" srsDimension="2">
  <gml:name>field</gml:name>
  <gml:exterior><gml:LinearRing gml:id="ring"><gml:posList count="4">0 0 1 0 1 1 0 0</gml:posList></gml:LinearRing></gml:exterior>
  <gml:interior><gml:LinearRing><gml:pos>0 0</gml:pos><gml:pos>0.5 0</gml:pos><gml:pos>0.5 0.5</gml:pos><gml:pos>0 0</gml:pos></gml:LinearRing></gml:interior>
</gml:Polygon>`

func TestDecode(t *testing.T) {
	a := assert.New(t)
	v, err := Unmarshal([]byte(polygonXML))
	require.NoError(t, err)
	p, ok := v.(*model.PolygonType)
	require.True(t, ok, "%T", v)
	a.Equal("poly", p.ID)
	a.Equal("EPSG:4326", p.SRSName)
	a.Equal(2, p.SRSDimension.Get(0))
	require.NotNil(t, p.Exterior)
	ring, ok := p.Exterior.Value.(*model.LinearRingType)
	require.True(t, ok, "%T", p.Exterior.Value)
	a.Equal("ring", ring.ID)
	a.Equal(4, ring.PositionCount(2))
	require.Len(t, p.Interior, 1)
}

func TestRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
	}{
		{name: "polygon", input: polygonXML},
		{name: "alias root", input: `<DefinitionCollection xmlns="http://www.opengis.net/gml" xmlns:gml="http://www.opengis.net/gml" gml:id="d"><name>units</name></DefinitionCollection>`},
		{name: "reference", input: `<Edge xmlns="http://www.opengis.net/gml" xmlns:xlink="http://www.w3.org/1999/xlink"><directedNode orientation="-" xlink:href="#n1"/><directedNode><Node/></directedNode><curveProperty xlink:href="#c1"/></Edge>`},
		{name: "time period", input: `<TimePeriod xmlns="http://www.opengis.net/gml"><beginPosition>2001-01-01</beginPosition><endPosition indeterminatePosition="now"/></TimePeriod>`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)
			first, err := DecodeDocument(strings.NewReader(tc.input))
			require.NoError(t, err)
			var b bytes.Buffer
			require.NoError(t, EncodeDocument(&b, first, WithIndent("\t")))
			second, err := DecodeDocument(&b)
			require.NoError(t, err, b.String())
			a.Equal(first.Name, second.Name)
			a.Equal(first.Root, second.Root)
		})
	}
}

const collectionXML = `<FeatureCollection xmlns="http://www.opengis.net/gml" xmlns:gml="http://www.opengis.net/gml" xmlns:app="urn:app">
  <featureMember>
    <app:Road gml:id="r1"><gml:name>High Street</gml:name><app:lanes>2</app:lanes></app:Road>
  </featureMember>
</FeatureCollection>`

func TestRoundTripGenericFeature(t *testing.T) {
	a := assert.New(t)
	doc, err := DecodeDocument(strings.NewReader(collectionXML))
	require.NoError(t, err)
	a.Equal(xmlutil.PrefixMap{"": xmlutil.NSGML, "gml": xmlutil.NSGML, "app": "urn:app"}, doc.Namespaces)

	var b bytes.Buffer
	require.NoError(t, EncodeDocument(&b, doc))
	out := b.String()
	a.Equal(1, strings.Count(out, `xmlns:app=`), out)
	a.Equal(1, strings.Count(out, `xmlns:gml=`), out)

	back, err := Decode(strings.NewReader(out))
	require.NoError(t, err)
	fc := back.(*model.FeatureCollectionType)
	require.Len(t, fc.FeatureMember, 1)
	road, ok := fc.FeatureMember[0].Value.(*model.GenericFeature)
	require.True(t, ok, "%T", fc.FeatureMember[0].Value)
	a.Equal("r1", road.GML().ID)
	a.Equal([]string{"High Street"}, road.GML().Names())
	a.Equal(`<gml:name>High Street</gml:name><app:lanes>2</app:lanes>`, road.Inner)
}

func TestRoundTripAncestorPrefixes(t *testing.T) {
	for _, tc := range []struct {
		name   string
		input  string
		encode func(string) (string, error)
	}{
		{
			name: "declared on the root",
			input: `<FeatureCollection xmlns="http://www.opengis.net/gml" xmlns:app="urn:app">` +
				`<featureMember><app:Road><app:lanes>2</app:lanes></app:Road></featureMember></FeatureCollection>`,
			encode: func(in string) (string, error) {
				v, err := Unmarshal([]byte(in))
				if err != nil {
					return "", err
				}
				out, err := Marshal(v)
				return string(out), err
			},
		},
		{
			name: "declared on the member property",
			input: `<FeatureCollection xmlns="http://www.opengis.net/gml">` +
				`<featureMember xmlns:app="urn:app"><app:Road><app:lanes>2</app:lanes></app:Road></featureMember></FeatureCollection>`,
			encode: func(in string) (string, error) {
				doc, err := DecodeDocument(strings.NewReader(in))
				if err != nil {
					return "", err
				}
				var b bytes.Buffer
				err = EncodeDocument(&b, doc)
				return b.String(), err
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)
			out, err := tc.encode(tc.input)
			require.NoError(t, err)
			a.Contains(out, `xmlns:app="urn:app"`)

			back, err := Unmarshal([]byte(out))
			require.NoError(t, err, out)
			fc := back.(*model.FeatureCollectionType)
			require.Len(t, fc.FeatureMember, 1)
			road, ok := fc.FeatureMember[0].Value.(*model.GenericFeature)
			require.True(t, ok, "%T", fc.FeatureMember[0].Value)
			a.Equal(xml.Name{Space: "urn:app", Local: "Road"}, road.XMLName)
			a.Equal(`<app:lanes>2</app:lanes>`, road.Inner)
		})
	}
}

func TestRoundTripFixedAttributes(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		attr  string
		check func(*assert.Assertions, any)
	}{
		{
			name: "cubic spline degree",
			input: `<CubicSpline xmlns="http://www.opengis.net/gml" degree="3"><pos>0 0</pos><pos>1 1</pos>` +
				`<vectorAtStart>1 0</vectorAtStart><vectorAtEnd>0 1</vectorAtEnd></CubicSpline>`,
			attr: `degree="3"`,
			check: func(a *assert.Assertions, v any) {
				s, ok := v.(*model.CubicSplineType)
				if a.True(ok, "%T", v) {
					a.True(s.Degree.IsSet())
					a.Equal(3, s.DegreeValue())
				}
			},
		},
		{
			name: "arc by center point numArc",
			input: `<ArcByCenterPoint xmlns="http://www.opengis.net/gml" numArc="1"><pos>0 0</pos>` +
				`<radius uom="m">2</radius></ArcByCenterPoint>`,
			attr: `numArc="1"`,
			check: func(a *assert.Assertions, v any) {
				s, ok := v.(*model.ArcByCenterPointType)
				if a.True(ok, "%T", v) {
					a.Equal(1, s.NumArc.Get(0))
				}
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)
			v, err := Unmarshal([]byte(tc.input))
			require.NoError(t, err)
			out, err := Marshal(v)
			require.NoError(t, err)
			a.Contains(string(out), tc.attr)
			back, err := Unmarshal(out)
			require.NoError(t, err, string(out))
			tc.check(a, back)
		})
	}
}

func TestEncodeDeclaresPrefixesOnce(t *testing.T) {
	v, err := Unmarshal([]byte(polygonXML))
	require.NoError(t, err)
	out, err := Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(out), "xmlns:gml="), string(out))
	assert.Contains(t, string(out), `<LinearRing gml:id="ring">`)
}

func TestDecodeErrors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		tag   string
	}{
		{name: "empty", input: ``, tag: gmlerr.TagMalformedDocument},
		{name: "whitespace", input: " \n ", tag: gmlerr.TagMalformedDocument},
		{name: "text", input: `hello`, tag: gmlerr.TagMalformedDocument},
		{name: "unclosed", input: `<Point xmlns="http://www.opengis.net/gml"><pos>1 2</Point>`, tag: gmlerr.TagMalformedDocument},
		{name: "bad number", input: `<Point xmlns="http://www.opengis.net/gml"><pos>1 x</pos></Point>`, tag: gmlerr.TagMalformedDocument},
		{name: "two roots", input: `<Point xmlns="http://www.opengis.net/gml"/><Point xmlns="http://www.opengis.net/gml"/>`, tag: gmlerr.TagMalformedDocument},
		{name: "unknown root", input: `<Road xmlns="urn:app"/>`, tag: gmlerr.TagUnknownElement},
		{name: "unknown gml root", input: `<Pointy xmlns="http://www.opengis.net/gml"/>`, tag: gmlerr.TagUnknownElement},
		{name: "unknown member", input: `<MultiPoint xmlns="http://www.opengis.net/gml"><pointMember><Road xmlns="urn:app"/></pointMember></MultiPoint>`, tag: gmlerr.TagUnknownElement},
		{name: "wrong substitution", input: `<MultiPoint xmlns="http://www.opengis.net/gml"><pointMember><LineString/></pointMember></MultiPoint>`, tag: gmlerr.TagUnexpectedElement},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)
			v, err := Unmarshal([]byte(tc.input))
			a.Nil(v)
			e, ok := gmlerr.As(err)
			if a.True(ok, "%v", err) {
				a.Equal(tc.tag, e.Tag)
				a.Equal(gmlerr.TypeDecode, e.Type)
			}
		})
	}
}

func TestDecodeCharset(t *testing.T) {
	input := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<Point xmlns=\"http://www.opengis.net/gml\"><name>Z\xfcrich</name><pos>8.5 47.4</pos></Point>"
	v, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"Zürich"}, v.(*model.PointType).Names())
}

func TestDecodeLenient(t *testing.T) {
	input := `<Point xmlns="http://www.opengis.net/gml"><name>caf&eacute;</name><pos>0 0</pos></Point>`
	_, err := Decode(strings.NewReader(input))
	assert.Error(t, err)
	v, err := Decode(strings.NewReader(input), WithLenient())
	require.NoError(t, err)
	assert.Equal(t, []string{"café"}, v.(*model.PointType).Names())
}

func TestDecodeFragment(t *testing.T) {
	a := assert.New(t)
	v, err := DecodeFragment(`<gml:Point gml:id="p"><gml:pos>1 2</gml:pos></gml:Point>`, xmlutil.DefaultPrefixMap())
	require.NoError(t, err)
	p, ok := v.(*model.PointType)
	require.True(t, ok, "%T", v)
	a.Equal("p", p.ID)
	a.Equal(model.DoubleList{1, 2}, p.Pos.Values)

	_, err = DecodeFragment(`<gml:Point/>`, nil)
	a.Error(err)
	_, err = DecodeFragment(``, xmlutil.DefaultPrefixMap())
	e, ok := gmlerr.As(err)
	require.True(t, ok, "%v", err)
	a.Equal(gmlerr.TagMalformedDocument, e.Tag)
}
