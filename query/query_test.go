package query

import (
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andaru/gml/gmlerr"
	"github.com/andaru/gml/model"
	"github.com/andaru/gml/xmlutil"
)

const collectionXML = `<?xml version="1.0"?>
<FeatureCollection xmlns="http://www.opengis.net/gml" xmlns:gml="http://www.opengis.net/gml" xmlns:app="urn:app">
  <featureMember>
    <app:Road gml:id="r1">
      <app:centre><Point gml:id="p1"><pos>1 2</pos></Point></app:centre>
    </app:Road>
  </featureMember>
  <featureMember>
    <Observation gml:id="o1">
      <location><Point gml:id="p2"><pos>3 4</pos></Point></location>
      <resultOf><Count>3</Count></resultOf>
    </Observation>
  </featureMember>
</FeatureCollection>`

func parse(t *testing.T, input string) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	return doc
}

func TestFind(t *testing.T) {
	doc := parse(t, collectionXML)
	for _, tc := range []struct {
		expr string
		want []string
	}{
		{expr: "//gml:Point", want: []string{"Point", "Point"}},
		{expr: "//gml:Point/@gml:id", want: []string{"id", "id"}},
		{expr: "//app:Road", want: []string{"Road"}},
		{expr: "/gml:FeatureCollection/gml:featureMember/*", want: []string{"Road", "Observation"}},
		{expr: "//gml:Point[@gml:id='p2']/gml:pos", want: []string{"pos"}},
	} {
		t.Run(tc.expr, func(t *testing.T) {
			nodes, err := doc.Find(tc.expr)
			require.NoError(t, err)
			var got []string
			for _, n := range nodes {
				got = append(got, n.Data)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFindPrefixIndependent(t *testing.T) {
	a := assert.New(t)
	doc := parse(t, `<g:MultiPoint xmlns:g="http://www.opengis.net/gml" g:id="mp">
  <g:pointMember><g:Point g:id="p"><g:pos>0 0</g:pos></g:Point></g:pointMember>
</g:MultiPoint>`)
	nodes, err := doc.Find("//gml:Point")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	a.Equal("p", nodes[0].SelectAttr("gml:id"))

	points, err := doc.Decode("/gml:MultiPoint/gml:pointMember/gml:Point")
	require.NoError(t, err)
	require.Len(t, points, 1)
	a.Equal("p", points[0].(*model.PointType).ID)
}

func TestDecode(t *testing.T) {
	a := assert.New(t)
	doc := parse(t, collectionXML)

	points, err := doc.Decode("//gml:Point")
	require.NoError(t, err)
	require.Len(t, points, 2)
	for i, want := range []struct {
		id  string
		pos model.DoubleList
	}{{"p1", model.DoubleList{1, 2}}, {"p2", model.DoubleList{3, 4}}} {
		p, ok := points[i].(*model.PointType)
		require.True(t, ok, "%T", points[i])
		a.Equal(want.id, p.ID)
		a.Equal(want.pos, p.Pos.Values)
	}

	obs, err := doc.Decode("//gml:Observation")
	require.NoError(t, err)
	require.Len(t, obs, 1)
	o := obs[0].(*model.ObservationType)
	a.Equal("o1", o.ID)

	none, err := doc.Decode("//gml:LineString")
	a.NoError(err)
	a.Empty(none)
}

func TestDecodeErrors(t *testing.T) {
	doc := parse(t, collectionXML)
	for _, tc := range []struct {
		name, expr, contains string
	}{
		{name: "attribute", expr: "//gml:Point/@gml:id", contains: "non-element"},
		{name: "unknown element", expr: "//app:Road", contains: gmlerr.TagUnknownElement},
		{name: "bad expression", expr: "//gml:Point[", contains: "compile"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := doc.Decode(tc.expr)
			assert.ErrorContains(t, err, tc.contains)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse(strings.NewReader(`<Point xmlns="http://www.opengis.net/gml"><pos>`))
	e, ok := gmlerr.As(err)
	require.True(t, ok, "%v", err)
	assert.Equal(t, gmlerr.TagMalformedDocument, e.Tag)
}

func TestCompileCached(t *testing.T) {
	a := assert.New(t)
	first, err := Compile("//gml:Envelope")
	require.NoError(t, err)
	second, err := Compile("//gml:Envelope")
	require.NoError(t, err)
	a.Same(first, second)
	a.True(exprCache.Contains("//gml:Envelope"))

	_, err = Compile("")
	a.Error(err)
}

func TestNamespaces(t *testing.T) {
	doc := parse(t, collectionXML)
	road := xmlquery.FindOne(doc.Root(), "//app:Road")
	require.NotNil(t, road)
	assert.Equal(t, xmlutil.PrefixMap{
		"":      xmlutil.NSGML,
		"gml":   xmlutil.NSGML,
		"xlink": xmlutil.NSXLink,
		"app":   "urn:app",
	}, Namespaces(road))
}
