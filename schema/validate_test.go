package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andaru/gml/codec"
	"github.com/andaru/gml/gmlerr"
	"github.com/andaru/gml/model"
)

const ns = `xmlns="http://www.opengis.net/gml" xmlns:gml="http://www.opengis.net/gml" xmlns:xlink="http://www.w3.org/1999/xlink"`

func decode(t *testing.T, input string) any {
	t.Helper()
	v, err := codec.Unmarshal([]byte(input))
	require.NoError(t, err)
	return v
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		tags  []string
		path  string
	}{
		{
			name: "valid polygon",
			input: `<Polygon ` + ns + ` gml:id="poly" srsDimension="2">
  <exterior><LinearRing><posList>0 0 1 0 1 1 0 0</posList></LinearRing></exterior>
  <interior><LinearRing><pos>0 0</pos><pos>0.5 0</pos><pos>0.5 0.5</pos><pos>0 0</pos></LinearRing></interior>
</Polygon>`,
		},
		{
			name:  "edge with one node",
			input: `<Edge ` + ns + `><directedNode orientation="+"><Node/></directedNode></Edge>`,
			tags:  []string{gmlerr.TagMinOccurs},
			path:  "/Edge",
		},
		{
			name:  "unknown sign",
			input: `<Edge ` + ns + `><directedNode orientation="x" xlink:href="#n1"/><directedNode><Node/></directedNode></Edge>`,
			tags:  []string{gmlerr.TagInvalidValue},
			path:  "/Edge/directedNode[1]/@orientation",
		},
		{
			name:  "ring of three positions",
			input: `<LinearRing ` + ns + `><pos>0 0</pos><pos>1 0</pos><pos>0 0</pos></LinearRing>`,
			tags:  []string{gmlerr.TagTooFewPositions},
			path:  "/LinearRing",
		},
		{
			name:  "line string of one position",
			input: `<LineString ` + ns + `><pos>0 0</pos></LineString>`,
			tags:  []string{gmlerr.TagTooFewPositions},
			path:  "/LineString",
		},
		{
			name:  "line string position list",
			input: `<LineString ` + ns + ` srsDimension="2"><posList>0 0 1 1 2 2</posList></LineString>`,
		},
		{
			name:  "empty line string",
			input: `<LineString ` + ns + `/>`,
			tags:  []string{gmlerr.TagChoice},
			path:  "/LineString",
		},
		{
			name:  "point with two positions",
			input: `<Point ` + ns + `><pos>0 0</pos><coordinates>0,0</coordinates></Point>`,
			tags:  []string{gmlerr.TagChoice},
			path:  "/Point",
		},
		{
			name:  "value and reference",
			input: `<MultiPoint ` + ns + `><pointMember xlink:href="#p"><Point><pos>0 0</pos></Point></pointMember></MultiPoint>`,
			tags:  []string{gmlerr.TagPropertyContent},
			path:  "/MultiPoint/pointMember[1]",
		},
		{
			name: "duplicate id",
			input: `<MultiPoint ` + ns + `>
  <pointMember><Point gml:id="a"><pos>0 0</pos></Point></pointMember>
  <pointMember><Point gml:id="a"><pos>1 1</pos></Point></pointMember>
</MultiPoint>`,
			tags: []string{gmlerr.TagDuplicateID},
			path: "/MultiPoint/pointMember[2]/Point",
		},
		{
			name:  "definition without id",
			input: `<Definition ` + ns + `><name>x</name></Definition>`,
			tags:  []string{gmlerr.TagMissingAttribute},
			path:  "/Definition",
		},
		{
			name:  "too few axes",
			input: `<EllipsoidalCS ` + ns + ` gml:id="cs"><csName>e</csName><usesAxis xlink:href="#lat"/></EllipsoidalCS>`,
			tags:  []string{gmlerr.TagMinOccurs},
			path:  "/EllipsoidalCS",
		},
		{
			name: "grid envelope arity",
			input: `<Grid ` + ns + ` gml:id="g" dimension="2">
  <limits><GridEnvelope><low>0 0</low><high>9</high></GridEnvelope></limits>
  <axisName>x</axisName><axisName>y</axisName>
</Grid>`,
			tags: []string{gmlerr.TagInvalidValue},
			path: "/Grid/limits/GridEnvelope",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)
			err := Validate(decode(t, tc.input))
			if tc.tags == nil {
				a.NoError(err)
				return
			}
			list, ok := gmlerr.AsList(err)
			require.True(t, ok, "%v", err)
			a.Equal(tc.tags, list.Tags(), list.Error())
			a.Equal(tc.path, list[0].Path)
		})
	}
}

func TestValidateEmptyProperty(t *testing.T) {
	v := decode(t, `<MultiPoint `+ns+`><pointMember/><pointMember/><pointMember/></MultiPoint>`)

	for _, tc := range []struct {
		name     string
		opts     []Option
		count    int
		severity gmlerr.Severity
	}{
		{name: "warnings", count: 3, severity: gmlerr.SeverityWarning},
		{name: "limited", opts: []Option{WithMaxErrors(2)}, count: 2, severity: gmlerr.SeverityWarning},
		{name: "as errors", opts: []Option{WithWarningsAsErrors()}, count: 3, severity: gmlerr.SeverityError},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)
			list, ok := gmlerr.AsList(Validate(v, tc.opts...))
			require.True(t, ok)
			a.Len(list, tc.count)
			a.Equal(tc.count, list.Count(tc.severity))
			for _, e := range list {
				a.Equal(gmlerr.TagPropertyContent, e.Tag)
			}
		})
	}
}

func TestValidateModel(t *testing.T) {
	a := assert.New(t)

	// trees built in code are checked the same way
	edge := &model.EdgeType{DirectedNode: []model.DirectedNodePropertyType{
		model.NewDirectedProperty(&model.NodeType{}, model.SignNegative),
		model.NewDirectedProperty(&model.NodeType{}, model.SignPositive),
	}}
	a.NoError(Validate(edge))

	edge.DirectedNode = append(edge.DirectedNode, model.NewDirectedProperty(&model.NodeType{}, model.SignPositive))
	list, ok := gmlerr.AsList(Validate(edge))
	require.True(t, ok)
	a.Equal([]string{gmlerr.TagMaxOccurs}, list.Tags())
	a.Equal("directedNode", list[0].Element)

	a.NoError(Validate(nil))
}

func TestValidateInvalidValue(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		value string
	}{
		{name: "minutes", input: `<dmsAngle ` + ns + `><degrees>10</degrees><minutes>75</minutes></dmsAngle>`, value: "75"},
		{name: "degrees", input: `<dmsAngle ` + ns + `><degrees direction="Q">10</degrees></dmsAngle>`},
		{name: "count extent", input: `<CountExtent ` + ns + `>1 2 3</CountExtent>`, value: "1 2 3"},
		{name: "interpolation", input: `<LineStringSegment ` + ns + ` interpolation="curvy"><pos>0 0</pos><pos>1 1</pos></LineStringSegment>`, value: "curvy"},
		{name: "time position", input: `<TimeInstant ` + ns + `><timePosition>yesterday</timePosition></TimeInstant>`, value: "yesterday"},
		{name: "axis labels", input: `<Point ` + ns + ` axisLabels="x y/z"><pos>1 2</pos></Point>`, value: "x y/z"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)
			list, ok := gmlerr.AsList(Validate(decode(t, tc.input)))
			require.True(t, ok)
			require.Len(t, list, 1, list.Error())
			a.Equal(gmlerr.TagInvalidValue, list[0].Tag)
			if tc.value != "" {
				a.Equal(tc.value, list[0].Value)
			}
		})
	}
}

func TestValidateCurveSegments(t *testing.T) {
	const (
		pos2 = `<pos>0 0</pos><pos>1 1</pos>`
		pos3 = pos2 + `<pos>2 0</pos>`
		knot = `<knot><Knot><value>0</value><multiplicity>3</multiplicity><weight>1</weight></Knot></knot>`
	)
	for _, tc := range []struct {
		name  string
		input string
		tags  []string
		path  string
	}{
		{name: "arc string", input: `<ArcString ` + ns + `>` + pos3 + `</ArcString>`},
		{
			name:  "arc string of two positions",
			input: `<ArcString ` + ns + `>` + pos2 + `</ArcString>`,
			tags:  []string{gmlerr.TagTooFewPositions},
			path:  "/ArcString",
		},
		{
			name:  "arc of five positions",
			input: `<Arc ` + ns + `>` + pos3 + `<pos>3 3</pos><pos>4 0</pos></Arc>`,
			tags:  []string{gmlerr.TagMaxOccurs},
			path:  "/Arc",
		},
		{
			name:  "arc of two arcs",
			input: `<Arc ` + ns + ` numArc="2">` + pos3 + `</Arc>`,
			tags:  []string{gmlerr.TagInvalidValue},
			path:  "/Arc/@numArc",
		},
		{
			name:  "circle of two positions",
			input: `<Circle ` + ns + `>` + pos2 + `</Circle>`,
			tags:  []string{gmlerr.TagTooFewPositions},
			path:  "/Circle",
		},
		{name: "arc by bulge", input: `<ArcByBulge ` + ns + `>` + pos2 + `<bulge>0.5</bulge><normal>0 1</normal></ArcByBulge>`},
		{
			name:  "arc by bulge of three positions",
			input: `<ArcByBulge ` + ns + `>` + pos3 + `<bulge>0.5</bulge><normal>0 1</normal></ArcByBulge>`,
			tags:  []string{gmlerr.TagMaxOccurs},
			path:  "/ArcByBulge",
		},
		{
			name:  "arc by bulge with two bulges",
			input: `<ArcByBulge ` + ns + `>` + pos2 + `<bulge>0.5</bulge><bulge>0.2</bulge><normal>0 1</normal></ArcByBulge>`,
			tags:  []string{gmlerr.TagMaxOccurs},
			path:  "/ArcByBulge",
		},
		{name: "arc by center point", input: `<ArcByCenterPoint ` + ns + ` numArc="1"><pos>0 0</pos><radius uom="m">2</radius></ArcByCenterPoint>`},
		{
			name:  "arc by center point without numArc",
			input: `<ArcByCenterPoint ` + ns + `><pos>0 0</pos><radius uom="m">2</radius></ArcByCenterPoint>`,
			tags:  []string{gmlerr.TagMissingAttribute},
			path:  "/ArcByCenterPoint",
		},
		{
			name:  "cubic spline of one position",
			input: `<CubicSpline ` + ns + `><pos>0 0</pos><vectorAtStart>1 0</vectorAtStart><vectorAtEnd>1 0</vectorAtEnd></CubicSpline>`,
			tags:  []string{gmlerr.TagTooFewPositions},
			path:  "/CubicSpline",
		},
		{
			name:  "cubic spline of degree four",
			input: `<CubicSpline ` + ns + ` degree="4">` + pos2 + `<vectorAtStart>1 0</vectorAtStart><vectorAtEnd>1 0</vectorAtEnd></CubicSpline>`,
			tags:  []string{gmlerr.TagInvalidValue},
			path:  "/CubicSpline/@degree",
		},
		{name: "bezier", input: `<Bezier ` + ns + `>` + pos3 + `<degree>2</degree>` + knot + knot + `</Bezier>`},
		{
			name:  "bezier with three knots",
			input: `<Bezier ` + ns + `>` + pos3 + `<degree>2</degree>` + knot + knot + knot + `</Bezier>`,
			tags:  []string{gmlerr.TagMaxOccurs},
			path:  "/Bezier",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)
			err := Validate(decode(t, tc.input))
			if tc.tags == nil {
				a.NoError(err)
				return
			}
			list, ok := gmlerr.AsList(err)
			require.True(t, ok, "%v", err)
			a.Equal(tc.tags, list.Tags(), list.Error())
			a.Equal(tc.path, list[0].Path)
		})
	}
}
