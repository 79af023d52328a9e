package model

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lineStringXML = `<LineString xmlns="http://www.opengis.net/gml" xmlns:gml="http://www.opengis.net/gml" xmlns:xlink="http://www.w3.org/1999/xlink" gml:id="ls1" srsName="EPSG:4326" srsDimension="2">
  <pos>1 2</pos>
  <pointProperty><Point gml:id="p2"><pos>3 4</pos></Point></pointProperty>
  <coord><X>5</X><Y>6</Y></coord>
  <pointRep xlink:href="#p9"/>
  <pos>7 8</pos>
</LineString>`

func TestLineStringOrder(t *testing.T) {
	a := assert.New(t)
	var ls LineStringType
	require.NoError(t, xml.Unmarshal([]byte(lineStringXML), &ls))

	a.Equal("ls1", ls.ID)
	a.Equal("EPSG:4326", ls.SRSName)
	a.Equal(2, ls.SRSDimension.Get(0))
	require.Len(t, ls.Points, 5)

	var order []string
	for i := range ls.Points {
		name, _ := ls.Points[i].member()
		order = append(order, name)
	}
	a.Equal([]string{"pos", "pointProperty", "coord", "pointRep", "pos"}, order)

	pos := ls.Points.Pos()
	require.Len(t, pos, 2)
	a.Equal(DoubleList{1, 2}, pos[0].Values)
	a.Equal(DoubleList{7, 8}, pos[1].Values)

	props := ls.Points.PointProperties()
	require.Len(t, props, 1)
	a.Equal("p2", props[0].Value.ID)
	a.Equal(DoubleList{3, 4}, props[0].Value.Pos.Values)

	reps := ls.Points.PointReps()
	require.Len(t, reps, 1)
	a.True(reps[0].IsReference())
	a.False(reps[0].HasValue())
	a.Equal("#p9", reps[0].Href)
	a.Equal(XLinkTypeSimple, reps[0].XLinkType())

	coords := ls.Points.Coords()
	require.Len(t, coords, 1)
	a.Equal(5.0, coords[0].X)
	a.Nil(coords[0].Z)

	a.Equal(5, ls.PositionCount(2))

	// encode and decode again: order, ids and references are kept
	out, err := marshalAs(&ls, "LineString")
	require.NoError(t, err)
	var back LineStringType
	require.NoError(t, xml.Unmarshal(out, &back), string(out))
	a.Equal(ls, back)
}

func TestPositionCount(t *testing.T) {
	for _, tc := range []struct {
		name   string
		points ControlPoints
		dim    int
		want   int
	}{
		{name: "empty", dim: 2},
		{
			name:   "posList by dimension",
			points: ControlPoints{PosList: &DirectPositionListType{Values: DoubleList{0, 0, 1, 1, 2, 2}}},
			dim:    2,
			want:   3,
		},
		{
			name: "posList srsDimension wins",
			points: ControlPoints{PosList: &DirectPositionListType{
				SRSReferenceGroup: SRSReferenceGroup{SRSDimension: NewAttr(3)},
				Values:            DoubleList{0, 0, 0, 1, 1, 1},
			}},
			dim:  2,
			want: 2,
		},
		{
			name:   "posList count wins",
			points: ControlPoints{PosList: &DirectPositionListType{Count: NewAttr(4), Values: DoubleList{0, 0}}},
			dim:    2,
			want:   4,
		},
		{
			name:   "coordinates",
			points: ControlPoints{Coordinates: &CoordinatesType{Value: "0,0 1,1 2,2 0,0"}},
			dim:    2,
			want:   4,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.points.PositionCount(tc.dim))
		})
	}
}

func TestCoordinatesTuples(t *testing.T) {
	for _, tc := range []struct {
		name    string
		coords  CoordinatesType
		want    [][]float64
		wantErr bool
	}{
		{name: "defaults", coords: CoordinatesType{Value: "1,2 3,4"}, want: [][]float64{{1, 2}, {3, 4}}},
		{
			name:   "custom separators",
			coords: CoordinatesType{Decimal: NewAttr(","), CS: NewAttr(" "), TS: NewAttr(";"), Value: "1,5 2,25;3 4"},
			want:   [][]float64{{1.5, 2.25}, {3, 4}},
		},
		{name: "bad number", coords: CoordinatesType{Value: "1,a"}, wantErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)
			got, err := tc.coords.Tuples()
			if tc.wantErr {
				a.Error(err)
				return
			}
			a.NoError(err)
			a.Equal(tc.want, got)
		})
	}
}

func TestPolygonDecode(t *testing.T) {
	a := assert.New(t)
	input := `<Polygon xmlns="http://www.opengis.net/gml">
  <exterior><LinearRing><posList>0 0 1 0 1 1 0 0</posList></LinearRing></exterior>
  <interior><Ring><curveMember><LineString><pos>0 0</pos><pos>1 1</pos></LineString></curveMember></Ring></interior>
</Polygon>`
	var p PolygonType
	require.NoError(t, xml.Unmarshal([]byte(input), &p))
	require.NotNil(t, p.Exterior)
	ring, ok := p.Exterior.Value.(*LinearRingType)
	require.True(t, ok, "%T", p.Exterior.Value)
	a.Equal(4, ring.PositionCount(2))

	require.Len(t, p.Interior, 1)
	r, ok := p.Interior[0].Value.(*RingType)
	require.True(t, ok, "%T", p.Interior[0].Value)
	require.Len(t, r.CurveMember, 1)
	_, ok = r.CurveMember[0].Value.(*LineStringType)
	a.True(ok)
}

func TestSubstitutionMismatch(t *testing.T) {
	// a TimeInstant cannot substitute for a geometry
	var p PolygonType
	err := xml.Unmarshal([]byte(`<Polygon xmlns="http://www.opengis.net/gml"><exterior><TimeInstant/></exterior></Polygon>`), &p)
	assert.ErrorContains(t, err, "unexpected-element")
}

func TestEnvelope(t *testing.T) {
	a := assert.New(t)
	env := NewEnvelope("EPSG:4326", []float64{0, 1}, []float64{2, 3})
	out, err := marshalAs(env, "Envelope")
	require.NoError(t, err)
	a.Contains(string(out), `srsName="EPSG:4326"`)
	a.Contains(string(out), `<lowerCorner>0 1</lowerCorner>`)

	var back EnvelopeType
	require.NoError(t, xml.Unmarshal(out, &back))
	a.Equal(*env, back)
}
