package model

import (
	"encoding/xml"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const polygonXML = `<Polygon xmlns="http://www.opengis.net/gml" xmlns:gml="http://www.opengis.net/gml" gml:id="poly">
  <name>field</name>
  <exterior><LinearRing gml:id="ring"><pos>0 0</pos><pos>1 0</pos><pos>1 1</pos><pos>0 0</pos></LinearRing></exterior>
</Polygon>`

func TestWalk(t *testing.T) {
	var p PolygonType
	require.NoError(t, xml.Unmarshal([]byte(polygonXML), &p))

	var paths []string
	require.NoError(t, Walk(&p, func(path string, v any) error {
		paths = append(paths, path)
		return nil
	}))
	assert.Equal(t, []string{
		"/Polygon",
		"/Polygon/name[1]",
		"/Polygon/exterior",
		"/Polygon/exterior/LinearRing",
		"/Polygon/exterior/LinearRing/pos[1]",
		"/Polygon/exterior/LinearRing/pos[2]",
		"/Polygon/exterior/LinearRing/pos[3]",
		"/Polygon/exterior/LinearRing/pos[4]",
	}, paths)
}

func TestWalkSkipChildren(t *testing.T) {
	var p PolygonType
	require.NoError(t, xml.Unmarshal([]byte(polygonXML), &p))

	var ids []string
	require.NoError(t, Walk(&p, func(path string, v any) error {
		if o, ok := v.(Object); ok {
			ids = append(ids, o.GML().ID)
		}
		if _, ok := v.(*AbstractRingPropertyType); ok {
			return SkipChildren
		}
		return nil
	}))
	assert.Equal(t, []string{"poly"}, ids)
}

func TestWalkStop(t *testing.T) {
	var p PolygonType
	require.NoError(t, xml.Unmarshal([]byte(polygonXML), &p))

	stop := errors.New("stop")
	n := 0
	err := Walk(&p, func(path string, v any) error {
		n++
		if _, ok := v.(*LinearRingType); ok {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, 4, n)
}

func TestWalkReferencesNotFollowed(t *testing.T) {
	edge := &EdgeType{DirectedNode: []DirectedNodePropertyType{
		{Orientation: NewAttr(SignNegative), Property: NewReference[*NodeType]("#n1")},
		NewDirectedProperty(&NodeType{}, SignPositive),
	}}
	edge.DirectedNode[1].Value.ID = "n2"

	var visited []string
	require.NoError(t, Walk(edge, func(path string, v any) error {
		visited = append(visited, path)
		return nil
	}))
	assert.Equal(t, []string{
		"/Edge",
		"/Edge/directedNode[1]",
		"/Edge/directedNode[2]",
		"/Edge/directedNode[2]/Node",
	}, visited)
	assert.Same(t, &edge.DirectedNode[0], edge.Start())
	assert.Same(t, &edge.DirectedNode[1], edge.End())
}
