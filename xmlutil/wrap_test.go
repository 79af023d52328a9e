package xmlutil

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	a := assert.New(t)
	a.Equal(`<_></_>`, Wrap(nil, ""))

	got := Wrap(PrefixMap{"gml": NSGML, "app": `urn:a&b`}, `<gml:name>x</gml:name>`)
	a.Equal(`<_ xmlns:app="urn:a&amp;b" xmlns:gml="http://www.opengis.net/gml"><gml:name>x</gml:name></_>`, got)

	var v struct {
		XMLName xml.Name
		Name    struct {
			XMLName xml.Name
			Value   string `xml:",chardata"`
		} `xml:"http://www.opengis.net/gml name"`
	}
	require.NoError(t, xml.Unmarshal([]byte(got), &v))
	a.Equal(WrapperName, v.XMLName.Local)
	a.Equal(GMLName("name"), v.Name.XMLName)
	a.Equal("x", v.Name.Value)
}
