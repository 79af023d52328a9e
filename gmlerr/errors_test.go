package gmlerr

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	for _, tc := range []struct {
		err *Error

		error string
		xml   string
		json  string
	}{
		{
			err:   UnknownElement("Pointy", WithPath("/FeatureCollection/featureMember")),
			error: "decode error tag:unknown-element element:Pointy path:/FeatureCollection/featureMember",
			xml:   "<diagnostic><type>decode</type><tag>unknown-element</tag><severity>error</severity><path>/FeatureCollection/featureMember</path><element>Pointy</element></diagnostic>",
			json:  "{\"type\":\"decode\",\"tag\":\"unknown-element\",\"severity\":\"error\",\"path\":\"/FeatureCollection/featureMember\",\"element\":\"Pointy\"}",
		},

		{
			err:   MinOccurs("directedNode", 2, 1, WithPath("/Edge")),
			error: "schema error tag:min-occurs element:directedNode path:/Edge want at least 2, have 1",
			xml:   "<diagnostic><type>schema</type><tag>min-occurs</tag><severity>error</severity><path>/Edge</path><element>directedNode</element><message>want at least 2, have 1</message></diagnostic>",
			json:  "{\"type\":\"schema\",\"tag\":\"min-occurs\",\"severity\":\"error\",\"path\":\"/Edge\",\"element\":\"directedNode\",\"message\":\"want at least 2, have 1\"}",
		},

		{
			err:   InvalidValue("*", WithAttribute("orientation"), WithSeverity(SeverityWarning)),
			error: "schema warning tag:invalid-value attribute:orientation value:\"*\"",
			xml:   "<diagnostic><type>schema</type><tag>invalid-value</tag><severity>warning</severity><attribute>orientation</attribute><value>*</value></diagnostic>",
			json:  "{\"type\":\"schema\",\"tag\":\"invalid-value\",\"severity\":\"warning\",\"attribute\":\"orientation\",\"value\":\"*\"}",
		},

		{
			err:   MissingAttribute("uom", "semiMajorAxis"),
			error: "schema error tag:missing-attribute element:semiMajorAxis attribute:uom",
			xml:   "<diagnostic><type>schema</type><tag>missing-attribute</tag><severity>error</severity><element>semiMajorAxis</element><attribute>uom</attribute></diagnostic>",
			json:  "{\"type\":\"schema\",\"tag\":\"missing-attribute\",\"severity\":\"error\",\"element\":\"semiMajorAxis\",\"attribute\":\"uom\"}",
		},

		{
			err:   DuplicateID("p1"),
			error: "reference error tag:duplicate-id attribute:gml:id value:\"p1\"",
			xml:   "<diagnostic><type>reference</type><tag>duplicate-id</tag><severity>error</severity><attribute>gml:id</attribute><value>p1</value></diagnostic>",
			json:  "{\"type\":\"reference\",\"tag\":\"duplicate-id\",\"severity\":\"error\",\"attribute\":\"gml:id\",\"value\":\"p1\"}",
		},

		{
			err:   MalformedDocument(WithMessage("XML syntax error on line 1"), WithSeverity(SeverityWarning)),
			error: "decode error tag:malformed-document XML syntax error on line 1",
			xml:   "<diagnostic><type>decode</type><tag>malformed-document</tag><severity>error</severity><message>XML syntax error on line 1</message></diagnostic>",
			json:  "{\"type\":\"decode\",\"tag\":\"malformed-document\",\"severity\":\"error\",\"message\":\"XML syntax error on line 1\"}",
		},
	} {
		t.Run(fmt.Sprintf("%v", tc.err), func(t *testing.T) {
			check := assert.New(t)
			bXML, _ := xml.Marshal(tc.err)
			bJSON, _ := json.Marshal(tc.err)
			check.Equal(tc.error, tc.err.Error())
			check.Equal(tc.json, string(bJSON))
			check.Equal(tc.xml, string(bXML))

			ev := Error{}
			if check.NoError(xml.Unmarshal(bXML, &ev)) {
				evXML, _ := xml.Marshal(ev)
				check.Equal(tc.xml, string(evXML))
			}
			ev = Error{}
			if check.NoError(json.Unmarshal(bJSON, &ev)) {
				evJSON, _ := json.Marshal(ev)
				check.Equal(tc.json, string(evJSON))
			}
		})
	}
}

func TestList(t *testing.T) {
	a := assert.New(t)

	var empty List
	a.NoError(empty.Err())
	a.Equal("no errors", empty.Error())

	l := List{
		MinOccurs("directedNode", 2, 0),
		InvalidValue("sideways", WithSeverity(SeverityWarning)),
	}
	a.Equal(1, l.Count(SeverityError))
	a.Equal(1, l.Count(SeverityWarning))
	a.Equal([]string{TagMinOccurs, TagInvalidValue}, l.Tags())
	a.Contains(l.Error(), "2 errors: ")

	wrapped := pkgerrors.Wrap(l.Err(), "validate")
	got, ok := AsList(wrapped)
	if a.True(ok) {
		a.Len(got, 2)
	}

	e, ok := As(pkgerrors.WithStack(BadReference("#missing")))
	if a.True(ok) {
		a.Equal(TagBadReference, e.Tag)
		a.Equal("#missing", e.Value)
	}
}

func TestTypeSeverityText(t *testing.T) {
	a := assert.New(t)
	for _, want := range []Type{TypeSchema, TypeDecode, TypeReference} {
		b, err := want.MarshalText()
		a.NoError(err)
		var got Type
		a.NoError(got.UnmarshalText(b))
		a.Equal(want, got)
	}
	var ty Type
	a.Error(ty.UnmarshalText([]byte("transport")))
	a.Equal("Type(9)", Type(9).String())

	var s Severity
	a.NoError(s.UnmarshalText([]byte(" warning ")))
	a.Equal(SeverityWarning, s)
	a.Error(s.UnmarshalText([]byte("fatal")))
}
