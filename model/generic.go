package model

import (
	"encoding/xml"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/andaru/gml/xmlutil"
)

// RawElement is an element kept undecoded: its name, attributes, the
// namespaces it binds and its inner XML. NS holds the element's own
// declarations and a binding for every other namespace its attributes
// and content use, so Inner is well-formed wherever the element is
// encoded.
type RawElement struct {
	XMLName xml.Name
	Attrs   []xml.Attr
	NS      xmlutil.PrefixMap
	Inner   string
}

// Attr returns the value of the attribute name
func (r *RawElement) Attr(name xml.Name) (string, bool) {
	for _, a := range r.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// childNodes is empty: raw content is not traversed.
func (r *RawElement) childNodes() []childNode { return nil }

func (r *RawElement) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	r.XMLName = start.Name
	r.NS = xmlutil.NewPrefixMap(start.Attr...)
	r.Attrs = nil
	content := &rawContent{ns: r.NS, def: start.Name.Space}
	for _, a := range start.Attr {
		if xmlutil.IsDecl(a) {
			continue
		}
		if a.Name.Space != "" {
			content.prefix(a.Name.Space)
		}
		r.Attrs = append(r.Attrs, a)
	}
	inner, err := content.copy(d)
	if err != nil {
		return errors.Wrapf(err, "element %s", start.Name.Local)
	}
	r.Inner = inner
	return nil
}

func (r RawElement) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if r.XMLName.Local != "" {
		start.Name = r.XMLName
	}
	start.Attr = nil
	for _, decl := range r.NS.Decls() {
		// the encoder declares the element's own namespace
		if decl.Name.Local != "xmlns" {
			start.Attr = append(start.Attr, decl)
		}
	}
	for _, a := range r.Attrs {
		if pfx := r.prefix(a.Name.Space); pfx != "" {
			a.Name = xml.Name{Local: pfx + ":" + a.Name.Local}
		}
		start.Attr = append(start.Attr, a)
	}
	return errors.WithStack(e.EncodeElement(struct {
		Inner string `xml:",innerxml"`
	}{r.Inner}, start))
}

// prefix returns a prefix the element declares for space.
func (r *RawElement) prefix(space string) string {
	if space == "" {
		return ""
	}
	for _, pfx := range r.NS.Prefix(space) {
		if pfx != "" {
			return pfx
		}
	}
	return ""
}

// GenericFeature is an element with no registered type, typically a
// feature of an application schema. It keeps the element's name,
// attributes and raw content so it encodes as it was decoded, and
// exposes the standard feature properties it carries through Feature.
type GenericFeature struct {
	RawElement
	// Feature is a read-only view of the GML feature properties found
	// in Inner. Changes to it are not encoded.
	Feature AbstractFeatureType `xml:"-"`
}

func (g *GenericFeature) GML() *AbstractGMLType                 { return &g.Feature.AbstractGMLType }
func (g *GenericFeature) AbstractFeature() *AbstractFeatureType { return &g.Feature }

func (g *GenericFeature) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	if err := g.RawElement.UnmarshalXML(d, start); err != nil {
		return err
	}
	g.Feature = AbstractFeatureType{}
	// the view is best effort: content of an unknown schema need not
	// decode as a GML feature.
	ns := xmlutil.PrefixMap{}.Merge(g.NS).Merge(xmlutil.DefaultPrefixMap())
	if err := xml.Unmarshal([]byte(xmlutil.Wrap(ns, g.Inner)), &g.Feature); err != nil {
		glog.V(2).Infof("<%s> has no feature view: %v", g.XMLName.Local, err)
	}
	if id, ok := g.Attr(nameGMLID); ok {
		g.Feature.ID = id
	}
	return nil
}

func (g GenericFeature) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return g.RawElement.MarshalXML(e, start)
}
