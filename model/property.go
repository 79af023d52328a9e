package model

import (
	"encoding/xml"
	"fmt"
	"reflect"

	"github.com/andaru/gml/gmlerr"
	"github.com/andaru/gml/xmlutil"
	"github.com/pkg/errors"
)

// XLinkTypeSimple is the fixed value of xlink:type on GML properties.
const XLinkTypeSimple = "simple"

var (
	nameXLinkType    = xmlutil.XLinkName("type")
	nameXLinkHref    = xmlutil.XLinkName("href")
	nameXLinkRole    = xmlutil.XLinkName("role")
	nameXLinkArcrole = xmlutil.XLinkName("arcrole")
	nameXLinkTitle   = xmlutil.XLinkName("title")
	nameXLinkShow    = xmlutil.XLinkName("show")
	nameXLinkActuate = xmlutil.XLinkName("actuate")
	nameRemoteSchema = xmlutil.GMLName("remoteSchema")
	nameGMLID        = xmlutil.GMLName("id")
	nameOrientation  = xmlutil.XMLName("orientation")
	nameAbout        = xmlutil.XMLName("about")
	namePriority     = xmlutil.XMLName("priority")
)

// AssociationAttributes is the gml:AssociationAttributeGroup: a simple
// XLink plus gml:remoteSchema. A property carrying an Href refers to its
// value rather than containing it.
type AssociationAttributes struct {
	Type         Attr[string] `xml:"http://www.w3.org/1999/xlink type,attr"`
	Href         string       `xml:"http://www.w3.org/1999/xlink href,attr,omitempty"`
	Role         string       `xml:"http://www.w3.org/1999/xlink role,attr,omitempty"`
	Arcrole      string       `xml:"http://www.w3.org/1999/xlink arcrole,attr,omitempty"`
	Title        string       `xml:"http://www.w3.org/1999/xlink title,attr,omitempty"`
	Show         string       `xml:"http://www.w3.org/1999/xlink show,attr,omitempty"`
	Actuate      string       `xml:"http://www.w3.org/1999/xlink actuate,attr,omitempty"`
	RemoteSchema string       `xml:"http://www.opengis.net/gml remoteSchema,attr,omitempty"`
}

// XLinkType returns xlink:type, which defaults to "simple"
func (a *AssociationAttributes) XLinkType() string { return a.Type.Get(XLinkTypeSimple) }

// IsReference reports whether the association refers to its target by href
func (a *AssociationAttributes) IsReference() bool { return a.Href != "" }

// Association returns a itself, giving typed access to the attribute
// group of any value embedding it.
func (a *AssociationAttributes) Association() *AssociationAttributes { return a }

func (a *AssociationAttributes) unmarshalAttr(attr xml.Attr) (bool, error) {
	switch attr.Name {
	case nameXLinkType:
		return true, a.Type.UnmarshalXMLAttr(attr)
	case nameXLinkHref:
		a.Href = attr.Value
	case nameXLinkRole:
		a.Role = attr.Value
	case nameXLinkArcrole:
		a.Arcrole = attr.Value
	case nameXLinkTitle:
		a.Title = attr.Value
	case nameXLinkShow:
		a.Show = attr.Value
	case nameXLinkActuate:
		a.Actuate = attr.Value
	case nameRemoteSchema:
		a.RemoteSchema = attr.Value
	default:
		return false, nil
	}
	return true, nil
}

func (a *AssociationAttributes) marshalAttrs() ([]xml.Attr, error) {
	var attrs []xml.Attr
	t, err := a.Type.MarshalXMLAttr(nameXLinkType)
	if err != nil {
		return nil, err
	}
	if t.Name.Local != "" {
		attrs = append(attrs, t)
	}
	for _, kv := range []struct {
		name  xml.Name
		value string
	}{
		{nameXLinkHref, a.Href},
		{nameXLinkRole, a.Role},
		{nameXLinkArcrole, a.Arcrole},
		{nameXLinkTitle, a.Title},
		{nameXLinkShow, a.Show},
		{nameXLinkActuate, a.Actuate},
		{nameRemoteSchema, a.RemoteSchema},
	} {
		if kv.value != "" {
			attrs = append(attrs, xml.Attr{Name: kv.name, Value: kv.value})
		}
	}
	return attrs, nil
}

// Property is a GML property element which either contains one object
// of type T (typically a substitution group interface) or refers to one
// through its association attributes.
type Property[T any] struct {
	AssociationAttributes
	Value T `xml:"-"`
}

// NewProperty returns a property containing v
func NewProperty[T any](v T) Property[T] { return Property[T]{Value: v} }

// NewReference returns a property referring to href
func NewReference[T any](href string) Property[T] {
	return Property[T]{AssociationAttributes: AssociationAttributes{Href: href}}
}

// HasValue reports whether the property contains a value
func (p *Property[T]) HasValue() bool { return !isNil(p.Value) }

func (p *Property[T]) content() (bool, string) { return p.HasValue(), p.Href }

func (p *Property[T]) childNodes() []childNode {
	if !p.HasValue() {
		return nil
	}
	return []childNode{{name: memberName(p.Value), value: p.Value}}
}

func (p *Property[T]) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return p.unmarshalWith(d, start, nil)
}

func (p Property[T]) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return p.marshalWith(e, start, nil)
}

// unmarshalWith decodes the property, passing attributes other than the
// association attributes to extra.
func (p *Property[T]) unmarshalWith(d *xml.Decoder, start xml.StartElement, extra func(xml.Attr) error) error {
	return unmarshalProperty(d, start, &p.AssociationAttributes, extra, func(se xml.StartElement) error {
		v, err := decodeMember[T](d, se)
		if err == nil {
			p.Value = v
		}
		return err
	})
}

func (p *Property[T]) marshalWith(e *xml.Encoder, start xml.StartElement, extra []xml.Attr) error {
	return marshalProperty(e, start, &p.AssociationAttributes, extra, p.Value)
}

// DirectedProperty is a topology property: a Property with an
// orientation sign, which defaults to "+".
type DirectedProperty[T any] struct {
	Orientation Attr[SignType] `xml:"orientation,attr"`
	Property[T]
}

// NewDirectedProperty returns a property containing v with the given orientation
func NewDirectedProperty[T any](v T, orientation SignType) DirectedProperty[T] {
	return DirectedProperty[T]{Orientation: NewAttr(orientation), Property: NewProperty(v)}
}

// OrientationValue returns the orientation, or "+" if unset
func (p *DirectedProperty[T]) OrientationValue() SignType { return p.Orientation.Get(SignPositive) }

func (p *DirectedProperty[T]) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return p.unmarshalWith(d, start, func(attr xml.Attr) error {
		if attr.Name == nameOrientation {
			return p.Orientation.UnmarshalXMLAttr(attr)
		}
		return nil
	})
}

func (p DirectedProperty[T]) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	o, err := p.Orientation.MarshalXMLAttr(nameOrientation)
	if err != nil {
		return err
	}
	return p.marshalWith(e, start, optionalAttrs(o))
}

// Inline is a property which must contain its value; it carries no
// association attributes.
type Inline[T any] struct {
	Value T `xml:"-"`
}

// NewInline returns an inline property containing v
func NewInline[T any](v T) Inline[T] { return Inline[T]{Value: v} }

// HasValue reports whether the property contains a value
func (p *Inline[T]) HasValue() bool { return !isNil(p.Value) }

func (p *Inline[T]) childNodes() []childNode {
	if !p.HasValue() {
		return nil
	}
	return []childNode{{name: memberName(p.Value), value: p.Value}}
}

func (p *Inline[T]) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var ignored AssociationAttributes
	return unmarshalProperty(d, start, &ignored, nil, func(se xml.StartElement) error {
		v, err := decodeMember[T](d, se)
		if err == nil {
			p.Value = v
		}
		return err
	})
}

func (p Inline[T]) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return marshalProperty(e, start, nil, nil, p.Value)
}

// ArrayProperty is a GML array property: an ordered list of contained
// members, all of type T.
type ArrayProperty[T any] struct {
	Members []T `xml:"-"`
}

// NewArrayProperty returns an array property of members
func NewArrayProperty[T any](members ...T) ArrayProperty[T] { return ArrayProperty[T]{Members: members} }

// Len returns the number of members
func (p *ArrayProperty[T]) Len() int { return len(p.Members) }

func (p *ArrayProperty[T]) childNodes() []childNode {
	nodes := make([]childNode, 0, len(p.Members))
	for _, m := range p.Members {
		if !isNil(m) {
			nodes = append(nodes, childNode{name: memberName(m), value: m})
		}
	}
	return nodes
}

func (p *ArrayProperty[T]) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var ignored AssociationAttributes
	return unmarshalProperty(d, start, &ignored, nil, func(se xml.StartElement) error {
		v, err := decodeMember[T](d, se)
		if err == nil {
			p.Members = append(p.Members, v)
		}
		return err
	})
}

func (p ArrayProperty[T]) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	members := make([]any, 0, len(p.Members))
	for _, m := range p.Members {
		members = append(members, m)
	}
	return marshalProperty(e, start, nil, nil, members...)
}

// Element is a member of a substitution group appearing directly, not
// wrapped in a property element. Slices of Element are decoded from
// xml:",any" fields.
type Element[T any] struct {
	Value T `xml:"-"`
}

// NewElement returns an Element holding v
func NewElement[T any](v T) Element[T] { return Element[T]{Value: v} }

func (m *Element[T]) member() (string, any) {
	if isNil(m.Value) {
		return "", nil
	}
	return memberName(m.Value), m.Value
}

func (m *Element[T]) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	v, err := decodeMember[T](d, start)
	if err == nil {
		m.Value = v
	}
	return err
}

func (m Element[T]) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	if isNil(m.Value) {
		return nil
	}
	return encodeMember(e, m.Value)
}

// childNode is a named contained value, used by Walk.
type childNode struct {
	name  string
	value any
}

// parent is implemented by values whose contained children are not
// plain struct fields (properties and ordered choices).
type parent interface {
	childNodes() []childNode
}

// propertyContent is implemented by association properties.
type propertyContent interface {
	content() (hasValue bool, href string)
}

// PropertyContent reports whether v is an association property and if
// so, whether it contains a value and what it refers to.
func PropertyContent(v any) (isProperty, hasValue bool, href string) {
	pc, ok := v.(propertyContent)
	if !ok {
		return false, false, ""
	}
	hasValue, href = pc.content()
	return true, hasValue, href
}

// optionalAttrs drops the zero attributes returned for unset values.
func optionalAttrs(attrs ...xml.Attr) []xml.Attr {
	var out []xml.Attr
	for _, a := range attrs {
		if a.Name.Local != "" {
			out = append(out, a)
		}
	}
	return out
}

func unmarshalProperty(d *xml.Decoder, start xml.StartElement, a *AssociationAttributes, extra func(xml.Attr) error, member func(xml.StartElement) error) error {
	for _, attr := range start.Attr {
		ok, err := a.unmarshalAttr(attr)
		if err != nil {
			return err
		}
		if !ok && extra != nil {
			if err := extra(attr); err != nil {
				return err
			}
		}
	}
	for {
		tok, err := d.Token()
		if err != nil {
			return errors.WithStack(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := member(t); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func marshalProperty(e *xml.Encoder, start xml.StartElement, a *AssociationAttributes, extra []xml.Attr, members ...any) error {
	if a != nil {
		attrs, err := a.marshalAttrs()
		if err != nil {
			return err
		}
		start.Attr = append(start.Attr, attrs...)
	}
	start.Attr = append(start.Attr, extra...)
	if err := e.EncodeToken(start); err != nil {
		return errors.WithStack(err)
	}
	for _, m := range members {
		if isNil(m) {
			continue
		}
		if err := encodeMember(e, m); err != nil {
			return err
		}
	}
	return errors.WithStack(e.EncodeToken(start.End()))
}

// decodeMember decodes the element started by start as a global GML
// element which must be assignable to T.
func decodeMember[T any](d *xml.Decoder, start xml.StartElement) (T, error) {
	var zero T
	obj, known := New(start.Name)
	if !known {
		obj = new(GenericFeature)
	}
	v, ok := obj.(T)
	if !ok {
		if err := d.Skip(); err != nil {
			return zero, errors.WithStack(err)
		}
		if !known {
			return zero, errors.WithStack(gmlerr.UnknownElement(start.Name.Local,
				gmlerr.WithMessage(fmt.Sprintf("element {%s}%s is not declared", start.Name.Space, start.Name.Local))))
		}
		return zero, errors.WithStack(gmlerr.UnexpectedElement(start.Name.Local,
			gmlerr.WithMessage(fmt.Sprintf("%s cannot substitute for %s", start.Name.Local, typeName[T]()))))
	}
	if err := d.DecodeElement(obj, &start); err != nil {
		return zero, errors.Wrapf(err, "decode <%s>", start.Name.Local)
	}
	return v, nil
}

// encodeMember encodes v as its global element.
func encodeMember(e *xml.Encoder, v any) error {
	if g, ok := v.(*GenericFeature); ok {
		return errors.WithStack(e.Encode(g))
	}
	name, ok := ElementName(v)
	if !ok {
		return errors.Errorf("no global element declared for %T", v)
	}
	if name.Space == xmlutil.NSGML {
		// inherit the default namespace of the enclosing element
		name.Space = ""
	}
	return errors.WithStack(e.EncodeElement(v, xml.StartElement{Name: name}))
}

func memberName(v any) string {
	if g, ok := v.(*GenericFeature); ok {
		return g.XMLName.Local
	}
	if name, ok := ElementName(v); ok {
		return name.Local
	}
	return reflect.TypeOf(v).String()
}

func typeName[T any]() string { return reflect.TypeOf((*T)(nil)).Elem().String() }

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	}
	return false
}
