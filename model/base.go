package model

import "encoding/xml"

// AbstractGMLType is the base of every GML object.
type AbstractGMLType struct {
	ID               string                 `xml:"http://www.opengis.net/gml id,attr,omitempty"`
	MetaDataProperty []MetaDataPropertyType `xml:"metaDataProperty"`
	Description      *StringOrRefType       `xml:"description"`
	Name             []CodeType             `xml:"name"`
}

func (o *AbstractGMLType) GML() *AbstractGMLType { return o }

// Names returns the values of the object's names, in order
func (o *AbstractGMLType) Names() []string {
	names := make([]string, len(o.Name))
	for i, n := range o.Name {
		names[i] = n.Value
	}
	return names
}

// AbstractMetaDataType is the base of metadata packages.
type AbstractMetaDataType struct {
	ID string `xml:"http://www.opengis.net/gml id,attr,omitempty"`
}

func (m *AbstractMetaDataType) AbstractMetaData() *AbstractMetaDataType { return m }

// GenericMetaDataType holds metadata of any content model.
type GenericMetaDataType struct {
	AbstractMetaDataType
	Content string `xml:",innerxml"`
}

// MetaDataPropertyType contains or refers to a metadata package, which
// may be of any (including non-GML) type.
type MetaDataPropertyType struct {
	About string `xml:"about,attr,omitempty"`
	Property[any]
}

func (p *MetaDataPropertyType) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return p.unmarshalWith(d, start, func(attr xml.Attr) error {
		if attr.Name == nameAbout {
			p.About = attr.Value
		}
		return nil
	})
}

func (p MetaDataPropertyType) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return p.marshalWith(e, start, optionalAttrs(xml.Attr{Name: nameAbout, Value: p.About}))
}

// AssociationType is a generic property: any object, contained or
// referred to.
type AssociationType = Property[any]

// ArrayAssociationType is a generic array property.
type ArrayAssociationType = ArrayProperty[any]

// BagType is an unordered collection of objects.
type BagType struct {
	AbstractGMLType
	Member  []Property[any]     `xml:"member"`
	Members *ArrayProperty[any] `xml:"members"`
}

// ArrayType is an ordered collection of objects of one type.
type ArrayType struct {
	AbstractGMLType
	Members *ArrayProperty[any] `xml:"members"`
}

// DefinitionType is a definition of a concept; it requires a gml:id and
// at least one name.
type DefinitionType struct {
	AbstractGMLType
}

func (d *DefinitionType) Definition() *DefinitionType { return d }

// DefinitionProxyType refers to a definition held elsewhere.
type DefinitionProxyType struct {
	DefinitionType
	DefinitionRef ReferenceType `xml:"definitionRef" gml:"occurs=1..1"`
}

// DictionaryType is a collection of definitions.
type DictionaryType struct {
	DefinitionType
	Entries DictionaryMembers `xml:",any"`
}

// DictionaryEntryType contains or refers to one definition.
type DictionaryEntryType = Property[Definition]

// IndirectEntryType holds a proxy for a remote definition.
type IndirectEntryType struct {
	DefinitionProxy DefinitionProxyType `xml:"DefinitionProxy" gml:"occurs=1..1"`
}
