package model

import (
	"encoding/xml"
	"fmt"
	"reflect"

	"github.com/andaru/gml/gmlerr"
	"github.com/pkg/errors"
)

// unionField is one branch of a tagged union: the element name and a
// pointer to the (pointer typed) field holding it.
type unionField struct {
	name string
	ptr  any
}

func unionMember(fields []unionField) (string, any) {
	for _, f := range fields {
		if v := reflect.ValueOf(f.ptr).Elem(); !v.IsNil() {
			return f.name, v.Interface()
		}
	}
	return "", nil
}

func unmarshalUnion(d *xml.Decoder, start xml.StartElement, fields []unionField) error {
	for _, f := range fields {
		if f.name == start.Name.Local {
			return errors.Wrapf(d.DecodeElement(f.ptr, &start), "decode <%s>", f.name)
		}
	}
	if err := d.Skip(); err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(gmlerr.UnexpectedElement(start.Name.Local,
		gmlerr.WithMessage(fmt.Sprintf("%s is not allowed here", start.Name.Local))))
}

func marshalUnion(e *xml.Encoder, fields []unionField) error {
	name, v := unionMember(fields)
	if v == nil {
		return nil
	}
	return errors.WithStack(e.EncodeElement(v, xml.StartElement{Name: xml.Name{Local: name}}))
}

// PointChoice is one control point of a position list: exactly one of
// its fields is set.
type PointChoice struct {
	Pos           *DirectPositionType
	PointProperty *Property[*PointType]
	PointRep      *Property[*PointType]
	Coord         *CoordType
}

func (c *PointChoice) fields() []unionField {
	return []unionField{{"pos", &c.Pos}, {"pointProperty", &c.PointProperty}, {"pointRep", &c.PointRep}, {"coord", &c.Coord}}
}

func (c *PointChoice) member() (string, any) { return unionMember(c.fields()) }

func (c *PointChoice) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return unmarshalUnion(d, start, c.fields())
}

func (c PointChoice) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	return marshalUnion(e, c.fields())
}

// Points is an ordered list of control points in document order.
type Points []PointChoice

// Pos returns the direct positions, in order
func (p Points) Pos() []*DirectPositionType {
	var out []*DirectPositionType
	for _, c := range p {
		if c.Pos != nil {
			out = append(out, c.Pos)
		}
	}
	return out
}

// PointProperties returns the pointProperty members, in order
func (p Points) PointProperties() []*PointPropertyType {
	var out []*PointPropertyType
	for _, c := range p {
		if c.PointProperty != nil {
			out = append(out, c.PointProperty)
		}
	}
	return out
}

// PointReps returns the pointRep members, in order
func (p Points) PointReps() []*PointPropertyType {
	var out []*PointPropertyType
	for _, c := range p {
		if c.PointRep != nil {
			out = append(out, c.PointRep)
		}
	}
	return out
}

// Coords returns the coord members, in order
func (p Points) Coords() []*CoordType {
	var out []*CoordType
	for _, c := range p {
		if c.Coord != nil {
			out = append(out, c.Coord)
		}
	}
	return out
}

// AppendPos appends a direct position
func (p *Points) AppendPos(pos *DirectPositionType) { *p = append(*p, PointChoice{Pos: pos}) }

// AppendPoint appends a point property
func (p *Points) AppendPoint(pt *PointPropertyType) { *p = append(*p, PointChoice{PointProperty: pt}) }

// DictionaryMember is one entry of a dictionary, in document order.
type DictionaryMember struct {
	DictionaryEntry  *Property[Definition]
	DefinitionMember *Property[Definition]
	IndirectEntry    *IndirectEntryType
}

func (c *DictionaryMember) fields() []unionField {
	return []unionField{{"dictionaryEntry", &c.DictionaryEntry}, {"definitionMember", &c.DefinitionMember}, {"indirectEntry", &c.IndirectEntry}}
}

func (c *DictionaryMember) member() (string, any) { return unionMember(c.fields()) }

func (c *DictionaryMember) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return unmarshalUnion(d, start, c.fields())
}

func (c DictionaryMember) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	return marshalUnion(e, c.fields())
}

// DictionaryMembers is the ordered content of a dictionary.
type DictionaryMembers []DictionaryMember

// Entries returns the dictionaryEntry and definitionMember entries, in order
func (m DictionaryMembers) Entries() []*DictionaryEntryType {
	var out []*DictionaryEntryType
	for _, c := range m {
		switch {
		case c.DictionaryEntry != nil:
			out = append(out, c.DictionaryEntry)
		case c.DefinitionMember != nil:
			out = append(out, c.DefinitionMember)
		}
	}
	return out
}

// IndirectEntries returns the indirect entries, in order
func (m DictionaryMembers) IndirectEntries() []*IndirectEntryType {
	var out []*IndirectEntryType
	for _, c := range m {
		if c.IndirectEntry != nil {
			out = append(out, c.IndirectEntry)
		}
	}
	return out
}
