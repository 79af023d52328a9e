package model

import (
	"reflect"
	"strconv"
	"strings"
)

// Unbounded is the Max of an Occurs without an upper bound.
const Unbounded = -1

// Occurs is the cardinality of a property, from the gml:"occurs=L..U"
// struct tag.
type Occurs struct {
	Min int
	Max int
}

func (o Occurs) String() string {
	if o.Max == Unbounded {
		return strconv.Itoa(o.Min) + "..*"
	}
	return strconv.Itoa(o.Min) + ".." + strconv.Itoa(o.Max)
}

// FieldInfo describes one XML-mapped field of a model object, with the
// number of values present.
type FieldInfo struct {
	// Name is the element or attribute local name
	Name string
	Attr bool
	// Occurs is the declared cardinality; fields without an occurs tag
	// are 0..1 (singular) or 0..* (slices).
	Occurs Occurs
	// Choice names the choice group the field belongs to. Fields of one
	// group sharing a Branch (gml:"choice=group.branch") form a sequence
	// chosen together; otherwise each field is its own branch.
	Choice         string
	Branch         string
	ChoiceOptional bool
	// Fixed is the only value the field may hold, from gml:"fixed=V"
	Fixed string
	Count int
	Value any
}

// Restriction narrows a property a type inherits from its base type.
// A zero Occurs keeps the inherited cardinality.
type Restriction struct {
	Occurs Occurs
	Fixed  string
}

// restricted is implemented by types derived by restriction.
type restricted interface {
	restrictions() map[string]Restriction
}

// Fields returns the XML-mapped fields of the struct v points to, with
// embedded base types flattened in declaration order.
func Fields(v any) []FieldInfo {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	var fields []FieldInfo
	collectFields(rv, &fields)
	if r, ok := v.(restricted); ok {
		for i, f := range fields {
			rs, ok := r.restrictions()[f.Name]
			if !ok {
				continue
			}
			if rs.Occurs != (Occurs{}) {
				fields[i].Occurs = rs.Occurs
			}
			if rs.Fixed != "" {
				fields[i].Fixed = rs.Fixed
			}
		}
	}
	return fields
}

func collectFields(sv reflect.Value, out *[]FieldInfo) {
	t := sv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Name == "XMLName" {
			continue
		}
		tag := f.Tag.Get("xml")
		fv := sv.Field(i)
		if f.Anonymous && tag == "" {
			if fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct && !isParentType(fv) {
				collectFields(fv, out)
			}
			continue
		}
		name, flags := parseXMLTag(tag)
		if name == "-" || flags.has("chardata", "innerxml", "comment") {
			continue
		}
		if name == "" {
			name = f.Name
		}
		info := FieldInfo{
			Name:   name,
			Attr:   flags.has("attr"),
			Occurs: Occurs{Min: 0, Max: 1},
			Count:  count(fv),
			Value:  fieldValue(fv),
		}
		if fv.Kind() == reflect.Slice && !isTextList(fv) {
			info.Occurs.Max = Unbounded
		}
		gt := parseGMLTag(f.Tag.Get("gml"))
		if gt.occurs != nil {
			info.Occurs = *gt.occurs
		}
		info.Fixed = gt.fixed
		if choice := gt.choice; choice != "" {
			info.ChoiceOptional = strings.Contains(choice, "?")
			info.Choice, info.Branch, _ = strings.Cut(strings.ReplaceAll(choice, "?", ""), ".")
			if info.Branch == "" {
				info.Branch = name
			}
		}
		*out = append(*out, info)
	}
}

func fieldValue(fv reflect.Value) any {
	if fv.CanAddr() {
		return fv.Addr().Interface()
	}
	return fv.Interface()
}

// count returns the number of values present in a field.
func count(fv reflect.Value) int {
	switch fv.Kind() {
	case reflect.Slice:
		if isTextList(fv) {
			if fv.Len() > 0 {
				return 1
			}
			return 0
		}
		return fv.Len()
	case reflect.Pointer, reflect.Interface, reflect.Map:
		if fv.IsNil() {
			return 0
		}
		return 1
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		// non-pointer numbers are always encoded
		return 1
	case reflect.Struct:
		if fv.CanAddr() {
			switch v := fv.Addr().Interface().(type) {
			case interface{ IsSet() bool }:
				return boolCount(v.IsSet())
			case propertyContent:
				has, href := v.content()
				return boolCount(has || href != "")
			case interface{ HasValue() bool }:
				return boolCount(v.HasValue())
			case interface{ Len() int }:
				return boolCount(v.Len() > 0)
			case choiceMember:
				_, m := v.member()
				return boolCount(!isNil(m))
			}
		}
		return boolCount(!fv.IsZero())
	}
	return boolCount(!fv.IsZero())
}

func boolCount(b bool) int {
	if b {
		return 1
	}
	return 0
}

// isTextList reports whether a slice is a list-valued simple type
// (e.g. DoubleList) encoded as a single element or attribute.
func isTextList(fv reflect.Value) bool {
	return fv.Type().Name() != "" && fv.CanAddr() && fv.Addr().Type().Implements(textUnmarshalerType)
}

func isParentType(sv reflect.Value) bool {
	return sv.CanAddr() && sv.Addr().Type().Implements(parentType)
}

var (
	parentType          = reflect.TypeOf((*parent)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*interface{ UnmarshalText([]byte) error })(nil)).Elem()
)

type tagFlags []string

func (f tagFlags) has(names ...string) bool {
	for _, flag := range f {
		for _, n := range names {
			if flag == n {
				return true
			}
		}
	}
	return false
}

// parseXMLTag returns the local name and flags of an encoding/xml tag.
func parseXMLTag(tag string) (string, tagFlags) {
	parts := strings.Split(tag, ",")
	name := parts[0]
	if i := strings.LastIndexByte(name, ' '); i >= 0 {
		name = name[i+1:]
	}
	return name, tagFlags(parts[1:])
}

// parseGMLTag parses a gml:"occurs=L..U,choice=NAME[.BRANCH][?],fixed=V" tag.
type gmlTag struct {
	occurs *Occurs
	choice string
	fixed  string
}

func parseGMLTag(tag string) (gt gmlTag) {
	for _, part := range strings.Split(tag, ",") {
		key, value, _ := strings.Cut(strings.TrimSpace(part), "=")
		switch key {
		case "occurs":
			lo, hi, ok := strings.Cut(value, "..")
			if !ok {
				hi = lo
			}
			o := Occurs{Max: Unbounded}
			o.Min, _ = strconv.Atoi(lo)
			if hi != "*" {
				o.Max, _ = strconv.Atoi(hi)
			}
			gt.occurs = &o
		case "choice":
			gt.choice = value
		case "fixed":
			gt.fixed = value
		}
	}
	return gt
}
