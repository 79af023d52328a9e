package model

import (
	"encoding"
	"encoding/json"
	"encoding/xml"
	"reflect"
	"strconv"

	"github.com/pkg/errors"
)

// Attr is an optional attribute value which distinguishes an explicitly
// assigned value from an absent one. An absent attribute takes the
// schema default supplied to Get.
//
// The zero Attr is unset. Attr marshals as an XML attribute only when
// set.
type Attr[T any] struct {
	value T
	set   bool
}

// NewAttr returns an Attr set to v
func NewAttr[T any](v T) Attr[T] { return Attr[T]{value: v, set: true} }

// Get returns the assigned value, or def if the attribute is unset
func (a Attr[T]) Get(def T) T {
	if !a.set {
		return def
	}
	return a.value
}

// Set assigns v and marks the attribute set
func (a *Attr[T]) Set(v T) {
	a.value = v
	a.set = true
}

// Unset reverts the attribute to its default and marks it unset
func (a *Attr[T]) Unset() {
	var zero T
	a.value = zero
	a.set = false
}

// IsSet reports whether a value was explicitly assigned
func (a Attr[T]) IsSet() bool { return a.set }

// Interface returns the assigned value, or nil if the attribute is unset
func (a Attr[T]) Interface() any {
	if !a.set {
		return nil
	}
	return a.value
}

// MarshalXMLAttr implements xml.MarshalerAttr. Unset attributes are
// omitted.
func (a Attr[T]) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	if !a.set {
		return xml.Attr{}, nil
	}
	s, err := formatText(a.value)
	if err != nil {
		return xml.Attr{}, errors.Wrapf(err, "attribute %s", name.Local)
	}
	return xml.Attr{Name: name, Value: s}, nil
}

// UnmarshalXMLAttr implements xml.UnmarshalerAttr
func (a *Attr[T]) UnmarshalXMLAttr(attr xml.Attr) error {
	if err := parseText(attr.Value, &a.value); err != nil {
		return errors.Wrapf(err, "attribute %s", attr.Name.Local)
	}
	a.set = true
	return nil
}

// MarshalJSON writes the value, or null when unset
func (a Attr[T]) MarshalJSON() ([]byte, error) {
	if !a.set {
		return []byte("null"), nil
	}
	return json.Marshal(a.value)
}

// IsZero reports whether the attribute is unset, for encoders honouring omitempty
func (a Attr[T]) IsZero() bool { return !a.set }

func formatText(v any) (string, error) {
	if m, ok := v.(encoding.TextMarshaler); ok {
		b, err := m.MarshalText()
		return string(b), err
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	}
	return "", errors.Errorf("unsupported attribute type %T", v)
}

func parseText(s string, dst any) error {
	if u, ok := dst.(encoding.TextUnmarshaler); ok {
		return u.UnmarshalText([]byte(s))
	}
	rv := reflect.ValueOf(dst).Elem()
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(s)
		return nil
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return errors.WithStack(err)
		}
		rv.SetBool(b)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, rv.Type().Bits())
		if err != nil {
			return errors.WithStack(err)
		}
		rv.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 10, rv.Type().Bits())
		if err != nil {
			return errors.WithStack(err)
		}
		rv.SetUint(u)
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, rv.Type().Bits())
		if err != nil {
			return errors.WithStack(err)
		}
		rv.SetFloat(f)
		return nil
	}
	return errors.Errorf("unsupported attribute type %s", rv.Type())
}
