package model

import (
	"errors"
	"reflect"
	"strconv"
)

// WalkFunc is called by Walk for each contained value with its element
// path. Returning SkipChildren skips the value's contents; any other
// error stops the walk.
type WalkFunc func(path string, v any) error

// SkipChildren is returned by a WalkFunc to skip the contents of a value.
var SkipChildren = errors.New("skip children")

// choiceMember is implemented by the tagged unions held in ordered
// choice slices.
type choiceMember interface {
	member() (string, any)
}

// Walk visits v and every value it contains, depth first in document
// order. Values referred to by xlink:href are not followed. v should be
// a pointer to a model object; property wrappers are visited as values
// in their own right, followed by their content.
func Walk(v any, fn WalkFunc) error {
	if isNil(v) {
		return nil
	}
	err := visit("/"+memberName(v), reflect.ValueOf(v), fn)
	if err == SkipChildren {
		return nil
	}
	return err
}

func visit(path string, rv reflect.Value, fn WalkFunc) error {
	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return visit(path, rv.Elem(), fn)
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		if rv.Elem().Kind() != reflect.Struct {
			if err := fn(path, rv.Interface()); err != nil && err != SkipChildren {
				return err
			}
			return nil
		}
		return visitStruct(path, rv, fn)
	case reflect.Struct:
		if !rv.CanAddr() {
			p := reflect.New(rv.Type())
			p.Elem().Set(rv)
			rv = p.Elem()
		}
		return visitStruct(path, rv.Addr(), fn)
	}
	return nil
}

func visitStruct(path string, ptr reflect.Value, fn WalkFunc) error {
	if err := fn(path, ptr.Interface()); err != nil {
		if err == SkipChildren {
			return nil
		}
		return err
	}
	if p, ok := ptr.Interface().(parent); ok {
		for _, c := range p.childNodes() {
			if err := visit(path+"/"+c.name, reflect.ValueOf(c.value), fn); err != nil {
				return err
			}
		}
		return nil
	}
	return visitFields(path, ptr.Elem(), fn)
}

func visitFields(path string, sv reflect.Value, fn WalkFunc) error {
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
			if fv.Kind() == reflect.Struct {
				if err := visitFields(path, fv, fn); err != nil {
					return err
				}
			}
			continue
		}
		name, flags := parseXMLTag(tag)
		if name == "-" || flags.has("attr", "chardata", "innerxml", "comment") {
			continue
		}
		if name == "" {
			name = f.Name
		}
		if flags.has("any") && fv.Kind() == reflect.Struct {
			if c, ok := fv.Addr().Interface().(choiceMember); ok {
				if local, v := c.member(); !isNil(v) {
					if err := visit(path+"/"+local, reflect.ValueOf(v), fn); err != nil {
						return err
					}
				}
			}
			continue
		}
		if flags.has("any") && fv.Kind() == reflect.Slice {
			for j := 0; j < fv.Len(); j++ {
				c, ok := fv.Index(j).Addr().Interface().(choiceMember)
				if !ok {
					continue
				}
				local, v := c.member()
				if isNil(v) {
					continue
				}
				if err := visit(path+"/"+local+"["+strconv.Itoa(j+1)+"]", reflect.ValueOf(v), fn); err != nil {
					return err
				}
			}
			continue
		}
		if fv.Kind() == reflect.Slice && !isTextList(fv) {
			for j := 0; j < fv.Len(); j++ {
				if err := visit(path+"/"+name+"["+strconv.Itoa(j+1)+"]", fv.Index(j), fn); err != nil {
					return err
				}
			}
			continue
		}
		if err := visit(path+"/"+name, fv, fn); err != nil {
			return err
		}
	}
	return nil
}
