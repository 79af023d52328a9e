package model

import (
	"encoding/xml"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/andaru/gml/xmlutil"
	"golang.org/x/exp/maps"
)

var registry = struct {
	sync.RWMutex
	byName map[xml.Name]func() any
	byType map[reflect.Type]xml.Name
}{
	byName: map[xml.Name]func() any{},
	byType: map[reflect.Type]xml.Name{},
}

// Register declares a global element. fn must return a new pointer to
// the zero value of the element's type. When several elements share a
// type, the first registered is that type's canonical element name.
//
// Register panics if name is already registered.
func Register(name xml.Name, fn func() any) {
	t := reflect.TypeOf(fn())
	if t == nil || t.Kind() != reflect.Pointer {
		panic(fmt.Sprintf("model: element %s must be created as a pointer, got %v", name.Local, t))
	}
	registry.Lock()
	defer registry.Unlock()
	if _, dup := registry.byName[name]; dup {
		panic(fmt.Sprintf("model: element {%s}%s registered twice", name.Space, name.Local))
	}
	registry.byName[name] = fn
	if _, ok := registry.byType[t]; !ok {
		registry.byType[t] = name
	}
}

// New returns a new zero object for the global element name. Names
// without a namespace are looked up in the GML namespace.
func New(name xml.Name) (any, bool) {
	registry.RLock()
	defer registry.RUnlock()
	fn, ok := registry.byName[name]
	if !ok && name.Space == "" {
		fn, ok = registry.byName[xmlutil.GMLName(name.Local)]
	}
	if !ok {
		return nil, false
	}
	return fn(), true
}

// ElementName returns the canonical global element name for v, which
// must be a pointer to a registered type.
func ElementName(v any) (xml.Name, bool) {
	if g, ok := v.(*GenericFeature); ok {
		return g.XMLName, true
	}
	registry.RLock()
	defer registry.RUnlock()
	name, ok := registry.byType[reflect.TypeOf(v)]
	return name, ok
}

// Elements returns every registered element name, sorted by namespace
// then local name.
func Elements() []xml.Name {
	registry.RLock()
	names := maps.Keys(registry.byName)
	registry.RUnlock()
	sort.Slice(names, func(i, j int) bool {
		if names[i].Space != names[j].Space {
			return names[i].Space < names[j].Space
		}
		return names[i].Local < names[j].Local
	})
	return names
}

// register declares the GML element local with type T.
func register[T any](local string) {
	Register(xmlutil.GMLName(local), func() any { return new(T) })
}
