package xmlutil

import (
	"encoding/xml"
	"sort"
)

// PrefixMap is a prefix to namespace URI map
type PrefixMap map[string]string

// NewPrefixMap returns a PrefixMap, containing the namespace
// declarations among the passed XML attributes. The default namespace
// is held under the empty prefix.
func NewPrefixMap(attrs ...xml.Attr) PrefixMap {
	pmap := PrefixMap{}
	for _, attr := range attrs {
		switch {
		case attr.Name.Space == "xmlns":
			pmap[attr.Name.Local] = attr.Value
		case IsDefaultDecl(attr):
			pmap[""] = attr.Value
		}
	}
	return pmap
}

// IsDecl reports whether attr declares a namespace, as decoded by an
// xml.Decoder.
func IsDecl(attr xml.Attr) bool { return attr.Name.Space == "xmlns" || IsDefaultDecl(attr) }

// IsDefaultDecl reports whether attr declares the default namespace.
func IsDefaultDecl(attr xml.Attr) bool { return attr.Name.Space == "" && attr.Name.Local == "xmlns" }

// DefaultPrefixMap returns the prefixes conventionally declared on the
// root element of a GML document.
func DefaultPrefixMap() PrefixMap {
	return PrefixMap{
		PrefixGML:   NSGML,
		PrefixXLink: NSXLink,
	}
}

// Attr returns the prefix map contents as a series of xmlns:<prefix>=<nsuri> attributes,
// sorted lexically by prefix.
func (m PrefixMap) Attr() (a []xml.Attr) {
	for k, v := range m {
		if k == "" {
			continue
		}
		a = append(a, xml.Attr{Name: xml.Name{Space: "xmlns", Local: k}, Value: v})
	}
	if len(a) > 0 {
		// sort lexically by prefix
		sort.Slice(a, func(i int, j int) bool { return a[i].Name.Local < a[j].Name.Local })
	}
	return a
}

// Decls returns the prefix map contents as literal xmlns:<prefix>
// attributes (and xmlns for the default namespace), sorted by prefix.
// An xml.Encoder writes literal attributes as they are, so Decls binds
// prefixes used in raw content such as xml:",innerxml" fields.
func (m PrefixMap) Decls() (a []xml.Attr) {
	for k, v := range m {
		name := "xmlns"
		if k != "" {
			name += ":" + k
		}
		a = append(a, xml.Attr{Name: xml.Name{Local: name}, Value: v})
	}
	sort.Slice(a, func(i int, j int) bool { return a[i].Name.Local < a[j].Name.Local })
	return a
}

// Namespace returns the namespace URI for the given prefix
func (m PrefixMap) Namespace(prefix string) string { return m[prefix] }

// Prefix returns any prefixes found for the namespace URI, sorted lexically.
func (m PrefixMap) Prefix(nsURI string) (pfxes []string) {
	for k, v := range m {
		if nsURI == v {
			pfxes = append(pfxes, k)
		}
	}
	sort.Strings(pfxes)
	return pfxes
}

// Merge adds the entries of other not already bound in m, returning m.
func (m PrefixMap) Merge(other PrefixMap) PrefixMap {
	for k, v := range other {
		if _, ok := m[k]; !ok {
			m[k] = v
		}
	}
	return m
}
