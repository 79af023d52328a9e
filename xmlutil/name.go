package xmlutil

import "encoding/xml"

// XMLName is a shortcut for creating xml.Name, where typically you want at least
// a local name, and perhaps a namespace value as well.
func XMLName(local string, spaces ...string) xml.Name {
	n := xml.Name{Local: local}
	if len(spaces) > 0 {
		n.Space = spaces[0]
	}
	return n
}

// GMLName returns the name of local in the GML namespace.
func GMLName(local string) xml.Name { return xml.Name{Space: NSGML, Local: local} }

// XLinkName returns the name of local in the XLink namespace.
func XLinkName(local string) xml.Name { return xml.Name{Space: NSXLink, Local: local} }

// IsGML reports whether n is in the GML namespace.
func IsGML(n xml.Name) bool { return n.Space == NSGML }
