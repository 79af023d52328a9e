// Package query selects elements of GML documents with XPath.
//
// Within an expression the gml prefix names the GML namespace and the
// xlink prefix the XLink namespace, whatever prefixes the document
// itself uses:
//
//	doc, err := query.Parse(r)
//	...
//	points, err := doc.Decode("//gml:featureMember/*/gml:location/gml:Point")
//
// Compiled expressions are kept in a bounded cache shared by all
// documents.
package query
