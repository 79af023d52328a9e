/*
Package gml is a set of Geography Markup Language (GML 3.1.1) support
libraries.

The model sub-package holds the object model: geometry, topology,
coordinate reference systems, temporal objects, coverages, features,
dictionaries and values, along with the registry of global elements
and a tree walker. The codec sub-package decodes documents into the
model and encodes them again with the gml and xlink prefixes declared
once at the root.

Decoded documents are checked against the constraints the XML schema
places on them by schema.Validate, and xlink references between objects
are indexed and resolved by the resolve sub-package. The query
sub-package selects elements with XPath and decodes them into the
model.

All diagnostics are *gmlerr.Error values, collected in a gmlerr.List.

The gmllint command under cmd/ wraps these libraries for use from the
shell.
*/
package gml
