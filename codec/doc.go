// Package codec reads and writes GML documents.
//
// Decode instantiates the root element through the model registry and
// decodes the document into it; Encode writes a model value as a root
// element in the GML namespace with the gml and xlink prefixes
// declared. Errors raised while decoding carry a *gmlerr.Error in
// their chain.
//
// Documents are written in two passes. The first is an xml.Encoder
// pass over the model; the second rewrites its tokens so that every
// namespace prefix is declared once, on the outermost element that
// needs it.
package codec
