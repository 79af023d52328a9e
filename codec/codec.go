package codec

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"

	"github.com/andaru/gml/gmlerr"
	"github.com/andaru/gml/model"
	"github.com/andaru/gml/xmlutil"
)

// Document is a decoded GML document: the root object, the name it was
// found under and the namespaces declared on the root element.
type Document struct {
	Name       xml.Name
	Root       any
	Namespaces xmlutil.PrefixMap
}

// Decode reads a GML document from r and returns its root object, a
// pointer to a model type.
func Decode(r io.Reader, opts ...Option) (any, error) {
	doc, err := DecodeDocument(r, opts...)
	if err != nil {
		return nil, err
	}
	return doc.Root, nil
}

// DecodeDocument reads a GML document from r.
func DecodeDocument(r io.Reader, opts ...Option) (*Document, error) {
	cfg := newConfig(opts)
	return decode(newDecoder(r, cfg), false)
}

// DecodeFragment decodes a single element cut from a larger document,
// with the prefixes of ns in scope.
func DecodeFragment(fragment string, ns xmlutil.PrefixMap, opts ...Option) (any, error) {
	cfg := newConfig(opts)
	doc, err := decode(newDecoder(strings.NewReader(xmlutil.Wrap(ns, fragment)), cfg), true)
	if err != nil {
		return nil, err
	}
	return doc.Root, nil
}

// Unmarshal decodes the GML document b.
func Unmarshal(b []byte, opts ...Option) (any, error) { return Decode(bytes.NewReader(b), opts...) }

func newDecoder(r io.Reader, cfg *config) *xml.Decoder {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel
	if cfg.lenient {
		d.Strict = false
		d.AutoClose = xml.HTMLAutoClose
		d.Entity = xml.HTMLEntity
	}
	return d
}

func decode(d *xml.Decoder, wrapped bool) (*Document, error) {
	start, err := rootElement(d, wrapped)
	if err != nil {
		return nil, err
	}
	doc := &Document{Name: start.Name, Namespaces: xmlutil.NewPrefixMap(start.Attr...)}
	v, ok := model.New(start.Name)
	if !ok {
		return nil, errors.WithStack(gmlerr.UnknownElement(start.Name.Local,
			gmlerr.WithPath("/"+start.Name.Local),
			gmlerr.WithMessage(fmt.Sprintf("no global element {%s}%s", start.Name.Space, start.Name.Local))))
	}
	if err := d.DecodeElement(v, &start); err != nil {
		return nil, decodeError(err)
	}
	if !wrapped {
		if err := trailer(d); err != nil {
			return nil, err
		}
	}
	glog.V(1).Infof("decoded <%s> as %T", start.Name.Local, v)
	doc.Root = v
	return doc, nil
}

// rootElement returns the start of the document element, skipping the
// enclosing element of a wrapped fragment.
func rootElement(d *xml.Decoder, wrapped bool) (xml.StartElement, error) {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return xml.StartElement{}, errors.WithStack(gmlerr.MalformedDocument(gmlerr.WithMessage("no root element")))
		} else if err != nil {
			return xml.StartElement{}, decodeError(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if wrapped {
				wrapped = false
				continue
			}
			return t.Copy(), nil
		case xml.EndElement:
			return xml.StartElement{}, errors.WithStack(gmlerr.MalformedDocument(gmlerr.WithMessage("no root element")))
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return xml.StartElement{}, errors.WithStack(gmlerr.MalformedDocument(
					gmlerr.WithMessage("character data before the root element")))
			}
		}
	}
}

// trailer checks nothing but whitespace, comments and processing
// instructions follow the root element.
func trailer(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return decodeError(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return errors.WithStack(gmlerr.MalformedDocument(
				gmlerr.WithElement(t.Name.Local),
				gmlerr.WithMessage("element after the root element")))
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return errors.WithStack(gmlerr.MalformedDocument(gmlerr.WithMessage("character data after the root element")))
			}
		}
	}
}

// decodeError returns err if it carries a diagnostic, otherwise a
// malformed-document diagnostic describing it.
func decodeError(err error) error {
	if _, ok := gmlerr.As(err); ok {
		return err
	}
	var syntax *xml.SyntaxError
	if errors.As(err, &syntax) {
		return errors.WithStack(gmlerr.MalformedDocument(gmlerr.WithMessage(fmt.Sprintf("line %d: %s", syntax.Line, syntax.Msg))))
	}
	return errors.WithStack(gmlerr.MalformedDocument(gmlerr.WithMessage(err.Error())))
}

// Encode writes v, a pointer to a model type with a global element,
// as a GML document.
func Encode(w io.Writer, v any, opts ...Option) error {
	return EncodeDocument(w, &Document{Root: v}, opts...)
}

// EncodeDocument writes doc, declaring its namespaces on the root
// element. The root is named doc.Name, or the canonical element name
// of doc.Root when Name is empty.
func EncodeDocument(w io.Writer, doc *Document, opts ...Option) error {
	cfg := newConfig(opts)
	name := doc.Name
	if name.Local == "" {
		var ok bool
		if name, ok = model.ElementName(doc.Root); !ok {
			return errors.Errorf("codec: %T is not a global element", doc.Root)
		}
	}
	if name.Space == "" {
		name.Space = xmlutil.NSGML
	}

	var first bytes.Buffer
	enc := xml.NewEncoder(&first)
	if cfg.indent != "" || cfg.prefix != "" {
		enc.Indent(cfg.prefix, cfg.indent)
	}
	if err := enc.EncodeElement(doc.Root, xml.StartElement{Name: name}); err != nil {
		return errors.Wrapf(err, "codec: encode %s", name.Local)
	}
	if err := enc.Flush(); err != nil {
		return errors.WithStack(err)
	}

	root := xmlutil.PrefixMap{}.Merge(doc.Namespaces).Merge(cfg.namespaces).Merge(xmlutil.DefaultPrefixMap())
	var out bytes.Buffer
	if cfg.header {
		out.WriteString(xml.Header)
	}
	if err := normalize(&out, &first, root); err != nil {
		return err
	}
	glog.V(2).Infof("encoded <%s>, %d bytes", name.Local, out.Len())
	_, err := w.Write(out.Bytes())
	return errors.WithStack(err)
}

// Marshal returns v encoded as a GML document.
func Marshal(v any, opts ...Option) ([]byte, error) {
	var b bytes.Buffer
	if err := Encode(&b, v, opts...); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
