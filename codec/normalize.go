package codec

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/andaru/gml/xmlutil"
)

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\r", "&#xD;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
		"\t", "&#x9;", "\n", "&#xA;", "\r", "&#xD;")
)

// normalize copies the document in r to w, dropping namespace
// declarations already in scope and declaring the prefixes of root on
// the root element unless it binds them itself.
func normalize(w *bytes.Buffer, r io.Reader, root xmlutil.PrefixMap) error {
	d := xml.NewDecoder(r)
	var scopes []xmlutil.PrefixMap
	for {
		tok, err := d.RawToken()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrap(err, "codec: normalize")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			decls := xmlutil.PrefixMap{}
			var declAttrs, attrs []xml.Attr
			for _, a := range t.Attr {
				pfx, ok := declaredPrefix(a)
				if !ok {
					attrs = append(attrs, a)
					continue
				}
				if _, dup := decls[pfx]; dup {
					continue
				}
				if uri, bound := lookup(scopes, pfx); bound && uri == a.Value {
					continue
				}
				decls[pfx] = a.Value
				declAttrs = append(declAttrs, a)
			}
			if len(scopes) == 0 {
				for _, a := range root.Attr() {
					if _, dup := decls[a.Name.Local]; !dup {
						decls[a.Name.Local] = a.Value
						declAttrs = append(declAttrs, a)
					}
				}
			}
			scopes = append(scopes, decls)
			writeStart(w, t.Name, append(declAttrs, attrs...))
		case xml.EndElement:
			if len(scopes) > 0 {
				scopes = scopes[:len(scopes)-1]
			}
			w.WriteString("</" + qname(t.Name) + ">")
		case xml.CharData:
			w.WriteString(textEscaper.Replace(string(t)))
		case xml.Comment:
			w.WriteString("<!--")
			w.Write(t)
			w.WriteString("-->")
		case xml.ProcInst:
			w.WriteString("<?" + t.Target)
			if len(t.Inst) > 0 {
				w.WriteString(" ")
				w.Write(t.Inst)
			}
			w.WriteString("?>")
		case xml.Directive:
			w.WriteString("<!")
			w.Write(t)
			w.WriteString(">")
		}
	}
}

// declaredPrefix returns the prefix a raw attribute declares, the empty
// prefix for the default namespace.
func declaredPrefix(a xml.Attr) (string, bool) {
	switch {
	case a.Name.Space == "xmlns":
		return a.Name.Local, true
	case a.Name.Space == "" && a.Name.Local == "xmlns":
		return "", true
	}
	return "", false
}

// lookup returns the namespace prefix is bound to in the innermost scope
// declaring it.
func lookup(scopes []xmlutil.PrefixMap, prefix string) (string, bool) {
	for i := len(scopes) - 1; i >= 0; i-- {
		if uri, ok := scopes[i][prefix]; ok {
			return uri, true
		}
	}
	return "", false
}

func qname(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func writeStart(w *bytes.Buffer, name xml.Name, attrs []xml.Attr) {
	w.WriteString("<" + qname(name))
	for _, a := range attrs {
		w.WriteString(" " + qname(a.Name) + `="` + attrEscaper.Replace(a.Value) + `"`)
	}
	w.WriteString(">")
}
