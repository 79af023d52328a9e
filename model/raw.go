package model

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/andaru/gml/xmlutil"
)

const nsXML = "http://www.w3.org/XML/1998/namespace"

var (
	rawTextEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\r", "&#xD;")
	rawAttrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
		"\t", "&#x9;", "\n", "&#xA;", "\r", "&#xD;")
)

// rawContent writes the content of a raw element back out as XML. The
// decoder resolves names to namespaces, so every name is written with a
// prefix bound either within the content or on the raw element itself:
// namespaces declared by an ancestor of the raw element are bound in ns,
// which the element declares when encoded.
type rawContent struct {
	buf strings.Builder
	// ns holds the bindings declared on the raw element
	ns xmlutil.PrefixMap
	// def is the default namespace of the raw element
	def string
	// scopes holds the declarations of the open content elements
	scopes []xmlutil.PrefixMap
}

// copy writes the tokens of d up to the end of the raw element.
func (c *rawContent) copy(d *xml.Decoder) (string, error) {
	depth := 0
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return "", io.ErrUnexpectedEOF
		} else if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			c.start(t)
		case xml.EndElement:
			if depth == 0 {
				return c.buf.String(), nil
			}
			depth--
			c.buf.WriteString("</" + c.elementName(t.Name) + ">")
			c.scopes = c.scopes[:len(c.scopes)-1]
		case xml.CharData:
			c.buf.WriteString(rawTextEscaper.Replace(string(t)))
		case xml.Comment:
			c.buf.WriteString("<!--" + string(t) + "-->")
		case xml.ProcInst:
			c.buf.WriteString("<?" + t.Target)
			if len(t.Inst) > 0 {
				c.buf.WriteString(" " + string(t.Inst))
			}
			c.buf.WriteString("?>")
		case xml.Directive:
			c.buf.WriteString("<!" + string(t) + ">")
		}
	}
}

func (c *rawContent) start(t xml.StartElement) {
	decls := xmlutil.NewPrefixMap(t.Attr...)
	c.scopes = append(c.scopes, decls)
	c.buf.WriteString("<" + c.elementName(t.Name))
	if _, declared := decls[""]; !declared && t.Name.Space == "" && c.defaultNS() != "" {
		decls[""] = ""
		c.buf.WriteString(` xmlns=""`)
	}
	for _, a := range t.Attr {
		name := a.Name.Local
		switch {
		case xmlutil.IsDefaultDecl(a):
		case a.Name.Space == "xmlns":
			name = "xmlns:" + a.Name.Local
		case a.Name.Space != "":
			name = c.prefix(a.Name.Space) + ":" + a.Name.Local
		}
		c.buf.WriteString(" " + name + `="` + rawAttrEscaper.Replace(a.Value) + `"`)
	}
	c.buf.WriteString(">")
}

func (c *rawContent) elementName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	if n.Space == c.defaultNS() && c.declaredDefault() {
		return n.Local
	}
	return c.prefix(n.Space) + ":" + n.Local
}

// defaultNS returns the default namespace in scope.
func (c *rawContent) defaultNS() string {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if uri, ok := c.scopes[i][""]; ok {
			return uri
		}
	}
	return c.def
}

// declaredDefault reports whether the content declares the default
// namespace in scope.
func (c *rawContent) declaredDefault() bool {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if _, ok := c.scopes[i][""]; ok {
			return true
		}
	}
	return false
}

// resolve returns the namespace prefix is bound to.
func (c *rawContent) resolve(prefix string) (string, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if uri, ok := c.scopes[i][prefix]; ok {
			return uri, true
		}
	}
	uri, ok := c.ns[prefix]
	return uri, ok
}

// prefix returns a prefix bound to space, binding a new one on the raw
// element if none is.
func (c *rawContent) prefix(space string) string {
	if space == nsXML {
		return "xml"
	}
	for i := len(c.scopes) - 1; i >= 0; i-- {
		for _, pfx := range c.scopes[i].Prefix(space) {
			if uri, _ := c.resolve(pfx); pfx != "" && uri == space {
				return pfx
			}
		}
	}
	for _, pfx := range c.ns.Prefix(space) {
		if uri, _ := c.resolve(pfx); pfx != "" && uri == space {
			return pfx
		}
	}
	pfx := c.newPrefix(space)
	c.ns[pfx] = space
	return pfx
}

// newPrefix returns an unbound prefix for space: its conventional one,
// or one derived from its last segment.
func (c *rawContent) newPrefix(space string) string {
	base := "ns"
	if pfxes := xmlutil.DefaultPrefixMap().Prefix(space); len(pfxes) > 0 {
		base = pfxes[0]
	} else if seg := space[strings.LastIndexAny(space, "/:#")+1:]; isPrefix(seg) {
		base = seg
	}
	pfx := base
	for i := 1; ; i++ {
		if _, bound := c.resolve(pfx); !bound {
			return pfx
		}
		pfx = base + strconv.Itoa(i)
	}
}

// isPrefix reports whether s can be used as a namespace prefix.
func isPrefix(s string) bool {
	if s == "" || strings.HasPrefix(strings.ToLower(s), "xml") {
		return false
	}
	for i, r := range s {
		letter := r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
		if !letter && (i == 0 || !(r == '-' || r == '.' || ('0' <= r && r <= '9'))) {
			return false
		}
	}
	return true
}
