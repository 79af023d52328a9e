package query

import (
	"io"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/golang/glog"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/andaru/gml/codec"
	"github.com/andaru/gml/gmlerr"
	"github.com/andaru/gml/xmlutil"
)

// CacheSize is the number of compiled expressions kept.
const CacheSize = 256

var exprCache = mustCache(CacheSize)

func mustCache(size int) *lru.Cache[string, *xpath.Expr] {
	c, err := lru.New[string, *xpath.Expr](size)
	if err != nil {
		panic(err)
	}
	return c
}

// Compile returns the compiled form of expr, from the cache if it was
// compiled before.
func Compile(expr string) (*xpath.Expr, error) {
	if e, ok := exprCache.Get(expr); ok {
		return e, nil
	}
	e, err := xpath.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "query: compile %q", expr)
	}
	exprCache.Add(expr, e)
	glog.V(2).Infof("compiled %q", expr)
	return e, nil
}

// Document is a parsed GML document.
type Document struct {
	root *xmlquery.Node
}

// Parse reads the XML document r.
func Parse(r io.Reader) (*Document, error) {
	root, err := xmlquery.Parse(r)
	if err != nil {
		return nil, errors.WithStack(gmlerr.MalformedDocument(gmlerr.WithMessage(err.Error())))
	}
	canonicalize(root)
	return &Document{root: root}, nil
}

// Root returns the document node.
func (d *Document) Root() *xmlquery.Node { return d.root }

// Find returns the nodes expr selects, in document order.
func (d *Document) Find(expr string) ([]*xmlquery.Node, error) {
	e, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	nodes := xmlquery.QuerySelectorAll(d.root, e)
	glog.V(1).Infof("%q selected %d nodes", expr, len(nodes))
	return nodes, nil
}

// Decode returns the model objects for the elements expr selects. Each
// element must be a GML global element, or one registered with
// model.Register.
func (d *Document) Decode(expr string) ([]any, error) {
	nodes, err := d.Find(expr)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, len(nodes))
	for _, n := range nodes {
		if n.Type != xmlquery.ElementNode {
			return nil, errors.Errorf("query: %q selects a non-element node %q", expr, n.Data)
		}
		v, err := codec.DecodeFragment(n.OutputXML(true), Namespaces(n))
		if err != nil {
			return nil, errors.Wrapf(err, "query: decode <%s>", n.Data)
		}
		out = append(out, v)
	}
	return out, nil
}

// Namespaces returns the prefixes in scope at n, with gml and xlink
// bound to their namespaces.
func Namespaces(n *xmlquery.Node) xmlutil.PrefixMap {
	pm := xmlutil.DefaultPrefixMap()
	for ; n != nil; n = n.Parent {
		for _, a := range n.Attr {
			switch {
			case a.Name.Space == "xmlns":
				if _, ok := pm[a.Name.Local]; !ok {
					pm[a.Name.Local] = a.Value
				}
			case a.Name.Space == "" && a.Name.Local == "xmlns":
				if _, ok := pm[""]; !ok {
					pm[""] = a.Value
				}
			}
		}
	}
	return pm
}

// canonical maps namespaces to the prefix expressions use for them.
var canonical = map[string]string{
	xmlutil.NSGML:   xmlutil.PrefixGML,
	xmlutil.NSXLink: xmlutil.PrefixXLink,
}

// canonicalize renames the GML and XLink elements and attributes under
// n to the gml and xlink prefixes.
func canonicalize(n *xmlquery.Node) {
	for ; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			if pfx, ok := canonical[n.NamespaceURI]; ok {
				n.Prefix = pfx
			}
			for i := range n.Attr {
				if pfx, ok := canonical[n.Attr[i].NamespaceURI]; ok {
					n.Attr[i].Name.Space = pfx
				}
			}
		}
		canonicalize(n.FirstChild)
	}
}
