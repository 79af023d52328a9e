package resolve

import (
	"fmt"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/andaru/gml/gmlerr"
	"github.com/andaru/gml/model"
)

// Reference is an XLink reference found in a tree.
type Reference struct {
	// Path is the element path of the referring property
	Path string
	Href string
	// Association holds the XLink attributes of the referring element
	Association *model.AssociationAttributes
}

// IsLocal reports whether the reference is to an object of the same
// document.
func (r Reference) IsLocal() bool { return IsLocal(r.Href) }

// Index maps the gml:id of every object in a tree to the object.
type Index struct {
	objects map[string]model.Object
	paths   map[string]string
	refs    []Reference
}

type associated interface {
	Association() *model.AssociationAttributes
}

// NewIndex indexes the tree rooted at root. If an id is used more than
// once the first object is indexed and the error returned is a
// gmlerr.List with a duplicate-id diagnostic for every other use; the
// Index is usable either way.
func NewIndex(root any) (*Index, error) {
	ix := &Index{objects: map[string]model.Object{}, paths: map[string]string{}}
	var dups gmlerr.List
	err := model.Walk(root, func(path string, v any) error {
		if a, ok := v.(associated); ok {
			if href := a.Association().Href; href != "" {
				ix.refs = append(ix.refs, Reference{Path: path, Href: href, Association: a.Association()})
			}
		}
		o, ok := v.(model.Object)
		if !ok || o.GML().ID == "" {
			return nil
		}
		id := o.GML().ID
		if first, dup := ix.paths[id]; dup {
			dups = append(dups, gmlerr.DuplicateID(id, gmlerr.WithPath(path),
				gmlerr.WithMessage("first used at "+first)))
			return nil
		}
		ix.objects[id] = o
		ix.paths[id] = path
		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	glog.V(1).Infof("indexed %d ids, %d references", len(ix.objects), len(ix.refs))
	return ix, dups.Err()
}

// Lookup returns the object identified by id
func (ix *Index) Lookup(id string) (model.Object, bool) {
	o, ok := ix.objects[id]
	return o, ok
}

// Path returns the element path of the object identified by id
func (ix *Index) Path(id string) (string, bool) {
	p, ok := ix.paths[id]
	return p, ok
}

// IDs returns every indexed id, sorted.
func (ix *Index) IDs() []string {
	ids := maps.Keys(ix.objects)
	slices.Sort(ids)
	return ids
}

// References returns every reference in the tree, in document order.
func (ix *Index) References() []Reference { return slices.Clone(ix.refs) }

// IsLocal reports whether href refers to an object of the same
// document.
func IsLocal(href string) bool { return strings.HasPrefix(href, "#") }

// Resolve returns the object a local href refers to. A remote href
// resolves to nil without error. A local href without a target is a
// bad-reference error.
func (ix *Index) Resolve(href string) (model.Object, error) {
	if !IsLocal(href) {
		glog.V(2).Infof("not resolving remote reference %q", href)
		return nil, nil
	}
	id := localID(href)
	if o, ok := ix.objects[id]; ok {
		return o, nil
	}
	return nil, errors.WithStack(gmlerr.BadReference(href,
		gmlerr.WithMessage(fmt.Sprintf("no object has gml:id %q", id))))
}

// localID returns the id a local href names, accepting the XPointer
// shorthand "#xpointer(id('ID'))".
func localID(href string) string {
	id := strings.TrimPrefix(href, "#")
	if inner, ok := cut(id, "xpointer(id(", "))"); ok {
		id = strings.Trim(inner, `'"`)
	}
	return id
}

func cut(s, prefix, suffix string) (string, bool) {
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, suffix) {
		return "", false
	}
	return s[len(prefix) : len(s)-len(suffix)], true
}

// Dangling returns the local references without a target, in document
// order.
func (ix *Index) Dangling() []Reference {
	var out []Reference
	for _, r := range ix.refs {
		if r.IsLocal() {
			if _, ok := ix.objects[localID(r.Href)]; !ok {
				out = append(out, r)
			}
		}
	}
	return out
}

// Check returns a gmlerr.List with a bad-reference diagnostic for each
// dangling reference, or nil if every local reference resolves.
func (ix *Index) Check() error {
	var errs gmlerr.List
	for _, r := range ix.Dangling() {
		errs = append(errs, gmlerr.BadReference(r.Href, gmlerr.WithPath(r.Path),
			gmlerr.WithElement(elementName(r.Path))))
	}
	return errs.Err()
}

func elementName(path string) string {
	name := path[strings.LastIndexByte(path, '/')+1:]
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}
