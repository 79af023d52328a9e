package resolve

import (
	"encoding/xml"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/andaru/gml/model"
	"github.com/andaru/gml/xmlutil"
)

var nameGMLID = xmlutil.GMLName("id")

// AssignIDs gives each object in the tree rooted at root without a
// gml:id a new one, prefix followed by a random UUID. Characters of
// prefix not allowed in an NCName are replaced by "_", and an id which
// could not start an NCName is prefixed with "_". It returns the ids
// assigned, in document order.
func AssignIDs(root any, prefix string) ([]string, error) {
	prefix = ncname(prefix)
	var ids []string
	err := model.Walk(root, func(path string, v any) error {
		if g, ok := v.(*model.GenericFeature); ok {
			if _, has := g.Attr(nameGMLID); has {
				return nil
			}
			id := newID(prefix)
			g.Attrs = append(g.Attrs, xml.Attr{Name: nameGMLID, Value: id})
			g.Feature.ID = id
			ids = append(ids, id)
			return nil
		}
		o, ok := v.(model.Object)
		if !ok || o.GML().ID != "" {
			return nil
		}
		id := newID(prefix)
		o.GML().ID = id
		ids = append(ids, id)
		return nil
	})
	return ids, errors.WithStack(err)
}

func newID(prefix string) string {
	id := prefix + uuid.NewString()
	if r, _ := utf8.DecodeRuneInString(id); !unicode.IsLetter(r) && r != '_' {
		id = "_" + id
	}
	return id
}

// ncname replaces the characters of s an NCName cannot hold.
func ncname(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_', r == '-', r == '.':
			return r
		}
		return '_'
	}, s)
}
