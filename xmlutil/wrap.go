package xmlutil

import (
	"encoding/xml"
	"strings"
)

// WrapperName is the local name of the element Wrap encloses content in.
const WrapperName = "_"

// Wrap encloses the XML fragment inner in an element declaring every
// namespace of ns, so that a fragment cut from a larger document can be
// decoded with the prefixes that were in scope where it was found.
func Wrap(ns PrefixMap, inner string) string {
	var b strings.Builder
	b.WriteString("<" + WrapperName)
	for _, decl := range ns.Decls() {
		b.WriteString(" " + decl.Name.Local + `="`)
		_ = xml.EscapeText(&b, []byte(decl.Value))
		b.WriteString(`"`)
	}
	b.WriteString(">" + inner + "</" + WrapperName + ">")
	return b.String()
}
