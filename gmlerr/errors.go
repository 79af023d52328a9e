package gmlerr

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
)

// Type is the processing layer which raised an Error
type Type int

const (
	// TypeSchema is a schema constraint violation found in a model tree
	TypeSchema Type = iota
	// TypeDecode is an error found while decoding a document
	TypeDecode
	// TypeReference is an unresolvable or inconsistent reference
	TypeReference
)

func (t Type) String() string {
	switch t {
	case TypeSchema:
		return "schema"
	case TypeDecode:
		return "decode"
	case TypeReference:
		return "reference"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

func (t *Type) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "schema":
		*t = TypeSchema
	case "decode":
		*t = TypeDecode
	case "reference":
		*t = TypeReference
	default:
		return errors.New("unknown value")
	}
	return nil
}

func (t Type) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Severity represents the diagnostic severity
type Severity int

const (
	// SeverityError indicates "error" level
	SeverityError Severity = iota
	// SeverityWarning indicates "warning" level.
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Severity) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	default:
		return errors.New("unknown value")
	}
	return nil
}

// Error tags
const (
	TagUnknownElement    = "unknown-element"
	TagUnexpectedElement = "unexpected-element"
	TagMalformedDocument = "malformed-document"
	TagMinOccurs         = "min-occurs"
	TagMaxOccurs         = "max-occurs"
	TagChoice            = "choice"
	TagInvalidValue      = "invalid-value"
	TagMissingAttribute  = "missing-attribute"
	TagTooFewPositions   = "too-few-positions"
	TagPropertyContent   = "property-content"
	TagDuplicateID       = "duplicate-id"
	TagBadReference      = "bad-reference"
)

// Error is a GML processing diagnostic.
//
// Errors marshal to XML as a <diagnostic> element and to JSON as an
// object, so that reports can be written by tools in either form.
type Error struct {
	XMLName   xml.Name `xml:"diagnostic" json:"-"`
	Type      Type     `xml:"type" json:"type"`
	Tag       string   `xml:"tag" json:"tag"`
	Severity  Severity `xml:"severity" json:"severity"`
	Path      string   `xml:"path,omitempty" json:"path,omitempty"`
	Element   string   `xml:"element,omitempty" json:"element,omitempty"`
	Attribute string   `xml:"attribute,omitempty" json:"attribute,omitempty"`
	Value     string   `xml:"value,omitempty" json:"value,omitempty"`
	Message   string   `xml:"message,omitempty" json:"message,omitempty"`
}

func (e Error) Error() string {
	s := fmt.Sprintf("%s %s tag:%s", e.Type, e.Severity, e.Tag)
	if e.Element != "" {
		s += " element:" + e.Element
	}
	if e.Attribute != "" {
		s += " attribute:" + e.Attribute
	}
	if e.Path != "" {
		s += " path:" + e.Path
	}
	if e.Value != "" {
		s += fmt.Sprintf(" value:%q", e.Value)
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	return s
}

func newError(t Type, tag string, opts []Option) *Error {
	e := &Error{Type: t, Tag: tag}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func UnknownElement(elementName string, opts ...Option) *Error {
	return newError(TypeDecode, TagUnknownElement, append([]Option{WithElement(elementName)}, opts...))
}

func UnexpectedElement(elementName string, opts ...Option) *Error {
	return newError(TypeDecode, TagUnexpectedElement, append([]Option{WithElement(elementName)}, opts...))
}

func MalformedDocument(opts ...Option) *Error {
	e := newError(TypeDecode, TagMalformedDocument, opts)
	// a malformed document is never a warning
	e.Severity = SeverityError
	return e
}

func MinOccurs(elementName string, want, got int, opts ...Option) *Error {
	return newError(TypeSchema, TagMinOccurs, append([]Option{
		WithElement(elementName),
		WithMessage(fmt.Sprintf("want at least %d, have %d", want, got)),
	}, opts...))
}

func MaxOccurs(elementName string, want, got int, opts ...Option) *Error {
	return newError(TypeSchema, TagMaxOccurs, append([]Option{
		WithElement(elementName),
		WithMessage(fmt.Sprintf("want at most %d, have %d", want, got)),
	}, opts...))
}

func Choice(group string, got int, opts ...Option) *Error {
	return newError(TypeSchema, TagChoice, append([]Option{
		WithElement(group),
		WithMessage(fmt.Sprintf("want exactly one alternative, have %d", got)),
	}, opts...))
}

func InvalidValue(value string, opts ...Option) *Error {
	return newError(TypeSchema, TagInvalidValue, append([]Option{WithValue(value)}, opts...))
}

func MissingAttribute(attributeName, elementName string, opts ...Option) *Error {
	return newError(TypeSchema, TagMissingAttribute, append([]Option{
		WithElement(elementName),
		WithAttribute(attributeName),
	}, opts...))
}

func TooFewPositions(elementName string, want, got int, opts ...Option) *Error {
	return newError(TypeSchema, TagTooFewPositions, append([]Option{
		WithElement(elementName),
		WithMessage(fmt.Sprintf("want at least %d positions, have %d", want, got)),
	}, opts...))
}

func PropertyContent(elementName string, opts ...Option) *Error {
	return newError(TypeSchema, TagPropertyContent, append([]Option{WithElement(elementName)}, opts...))
}

func DuplicateID(id string, opts ...Option) *Error {
	return newError(TypeReference, TagDuplicateID, append([]Option{WithAttribute("gml:id"), WithValue(id)}, opts...))
}

func BadReference(href string, opts ...Option) *Error {
	return newError(TypeReference, TagBadReference, append([]Option{WithAttribute("xlink:href"), WithValue(href)}, opts...))
}

// List is an ordered collection of diagnostics, itself an error.
type List []*Error

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	msgs := make([]string, 0, len(l))
	for _, e := range l {
		msgs = append(msgs, e.Error())
	}
	return fmt.Sprintf("%d errors: %s", len(l), strings.Join(msgs, "; "))
}

// Count returns the number of diagnostics of severity s
func (l List) Count(s Severity) (n int) {
	for _, e := range l {
		if e.Severity == s {
			n++
		}
	}
	return n
}

// Tags returns the tag of every diagnostic, in order
func (l List) Tags() []string {
	tags := make([]string, 0, len(l))
	for _, e := range l {
		tags = append(tags, e.Tag)
	}
	return tags
}

// Err returns l as an error, or nil if l is empty
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// As returns the *Error found in err's chain, if any.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// AsList returns the List found in err's chain, if any.
func AsList(err error) (List, bool) {
	var l List
	if errors.As(err, &l) {
		return l, true
	}
	return nil, false
}
