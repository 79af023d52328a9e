package codec

import "github.com/andaru/gml/xmlutil"

// Option configures Decode and Encode.
type Option func(*config)

type config struct {
	prefix, indent string
	header         bool
	lenient        bool
	namespaces     xmlutil.PrefixMap
}

func newConfig(opts []Option) *config {
	cfg := &config{namespaces: xmlutil.PrefixMap{}}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithIndent indents encoded elements, each level by indent.
func WithIndent(indent string) Option { return func(c *config) { c.indent = indent } }

// WithPrefix begins every indented line with prefix.
func WithPrefix(prefix string) Option { return func(c *config) { c.prefix = prefix } }

// WithHeader writes the XML declaration before the root element.
func WithHeader() Option { return func(c *config) { c.header = true } }

// WithNamespace declares prefix for uri on the encoded root element.
func WithNamespace(prefix, uri string) Option {
	return func(c *config) { c.namespaces[prefix] = uri }
}

// WithLenient decodes documents that are not well-formed XML, such as
// documents using HTML entities.
func WithLenient() Option { return func(c *config) { c.lenient = true } }
