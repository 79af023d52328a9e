package gmlerr

// Option is an Error option function
type Option func(*Error)

func WithMessage(msg string) Option    { return func(e *Error) { e.Message = msg } }
func WithType(t Type) Option           { return func(e *Error) { e.Type = t } }
func WithSeverity(s Severity) Option   { return func(e *Error) { e.Severity = s } }
func WithPath(path string) Option      { return func(e *Error) { e.Path = path } }
func WithElement(name string) Option   { return func(e *Error) { e.Element = name } }
func WithAttribute(name string) Option { return func(e *Error) { e.Attribute = name } }
func WithValue(value string) Option    { return func(e *Error) { e.Value = value } }
