package schema

// Option configures Validate.
type Option func(*validator)

// WithMaxErrors stops validation once n diagnostics are found. n <= 0
// finds every diagnostic.
func WithMaxErrors(n int) Option { return func(v *validator) { v.maxErrors = n } }

// WithWarningsAsErrors reports warnings with error severity.
func WithWarningsAsErrors() Option { return func(v *validator) { v.warningsAsErrors = true } }
