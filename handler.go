// FILE: lixenwraith/flexop/handler.go
package flexop

// Handler is a custom option whose argument is interpreted by the host
// program.
type Handler interface {
	// Apply receives the raw argument text. A non-nil error rejects the
	// argument and fails the parse.
	Apply(arg string) error
	// Describe returns usage text printed in help output and after a
	// rejected argument. It may be empty.
	Describe() string
}

// HandlerFunc adapts a plain function to Handler with no usage text.
type HandlerFunc func(arg string) error

// Apply calls f(arg).
func (f HandlerFunc) Apply(arg string) error {
	return f(arg)
}

// Describe returns an empty string.
func (f HandlerFunc) Describe() string {
	return ""
}

// describedHandler pairs a function with fixed usage text.
type describedHandler struct {
	fn    func(arg string) error
	usage string
}

// NewHandler returns a Handler that calls fn and describes itself with usage.
func NewHandler(fn func(arg string) error, usage string) Handler {
	return describedHandler{fn: fn, usage: usage}
}

func (h describedHandler) Apply(arg string) error {
	if h.fn == nil {
		return nil
	}
	return h.fn(arg)
}

func (h describedHandler) Describe() string {
	return h.usage
}
