// File: lixenwraith/flexop/builder.go
package flexop

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Builder provides a fluent interface for setting up and initializing a
// Parser
type Builder struct {
	opts      ParserOptions
	args      []string
	presets   []string
	file      string
	registers []func(*Parser) error
	err       error
}

// NewBuilder creates a new parser builder reading os.Args
func NewBuilder() *Builder {
	return &Builder{
		opts: DefaultParserOptions(),
		args: os.Args,
	}
}

// WithArgs sets the process argument list, program name first
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithPreset queues preset text applied before the command line
func (b *Builder) WithPreset(text string) *Builder {
	b.presets = append(b.presets, text)
	return b
}

// WithProgramName sets the program name shown in help usage
func (b *Builder) WithProgramName(name string) *Builder {
	b.opts.ProgramName = name
	return b
}

// WithOutput sets the writer receiving help and Show* output
func (b *Builder) WithOutput(w io.Writer) *Builder {
	if w == nil {
		b.err = errors.Join(b.err, fmt.Errorf("%w: nil output writer", ErrUsage))
		return b
	}
	b.opts.Output = w
	return b
}

// WithLogger sets the logger receiving warnings and debug traces
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	if logger != nil {
		b.opts.Logger = logger
	}
	return b
}

// WithUnknownArgs makes Build return unrecognized arguments instead of
// failing on them
func (b *Builder) WithUnknownArgs(allow bool) *Builder {
	b.opts.AllowUnknown = allow
	return b
}

// WithFileFormat forces the option file format
func (b *Builder) WithFileFormat(format string) *Builder {
	switch format {
	case FormatAuto, FormatLine, FormatTOML, FormatYAML, FormatJSON, FormatHCL:
		b.opts.FileFormat = format
	default:
		b.err = errors.Join(b.err, fmt.Errorf("%w: unsupported file format %q", ErrUsage, format))
	}
	return b
}

// WithMaxFileSize limits the option file size in bytes
func (b *Builder) WithMaxFileSize(size int64) *Builder {
	b.opts.MaxFileSize = size
	return b
}

// WithOptionFile reads path as the option file unless the command line
// names another one
func (b *Builder) WithOptionFile(path string) *Builder {
	b.file = path
	return b
}

// WithExit sets the function MustBuild terminates the process with
func (b *Builder) WithExit(exit func(int)) *Builder {
	if exit != nil {
		b.opts.Exit = exit
	}
	return b
}

// WithValidator adds a validation function that runs at the end of Init.
// Multiple validators run in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.opts.Validators = append(b.opts.Validators, fn)
	}
	return b
}

// Register adds a function that registers options on the parser. Register
// functions run in order before Init
func (b *Builder) Register(fn func(p *Parser) error) *Builder {
	if fn != nil {
		b.registers = append(b.registers, fn)
	}
	return b
}

// Build creates the Parser, registers the options and runs Init. It returns
// the leftover arguments when unknown arguments are allowed.
// ErrHelp is returned, together with the parser, after help was rendered
func (b *Builder) Build() (*Parser, []string, error) {
	if b.err != nil {
		return nil, nil, b.err
	}

	p := NewWithOptions(b.opts)

	for _, fn := range b.registers {
		if err := fn(p); err != nil {
			return nil, nil, fmt.Errorf("failed to register options: %w", err)
		}
	}

	if b.file != "" {
		if err := p.Preset("-" + OptionFileOption + " " + Quote(b.file)); err != nil {
			return nil, nil, err
		}
	}
	for _, text := range b.presets {
		if err := p.Preset(text); err != nil {
			return nil, nil, err
		}
	}

	rest, err := p.Init(b.args)
	if err != nil {
		return p, rest, err
	}
	return p, rest, nil
}

// MustBuild is like Build but terminates the process on error, the way
// MustInit does
func (b *Builder) MustBuild() (*Parser, []string) {
	p, rest, err := b.Build()
	if err != nil {
		exit := b.opts.Exit
		if exit == nil {
			exit = os.Exit
		}
		if errors.Is(err, ErrHelp) {
			exit(0)
			return p, rest
		}
		errOut := b.opts.ErrOutput
		if errOut == nil {
			errOut = os.Stderr
		}
		fmt.Fprintf(errOut, "*** Error: %v\n", err)
		exit(1)
	}
	return p, rest
}

// BuildAndScan builds the parser and decodes the option values into target
func (b *Builder) BuildAndScan(target any) (*Parser, []string, error) {
	p, rest, err := b.Build()
	if err != nil {
		return p, rest, err
	}
	if err := p.Scan(target); err != nil {
		return p, rest, fmt.Errorf("failed to scan options into target: %w", err)
	}
	return p, rest, nil
}
