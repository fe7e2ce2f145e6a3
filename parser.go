// FILE: lixenwraith/flexop/parser.go
package flexop

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Source identifies where an argument came from.
type Source string

const (
	// SourcePreset represents text supplied through Preset before Init
	SourcePreset Source = "preset"
	// SourceCmdline represents the process argument list given to Init
	SourceCmdline Source = "cmdline"
	// SourceFile represents the option file named by -option_file
	SourceFile Source = "file"
	// SourceAPI represents text applied through SetOptions after Init
	SourceAPI Source = "api"
)

// Names of the built-in generic options.
const (
	HelpOption       = "help"
	OptionFileOption = "option_file"
)

// ParserOptions configures a Parser.
type ParserOptions struct {
	// ProgramName is shown in help usage. Default: base name of args[0]
	ProgramName string

	// Output receives help text and the Show* dumps. Default: os.Stdout
	Output io.Writer

	// ErrOutput receives the diagnostic printed by MustInit. Default: os.Stderr
	ErrOutput io.Writer

	// Logger receives warnings and debug traces. Default: text handler on
	// stderr at warn level
	Logger *slog.Logger

	// AllowUnknown makes Init return unrecognized arguments instead of
	// failing on them
	AllowUnknown bool

	// FileFormat forces the option file format ("line", "toml", "yaml",
	// "json", "hcl"). Empty or "auto" selects by file extension
	FileFormat string

	// MaxFileSize limits the option file size in bytes (0 = unlimited)
	MaxFileSize int64

	// Exit terminates the process for MustInit. Default: os.Exit
	Exit func(code int)

	// Validators run at the end of Init, in order
	Validators []ValidatorFunc
}

// DefaultParserOptions returns the standard parser options.
func DefaultParserOptions() ParserOptions {
	return ParserOptions{
		Output:    os.Stdout,
		ErrOutput: os.Stderr,
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})),
		FileFormat: "auto",
		Exit:       os.Exit,
	}
}

type state int

const (
	stateRegistering state = iota
	stateInitialized
)

// Parser is an option registry together with its parsing driver. The
// lifecycle is: register options, Preset (optional), Init once, then use the
// bound variables or the Get/Set API, and Finalize to start over.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	reg    registry
	opts   ParserOptions
	state  state
	parsed bool
	titled bool

	presetArgs []string
	cmdArgs    []string
	fileArgs   []string

	program      string
	helpCategory string
	optionFile   string
}

// New creates a Parser with default options.
func New() *Parser {
	return NewWithOptions(DefaultParserOptions())
}

// NewWithOptions creates a Parser with the given options. Unset writers,
// logger and exit function fall back to the defaults.
func NewWithOptions(opts ParserOptions) *Parser {
	def := DefaultParserOptions()
	if opts.Output == nil {
		opts.Output = def.Output
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = def.ErrOutput
	}
	if opts.Logger == nil {
		opts.Logger = def.Logger
	}
	if opts.Exit == nil {
		opts.Exit = def.Exit
	}
	if opts.FileFormat == "" {
		opts.FileFormat = def.FileFormat
	}
	return &Parser{
		opts:    opts,
		program: opts.ProgramName,
	}
}

// Preset tokenizes text and queues the tokens to be applied by Init before
// the command line. Presets accumulate across calls.
func (p *Parser) Preset(text string) error {
	if p.state == stateInitialized {
		return fmt.Errorf("%w: Preset must be called before Init", ErrUsage)
	}

	args, err := Tokenize(p.presetArgs, text)
	if err != nil {
		return fmt.Errorf("%s: %w", SourcePreset, err)
	}
	p.presetArgs = args
	return nil
}

// Init registers the generic options and applies, in order, the presets,
// args[1:] and the option file named by -option_file. Later sources
// override earlier ones.
//
// When AllowUnknown is set, unrecognized arguments are returned; otherwise
// any unrecognized argument fails Init. If -help was given, help text is
// written to the output and ErrHelp is returned.
//
// Init can be called only once per Parser cycle.
func (p *Parser) Init(args []string) ([]string, error) {
	if p.parsed {
		return nil, fmt.Errorf("%w: Init can be called only once", ErrUsage)
	}
	p.parsed = true

	if err := p.registerGeneric(); err != nil {
		return nil, err
	}

	if len(args) > 0 {
		if p.program == "" {
			p.program = filepath.Base(args[0])
		}
		p.cmdArgs = append([]string(nil), args[1:]...)
	}

	p.reg.sort()

	var leftover []string

	rest, err := p.scan(p.presetArgs, SourcePreset, p.opts.AllowUnknown)
	leftover = append(leftover, rest...)
	if err != nil {
		return leftover, err
	}

	rest, err = p.scan(p.cmdArgs, SourceCmdline, p.opts.AllowUnknown)
	leftover = append(leftover, rest...)
	if err != nil {
		return leftover, err
	}

	if p.optionFile != "" {
		if err := p.loadOptionFile(p.optionFile); err != nil {
			return leftover, err
		}
		rest, err = p.scan(p.fileArgs, SourceFile, p.opts.AllowUnknown)
		leftover = append(leftover, rest...)
		if err != nil {
			return leftover, err
		}
	}

	if p.helpCategory != "" {
		p.Help(p.opts.Output, p.helpCategory)
		return leftover, ErrHelp
	}

	p.state = stateInitialized

	for _, validate := range p.opts.Validators {
		if err := validate(p); err != nil {
			if errors.Is(err, ErrValidation) {
				return leftover, err
			}
			return leftover, fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	p.opts.Logger.Debug("options initialized",
		slog.Int("preset", len(p.presetArgs)),
		slog.Int("cmdline", len(p.cmdArgs)),
		slog.Int("file", len(p.fileArgs)),
		slog.Int("leftover", len(leftover)),
	)

	return leftover, nil
}

// MustInit is like Init but terminates the process on failure. It exits
// with status 0 after rendering requested help, and with status 1 after
// printing the error otherwise.
func (p *Parser) MustInit(args []string) []string {
	rest, err := p.Init(args)
	if err != nil {
		if errors.Is(err, ErrHelp) {
			p.opts.Exit(0)
			return rest
		}
		fmt.Fprintf(p.opts.ErrOutput, "*** Error: %v\n", err)
		p.opts.Exit(1)
	}
	return rest
}

// Initialized reports whether Init completed.
func (p *Parser) Initialized() bool {
	return p.state == stateInitialized
}

// SetOptions tokenizes text and applies it against the live registry, the
// same way a preset is applied during Init.
func (p *Parser) SetOptions(text string) error {
	if err := p.requireInit("SetOptions"); err != nil {
		return err
	}

	args, err := Split(text)
	if err != nil {
		return fmt.Errorf("%s: %w", SourceAPI, err)
	}
	_, err = p.scan(args, SourceAPI, false)
	return err
}

// Finalize releases everything the Parser owns: used string bindings are
// cleared, vector bindings are reset, descriptors and argument buffers are
// dropped. The Parser returns to the registration state so a new cycle may
// begin.
func (p *Parser) Finalize() {
	for _, o := range p.reg.options {
		switch b := o.bind.(type) {
		case stringBinding:
			if o.used {
				*b.p = ""
			}
		case vecBinding:
			b.v.Reset()
		}
	}

	p.reg.reset()
	p.presetArgs = nil
	p.cmdArgs = nil
	p.fileArgs = nil
	p.helpCategory = ""
	p.optionFile = ""
	p.program = p.opts.ProgramName
	p.state = stateRegistering
	p.parsed = false
	p.titled = false
}

// Used reports whether the named option was set by any source.
func (p *Parser) Used(name string) (bool, error) {
	o, err := p.find(name)
	if err != nil {
		return false, err
	}
	return o.used, nil
}

// Args returns a copy of the tokens received from src.
func (p *Parser) Args(src Source) []string {
	switch src {
	case SourcePreset:
		return append([]string(nil), p.presetArgs...)
	case SourceCmdline:
		return append([]string(nil), p.cmdArgs...)
	case SourceFile:
		return append([]string(nil), p.fileArgs...)
	}
	return nil
}

func (p *Parser) requireInit(op string) error {
	if p.state != stateInitialized {
		return fmt.Errorf("%w: %s must be called after Init", ErrUsage, op)
	}
	return nil
}

// find resolves name through the sorted index.
func (p *Parser) find(name string) (*option, error) {
	key := stripName(name)
	o, ok := p.reg.lookup(key)
	if !ok {
		return nil, p.reg.unknown("-"+key, key)
	}
	return o, nil
}
