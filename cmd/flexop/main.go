// FILE: lixenwraith/flexop/cmd/flexop/main.go
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/lixenwraith/flexop"
)

// CLI is the developer tool command line.
type CLI struct {
	Verbose bool `help:"Log debug records to stderr" short:"v"`

	Tokenize tokenizeCmd `cmd:"" help:"Split text into option tokens"`
	Check    checkCmd    `cmd:"" help:"Print the tokens an option file produces"`
	Demo     demoCmd     `cmd:"" help:"Parse arguments against a demonstration option set"`
}

type tokenizeCmd struct {
	Text []string `arg:"" optional:"" help:"Text to split; standard input when empty"`
}

func (c *tokenizeCmd) Run() error {
	text := strings.Join(c.Text, " ")
	if len(c.Text) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		text = string(data)
	}

	tokens, err := flexop.Split(text)
	if err != nil {
		return err
	}
	for i, tok := range tokens {
		fmt.Printf("%3d  %s\n", i, flexop.Quote(tok))
	}
	return nil
}

type checkCmd struct {
	File   string `arg:"" type:"existingfile" help:"Option file to read"`
	Format string `help:"File format" enum:"auto,line,toml,yaml,json,hcl" default:"auto"`
}

func (c *checkCmd) Run(logger *slog.Logger) error {
	p := flexop.NewWithOptions(flexop.ParserOptions{
		ProgramName:  "check",
		Logger:       logger,
		AllowUnknown: true,
		FileFormat:   c.Format,
	})
	defer p.Finalize()

	rest, err := p.Init([]string{"check", "-" + flexop.OptionFileOption, c.File})
	if err != nil {
		return err
	}
	p.ShowCmdline(os.Stdout)
	if len(rest) > 0 {
		fmt.Printf("Unregistered: %s\n", strings.Join(rest, " "))
	}
	return nil
}

type demoCmd struct {
	Args []string `arg:"" optional:"" passthrough:"" help:"Option arguments after --, e.g. -- -i 8 -vi \"1 2 3\""`
}

func (c *demoCmd) Run(logger *slog.Logger) error {
	var (
		i     int64
		f     float64
		s     string
		noarg bool
		order = -1
		vi    = flexop.NewVec(flexop.KindInt)
		vf    = flexop.NewVec(flexop.KindFloat)
		vs    = flexop.NewVec(flexop.KindString)
	)

	p, _, err := flexop.NewBuilder().
		WithProgramName("flexop demo").
		WithLogger(logger).
		WithArgs(append([]string{"demo"}, c.Args...)).
		WithPreset("-i 22 -f 1.2 -s hello").
		Register(func(p *flexop.Parser) error {
			return firstError(
				p.RegisterInt("i", "int", &i),
				p.RegisterFloat("f", "float", &f),
				p.RegisterString("s", "string", &s),
				p.RegisterVecInt("vi", "vector of int", vi),
				p.RegisterVecFloat("vf", "vector of float", vf),
				p.RegisterVecString("vs", "vector of string", vs),
				p.RegisterFlag("noarg", "bool value", &noarg),
				p.RegisterKeyword("order", "order of digital number", []string{"one", "two", "three", "four"}, &order),
			)
		}).
		Build()
	if err != nil {
		if errors.Is(err, flexop.ErrHelp) {
			return nil
		}
		return err
	}
	defer p.Finalize()

	p.ShowCmdline(os.Stdout)
	return p.ShowUsed(os.Stdout)
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("flexop"),
		kong.Description("Inspect option text and option files."),
		kong.UsageOnError(),
	)

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	kctx.FatalIfErrorf(kctx.Run(logger))
}
