// File: lixenwraith/flexop/convenience.go
package flexop

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Quick creates a Parser, runs register and initializes it from os.Args in
// a single call. This is the shortest way to set up options for most
// programs.
func Quick(register func(p *Parser) error, presets ...string) (*Parser, []string, error) {
	b := NewBuilder().Register(register)
	for _, text := range presets {
		b.WithPreset(text)
	}
	return b.Build()
}

// MustQuick is like Quick but terminates the process on error, exiting with
// status 0 after requested help.
func MustQuick(register func(p *Parser) error, presets ...string) (*Parser, []string) {
	b := NewBuilder().Register(register)
	for _, text := range presets {
		b.WithPreset(text)
	}
	return b.MustBuild()
}

// Debug returns a formatted string showing every option with its kind,
// current value and whether a source set it.
func (p *Parser) Debug() string {
	var b strings.Builder
	b.WriteString("Options Debug Info:\n")
	fmt.Fprintf(&b, "Initialized: %v\n", p.Initialized())
	b.WriteString("Current values:\n")

	for _, o := range p.reg.options {
		if o.kind() == KindTitle {
			fmt.Fprintf(&b, "  [%s]\n", strings.TrimSpace(o.name))
			continue
		}
		fmt.Fprintf(&b, "  -%s:\n", o.name)
		fmt.Fprintf(&b, "    Kind: %s\n", o.kind())
		fmt.Fprintf(&b, "    Value: %s\n", o.text())
		fmt.Fprintf(&b, "    Used: %v\n", o.used)
	}

	return b.String()
}

// Dump writes the current option values to w in TOML format. A nil w
// writes to stdout.
func (p *Parser) Dump(w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}
	values, err := p.saveValues(false, FormatTOML)
	if err != nil {
		return err
	}
	return toml.NewEncoder(w).Encode(values)
}
