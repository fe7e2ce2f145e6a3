// FILE: lixenwraith/flexop/help.go
package flexop

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	helpWidth  = 78
	helpIndent = 5
	allHelp    = "all"
)

// helpStyles holds the lipgloss styles bound to one output writer.
type helpStyles struct {
	title lipgloss.Style
	body  lipgloss.Style
}

func newHelpStyles(w io.Writer) helpStyles {
	r := lipgloss.NewRenderer(w)
	return helpStyles{
		title: r.NewStyle().Bold(true),
		body:  r.NewStyle().PaddingLeft(helpIndent).Width(helpWidth),
	}
}

// Help writes the help text of the options in category to w, or of every
// option when category is "all". Options with empty help text are not
// listed. An unknown category writes the list of valid categories.
func (p *Parser) Help(w io.Writer, category string) {
	st := newHelpStyles(w)

	var (
		categories []string
		show       = true
		matched    bool
		all        = category == allHelp
	)

	for _, o := range p.reg.options {
		if tb, ok := o.bind.(titleBinding); ok && !all {
			show = tb.category == "" || tb.category == category
			if tb.category != "" && !slices.Contains(categories, tb.category) {
				categories = append(categories, tb.category)
			}
		}
		if !show {
			continue
		}

		if tb, ok := o.bind.(titleBinding); ok {
			line := o.name
			if tb.category != "" {
				line += fmt.Sprintf(" (category %q)", tb.category)
			}
			fmt.Fprintf(w, "\n%s\n", st.title.Render(line))
			if o.help != "" {
				matched = true
				fmt.Fprintln(w, st.renderBody(o.help))
			}
			continue
		}

		if o.help == "" {
			continue
		}
		matched = true

		fmt.Fprintln(w, helpLine(o))
		fmt.Fprintln(w, st.renderBody(helpText(o)))
		if hb, ok := o.bind.(handlerBinding); ok {
			if usage := hb.h.Describe(); usage != "" {
				fmt.Fprintln(w, st.renderBody(usage))
			}
		}
	}

	if matched {
		fmt.Fprintln(w)
		return
	}

	if category != HelpOption {
		fmt.Fprintf(w, "Unknown help category '%s'.\n", category)
	}
	slices.Sort(categories)

	program := p.program
	if program == "" {
		program = "program"
	}
	fmt.Fprintf(w, "Usage:\n    %s -help <category>\nwhere <category> should be one of:\n", program)
	fmt.Fprintln(w, strings.TrimRight(st.body.Render(strings.Join(append([]string{allHelp}, categories...), ", ")), " "))
}

// renderBody word-wraps text at the help width with the help indentation.
// Lines keep no trailing padding.
func (s helpStyles) renderBody(text string) string {
	lines := strings.Split(s.body.Render(text), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

// helpLine is the first help line of an option: its name, argument
// placeholder and current value.
func helpLine(o *option) string {
	switch b := o.bind.(type) {
	case flagBinding:
		return fmt.Sprintf("  -%s (%s)", o.name, o.text())
	case stringBinding, keywordBinding:
		return fmt.Sprintf("  -%s %s (\"%s\")", o.name, o.kind().placeholder(), o.text())
	case handlerBinding:
		if len(o.history) == 1 {
			return fmt.Sprintf("  -%s %s (%s)", o.name, o.kind().placeholder(), o.history[0])
		}
		return fmt.Sprintf("  -%s %s", o.name, o.kind().placeholder())
	case vecBinding:
		return fmt.Sprintf("  -%s %s (%s)", o.name, b.k.placeholder(), o.text())
	}
	return fmt.Sprintf("  -%s %s (%s)", o.name, o.kind().placeholder(), o.text())
}

// helpText is the help body with the kind specific suffix.
func helpText(o *option) string {
	switch o.kind() {
	case KindKeyword:
		return fmt.Sprintf("%s <%s>", o.help, keywordList(o.keywords))
	case KindFlag:
		return fmt.Sprintf("%s (the opposite option is \"+%s\")", o.help, o.name)
	}
	return o.help
}

// ShowUsed writes the resolved value of every option set by any source.
func (p *Parser) ShowUsed(w io.Writer) error {
	if err := p.requireInit("ShowUsed"); err != nil {
		return err
	}

	banner := false
	for _, o := range p.reg.options {
		if !o.used || o.kind() == KindTitle {
			continue
		}
		if !banner {
			fmt.Fprintln(w, "*-------------------- Parameter(s) set through options --------------------")
			banner = true
		}

		switch b := o.bind.(type) {
		case handlerBinding:
			switch len(o.history) {
			case 0:
				fmt.Fprintf(w, "* %s\n", o.label())
			case 1:
				fmt.Fprintf(w, "* %s: %s\n", o.label(), o.history[0])
			default:
				fmt.Fprintf(w, "* %s:\n", o.label())
				for _, arg := range o.history {
					fmt.Fprintf(w, "*   %s\n", arg)
				}
			}
		case vecBinding:
			fmt.Fprintf(w, "* %s:", o.label())
			if s := b.v.String(); s != "" {
				fmt.Fprintf(w, " %s", s)
			}
			fmt.Fprintln(w)
		default:
			fmt.Fprintf(w, "* %s: %s\n", o.label(), o.text())
		}
	}

	if banner {
		fmt.Fprintln(w, "*------------------------------------------------------------------------------")
	}
	return nil
}

// ShowCmdline writes the raw tokens received from each argument source.
func (p *Parser) ShowCmdline(w io.Writer) {
	showArgs(w, "Command-line:", p.cmdArgs)
	showArgs(w, "Preset:", p.presetArgs)
	showArgs(w, "Option file:", p.fileArgs)
}

func showArgs(w io.Writer, label string, args []string) {
	if len(args) == 0 {
		return
	}
	fmt.Fprint(w, label)
	for _, a := range args {
		fmt.Fprintf(w, " %s", a)
	}
	fmt.Fprintln(w)
}
