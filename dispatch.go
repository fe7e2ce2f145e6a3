// FILE: lixenwraith/flexop/dispatch.go
package flexop

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// scan applies every token of args against the sorted registry. Tokens that
// do not name an option are returned when allowUnknown is set and fail the
// scan otherwise.
func (p *Parser) scan(args []string, src Source, allowUnknown bool) ([]string, error) {
	var leftover []string

	for i := 0; i < len(args); i++ {
		tok := args[i]

		if allowUnknown && tok == "--" {
			leftover = append(leftover, args[i+1:]...)
			break
		}

		lead, name, arg, inline, ok := splitToken(tok)
		if !ok {
			if allowUnknown {
				leftover = append(leftover, tok)
				continue
			}
			return leftover, fmt.Errorf("%s: %w", src, p.reg.unknown(tok, ""))
		}

		o, found := p.reg.lookup(name)
		if !found {
			if allowUnknown {
				leftover = append(leftover, tok)
				continue
			}
			return leftover, fmt.Errorf("%s: %w", src, p.reg.unknown(tok, name))
		}

		if o.kind() != KindFlag && !inline {
			if i+1 >= len(args) {
				if o.name == HelpOption {
					fmt.Fprintf(p.opts.Output, "Missing argument for option %q\n", tok)
					p.Help(p.opts.Output, HelpOption)
					return leftover, ErrHelp
				}
				return leftover, fmt.Errorf("%s: %w for option %q", src, ErrMissingArgument, tok)
			}
			i++
			arg = args[i]
		}

		if err := p.apply(o, lead, arg, o.kind() != KindFlag || inline); err != nil {
			return leftover, fmt.Errorf("%s: %w", src, err)
		}

		p.opts.Logger.Debug("option applied",
			slog.String("source", string(src)),
			slog.String("option", o.name),
			slog.String("value", o.text()),
		)
	}

	return leftover, nil
}

// splitToken breaks an option token into its leading character, its name
// and an optional inline "=value". One or two dashes, or one plus, are
// accepted as prefix. ok is false when tok is not shaped like an option.
func splitToken(tok string) (lead byte, name, arg string, inline, ok bool) {
	if len(tok) < 2 || (tok[0] != '-' && tok[0] != '+') {
		return 0, "", "", false, false
	}

	lead = tok[0]
	rest := tok[1:]
	if lead == '-' && rest[0] == '-' {
		rest = rest[1:]
	}

	name, arg, inline = strings.Cut(rest, "=")
	if name == "" {
		return 0, "", "", false, false
	}
	return lead, name, arg, inline, true
}

// apply converts arg according to the binding of o and stores the result.
// present is false when no argument text was supplied; only flags and
// keywords accept that.
func (p *Parser) apply(o *option, lead byte, arg string, present bool) error {
	switch b := o.bind.(type) {
	case flagBinding:
		v := true
		if present {
			x, err := strconv.ParseBool(strings.TrimSpace(arg))
			if err != nil {
				return fmt.Errorf("%w %q for \"-%s\"", ErrInvalidFlag, arg, o.name)
			}
			v = x
		}
		if lead == '+' {
			v = !v
		}
		*b.p = v

	case intBinding:
		x, err := parseInt(arg)
		if err != nil {
			return fmt.Errorf("option \"-%s\": %w", o.name, err)
		}
		*b.p = x

	case uintBinding:
		x, err := parseUint(arg)
		if err != nil {
			return fmt.Errorf("option \"-%s\": %w", o.name, err)
		}
		*b.p = x

	case floatBinding:
		x, err := parseFloat(arg)
		if err != nil {
			return fmt.Errorf("option \"-%s\": %w", o.name, err)
		}
		*b.p = x

	case stringBinding:
		*b.p = strings.Clone(arg)

	case keywordBinding:
		if !present {
			*b.p = -1
			o.used = true
			return nil
		}
		idx := -1
		for i, k := range o.keywords {
			if k == arg {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w %q for \"-%s\", valid keywords are: %s",
				ErrInvalidKeyword, arg, o.name, keywordList(o.keywords))
		}
		*b.p = idx

	case handlerBinding:
		if b.append || len(o.history) == 0 {
			o.history = append(o.history, strings.Clone(arg))
		} else {
			o.history[0] = strings.Clone(arg)
		}
		if err := b.h.Apply(arg); err != nil {
			fmt.Fprintf(p.opts.Output, "invalid argument for \"-%s\" option.\n", o.name)
			if usage := b.h.Describe(); usage != "" {
				fmt.Fprintln(p.opts.Output, usage)
			}
			return fmt.Errorf("%w: \"-%s\" %q: %w", ErrHandlerRejected, o.name, arg, err)
		}

	case vecBinding:
		// Each occurrence replaces the previous content, registration-time
		// defaults included.
		if !b.v.Initialized() {
			b.v.Init(b.k.elem())
		} else {
			b.v.clear()
		}
		for _, f := range strings.Fields(arg) {
			if err := b.v.appendText(f); err != nil {
				return fmt.Errorf("option \"-%s\": %w", o.name, err)
			}
		}

	default:
		return fmt.Errorf("%w: option \"-%s\" has kind %s", ErrInternal, o.name, o.kind())
	}

	o.used = true
	return nil
}

// keywordList renders keywords as `"one", "two"`.
func keywordList(keywords []string) string {
	quoted := make([]string, len(keywords))
	for i, k := range keywords {
		quoted[i] = strconv.Quote(k)
	}
	return strings.Join(quoted, ", ")
}
