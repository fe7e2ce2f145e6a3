// FILE: lixenwraith/flexop/validate.go
package flexop

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ValidatorFunc checks the parsed options at the end of Init. A non-nil
// error fails Init with ErrValidation.
type ValidatorFunc func(p *Parser) error

// ExprValidator returns a validator that evaluates a boolean expr-lang
// expression over the option values. Option names are the expression
// variables; dotted names are reachable as nested fields, so an option
// named "server.port" is written server.port.
//
// The expression is compiled on first use, when every option is known.
func ExprValidator(expression string) ValidatorFunc {
	var program *vm.Program

	return func(p *Parser) error {
		env, err := p.nestedValues()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}

		if program == nil {
			prog, err := expr.Compile(expression, expr.Env(env), expr.AsBool())
			if err != nil {
				return fmt.Errorf("%w: invalid expression %q: %w", ErrValidation, expression, err)
			}
			program = prog
		}

		out, err := expr.Run(program, env)
		if err != nil {
			return fmt.Errorf("%w: %q: %w", ErrValidation, expression, err)
		}
		if ok, _ := out.(bool); !ok {
			return fmt.Errorf("%w: %q is false", ErrValidation, expression)
		}
		return nil
	}
}

// RequireUsed returns a validator that fails unless every named option was
// set by some source.
func RequireUsed(names ...string) ValidatorFunc {
	return func(p *Parser) error {
		var missing []string
		for _, name := range names {
			used, err := p.Used(name)
			if err != nil {
				missing = append(missing, stripName(name)+" (not registered)")
				continue
			}
			if !used {
				missing = append(missing, stripName(name))
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: missing required options: %s", ErrValidation, strings.Join(missing, ", "))
		}
		return nil
	}
}

// Validate runs validators against the initialized options, stopping at the
// first failure.
func (p *Parser) Validate(validators ...ValidatorFunc) error {
	if err := p.requireInit("Validate"); err != nil {
		return err
	}
	for _, v := range validators {
		if err := v(p); err != nil {
			return err
		}
	}
	return nil
}
