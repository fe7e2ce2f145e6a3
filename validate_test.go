// FILE: lixenwraith/flexop/validate_test.go
package flexop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExprValidator tests boolean expressions over option values
func TestExprValidator(t *testing.T) {
	setup := func(t *testing.T, validators []ValidatorFunc, args ...string) error {
		t.Helper()
		p, _ := newTestParser(t)
		p.opts.Validators = validators
		var (
			workers int64 = 4
			mode          = "fast"
			port    int64
		)
		require.NoError(t, p.RegisterInt("workers", "workers", &workers))
		require.NoError(t, p.RegisterString("mode", "mode", &mode))
		require.NoError(t, p.RegisterInt("server.port", "port", &port))
		_, err := p.Init(append([]string{"prog"}, args...))
		return err
	}

	t.Run("Pass", func(t *testing.T) {
		err := setup(t, []ValidatorFunc{
			ExprValidator(`workers > 0 && workers <= 16`),
			ExprValidator(`mode in ["fast", "safe"]`),
		}, "-workers", "8")
		assert.NoError(t, err)
	})

	t.Run("Fail", func(t *testing.T) {
		err := setup(t, []ValidatorFunc{ExprValidator(`workers <= 16`)}, "-workers", "32")
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "is false")
	})

	t.Run("NestedName", func(t *testing.T) {
		rule := []ValidatorFunc{ExprValidator(`server.port >= 1024`)}
		assert.NoError(t, setup(t, rule, "-server.port", "8080"))
		assert.ErrorIs(t, setup(t, rule, "-server.port", "80"), ErrValidation)
	})

	t.Run("InvalidExpression", func(t *testing.T) {
		err := setup(t, []ValidatorFunc{ExprValidator(`workers >`)}, "-workers", "1")
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "invalid expression")

		err = setup(t, []ValidatorFunc{ExprValidator(`mode`)})
		assert.ErrorIs(t, err, ErrValidation)

		err = setup(t, []ValidatorFunc{ExprValidator(`undefined_option > 1`)})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("ReusedAcrossRuns", func(t *testing.T) {
		rule := ExprValidator(`workers % 2 == 0`)
		assert.NoError(t, setup(t, []ValidatorFunc{rule}, "-workers", "2"))
		assert.ErrorIs(t, setup(t, []ValidatorFunc{rule}, "-workers", "3"), ErrValidation)
	})
}

func TestRequireUsed(t *testing.T) {
	p, _ := newTestParser(t)
	var a, b int64
	require.NoError(t, p.RegisterInt("a", "a", &a))
	require.NoError(t, p.RegisterInt("b", "b", &b))
	_, err := p.Init([]string{"prog", "-a", "1"})
	require.NoError(t, err)

	assert.NoError(t, p.Validate(RequireUsed("a")))
	assert.NoError(t, p.Validate(RequireUsed("-a")))

	err = p.Validate(RequireUsed("a", "b", "c"))
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "b, c (not registered)")
}

func TestValidate(t *testing.T) {
	t.Run("BeforeInit", func(t *testing.T) {
		p, _ := newTestParser(t)
		assert.ErrorIs(t, p.Validate(), ErrUsage)
	})

	t.Run("StopsAtFirstFailure", func(t *testing.T) {
		p, _ := newTestParser(t)
		_, err := p.Init([]string{"prog"})
		require.NoError(t, err)

		errFirst := errors.New("first")
		ran := false
		err = p.Validate(
			func(*Parser) error { return errFirst },
			func(*Parser) error { ran = true; return nil },
		)
		assert.ErrorIs(t, err, errFirst)
		assert.False(t, ran)
	})

	t.Run("PlainErrorWrappedByInit", func(t *testing.T) {
		p, _ := newTestParser(t)
		errPlain := errors.New("plain")
		p.opts.Validators = []ValidatorFunc{func(*Parser) error { return errPlain }}

		_, err := p.Init([]string{"prog"})
		assert.ErrorIs(t, err, ErrValidation)
		assert.ErrorIs(t, err, errPlain)
		assert.True(t, p.Initialized())
	})
}
