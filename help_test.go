// FILE: lixenwraith/flexop/help_test.go
package flexop

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHelp tests help rendering by category
func TestHelp(t *testing.T) {
	setup := func(t *testing.T) (*Parser, *bytes.Buffer) {
		t.Helper()
		p, out := newTestParser(t)
		var (
			i       int64 = 22
			verbose bool
			name    = "usa"
			order   = 1
			hidden  int64
			ratio   float64
		)
		require.NoError(t, p.RegisterInt("i", "int", &i))
		require.NoError(t, p.RegisterFlag("verbose", "verbose output", &verbose))
		require.NoError(t, p.RegisterString("name", "country name", &name))
		require.NoError(t, p.RegisterKeyword("order", "order", []string{"one", "two"}, &order))
		require.NoError(t, p.RegisterInt("hidden", "", &hidden))
		require.NoError(t, p.RegisterTitle("Tuning:", "numeric tuning", "tuning"))
		require.NoError(t, p.RegisterFloat("ratio", "ratio", &ratio))
		return p, out
	}

	t.Run("All", func(t *testing.T) {
		p, out := setup(t)
		_, err := p.Init([]string{"prog", "-help", "all"})
		require.ErrorIs(t, err, ErrHelp)

		text := out.String()
		assert.Contains(t, text, `User options: (category "user")`)
		assert.Contains(t, text, `Tuning: (category "tuning")`)
		assert.Contains(t, text, `Generic options: (category "generic")`)
		assert.Contains(t, text, "  -i <integer> (22)\n")
		assert.Contains(t, text, "  -verbose (False)\n")
		assert.Contains(t, text, `verbose output (the opposite option is "+verbose")`)
		assert.Contains(t, text, `  -name <string> ("usa")`)
		assert.Contains(t, text, `  -order <keyword> ("two")`)
		assert.Contains(t, text, `order <"one", "two">`)
		assert.Contains(t, text, "  -ratio <real> (0)")
		assert.Contains(t, text, "  -help <string>")
		assert.NotContains(t, text, "-hidden")

		// Sections keep registration order
		assert.Less(t, strings.Index(text, "User options:"), strings.Index(text, "Tuning:"))
		assert.Less(t, strings.Index(text, "Tuning:"), strings.Index(text, "Generic options:"))
	})

	t.Run("Category", func(t *testing.T) {
		p, out := setup(t)
		_, err := p.Init([]string{"prog", "-help", "tuning"})
		require.ErrorIs(t, err, ErrHelp)

		text := out.String()
		assert.Contains(t, text, "Tuning:")
		assert.Contains(t, text, "-ratio")
		assert.NotContains(t, text, "-verbose")
		assert.NotContains(t, text, "-option_file")
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		p, out := setup(t)
		_, err := p.Init([]string{"prog", "-help", "bogus"})
		require.ErrorIs(t, err, ErrHelp)

		text := out.String()
		assert.Contains(t, text, "Unknown help category 'bogus'.\n")
		assert.Contains(t, text, "Usage:\n    prog -help <category>\nwhere <category> should be one of:\n")
		assert.Contains(t, text, "     all, generic, tuning, user\n")
	})

	t.Run("CategoryWithoutHelpText", func(t *testing.T) {
		p, out := newTestParser(t)
		var hidden int64
		require.NoError(t, p.RegisterTitle("Quiet:", "", "quiet"))
		require.NoError(t, p.RegisterInt("hidden", "", &hidden))

		_, err := p.Init([]string{"prog", "-help", "quiet"})
		require.ErrorIs(t, err, ErrHelp)

		text := out.String()
		assert.Contains(t, text, "Unknown help category 'quiet'.\n")
		assert.Contains(t, text, "all, generic, quiet\n")
		assert.NotContains(t, text, "-hidden")
	})

	t.Run("HelpAppliedLast", func(t *testing.T) {
		p, out := setup(t)
		_, err := p.Init([]string{"prog", "-help", "user", "-i", "5"})
		require.ErrorIs(t, err, ErrHelp)
		assert.Contains(t, out.String(), "  -i <integer> (5)")
		assert.False(t, p.Initialized())
	})

	t.Run("HandlerValue", func(t *testing.T) {
		p, out := newTestParser(t)
		h := NewHandler(func(string) error { return nil }, "accepts anything")
		require.NoError(t, p.RegisterHandler("h", "handler", h, true))

		_, err := p.Init([]string{"prog", "-h", "once"})
		require.NoError(t, err)

		p.Help(out, "user")
		assert.Contains(t, out.String(), "  -h <string> (once)\n")
		assert.Contains(t, out.String(), "accepts anything")

		out.Reset()
		require.NoError(t, p.SetHandler("h", "twice"))
		p.Help(out, "user")
		assert.Contains(t, out.String(), "  -h <string>\n")
	})

	t.Run("WrapsLongText", func(t *testing.T) {
		p, out := newTestParser(t)
		var i int64
		long := strings.Repeat("ipsum ", 60)
		require.NoError(t, p.RegisterInt("i", long, &i))
		_, err := p.Init([]string{"prog"})
		require.NoError(t, err)

		p.Help(out, "all")
		var body int
		for _, line := range strings.Split(out.String(), "\n") {
			assert.LessOrEqual(t, len(line), helpWidth)
			if strings.HasPrefix(line, "     ") && strings.Contains(line, "ipsum") {
				body++
			}
		}
		assert.Greater(t, body, 1)
	})
}

// TestShowUsed tests the dump of options set by any source
func TestShowUsed(t *testing.T) {
	t.Run("BeforeInit", func(t *testing.T) {
		p, out := newTestParser(t)
		assert.ErrorIs(t, p.ShowUsed(out), ErrUsage)
	})

	t.Run("NothingUsed", func(t *testing.T) {
		p, out := newTestParser(t)
		var i int64
		require.NoError(t, p.RegisterInt("i", "int", &i))
		_, err := p.Init([]string{"prog"})
		require.NoError(t, err)

		require.NoError(t, p.ShowUsed(out))
		assert.Empty(t, out.String())
	})

	t.Run("Values", func(t *testing.T) {
		p, out := newTestParser(t)
		var (
			i   int64
			j   int64
			f   bool
			vi  Vec
			raw int64
		)
		require.NoError(t, p.RegisterInt("i", "int", &i))
		require.NoError(t, p.RegisterInt("j", "unused", &j))
		require.NoError(t, p.RegisterFlag("f", "flag", &f))
		require.NoError(t, p.RegisterVecInt("vi", "ints", &vi))
		require.NoError(t, p.RegisterInt("raw", "", &raw))
		require.NoError(t, p.RegisterHandler("h", "handler", HandlerFunc(func(string) error { return nil }), true))

		_, err := p.Init([]string{"prog", "-i", "8", "-f", "-vi", "1 2", "-raw", "3", "-h", "a", "-h", "b"})
		require.NoError(t, err)

		require.NoError(t, p.ShowUsed(out))
		want := "*-------------------- Parameter(s) set through options --------------------\n" +
			"* int: 8\n" +
			"* flag: True\n" +
			"* ints: 1 2\n" +
			"* raw: 3\n" +
			"* handler:\n" +
			"*   a\n" +
			"*   b\n" +
			"*" + strings.Repeat("-", 78) + "\n"
		assert.Equal(t, want, out.String())
	})
}

func TestShowCmdline(t *testing.T) {
	p, out := newTestParser(t)
	var i int64
	require.NoError(t, p.RegisterInt("i", "int", &i))
	require.NoError(t, p.Preset("-i 22"))
	_, err := p.Init([]string{"prog", "-i", "8"})
	require.NoError(t, err)

	p.ShowCmdline(out)
	assert.Equal(t, "Command-line: -i 8\nPreset: -i 22\n", out.String())
}
