// FILE: lixenwraith/flexop/builder_test.go
package flexop

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestBuilder tests the fluent parser setup
func TestBuilder(t *testing.T) {
	t.Run("Build", func(t *testing.T) {
		var (
			n    int64
			name string
			out  bytes.Buffer
		)
		p, rest, err := NewBuilder().
			WithArgs([]string{"app", "-n", "5", "extra"}).
			WithPreset("-name preset").
			WithOutput(&out).
			WithLogger(quietLogger()).
			WithUnknownArgs(true).
			Register(func(p *Parser) error {
				if err := p.RegisterInt("n", "count", &n); err != nil {
					return err
				}
				return p.RegisterString("name", "name", &name)
			}).
			Build()

		require.NoError(t, err)
		require.NotNil(t, p)
		assert.True(t, p.Initialized())
		assert.Equal(t, []string{"extra"}, rest)
		assert.Equal(t, int64(5), n)
		assert.Equal(t, "preset", name)
	})

	t.Run("OptionFile", func(t *testing.T) {
		dir := t.TempDir()
		base := filepath.Join(dir, "base.opts")
		other := filepath.Join(dir, "other.toml")
		require.NoError(t, os.WriteFile(base, []byte("-n 1\n"), 0644))
		require.NoError(t, os.WriteFile(other, []byte("n = 2\n"), 0644))

		build := func(args ...string) int64 {
			var n int64
			_, _, err := NewBuilder().
				WithArgs(append([]string{"app"}, args...)).
				WithLogger(quietLogger()).
				WithOptionFile(base).
				Register(func(p *Parser) error { return p.RegisterInt("n", "count", &n) }).
				Build()
			require.NoError(t, err)
			return n
		}

		assert.Equal(t, int64(1), build())
		assert.Equal(t, int64(1), build("-n", "9"))
		assert.Equal(t, int64(2), build("-option_file", other))
	})

	t.Run("InvalidSettings", func(t *testing.T) {
		p, _, err := NewBuilder().WithFileFormat("ini").Build()
		assert.ErrorIs(t, err, ErrUsage)
		assert.Nil(t, p)

		_, _, err = NewBuilder().WithOutput(nil).WithFileFormat("xml").Build()
		assert.ErrorIs(t, err, ErrUsage)
		assert.Contains(t, err.Error(), "nil output writer")
		assert.Contains(t, err.Error(), `"xml"`)
	})

	t.Run("FileFormatAndSize", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.conf")
		require.NoError(t, os.WriteFile(path, []byte("n = 3\n"), 0644))

		var n int64
		_, _, err := NewBuilder().
			WithArgs([]string{"app"}).
			WithLogger(quietLogger()).
			WithFileFormat(FormatTOML).
			WithMaxFileSize(1024).
			WithOptionFile(path).
			Register(func(p *Parser) error { return p.RegisterInt("n", "count", &n) }).
			Build()
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("RegisterError", func(t *testing.T) {
		errBoom := errors.New("boom")
		_, _, err := NewBuilder().
			WithArgs([]string{"app"}).
			Register(func(*Parser) error { return errBoom }).
			Build()
		assert.ErrorIs(t, err, errBoom)
		assert.Contains(t, err.Error(), "failed to register options")
	})

	t.Run("InitErrorReturnsParser", func(t *testing.T) {
		p, _, err := NewBuilder().
			WithArgs([]string{"app", "-nope"}).
			WithLogger(quietLogger()).
			Build()
		assert.ErrorIs(t, err, ErrUnknownOption)
		assert.NotNil(t, p)
	})

	t.Run("Validator", func(t *testing.T) {
		var n int64
		_, _, err := NewBuilder().
			WithArgs([]string{"app", "-n", "0"}).
			WithLogger(quietLogger()).
			WithValidator(ExprValidator("n > 0")).
			Register(func(p *Parser) error { return p.RegisterInt("n", "count", &n) }).
			Build()
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("BuildAndScan", func(t *testing.T) {
		type target struct {
			N    int64  `option:"n"`
			Name string `option:"name"`
		}
		var (
			n    int64
			name string
			cfg  target
		)
		_, _, err := NewBuilder().
			WithArgs([]string{"app", "-n", "7", "-name", "scan"}).
			WithLogger(quietLogger()).
			Register(func(p *Parser) error {
				if err := p.RegisterInt("n", "count", &n); err != nil {
					return err
				}
				return p.RegisterString("name", "name", &name)
			}).
			BuildAndScan(&cfg)
		require.NoError(t, err)
		assert.Equal(t, target{N: 7, Name: "scan"}, cfg)
	})
}

func TestMustBuild(t *testing.T) {
	build := func(args ...string) int {
		code := -1
		var out bytes.Buffer
		NewBuilder().
			WithArgs(append([]string{"app"}, args...)).
			WithOutput(&out).
			WithLogger(quietLogger()).
			WithExit(func(c int) { code = c }).
			MustBuild()
		return code
	}

	assert.Equal(t, -1, build())
	assert.Equal(t, 0, build("-help", "all"))
	assert.Equal(t, 1, build("-nope"))
}

// TestFileDiscovery tests option file lookup
func TestFileDiscovery(t *testing.T) {
	t.Run("EnvVar", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "explicit.opts")
		t.Setenv("TESTAPP_OPTIONS", path)

		opts := DefaultDiscoveryOptions("testapp")
		assert.Equal(t, "TESTAPP_OPTIONS", opts.EnvVar)
		got, origin := discoverFile(opts)
		assert.Equal(t, path, got)
		assert.Equal(t, "env", origin)
	})

	t.Run("SearchPaths", func(t *testing.T) {
		empty := t.TempDir()
		dir := t.TempDir()
		path := filepath.Join(dir, "testapp.yaml")
		require.NoError(t, os.WriteFile(path, []byte("n: 4\n"), 0644))

		opts := FileDiscoveryOptions{
			Name:       "testapp",
			Extensions: []string{".opts", ".yaml"},
			Paths:      []string{empty, dir},
		}
		got, origin := discoverFile(opts)
		assert.Equal(t, path, got)
		assert.Equal(t, dir, origin)

		var n int64
		_, _, err := NewBuilder().
			WithArgs([]string{"app"}).
			WithLogger(quietLogger()).
			WithFileDiscovery(opts).
			Register(func(p *Parser) error { return p.RegisterInt("n", "count", &n) }).
			Build()
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
	})

	t.Run("NotFound", func(t *testing.T) {
		opts := FileDiscoveryOptions{
			Name:       "testapp",
			Extensions: []string{".opts"},
			Paths:      []string{t.TempDir()},
		}
		got, _ := discoverFile(opts)
		assert.Equal(t, "", got)
	})

	t.Run("XDGPaths", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/xdg/home")
		t.Setenv("XDG_CONFIG_DIRS", "/xdg/a"+string(os.PathListSeparator)+"/xdg/b")

		paths := xdgConfigDirs("testapp")
		assert.Equal(t, []string{
			filepath.Join("/xdg/home", "testapp"),
			filepath.Join("/xdg/a", "testapp"),
			filepath.Join("/xdg/b", "testapp"),
		}, paths)

		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("XDG_CONFIG_DIRS", "")
		t.Setenv("HOME", "/home/user")
		assert.Equal(t, []string{
			filepath.Join("/home/user", ".config", "testapp"),
			filepath.Join("/etc/xdg", "testapp"),
			filepath.Join("/etc", "testapp"),
		}, xdgConfigDirs("testapp"))
	})
}

func TestQuick(t *testing.T) {
	saved := os.Args
	t.Cleanup(func() { os.Args = saved })
	os.Args = []string{"app", "-n", "5"}

	var n int64
	p, rest, err := Quick(func(p *Parser) error {
		return p.RegisterInt("n", "count", &n)
	}, "-n 1")
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, int64(5), n)

	debug := p.Debug()
	assert.Contains(t, debug, "Initialized: true")
	assert.Contains(t, debug, "[User options:]")
	assert.Contains(t, debug, "  -n:\n    Kind: int\n    Value: 5\n    Used: true\n")
}
