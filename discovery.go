// FILE: lixenwraith/flexop/discovery.go
package flexop

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileDiscoveryOptions configures automatic option file discovery
type FileDiscoveryOptions struct {
	// Base name of the option file (without extension)
	Name string

	// Extensions to try, in order, in every search directory
	Extensions []string

	// Directories searched before the current and XDG directories
	Paths []string

	// Environment variable naming the option file explicitly
	EnvVar string

	// Search the XDG config directories
	UseXDG bool

	// Search the current directory
	UseCurrentDir bool
}

// DefaultDiscoveryOptions returns the discovery settings for appName: the
// env var APPNAME_OPTIONS, the current directory and the XDG directories,
// with every option file format the parser reads.
func DefaultDiscoveryOptions(appName string) FileDiscoveryOptions {
	return FileDiscoveryOptions{
		Name:          appName,
		Extensions:    []string{".opts", ".toml", ".yaml", ".yml", ".json", ".hcl"},
		EnvVar:        strings.ToUpper(appName) + "_OPTIONS",
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// WithFileDiscovery locates an option file and reads it as if it had been
// given through -option_file. A -option_file on the command line still wins.
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions) *Builder {
	path, origin := discoverFile(opts)
	if path == "" {
		b.opts.Logger.Debug("no option file discovered", slog.String("name", opts.Name))
		return b
	}

	b.opts.Logger.Debug("option file discovered",
		slog.String("path", path),
		slog.String("origin", origin),
	)
	b.file = path
	return b
}

// discoverFile returns the first option file found and where it came from
// ("env" or the search directory). An explicit env var path is returned
// without checking that it exists, so a bad path fails Init loudly.
func discoverFile(opts FileDiscoveryOptions) (path, origin string) {
	if opts.EnvVar != "" {
		if p := os.Getenv(opts.EnvVar); p != "" {
			return p, "env"
		}
	}

	for _, dir := range searchDirs(opts) {
		for _, ext := range opts.Extensions {
			candidate := filepath.Join(dir, opts.Name+ext)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, dir
			}
		}
	}
	return "", ""
}

// searchDirs lists the discovery directories in priority order.
func searchDirs(opts FileDiscoveryOptions) []string {
	dirs := append([]string(nil), opts.Paths...)

	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			dirs = append(dirs, cwd)
		}
	}
	if opts.UseXDG {
		dirs = append(dirs, xdgConfigDirs(opts.Name)...)
	}
	return dirs
}

// xdgConfigDirs returns the per-application XDG config directories, user
// directory first.
func xdgConfigDirs(appName string) []string {
	var dirs []string

	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		dirs = append(dirs, filepath.Join(home, appName))
	} else if home := os.Getenv("HOME"); home != "" {
		dirs = append(dirs, filepath.Join(home, ".config", appName))
	}

	system := filepath.SplitList(os.Getenv("XDG_CONFIG_DIRS"))
	if len(system) == 0 {
		system = []string{"/etc/xdg", "/etc"}
	}
	for _, dir := range system {
		dirs = append(dirs, filepath.Join(dir, appName))
	}
	return dirs
}
