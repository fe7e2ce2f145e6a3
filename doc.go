// File: lixenwraith/flexop/doc.go

// Package flexop parses program options from preset strings, an option file
// and the process argument list with one precedence and one syntax.
//
// Features:
//   - Flag, integer, unsigned, float, string, keyword, handler and vector options
//   - Shell-like tokenizer with quoting, escaping and '#' comments
//   - Sorted registry with "did you mean" suggestions for unknown options
//   - Option files in line, TOML, YAML, JSON and HCL formats
//   - Typed Get/Set API after initialization
//   - Grouped help output by category
//   - Struct scanning, expression validators and Save
//
// Quick Start:
//
//	var (
//	    n       int64 = 4
//	    verbose bool
//	    name    string
//	)
//
//	p := flexop.New()
//	p.RegisterInt("n", "number of workers", &n)
//	p.RegisterFlag("verbose", "verbose output", &verbose)
//	p.RegisterString("name", "run name", &name)
//	p.Preset("-n 8")
//
//	rest := p.MustInit(os.Args)
//	defer p.Finalize()
//
// Command-line syntax:
//
//	-name value, -name=value, --name value   option with an argument
//	-flag, +flag                             set a flag to true, false
//	-help <category>, -help all              print help and exit
//	-option_file <path>                      read options from a file
//
// Precedence (later wins):
//  1. Preset strings, in the order given
//  2. Command-line arguments
//  3. The option file named by -option_file
//
// A Parser is not safe for concurrent use.
package flexop
