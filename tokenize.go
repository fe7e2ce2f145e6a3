// FILE: lixenwraith/flexop/tokenize.go
package flexop

import (
	"fmt"
	"strings"
)

// Tokenize splits text into shell-like tokens and appends them to dst.
// Tokens already in dst are preserved, so a caller may accumulate the tokens
// of several strings (one per line of a file, one per preset) in one slice.
//
// Whitespace separates tokens. A '#' at the start of a token begins a comment
// that runs to the end of the line. A backslash escapes the next character,
// also inside quotes. Single or double quotes group whitespace into a token;
// the other quote character is literal while quoted. An unterminated quote
// returns ErrUnterminatedQuote and leaves dst unchanged.
func Tokenize(dst []string, text string) ([]string, error) {
	out := dst
	var (
		tok   strings.Builder
		quote byte
		i     int
	)

	for {
		for i < len(text) && isSpace(text[i]) {
			i++
		}

		if i < len(text) && text[i] == '#' {
			for i < len(text) && text[i] != '\n' {
				i++
			}
			continue
		}

		if i >= len(text) {
			break
		}

		tok.Reset()
		for i < len(text) {
			c := text[i]
			if quote == 0 && isSpace(c) {
				break
			}

			if quote != 0 && c == quote {
				quote = 0
				i++
				continue
			}

			if c == '\\' {
				i++
				if i >= len(text) {
					break
				}
				tok.WriteByte(text[i])
				i++
				continue
			}

			if quote == 0 && (c == '\'' || c == '"') && precedingBackslashes(text, i)%2 == 0 {
				quote = c
				i++
				continue
			}

			tok.WriteByte(c)
			i++
		}

		if quote != 0 {
			return dst, fmt.Errorf("%w in %q", ErrUnterminatedQuote, text)
		}

		out = append(out, tok.String())
	}

	return out, nil
}

// Split tokenizes text into a fresh slice.
func Split(text string) ([]string, error) {
	return Tokenize(nil, text)
}

// precedingBackslashes counts the backslashes immediately before text[i].
func precedingBackslashes(text string, i int) int {
	n := 0
	for j := i - 1; j >= 0 && text[j] == '\\'; j-- {
		n++
	}
	return n
}

// Quote renders s as a single token that Tokenize reads back unchanged.
func Quote(s string) string {
	if s == "" {
		return `""`
	}
	if !strings.ContainsAny(s, " \t\n\v\f\r'\"\\") && s[0] != '#' {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}
