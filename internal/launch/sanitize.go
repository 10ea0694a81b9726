package launch

import (
	"errors"
	"strings"

	"github.com/kballard/go-shellquote"
)

var (
	// ErrTokenizeFailed means the Exec string could not be split into words
	// (for example an unbalanced quote).
	ErrTokenizeFailed = errors.New("failed to parse desktop Exec")
	// ErrEmptyCommand means nothing runnable was left after field codes were removed.
	ErrEmptyCommand = errors.New("desktop Exec is empty after cleaning")
	// ErrTerminalTokenizeFailed means the configured terminal command could not be split.
	ErrTerminalTokenizeFailed = errors.New("failed to parse terminal command")
	// ErrEmptyTerminalCommand means the configured terminal command has no words.
	ErrEmptyTerminalCommand = errors.New("terminal command is empty")
)

// fieldCodes are the desktop-entry placeholders removed from Exec arguments.
// yeet never substitutes files or URLs, so they are dropped rather than expanded.
const fieldCodes = "fFuUdDnNickvm"

// SanitizeExec turns a desktop-entry Exec value into a program and its arguments.
//
// Words are split with POSIX quoting rules but no shell is involved: ";", "|",
// "&&" and backticks end up as literal word content. An unquoted "#" at the
// start of a word comments out the rest of the line. Field codes are stripped
// per word and words left empty are dropped.
func SanitizeExec(raw string) (string, []string, error) {
	words, err := splitWords(raw)
	if err != nil {
		return "", nil, ErrTokenizeFailed
	}

	cleaned := make([]string, 0, len(words))
	for _, w := range words {
		if c := stripFieldCodes(w); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	if len(cleaned) == 0 {
		return "", nil, ErrEmptyCommand
	}
	return cleaned[0], cleaned[1:], nil
}

// splitCommand splits a plain command line (no field codes) into program and args.
func splitCommand(command string) (string, []string, error) {
	words, err := splitWords(command)
	if err != nil {
		return "", nil, ErrTerminalTokenizeFailed
	}
	if len(words) == 0 {
		return "", nil, ErrEmptyTerminalCommand
	}
	return words[0], words[1:], nil
}

func splitWords(s string) ([]string, error) {
	return shellquote.Split(stripComments(s))
}

// stripComments removes comments from s: an unquoted "#" that begins a word
// hides everything up to the next newline.
func stripComments(s string) string {
	if !strings.ContainsRune(s, '#') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	inSingle, inDouble, escaped := false, false, false
	wordStart := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		literal := false
		switch {
		case escaped:
			escaped, literal = false, true
		case inSingle:
			if c == '\'' {
				inSingle = false
			}
		case inDouble:
			if c == '\\' {
				escaped = true
			} else if c == '"' {
				inDouble = false
			}
		case c == '#' && wordStart:
			nl := strings.IndexByte(s[i:], '\n')
			if nl < 0 {
				return b.String()
			}
			i += nl
			c = '\n'
		case c == '\\':
			escaped = true
		case c == '\'':
			inSingle = true
		case c == '"':
			inDouble = true
		}
		wordStart = !literal && !inSingle && !inDouble && !escaped && (c == ' ' || c == '\t' || c == '\n')
		b.WriteByte(c)
	}
	return b.String()
}

// stripFieldCodes removes %f, %U, ... from a single word in one pass.
// "%%" becomes "%", unknown codes are kept, a trailing "%" is dropped.
// Bytes other than the codes are copied unchanged, valid UTF-8 or not.
func stripFieldCodes(word string) string {
	if strings.IndexByte(word, '%') < 0 {
		return word
	}

	var b strings.Builder
	b.Grow(len(word))
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(word) {
			break
		}
		next := word[i+1]
		switch {
		case next == '%':
			b.WriteByte('%')
			i++
		case strings.IndexByte(fieldCodes, next) >= 0:
			i++
		default:
			// Unknown code: keep the "%" and let the loop copy what follows.
			b.WriteByte('%')
		}
	}
	return b.String()
}
