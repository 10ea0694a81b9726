package desktop

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

const mainGroup = "[Desktop Entry]"

// ErrNoMainGroup is returned for files without a [Desktop Entry] group.
var ErrNoMainGroup = errors.New("missing [Desktop Entry] group")

// Entry holds the desktop-entry keys yeet cares about, with localized values
// already resolved for one locale.
type Entry struct {
	Name      string
	Exec      string
	Icon      string
	Comment   string
	Keywords  []string
	Terminal  bool
	NoDisplay bool
	Hidden    bool
}

// ParseFile reads a .desktop file. See Parse.
func ParseFile(path, locale string) (*Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, locale)
}

// Parse reads the [Desktop Entry] group of a desktop file.
//
// Localized keys (Name, Comment, Keywords) use Key[locale] for an exact match,
// then Key[lang] when locale carries a region, then the plain key. A key locale
// more specific than locale is ignored. Other groups (actions) are ignored.
func Parse(r io.Reader, locale string) (*Entry, error) {
	want := parseLocale(locale)

	raw := make(map[string]string)
	localized := make(map[string]localizedValue)
	inMain, sawMain := false, false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if line[0] == '[' && line[len(line)-1] == ']' {
			inMain = line == mainGroup
			sawMain = sawMain || inMain
			continue
		}
		if !inMain {
			continue
		}

		i := strings.IndexByte(line, '=')
		if i <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:i])
		value := strings.TrimSpace(line[i+1:])

		if base, loc, ok := splitLocaleKey(key); ok {
			rank := want.match(loc)
			if rank == 0 {
				continue
			}
			if prev, seen := localized[base]; !seen || rank > prev.rank {
				localized[base] = localizedValue{value: value, rank: rank}
			}
			continue
		}
		if _, seen := raw[key]; !seen {
			raw[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read desktop entry: %w", err)
	}
	if !sawMain {
		return nil, ErrNoMainGroup
	}

	pick := func(key string) string {
		if lv, ok := localized[key]; ok {
			return lv.value
		}
		return raw[key]
	}

	return &Entry{
		Name:      unescape(pick("Name")),
		Exec:      unescape(raw["Exec"]),
		Icon:      unescape(raw["Icon"]),
		Comment:   unescape(pick("Comment")),
		Keywords:  splitList(pick("Keywords")),
		Terminal:  parseBool(raw["Terminal"]),
		NoDisplay: parseBool(raw["NoDisplay"]),
		Hidden:    parseBool(raw["Hidden"]),
	}, nil
}

type localizedValue struct {
	value string
	rank  int
}

// splitLocaleKey splits "Name[de_DE]" into "Name" and "de_DE".
func splitLocaleKey(key string) (string, string, bool) {
	open := strings.IndexByte(key, '[')
	if open <= 0 || key[len(key)-1] != ']' {
		return "", "", false
	}
	return key[:open], key[open+1 : len(key)-1], true
}

type preferredLocale struct {
	tag  language.Tag
	base language.Base
	ok   bool
}

func parseLocale(s string) preferredLocale {
	tag, err := language.Parse(normalizeLocale(s))
	if err != nil {
		return preferredLocale{}
	}
	base, _ := tag.Base()
	return preferredLocale{tag: tag, base: base, ok: true}
}

// match ranks a key locale against the preferred one: 2 for an exact match,
// 1 for the bare language of a more specific preferred locale, 0 otherwise.
func (p preferredLocale) match(keyLocale string) int {
	if !p.ok {
		return 0
	}
	tag, err := language.Parse(normalizeLocale(keyLocale))
	if err != nil {
		return 0
	}
	if tag.String() == p.tag.String() {
		return 2
	}
	if tag.String() == p.base.String() {
		return 1
	}
	return 0
}

// normalizeLocale maps POSIX "lang_COUNTRY.ENCODING@MODIFIER" to a BCP 47 form.
func normalizeLocale(s string) string {
	if i := strings.IndexByte(s, '@'); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	return strings.ReplaceAll(s, "_", "-")
}

func parseBool(s string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && v
}

// unescape applies the desktop-entry string escapes (\s \n \t \r \\).
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 's':
			b.WriteByte(' ')
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// splitList splits a ';'-separated string list, honouring "\;" escapes.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var (
		out []string
		cur strings.Builder
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) && s[i+1] == ';' {
			cur.WriteByte(';')
			i++
			continue
		}
		if c == ';' {
			if v := unescape(strings.TrimSpace(cur.String())); v != "" {
				out = append(out, v)
			}
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	if v := unescape(strings.TrimSpace(cur.String())); v != "" {
		out = append(out, v)
	}
	return out
}
