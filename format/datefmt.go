package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/arloliu/arff/errs"
)

// GoLayout translates a date pattern written in the reference mini-language
// (yyyy, MM, dd, HH, mm, ss, ...) into a Go time layout. Literal text is
// enclosed in single quotes; '' is a literal apostrophe.
//
// Supported pattern letters: y M d E H h m s S a z Z X. Other letters are
// rejected with ErrBadDateFormat rather than silently mistranslated.
func GoLayout(pattern string) (string, error) {
	var sb strings.Builder

	i := 0
	for i < len(pattern) {
		c := pattern[i]

		if c == '\'' {
			n, err := appendQuoted(&sb, pattern[i:])
			if err != nil {
				return "", err
			}
			i += n

			continue
		}

		if !isPatternLetter(c) {
			sb.WriteByte(c)
			i++

			continue
		}

		run := 1
		for i+run < len(pattern) && pattern[i+run] == c {
			run++
		}

		part, err := layoutFor(c, run)
		if err != nil {
			return "", err
		}
		sb.WriteString(part)
		i += run
	}

	return sb.String(), nil
}

// ParseDate parses text per the attribute pattern.
func ParseDate(pattern, text string) (time.Time, error) {
	layout, err := GoLayout(pattern)
	if err != nil {
		return time.Time{}, err
	}

	t, err := time.Parse(layout, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q does not match format %q", errs.ErrBadDate, text, pattern)
	}

	return t, nil
}

// FormatDate formats t per the attribute pattern.
func FormatDate(pattern string, t time.Time) (string, error) {
	layout, err := GoLayout(pattern)
	if err != nil {
		return "", err
	}

	return t.Format(layout), nil
}

// appendQuoted consumes a quoted literal starting at p[0] == '\'' and returns
// the number of pattern bytes consumed.
func appendQuoted(sb *strings.Builder, p string) (int, error) {
	if len(p) >= 2 && p[1] == '\'' {
		// '' outside a quoted section is a literal apostrophe.
		sb.WriteByte('\'')
		return 2, nil
	}

	i := 1
	for i < len(p) {
		if p[i] == '\'' {
			if i+1 < len(p) && p[i+1] == '\'' {
				sb.WriteByte('\'')
				i += 2

				continue
			}

			return i + 1, nil
		}
		sb.WriteByte(p[i])
		i++
	}

	return 0, fmt.Errorf("%w: unterminated quote in %q", errs.ErrBadDateFormat, p)
}

func isPatternLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func layoutFor(c byte, run int) (string, error) {
	switch c {
	case 'y':
		if run == 2 {
			return "06", nil
		}

		return "2006", nil
	case 'M':
		switch {
		case run >= 4:
			return "January", nil
		case run == 3:
			return "Jan", nil
		case run == 2:
			return "01", nil
		default:
			return "1", nil
		}
	case 'd':
		if run >= 2 {
			return "02", nil
		}

		return "2", nil
	case 'E':
		if run >= 4 {
			return "Monday", nil
		}

		return "Mon", nil
	case 'H':
		// Go has no single-digit 24-hour form; "15" covers both.
		return "15", nil
	case 'h':
		if run >= 2 {
			return "03", nil
		}

		return "3", nil
	case 'm':
		if run >= 2 {
			return "04", nil
		}

		return "4", nil
	case 's':
		if run >= 2 {
			return "05", nil
		}

		return "5", nil
	case 'S':
		return strings.Repeat("0", run), nil
	case 'a':
		return "PM", nil
	case 'z':
		return "MST", nil
	case 'Z':
		return "-0700", nil
	case 'X':
		switch {
		case run >= 3:
			return "Z07:00", nil
		case run == 2:
			return "Z0700", nil
		default:
			return "Z07", nil
		}
	default:
		return "", fmt.Errorf("%w: unsupported pattern letter %q", errs.ErrBadDateFormat, string(c))
	}
}
