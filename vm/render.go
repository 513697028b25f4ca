package vm

import (
	"strconv"
	"strings"
	"unicode"
)

// Symbols resolves the variables referenced by rendered text
type Symbols interface {
	String(name string) (string, error)
	Numeric(name string) (int, error)
}

const refEnd = " \t\n"

// Render expands the variable references in text and terminates it with a
// newline.  A reference starts at ‘$’ or ‘#’ and runs up to the next space,
// tab, or newline.  Leading whitespace is dropped.
func Render(text string, syms Symbols) (string, error) {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)
	sb := strings.Builder{}

	for i := 0; i < len(text); {
		c := text[i]
		if c != '$' && c != '#' {
			sb.WriteByte(c)
			i++
			continue
		}

		j := strings.IndexAny(text[i:], refEnd)
		if j == -1 {
			j = len(text) - i
		}
		name := text[i : i+j]
		i += j

		if c == '$' {
			s, err := syms.String(name)
			if err != nil {
				return "", err
			}
			sb.WriteString(s)
		} else {
			n, err := syms.Numeric(name)
			if err != nil {
				return "", err
			}
			sb.WriteString(strconv.Itoa(n))
		}
	}

	sb.WriteByte('\n')
	return sb.String(), nil
}
