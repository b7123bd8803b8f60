package cells

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnName returns the spreadsheet letter name of a data column: 1 is "A",
// 26 is "Z", 27 is "AA". Non-positive columns have no name.
func ColumnName(col int) string {
	if col <= 0 {
		return ""
	}
	var buf [16]byte
	i := len(buf)
	for col > 0 {
		col--
		i--
		buf[i] = byte('A' + col%26)
		col /= 26
	}
	return string(buf[i:])
}

// ParseColumn accepts a letter name ("C", "aa") or a 1-based column number.
func ParseColumn(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty column", ErrInvalidKey)
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 {
			return 0, fmt.Errorf("%w: column %d", ErrInvalidKey, n)
		}
		return n, nil
	}
	col := 0
	for _, r := range strings.ToUpper(s) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("%w: column %q", ErrInvalidKey, s)
		}
		col = col*26 + int(r-'A'+1)
		if col > 1<<24 {
			return 0, fmt.Errorf("%w: column %q", ErrInvalidKey, s)
		}
	}
	return col, nil
}

// Name returns the key in A1 form, e.g. "B3".
func (k Key) Name() string {
	return ColumnName(k.Col) + strconv.Itoa(k.Row)
}
