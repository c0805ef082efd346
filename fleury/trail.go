package fleury

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTrail renders steps as space-separated "u-v" tokens.
func FormatTrail(steps []Step) string {
	var b strings.Builder
	for i, s := range steps {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.String())
	}

	return b.String()
}

// ParseTrail parses whitespace-separated "u-v" tokens back into steps.
// Malformed tokens return ErrInvalidTrail.
func ParseTrail(s string) ([]Step, error) {
	fields := strings.Fields(s)
	steps := make([]Step, 0, len(fields))

	var (
		tok, a, b string
		ok        bool
		u, v      int
		err       error
	)
	for _, tok = range fields {
		if a, b, ok = strings.Cut(tok, "-"); !ok {
			return nil, fmt.Errorf("ParseTrail: token %q: %w", tok, ErrInvalidTrail)
		}
		if u, err = strconv.Atoi(a); err != nil {
			return nil, fmt.Errorf("ParseTrail: token %q: %w", tok, ErrInvalidTrail)
		}
		if v, err = strconv.Atoi(b); err != nil {
			return nil, fmt.Errorf("ParseTrail: token %q: %w", tok, ErrInvalidTrail)
		}
		steps = append(steps, Step{From: u, To: v})
	}

	return steps, nil
}
