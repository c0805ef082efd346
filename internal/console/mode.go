package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrUnknownPromptMode is returned by ParsePromptMode.
var ErrUnknownPromptMode = errors.New("console: unknown prompt mode")

// PromptMode decides when prompts and the banner are written.
type PromptMode int

const (
	// PromptAuto prompts only when input comes from a terminal.
	PromptAuto PromptMode = iota
	// PromptAlways prompts regardless of the input source.
	PromptAlways
	// PromptNever never prompts.
	PromptNever
)

// String returns the config spelling of the mode.
func (m PromptMode) String() string {
	switch m {
	case PromptAuto:
		return "auto"
	case PromptAlways:
		return "always"
	case PromptNever:
		return "never"
	default:
		return fmt.Sprintf("PromptMode(%d)", int(m))
	}
}

// ParsePromptMode maps "auto", "always" or "never" to a PromptMode.
// The empty string means PromptAuto.
func ParsePromptMode(s string) (PromptMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return PromptAuto, nil
	case "always":
		return PromptAlways, nil
	case "never":
		return PromptNever, nil
	default:
		return PromptAuto, fmt.Errorf("%w: %q", ErrUnknownPromptMode, s)
	}
}

// ShouldPrompt resolves m against the input source. Under PromptAuto only an
// *os.File attached to a terminal enables prompts.
func ShouldPrompt(m PromptMode, in io.Reader) bool {
	switch m {
	case PromptAlways:
		return true
	case PromptNever:
		return false
	}
	f, ok := in.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
