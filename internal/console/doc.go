// Package console is the interactive front-end of the fleury binary.
//
// It reads a vertex count, an edge count and the edge pairs from a stream
// of whitespace-separated integers, re-prompting on every invalid value, and
// prints the resulting trail:
//
//	Eulerian Path or Circuit: 0-1 1-2 2-0
//
// Prompts and the banner are only written when enabled (see ShouldPrompt),
// so piped input produces just the result line. End of input before the
// graph is complete returns io.ErrUnexpectedEOF.
package console
