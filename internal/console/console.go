package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/eulertrail/fleury"
)

// MaxVertices caps the vertex count so that V·(V−1)/2 fits in an int and the
// adjacency table stays allocatable.
const MaxVertices = 1 << 20

const (
	bannerWidth = 100
	resultLabel = "Eulerian Path or Circuit: "
)

// Option configures a Console.
type Option func(*Console)

// WithPrompts enables prompts and re-prompt messages.
func WithPrompts(on bool) Option {
	return func(c *Console) { c.prompts = on }
}

// WithBanner enables the title banner. It is only shown when prompts are on.
func WithBanner(on bool) Option {
	return func(c *Console) { c.banner = on }
}

// WithLogger sets the logger used to report rejected input.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Console) { c.log = l }
}

// Console reads a graph from in and writes prompts and results to out.
// It is not safe for concurrent use.
type Console struct {
	in       *bufio.Scanner
	out      io.Writer
	prompts  bool
	banner   bool
	log      zerolog.Logger
	rejected int
	err      error // first write error
}

// New returns a Console over in and out. Prompts and banner are off and
// logging is disabled unless enabled by options.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	c := &Console{
		in:  sc,
		out: out,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Rejected returns how many input values were discarded so far.
func (c *Console) Rejected() int { return c.rejected }

// printf writes to out when prompts are on, remembering the first error.
func (c *Console) printf(format string, args ...any) {
	if !c.prompts || c.err != nil {
		return
	}
	_, c.err = fmt.Fprintf(c.out, format, args...)
}

// token returns the next whitespace-separated word.
func (c *Console) token() (string, error) {
	if c.in.Scan() {
		return c.in.Text(), nil
	}
	if err := c.in.Err(); err != nil {
		return "", err
	}

	return "", io.ErrUnexpectedEOF
}

// next reads one integer. ok is false when the word is not an integer; the
// word is discarded in that case.
func (c *Console) next() (tok string, n int, ok bool, err error) {
	if tok, err = c.token(); err != nil {
		return "", 0, false, err
	}
	if n, err = strconv.Atoi(tok); err != nil {
		c.reject(tok, "not an integer")
		return tok, 0, false, nil
	}

	return tok, n, true, nil
}

func (c *Console) reject(tok, reason string) {
	c.rejected++
	c.log.Debug().Str("input", tok).Str("reason", reason).Msg("input rejected")
}

// Banner writes the title block.
func (c *Console) Banner() {
	if !c.banner {
		return
	}
	rule := strings.Repeat("-", bannerWidth)
	c.printf("%s\n%s\n%s\n%s\n", rule, center("Spanning Graphs", bannerWidth),
		center("Fleury's Algorithm to find Eulerian Path or Circuit", bannerWidth), rule)
}

func center(s string, width int) string {
	pad := max((width-len(s))/2, 0)

	return strings.Repeat(" ", pad) + s
}

// ReadVertexCount reads V, re-prompting until 0 < V <= MaxVertices.
func (c *Console) ReadVertexCount() (int, error) {
	c.printf("Enter the number of Vertices: ")
	for {
		tok, v, ok, err := c.next()
		if err != nil {
			return 0, fmt.Errorf("ReadVertexCount: %w", err)
		}
		if ok && v > 0 && v <= MaxVertices {
			return v, nil
		}
		if ok {
			c.reject(tok, "vertex count out of range")
		}
		c.printf("\nInvalid Input. Please enter the number of Vertices: ")
	}
}

// MaxEdges returns V·(V−1)/2, the edge limit of a simple graph on v vertices.
func MaxEdges(v int) int {
	return v * (v - 1) / 2
}

// ReadEdgeCount reads E, re-prompting until 0 <= E <= MaxEdges(v).
func (c *Console) ReadEdgeCount(v int) (int, error) {
	limit := MaxEdges(v)
	c.printf("Enter the number of Edges: ")
	for {
		tok, e, ok, err := c.next()
		if err != nil {
			return 0, fmt.Errorf("ReadEdgeCount: %w", err)
		}
		if ok && e >= 0 && e <= limit {
			return e, nil
		}
		if ok {
			c.reject(tok, "edge count out of range")
		}
		c.printf("\nInvalid Input. Please enter the number of Edges (valid range: 0 to %d): ", limit)
	}
}

// ReadEdge reads one pair "u v", re-prompting until 0 <= u, v < n and u != v.
// A non-integer word discards the pair read so far.
func (c *Console) ReadEdge(n int) (u, v int, err error) {
	var (
		tu, tv   string
		okU, okV bool
	)
	for {
		if tu, u, okU, err = c.next(); err != nil {
			return 0, 0, fmt.Errorf("ReadEdge: %w", err)
		}
		if okU {
			if tv, v, okV, err = c.next(); err != nil {
				return 0, 0, fmt.Errorf("ReadEdge: %w", err)
			}
		}
		if okU && okV {
			if u >= 0 && v >= 0 && u < n && v < n && u != v {
				return u, v, nil
			}
			c.reject(tu+" "+tv, "invalid edge")
		}
		c.printf("Invalid edge (%s %s). Please enter valid vertices (0 <= u, v < %d and u != v): ", tu, tv, n)
		tv = ""
	}
}

// ReadGraph runs the whole dialogue and returns the graph it describes.
//
// Errors:
//   - io.ErrUnexpectedEOF if input ends early
//   - scanner or write errors
func (c *Console) ReadGraph(opts ...fleury.GraphOption) (*fleury.Graph, error) {
	// 1. Counts
	c.Banner()
	n, err := c.ReadVertexCount()
	if err != nil {
		return nil, err
	}
	g, err := fleury.NewGraph(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("ReadGraph: %w", err)
	}
	m, err := c.ReadEdgeCount(n)
	if err != nil {
		return nil, err
	}

	// 2. Edges
	c.printf("Enter the edges (u v):\n")
	var u, v int
	for i := 0; i < m; i++ {
		if u, v, err = c.ReadEdge(n); err != nil {
			return nil, fmt.Errorf("ReadGraph: edge %d of %d: %w", i+1, m, err)
		}
		if err = g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("ReadGraph: %w", err)
		}
	}
	if c.err != nil {
		return nil, fmt.Errorf("ReadGraph: %w", c.err)
	}

	return g, nil
}

// PrintTrail writes the result line. With prompts on it is framed by blank
// lines as in the interactive dialogue.
func (c *Console) PrintTrail(res *fleury.Result) error {
	line := resultLabel + res.String() + "\n"
	if c.prompts {
		line = "\n" + line + "\n"
	}
	if _, err := io.WriteString(c.out, line); err != nil {
		return fmt.Errorf("PrintTrail: %w", err)
	}

	return nil
}
