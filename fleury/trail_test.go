package fleury_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eulertrail/fleury"
)

func TestFormatTrail(t *testing.T) {
	assert.Equal(t, "", fleury.FormatTrail(nil))
	assert.Equal(t, "3-0", fleury.FormatTrail([]fleury.Step{{From: 3, To: 0}}))
	assert.Equal(t, "0-1 1-2 2-0", fleury.FormatTrail([]fleury.Step{{0, 1}, {1, 2}, {2, 0}}))
}

func TestParseTrail(t *testing.T) {
	steps, err := fleury.ParseTrail("  0-1 1-2\t2-0\n")
	require.NoError(t, err)
	assert.Equal(t, []fleury.Step{{0, 1}, {1, 2}, {2, 0}}, steps)

	steps, err = fleury.ParseTrail("")
	require.NoError(t, err)
	assert.Empty(t, steps)

	for _, in := range []string{"0", "0-", "-1", "a-1", "1-b", "0-1 2"} {
		_, err = fleury.ParseTrail(in)
		assert.ErrorIs(t, err, fleury.ErrInvalidTrail, in)
	}
}

func TestParseTrail_RoundTrip(t *testing.T) {
	g := mustGraph(t, 4, lollipop)
	res, err := g.Tour()
	require.NoError(t, err)

	steps, err := fleury.ParseTrail(res.String())
	require.NoError(t, err)
	assert.Equal(t, res.Steps, steps)
}

func TestResult_End(t *testing.T) {
	r := &fleury.Result{Start: 2}
	assert.Equal(t, 2, r.End())

	r.Steps = []fleury.Step{{2, 0}, {0, 1}}
	assert.Equal(t, 1, r.End())
	assert.Equal(t, "2-0 0-1", r.String())
}
