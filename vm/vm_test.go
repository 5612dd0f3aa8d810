package vm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/bytevm/compile"
	"github.com/coregx/bytevm/vm"
)

func mustRun(t *testing.T, pattern, input string) (bool, []int, int) {
	t.Helper()
	prog, err := compile.CompileFromPattern(pattern)
	require.NoError(t, err)
	caps := make([]int, 2*prog.NumCaptures)
	matched := vm.Run(prog, input, caps)
	return matched, caps, prog.NumCaptures
}

func TestRunLiteralSearch(t *testing.T) {
	matched, caps, _ := mustRun(t, "bbb", "xabbbcy")
	require.True(t, matched)
	assert.Equal(t, []int{2, 5}, caps[:2])
}

func TestRunCaptureGroup(t *testing.T) {
	matched, caps, n := mustRun(t, "a(b+)c", "xabbbcy")
	require.True(t, matched)
	require.Equal(t, 2, n)
	assert.Equal(t, []int{1, 6}, caps[0:2])
	assert.Equal(t, []int{2, 5}, caps[2:4])
}

func TestRunAnchors(t *testing.T) {
	matched, _, _ := mustRun(t, "^abc$", "abc")
	assert.True(t, matched)

	matched, _, _ = mustRun(t, "^abc$", "xabc")
	assert.False(t, matched)

	matched, _, _ = mustRun(t, "^abc$", "abcx")
	assert.False(t, matched)
}

func TestRunGreedyVsNonGreedy(t *testing.T) {
	_, caps, _ := mustRun(t, "a.*b", "axbxb")
	assert.Equal(t, []int{0, 5}, caps[:2], "greedy a.*b should consume to the last b")

	_, caps, _ = mustRun(t, "a.*?b", "axbxb")
	assert.Equal(t, []int{0, 3}, caps[:2], "non-greedy a.*?b should stop at the first b")
}

func TestRunAlternationPrefersLeft(t *testing.T) {
	_, caps, _ := mustRun(t, "ab|a", "ab")
	assert.Equal(t, []int{0, 2}, caps[:2], "leftmost alternative should win even though it finishes later")
}

func TestRunRepeatedCaptureKeepsLastIteration(t *testing.T) {
	matched, caps, n := mustRun(t, "(a|b)+", "abab")
	require.True(t, matched)
	require.Equal(t, 2, n)
	assert.Equal(t, []int{3, 4}, caps[2:4])
}

func TestRunBoundedInterval(t *testing.T) {
	matched, _, _ := mustRun(t, "^a{2,3}$", "aa")
	assert.True(t, matched)

	matched, _, _ = mustRun(t, "^a{2,3}$", "aaaa")
	assert.False(t, matched)
}

func TestRunNegatedClass(t *testing.T) {
	matched, caps, _ := mustRun(t, "[^x]+", "abcxdef")
	require.True(t, matched)
	assert.Equal(t, []int{0, 3}, caps[:2])
}

func TestRunEmptyCapture(t *testing.T) {
	matched, caps, n := mustRun(t, "a()b", "ab")
	require.True(t, matched)
	require.Equal(t, 2, n)
	assert.Equal(t, []int{1, 1}, caps[2:4])
}

func TestRunNoMatch(t *testing.T) {
	matched, _, _ := mustRun(t, "xyz", "abc")
	assert.False(t, matched)
}

func TestMachineReuse(t *testing.T) {
	prog, err := compile.CompileFromPattern("a+")
	require.NoError(t, err)

	m := vm.NewMachine(prog)

	caps := make([]int, 2*prog.NumCaptures)
	require.True(t, m.Run(prog, "xaaay", caps))
	assert.Equal(t, []int{1, 4}, caps[:2])

	caps2 := make([]int, 2*prog.NumCaptures)
	require.True(t, m.Run(prog, "zaay", caps2))
	assert.Equal(t, []int{1, 3}, caps2[:2])
}
