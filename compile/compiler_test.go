package compile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/bytevm/ast"
	"github.com/coregx/bytevm/compile"
)

func mustCompile(t *testing.T, pattern string) *compile.Program {
	t.Helper()
	prog, err := compile.CompileFromPattern(pattern)
	require.NoError(t, err)
	return prog
}

func TestCompileAlternationShape(t *testing.T) {
	// Built directly from ast nodes (rather than parsed) so the anchor
	// makes the tree anchored without needing a nested capture group,
	// giving a fully predictable instruction layout: Save0, AssertBegin,
	// Split, Char(a), Jump, Char(b), Save1, Match.
	root := &ast.Node{
		Kind: ast.Concatenation,
		Left: &ast.Node{Kind: ast.AnchorBegin},
		Right: &ast.Node{
			Kind:  ast.Alternation,
			Left:  &ast.Node{Kind: ast.Character, Ch: 'a'},
			Right: &ast.Node{Kind: ast.Character, Ch: 'b'},
		},
	}

	prog, err := compile.Compile(root)
	require.NoError(t, err)
	require.Len(t, prog.Insts, 8, prog.Disassemble())

	wantOps := []compile.Op{
		compile.Save, compile.AssertBegin, compile.Split, compile.Char,
		compile.Jump, compile.Char, compile.Save, compile.Match,
	}
	for i, want := range wantOps {
		assert.Equalf(t, want, prog.Insts[i].Op, "inst %d\n%s", i, prog.Disassemble())
	}
}

func TestCompileNumCaptures(t *testing.T) {
	prog := mustCompile(t, `(a)(b(c))`)
	assert.Equal(t, 4, prog.NumCaptures)
}

func TestCompileCharacterClassBitmap(t *testing.T) {
	root, err := ast.Parse("[a-c]")
	require.NoError(t, err)
	prog, err := compile.Compile(root)
	require.NoError(t, err)

	var classInst *compile.Inst
	for i := range prog.Insts {
		if prog.Insts[i].Op == compile.Class {
			classInst = &prog.Insts[i]
			break
		}
	}
	require.NotNil(t, classInst)
	for _, ch := range []byte("abc") {
		assert.Truef(t, classInst.Bitmap.Contains(ch), "bitmap should contain %q", ch)
	}
	assert.False(t, classInst.Bitmap.Contains('d'))
}

func TestCompileWithBufferTooSmall(t *testing.T) {
	root, err := ast.Parse("abc")
	require.NoError(t, err)
	_, err = compile.CompileWithBuffer(root, make([]compile.Inst, 1))
	assert.ErrorIs(t, err, compile.ErrBufferTooSmall)
}

func TestCompileUnanchoredAddsSearchPrefix(t *testing.T) {
	anchored := mustCompile(t, "^a")
	unanchored := mustCompile(t, "a")
	assert.Greater(t, len(unanchored.Insts), len(anchored.Insts))
}
