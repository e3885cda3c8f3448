package model

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalRenderer_PlainDisplay(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, false) // a buffer is not a terminal, so output is plain
	g := gridFromRows(t, [][]uint8{{1, 0, 1}, {0, 1, 0}})

	require.NoError(t, r.Display(g, 7))

	assert.Equal(t, "Frame 7\n1 0 1 \n0 1 0 \n", buf.String())
}

func TestTerminalRenderer_ClearIsNoopOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, true)

	require.NoError(t, r.Clear())
	assert.Empty(t, buf.String())
}

func TestTerminalRenderer_Blocks(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalRenderer{out: &buf}
	g := gridFromRows(t, [][]uint8{{1, 0}, {0, 1}})

	require.NoError(t, r.Display(g, 0))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Frame 0")
	assert.Contains(t, lines[1], gridPosBlock+gridPosEmpty)
	assert.Contains(t, lines[2], gridPosEmpty+gridPosBlock)
}
