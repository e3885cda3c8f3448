package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-gol-regions/model"
	"github.com/sheikhrachel/go-gol-regions/utils"
)

func writeBoard(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestPlayGame(t *testing.T) {
	board := writeBoard(t, "0,0,0,0,0\n0,0,1,0,0\n0,0,1,0,0\n0,0,1,0,0\n0,0,0,0,0\n")
	config := utils.DefaultConfig()
	config.Generations = 2
	config.FrameRate = 0

	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, playGame(context.Background(), config, board, &out, logger))

	output := out.String()
	assert.Contains(t, output, "Grid: 5x5 | Regions: 9 (3x3)")
	assert.Contains(t, output, "Frame 0\n0 0 0 0 0 \n0 0 1 0 0 \n")
	assert.Contains(t, output, "Frame 1\n0 0 0 0 0 \n0 0 0 0 0 \n0 1 1 1 0 \n")
	assert.Contains(t, output, "Frame 2\n")
	assert.NotContains(t, output, "Frame 3")
	assert.Contains(t, output, "Gen: 1 | Living: 3 | Density: 12.0% | Changes: 4 | Status: Active")
}

func TestPlayGame_ConfigurationError(t *testing.T) {
	board := writeBoard(t, "1,0\n0,1\n")
	config := utils.DefaultConfig()

	err := playGame(context.Background(), config, board, io.Discard, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.True(t, errors.Is(err, model.ErrInvalidPartition), "got %v", err)
}

func TestPlayGame_MalformedBoard(t *testing.T) {
	board := writeBoard(t, "1,0,1\n0,1\n")

	err := playGame(context.Background(), utils.DefaultConfig(), board, io.Discard, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.True(t, errors.Is(err, model.ErrMalformedBoard), "got %v", err)
}

func TestResolveConfig_FlagOverrides(t *testing.T) {
	t.Cleanup(func() { configPath = "" })
	configPath = filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("row_groups: 2\ngenerations: 9\n"), 0o600))

	cmd := &cobra.Command{}
	cmd.Flags().IntVarP(&generations, "generations", "n", 0, "")
	cmd.Flags().IntVar(&colGroups, "col-groups", 0, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--col-groups", "4"}))

	config, err := resolveConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, 2, config.RowGroups)
	assert.Equal(t, 4, config.ColGroups)
	assert.Equal(t, 9, config.Generations)
}
