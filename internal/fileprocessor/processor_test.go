package fileprocessor

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/n64analyser/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// createROM writes a small big endian image containing a single function.
func createROM(t *testing.T, dir, name string) string {
	t.Helper()

	data := make([]byte, 0x2000)
	copy(data, []byte{0x80, 0x37, 0x12, 0x40})
	for offset := 0x1000; offset < len(data); offset += 4 {
		binary.BigEndian.PutUint32(data[offset:], 0xEC000000)
	}
	words := []uint32{0x27BDFFE8, 0xAFBF0014, 0x00801021, 0x8FBF0014, 0x03E00008, 0x27BD0018}
	for i, word := range words {
		binary.BigEndian.PutUint32(data[0x1000+4*i:], word)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("Failed to create rom file: %v", err)
	}
	return path
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	input := createROM(t, dir, "game.z64")
	output := GenerateOutputFilename(input)

	opts := options.Program{
		Parameters: options.Parameters{Input: input, Output: output},
		Flags:      options.Flags{Quiet: true},
	}
	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.NewAnalyser())
	assert.NoError(t, err)

	report, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Contains(t, string(report), "  0x00001000 to 0x00001020 (0x000020) rsp: false")
}

func TestProcessFileError(t *testing.T) {
	dir := t.TempDir()
	opts := options.Program{
		Parameters: options.Parameters{
			Input:  filepath.Join(dir, "missing.z64"),
			Output: filepath.Join(dir, "missing.txt"),
		},
	}
	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.NewAnalyser())
	assert.ErrorContains(t, err, "analysing")
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	createROM(t, dir, "a.z64")
	createROM(t, dir, "b.z64")
	createROM(t, dir, "c.n64")

	opts := &options.Program{Parameters: options.Parameters{Batch: filepath.Join(dir, "*.z64")}}
	files, err := GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Len(t, files, 2)
	assert.True(t, strings.HasSuffix(files[0], "a.z64"))

	opts = &options.Program{Parameters: options.Parameters{Input: "game.z64"}}
	files, err = GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{"game.z64"}, files)

	opts = &options.Program{Parameters: options.Parameters{Batch: "[-"}}
	_, err = GetFilesToProcess(opts)
	assert.Error(t, err)
}

func TestGenerateOutputFilename(t *testing.T) {
	assert.Equal(t, "roms/game.txt", GenerateOutputFilename("roms/game.z64"))
	assert.Equal(t, "game.txt", GenerateOutputFilename("game"))
}

type failingCloser struct {
	bytes.Buffer
	err error
}

func (c *failingCloser) Close() error { return c.err }

func TestCloseWriter(t *testing.T) {
	errClose := errors.New("disk full")
	errProcess := errors.New("analysis failed")

	tests := []struct {
		name     string
		writer   io.Writer
		err      error
		expected error
	}{
		{"close error is reported", &failingCloser{err: errClose}, nil, errClose},
		{"processing error is kept", &failingCloser{err: errClose}, errProcess, errProcess},
		{"successful close", &failingCloser{}, nil, nil},
		{"plain writer", &bytes.Buffer{}, nil, nil},
		{"stdout is not closed", os.Stdout, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.err
			closeWriter(tt.writer, &err)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestVersionString(t *testing.T) {
	version := versionString("1.0.0", "0123456789abcdef", "2026-01-01")
	assert.True(t, strings.HasPrefix(version, "1.0.0 commit: 0123456 built at: 2026-01-01"))
	assert.Contains(t, version, "built with: go")

	version = versionString("dev", "", "unknown")
	assert.True(t, strings.HasPrefix(version, "dev built with: "))
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	cfg := log.DefaultConfig()
	cfg.Output = &buf
	cfg.TimeFormat = "-"
	logger := log.NewWithConfig(cfg)

	PrintBanner(logger, options.Program{}, "1.0.0", "0123456789abcdef", "2026-01-01")
	assert.Contains(t, buf.String(), `"version":"1.0.0 commit: 0123456 built at: 2026-01-01`)

	buf.Reset()
	PrintBanner(logger, options.Program{Flags: options.Flags{Quiet: true}}, "dev", "", "")
	assert.Empty(t, buf.String())
}
