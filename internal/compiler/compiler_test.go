package compiler

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/retroenv/n64analyser/internal/program"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func words(values ...uint32) []byte {
	data := make([]byte, 4*len(values))
	for i, v := range values {
		binary.BigEndian.PutUint32(data[4*i:], v)
	}
	return data
}

const (
	b   = 0x10000004 // b +4
	j   = 0x08000400 // j 0x1000
	beq = 0x10850004 // beq $a0, $a1, +4
	nop = 0x00000000
)

func TestAnalyse(t *testing.T) {
	data := words(b, nop, beq, nop, j, nop, j, nop, b, nop)
	regions := []program.Region{
		{RomStart: 0, RomEnd: 16},
		{RomStart: 16, RomEnd: 40},
	}

	report := New(log.NewTestLogger(t)).Analyse(data, regions)
	assert.Len(t, report.Regions, 2)
	assert.Equal(t, 1, report.Regions[0].B)
	assert.Equal(t, 0, report.Regions[0].J)
	assert.Equal(t, 1, report.Regions[1].B)
	assert.Equal(t, 2, report.Regions[1].J)
	assert.Equal(t, 2, report.TotalB)
	assert.Equal(t, 2, report.TotalJ)
	assert.Equal(t, program.IDO, report.Guess)
}

func TestAnalyseLogsJumps(t *testing.T) {
	var buf bytes.Buffer
	cfg := log.DefaultConfig()
	cfg.Level = log.DebugLevel
	cfg.Output = &buf
	cfg.TimeFormat = "-"
	logger := log.NewWithConfig(cfg)

	data := words(j, nop, b, nop, j, nop)
	New(logger).Analyse(data, []program.Region{{RomStart: 0, RomEnd: len(data)}})

	output := buf.String()
	assert.Equal(t, 2, strings.Count(output, `"instruction":"j"`))
	assert.Contains(t, output, `"offset":"0x10"`)
}

func TestGuess(t *testing.T) {
	tests := []struct {
		name string
		b    int
		j    int
		want program.Compiler
	}{
		{"no branches", 0, 0, program.UnknownCompiler},
		{"mostly b", 120, 3, program.IDO},
		{"mostly j", 4, 80, program.GCC},
		{"equal", 5, 5, program.IDO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Guess(tt.b, tt.j))
		})
	}
}
