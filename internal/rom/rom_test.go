package rom

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		size int
		err  error
	}{
		{"empty", 0, ErrTooSmall},
		{"boot code only", IPL3End, ErrTooSmall},
		{"unaligned", MinSize + 2, ErrUnaligned},
		{"minimal", MinSize, nil},
		{"one megabyte", 0x100000, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(make([]byte, tt.size))
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.err))
		})
	}
}

func TestReadWord(t *testing.T) {
	data := []byte{0x03, 0xE0, 0x00, 0x08, 0x27, 0xBD}
	assert.Equal(t, uint32(0x03E00008), ReadWord(data, 0))
	assert.Equal(t, uint32(0), ReadWord(data, 4))
	assert.Equal(t, uint32(0), ReadWord(data, -4))
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 0x1000, RoundDown(0x100C, 0x10))
	assert.Equal(t, 0x1010, RoundUp(0x100C, 0x10))
	assert.Equal(t, 0x1010, RoundUp(0x1010, 0x10))
	assert.Equal(t, 0x1010, RoundDown(0x1010, 0x10))
}

func TestDetectByteOrder(t *testing.T) {
	tests := []struct {
		name   string
		header []byte
		want   ByteOrder
		err    bool
	}{
		{"big endian", []byte{0x80, 0x37, 0x12, 0x40}, BigEndian, false},
		{"little endian", []byte{0x40, 0x12, 0x37, 0x80}, LittleEndian, false},
		{"byte swapped", []byte{0x37, 0x80, 0x40, 0x12}, ByteSwapped, false},
		{"unknown", []byte{0x00, 0x00, 0x00, 0x00}, UnknownOrder, true},
		{"short", []byte{0x80, 0x37}, UnknownOrder, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := DetectByteOrder(tt.header)
			if tt.err {
				assert.True(t, errors.Is(err, ErrUnknownByteOrder))
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, order)
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		order ByteOrder
		input []byte
	}{
		{"big endian", BigEndian, []byte{0x80, 0x37, 0x12, 0x40, 0x03, 0xE0, 0x00, 0x08}},
		{"little endian", LittleEndian, []byte{0x40, 0x12, 0x37, 0x80, 0x08, 0x00, 0xE0, 0x03}},
		{"byte swapped", ByteSwapped, []byte{0x37, 0x80, 0x40, 0x12, 0xE0, 0x03, 0x08, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := append([]byte(nil), tt.input...)
			assert.NoError(t, Normalize(data, tt.order))
			assert.Equal(t, uint32(0x80371240), ReadWord(data, 0))
			assert.Equal(t, uint32(0x03E00008), ReadWord(data, 4))

			order, err := DetectByteOrder(data)
			assert.NoError(t, err)
			assert.Equal(t, BigEndian, order)
		})
	}
}

func TestNormalizeErrors(t *testing.T) {
	err := Normalize(make([]byte, 6), LittleEndian)
	assert.True(t, errors.Is(err, ErrUnaligned))

	err = Normalize(make([]byte, 3), ByteSwapped)
	assert.True(t, errors.Is(err, ErrUnaligned))

	err = Normalize(make([]byte, 4), UnknownOrder)
	assert.True(t, errors.Is(err, ErrUnknownByteOrder))
}

func TestParseByteOrder(t *testing.T) {
	order, err := ParseByteOrder("V64")
	assert.NoError(t, err)
	assert.Equal(t, ByteSwapped, order)

	order, err = ByteOrderFromExtension("game.n64")
	assert.NoError(t, err)
	assert.Equal(t, LittleEndian, order)

	_, err = ByteOrderFromExtension("game.bin")
	assert.ErrorContains(t, err, "unknown rom byte order")

	_, err = ByteOrderFromExtension("game")
	assert.ErrorContains(t, err, "no extension")

	assert.Equal(t, "z64", BigEndian.String())
}

func TestParseHeader(t *testing.T) {
	data := make([]byte, HeaderSize)
	copy(data, []byte{0x80, 0x37, 0x12, 0x40, 0x00, 0x00, 0x00, 0x0F, 0x80, 0x00, 0x04, 0x00})
	copy(data[0x20:], "SUPER MARIO 64      ")
	data[0x3B] = 'N'
	copy(data[0x3C:], "SM")
	data[0x3E] = 'E'
	data[0x3F] = 1

	h, err := ParseHeader(data)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x80371240), h.PIConfig)
	assert.Equal(t, uint32(0x80000400), h.BootAddress)
	assert.Equal(t, "SUPER MARIO 64", h.Title)
	assert.Equal(t, "NSME", h.GameCode())
	assert.Equal(t, byte(1), h.Version)

	_, err = ParseHeader(data[:0x20])
	assert.True(t, errors.Is(err, ErrTooSmall))
}
