package rom

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// Header contains the fields of the cartridge header.
type Header struct {
	PIConfig        uint32 // PI BSD DOM1 configuration flags
	ClockRate       uint32
	BootAddress     uint32
	LibultraVersion uint32
	CheckCode       uint64
	Title           string
	CategoryCode    byte
	UniqueCode      string
	Destination     byte
	Version         byte
}

// ParseHeader parses the header of a normalized image.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header needs %d bytes, got %d", ErrTooSmall, HeaderSize, len(data))
	}

	title := bytes.TrimRight(data[0x20:0x34], "\x00")
	h := Header{
		PIConfig:        binary.BigEndian.Uint32(data[0x00:]),
		ClockRate:       binary.BigEndian.Uint32(data[0x04:]),
		BootAddress:     binary.BigEndian.Uint32(data[0x08:]),
		LibultraVersion: binary.BigEndian.Uint32(data[0x0C:]),
		CheckCode:       binary.BigEndian.Uint64(data[0x10:]),
		Title:           strings.TrimSpace(string(title)),
		CategoryCode:    data[0x3B],
		UniqueCode:      string(data[0x3C:0x3E]),
		Destination:     data[0x3E],
		Version:         data[0x3F],
	}
	return h, nil
}

// GameCode returns the 4 character game code built from the category,
// unique and destination codes.
func (h Header) GameCode() string {
	code := []byte{h.CategoryCode, 0, 0, h.Destination}
	copy(code[1:3], h.UniqueCode)
	for i, c := range code {
		if c < 0x20 || c > 0x7E {
			code[i] = '?'
		}
	}
	return string(code)
}
