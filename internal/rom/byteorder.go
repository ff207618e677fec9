package rom

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ByteOrder describes how a cartridge image was dumped.
type ByteOrder int

// Supported byte orders.
const (
	UnknownOrder ByteOrder = iota
	BigEndian              // native order, .z64
	LittleEndian           // every word reversed, .n64
	ByteSwapped            // every halfword swapped, .v64
)

var byteOrderNames = map[ByteOrder]string{
	UnknownOrder: "unknown",
	BigEndian:    "z64",
	LittleEndian: "n64",
	ByteSwapped:  "v64",
}

func (b ByteOrder) String() string {
	if name, ok := byteOrderNames[b]; ok {
		return name
	}
	return fmt.Sprintf("ByteOrder(%d)", b)
}

// ParseByteOrder parses a byte order name as used by the command line.
// Accepted names are the file extensions z64, n64 and v64 as well as the
// descriptive names big, little and swapped.
func ParseByteOrder(name string) (ByteOrder, error) {
	switch strings.ToLower(name) {
	case "z64", "big", "bigendian":
		return BigEndian, nil
	case "n64", "little", "littleendian":
		return LittleEndian, nil
	case "v64", "swapped", "byteswapped":
		return ByteSwapped, nil
	default:
		return UnknownOrder, fmt.Errorf("%w: '%s'", ErrUnknownByteOrder, name)
	}
}

// ByteOrderFromExtension returns the byte order conventionally associated
// with the file extension of the given name.
func ByteOrderFromExtension(fileName string) (ByteOrder, error) {
	ext := strings.TrimPrefix(filepath.Ext(fileName), ".")
	if ext == "" {
		return UnknownOrder, fmt.Errorf("%w: file '%s' has no extension", ErrUnknownByteOrder, fileName)
	}
	return ParseByteOrder(ext)
}

// header signatures of the PI configuration word in the supported orders.
var signatures = map[[4]byte]ByteOrder{
	{0x80, 0x37, 0x12, 0x40}: BigEndian,
	{0x40, 0x12, 0x37, 0x80}: LittleEndian,
	{0x37, 0x80, 0x40, 0x12}: ByteSwapped,
}

// DetectByteOrder detects the byte order from the first word of the image.
func DetectByteOrder(data []byte) (ByteOrder, error) {
	if len(data) < 4 {
		return UnknownOrder, fmt.Errorf("%w: missing header", ErrUnknownByteOrder)
	}
	var sig [4]byte
	copy(sig[:], data)
	order, ok := signatures[sig]
	if !ok {
		return UnknownOrder, fmt.Errorf("%w: header % X", ErrUnknownByteOrder, sig)
	}
	return order, nil
}

// Normalize converts the image in place to big endian order.
func Normalize(data []byte, order ByteOrder) error {
	switch order {
	case BigEndian:
		return nil

	case LittleEndian:
		if len(data)%4 != 0 {
			return fmt.Errorf("%w: %d bytes can not be word swapped", ErrUnaligned, len(data))
		}
		for i := 0; i < len(data); i += 4 {
			data[i], data[i+1], data[i+2], data[i+3] = data[i+3], data[i+2], data[i+1], data[i]
		}
		return nil

	case ByteSwapped:
		if len(data)%2 != 0 {
			return fmt.Errorf("%w: %d bytes can not be halfword swapped", ErrUnaligned, len(data))
		}
		for i := 0; i < len(data); i += 2 {
			data[i], data[i+1] = data[i+1], data[i]
		}
		return nil

	default:
		return fmt.Errorf("%w: %s", ErrUnknownByteOrder, order)
	}
}
