// Package loader reads flat RISC-V program images into instruction words.
//
// An image is a raw sequence of 32-bit instruction words stored
// little-endian, the form assemblers emit with objcopy -O binary. The loader
// carries no header or relocation handling: it splits bytes into words for
// the decoder and nothing more.
package loader

import (
	"encoding/binary"
	"fmt"
	"os"
)

// Program represents a loaded program image.
type Program struct {
	// Words contains the instruction words in image order.
	Words []uint32
}

// Parse splits a raw image into little-endian instruction words. The image
// must hold a whole number of words; an empty image is a valid program with
// zero words.
func Parse(data []byte) (*Program, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("image size %d is not a multiple of 4 bytes", len(data))
	}

	prog := &Program{Words: make([]uint32, 0, len(data)/4)}
	for i := 0; i < len(data); i += 4 {
		prog.Words = append(prog.Words, binary.LittleEndian.Uint32(data[i:]))
	}

	return prog, nil
}

// Load reads the image file at path and parses it into a Program.
func Load(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}

	return Parse(data)
}
