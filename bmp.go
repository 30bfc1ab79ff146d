// seehuhn.de/go/polyfill - a minimal polygon rasteriser
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package polyfill

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Sizes of the bitmap headers written by Encode.
const (
	fileHeaderSize = 14
	infoHeaderSize = 40

	// PixelDataOffset is the file offset of the first pixel byte.
	PixelDataOffset = fileHeaderSize + infoHeaderSize
)

// IOError reports a failure to write a bitmap file.
type IOError struct {
	Op   string // "create", "write", "flush" or "close"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// EncodedSize returns the length in bytes of the bitmap file written by
// Encode for b.
func EncodedSize(b *Buffer) int {
	return PixelDataOffset + 3*b.width*b.height
}

// Encode writes b as an uncompressed 24-bit Windows bitmap to w.
//
// Rows are stored bottom-to-top: the first row in the file is row
// Height()-1 of the buffer.  Each pixel is written as blue, green, red.
// Rows are not padded to a multiple of four bytes, so the output is a
// valid bitmap for standard readers only if 3*Width() is a multiple of 4.
//
// The 32-bit file size field overflows for images with more than about
// 1.4 gigapixels; this is not checked.
func Encode(w io.Writer, b *Buffer) error {
	var hdr [PixelDataOffset]byte

	// file header
	hdr[0], hdr[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(hdr[2:], uint32(EncodedSize(b)))
	// hdr[6:10] is reserved
	binary.LittleEndian.PutUint32(hdr[10:], PixelDataOffset)

	// info header
	info := hdr[fileHeaderSize:]
	binary.LittleEndian.PutUint32(info[0:], infoHeaderSize)
	binary.LittleEndian.PutUint32(info[4:], uint32(int32(b.width)))
	binary.LittleEndian.PutUint32(info[8:], uint32(int32(b.height)))
	binary.LittleEndian.PutUint16(info[12:], 1)  // color planes
	binary.LittleEndian.PutUint16(info[14:], 24) // bits per pixel
	// compression, image size, resolution and palette fields stay zero

	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("bitmap header: %w", err)
	}

	row := make([]byte, 3*b.width)
	for y := b.height - 1; y >= 0; y-- {
		src := b.Pix[y*b.width : (y+1)*b.width]
		for x, c := range src {
			r, g, bl := c.RGB()
			row[3*x] = bl
			row[3*x+1] = g
			row[3*x+2] = r
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("bitmap row %d: %w", y, err)
		}
	}
	return nil
}

// WriteFile writes b as a bitmap file to the named file, see [Encode].
// The file is created or truncated.  All errors are of type *IOError.
// If writing fails, a partial file may be left behind.
func WriteFile(fileName string, b *Buffer) (err error) {
	fd, err := os.Create(fileName)
	if err != nil {
		return &IOError{Op: "create", Path: fileName, Err: err}
	}
	defer func() {
		if cerr := fd.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: fileName, Err: cerr}
		}
	}()

	w := bufio.NewWriter(fd)
	if err := Encode(w, b); err != nil {
		return &IOError{Op: "write", Path: fileName, Err: err}
	}
	if err := w.Flush(); err != nil {
		return &IOError{Op: "flush", Path: fileName, Err: err}
	}
	return nil
}
