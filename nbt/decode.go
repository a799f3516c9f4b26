// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nbt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Cap for slice preallocation from wire-provided counts. The stream may lie
// about the count, so we never allocate more than this up front
const maxPreallocElems = 4096

// Decoder reads named tags from a byte stream. It assumes exclusive
// ownership of the stream: it is not safe for concurrent use, and Close
// releases any owned resources
type Decoder struct {
	reader  io.Reader
	closers []io.Closer
}

// NewDecoder returns a Decoder reading from the provided stream. Any
// decompression must already be applied by the caller. The Decoder takes
// ownership of the stream: if it implements io.Closer, Close will close it
func NewDecoder(r io.Reader) *Decoder {
	d := &Decoder{
		reader: r,
	}
	if c, ok := r.(io.Closer); ok {
		d.closers = append(d.closers, c)
	}
	return d
}

// ReadTag reads a single named tag from the stream. It returns io.EOF if the
// stream ends cleanly before any tag bytes; any other short read is reported
// as ErrMalformed. Decoding is all-or-nothing: on error no tag is returned
func (d *Decoder) ReadTag() (string, Tag, error) {
	return readTag(d.reader)
}

// Close releases the resources owned by the Decoder
func (d *Decoder) Close() error {
	var err error
	for _, c := range d.closers {
		if closeErr := c.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}

func readFull(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: unexpected end of stream", ErrMalformed)
		}
		return fmt.Errorf("read: %w", err)
	}
	return nil
}

// readString reads a 16-bit length prefix followed by that many bytes of
// UTF-8. Invalid UTF-8 sequences are replaced with U+FFFD rather than
// failing the read
func readString(r io.Reader) (string, error) {
	lenBuf := make([]byte, 2)
	if err := readFull(r, lenBuf); err != nil {
		return "", err
	}
	strLen, _ := Int16FromBytes(lenBuf)
	if strLen < 0 {
		return "", fmt.Errorf("%w: negative string length %d", ErrMalformed, strLen)
	}
	if strLen == 0 {
		return "", nil
	}
	raw := make([]byte, strLen)
	if err := readFull(r, raw); err != nil {
		return "", err
	}
	return string(bytes.ToValidUTF8(raw, []byte("\uFFFD"))), nil
}

func readInt32(r io.Reader) (int32, error) {
	buf := make([]byte, 4)
	if err := readFull(r, buf); err != nil {
		return 0, err
	}
	v, _ := Int32FromBytes(buf)
	return v, nil
}

func readArrayLen(r io.Reader, arrayType TagType) (int32, error) {
	length, err := readInt32(r)
	if err != nil {
		return 0, err
	}
	if length < 0 {
		return 0, fmt.Errorf(
			"%w: negative %s length %d",
			ErrMalformed,
			arrayType,
			length,
		)
	}
	return length, nil
}

func readValue(r io.Reader, vtype TagType) (Tag, error) {
	switch vtype {
	case TypeEnd:
		// The end marker is a structural terminator, never a value
		return nil, fmt.Errorf("%w: end tag as value", ErrMalformed)
	case TypeByte:
		buf := make([]byte, 1)
		if err := readFull(r, buf); err != nil {
			return nil, err
		}
		v, _ := Int8FromBytes(buf)
		return Byte(v), nil
	case TypeShort:
		buf := make([]byte, 2)
		if err := readFull(r, buf); err != nil {
			return nil, err
		}
		v, _ := Int16FromBytes(buf)
		return Short(v), nil
	case TypeInt:
		v, err := readInt32(r)
		if err != nil {
			return nil, err
		}
		return Int(v), nil
	case TypeLong:
		buf := make([]byte, 8)
		if err := readFull(r, buf); err != nil {
			return nil, err
		}
		v, _ := Int64FromBytes(buf)
		return Long(v), nil
	case TypeFloat:
		buf := make([]byte, 4)
		if err := readFull(r, buf); err != nil {
			return nil, err
		}
		v, _ := Float32FromBytes(buf)
		return Float(v), nil
	case TypeDouble:
		buf := make([]byte, 8)
		if err := readFull(r, buf); err != nil {
			return nil, err
		}
		v, _ := Float64FromBytes(buf)
		return Double(v), nil
	case TypeByteArray:
		length, err := readArrayLen(r, TypeByteArray)
		if err != nil {
			return nil, err
		}
		// Copy through a buffer rather than trusting the count for a single
		// large allocation
		buf := bytes.NewBuffer(nil)
		if _, err := io.CopyN(buf, r, int64(length)); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: unexpected end of stream", ErrMalformed)
			}
			return nil, fmt.Errorf("read: %w", err)
		}
		return ByteArray(buf.Bytes()), nil
	case TypeString:
		s, err := readString(r)
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case TypeList:
		header := make([]byte, 1)
		if err := readFull(r, header); err != nil {
			return nil, err
		}
		elemType, ok := TagTypeFromBinary(header[0])
		if !ok {
			return nil, fmt.Errorf(
				"%w: unknown list element type code 0x%02x",
				ErrMalformed,
				header[0],
			)
		}
		count, err := readArrayLen(r, TypeList)
		if err != nil {
			return nil, err
		}
		elems := make([]Tag, 0, min(int(count), maxPreallocElems))
		for i := int32(0); i < count; i++ {
			// readValue rejects TypeEnd, so a non-empty list declaring an
			// end element type is malformed. A zero-length list may carry
			// any element type, including TypeEnd
			elem, err := readValue(r, elemType)
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		return List{
			ElementType: elemType,
			Elements:    elems,
		}, nil
	case TypeCompound:
		ret := Compound{}
		for {
			name, val, err := readTag(r)
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil, fmt.Errorf("%w: unterminated compound", ErrMalformed)
				}
				return nil, err
			}
			if val.Type() == TypeEnd {
				break
			}
			// Duplicate names: last write wins
			ret[name] = val
		}
		return ret, nil
	case TypeIntArray:
		length, err := readArrayLen(r, TypeIntArray)
		if err != nil {
			return nil, err
		}
		ints := make(IntArray, 0, min(int(length), maxPreallocElems))
		buf := make([]byte, 4)
		for i := int32(0); i < length; i++ {
			if err := readFull(r, buf); err != nil {
				return nil, err
			}
			v, _ := Int32FromBytes(buf)
			ints = append(ints, v)
		}
		return ints, nil
	case TypeLongArray:
		length, err := readArrayLen(r, TypeLongArray)
		if err != nil {
			return nil, err
		}
		longs := make(LongArray, 0, min(int(length), maxPreallocElems))
		buf := make([]byte, 8)
		for i := int32(0); i < length; i++ {
			if err := readFull(r, buf); err != nil {
				return nil, err
			}
			v, _ := Int64FromBytes(buf)
			longs = append(longs, v)
		}
		return longs, nil
	default:
		return nil, fmt.Errorf("%w: unknown type code 0x%02x", ErrMalformed, uint8(vtype))
	}
}

func readTag(r io.Reader) (string, Tag, error) {
	header := make([]byte, 1)
	if _, err := io.ReadFull(r, header); err != nil {
		if err == io.EOF {
			// Clean end of stream before any tag bytes
			return "", nil, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return "", nil, fmt.Errorf("%w: unexpected end of stream", ErrMalformed)
		}
		return "", nil, fmt.Errorf("read: %w", err)
	}
	vtype, ok := TagTypeFromBinary(header[0])
	if !ok {
		return "", nil, fmt.Errorf(
			"%w: unknown type code 0x%02x",
			ErrMalformed,
			header[0],
		)
	}
	if vtype == TypeEnd {
		// No name or value follows the end marker
		return "", End{}, nil
	}
	name, err := readString(r)
	if err != nil {
		return "", nil, err
	}
	val, err := readValue(r, vtype)
	if err != nil {
		return "", nil, err
	}
	return name, val, nil
}
