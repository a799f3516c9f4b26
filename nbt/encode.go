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
	"fmt"
	"io"
	"math"
	"sort"
)

// Encoder writes named tags to a byte stream. It assumes exclusive ownership
// of the stream: it is not safe for concurrent use, and Close flushes and
// releases any owned resources
type Encoder struct {
	writer  io.Writer
	closers []io.Closer
}

// NewEncoder returns an Encoder writing to the provided sink. Any compression
// must be layered on by the caller. The Encoder takes ownership of the sink:
// if it implements io.Closer, Close will close it
func NewEncoder(w io.Writer) *Encoder {
	e := &Encoder{
		writer: w,
	}
	if c, ok := w.(io.Closer); ok {
		e.closers = append(e.closers, c)
	}
	return e
}

// WriteTag writes a single named tag to the stream and flushes the sink if
// it supports flushing. Writing a bare end tag is ErrInvalid. On error no
// partial tag is considered valid output
func (e *Encoder) WriteTag(name string, tag Tag) error {
	if err := writeTag(e.writer, name, tag); err != nil {
		return err
	}
	return flushWriter(e.writer)
}

// Close flushes and releases the resources owned by the Encoder. Closing the
// sink layers in order guarantees any compression footer is written before
// the underlying file closes
func (e *Encoder) Close() error {
	var err error
	if flushErr := flushWriter(e.writer); flushErr != nil {
		err = flushErr
	}
	for _, c := range e.closers {
		if closeErr := c.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}

type flusher interface {
	Flush() error
}

func flushWriter(w io.Writer) error {
	if f, ok := w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
	}
	return nil
}

func writeBytes(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	if len(s) > math.MaxInt16 {
		return fmt.Errorf("%w: string length %d overflows length prefix", ErrInvalid, len(s))
	}
	if err := writeBytes(w, Int16ToBytes(int16(len(s)))); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func writeValue(w io.Writer, tag Tag) error {
	switch v := tag.(type) {
	case End:
		// A bare end marker cannot be serialized as a value
		return fmt.Errorf("%w: end tag as value", ErrInvalid)
	case Byte:
		return writeBytes(w, Int8ToBytes(int8(v)))
	case Short:
		return writeBytes(w, Int16ToBytes(int16(v)))
	case Int:
		return writeBytes(w, Int32ToBytes(int32(v)))
	case Long:
		return writeBytes(w, Int64ToBytes(int64(v)))
	case Float:
		return writeBytes(w, Float32ToBytes(float32(v)))
	case Double:
		return writeBytes(w, Float64ToBytes(float64(v)))
	case ByteArray:
		if err := writeBytes(w, Int32ToBytes(int32(len(v)))); err != nil {
			return err
		}
		return writeBytes(w, v)
	case String:
		return writeString(w, string(v))
	case List:
		// The declared element type is written even for an empty list.
		// Homogeneity is NewList's contract and is not re-checked here
		if err := writeBytes(w, []byte{v.ElementType.Binary()}); err != nil {
			return err
		}
		if err := writeBytes(w, Int32ToBytes(int32(len(v.Elements)))); err != nil {
			return err
		}
		for _, elem := range v.Elements {
			if err := writeValue(w, elem); err != nil {
				return err
			}
		}
		return nil
	case Compound:
		// Sorted key order gives byte-stable output; map iteration order
		// carries no meaning in the format
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := writeTag(w, name, v[name]); err != nil {
				return err
			}
		}
		return writeBytes(w, []byte{TypeEnd.Binary()})
	case IntArray:
		if err := writeBytes(w, Int32ToBytes(int32(len(v)))); err != nil {
			return err
		}
		for _, i := range v {
			if err := writeBytes(w, Int32ToBytes(i)); err != nil {
				return err
			}
		}
		return nil
	case LongArray:
		if err := writeBytes(w, Int32ToBytes(int32(len(v)))); err != nil {
			return err
		}
		for _, i := range v {
			if err := writeBytes(w, Int64ToBytes(i)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: unsupported tag type %T", ErrInvalid, tag)
	}
}

func writeTag(w io.Writer, name string, tag Tag) error {
	if tag == nil || tag.Type() == TypeEnd {
		return fmt.Errorf("%w: cannot write end tag as a named tag", ErrInvalid)
	}
	if err := writeBytes(w, []byte{tag.Type().Binary()}); err != nil {
		return err
	}
	if err := writeString(w, name); err != nil {
		return err
	}
	return writeValue(w, tag)
}
