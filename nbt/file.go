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
	"os"

	"github.com/klauspost/compress/gzip"
)

// Compression selects the stream wrapping applied by the file constructors.
// The codec itself is compression-agnostic
type Compression int

const (
	CompressionNone Compression = iota
	CompressionGZip
)

// NewDecoderFromFile opens the named file and returns a Decoder reading from
// it, unwrapping the given compression. The returned Decoder owns the file:
// use Close to release it
func NewDecoderFromFile(path string, compression Compression) (*Decoder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	d := &Decoder{
		reader:  f,
		closers: []io.Closer{f},
	}
	switch compression {
	case CompressionNone:
		// Nothing to do
	case CompressionGZip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gzip: %w", err)
		}
		d.reader = gz
		// The gzip layer must close before the file
		d.closers = []io.Closer{gz, f}
	default:
		f.Close()
		return nil, fmt.Errorf("unknown compression type %d", compression)
	}
	return d, nil
}

// NewEncoderFromFile creates or truncates the named file and returns an
// Encoder writing to it, applying the given compression. The returned
// Encoder owns the file: use Close to flush any compression footer and
// release it
func NewEncoderFromFile(path string, compression Compression) (*Encoder, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	e := &Encoder{
		writer:  f,
		closers: []io.Closer{f},
	}
	switch compression {
	case CompressionNone:
		// Nothing to do
	case CompressionGZip:
		gz := gzip.NewWriter(f)
		e.writer = gz
		// The gzip layer must close before the file so the footer lands
		e.closers = []io.Closer{gz, f}
	default:
		f.Close()
		return nil, fmt.Errorf("unknown compression type %d", compression)
	}
	return e, nil
}
