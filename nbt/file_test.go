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

package nbt_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blinklabs-io/gonbt/nbt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fileTestTag = nbt.Compound{
	"a": nbt.Int(5),
	"b": nbt.List{
		ElementType: nbt.TypeShort,
		Elements:    []nbt.Tag{nbt.Short(1), nbt.Short(2), nbt.Short(3)},
	},
}

func TestFileRoundTrip(t *testing.T) {
	for _, compression := range []nbt.Compression{
		nbt.CompressionNone,
		nbt.CompressionGZip,
	} {
		path := filepath.Join(t.TempDir(), "test.nbt")
		encoder, err := nbt.NewEncoderFromFile(path, compression)
		require.NoError(t, err)
		require.NoError(t, encoder.WriteTag("root", fileTestTag))
		require.NoError(t, encoder.Close())

		decoder, err := nbt.NewDecoderFromFile(path, compression)
		require.NoError(t, err)
		name, tag, err := decoder.ReadTag()
		require.NoError(t, err)
		require.NoError(t, decoder.Close())
		assert.Equal(t, "root", name)
		assert.Equal(t, fileTestTag, tag)
	}
}

func TestFileGzipHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.nbt.gz")
	encoder, err := nbt.NewEncoderFromFile(path, nbt.CompressionGZip)
	require.NoError(t, err)
	require.NoError(t, encoder.WriteTag("root", fileTestTag))
	require.NoError(t, encoder.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(data), 2)
	// gzip magic bytes
	assert.Equal(t, []byte{0x1f, 0x8b}, data[:2])
}

func TestFileTruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.nbt")
	require.NoError(t, os.WriteFile(path, make([]byte, 1024), 0o644))

	encoder, err := nbt.NewEncoderFromFile(path, nbt.CompressionNone)
	require.NoError(t, err)
	require.NoError(t, encoder.WriteTag("", nbt.Byte(1)))
	require.NoError(t, encoder.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// Type code, empty name, value
	assert.Equal(t, []byte{0x01, 0x00, 0x00, 0x01}, data)
}

func TestDecoderFromMissingFile(t *testing.T) {
	_, err := nbt.NewDecoderFromFile(
		filepath.Join(t.TempDir(), "missing.nbt"),
		nbt.CompressionNone,
	)
	assert.Error(t, err)
}

func TestDecoderFromFileBadGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.nbt")
	require.NoError(t, os.WriteFile(path, []byte{0x01, 0x02, 0x03}, 0o644))
	_, err := nbt.NewDecoderFromFile(path, nbt.CompressionGZip)
	assert.Error(t, err)
}
