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

// Package nbt implements the Named Binary Tag (NBT) format: a tagged,
// self-describing binary tree encoding for hierarchical structured data.
//
// A tag tree is built from the closed set of Tag variants: six fixed-width
// numeric scalars, String, ByteArray, IntArray, LongArray, the homogeneous
// ordered List, and the string-keyed Compound. All multi-byte values are
// big-endian on the wire; floats are encoded as their exact IEEE-754 bit
// patterns and round-trip bit-for-bit.
//
// Decoder and Encoder operate on whole named tags: a decode call
// materializes a complete tree in memory and an encode call consumes one.
// Both are synchronous and fail fast, and each exclusively owns its
// underlying stream. Streams may be supplied directly or opened from files
// with optional gzip compression:
//
//	decoder, err := nbt.NewDecoderFromFile("level.dat", nbt.CompressionGZip)
//	if err != nil {
//	    return err
//	}
//	defer decoder.Close()
//	name, tag, err := decoder.ReadTag()
//
// TagFromValue and the typed extraction helpers bridge between tag trees and
// plain Go values, promoting smaller integer tags to wider native types.
package nbt
