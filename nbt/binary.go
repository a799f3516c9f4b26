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
	"encoding/binary"
	"math"
)

// Fixed-width big-endian conversions for the numeric types used by the wire
// format. The FromBytes functions are partial: they require the input slice
// length to exactly match the encoded width.

func Int8ToBytes(v int8) []byte {
	return []byte{byte(v)}
}

func Int8FromBytes(data []byte) (int8, bool) {
	if len(data) != 1 {
		return 0, false
	}
	return int8(data[0]), true
}

func Int16ToBytes(v int16) []byte {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, uint16(v))
	return buf
}

func Int16FromBytes(data []byte) (int16, bool) {
	if len(data) != 2 {
		return 0, false
	}
	return int16(binary.BigEndian.Uint16(data)), true
}

func Int32ToBytes(v int32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(v))
	return buf
}

func Int32FromBytes(data []byte) (int32, bool) {
	if len(data) != 4 {
		return 0, false
	}
	return int32(binary.BigEndian.Uint32(data)), true
}

func Int64ToBytes(v int64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(v))
	return buf
}

func Int64FromBytes(data []byte) (int64, bool) {
	if len(data) != 8 {
		return 0, false
	}
	return int64(binary.BigEndian.Uint64(data)), true
}

// Floats are encoded as the big-endian bytes of their IEEE-754 bit pattern.
// This must round-trip bit-for-bit, including negative zero and NaN payloads

func Float32ToBytes(v float32) []byte {
	return Int32ToBytes(int32(math.Float32bits(v)))
}

func Float32FromBytes(data []byte) (float32, bool) {
	bits, ok := Int32FromBytes(data)
	if !ok {
		return 0, false
	}
	return math.Float32frombits(uint32(bits)), true
}

func Float64ToBytes(v float64) []byte {
	return Int64ToBytes(int64(math.Float64bits(v)))
}

func Float64FromBytes(data []byte) (float64, bool) {
	bits, ok := Int64FromBytes(data)
	if !ok {
		return 0, false
	}
	return math.Float64frombits(uint64(bits)), true
}
