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

//go:build go1.18

package nbt

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math"
	"testing"
)

func FuzzReadTag(f *testing.F) {
	// Seed corpus with valid NBT samples
	seeds := []string{
		"00",                                   // end marker
		"0100016105",                           // byte "a"
		"0200001234",                           // short
		"03000161" + "00000005",                // int "a"
		"040000ffffffffffffffff",               // long -1
		"050000" + "80000000",                  // float -0.0
		"060000" + "4004000000000000",          // double 2.5
		"070000" + "00000002" + "0102",         // byte array
		"08000173" + "0003" + "666f6f",         // string "foo"
		"090000" + "00" + "00000000",           // empty list
		"090000" + "02" + "00000002" + "00010002", // list of shorts
		"0a0000" + "01000161" + "05" + "00",    // compound
		"0a0000" + "00",                        // empty compound
		"0b0000" + "00000001" + "00000001",     // int array
		"0c0000" + "00000001" + "0000000000000005", // long array
	}
	for _, seed := range seeds {
		data, err := hex.DecodeString(seed)
		if err != nil {
			f.Fatalf("failed to decode NBT hex: %s", err)
		}
		f.Add(data)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		_, _, _ = readTag(bytes.NewReader(data))
		// Should not panic - that's the test
	})
}

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte{0x0a, 0x00, 0x00, 0x01, 0x00, 0x01, 0x61, 0x05, 0x00})
	f.Fuzz(func(t *testing.T, data []byte) {
		name, tag, err := readTag(bytes.NewReader(data))
		if err != nil {
			return
		}
		if tag.Type() == TypeEnd {
			return
		}
		// Lossy UTF-8 replacement can grow a name past what the length
		// prefix can express on re-encode
		if len(name) > math.MaxInt16 {
			return
		}
		// Anything the decoder accepts must re-encode and decode back to an
		// identical tree
		buf := bytes.NewBuffer(nil)
		if err := writeTag(buf, name, tag); err != nil {
			// Replacement can also grow string values past their prefix
			if errors.Is(err, ErrInvalid) {
				return
			}
			t.Fatalf("failed to re-encode decoded tag: %s", err)
		}
		name2, tag2, err := readTag(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatalf("failed to decode re-encoded tag: %s", err)
		}
		if name2 != name {
			t.Fatalf("name did not round-trip, got: %q, wanted: %q", name2, name)
		}
		if tag2.Type() != tag.Type() {
			t.Fatalf(
				"tag type did not round-trip, got: %s, wanted: %s",
				tag2.Type(),
				tag.Type(),
			)
		}
	})
}
