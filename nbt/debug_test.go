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
	"testing"

	"github.com/blinklabs-io/gonbt/nbt"
)

func TestDumpTagStructure(t *testing.T) {
	tag := nbt.Compound{
		"b": nbt.List{
			ElementType: nbt.TypeShort,
			Elements:    []nbt.Tag{nbt.Short(1), nbt.Short(2)},
		},
		"a": nbt.Int(5),
	}
	expected := `Compound {
  "a" =>
    Int(5),
  "b" =>
    List<Short> [
      Short(1),
      Short(2),
    ],
},
`
	ret := nbt.DumpTagStructure(tag, "")
	if ret != expected {
		t.Fatalf(
			"did not get expected structure dump\n  got:\n%s\n  wanted:\n%s",
			ret,
			expected,
		)
	}
}
