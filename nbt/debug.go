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
	"fmt"
	"sort"
)

// DumpTagStructure generates an indented string representing a tag tree for
// debugging purposes
func DumpTagStructure(tag Tag, prefix string) string {
	var ret bytes.Buffer
	switch v := tag.(type) {
	case End:
		return fmt.Sprintf("%sEnd,\n", prefix)
	case Byte:
		return fmt.Sprintf("%sByte(%d),\n", prefix, int8(v))
	case Short:
		return fmt.Sprintf("%sShort(%d),\n", prefix, int16(v))
	case Int:
		return fmt.Sprintf("%sInt(%d),\n", prefix, int32(v))
	case Long:
		return fmt.Sprintf("%sLong(%d),\n", prefix, int64(v))
	case Float:
		return fmt.Sprintf("%sFloat(%g),\n", prefix, float32(v))
	case Double:
		return fmt.Sprintf("%sDouble(%g),\n", prefix, float64(v))
	case String:
		return fmt.Sprintf("%sString(%q),\n", prefix, string(v))
	case ByteArray:
		return fmt.Sprintf("%sByteArray <bytes> (length %d),\n", prefix, len(v))
	case IntArray:
		return fmt.Sprintf("%sIntArray %v,\n", prefix, []int32(v))
	case LongArray:
		return fmt.Sprintf("%sLongArray %v,\n", prefix, []int64(v))
	case List:
		ret.WriteString(
			fmt.Sprintf("%sList<%s> [\n", prefix, v.ElementType),
		)
		newPrefix := "  " + prefix
		for _, elem := range v.Elements {
			ret.WriteString(DumpTagStructure(elem, newPrefix))
		}
		ret.WriteString(prefix + "],\n")
	case Compound:
		ret.WriteString(prefix + "Compound {\n")
		newPrefix := "  " + prefix
		// Sort names for stable output
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			ret.WriteString(fmt.Sprintf("%s%q =>\n", newPrefix, name))
			ret.WriteString(DumpTagStructure(v[name], "  "+newPrefix))
		}
		ret.WriteString(prefix + "},\n")
	default:
		return fmt.Sprintf("%s%#v,\n", prefix, tag)
	}
	return ret.String()
}
