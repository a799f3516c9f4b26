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

import "fmt"

// TagFromValue converts a native Go value into its tag equivalent. Only
// fixed-width numeric types convert, so callers state the intended wire
// width explicitly. A []any becomes a List typed after its first element;
// an empty []any becomes an empty List of bytes
func TagFromValue(value any) (Tag, error) {
	switch v := value.(type) {
	case Tag:
		return v, nil
	case int8:
		return Byte(v), nil
	case int16:
		return Short(v), nil
	case int32:
		return Int(v), nil
	case int64:
		return Long(v), nil
	case float32:
		return Float(v), nil
	case float64:
		return Double(v), nil
	case string:
		return String(v), nil
	case []byte:
		return ByteArray(v), nil
	case []int32:
		return IntArray(v), nil
	case []int64:
		return LongArray(v), nil
	case []any:
		if len(v) == 0 {
			return List{ElementType: TypeByte}, nil
		}
		elems := make([]Tag, 0, len(v))
		for _, item := range v {
			elem, err := TagFromValue(item)
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		return NewList(elems[0].Type(), elems...)
	case map[string]any:
		ret := make(Compound, len(v))
		for name, item := range v {
			val, err := TagFromValue(item)
			if err != nil {
				return nil, err
			}
			ret[name] = val
		}
		return ret, nil
	default:
		return nil, fmt.Errorf("%w: unsupported value type %T", ErrInvalid, value)
	}
}

// NativeValue converts a tag tree into plain Go containers and scalars. It
// is the inverse of TagFromValue for every tree TagFromValue can produce
func NativeValue(tag Tag) any {
	switch v := tag.(type) {
	case Byte:
		return int8(v)
	case Short:
		return int16(v)
	case Int:
		return int32(v)
	case Long:
		return int64(v)
	case Float:
		return float32(v)
	case Double:
		return float64(v)
	case String:
		return string(v)
	case ByteArray:
		return []byte(v)
	case IntArray:
		return []int32(v)
	case LongArray:
		return []int64(v)
	case List:
		ret := make([]any, 0, len(v.Elements))
		for _, elem := range v.Elements {
			ret = append(ret, NativeValue(elem))
		}
		return ret
	case Compound:
		ret := make(map[string]any, len(v))
		for name, val := range v {
			ret[name] = NativeValue(val)
		}
		return ret
	default:
		return nil
	}
}

// Typed extraction helpers. Smaller integer tags are promoted to wider
// native types, but never the reverse

func Int8Value(tag Tag) (int8, bool) {
	if v, ok := tag.(Byte); ok {
		return int8(v), true
	}
	return 0, false
}

func Int16Value(tag Tag) (int16, bool) {
	switch v := tag.(type) {
	case Byte:
		return int16(v), true
	case Short:
		return int16(v), true
	}
	return 0, false
}

func Int32Value(tag Tag) (int32, bool) {
	switch v := tag.(type) {
	case Byte:
		return int32(v), true
	case Short:
		return int32(v), true
	case Int:
		return int32(v), true
	}
	return 0, false
}

func Int64Value(tag Tag) (int64, bool) {
	switch v := tag.(type) {
	case Byte:
		return int64(v), true
	case Short:
		return int64(v), true
	case Int:
		return int64(v), true
	case Long:
		return int64(v), true
	}
	return 0, false
}

func Float32Value(tag Tag) (float32, bool) {
	if v, ok := tag.(Float); ok {
		return float32(v), true
	}
	return 0, false
}

func Float64Value(tag Tag) (float64, bool) {
	switch v := tag.(type) {
	case Float:
		return float64(v), true
	case Double:
		return float64(v), true
	}
	return 0, false
}

func StringValue(tag Tag) (string, bool) {
	if v, ok := tag.(String); ok {
		return string(v), true
	}
	return "", false
}
