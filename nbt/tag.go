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

// Tag is one node of the value tree. The variant set is closed: every Tag is
// one of the concrete types defined in this file
type Tag interface {
	// Type returns the tag's runtime type
	Type() TagType
	// Copy returns a deep copy of the tag. Containers exclusively own their
	// children, so a copied tree shares no nodes with the original
	Copy() Tag
}

// End is the structural terminator. It is not a value: it cannot be written
// as a named tag and read_value on it is malformed
type End struct{}

// Byte is an 8-bit signed integer
type Byte int8

// Short is a 16-bit signed integer
type Short int16

// Int is a 32-bit signed integer
type Int int32

// Long is a 64-bit signed integer
type Long int64

// Float is an IEEE-754 single-precision floating point value
type Float float32

// Double is an IEEE-754 double-precision floating point value
type Double float64

// String is a UTF-8 string
type String string

// ByteArray is a sequence of raw bytes
type ByteArray []byte

// IntArray is a sequence of 32-bit signed integers
type IntArray []int32

// LongArray is a sequence of 64-bit signed integers
type LongArray []int64

// List is an ordered sequence of tags with a declared element type. Every
// element's runtime type must equal ElementType; NewList enforces this at
// construction and the encoder assumes it without re-checking. An empty list
// still carries an element type, which may be TypeEnd
type List struct {
	ElementType TagType
	Elements    []Tag
}

// Compound is a mapping from string keys to tags. Iteration order carries no
// meaning; the encoder writes entries in sorted key order so that output is
// byte-stable
type Compound map[string]Tag

// NewList builds a List after checking every element against elemType
func NewList(elemType TagType, elems ...Tag) (List, error) {
	for _, elem := range elems {
		if elem.Type() != elemType {
			return List{}, fmt.Errorf(
				"%w: list element type %s does not match declared element type %s",
				ErrInvalid,
				elem.Type(),
				elemType,
			)
		}
	}
	return List{
		ElementType: elemType,
		Elements:    elems,
	}, nil
}

func (End) Type() TagType       { return TypeEnd }
func (Byte) Type() TagType      { return TypeByte }
func (Short) Type() TagType     { return TypeShort }
func (Int) Type() TagType       { return TypeInt }
func (Long) Type() TagType      { return TypeLong }
func (Float) Type() TagType     { return TypeFloat }
func (Double) Type() TagType    { return TypeDouble }
func (String) Type() TagType    { return TypeString }
func (ByteArray) Type() TagType { return TypeByteArray }
func (IntArray) Type() TagType  { return TypeIntArray }
func (LongArray) Type() TagType { return TypeLongArray }
func (List) Type() TagType      { return TypeList }
func (Compound) Type() TagType  { return TypeCompound }

func (t End) Copy() Tag    { return t }
func (t Byte) Copy() Tag   { return t }
func (t Short) Copy() Tag  { return t }
func (t Int) Copy() Tag    { return t }
func (t Long) Copy() Tag   { return t }
func (t Float) Copy() Tag  { return t }
func (t Double) Copy() Tag { return t }
func (t String) Copy() Tag { return t }

func (t ByteArray) Copy() Tag {
	ret := make(ByteArray, len(t))
	copy(ret, t)
	return ret
}

func (t IntArray) Copy() Tag {
	ret := make(IntArray, len(t))
	copy(ret, t)
	return ret
}

func (t LongArray) Copy() Tag {
	ret := make(LongArray, len(t))
	copy(ret, t)
	return ret
}

func (t List) Copy() Tag {
	ret := List{
		ElementType: t.ElementType,
		Elements:    make([]Tag, len(t.Elements)),
	}
	for i, elem := range t.Elements {
		ret.Elements[i] = elem.Copy()
	}
	return ret
}

func (t Compound) Copy() Tag {
	ret := make(Compound, len(t))
	for name, val := range t {
		ret[name] = val.Copy()
	}
	return ret
}
