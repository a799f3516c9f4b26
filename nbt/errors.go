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

import "errors"

var (
	// ErrMalformed is returned when the byte stream does not conform to the
	// NBT grammar
	ErrMalformed = errors.New("malformed NBT data")

	// ErrInvalid is returned when an in-memory tag tree cannot be legally
	// serialized
	ErrInvalid = errors.New("invalid NBT structure")
)
