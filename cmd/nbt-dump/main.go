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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/gonbt/nbt"
	"github.com/fxamacker/cbor/v2"
)

type globalFlags struct {
	flagset *flag.FlagSet
	file    string
	gzip    bool
	format  string
	output  string
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.file,
		"file",
		"",
		"path to NBT file to read",
	)
	f.flagset.BoolVar(
		&f.gzip,
		"gzip",
		false,
		"treat the file as gzip-compressed",
	)
	f.flagset.StringVar(
		&f.format,
		"format",
		"tree",
		"output format: tree or cbor",
	)
	f.flagset.StringVar(
		&f.output,
		"output",
		"",
		"path to write output to (defaults to stdout)",
	)
	return f
}

func main() {
	f := newGlobalFlags()
	err := f.flagset.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	if f.file == "" {
		fmt.Printf("you must specify a file to read with -file\n")
		os.Exit(1)
	}
	compression := nbt.CompressionNone
	if f.gzip {
		compression = nbt.CompressionGZip
	}
	decoder, err := nbt.NewDecoderFromFile(f.file, compression)
	if err != nil {
		fmt.Printf("failed to open %s: %s\n", f.file, err)
		os.Exit(1)
	}
	defer decoder.Close()
	name, tag, err := decoder.ReadTag()
	if err != nil {
		fmt.Printf("failed to read tag: %s\n", err)
		os.Exit(1)
	}
	out := os.Stdout
	if f.output != "" {
		out, err = os.Create(f.output)
		if err != nil {
			fmt.Printf("failed to create %s: %s\n", f.output, err)
			os.Exit(1)
		}
		defer out.Close()
	}
	switch f.format {
	case "tree":
		fmt.Fprintf(out, "%q =>\n%s", name, nbt.DumpTagStructure(tag, "  "))
	case "cbor":
		opts := cbor.EncOptions{
			// Make sure that maps have ordered keys
			Sort: cbor.SortCoreDeterministic,
		}
		em, err := opts.EncMode()
		if err != nil {
			fmt.Printf("failed to create CBOR encoder: %s\n", err)
			os.Exit(1)
		}
		cborData, err := em.Marshal(nbt.NativeValue(tag))
		if err != nil {
			fmt.Printf("failed to encode CBOR: %s\n", err)
			os.Exit(1)
		}
		if _, err := out.Write(cborData); err != nil {
			fmt.Printf("failed to write output: %s\n", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("unknown output format: %s\n", f.format)
		os.Exit(1)
	}
}
