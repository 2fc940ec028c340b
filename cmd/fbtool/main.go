// Command fbtool builds a small FlatBuffers-style object from command-line
// input and writes the finished buffer to stdout (or a hex dump, with -x).
// It exists mainly as an executable smoke test for the flatbuffers package
// and a place to show Builder.Logger wired up end to end.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dinneo/fbbuild/flatbuffers"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: fbtool [options] name [tag1 [tag2 [...]]]

Builds a table with one string field (name) and one string-vector field
(tags, left out when no tags are given), finishes it, and writes the
result to stdout.

options:
`)
		flag.PrintDefaults()
		os.Exit(1)
	}
}

var (
	hexDump    = flag.Bool("x", false, "hex-dump the finished buffer instead of writing raw bytes")
	sizePrefix = flag.Bool("size-prefixed", false, "emit a 4-byte total-size prefix")
	fileIdent  = flag.String("fid", "", "4-byte file identifier, e.g. -fid=FBT1")
	verbose    = flag.Bool("v", false, "log builder growth and vtable dedup events to stderr")
)

const (
	nameSlot = 0
	tagsSlot = 1
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
	}
	name, tags := args[0], args[1:]

	if *fileIdent != "" && len(*fileIdent) != flatbuffers.FileIdentifierLength {
		log.Fatalf("fbtool: -fid must be exactly %d bytes, got %q", flatbuffers.FileIdentifierLength, *fileIdent)
	}

	b := flatbuffers.NewBuilder(0)
	if *verbose {
		b.Logger = func(e flatbuffers.Event) {
			switch e.Kind {
			case flatbuffers.EventGrow:
				log.Printf("grow: %d -> %d bytes", e.OldCap, e.NewCap)
			case flatbuffers.EventVtableNew:
				log.Printf("vtable: wrote new vtable at revpos %d", e.Revpos)
			case flatbuffers.EventVtableReused:
				log.Printf("vtable: reused vtable at revpos %d", e.Revpos)
			}
		}
	}

	nameOff := b.CreateString(name)
	tagsOff := flatbuffers.VectorOffset(0)
	if len(tags) > 0 {
		tagsOff = b.CreateVectorOfStrings(tags)
	}

	b.StartObject(2)
	b.PrependUOffsetTSlot(nameSlot, nameOff, 0)
	if tagsOff != 0 {
		b.PrependUOffsetTSlot(tagsSlot, tagsOff, 0)
	}
	root := b.EndObject()

	var buf []byte
	switch {
	case *sizePrefix && *fileIdent != "":
		b.FinishSizePrefixedWithFileIdentifier(root, []byte(*fileIdent))
		buf = b.FinishedBytes()
	case *sizePrefix:
		b.FinishSizePrefixed(root)
		buf = b.FinishedBytes()
	case *fileIdent != "":
		b.FinishWithFileIdentifier(root, []byte(*fileIdent))
		buf = b.FinishedBytes()
	default:
		b.Finish(root)
		buf = b.FinishedBytes()
	}

	if *hexDump {
		fmt.Println(hex.EncodeToString(buf))
		return
	}
	if _, err := os.Stdout.Write(buf); err != nil {
		log.Fatalf("fbtool: write: %v", err)
	}
}
