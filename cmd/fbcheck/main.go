// fbcheck inspects and structurally verifies FlatBuffers binary files.
//
// It runs the schema-less part of the verifier (root offset, root table
// vtable and inline region) and can dump the root table's layout, which is
// handy when debugging hand-written builders or buffers received over a
// wire.
package main

import (
	"fmt"
	"os"
	"unicode"

	"github.com/codegangsta/cli"

	flatbuffers "github.com/layzerar/flatbuffers"
)

func main() {
	app := cli.NewApp()
	app.Name = "fbcheck"
	app.Usage = "inspect and verify FlatBuffers binary files"
	app.Commands = []cli.Command{
		{
			Name:      "verify",
			Usage:     "structurally verify the root table of a buffer file",
			ArgsUsage: "<file>",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "max-depth",
					Value: flatbuffers.DefaultMaxDepth,
					Usage: "maximum table nesting depth",
				},
				cli.IntFlag{
					Name:  "max-tables",
					Value: flatbuffers.DefaultMaxTables,
					Usage: "maximum number of tables visited",
				},
				cli.StringFlag{
					Name:  "ident",
					Usage: "expected 4-byte file identifier",
				},
			},
			Action: runVerify,
		},
		{
			Name:      "info",
			Usage:     "print root offset, file identifier and root vtable layout",
			ArgsUsage: "<file>",
			Action:    runInfo,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readBuffer(c *cli.Context) ([]byte, error) {
	path := c.Args().First()
	if path == "" {
		return nil, fmt.Errorf("missing <file> argument")
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func runVerify(c *cli.Context) error {
	buf, err := readBuffer(c)
	if err != nil {
		return err
	}
	v := flatbuffers.NewVerifier(buf, &flatbuffers.VerifierOptions{
		MaxDepth:  c.Int("max-depth"),
		MaxTables: c.Int("max-tables"),
	})
	if ident := c.String("ident"); ident != "" {
		err = v.RootWithIdentifier(ident, nil)
	} else {
		err = v.VerifyRoot()
	}
	if err != nil {
		return fmt.Errorf("%s: %w", c.Args().First(), err)
	}
	fmt.Printf("%s: ok (%d bytes)\n", c.Args().First(), len(buf))
	return nil
}

func runInfo(c *cli.Context) error {
	buf, err := readBuffer(c)
	if err != nil {
		return err
	}
	if err := flatbuffers.NewVerifier(buf, nil).VerifyRoot(); err != nil {
		return fmt.Errorf("%s: %w", c.Args().First(), err)
	}

	root := flatbuffers.GetUOffsetT(buf)
	fmt.Printf("buffer:     %d bytes\n", len(buf))
	fmt.Printf("root table: %d\n", root)
	if id := fileIdentifier(buf); id != "" {
		fmt.Printf("identifier: %q\n", id)
	}

	var t flatbuffers.Table
	t.Bytes = buf
	t.Pos = root
	vtable := flatbuffers.UOffsetT(int64(root) - int64(t.GetSOffsetT(root)))
	vsize := t.GetVOffsetT(vtable)
	osize := t.GetVOffsetT(vtable + flatbuffers.SizeVOffsetT)
	fmt.Printf("vtable:     %d (size %d, inline size %d)\n", vtable, vsize, osize)

	slots := int(vsize)/flatbuffers.SizeVOffsetT - flatbuffers.VtableMetadataFields
	for i := 0; i < slots; i++ {
		slot := flatbuffers.VOffsetT((flatbuffers.VtableMetadataFields + i) * flatbuffers.SizeVOffsetT)
		if off := t.Offset(slot); off != 0 {
			fmt.Printf("  field %-3d at table+%d\n", i, off)
		} else {
			fmt.Printf("  field %-3d absent\n", i)
		}
	}
	return nil
}

func fileIdentifier(buf []byte) string {
	if len(buf) < flatbuffers.SizeUOffsetT+4 {
		return ""
	}
	id := buf[flatbuffers.SizeUOffsetT : flatbuffers.SizeUOffsetT+4]
	for _, b := range id {
		if b > unicode.MaxASCII || !unicode.IsPrint(rune(b)) {
			return ""
		}
	}
	return string(id)
}
