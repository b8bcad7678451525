package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/geophysicslabs/segy2segy/internal/project"
	"github.com/geophysicslabs/segy2segy/pkg/segy"
)

func inspectCmd() *cli.Command {
	var (
		traceLimit int64
		showText   bool
	)

	return &cli.Command{
		Name:      "inspect",
		Usage:     "Print SEG-Y file headers and trace coordinates",
		ArgsUsage: "<segy-file>",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:        "traces",
				Aliases:     []string{"n"},
				Usage:       "number of trace headers to list (0 = all)",
				Value:       10,
				Destination: &traceLimit,
			},
			&cli.BoolFlag{
				Name:        "text",
				Usage:       "print the 3200-byte textual header",
				Destination: &showText,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = ctx
			if c.Args().Len() != 1 {
				return cli.Exit("error: exactly one SEG-Y file is required", 2)
			}
			path := c.Args().First()

			stat, err := os.Stat(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			r, err := segy.Open(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			defer func() { _ = r.Close() }()

			fmt.Printf("SEG-Y Inspect: %s (%d bytes)\n", filepath.Base(path), stat.Size())

			section("Binary File Header")
			row("byte_order", orderName(r))
			row("revision", fmt.Sprintf("%d.%d", r.Binary.Revision>>8, r.Binary.Revision&0xff))
			row("sample_format", r.Binary.Format.String())
			rowInt("samples_per_trace", int(r.Binary.SamplesPerTrace))
			rowInt("sample_interval_us", int(r.Binary.SampleInterval))
			row("fixed_length_traces", fmt.Sprintf("%v", r.Binary.FixedLength))
			rowInt("extended_text_headers", int(r.Binary.ExtendedCount))

			if showText {
				section("Textual Header")
				fmt.Println(decodeTextHeader(r.Text))
			}

			section("Trace Headers")
			fmt.Printf("%-6s %-7s %-24s %-24s %-24s\n", "trace", "scalar", "source", "group", "cdp")
			shown := 0
			total := 0
			for {
				tr, err := r.ReadTrace()
				if err == io.EOF {
					break
				}
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				total++
				if traceLimit > 0 && int64(shown) >= traceLimit {
					continue
				}
				scalar := tr.CoordScalar()
				fmt.Printf("%-6d %-7d %-24s %-24s %-24s\n",
					tr.Index, scalar,
					coordCell(tr, segy.FieldSource, scalar),
					coordCell(tr, segy.FieldGroup, scalar),
					coordCell(tr, segy.FieldCDP, scalar))
				shown++
			}
			if shown < total {
				fmt.Printf("... (%d shown of %d)\n", shown, total)
			}
			row("traces", fmt.Sprintf("%d", total))
			return nil
		},
	}
}

func coordCell(tr *segy.Trace, f segy.CoordField, scalar int16) string {
	x, y := tr.Coord(f)
	return fmt.Sprintf("(%.2f, %.2f)",
		project.DecodeCoord(x, scalar),
		project.DecodeCoord(y, scalar))
}

func orderName(r *segy.Reader) string {
	if r.ByteOrder().String() == "LittleEndian" {
		return "little-endian"
	}
	return "big-endian"
}

// decodeTextHeader renders the textual header as 40 lines of 80 columns,
// converting from EBCDIC when the first card does not look like ASCII.
func decodeTextHeader(raw []byte) string {
	text := raw
	if len(raw) > 0 && raw[0] != 'C' {
		text = ebcdicToASCII(raw)
	}
	var b strings.Builder
	for off := 0; off+80 <= len(text); off += 80 {
		b.Write(text[off : off+80])
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// ebcdicToASCII maps the printable EBCDIC range used by SEG-Y textual
// headers; everything unmapped becomes a space.
func ebcdicToASCII(in []byte) []byte {
	out := make([]byte, len(in))
	for i, c := range in {
		a := ebcdicTable[c]
		if a == 0 {
			a = ' '
		}
		out[i] = a
	}
	return out
}

var ebcdicTable = func() [256]byte {
	var t [256]byte
	// digits and space
	t[0x40] = ' '
	for i := byte(0); i < 10; i++ {
		t[0xF0+i] = '0' + i
	}
	// letters
	for i := byte(0); i < 9; i++ {
		t[0xC1+i] = 'A' + i // A-I
		t[0x81+i] = 'a' + i // a-i
	}
	for i := byte(0); i < 9; i++ {
		t[0xD1+i] = 'J' + i // J-R
		t[0x91+i] = 'j' + i // j-r
	}
	for i := byte(0); i < 8; i++ {
		t[0xE2+i] = 'S' + i // S-Z
		t[0xA2+i] = 's' + i // s-z
	}
	// punctuation common in header cards
	t[0x4B], t[0x4C], t[0x4D], t[0x4E] = '.', '<', '(', '+'
	t[0x50], t[0x5B], t[0x5C], t[0x5D], t[0x5E] = '&', '$', '*', ')', ';'
	t[0x60], t[0x61], t[0x6B], t[0x6C], t[0x6D] = '-', '/', ',', '%', '_'
	t[0x6E], t[0x6F], t[0x7A], t[0x7D], t[0x7E] = '>', '?', ':', '\'', '='
	return t
}()

func section(title string) {
	line := strings.Repeat("-", len(title)+8)
	fmt.Printf("\n%s\n--- %s ---\n%s\n", line, title, line)
}

func row(label, value string) {
	if value == "" {
		return
	}
	fmt.Printf("%-24s %s\n", label+":", value)
}

func rowInt(label string, v int) {
	if v == 0 {
		return
	}
	row(label, fmt.Sprintf("%d", v))
}
