// Command kerninfo prints resampling kernel properties, coefficient tables
// and the kernel sets resolved for each CPU extension.
//
// Usage:
//
//	kerninfo [flags] [filter-name ...]
//
// Without arguments it prints a summary for every known filter.
//
// Examples:
//
//	kerninfo -src 1920 -dst 640
//	kerninfo -table -src 8 -dst 3 bilinear
//	kerninfo -table -fixed 14 -src 5 -dst 9 lanczos3
//	kerninfo -ext all
//	kerninfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-resize/imaging/filter"
	"github.com/cwbudde/algo-resize/imaging/resize"
	"github.com/cwbudde/algo-resize/imaging/simd"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	src, dst int
	table    bool
	fixed    uint
	ext      string
	list     bool
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("kerninfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.IntVar(&o.src, "src", 1024, "source axis length in pixels")
	fs.IntVar(&o.dst, "dst", 256, "destination axis length in pixels")
	fs.BoolVar(&o.table, "table", false, "print the per-pixel coefficient table")
	fs.UintVar(&o.fixed, "fixed", 0, "print fixed-point weights with this many fraction bits (1-30)")
	fs.StringVar(&o.ext, "ext", "", `print kernel sets for an extension ("all" for every extension)`)
	fs.BoolVar(&o.list, "list", false, "list available filter names")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: kerninfo [flags] [filter-name ...]\n\n")
		fmt.Fprintf(stderr, "Prints resampling kernel properties and coefficient tables.\n")
		fmt.Fprintf(stderr, "Without arguments, prints a summary for all filters.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  kerninfo -src 1920 -dst 640\n")
		fmt.Fprintf(stderr, "  kerninfo -table -fixed 14 -src 5 -dst 9 lanczos3\n")
		fmt.Fprintf(stderr, "  kerninfo -ext all\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if o.list {
		for _, n := range filter.Names() {
			fmt.Fprintln(stdout, n)
		}
		return 0
	}

	if o.ext != "" {
		if err := printExtensions(stdout, o.ext); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	if o.src <= 0 || o.dst <= 0 {
		fmt.Fprintf(stderr, "error: -src and -dst must be positive, got %d and %d\n", o.src, o.dst)
		return 2
	}
	if o.fixed > 30 {
		fmt.Fprintf(stderr, "error: -fixed must be between 1 and 30, got %d\n", o.fixed)
		return 2
	}

	names := fs.Args()
	if len(names) == 0 {
		names = filter.Names()
	}
	filters := resolveFilters(names, stderr)
	if len(filters) == 0 {
		fmt.Fprintf(stderr, "error: no matching filters\n")
		return 1
	}

	var err error
	if o.table {
		err = printTables(stdout, filters, o)
	} else {
		err = printSummary(stdout, filters, o.src, o.dst)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: failed to write output: %v\n", err)
		return 1
	}
	return 0
}

func resolveFilters(names []string, stderr io.Writer) []filter.Filter {
	var result []filter.Filter
	for _, name := range names {
		f, err := filter.ByName(name)
		if err != nil {
			fmt.Fprintf(stderr, "warning: unknown filter %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, f)
	}
	return result
}

func printSummary(w io.Writer, filters []filter.Filter, src, dst int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Filter\tSupport\tScale\tWindow\tMax Taps\tSpan\tW(0)\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "------\t-------\t-----\t------\t--------\t----\t----\n"); err != nil {
		return err
	}

	for _, f := range filters {
		t := filter.NewTable(src, dst, f)
		taps := 0
		for _, b := range t.Bounds {
			taps = max(taps, b.Size)
		}
		start, end := t.Span()

		if _, err := fmt.Fprintf(tw, "%s\t%.2f\t%.4f\t%d\t%d\t[%d,%d)\t%.4f\n",
			f.Name,
			f.Support,
			float64(src)/float64(dst),
			t.Window,
			taps,
			start, end,
			f.Weight(0),
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func printTables(w io.Writer, filters []filter.Filter, o options) error {
	for i, f := range filters {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s: %d -> %d\n", f.Name, o.src, o.dst); err != nil {
			return err
		}

		t := filter.NewTable(o.src, o.dst, f)
		var ft *filter.FixedTable
		if o.fixed > 0 {
			ft = t.Fixed(o.fixed)
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		if _, err := fmt.Fprintf(tw, "Dst\tStart\tSize\tWeights\n"); err != nil {
			return err
		}
		for d, b := range t.Bounds {
			var weights string
			if ft != nil {
				weights = joinInts(ft.Row(d))
			} else {
				weights = joinFloats(t.Row(d))
			}
			if _, err := fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n", d, b.Start, b.Size, weights); err != nil {
				return err
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func printExtensions(w io.Writer, name string) error {
	exts := simd.Extensions
	if !strings.EqualFold(name, "all") {
		ext, err := simd.ParseExtension(name)
		if err != nil {
			return err
		}
		exts = []simd.Extension{ext}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Extension\tSupported\tDetected\tKernel Sets\n"); err != nil {
		return err
	}
	detected := simd.Detect()
	r := resize.New()
	for _, ext := range exts {
		r.ForceCPUExtension(ext)
		if _, err := fmt.Fprintf(tw, "%s\t%t\t%t\t%s\n",
			ext,
			ext.Supported(),
			ext == detected,
			strings.Join(r.Backends(), ", "),
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func joinFloats(ws []float64) string {
	parts := make([]string, len(ws))
	for i, v := range ws {
		parts[i] = fmt.Sprintf("%.5f", v)
	}
	return strings.Join(parts, " ")
}

func joinInts(ws []int32) string {
	parts := make([]string, len(ws))
	for i, v := range ws {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
