// Command statinfo prints rolling-window statistics over sample values.
//
// Usage:
//
//	statinfo [flags] [value ...]
//
// Values fill a fixed-capacity window in order; once the window is full,
// new values overwrite the oldest slots. Without arguments it runs a small
// u8 demo sequence over a four-slot window.
//
// Examples:
//
//	statinfo 1 21 79 100 31 85
//	statinfo -type u16 -capacity 4 1000 2000 3000 4000 3123
//	statinfo -type f64 1.5 2.5 3.5 4.5
//	statinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-stats"
)

// row holds one formatted result line.
type row struct {
	max, min, mean, variance, stdev string
}

type typeEntry struct {
	name   string
	size   int
	add    func(st *stats.Store, arg string) error
	report func(st *stats.Store) row
}

func intEntry[T stats.Integer](name string, signed bool, bits int) typeEntry {
	return typeEntry{
		name: name,
		size: stats.SizeOf[T](),
		add: func(st *stats.Store, arg string) error {
			if signed {
				n, err := strconv.ParseInt(arg, 0, bits)
				if err != nil {
					return err
				}
				return stats.Append(st, T(n))
			}
			n, err := strconv.ParseUint(arg, 0, bits)
			if err != nil {
				return err
			}
			return stats.Append(st, T(n))
		},
		report: func(st *stats.Store) row {
			return row{
				max:      fmt.Sprintf("%d", stats.Max[T](st)),
				min:      fmt.Sprintf("%d", stats.Min[T](st)),
				mean:     formatScaled(stats.Mean[T](st)),
				variance: formatStat(stats.Variance[T](st)),
				stdev:    formatStat(stats.Stdev[T](st)),
			}
		},
	}
}

func floatEntry[T stats.Float](name string) typeEntry {
	return typeEntry{
		name: name,
		size: stats.SizeOf[T](),
		add: func(st *stats.Store, arg string) error {
			f, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return err
			}
			return stats.Append(st, T(f))
		},
		report: func(st *stats.Store) row {
			return row{
				max:      fmt.Sprintf("%g", stats.Max[T](st)),
				min:      fmt.Sprintf("%g", stats.Min[T](st)),
				mean:     fmt.Sprintf("%g", stats.MeanFloat[T](st)),
				variance: fmt.Sprintf("%g", stats.VarianceFloat[T](st)),
				stdev:    fmt.Sprintf("%g", stats.StdevFloat[T](st)),
			}
		},
	}
}

var registry = []typeEntry{
	intEntry[uint8]("u8", false, 8),
	intEntry[int8]("i8", true, 8),
	intEntry[uint16]("u16", false, 16),
	intEntry[int16]("i16", true, 16),
	intEntry[uint32]("u32", false, 32),
	intEntry[int32]("i32", true, 32),
	floatEntry[float32]("f32"),
	floatEntry[float64]("f64"),
}

func main() {
	typ := flag.String("type", "u8", "sample type (use -list to see supported)")
	capacity := flag.Int("capacity", 0, "window capacity in samples (default: number of values)")
	list := flag.Bool("list", false, "list supported sample types")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: statinfo [flags] [value ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints rolling-window statistics over sample values.\n")
		fmt.Fprintf(os.Stderr, "Without arguments it runs a small u8 demo sequence.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  statinfo 1 21 79 100 31 85\n")
		fmt.Fprintf(os.Stderr, "  statinfo -type u16 -capacity 4 1000 2000 3000 4000 3123\n")
		fmt.Fprintf(os.Stderr, "  statinfo -type f64 1.5 2.5 3.5 4.5\n")
		fmt.Fprintf(os.Stderr, "  statinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	entry, ok := lookup(*typ)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown type %q (use -list to see supported)\n", *typ)
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"1", "21", "79", "100", "31", "85"}
		if *capacity == 0 {
			*capacity = 4
		}
	}
	c := *capacity
	if c == 0 {
		c = len(args)
	}

	st, err := stats.NewStore(entry.size, c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer st.Free()

	for _, a := range args {
		if err := entry.add(st, a); err != nil {
			fmt.Fprintf(os.Stderr, "error: sample %q: %v\n", a, err)
			os.Exit(1)
		}
	}

	printReport(entry, st)
}

func printList() {
	for _, e := range registry {
		fmt.Printf("%s\t%d byte(s)\n", e.name, e.size)
	}
}

func lookup(name string) (typeEntry, bool) {
	for _, e := range registry {
		if e.name == name {
			return e, true
		}
	}
	return typeEntry{}, false
}

// formatScaled renders a fixed-point value with three decimals.
func formatScaled(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%d.%03d", v/stats.Scale, v%stats.Scale)
	if neg {
		s = "-" + s
	}
	return s
}

// formatStat renders variance or stdev, mapping the sentinel for windows
// too small to have one.
func formatStat(v int64) string {
	if v == stats.Undefined {
		return "n/a"
	}
	return formatScaled(v)
}

func printReport(e typeEntry, st *stats.Store) {
	r := e.report(st)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Type\tCapacity\tFull\tMax\tMin\tMean\tVariance\tStdev\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "----\t--------\t----\t---\t---\t----\t--------\t-----\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "%s\t%d\t%v\t%s\t%s\t%s\t%s\t%s\n",
		e.name,
		st.Capacity(),
		st.HasFullWindow(),
		r.max,
		r.min,
		r.mean,
		r.variance,
		r.stdev,
	); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
		return
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
