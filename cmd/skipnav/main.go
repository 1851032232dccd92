// Command skipnav loads keys into a skip list set and prints its level layout,
// navigation answers for a query key and the JSON rendering of the set.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/metailurini/skipnav"
	"github.com/metailurini/skipnav/internal/leveltable"
)

type options struct {
	maxHeight int
	seed      uint64
	numeric   bool
	remove    string
	query     string
	lanes     bool
	keys      []string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("skipnav: ")
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

func parseOptions(args []string, stdin io.Reader) (options, error) {
	var opts options
	fs := flag.NewFlagSet("skipnav", flag.ContinueOnError)
	fs.IntVar(&opts.maxHeight, "max-height", skipnav.DefaultMaxHeight, "number of levels")
	fs.Uint64Var(&opts.seed, "seed", 1, "seed for the level draw (0 picks a time based seed)")
	fs.BoolVar(&opts.numeric, "numeric", false, "treat keys as integers")
	fs.StringVar(&opts.remove, "remove", "", "comma separated keys to remove after loading")
	fs.StringVar(&opts.query, "query", "", "key to run floor/ceiling/higher/lower against")
	fs.BoolVar(&opts.lanes, "lanes", true, "print the per-key lane grid")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.keys = fs.Args()
	if len(opts.keys) == 0 && stdin != nil {
		sc := bufio.NewScanner(stdin)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				opts.keys = append(opts.keys, line)
			}
		}
		if err := sc.Err(); err != nil {
			return opts, errors.Wrap(err, "reading keys from stdin")
		}
	}
	return opts, nil
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	opts, err := parseOptions(args, stdin)
	if err != nil {
		return err
	}
	if opts.numeric {
		return inspect(opts, stdout, skipnav.NaturalOrder[int64](), func(s string) (int64, error) {
			return strconv.ParseInt(s, 10, 64)
		})
	}
	return inspect(opts, stdout, skipnav.NaturalOrder[string](), func(s string) (string, error) {
		return s, nil
	})
}

func parseAll[K any](raw []string, parse func(string) (K, error)) ([]K, error) {
	out := make([]K, 0, len(raw))
	for _, s := range raw {
		k, err := parse(s)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing key %q", s)
		}
		out = append(out, k)
	}
	return out, nil
}

func inspect[K any](opts options, w io.Writer, c skipnav.Comparator[K], parse func(string) (K, error)) error {
	keys, err := parseAll(opts.keys, parse)
	if err != nil {
		return err
	}
	set := skipnav.NewSetFromKeys(c, keys,
		skipnav.WithMaxHeight(opts.maxHeight),
		skipnav.WithSeed(opts.seed),
	)

	if opts.remove != "" {
		removals, err := parseAll(strings.Split(opts.remove, ","), parse)
		if err != nil {
			return err
		}
		for _, k := range removals {
			if !set.Remove(k) {
				log.Printf("remove %v: not present", k)
			}
		}
	}

	levels := set.Levels()
	format := leveltable.Sprint[K]
	if opts.lanes {
		leveltable.Lanes(w, levels, format)
	}
	leveltable.Summary(w, levels, format)

	if opts.query != "" {
		q, err := parse(opts.query)
		if err != nil {
			return errors.Wrapf(err, "parsing query %q", opts.query)
		}
		for _, nav := range []struct {
			name string
			fn   func(K) (K, bool)
		}{
			{"floor", set.Floor},
			{"ceiling", set.Ceiling},
			{"higher", set.Higher},
			{"lower", set.Lower},
		} {
			k, ok := nav.fn(q)
			fmt.Fprintf(w, "%s(%v) = %s\n", nav.name, q, describe(k, ok))
		}
	}

	out, err := json.Marshal(set)
	if err != nil {
		return errors.Wrap(err, "encoding set")
	}
	fmt.Fprintf(w, "%s\n", out)

	if err := set.Validate(); err != nil {
		return errors.Wrap(err, "structure is invalid")
	}
	stats := set.Stats()
	fmt.Fprintf(w, "size=%d inserts=%d removals=%d comparisons=%d\n",
		set.Len(), stats.Inserts, stats.Removals, stats.Comparisons)
	return nil
}

func describe[K any](k K, ok bool) string {
	if !ok {
		return "absent"
	}
	return fmt.Sprint(k)
}
