// Command gaussian reduces an spmat matrix over GF(2), matching
// original_source/gaussian.c's standalone CLI mode (the same routine is
// also available as a library call, spmat.GaussJordan, for mkencoder's
// strict use). Runs lenient: a row that reduces to zero is accepted and
// reported on stderr, not treated as fatal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/wadatools/binldpc/spmat"
)

func main() {
	in := flag.String("in", "", "input spmat file (required)")
	out := flag.String("out", "", "output spmat file (default: stdout)")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: gaussian -in=matrix.spmat [-out=reduced.spmat]")
		os.Exit(1)
	}

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("gaussian: %v", err)
	}
	defer f.Close()

	m, err := spmat.ReadSPMat(f)
	if err != nil {
		log.Fatalf("gaussian: %v", err)
	}

	reduced, leaders, err := spmat.GaussJordan(m, true)
	if err != nil {
		log.Fatalf("gaussian: %v", err)
	}

	zeroRows := 0
	for _, l := range leaders {
		if l == -1 {
			zeroRows++
		}
	}
	if zeroRows > 0 {
		fmt.Fprintf(os.Stderr, "gaussian: %d row(s) reduced to zero weight (rank deficiency)\n", zeroRows)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("gaussian: %v", err)
		}
		defer f.Close()
		w = f
	}

	if err := spmat.WriteSPMat(w, reduced); err != nil {
		log.Fatalf("gaussian: writing output: %v", err)
	}
}
