// Command delcol greedily prunes columns whose row-support overlaps any
// other kept column in more than one row, matching
// original_source/delcol.c. Reports the number of discarded columns on
// stderr, mirroring the original's progress message.
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
		fmt.Fprintln(os.Stderr, "usage: delcol -in=matrix.spmat [-out=pruned.spmat]")
		os.Exit(1)
	}

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("delcol: %v", err)
	}
	defer f.Close()

	m, err := spmat.ReadSPMat(f)
	if err != nil {
		log.Fatalf("delcol: %v", err)
	}

	pruned, discarded, err := spmat.PruneColumns(m)
	if err != nil {
		log.Fatalf("delcol: %v", err)
	}
	fmt.Fprintf(os.Stderr, "delcol: discarded %d of %d columns\n", len(discarded), m.N)

	w := os.Stdout
	if *out != "" {
		of, err := os.Create(*out)
		if err != nil {
			log.Fatalf("delcol: %v", err)
		}
		defer of.Close()
		w = of
	}

	if err := spmat.WriteSPMat(w, pruned); err != nil {
		log.Fatalf("delcol: writing output: %v", err)
	}
}
