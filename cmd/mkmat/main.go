// Command mkmat generates a random (dv, dc)-regular parity-check matrix
// in spmat format, matching original_source/mkmat.c's synopsis
// "mkmat j k n seed" (j=column weight, k=row weight, n=code length).
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/wadatools/binldpc/spmat"
)

func main() {
	dv := flag.Int("dv", 0, "column weight (j)")
	dc := flag.Int("dc", 0, "row weight (k)")
	n := flag.Int("n", 0, "code length")
	seed := flag.Int64("seed", 0, "PRNG seed")
	flag.Parse()

	if *dv <= 0 || *dc <= 0 || *n <= 0 {
		fmt.Fprintln(os.Stderr, "usage: mkmat -dv=j -dc=k -n=n -seed=s")
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))
	m, err := spmat.RandomRegular(*dv, *dc, *n, rng)
	if err != nil {
		log.Fatalf("mkmat: %v", err)
	}

	if err := spmat.WriteSPMat(os.Stdout, m); err != nil {
		log.Fatalf("mkmat: writing output: %v", err)
	}
}
