// Command mkencoder derives the encoder/decoder matrix pair from an
// spmat matrix, matching original_source/mkencoder.c. Strict: aborts on
// rank deficiency (spmat.ErrRankDeficient) rather than reporting and
// continuing, per the strict/lenient split documented in DESIGN.md.
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
	encOut := flag.String("encoder", "", "output encoder spmat file (required)")
	decOut := flag.String("decoder", "", "output decoder spmat file (required)")
	flag.Parse()

	if *in == "" || *encOut == "" || *decOut == "" {
		fmt.Fprintln(os.Stderr, "usage: mkencoder -in=matrix.spmat -encoder=enc.spmat -decoder=dec.spmat")
		os.Exit(1)
	}

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("mkencoder: %v", err)
	}
	defer f.Close()

	m, err := spmat.ReadSPMat(f)
	if err != nil {
		log.Fatalf("mkencoder: %v", err)
	}

	encoder, decoder, _, err := spmat.BuildEncoder(m)
	if err != nil {
		log.Fatalf("mkencoder: %v", err)
	}

	if err := writeTo(*encOut, encoder); err != nil {
		log.Fatalf("mkencoder: %v", err)
	}
	if err := writeTo(*decOut, decoder); err != nil {
		log.Fatalf("mkencoder: %v", err)
	}
}

func writeTo(path string, m *spmat.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return spmat.WriteSPMat(f, m)
}
