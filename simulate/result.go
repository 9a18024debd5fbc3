package simulate

import "fmt"

// Report is the simulator result record: one line, space-separated,
// carrying both the measured statistics and the run's reproducibility
// parameters.
type Report struct {
	SNR        float64
	Sigma2     float64
	Seed       int32
	IMax       int
	N, M       int
	MatrixFile string
	StopMode   StopMode
	Threshold  int
	Stats      Stats
}

// PBit returns error_bits/total_bits, the bit error probability after
// decoding. This is computed over the whole word, not restricted to
// information bits — preserve that convention at this boundary rather
// than silently narrowing it.
func (r Report) PBit() float64 {
	if r.Stats.TotalBits == 0 {
		return 0
	}
	return float64(r.Stats.ErrorBits) / float64(r.Stats.TotalBits)
}

// PBlock returns error_blocks/total_blocks, the block error probability.
func (r Report) PBlock() float64 {
	if r.Stats.TotalBlocks == 0 {
		return 0
	}
	return float64(r.Stats.ErrorBlocks) / float64(r.Stats.TotalBlocks)
}

// AvgIterations returns the average number of flooding iterations run
// per block.
func (r Report) AvgIterations() float64 {
	if r.Stats.TotalBlocks == 0 {
		return 0
	}
	return float64(r.Stats.TotalIterations) / float64(r.Stats.TotalBlocks)
}

// Header returns the column names for Line, in the same order, for a
// header printed once per run, ahead of the result line (see the header
// Open Question resolution in DESIGN.md).
func Header() string {
	return "snr p_b p_B sigma2 error_bits total_bits error_blocks total_blocks avg_iters seed i_max N M matrix_file stop_mode threshold"
}

// Line formats the report as a single-line record.
func (r Report) Line() string {
	return fmt.Sprintf("%g %g %g %g %d %d %d %d %g %d %d %d %d %s %d %d",
		r.SNR, r.PBit(), r.PBlock(), r.Sigma2,
		r.Stats.ErrorBits, r.Stats.TotalBits, r.Stats.ErrorBlocks, r.Stats.TotalBlocks,
		r.AvgIterations(), r.Seed, r.IMax, r.N, r.M, r.MatrixFile,
		r.StopMode, r.Threshold,
	)
}
