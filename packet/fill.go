// Package packet - table filling.
//
// Fill is the library's outermost operation. For each marked row it builds
// a fresh constraint problem from the distribution, runs the solver, and
// splices the arrangement's codes into the row.
//
// Contracts:
//   - rows is never mutated; Fill returns a deep copy with splices applied.
//   - Exactly len(dist) cells are replaced per marked row, starting at
//     Options.Offset; rows narrower than Offset+len(dist) are widened with
//     empty cells first (the host guarantees width, a library cannot).
//   - One Report per marked row, in row order. A row that exhausted its
//     step budget reports its residual violations; the batch continues.
//
// Complexity: O(rows·solve) time; O(total cells) space for the copy.
package packet

import (
	"github.com/katalvlaran/packetforge/code"
	"github.com/katalvlaran/packetforge/constraint"
	"github.com/katalvlaran/packetforge/solver"
)

// Fill generates a template for every marked row of rows (non-empty first
// cell) from dist and returns the updated table plus one Report per
// generated template. Unmarked rows are returned unchanged.
func Fill(rows [][]string, dist code.Distribution, opts Options) ([][]string, []Report, error) {
	if opts.Offset < 0 {
		return nil, nil, ErrNegativeOffset
	}

	out := cloneTable(rows)
	reports := make([]Report, 0, len(out))

	var (
		r    int
		row  []string
		res  solver.Result
		err  error
		sopt solver.Options
	)
	for r = 0; r < len(out); r++ {
		row = out[r]
		if len(row) == 0 || row[0] == "" {
			continue // unmarked row: pass through
		}

		// Fresh constraint set per row; Build only reads dist.
		cs := constraint.Build(dist)

		// Independent deterministic stream per row index.
		sopt = opts.Solver
		sopt.Seed = solver.DeriveSeed(sopt.Seed, uint64(r))

		res, err = solver.Solve(dist, cs, sopt)
		if err != nil {
			return nil, nil, err // option errors only; not row data dependent
		}

		out[r] = splice(row, res.Arrangement, opts.Offset)
		reports = append(reports, Report{
			Row:        r,
			Violations: res.Violations,
			Steps:      res.Steps,
		})
	}

	return out, reports, nil
}

// splice writes arr's codes into row starting at offset, replacing exactly
// len(arr) cells and widening the row with empty cells when needed.
func splice(row []string, arr []code.Code, offset int) []string {
	need := offset + len(arr)
	if len(row) < need {
		widened := make([]string, need)
		copy(widened, row)
		row = widened
	}

	var i int
	for i = 0; i < len(arr); i++ {
		row[offset+i] = string(arr[i])
	}

	return row
}

// cloneTable deep-copies rows so the caller's table stays pristine.
func cloneTable(rows [][]string) [][]string {
	out := make([][]string, len(rows))

	var (
		i   int
		row []string
	)
	for i, row = range rows {
		if row == nil {
			continue
		}
		out[i] = make([]string, len(row))
		copy(out[i], row)
	}

	return out
}
