package scan

import "fmt"

// Result is the outcome of Verify.
type Result struct {
	Length        int // length of the reference
	Mismatches    int // positions that differ, including missing or extra tail elements
	FirstMismatch int // index of the first difference, -1 if none
	Want, Got     int64
}

// Verify compares candidate against reference element by element.
//
// A length difference counts every position past the shorter slice as a
// mismatch. Verification is advisory: it reports, it never panics.
func Verify[T Integer](reference, candidate []T) Result {
	res := Result{Length: len(reference), FirstMismatch: -1}

	common := min(len(reference), len(candidate))
	for i := range common {
		if reference[i] != candidate[i] {
			if res.FirstMismatch < 0 {
				res.FirstMismatch = i
				res.Want = int64(reference[i])
				res.Got = int64(candidate[i])
			}
			res.Mismatches++
		}
	}

	if extra := len(reference) - len(candidate); extra != 0 {
		if res.FirstMismatch < 0 {
			res.FirstMismatch = common
			if extra > 0 {
				res.Want = int64(reference[common])
			} else {
				res.Got = int64(candidate[common])
			}
		}
		res.Mismatches += max(extra, -extra)
	}
	return res
}

// OK reports whether the candidate matched.
func (r Result) OK() bool {
	return r.Mismatches == 0
}

// Err returns nil on a match and a *MismatchError otherwise.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &MismatchError{
		Mismatches:    r.Mismatches,
		FirstMismatch: r.FirstMismatch,
		Want:          r.Want,
		Got:           r.Got,
	}
}

func (r Result) String() string {
	if r.OK() {
		return "Pass"
	}
	return fmt.Sprintf("There was an error: %d of %d positions differ, first at %d (solution: %d, answer: %d)",
		r.Mismatches, r.Length, r.FirstMismatch, r.Want, r.Got)
}
