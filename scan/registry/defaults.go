package registry

import "github.com/cwbudde/algo-scan/scan"

// Default returns a registry holding the three built-in scans.
func Default() *Registry {
	r := New()
	r.MustRegister(Entry{
		Name:      "serial",
		Label:     "O(N-1)",
		Priority:  30,
		Reference: true,
		Scan: func(dst, src []int32, _ ...scan.Option) error {
			return scan.SerialInto(dst, src)
		},
	})
	r.MustRegister(Entry{
		Name:     "hillis-steele",
		Label:    "O(NlogN)",
		Priority: 20,
		Parallel: true,
		Scan:     scan.HillisSteeleInto[int32],
	})
	r.MustRegister(Entry{
		Name:     "blelloch",
		Label:    "2(N-1)",
		Priority: 10,
		Parallel: true,
		Scan:     scan.BlellochInto[int32],
	})
	return r
}
