// Package registry maps scan algorithm names to their implementations.
//
// The driver iterates the registry to time and verify every algorithm in a
// fixed order: the reference scan first, then the parallel scans by
// descending priority.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/cwbudde/algo-scan/scan"
)

// ScanFunc writes the inclusive prefix sum of src into dst.
type ScanFunc func(dst, src []int32, opts ...scan.Option) error

// Entry describes one registered algorithm.
type Entry struct {
	// Name is the identifier used on the command line (e.g. "blelloch").
	Name string

	// Label is the work bound printed in reports (e.g. "2(N-1)").
	Label string

	// Priority orders entries in List. Higher runs first.
	Priority int

	// Reference marks the scan other results are verified against.
	// At most one entry may set it.
	Reference bool

	// Parallel reports whether the scan honours worker and grain options.
	Parallel bool

	Scan ScanFunc
}

var (
	errEmptyName       = errors.New("empty algorithm name")
	errNilScan         = errors.New("nil scan function")
	errDuplicateName   = errors.New("duplicate algorithm")
	errSecondReference = errors.New("reference algorithm already registered")
	errUnknownName     = errors.New("unknown algorithm")
)

// Registry holds algorithm entries. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	sorted  bool // true if entries are sorted by priority (descending)
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register adds an entry.
func (r *Registry) Register(e Entry) error {
	if e.Name == "" {
		return errEmptyName
	}
	if e.Scan == nil {
		return fmt.Errorf("%w: %s", errNilScan, e.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, have := range r.entries {
		if have.Name == e.Name {
			return fmt.Errorf("%w: %s", errDuplicateName, e.Name)
		}
		if have.Reference && e.Reference {
			return fmt.Errorf("%w: %s", errSecondReference, have.Name)
		}
	}
	r.entries = append(r.entries, e)
	r.sorted = false
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(e Entry) {
	if err := r.Register(e); err != nil {
		panic("scan registry: " + err.Error())
	}
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Reference returns the reference entry, if one is registered.
func (r *Registry) Reference() (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.Reference {
			return e, true
		}
	}
	return Entry{}, false
}

// List returns a copy of all entries: the reference first, then by
// descending priority, ties broken by name.
func (r *Registry) List() []Entry {
	r.mu.Lock()
	if !r.sorted {
		sort.SliceStable(r.entries, func(i, j int) bool {
			a, b := r.entries[i], r.entries[j]
			if a.Reference != b.Reference {
				return a.Reference
			}
			if a.Priority != b.Priority {
				return a.Priority > b.Priority
			}
			return a.Name < b.Name
		})
		r.sorted = true
	}
	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	r.mu.Unlock()

	return entries
}

// Names returns entry names in List order.
func (r *Registry) Names() []string {
	entries := r.List()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Select returns the named entries in List order. The reference entry is
// always included. An empty names list selects everything.
func (r *Registry) Select(names []string) ([]Entry, error) {
	all := r.List()
	if len(names) == 0 {
		return all, nil
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := r.Lookup(n); !ok {
			return nil, fmt.Errorf("%w: %q", errUnknownName, n)
		}
		want[n] = true
	}

	var out []Entry
	for _, e := range all {
		if e.Reference || want[e.Name] {
			out = append(out, e)
		}
	}
	return out, nil
}

// Reset clears all entries. Intended for tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
