package scan

// Integer is the set of element types the scans accept.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}
