package scan

// Serial returns the inclusive prefix sum of src, computed in one pass.
// It is the reference the parallel scans are verified against.
func Serial[T Integer](src []T) []T {
	dst := make([]T, len(src))
	serial(dst, src)
	return dst
}

// SerialInto writes the inclusive prefix sum of src into dst.
func SerialInto[T Integer](dst, src []T) error {
	if err := checkLengths(len(dst), len(src)); err != nil {
		return err
	}
	serial(dst, src)
	return nil
}

func serial[T Integer](dst, src []T) {
	if len(src) == 0 {
		return
	}
	dst[0] = src[0]
	for i := 1; i < len(src); i++ {
		dst[i] = dst[i-1] + src[i]
	}
}

// Exclusive returns the exclusive prefix sum of src: position i holds the sum
// of src[0:i], so the first element is always zero.
func Exclusive[T Integer](src []T) []T {
	dst := make([]T, len(src))
	var sum T
	for i, v := range src {
		dst[i] = sum
		sum += v
	}
	return dst
}
