//go:build !amd64 && !arm64

package cpu

// detectFeaturesImpl is the fallback for other architectures.
func detectFeaturesImpl() Features {
	return Features{}
}
