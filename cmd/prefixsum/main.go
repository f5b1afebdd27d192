// Command prefixsum times the serial, Hillis-Steele and Blelloch prefix sums
// on one random input and verifies the parallel results against the serial
// one.
//
// Usage:
//
//	prefixsum [flags] [<# elements> <rand seed>]
//
// Without the two positional arguments it prints a usage line and runs on
// 1048576 elements seeded from the current time.
//
// Examples:
//
//	prefixsum 1000000 42
//	prefixsum -trials 5 -workers 8 16777216 7
//	prefixsum -algo blelloch -grain 65536 4194304 1
//	prefixsum -list
//	prefixsum -features
package main

import (
	"os"
	"time"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, time.Now))
}
