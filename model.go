package googleai

import "strings"

// resolveModelName accepts a bare model identifier or one qualified with a
// provider namespace ("googleai/embedding-001") and returns the bare
// identifier, so request URLs carry exactly one unqualified model segment.
func resolveModelName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}
