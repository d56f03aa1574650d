// Package strings provides utility functions for string slices.
package strings

// Contain return true if the strings includes the target string.
func Contain(strings []string, target string) bool {
	for _, str := range strings {
		if str == target {
			return true
		}
	}
	return false
}
