//go:build !linux && !darwin

package fs

func hasXAttrs(string) bool {
	return false
}
