//go:build unix && !linux && !darwin

package fsops

func newPlatformNameSource() NameSource {
	return scanNameSource{}
}
