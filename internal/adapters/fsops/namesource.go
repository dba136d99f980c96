// Package fsops renames file system entries between Unicode
// normalization forms. The central primitive reads the byte-accurate
// stored name of an entry before deciding anything, because event
// paths and user input arrive in whatever form the producer chose.
package fsops

// NameSource reports the stored basename of the entry at a path,
// byte for byte as the file system holds it.
type NameSource interface {
	ActualName(path string) (string, error)
}

// NewNameSource returns the platform backend: an O(1) handle-to-path
// lookup where the OS supports one, else a parent directory scan
// matching device and inode identity.
func NewNameSource() NameSource {
	return newPlatformNameSource()
}
