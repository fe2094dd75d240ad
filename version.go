package kepler

// Version numbers, queried by Version rather than reported through any
// build-time mechanism.
const (
	VersionMajor = 1
	VersionMinor = 0
)

// Version returns the library's major and minor version numbers.
func Version() (major, minor int) {
	return VersionMajor, VersionMinor
}
