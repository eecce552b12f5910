package pkguid

// StringID produces unique string identifiers, used for correlation IDs and
// upload event IDs.
type StringID interface {
	// Generate returns a new unique string identifier.
	Generate() string
}

// NumberID produces unique numeric identifiers, used to name stored upload
// files.
type NumberID interface {
	// Generate returns a new unique int64 identifier.
	Generate() int64
}
