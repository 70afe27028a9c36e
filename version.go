package atoms

// Version is set at build time via ldflags:
//
//	go build -ldflags "-X github.com/alnah/go-atoms.Version=v1.0.0"
//
// It is exposed to pages as _VERSION.
var Version = "dev"
