package domain

// FileDiscoverer walks a project tree and returns the absolute paths of
// files matching the given extensions, sorted alphabetically.
type FileDiscoverer interface {
	Discover(root string, extensions ...string) ([]string, error)
}

// GitInfo reads repository state for the report header.
type GitInfo interface {
	IsRepo(path string) bool
	ShortHash(path string) (string, error)
}
