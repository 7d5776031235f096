package registry

// NameAllocator hands out exported function names that are unique for a run
type NameAllocator interface {
	Register(name string) string
	Contains(name string) bool
	Names() []string
}
