package testutil

// Set sets *p to v, and restores the original value in a cleanup function.
func Set[T any](c Cleanuper, p *T, v T) {
	old := *p
	*p = v
	c.Cleanup(func() { *p = old })
}
