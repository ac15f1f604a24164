package usecase

// coalesce returns *newVal when provided, otherwise the existing value.
func coalesce[T any](newVal *T, existing T) T {
	if newVal != nil {
		return *newVal
	}
	return existing
}
