package services

// Result is the outcome of a successful store operation.
type Result[T any] struct {
	Value   T
	Message string
}
