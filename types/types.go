package types

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

// AdminEmailKey is the key used to store the authenticated admin's email in the request context.
const AdminEmailKey ContextKey = "adminEmail"

type validatedDTOKey[T any] struct{}

// ValidatedDTOKey returns the context key for a validated DTO of type T.
// Each DTO type gets its own key, so params and body DTOs can be stacked on one route.
func ValidatedDTOKey[T any]() any {
	return validatedDTOKey[T]{}
}
