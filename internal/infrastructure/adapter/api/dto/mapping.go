package dto

// MapAll converts a slice for the API. A nil input still encodes as [].
func MapAll[T any, R any](in []T, convert func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, item := range in {
		out = append(out, convert(item))
	}
	return out
}
