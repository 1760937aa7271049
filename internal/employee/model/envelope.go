package model

// Response is the `{data, status}` envelope the upstream API wraps every
// payload in. It exists only as a transient decode target; data may be null.
type Response[T any] struct {
	Data   T      `json:"data"`
	Status string `json:"status"`
}
