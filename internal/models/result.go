package models

// Result is the envelope handed from the fetch to the renderer: the decoded payload
// plus the upstream HTTP status. Payload is nil whenever StatusCode is not 200.
type Result[T any] struct {
	Payload    *T
	StatusCode int
}

// APIStatus is the error body the media database returns alongside non-200 statuses
type APIStatus struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Success       bool   `json:"success"`
}
