package middleware

// Context keys used to store authentication metadata.
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserPhone = "user_phone"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"
)
