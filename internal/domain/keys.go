package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUsername  CtxKey = "Username"
	KeyUserRole  CtxKey = "Role"
	KeyClientIP  CtxKey = "ClientIP"
	KeyUserAgent CtxKey = "UserAgent"
	KeyRequestID CtxKey = "RequestID"
)
