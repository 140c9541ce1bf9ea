package constants

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
)

type ENV string

const (
	Debug ENV = "debug"
	Dev   ENV = "development"
	Stag  ENV = "staging"
	Prod  ENV = "production"
)

// 密碼最小長度，handler邊界檢查，不進service
const MinPasswordLength = 6
