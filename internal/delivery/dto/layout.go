package dto

// Wire formats shared by requests and responses.
const (
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04"
	TimestampLayout = "2006-01-02T15:04:05"
)
