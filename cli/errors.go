package cli

// ErrorCode defines error types for CLI operations
type ErrorCode string

const (
	NoRecordSpecified ErrorCode = "NoRecordSpecified"
	NoWebsiteField    ErrorCode = "NoWebsiteField"
	InvalidArguments  ErrorCode = "InvalidArguments"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
