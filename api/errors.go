package api

// ErrorCode defines error types for API operations
type ErrorCode string

const (
	// ErrRecordFetch represents errors that occur while fetching records
	ErrRecordFetch ErrorCode = "RecordFetchError"

	// ErrInvalidRecordID represents errors caused by a malformed record identifier
	ErrInvalidRecordID ErrorCode = "InvalidRecordID"

	// ErrWebsiteFetch represents errors that occur while fetching a record's website
	ErrWebsiteFetch ErrorCode = "WebsiteFetchError"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
