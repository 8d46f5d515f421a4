package models

// Error codes used in the error envelope.
const (
	CodeNotFound   = "NOT_FOUND"
	CodeFetchError = "FETCH_ERROR"
	CodeDBError    = "DB_ERROR"
)

// ErrorInfo is the error block of a failed response.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Response is the uniform envelope for every endpoint: either data (with
// an optional pagination block) or an error, never both.
type Response struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Error      *ErrorInfo  `json:"error,omitempty"`
}

// OK builds a success envelope without pagination.
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// OKPage builds a success envelope with a pagination block.
func OKPage(data interface{}, page Pagination) Response {
	return Response{Success: true, Data: data, Pagination: &page}
}

// Fail builds an error envelope.
func Fail(code, message string) Response {
	return Response{Success: false, Error: &ErrorInfo{Code: code, Message: message}}
}
