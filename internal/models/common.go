package models

// ErrorResponse is the error body returned by every REST endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// NewErrorResponse builds an ErrorResponse, copying err into Details when set.
func NewErrorResponse(code int, message string, err error) ErrorResponse {
	resp := ErrorResponse{Code: code, Message: message}
	if err != nil {
		resp.Details = err.Error()
	}
	return resp
}
