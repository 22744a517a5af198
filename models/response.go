package models

// SuccessResponse is the envelope every successful endpoint returns.
type SuccessResponse struct {
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

// ErrorResponse carries the HTTP status mirrored in the body.
type ErrorResponse struct {
	Status int    `json:"status"`
	Msg    string `json:"msg"`
}
