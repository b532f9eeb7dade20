package models

// MessageResponse is the body of the health check.
type MessageResponse struct {
	Message string `json:"message"`
}

// DeleteResult reports the outcome of a delete request.
// A missing employee is reported with Success=false, not as an error.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// TokenResponse is returned by the token endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
