package models

// Message is the body of success and error responses that carry no record
// payload (e.g. registration confirmation).
type Message struct {
	// Message is a short human-readable description of the outcome.
	Message string `json:"message"`
}

// TokenResponse is the body returned by a successful login.
type TokenResponse struct {
	// AccessToken is the signed bearer token to present on protected routes.
	AccessToken string `json:"access_token"`
}
