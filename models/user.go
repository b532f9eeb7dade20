package models

// Credentials is the username/password pair submitted to the token endpoint.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Credential is a known principal: a username and its bcrypt password hash.
// The set of credentials is fixed by configuration for the process lifetime.
type Credential struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
