package models

// User is the set of credentials presented at login.
type User struct {
	// Username is the unique login identifier.
	Username string `json:"username"`

	// Password is the plaintext password as sent by the caller. It is only
	// compared against the configured bcrypt hash and never stored or logged.
	Password string `json:"password"`

	// Role is filled in by the auth service after a successful login.
	Role Role `json:"-"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	Role      Role   `json:"role"`
	ExpiresIn int64  `json:"expiresIn"`
}
