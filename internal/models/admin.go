package models

// AdminCredentials is the single administrator account of the document.
// Hash is a bcrypt digest; documents written by older installs may carry a hex SHA-256 digest.
type AdminCredentials struct {
	Email string `json:"email"`
	Hash  string `json:"hash"`
}
