package domain

// User is a backoffice operator account. PasswordHash is the bcrypt hash and
// must never leave the service layer.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
