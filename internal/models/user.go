package models

// User is the row shape of the users table. Password holds the bcrypt hash.
type User struct {
	ID       int    `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"`
	Role     string `db:"role"`
}
