package user

// User is an account that owns favorites. Password is never serialized.
type User struct {
	ID       int    `db:"id" json:"id" yaml:"-"`
	Username string `db:"username" json:"username" yaml:"username"`
	Email    string `db:"email" json:"email" yaml:"email"`
	Password string `db:"password" json:"-" yaml:"password"`
}
