package domain

import "time"

type User struct {
	ID        int64     `db:"id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	Password  string    `db:"password"` // bcrypt hashed, empty on read projections
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func NewUser(username, email, hashedPassword string) *User {
	now := time.Now()
	return &User{
		Username:  username,
		Email:     email,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UserInput is the plaintext create payload.
type UserInput struct {
	Username string
	Email    string
	Password string
}

// UserPatch is a partial update; nil fields are left untouched.
type UserPatch struct {
	Username *string
	Email    *string
	Password *string
}

func (p UserPatch) Empty() bool {
	return p.Username == nil && p.Email == nil && p.Password == nil
}
