package domain

import "time"

// User is the stored identity record. Exactly one record exists per email;
// the users table enforces that with a unique constraint.
type User struct {
	ID           string
	Email        string
	Name         string // display name, "" when never set
	PasswordHash string // bcrypt digest, never serialized outward
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the outward identity view. Name is always a string, never
// null, even when the record has no display name.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public strips the credential material from a User.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
