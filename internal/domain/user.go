package domain

import "time"

// Role is the access level of a user account. Names follow the farm's
// vocabulary: Ouvrier is a farm worker, Veterinaire the visiting vet.
type Role string

const (
	RoleAdmin       Role = "Admin"
	RoleOuvrier     Role = "Ouvrier"
	RoleVeterinaire Role = "Veterinaire"
	RoleClient      Role = "Client"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOuvrier, RoleVeterinaire, RoleClient:
		return true
	}
	return false
}

type User struct {
	ID           int64      `db:"id" json:"id"`
	FullName     string     `db:"full_name" json:"fullName"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	PhoneNumber  *string    `db:"phone_number" json:"phoneNumber,omitempty"`
	Role         Role       `db:"role" json:"role"`
	IsActive     bool       `db:"is_active" json:"isActive"`
	City         *string    `db:"city" json:"city,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
	LastLoginAt  *time.Time `db:"last_login_at" json:"lastLoginAt,omitempty"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
