package models

import "time"

// User roles.
const (
	RoleUser    = "user"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// User account types.
const (
	UserTypeRetail = "retail"
	UserTypeLegal  = "legal"
)

// User represents a store account. The password field holds the bcrypt hash
// and must survive JSON persistence; responses go through Sanitized, which
// blanks it so omitempty drops the key.
type User struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username    string    `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email       string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Phone       string    `json:"phone,omitempty" validate:"omitempty,max=32"`
	Password    string    `json:"password,omitempty" gorm:"type:varchar(255)" validate:"required,min=6"`
	Name        string    `json:"name" validate:"required,max=200"`
	Role        string    `json:"role" validate:"omitempty,oneof=user manager admin"`
	UserType    string    `json:"user_type" validate:"omitempty,oneof=retail legal"`
	CompanyName string    `json:"company_name,omitempty"`
	TaxID       string    `json:"tax_id,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Sanitized returns a copy safe to hand to clients or stash in a session:
// the password hash is blanked out.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
