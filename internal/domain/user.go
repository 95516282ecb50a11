package domain

// User represents a registered guest or property owner.
type User struct {
	ID    int64  `db:"id"    json:"id"`
	Name  string `db:"name"  json:"name"  validate:"required,max=255"`
	Email string `db:"email" json:"email" validate:"required,email,max=255"`
	// Password is stored exactly as provided; hashing happens in the
	// authentication layer that sits in front of the store.
	Password string `db:"password" json:"-" validate:"required,max=255"`
}

// NewUser creates a User ready for insertion.
// Returns an error wrapping ErrValidation if any field is invalid.
func NewUser(name, email, password string) (*User, error) {
	user := &User{
		Name:     name,
		Email:    email,
		Password: password,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks that the user has a name, a well-formed email and a password.
func (u *User) Validate() error {
	return validateStruct(u)
}
