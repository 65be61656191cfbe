package domain

import (
	"time"
	"unicode"
)

// Role is the authorization role attached to a user account.
type Role string

// Roles recognized by the platform. They are seeded into the roles table at
// startup; the users table carries a foreign key onto them.
const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// Valid reports whether the role is one of the seeded roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User validation errors. Each unwraps to ErrValidation.
var (
	ErrEmptyEmail          = validationError("email cannot be empty")
	ErrInvalidEmailFormat  = validationError("invalid email address format")
	ErrEmptyPassword       = validationError("password cannot be empty")
	ErrWeakPassword        = validationError("password must include at least 8 characters with one uppercase letter, one lowercase letter, one digit and one special character")
	ErrEmptyUsername       = validationError("user name cannot be empty")
	ErrUsernameTooLong     = validationError("user name cannot exceed 48 characters")
	ErrInvalidMobileNumber = validationError("mobile number must be 10 digits")
	ErrInvalidRole         = validationError("user role must be Admin or User")
	ErrEmptyHashedPassword = validationError("hashed password cannot be empty")
)

// User represents a registered account on the platform.
type User struct {
	ID             int64     `json:"user_id"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext password, used only during registration
	HashedPassword string    `json:"-"` // Never exposed in JSON
	Username       string    `json:"username"`
	MobileNumber   string    `json:"mobile_number"`
	Role           Role      `json:"user_role"`
	SecretKey      string    `json:"-"` // Required only during admin registration
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a User from registration input and validates it.
// The caller is responsible for hashing the password before storage; the
// plaintext is held only transiently on the struct.
func NewUser(email, password, username, mobileNumber string, role Role) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		Email:        email,
		Password:     password,
		Username:     username,
		MobileNumber: mobileNumber,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmailFormat(u.Email) {
		return ErrInvalidEmailFormat
	}

	// During registration the plaintext password must meet the complexity
	// policy; existing records loaded from storage carry only the hash.
	if u.Password != "" {
		if !validPasswordComplexity(u.Password) {
			return ErrWeakPassword
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	if u.Username == "" {
		return ErrEmptyUsername
	}
	if len(u.Username) > 48 {
		return ErrUsernameTooLong
	}

	if !validMobileNumber(u.MobileNumber) {
		return ErrInvalidMobileNumber
	}

	if !u.Role.Valid() {
		return ErrInvalidRole
	}

	return nil
}

// validEmailFormat performs basic validation of email format: a single '@'
// with a non-empty local part and a dotted domain.
func validEmailFormat(email string) bool {
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			atIndex = i
			break
		}
	}

	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domain := email[atIndex+1:]
	if len(domain) < 3 {
		return false
	}

	dotIndex := -1
	for i, char := range domain {
		if char == '.' {
			dotIndex = i
			break
		}
	}

	return dotIndex > 0 && dotIndex < len(domain)-1
}

// validPasswordComplexity enforces the registration password policy:
// at least 8 characters including one uppercase letter, one lowercase letter,
// one digit and one special character.
func validPasswordComplexity(password string) bool {
	if len(password) < 8 {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}

	return upper && lower && digit && special
}

// validMobileNumber requires exactly 10 digits.
func validMobileNumber(mobile string) bool {
	if len(mobile) != 10 {
		return false
	}
	for _, r := range mobile {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
