// Package account holds the login and registration forms. Neither form
// authenticates anyone or stores anything: a valid submission only decides
// where the browser goes next.
package account

import (
	"errors"
	"net/url"
	"strings"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrMissingField       = errors.New("required field is empty")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrTermsNotAgreed     = errors.New("terms not agreed")
)

// Alert returns the blocking message shown to the user for a validation
// error.
func Alert(err error) string {
	switch {
	case errors.Is(err, ErrPasswordMismatch):
		return "Passwords do not match"
	case errors.Is(err, ErrTermsNotAgreed):
		return "Please agree to the terms and conditions"
	case errors.Is(err, ErrMissingCredentials):
		return "Please enter your email and password"
	case errors.Is(err, ErrMissingField):
		return "Please fill in all required fields"
	case err == nil:
		return ""
	default:
		return "Something went wrong"
	}
}

// LoginForm is the sign-in form.
type LoginForm struct {
	Email    string
	Password string
	Remember bool
}

// ParseLogin reads a submitted login form.
func ParseLogin(v url.Values) LoginForm {
	return LoginForm{
		Email:    strings.TrimSpace(v.Get("email")),
		Password: v.Get("password"),
		Remember: isChecked(v.Get("remember")),
	}
}

// Validate accepts any non-empty email/password pair. There is no
// credential check.
func (f LoginForm) Validate() error {
	if f.Email == "" || f.Password == "" {
		return ErrMissingCredentials
	}
	return nil
}

// RegistrationForm is the sign-up form.
type RegistrationForm struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	Organization    string
	AgreeToTerms    bool
}

// ParseRegistration reads a submitted registration form.
func ParseRegistration(v url.Values) RegistrationForm {
	return RegistrationForm{
		FirstName:       strings.TrimSpace(v.Get("firstName")),
		LastName:        strings.TrimSpace(v.Get("lastName")),
		Email:           strings.TrimSpace(v.Get("email")),
		Password:        v.Get("password"),
		ConfirmPassword: v.Get("confirmPassword"),
		Organization:    strings.TrimSpace(v.Get("organization")),
		AgreeToTerms:    isChecked(v.Get("agreeToTerms")),
	}
}

// Validate runs the submit-time checks in order: required fields, password
// confirmation, then terms agreement. Organization is optional.
func (f RegistrationForm) Validate() error {
	if f.FirstName == "" || f.LastName == "" || f.Email == "" || f.Password == "" || f.ConfirmPassword == "" {
		return ErrMissingField
	}
	if f.Password != f.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if !f.AgreeToTerms {
		return ErrTermsNotAgreed
	}
	return nil
}

// PasswordsMatch reports whether the confirmation has been typed and agrees
// with the password.
func (f RegistrationForm) PasswordsMatch() bool {
	return f.ConfirmPassword != "" && f.Password == f.ConfirmPassword
}

func isChecked(v string) bool {
	switch strings.ToLower(v) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
