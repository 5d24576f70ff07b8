package services

import (
	"errors"

	"github.com/dmitrijs2005/adminconsole/internal/client/otp"
	"github.com/go-playground/validator/v10"
)

const (
	msgUsernameRequired = "username is required"
	msgPasswordRequired = "password is required"
	msgPasswordTooShort = "password must be at least 4 characters"
	msgCodeIncomplete   = "enter the full 6-digit code"
)

type credentials struct {
	Username string `validate:"required"`
	Password []byte `validate:"required,min=4"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateCredentials expects a trimmed username.
func validateCredentials(username string, password []byte) error {
	err := validate.Struct(credentials{Username: username, Password: password})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "Username":
			fields["username"] = msgUsernameRequired
		case "Password":
			if len(password) == 0 {
				fields["password"] = msgPasswordRequired
			} else {
				fields["password"] = msgPasswordTooShort
			}
		}
	}
	return &ValidationError{Fields: fields}
}

func validateCode(code string) error {
	if !otp.Valid(code) {
		return &ValidationError{Fields: map[string]string{"code": msgCodeIncomplete}}
	}
	return nil
}
