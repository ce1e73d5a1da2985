package userservice

import (
	"regexp"

	"github.com/ayumukasuga/bloglist/internal/common"
)

var (
	emailRX    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRX = regexp.MustCompile("^[a-zA-Z0-9]+$")

	// passwordClassRXs are the character classes a password must contain at
	// least one of.
	passwordClassRXs = []*regexp.Regexp{
		regexp.MustCompile("[A-Z]"),
		regexp.MustCompile("[a-z]"),
		regexp.MustCompile("[0-9]"),
		regexp.MustCompile(`[#?!@$%^&*_\\-]`),
	}
)

func validateUsername(v *common.Validator, username string) {
	v.Check(username != "", "username", "must be provided")
	v.Check(v.LengthBetween(username, 3, 25), "username", "must be between 3 and 25 characters long")
	v.Check(v.Matches(username, usernameRX), "username", "must only contain letters and numbers")
}

func validateName(v *common.Validator, name string) {
	v.Check(v.LengthBetween(name, 0, 100), "name", "must be at most 100 characters long")
}

func validateEmail(v *common.Validator, email string) {
	v.Check(email != "", "email", "must be provided")
	v.Check(v.Matches(email, emailRX), "email", "must be a valid email address")
}

func validatePassword(v *common.Validator, password string) {
	v.Check(password != "", "password", "must be provided")

	ok := v.LengthBetween(password, 8, 72)
	for _, rx := range passwordClassRXs {
		ok = ok && rx.MatchString(password)
	}
	v.Check(ok, "password", "must be between 8 and 72 characters long and contain at least one uppercase letter, one lowercase letter, one number, and one symbol")
}

func validateInt(v *common.Validator, num int, name string) {
	v.Check(num > 0, name, "must be greater than zero")
}
