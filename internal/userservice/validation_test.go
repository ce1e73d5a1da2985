package userservice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayumukasuga/bloglist/internal/common"
)

func TestValidateUsername(t *testing.T) {
	testCases := []struct {
		name     string
		username string
		valid    bool
	}{
		{name: "empty", username: "", valid: false},
		{name: "too short", username: "ab", valid: false},
		{name: "minimum length", username: "abc", valid: true},
		{name: "maximum length", username: strings.Repeat("a", 25), valid: true},
		{name: "too long", username: strings.Repeat("a", 26), valid: false},
		{name: "letters and digits", username: "valid123", valid: true},
		{name: "symbol", username: "invalid!", valid: false},
		{name: "space", username: "invalid username", valid: false},
		{name: "hyphen", username: "invalid-username", valid: false},
		{name: "underscore", username: "invalid_username", valid: false},
		{name: "dot", username: "invalid.username", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validateUsername(v, tc.username)
			assert.Equal(t, tc.valid, v.Valid(), "errors: %v", v.Errors)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	testCases := []struct {
		name  string
		email string
		valid bool
	}{
		{name: "empty", email: "", valid: false},
		{name: "no at sign", email: "a", valid: false},
		{name: "no domain", email: "a@", valid: false},
		{name: "no tld", email: "a@b", valid: false},
		{name: "single letter tld", email: "a@b.c", valid: false},
		{name: "plain address", email: "a@b.com", valid: true},
		{name: "dotted local and domain", email: "first.last@example.co.uk", valid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validateEmail(v, tc.email)
			assert.Equal(t, tc.valid, v.Valid(), "errors: %v", v.Errors)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	testCases := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "empty", password: "", valid: false},
		{name: "too short", password: "short1!", valid: false},
		{name: "no uppercase", password: "alllowercase1!", valid: false},
		{name: "no lowercase", password: "ALLUPPERCASE1!", valid: false},
		{name: "no number", password: "NoNumbers!", valid: false},
		{name: "no symbol", password: "NoSymbols123", valid: false},
		{name: "all classes", password: "Valid123!", valid: true},
		{name: "hash symbol", password: "An0ther#Good1", valid: true},
		{name: "too long", password: "Aa1!" + strings.Repeat("a", 69), valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validatePassword(v, tc.password)
			assert.Equal(t, tc.valid, v.Valid(), "errors: %v", v.Errors)
		})
	}
}

func TestValidateName(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "empty", input: "", valid: true},
		{name: "short", input: "Ada Lovelace", valid: true},
		{name: "maximum length", input: strings.Repeat("a", 100), valid: true},
		{name: "too long", input: strings.Repeat("a", 101), valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validateName(v, tc.input)
			assert.Equal(t, tc.valid, v.Valid(), "errors: %v", v.Errors)
		})
	}
}
