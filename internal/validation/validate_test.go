package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/userhive/usersvc/internal/validation"
)

func TestValidateEmail_Valid(t *testing.T) {
	valid := []string{
		"test@example.com",
		"user@domain.org",
		"name@company.co.uk",
		"person+alias@site.com",
		"firstname.lastname@domain.io",
	}
	for _, email := range valid {
		assert.True(t, validation.ValidateEmail(email), "expected %q to be valid", email)
	}
}

func TestValidateEmail_Invalid(t *testing.T) {
	invalid := []string{
		"plainaddress",
		"@missingusername.com",
		"user@.com",
		"user name@domain.com",
		"user@domain",
		"user@domain.c",
		"user@.domain.com",
		"user@domain@domain.com",
		"user..double@domain.com",
		"",
	}
	for _, email := range invalid {
		assert.False(t, validation.ValidateEmail(email), "expected %q to be invalid", email)
	}
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, validation.ValidatePassword("Password123!"))

	// Each case is missing exactly one requirement.
	assert.False(t, validation.ValidatePassword("password"))
	assert.False(t, validation.ValidatePassword("Pass1!"))         // too short
	assert.False(t, validation.ValidatePassword("password123!"))   // no uppercase
	assert.False(t, validation.ValidatePassword("PASSWORD123!"))   // no lowercase
	assert.False(t, validation.ValidatePassword("Passwordabc!"))   // no digit
	assert.False(t, validation.ValidatePassword("Password1234"))   // no special char
	assert.False(t, validation.ValidatePassword(""))
}

func TestValidateName(t *testing.T) {
	assert.True(t, validation.ValidateName("John Doe"))
	assert.False(t, validation.ValidateName(""))
	assert.False(t, validation.ValidateName("   "))
}

func TestValidateUser_Valid(t *testing.T) {
	errs := validation.ValidateUser("John Doe", "john@example.com", "Password123!")
	assert.Empty(t, errs)
}

func TestValidateUser_EachFieldIndependently(t *testing.T) {
	tests := []struct {
		name      string
		userName  string
		email     string
		password  string
		wantField string
		wantMsg   string
	}{
		{"blank name", "", "john@example.com", "Password123!", "name", validation.MsgNameRequired},
		{"bad email", "John", "not-an-email", "Password123!", "email", validation.MsgInvalidEmail},
		{"weak password", "John", "john@example.com", "weak", "password", validation.MsgWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.ValidateUser(tt.userName, tt.email, tt.password)
			assert.Len(t, errs, 1, "exactly one field should fail")
			assert.Equal(t, tt.wantMsg, errs[tt.wantField])
		})
	}
}

func TestValidateUser_AllFieldsFail(t *testing.T) {
	errs := validation.ValidateUser("", "", "")
	assert.Len(t, errs, 3)
	assert.Equal(t, validation.MsgNameRequired, errs["name"])
	assert.Equal(t, validation.MsgInvalidEmail, errs["email"])
	assert.Equal(t, validation.MsgWeakPassword, errs["password"])
}

func TestValidateUser_Idempotent(t *testing.T) {
	first := validation.ValidateUser("John", "bad-email", "Password123!")
	second := validation.ValidateUser("John", "bad-email", "Password123!")
	assert.Equal(t, first, second)
}
