// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type studentPayload struct {
	Email    string  `validate:"required,email"`
	CGPA     float64 `validate:"cgpa"`
	Semester int     `validate:"semester"`
}

func TestValidateStructCustomRules(t *testing.T) {
	valid := studentPayload{Email: "a@b.edu", CGPA: 7.5, Semester: 5}
	assert.NoError(t, ValidateStruct(valid))

	badCGPA := studentPayload{Email: "a@b.edu", CGPA: 11, Semester: 5}
	assert.Error(t, ValidateStruct(badCGPA))

	badSemester := studentPayload{Email: "a@b.edu", CGPA: 7.5, Semester: 9}
	assert.Error(t, ValidateStruct(badSemester))

	zeroSemester := studentPayload{Email: "a@b.edu", CGPA: 7.5, Semester: 0}
	assert.Error(t, ValidateStruct(zeroSemester))
}

func TestGetValidationErrors(t *testing.T) {
	err := ValidateStruct(studentPayload{Email: "not-an-email", CGPA: 12, Semester: 5})
	require.Error(t, err)

	errs := GetValidationErrors(err)
	require.Len(t, errs, 2)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "Invalid email format", errs[0].Message)
	assert.Equal(t, "CGPA must be between 0 and 10", errs[1].Message)
}

func TestValidationMessage(t *testing.T) {
	err := ValidateStruct(studentPayload{CGPA: 7.5, Semester: 5})
	require.Error(t, err)
	assert.Contains(t, ValidationMessage(err), "Email is required")

	assert.Equal(t, "invalid request payload", ValidationMessage(assert.AnError))
}
