package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Role(1), RoleAdmin)
	assert.Equal(t, Role(2), RoleUser)
	assert.Equal(t, Role(3), RoleHR)

	for _, r := range AllRoles {
		assert.True(t, r.Valid())
		parsed, err := ParseRole(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	assert.False(t, Role(4).Valid())
	_, err := ParseRole("superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)

	infos := RoleInfos()
	require.Len(t, infos, 3)
	assert.Equal(t, "admin", infos[0].Name)
}

func TestParseID(t *testing.T) {
	t.Parallel()

	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, in := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := ParseID(in)
		assert.ErrorIs(t, err, ErrInvalidID, in)
	}
}

func TestNewJobValidate(t *testing.T) {
	t.Parallel()

	valid := NewJob{Name: "Backend engineer", CompanyID: 1, Quantity: 2, Salary: 1000}
	assert.NoError(t, valid.Validate())

	noName := valid
	noName.Name = ""
	assert.ErrorIs(t, noName.Validate(), ErrEmptyName)

	noCompany := valid
	noCompany.CompanyID = 0
	assert.ErrorIs(t, noCompany.Validate(), ErrMissingCompany)

	negative := valid
	negative.Salary = -1
	assert.ErrorIs(t, negative.Validate(), ErrNegativeNumber)
}

func TestOwnership(t *testing.T) {
	t.Parallel()

	job := &Job{ID: 1, CompanyID: 7}
	assert.True(t, job.OwnedBy(7))
	assert.False(t, job.OwnedBy(8))
	assert.False(t, (&Job{ID: 2}).OwnedBy(0), "a user without a company owns nothing")

	resume := &Resume{ID: 1, UserID: 3}
	assert.True(t, resume.OwnedBy(3))
	assert.False(t, resume.OwnedBy(4))
}

func TestNewResumeAndCompanyValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, NewResume{UserID: 1, Email: "u1@x.com", URL: "https://cv.example.com/u1"}.Validate())
	assert.ErrorIs(t, NewResume{Email: "u1@x.com", URL: "x"}.Validate(), ErrMissingOwner)
	assert.ErrorIs(t, NewResume{UserID: 1, Email: "u1@x.com"}.Validate(), ErrEmptyURL)

	assert.NoError(t, NewCompany{Name: "Acme", Email: "a@x.com"}.Validate())
	assert.ErrorIs(t, NewCompany{Email: "a@x.com"}.Validate(), ErrEmptyName)
}
