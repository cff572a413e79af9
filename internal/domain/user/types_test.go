//go:build unit

package user_test

import (
	"testing"

	"hotel-booking-core/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	for _, s := range []string{"guest", "staff", "admin"} {
		r, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, r.String())
	}

	_, err := user.NewRole("operator")
	require.ErrorIs(t, err, user.ErrInvalidRole)

	assert.True(t, user.RoleAdmin.AtLeast(user.RoleStaff))
	assert.True(t, user.RoleStaff.AtLeast(user.RoleStaff))
	assert.False(t, user.RoleGuest.AtLeast(user.RoleStaff))
	assert.False(t, user.Role("root").AtLeast(user.RoleGuest))
}
