//go:build unit

package group_test

import (
	"strings"
	"testing"
	"time"

	"hotel-booking-core/internal/domain/group"
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.GroupBuilder)
	errIs  error
}

func TestNewRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewGroupBuilder().BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, group.StatusPending, actual.Status())
		assert.Equal(t, "Acme Offsite", actual.Name())
		assert.Equal(t, 3, actual.Stay().Nights())
		assert.Nil(t, actual.AdminNotes())
	})

	runCases(t, []testCase{
		{name: "minimum size", mutate: func(b *builder.GroupBuilder) { b.WithSize(group.MinGroupSize) }},
		{name: "below minimum size", mutate: func(b *builder.GroupBuilder) { b.WithSize(group.MinGroupSize - 1) }, errIs: group.ErrGroupTooSmall},
		{name: "blank name", mutate: func(b *builder.GroupBuilder) { b.WithName(" ") }, errIs: group.ErrInvalidGroupName},
		{name: "name too long", mutate: func(b *builder.GroupBuilder) { b.WithName(strings.Repeat("x", 256)) }, errIs: group.ErrInvalidGroupName},
		{name: "unknown category", mutate: func(b *builder.GroupBuilder) { b.WithCategory("retreat") }, errIs: group.ErrInvalidCategory},
		{name: "zero rooms", mutate: func(b *builder.GroupBuilder) { b.WithRooms(0) }, errIs: group.ErrInvalidRooms},
	})
}

func TestUpdateStatus(t *testing.T) {
	clk := clock.NewMockClock(builder.BaseTime)
	notes := "deposit received"

	t.Run("workflow", func(t *testing.T) {
		r, err := builder.NewGroupBuilder().BuildDomain()
		require.NoError(t, err)

		clk.Add(time.Hour)
		require.NoError(t, r.UpdateStatus(clk, group.StatusQuoted, nil))
		require.NoError(t, r.UpdateStatus(clk, group.StatusConfirmed, &notes))
		require.NoError(t, r.UpdateStatus(clk, group.StatusCompleted, nil))

		assert.Equal(t, group.StatusCompleted, r.Status())
		require.NotNil(t, r.AdminNotes())
		assert.Equal(t, notes, *r.AdminNotes())
		assert.Equal(t, clk.Now(), r.UpdatedAt())
	})

	t.Run("terminal states are final", func(t *testing.T) {
		r, err := builder.NewGroupBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, r.UpdateStatus(clk, group.StatusCancelled, nil))

		require.ErrorIs(t, r.UpdateStatus(clk, group.StatusPending, nil), group.ErrInvalidTransition)
		require.ErrorIs(t, r.UpdateStatus(clk, group.StatusConfirmed, nil), group.ErrInvalidTransition)
	})

	t.Run("quoted cannot go back to pending", func(t *testing.T) {
		assert.False(t, group.StatusQuoted.CanTransitionTo(group.StatusPending))
		assert.True(t, group.StatusPending.CanTransitionTo(group.StatusConfirmed))
	})

	t.Run("unknown status", func(t *testing.T) {
		r, err := builder.NewGroupBuilder().BuildDomain()
		require.NoError(t, err)
		require.ErrorIs(t, r.UpdateStatus(clk, "archived", nil), group.ErrInvalidStatus)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewGroupBuilder().With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
