//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/repository"
	"hotel-booking-core/internal/infra/repository/converter"
	sqlc "hotel-booking-core/internal/infra/sqlc/generated"
	"hotel-booking-core/internal/pkg/pgconv"
	repositorymock "hotel-booking-core/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func availabilityRow(hotelID uuid.UUID, date time.Time, maxRooms, available int32) sqlc.HotelAvailability {
	return sqlc.HotelAvailability{
		HotelID:         hotelID,
		Date:            pgconv.DateToPgtype(date),
		MaxRooms:        maxRooms,
		AvailableRooms:  available,
		SurgeMultiplier: pgconv.ScaledToNumeric(10000, converter.SurgeScale),
		UpdatedAt:       pgconv.TimeToPgtype(date),
	}
}

// =============================================================================
// LockWindow Tests
// =============================================================================

func TestInventoryRepository_LockWindow(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()
	span, err := stay.ParseRange("2025-07-01", "2025-07-03")
	require.NoError(t, err)
	window := sqlc.LockAvailabilityRangeParams{
		HotelID:  hotelID,
		FromDate: pgconv.DateToPgtype(span.CheckIn()),
		ToDate:   pgconv.DateToPgtype(span.CheckOut()),
	}

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockInventoryWriteQueries)
		expectKind infra.RepositoryErrorKind
		expectErr  bool
	}{
		{
			name: "success: materializes then locks in one span",
			setupMock: func(mock *repositorymock.MockInventoryWriteQueries) {
				gomock.InOrder(
					mock.EXPECT().EnsureAvailabilityRows(ctx, gomock.Any(), sqlc.EnsureAvailabilityRowsParams{
						HotelID:  hotelID,
						FromDate: window.FromDate,
						ToDate:   window.ToDate,
					}).Return(nil),
					mock.EXPECT().LockAvailabilityRange(ctx, gomock.Any(), window).Return([]sqlc.HotelAvailability{
						availabilityRow(hotelID, span.CheckIn(), 10, 4),
						availabilityRow(hotelID, span.CheckIn().AddDate(0, 0, 1), 10, 2),
					}, nil),
				)
			},
		},
		{
			name: "error: materialize fails",
			setupMock: func(mock *repositorymock.MockInventoryWriteQueries) {
				mock.EXPECT().EnsureAvailabilityRows(ctx, gomock.Any(), gomock.Any()).
					Return(&pgconn.PgError{Code: "23503", Message: "hotel missing"})
			},
			expectErr:  true,
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name: "error: lock fails",
			setupMock: func(mock *repositorymock.MockInventoryWriteQueries) {
				mock.EXPECT().EnsureAvailabilityRows(ctx, gomock.Any(), gomock.Any()).Return(nil)
				mock.EXPECT().LockAvailabilityRange(ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("lock timeout"))
			},
			expectErr:  true,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockInventoryWriteQueries(ctrl)
			tc.setupMock(mockQueries)

			w, err := repository.NewInventoryRepository(mockQueries, nil).LockWindow(ctx, hotelID, span)
			if tc.expectErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind %s, got %v", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, w)
			assert.Len(t, w.Days(), 2)
			assert.NoError(t, w.Available(span, 2))
			assert.Error(t, w.Available(span, 3))
		})
	}
}

// =============================================================================
// SaveDays Tests
// =============================================================================

func TestInventoryRepository_SaveDays(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()
	date := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	surge, err := inventory.NewSurge(15000)
	require.NoError(t, err)

	t.Run("writes every day and marks it stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockInventoryWriteQueries(ctrl)

		days := []*inventory.Day{
			inventory.ReconstructDay(hotelID, date, 10, 3, nil, surge),
			inventory.ReconstructDay(hotelID, date.AddDate(0, 0, 1), 10, 5, nil, surge),
		}
		for _, d := range days {
			mockQueries.EXPECT().UpdateAvailability(ctx, gomock.Any(), converter.DayToUpdateParams(d)).Return(nil)
		}

		require.NoError(t, repository.NewInventoryRepository(mockQueries, nil).SaveDays(ctx, days))
		for _, d := range days {
			assert.True(t, d.IsStored())
		}
	})

	t.Run("check violation stops the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockInventoryWriteQueries(ctrl)
		mockQueries.EXPECT().UpdateAvailability(ctx, gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23514", Message: "hotel_availability_rooms_bounds"}).Times(1)

		days := []*inventory.Day{
			inventory.ReconstructDay(hotelID, date, 10, 3, nil, surge),
			inventory.ReconstructDay(hotelID, date.AddDate(0, 0, 1), 10, 5, nil, surge),
		}
		err := repository.NewInventoryRepository(mockQueries, nil).SaveDays(ctx, days)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindCheckViolated))
	})
}
