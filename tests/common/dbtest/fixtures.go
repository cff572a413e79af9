//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestHotel(t *testing.T, db DBLike, name string, pricePerNightCents int64) uuid.UUID {
	t.Helper()

	hotelID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO hotels (id, name, price_per_night_cents) VALUES ($1, $2, $3)",
		hotelID, name, pricePerNightCents)
	require.NoError(t, err)

	return hotelID
}

// SeedAvailability writes one ledger row per night in [from, to) with the given capacity.
func SeedAvailability(t *testing.T, db DBLike, hotelID uuid.UUID, from, to string, maxRooms int) {
	t.Helper()

	start, err := time.Parse(time.DateOnly, from)
	require.NoError(t, err)
	end, err := time.Parse(time.DateOnly, to)
	require.NoError(t, err)

	ctx := context.Background()
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		_, err := db.Exec(ctx, `
			INSERT INTO hotel_availability (hotel_id, date, max_rooms, available_rooms)
			VALUES ($1, $2, $3, $3)
			ON CONFLICT (hotel_id, date) DO UPDATE
			SET max_rooms = EXCLUDED.max_rooms, available_rooms = EXCLUDED.available_rooms`,
			hotelID, d, maxRooms)
		require.NoError(t, err)
	}
}

func AvailableRooms(t *testing.T, db DBLike, hotelID uuid.UUID, date string) int {
	t.Helper()

	var rooms int
	err := db.QueryRow(context.Background(),
		"SELECT available_rooms FROM hotel_availability WHERE hotel_id = $1 AND date = $2",
		hotelID, date).Scan(&rooms)
	require.NoError(t, err)

	return rooms
}

func CountQueuedJobs(t *testing.T, db DBLike, kind string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE kind = $1 AND status = 'queued'", kind).Scan(&n)
	require.NoError(t, err)

	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
