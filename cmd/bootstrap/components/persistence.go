package components

import (
	"hotel-booking-core/internal/infra/readstore"
	"hotel-booking-core/internal/infra/repository"
	sqlc "hotel-booking-core/internal/infra/sqlc/generated"
	"hotel-booking-core/internal/infra/uow"
	"hotel-booking-core/internal/usecase/queries"
	"hotel-booking-core/internal/usecase/shared"
	"hotel-booking-core/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PostgresPersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Hotel
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.HotelViewQueries)),
		),
		fx.Annotate(
			readstore.NewHotelReadStore,
			fx.As(new(queries.HotelReadStore)),
		),
		// Inventory
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.InventoryViewQueries)),
		),
		fx.Annotate(
			readstore.NewInventoryReadStore,
			fx.As(new(queries.InventoryReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Refund
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RefundViewQueries)),
		),
		fx.Annotate(
			readstore.NewRefundReadStore,
			fx.As(new(queries.RefundReadStore)),
		),
		// Group
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.GroupViewQueries)),
		),
		fx.Annotate(
			readstore.NewGroupReadStore,
			fx.As(new(queries.GroupReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork builds the transactional repositories itself
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Outbox
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.OutboxQueries)),
		),
		fx.Annotate(
			NewTxBeginner,
			fx.As(new(repository.TxBeginner)),
		),
		fx.Annotate(
			repository.NewOutboxStore,
			fx.As(new(worker.Store)),
		),
		// Idempotency key purge
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.IdempotencyWriteQueries)),
		),
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(new(worker.KeyPurger)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewTxBeginner(pool *pgxpool.Pool) *pgxpool.Pool {
	return pool
}
