package commands

import (
	"context"

	"hotel-booking-core/internal/domain/group"
	"hotel-booking-core/internal/domain/money"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/queries"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrGroupRequestNotFound = errs.New("group booking request not found")
	ErrAdminOnly            = errs.New("operation requires admin role")
)

type SubmitGroupRequestInput struct {
	HotelID              uuid.UUID
	GroupName            string
	GroupSize            int
	Category             string
	CheckIn              string
	CheckOut             string
	RoomsRequired        int
	SpecialRequirements  *string
	EstimatedBudgetCents *int64
}

// GroupCommands manages group inquiries. They never reserve inventory.
type GroupCommands interface {
	Submit(ctx context.Context, actor shared.Actor, in SubmitGroupRequestInput) (*queries.GroupRequestView, error)
	UpdateStatus(ctx context.Context, actor shared.Actor, id uuid.UUID, status string, adminNotes *string) (*queries.GroupRequestView, error)
}

type groupCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewGroupCommands(uow shared.UnitOfWork, clk clock.Clock) GroupCommands {
	return &groupCommandsImpl{uow: uow, clock: clk}
}

func (c *groupCommandsImpl) Submit(ctx context.Context, actor shared.Actor, in SubmitGroupRequestInput) (_ *queries.GroupRequestView, err error) {
	ctx, span := startSpan(ctx, "GroupCommands.Submit",
		attribute.String("hotel.id", in.HotelID.String()),
		attribute.Int("group.size", in.GroupSize))
	defer endSpan(span, &err)

	r, err := stay.ParseRange(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, shared.Classify(err)
	}
	category, err := group.NewCategory(in.Category)
	if err != nil {
		return nil, shared.Classify(err)
	}
	var budget *money.Money
	if in.EstimatedBudgetCents != nil {
		m, err := money.New(*in.EstimatedBudgetCents)
		if err != nil {
			return nil, shared.Classify(err)
		}
		budget = &m
	}

	var view *queries.GroupRequestView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		h, err := tx.Reads().HotelByID(ctx, in.HotelID)
		if err != nil {
			return hotelLookupErr(err)
		}
		if err := h.EnsureBookable(); err != nil {
			return err
		}

		req, err := group.NewRequest(c.clock, group.Draft{
			HotelID:             in.HotelID,
			OrganizerID:         actor.UserID,
			Name:                in.GroupName,
			Size:                in.GroupSize,
			Category:            category,
			Stay:                r,
			RoomsRequired:       in.RoomsRequired,
			SpecialRequirements: in.SpecialRequirements,
			EstimatedBudget:     budget,
		})
		if err != nil {
			return err
		}
		if err := tx.Groups().Create(ctx, req); err != nil {
			return err
		}
		if err := emit(ctx, tx, EventGroupRequestSubmitted, TopicGroupRequest, newGroupRequestEvent(req, req.CreatedAt()), req.CreatedAt()); err != nil {
			return err
		}
		view = queries.NewGroupRequestView(req)
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return view, nil
}

func (c *groupCommandsImpl) UpdateStatus(ctx context.Context, actor shared.Actor, id uuid.UUID, status string, adminNotes *string) (_ *queries.GroupRequestView, err error) {
	ctx, span := startSpan(ctx, "GroupCommands.UpdateStatus",
		attribute.String("group.request_id", id.String()),
		attribute.String("group.status", status))
	defer endSpan(span, &err)

	if !actor.IsAdmin() {
		return nil, errs.Mark(ErrAdminOnly, errs.ErrForbidden)
	}
	next, err := group.NewStatus(status)
	if err != nil {
		return nil, shared.Classify(err)
	}

	var view *queries.GroupRequestView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Groups().FindForUpdate(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return shared.NotFound(ErrGroupRequestNotFound)
			}
			return err
		}
		if err := req.UpdateStatus(c.clock, next, adminNotes); err != nil {
			return err
		}
		if err := tx.Groups().Update(ctx, req); err != nil {
			return err
		}
		if err := emit(ctx, tx, EventGroupRequestUpdated, TopicGroupRequest, newGroupRequestEvent(req, req.UpdatedAt()), req.UpdatedAt()); err != nil {
			return err
		}
		view = queries.NewGroupRequestView(req)
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return view, nil
}
