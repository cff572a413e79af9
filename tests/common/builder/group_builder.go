//go:build unit || e2e

package builder

import (
	"hotel-booking-core/internal/domain/group"
	"hotel-booking-core/internal/domain/stay"
	reqdto "hotel-booking-core/internal/handler/dto/request"
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type GroupBuilder struct {
	HotelID       uuid.UUID
	OrganizerID   uuid.UUID
	Name          string
	Size          int
	Category      string
	CheckIn       string
	CheckOut      string
	RoomsRequired int
	Requirements  *string
	Clock         clock.Clock
}

func NewGroupBuilder() *GroupBuilder {
	return &GroupBuilder{
		HotelID:       uuid.New(),
		OrganizerID:   uuid.New(),
		Name:          "Acme Offsite",
		Size:          25,
		Category:      string(group.CategoryCorporate),
		CheckIn:       "2025-09-10",
		CheckOut:      "2025-09-13",
		RoomsRequired: 12,
		Clock:         clock.NewMockClock(BaseTime),
	}
}

func (g *GroupBuilder) With(mutate func(*GroupBuilder)) *GroupBuilder {
	mutate(g)
	return g
}

func (g *GroupBuilder) BuildDomain() (*group.Request, error) {
	r, err := stay.ParseRange(g.CheckIn, g.CheckOut)
	if err != nil {
		return nil, err
	}
	return group.NewRequest(g.Clock, group.Draft{
		HotelID:             g.HotelID,
		OrganizerID:         g.OrganizerID,
		Name:                g.Name,
		Size:                g.Size,
		Category:            group.Category(g.Category),
		Stay:                r,
		RoomsRequired:       g.RoomsRequired,
		SpecialRequirements: g.Requirements,
	})
}

func (g *GroupBuilder) BuildSubmitRequestDTO() reqdto.SubmitGroupRequest {
	return reqdto.SubmitGroupRequest{
		HotelID:             g.HotelID,
		GroupName:           g.Name,
		GroupSize:           g.Size,
		Category:            g.Category,
		CheckIn:             g.CheckIn,
		CheckOut:            g.CheckOut,
		RoomsRequired:       g.RoomsRequired,
		SpecialRequirements: g.Requirements,
	}
}

func (g *GroupBuilder) BuildQuoteRequestDTO() reqdto.GroupQuoteRequest {
	return reqdto.GroupQuoteRequest{
		HotelID:       g.HotelID,
		GroupSize:     g.Size,
		Category:      g.Category,
		CheckIn:       g.CheckIn,
		CheckOut:      g.CheckOut,
		RoomsRequired: g.RoomsRequired,
	}
}

func (g *GroupBuilder) BuildView(status group.Status) *queries.GroupRequestView {
	now := g.Clock.Now()
	return &queries.GroupRequestView{
		ID:                  uuid.New(),
		HotelID:             g.HotelID,
		OrganizerID:         g.OrganizerID,
		Name:                g.Name,
		Size:                g.Size,
		Category:            g.Category,
		CheckIn:             g.CheckIn,
		CheckOut:            g.CheckOut,
		RoomsRequired:       g.RoomsRequired,
		SpecialRequirements: g.Requirements,
		Status:              string(status),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

func (g *GroupBuilder) WithSize(n int) *GroupBuilder {
	g.Size = n
	return g
}

func (g *GroupBuilder) WithName(name string) *GroupBuilder {
	g.Name = name
	return g
}

func (g *GroupBuilder) WithCategory(c string) *GroupBuilder {
	g.Category = c
	return g
}

func (g *GroupBuilder) WithRooms(n int) *GroupBuilder {
	g.RoomsRequired = n
	return g
}

func (g *GroupBuilder) WithStay(checkIn, checkOut string) *GroupBuilder {
	g.CheckIn = checkIn
	g.CheckOut = checkOut
	return g
}
