package booking

import (
	"net/mail"
	"strings"
)

const (
	MaxGuestNameLength       = 255
	MaxSpecialRequestsLength = 2000
)

type GuestInfo struct {
	name            string
	email           string
	phone           *string
	specialRequests *string
}

func NewGuestInfo(name, email string, phone, specialRequests *string) (GuestInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxGuestNameLength {
		return GuestInfo{}, ErrInvalidGuestName
	}
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return GuestInfo{}, ErrInvalidGuestEmail
	}
	if specialRequests != nil && len(*specialRequests) > MaxSpecialRequestsLength {
		return GuestInfo{}, ErrSpecialRequestsTooLong
	}
	return GuestInfo{
		name:            name,
		email:           email,
		phone:           phone,
		specialRequests: specialRequests,
	}, nil
}

func ReconstructGuestInfo(name, email string, phone, specialRequests *string) GuestInfo {
	return GuestInfo{name: name, email: email, phone: phone, specialRequests: specialRequests}
}

func (g GuestInfo) Name() string             { return g.name }
func (g GuestInfo) Email() string            { return g.email }
func (g GuestInfo) Phone() *string           { return g.phone }
func (g GuestInfo) SpecialRequests() *string { return g.specialRequests }
