package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

var statusTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// failed -> paid covers a guest retrying checkout.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending: {PaymentPaid, PaymentFailed},
	PaymentFailed:  {PaymentPaid},
	PaymentPaid:    {PaymentRefunded},
}

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	default:
		return false
	}
}

func (p PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range paymentTransitions[p] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentOutcome is what the payment collaborator reports back.
type PaymentOutcome string

const (
	OutcomePaid   PaymentOutcome = "paid"
	OutcomeFailed PaymentOutcome = "failed"
)

func NewPaymentOutcome(s string) (PaymentOutcome, error) {
	o := PaymentOutcome(s)
	if o != OutcomePaid && o != OutcomeFailed {
		return "", ErrInvalidPaymentOutcome
	}
	return o, nil
}

func (o PaymentOutcome) paymentStatus() PaymentStatus {
	if o == OutcomePaid {
		return PaymentPaid
	}
	return PaymentFailed
}

type ModificationType string

const (
	ModificationDateChange ModificationType = "date_change"
	ModificationGuestCount ModificationType = "guest_count"
	ModificationRoomCount  ModificationType = "room_count"
)

func (t ModificationType) IsValid() bool {
	switch t {
	case ModificationDateChange, ModificationGuestCount, ModificationRoomCount:
		return true
	default:
		return false
	}
}

// MovesInventory reports whether the change touches the inventory ledger.
func (t ModificationType) MovesInventory() bool {
	return t == ModificationDateChange || t == ModificationRoomCount
}

const ModificationStatusApproved = "approved"
