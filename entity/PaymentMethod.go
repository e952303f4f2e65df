package entity

// PaymentMethod is recorded on the order, not settled.
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cod"
	PaymentOnline         PaymentMethod = "online"
)

func (p PaymentMethod) Valid() bool {
	return p == PaymentCashOnDelivery || p == PaymentOnline
}

func (p PaymentMethod) String() string { return string(p) }
