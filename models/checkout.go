package models

// CheckoutType names the context a checkout was prepared from.
type CheckoutType string

const (
	CheckoutCart         CheckoutType = "cart"
	CheckoutDirectBuy    CheckoutType = "direct_buy"
	CheckoutSitter       CheckoutType = "sitter"
	CheckoutConsultation CheckoutType = "consultation"
	CheckoutDonation     CheckoutType = "donation"
	CheckoutDaycare      CheckoutType = "daycare"
)

// Payment types. Internal is the in-app wallet, the only method actually
// debited; external methods record the transaction without a gateway charge.
const (
	PaymentTypeInternal = "internal"
	PaymentTypeExternal = "external"
)

// TransactionState is the checkout state machine position.
type TransactionState string

const (
	TransactionIdle    TransactionState = ""
	TransactionLoading TransactionState = "loading"
	TransactionSuccess TransactionState = "success"
	TransactionFailed  TransactionState = "failed"
)
