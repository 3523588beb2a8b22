package lavo

import "github.com/shopspring/decimal"

// PriceTable maps an asset-pair symbol to its latest price. A nil entry
// means the venue reported no price for the pair; callers must render it as
// unknown, never as zero.
type PriceTable map[string]*decimal.Decimal

// KYC status values reported by the service.
const (
	KYCStatusNone     = "none"
	KYCStatusPending  = "pending"
	KYCStatusApproved = "approved"
)

// Order sides accepted by the trade endpoint.
const (
	SideBuy  = "buy"
	SideSell = "sell"
)

// User is the profile portion of an account snapshot.
type User struct {
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	KYCStatus string `json:"kyc_status"`
}

// Wallet holds a single asset balance with its deposit address.
type Wallet struct {
	ID      string          `json:"_id"`
	Asset   string          `json:"asset"`
	Balance decimal.Decimal `json:"balance"`
	Address string          `json:"address"`
}

// AccountSnapshot is the authoritative account state as of the last fetch.
// It is replaced wholesale on every refresh; fields absent in the response
// decode to their zero values and are treated as absent by callers.
type AccountSnapshot struct {
	User    User     `json:"user"`
	Wallets []Wallet `json:"wallets"`
}

// KYCRequest is the document submission payload.
type KYCRequest struct {
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
}

// DepositRequest credits an asset balance.
type DepositRequest struct {
	Asset  string          `json:"asset"`
	Amount decimal.Decimal `json:"amount"`
}

// OrderRequest is a market order submission.
type OrderRequest struct {
	Side   string          `json:"side"`
	Pair   string          `json:"pair"`
	Amount decimal.Decimal `json:"amount"`
}

// OrderResult carries the rejection detail for a placed order. An empty
// Detail means the order was accepted; the HTTP status is not inspected.
type OrderResult struct {
	Detail string `json:"detail"`
}

// Rejected reports whether the service refused the order.
func (r *OrderResult) Rejected() bool {
	return r != nil && r.Detail != ""
}
