package dispatch

import (
	"context"
	"sync"

	"lavo-client/pkg/lavo"
)

// TokenSource yields the current session credential.
type TokenSource interface {
	Token() string
}

// Refresher reloads authoritative account state after a mutation.
type Refresher interface {
	Refresh(ctx context.Context, token string) error
}

// Client is the slice of the API client the dispatcher drives.
type Client interface {
	SubmitKYC(ctx context.Context, token string, req lavo.KYCRequest) error
	Deposit(ctx context.Context, token string, req lavo.DepositRequest) error
	PlaceOrder(ctx context.Context, token string, req lavo.OrderRequest) (*lavo.OrderResult, error)
}

// Dispatcher performs one mutating request per user gesture. After every
// action, whatever its outcome, it triggers exactly one account refresh:
// the next snapshot is the source of truth for whether state actually
// changed, not the mutation response.
type Dispatcher struct {
	client    Client
	tokens    TokenSource
	refresher Refresher

	mu       sync.RWMutex
	tradeErr string
}

// New creates a dispatcher.
func New(client Client, tokens TokenSource, refresher Refresher) *Dispatcher {
	return &Dispatcher{client: client, tokens: tokens, refresher: refresher}
}

// SubmitKYC submits identity documents. The response body is never
// inspected; a transport failure is returned after the follow-up refresh.
func (d *Dispatcher) SubmitKYC(ctx context.Context, req lavo.KYCRequest) error {
	token := d.tokens.Token()
	err := d.client.SubmitKYC(ctx, token, req)
	d.refresh(ctx, token)
	return err
}

// Deposit credits an asset balance under the same contract as SubmitKYC.
func (d *Dispatcher) Deposit(ctx context.Context, req lavo.DepositRequest) error {
	token := d.tokens.Token()
	err := d.client.Deposit(ctx, token, req)
	d.refresh(ctx, token)
	return err
}

// PlaceOrder submits a market order. A rejection detail in the response
// overwrites the trade error slot and is not returned as an error; an
// accepted order clears the slot. Transport failures leave the slot
// untouched and are returned to the caller. In every case the refresh is
// issued only after the order response has resolved.
func (d *Dispatcher) PlaceOrder(ctx context.Context, req lavo.OrderRequest) error {
	token := d.tokens.Token()
	result, err := d.client.PlaceOrder(ctx, token, req)
	if err != nil {
		d.refresh(ctx, token)
		return err
	}
	d.mu.Lock()
	d.tradeErr = result.Detail
	d.mu.Unlock()
	d.refresh(ctx, token)
	return nil
}

// TradeError returns the rejection message of the most recent order, or the
// empty string when the last order was accepted. The slot holds one value;
// each order overwrites it.
func (d *Dispatcher) TradeError() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.tradeErr
}

func (d *Dispatcher) refresh(ctx context.Context, token string) {
	// A failed refresh leaves the previous snapshot in place; the view
	// model already reports it, so nothing to do here.
	_ = d.refresher.Refresh(ctx, token)
}
