package account

import (
	"context"
	"sync"

	"lavo-client/pkg/lavo"
)

// Fetcher loads account snapshots. Satisfied by *lavo.Client.
type Fetcher interface {
	Me(ctx context.Context, token string) (*lavo.AccountSnapshot, error)
}

// ViewModel holds the authoritative account snapshot. Refreshes are not
// deduplicated: concurrent refreshes complete independently and the one
// issued last wins, enforced by a monotonic sequence number so a slow early
// response can never overwrite a newer snapshot.
type ViewModel struct {
	fetcher Fetcher

	mu         sync.RWMutex
	snapshot   *lavo.AccountSnapshot
	nextSeq    uint64
	appliedSeq uint64
}

// New creates a view model over the given fetcher.
func New(fetcher Fetcher) *ViewModel {
	return &ViewModel{fetcher: fetcher}
}

// Refresh fetches the account snapshot and replaces the held one wholesale.
// An empty token makes Refresh a no-op: nothing is fetched and the current
// state is left untouched. A fetch failure also leaves the prior snapshot in
// place.
func (vm *ViewModel) Refresh(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	vm.mu.Lock()
	vm.nextSeq++
	seq := vm.nextSeq
	vm.mu.Unlock()

	snapshot, err := vm.fetcher.Me(ctx, token)
	if err != nil {
		return err
	}

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if seq <= vm.appliedSeq {
		// A refresh issued later already landed, or the session was cleared
		// while this fetch was in flight.
		return nil
	}
	vm.appliedSeq = seq
	vm.snapshot = snapshot
	return nil
}

// Snapshot returns the current account state. The second return is false
// until the first successful refresh; callers show a loading state until
// then.
func (vm *ViewModel) Snapshot() (*lavo.AccountSnapshot, bool) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.snapshot, vm.snapshot != nil
}

// Clear drops the snapshot and invalidates every in-flight refresh, so a
// signed-out view can never be repopulated with stale account data.
func (vm *ViewModel) Clear() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.snapshot = nil
	vm.appliedSeq = vm.nextSeq
}
