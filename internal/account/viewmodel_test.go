package account

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"lavo-client/pkg/lavo"
)

type fakeFetcher struct {
	mu    sync.Mutex
	calls int
	next  func(call int) (*lavo.AccountSnapshot, error)
}

func (f *fakeFetcher) Me(ctx context.Context, token string) (*lavo.AccountSnapshot, error) {
	f.mu.Lock()
	f.calls++
	call := f.calls
	f.mu.Unlock()
	return f.next(call)
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func snapshotWithWallets(assets ...string) *lavo.AccountSnapshot {
	snapshot := &lavo.AccountSnapshot{User: lavo.User{KYCStatus: lavo.KYCStatusNone}}
	for _, asset := range assets {
		snapshot.Wallets = append(snapshot.Wallets, lavo.Wallet{
			Asset:   asset,
			Balance: decimal.Zero,
		})
	}
	return snapshot
}

func TestRefreshWithEmptyTokenIsNoOp(t *testing.T) {
	fetcher := &fakeFetcher{next: func(int) (*lavo.AccountSnapshot, error) {
		t.Fatal("fetch must not happen without a credential")
		return nil, nil
	}}
	vm := New(fetcher)

	require.NoError(t, vm.Refresh(context.Background(), ""))
	require.Zero(t, fetcher.callCount())
	_, ok := vm.Snapshot()
	require.False(t, ok)
}

func TestRefreshReplacesSnapshotWholesale(t *testing.T) {
	fetcher := &fakeFetcher{next: func(call int) (*lavo.AccountSnapshot, error) {
		if call == 1 {
			return snapshotWithWallets("BTC", "ETH"), nil
		}
		return snapshotWithWallets("USDT"), nil
	}}
	vm := New(fetcher)

	require.NoError(t, vm.Refresh(context.Background(), "T1"))
	snapshot, ok := vm.Snapshot()
	require.True(t, ok)
	require.Len(t, snapshot.Wallets, 2)

	// The second fetch fully replaces the first: no merge of stale wallets.
	require.NoError(t, vm.Refresh(context.Background(), "T1"))
	snapshot, ok = vm.Snapshot()
	require.True(t, ok)
	require.Len(t, snapshot.Wallets, 1)
	require.Equal(t, "USDT", snapshot.Wallets[0].Asset)
}

func TestRefreshFailureKeepsPriorSnapshot(t *testing.T) {
	fetcher := &fakeFetcher{next: func(call int) (*lavo.AccountSnapshot, error) {
		if call == 1 {
			return snapshotWithWallets("BTC"), nil
		}
		return nil, errors.New("backend down")
	}}
	vm := New(fetcher)

	require.NoError(t, vm.Refresh(context.Background(), "T1"))
	require.Error(t, vm.Refresh(context.Background(), "T1"))

	snapshot, ok := vm.Snapshot()
	require.True(t, ok)
	require.Equal(t, "BTC", snapshot.Wallets[0].Asset)
}

func TestSlowEarlyResponseCannotOverwriteNewerSnapshot(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	fetcher := &fakeFetcher{next: func(call int) (*lavo.AccountSnapshot, error) {
		if call == 1 {
			close(firstStarted)
			<-releaseFirst
			return snapshotWithWallets("STALE"), nil
		}
		return snapshotWithWallets("FRESH"), nil
	}}
	vm := New(fetcher)

	done := make(chan struct{})
	go func() {
		_ = vm.Refresh(context.Background(), "T1")
		close(done)
	}()
	<-firstStarted

	// The refresh issued later completes first and wins.
	require.NoError(t, vm.Refresh(context.Background(), "T1"))
	close(releaseFirst)
	<-done

	snapshot, ok := vm.Snapshot()
	require.True(t, ok)
	require.Equal(t, "FRESH", snapshot.Wallets[0].Asset)
}

func TestClearDropsSnapshotAndInvalidatesInFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	fetcher := &fakeFetcher{next: func(call int) (*lavo.AccountSnapshot, error) {
		if call == 1 {
			return snapshotWithWallets("BTC"), nil
		}
		close(started)
		<-release
		return snapshotWithWallets("STALE"), nil
	}}
	vm := New(fetcher)
	require.NoError(t, vm.Refresh(context.Background(), "T1"))

	done := make(chan struct{})
	go func() {
		_ = vm.Refresh(context.Background(), "T1")
		close(done)
	}()
	<-started

	// Logout while a refresh is in flight: its late result must not
	// resurrect account data under a cleared session.
	vm.Clear()
	close(release)
	<-done

	_, ok := vm.Snapshot()
	require.False(t, ok)
}
