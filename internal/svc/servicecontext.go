package svc

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"lavo-client/internal/account"
	"lavo-client/internal/config"
	"lavo-client/internal/dispatch"
	"lavo-client/internal/pricefeed"
	"lavo-client/internal/session"
	"lavo-client/pkg/lavo"
)

// ServiceContext wires the client components together: one API client, one
// session store, one price feed, one account view model and one dispatcher.
type ServiceContext struct {
	Config     *config.Config
	Client     *lavo.Client
	Session    *session.Store
	Prices     *pricefeed.Feed
	Account    *account.ViewModel
	Dispatcher *dispatch.Dispatcher
}

// NewServiceContext builds the component graph from configuration and loads
// the persisted session. The session subscription established here is what
// turns a credential change into an account refresh: a published token
// triggers a fetch, a cleared one drops the snapshot.
func NewServiceContext(cfg *config.Config) (*ServiceContext, error) {
	clientCfg := cfg.ClientConfig()
	if err := clientCfg.Validate(); err != nil {
		return nil, err
	}
	client := clientCfg.NewClient()

	store := session.New(cfg.SessionPath())
	if err := store.Load(); err != nil {
		return nil, err
	}

	viewModel := account.New(client)
	svcCtx := &ServiceContext{
		Config:     cfg,
		Client:     client,
		Session:    store,
		Prices:     pricefeed.New(client, pricefeed.DefaultInterval),
		Account:    viewModel,
		Dispatcher: dispatch.New(client, store, viewModel),
	}

	store.Subscribe(func(token string) {
		if token == "" {
			viewModel.Clear()
			return
		}
		if err := viewModel.Refresh(context.Background(), token); err != nil {
			logx.Errorf("account refresh after credential change: %v", err)
		}
	})

	return svcCtx, nil
}

// Login authenticates and, only on success, hands the token to the session
// store. Publishing the token is what triggers the first account refresh.
func (s *ServiceContext) Login(ctx context.Context, email, password string) error {
	token, err := s.Client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.Session.SetToken(token)
}

// Register creates an account under the same contract as Login.
func (s *ServiceContext) Register(ctx context.Context, email, password, fullName string) error {
	token, err := s.Client.Register(ctx, email, password, fullName)
	if err != nil {
		return err
	}
	return s.Session.SetToken(token)
}

// Logout clears the persisted credential. The subscription drops the
// account snapshot so no stale data survives the sign-out.
func (s *ServiceContext) Logout() {
	s.Session.Clear()
}

// RefreshAccount reloads the account snapshot with the current credential.
// Used at startup when a persisted session exists and for manual refreshes;
// a no-op when signed out.
func (s *ServiceContext) RefreshAccount(ctx context.Context) error {
	return s.Account.Refresh(ctx, s.Session.Token())
}
