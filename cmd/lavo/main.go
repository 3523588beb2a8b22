package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/zeromicro/go-zero/core/logx"

	"lavo-client/internal/cli"
	"lavo-client/internal/config"
	"lavo-client/internal/svc"
	"lavo-client/pkg/lavo"
)

var configFile = flag.String("f", "etc/lavo.yaml", "the config file")

func main() {
	flag.Parse()

	cfg := config.MustLoad(*configFile)
	cli.LogConfigSummary(cfg)

	svcCtx, err := svc.NewServiceContext(cfg)
	if err != nil {
		logx.Errorf("build service context: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The price feed runs for the whole process lifetime, signed in or not.
	go svcCtx.Prices.Run(ctx)

	if err := run(ctx, svcCtx); err != nil && !errors.Is(err, context.Canceled) {
		logx.Errorf("client stopped: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, svcCtx *svc.ServiceContext) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if svcCtx.Session.Token() == "" {
			if err := authenticate(ctx, svcCtx); err != nil {
				return err
			}
			continue
		}
		// A persisted session skips the auth flow; fetch the snapshot the
		// credential-change subscription would otherwise have loaded.
		if _, ok := svcCtx.Account.Snapshot(); !ok {
			if err := svcCtx.RefreshAccount(ctx); err != nil {
				logx.Errorf("account refresh: %v", err)
			}
		}
		quit, err := dashboard(ctx, svcCtx)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// authenticate loops the auth form until a credential is stored or the user
// aborts.
func authenticate(ctx context.Context, svcCtx *svc.ServiceContext) error {
	for svcCtx.Session.Token() == "" {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		creds, err := cli.RunAuthForm()
		if err != nil {
			return err
		}
		switch creds.Mode {
		case cli.AuthModeRegister:
			err = svcCtx.Register(ctx, creds.Email, creds.Password, creds.FullName)
		default:
			err = svcCtx.Login(ctx, creds.Email, creds.Password)
		}
		if err != nil {
			var authErr *lavo.AuthError
			if errors.As(err, &authErr) {
				fmt.Println(authErr.Detail)
				continue
			}
			return err
		}
	}
	return nil
}

// dashboard renders account state and dispatches one action per iteration.
// Returns true when the user chose to quit.
func dashboard(ctx context.Context, svcCtx *svc.ServiceContext) (bool, error) {
	for {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		snapshot, _ := svcCtx.Account.Snapshot()
		prices, ready := svcCtx.Prices.Latest()
		fmt.Println(cli.Header())
		fmt.Println(cli.RenderDashboard(snapshot, prices, ready, svcCtx.Dispatcher.TradeError()))

		action, err := cli.RunActionSelect()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return true, nil
			}
			return false, err
		}
		switch action {
		case cli.ActionSubmitKYC:
			req, err := cli.RunKYCForm()
			if err != nil {
				return false, err
			}
			if err := svcCtx.Dispatcher.SubmitKYC(ctx, req); err != nil {
				logx.Errorf("kyc submit: %v", err)
			}
		case cli.ActionDeposit:
			req, err := cli.RunDepositForm()
			if err != nil {
				return false, err
			}
			if err := svcCtx.Dispatcher.Deposit(ctx, req); err != nil {
				logx.Errorf("deposit: %v", err)
			}
		case cli.ActionPlaceOrder:
			req, err := cli.RunOrderForm()
			if err != nil {
				return false, err
			}
			if err := svcCtx.Dispatcher.PlaceOrder(ctx, req); err != nil {
				logx.Errorf("place order: %v", err)
			}
		case cli.ActionRefresh:
			if err := svcCtx.RefreshAccount(ctx); err != nil {
				logx.Errorf("account refresh: %v", err)
			}
		case cli.ActionLogout:
			svcCtx.Logout()
			return false, nil
		case cli.ActionQuit:
			return true, nil
		}
	}
}
