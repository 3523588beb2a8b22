package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"lavo-client/pkg/lavo"
)

// AuthMode selects between the two authentication flows.
type AuthMode string

const (
	AuthModeLogin    AuthMode = "login"
	AuthModeRegister AuthMode = "register"
)

// Action is a user gesture picked from the dashboard menu.
type Action string

const (
	ActionSubmitKYC  Action = "kyc"
	ActionDeposit    Action = "deposit"
	ActionPlaceOrder Action = "order"
	ActionRefresh    Action = "refresh"
	ActionLogout     Action = "logout"
	ActionQuit       Action = "quit"
)

// Credentials are the fields collected by the auth form.
type Credentials struct {
	Mode     AuthMode
	Email    string
	Password string
	FullName string
}

// RunAuthForm collects sign-in or registration credentials.
func RunAuthForm() (Credentials, error) {
	creds := Credentials{
		Mode:     AuthModeLogin,
		Email:    "demo@lavo.exchange",
		Password: "password",
		FullName: "Demo User",
	}
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[AuthMode]().
				Title("Welcome to Lavo Exchange").
				Options(
					huh.NewOption("Sign in", AuthModeLogin),
					huh.NewOption("Create account", AuthModeRegister),
				).
				Value(&creds.Mode),
		),
		huh.NewGroup(
			huh.NewInput().Title("Email").Value(&creds.Email),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&creds.Password),
			huh.NewInput().Title("Full name").Value(&creds.FullName),
		).WithHideFunc(func() bool { return creds.Mode != AuthModeRegister }),
		huh.NewGroup(
			huh.NewInput().Title("Email").Value(&creds.Email),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&creds.Password),
		).WithHideFunc(func() bool { return creds.Mode != AuthModeLogin }),
	).Run()
	return creds, err
}

// RunActionSelect shows the dashboard action menu.
func RunActionSelect() (Action, error) {
	action := ActionRefresh
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[Action]().
				Title("What next?").
				Options(
					huh.NewOption("Submit KYC", ActionSubmitKYC),
					huh.NewOption("Deposit", ActionDeposit),
					huh.NewOption("Place market order", ActionPlaceOrder),
					huh.NewOption("Refresh account", ActionRefresh),
					huh.NewOption("Logout", ActionLogout),
					huh.NewOption("Quit", ActionQuit),
				).
				Value(&action),
		),
	).Run()
	return action, err
}

// RunKYCForm collects the document submission payload.
func RunKYCForm() (lavo.KYCRequest, error) {
	req := lavo.KYCRequest{DocumentType: "id", DocumentNumber: "123"}
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Document type").
				Options(
					huh.NewOption("ID card", "id"),
					huh.NewOption("Passport", "passport"),
				).
				Value(&req.DocumentType),
			huh.NewInput().Title("Document number").Value(&req.DocumentNumber),
		),
	).Run()
	return req, err
}

// RunDepositForm collects a deposit payload.
func RunDepositForm() (lavo.DepositRequest, error) {
	asset := "USDT"
	amountStr := "100"
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Asset").
				Options(
					huh.NewOption("BTC", "BTC"),
					huh.NewOption("ETH", "ETH"),
					huh.NewOption("USDT", "USDT"),
				).
				Value(&asset),
			huh.NewInput().Title("Amount").Value(&amountStr).Validate(validateAmount),
		),
	).Run()
	if err != nil {
		return lavo.DepositRequest{}, err
	}
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return lavo.DepositRequest{}, fmt.Errorf("parse amount %q: %w", amountStr, err)
	}
	return lavo.DepositRequest{Asset: asset, Amount: amount}, nil
}

// RunOrderForm collects a market order payload.
func RunOrderForm() (lavo.OrderRequest, error) {
	side := lavo.SideBuy
	pair := "BTC-USDT"
	amountStr := "0.001"
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Side").
				Options(
					huh.NewOption("Buy", lavo.SideBuy),
					huh.NewOption("Sell", lavo.SideSell),
				).
				Value(&side),
			huh.NewSelect[string]().
				Title("Pair").
				Options(
					huh.NewOption("BTC-USDT", "BTC-USDT"),
					huh.NewOption("ETH-USDT", "ETH-USDT"),
				).
				Value(&pair),
			huh.NewInput().Title("Amount").Value(&amountStr).Validate(validateAmount),
		),
	).Run()
	if err != nil {
		return lavo.OrderRequest{}, err
	}
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return lavo.OrderRequest{}, fmt.Errorf("parse amount %q: %w", amountStr, err)
	}
	return lavo.OrderRequest{Side: side, Pair: pair, Amount: amount}, nil
}

func validateAmount(s string) error {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if amount.Sign() <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}
