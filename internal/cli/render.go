package cli

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lavo-client/pkg/lavo"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(highlight).
			Padding(0, 2).
			Bold(true).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true).
			MarginTop(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 1).
			MarginRight(1)

	mutedStyle = lipgloss.NewStyle().Foreground(subtle)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// unknownPrice is rendered when the venue reported no price for a pair.
const unknownPrice = "—"

// Header renders the application banner.
func Header() string {
	return headerStyle.Render("LAVO EXCHANGE")
}

// RenderDashboard composes the account view: profile, wallets, trade error
// and the latest price table. A nil snapshot renders a loading state.
func RenderDashboard(snapshot *lavo.AccountSnapshot, prices lavo.PriceTable, pricesReady bool, tradeErr string) string {
	var b strings.Builder
	if snapshot == nil {
		b.WriteString("Loading...\n")
	} else {
		b.WriteString(sectionStyle.Render("ACCOUNT"))
		b.WriteString("\n")
		b.WriteString("KYC: " + kycLabel(snapshot.User.KYCStatus) + "\n")
		b.WriteString(sectionStyle.Render("WALLETS"))
		b.WriteString("\n")
		b.WriteString(renderWallets(snapshot.Wallets))
	}
	if tradeErr != "" {
		b.WriteString(errStyle.Render("Order rejected: " + tradeErr))
		b.WriteString("\n")
	}
	b.WriteString(sectionStyle.Render("LIVE PRICES"))
	b.WriteString("\n")
	b.WriteString(renderPrices(prices, pricesReady))
	return b.String()
}

func kycLabel(status string) string {
	if status == "" {
		return mutedStyle.Render("unknown")
	}
	return status
}

func renderWallets(wallets []lavo.Wallet) string {
	if len(wallets) == 0 {
		return mutedStyle.Render("no wallets yet") + "\n"
	}
	cards := make([]string, 0, len(wallets))
	for _, w := range wallets {
		card := mutedStyle.Render(w.Asset) + "\n" +
			w.Balance.StringFixed(6) + "\n" +
			mutedStyle.Render(w.Address)
		cards = append(cards, cardStyle.Render(card))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n"
}

func renderPrices(prices lavo.PriceTable, ready bool) string {
	if !ready {
		return mutedStyle.Render("waiting for first tick") + "\n"
	}
	if len(prices) == 0 {
		return mutedStyle.Render("no pairs listed") + "\n"
	}
	pairs := make([]string, 0, len(prices))
	for pair := range prices {
		pairs = append(pairs, pair)
	}
	sort.Strings(pairs)
	var b strings.Builder
	for _, pair := range pairs {
		value := unknownPrice
		if p := prices[pair]; p != nil {
			value = p.StringFixed(2)
		}
		b.WriteString(pair + ": " + value + "\n")
	}
	return b.String()
}
