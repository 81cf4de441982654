// Package ui implements the interactive terminal menu. It owns all prompt
// parsing and rendering; every ledger call returns a typed error that is
// matched by kind and shown as a friendly message before re-prompting.
package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/appleboblin/finance/internal/core"
	"github.com/appleboblin/finance/internal/services"
)

type Menu struct {
	accounts *services.AccountService
	ledger   *services.LedgerService
	in       *bufio.Scanner
	out      io.Writer
}

func NewMenu(accounts *services.AccountService, ledger *services.LedgerService, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		accounts: accounts,
		ledger:   ledger,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run drives the menu until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) {
	fmt.Fprintln(m.out, "Simple Finance Application")

	for {
		accountID, accountName, ok := m.chooseAccount(ctx)
		if !ok {
			return
		}
		if !m.accountMenu(ctx, accountID, accountName) {
			return
		}
	}
}

// chooseAccount presents the entry menu: create a new account, select an
// existing one, or exit. ok is false when the user exits or input ends.
func (m *Menu) chooseAccount(ctx context.Context) (accountID int64, accountName string, ok bool) {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "1. Create new account")
		fmt.Fprintln(m.out, "2. Select existing account")
		fmt.Fprintln(m.out, "3. Exit")

		choice, ok := m.readLine("Enter choice: ")
		if !ok {
			return 0, "", false
		}

		switch choice {
		case "1":
			if id, name, created := m.createAccount(ctx); created {
				return id, name, true
			}
		case "2":
			if id, name, selected := m.selectAccount(ctx); selected {
				return id, name, true
			}
		case "3":
			fmt.Fprintln(m.out, "Exiting.")
			return 0, "", false
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) createAccount(ctx context.Context) (int64, string, bool) {
	name, ok := m.readLine("Enter account name: ")
	if !ok {
		return 0, "", false
	}
	raw, ok := m.readLine("Enter initial balance: ")
	if !ok {
		return 0, "", false
	}

	initial, err := core.ParseMoney(raw)
	if err != nil {
		m.renderError(err)
		return 0, "", false
	}

	id, err := m.accounts.CreateAccount(ctx, name, initial)
	if err != nil {
		m.renderError(err)
		return 0, "", false
	}

	fmt.Fprintf(m.out, "Account created successfully with ID: %d\n", id)
	return id, name, true
}

func (m *Menu) selectAccount(ctx context.Context) (int64, string, bool) {
	accounts, err := m.accounts.ListAccounts(ctx)
	if err != nil {
		m.renderError(err)
		return 0, "", false
	}
	if len(accounts) == 0 {
		fmt.Fprintln(m.out, "No accounts found.")
		return 0, "", false
	}

	fmt.Fprintln(m.out, "Available accounts:")
	for _, a := range accounts {
		fmt.Fprintf(m.out, "ID: %d, Name: %s\n", a.ID, a.Name)
	}

	raw, ok := m.readLine("Enter account ID to select: ")
	if !ok {
		return 0, "", false
	}
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid input. Please enter a valid account ID.")
		return 0, "", false
	}

	name, err := m.accounts.AccountName(ctx, id)
	if err != nil {
		m.renderError(err)
		return 0, "", false
	}
	return id, name, true
}

// accountMenu presents per-account operations. It returns true to go back
// to the account chooser and false to exit the application.
func (m *Menu) accountMenu(ctx context.Context, accountID int64, accountName string) bool {
	for {
		fmt.Fprintf(m.out, "\nAccount ID: %d, Account Name: %s\n", accountID, accountName)
		fmt.Fprintln(m.out, "Choose an option:")
		fmt.Fprintln(m.out, "1. Check Balance")
		fmt.Fprintln(m.out, "2. Withdraw")
		fmt.Fprintln(m.out, "3. Deposit")
		fmt.Fprintln(m.out, "4. Make Purchase")
		fmt.Fprintln(m.out, "5. Transaction History")
		fmt.Fprintln(m.out, "6. Return to Main Menu")
		fmt.Fprintln(m.out, "7. Exit")

		choice, ok := m.readLine("Enter choice: ")
		if !ok {
			return false
		}

		switch choice {
		case "1":
			balance, err := m.accounts.GetBalance(ctx, accountID)
			if err != nil {
				m.renderError(err)
				continue
			}
			fmt.Fprintf(m.out, "Current balance: $%s\n", balance)
		case "2":
			m.movement(ctx, accountID, "withdraw")
		case "3":
			m.movement(ctx, accountID, "deposit")
		case "4":
			m.movement(ctx, accountID, "purchase")
		case "5":
			m.showHistory(ctx, accountID)
		case "6":
			fmt.Fprintln(m.out, "Returning to main menu.")
			return true
		case "7":
			fmt.Fprintln(m.out, "Exiting.")
			return false
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) movement(ctx context.Context, accountID int64, op string) {
	raw, ok := m.readLine(fmt.Sprintf("Enter amount to %s: ", op))
	if !ok {
		return
	}
	amount, err := core.ParseMoney(raw)
	if err != nil {
		m.renderError(err)
		return
	}
	description, ok := m.readLine(fmt.Sprintf("Enter %s description: ", op))
	if !ok {
		return
	}

	switch op {
	case "withdraw":
		err = m.ledger.Withdraw(ctx, accountID, amount, description)
	case "deposit":
		err = m.ledger.Deposit(ctx, accountID, amount, description)
	case "purchase":
		err = m.ledger.Purchase(ctx, accountID, amount, description)
	}
	if err != nil {
		m.renderError(err)
		return
	}

	switch op {
	case "withdraw":
		fmt.Fprintln(m.out, "Withdrawal successful!")
	case "deposit":
		fmt.Fprintln(m.out, "Deposit successful!")
	case "purchase":
		fmt.Fprintln(m.out, "Purchase successful!")
	}
}

func (m *Menu) showHistory(ctx context.Context, accountID int64) {
	transactions, err := m.ledger.TransactionHistory(ctx, accountID)
	if err != nil {
		m.renderError(err)
		return
	}

	fmt.Fprintln(m.out, "Transaction history:")
	if len(transactions) == 0 {
		fmt.Fprintln(m.out, "No transactions found.")
		return
	}
	for _, t := range transactions {
		fmt.Fprintf(m.out, "%s  %-10s  $%s  %s\n",
			t.CreatedAt.Format("2006-01-02 15:04:05"), t.Kind, t.Amount, t.Description)
	}
}

func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) renderError(err error) {
	switch {
	case errors.Is(err, core.ErrInsufficientFunds):
		fmt.Fprintln(m.out, "Insufficient balance.")
	case errors.Is(err, core.ErrAccountNotFound):
		fmt.Fprintln(m.out, "Account not found.")
	case errors.Is(err, core.ErrInvalidAmount):
		fmt.Fprintln(m.out, "Invalid input. Please enter a valid number.")
	case errors.Is(err, core.ErrEmptyName):
		fmt.Fprintln(m.out, "Invalid input. Please enter an account name.")
	default:
		fmt.Fprintf(m.out, "Error: %v. Please try again.\n", err)
	}
}
