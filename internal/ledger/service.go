package ledger

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/bookkeep-dev/bookkeep/internal/backup"
	"github.com/bookkeep-dev/bookkeep/internal/dates"
	"github.com/bookkeep-dev/bookkeep/internal/filter"
	"github.com/bookkeep-dev/bookkeep/internal/id"
	"github.com/bookkeep-dev/bookkeep/internal/model"
	"github.com/bookkeep-dev/bookkeep/internal/store"
)

// Auditor records a committed mutation. A nil Auditor disables the trail.
type Auditor interface {
	Record(action, details, refID string) error
}

// Service owns the authoritative accounts and transactions and coordinates
// validation, balance updates, and persistence. All operations are
// synchronous; a single logical caller mutates state at a time.
type Service struct {
	kv    store.KV
	log   *logrus.Logger
	audit Auditor

	accounts     []model.Account
	transactions []model.Transaction
	byID         map[string]int // account id -> index into accounts
}

// NewService creates a Service over the given store. State is empty until
// Load is called.
func NewService(kv store.KV, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.New()
	}
	return &Service{kv: kv, log: log, byID: make(map[string]int)}
}

// SetAuditor attaches an audit trail for committed mutations.
func (s *Service) SetAuditor(a Auditor) {
	s.audit = a
}

// Load reads both persisted blobs into memory. Malformed text falls back to
// an empty list rather than propagating the failure; the raw blob stays in
// the store untouched so Normalize can still repair it.
func (s *Service) Load() error {
	accounts, err := store.LoadAccounts(s.kv)
	if err != nil {
		s.log.WithError(err).Warn("accounts blob unreadable, starting empty")
		accounts = nil
	}
	txns, err := store.LoadTransactions(s.kv)
	if err != nil {
		s.log.WithError(err).Warn("transactions blob unreadable, starting empty")
		txns = nil
	}

	sortByCode(accounts)
	s.accounts = accounts
	s.transactions = txns
	s.reindex()
	s.log.WithFields(logrus.Fields{
		"accounts":     len(s.accounts),
		"transactions": len(s.transactions),
	}).Info("ledger loaded")
	return nil
}

// Accounts returns a copy of the chart of accounts, sorted by code.
func (s *Service) Accounts() []model.Account {
	return cloneAccounts(s.accounts)
}

// Transactions returns a copy of the full transaction history in insertion
// order.
func (s *Service) Transactions() []model.Transaction {
	if s.transactions == nil {
		return nil
	}
	out := make([]model.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Account returns an account by ID.
func (s *Service) Account(accountID string) (model.Account, bool) {
	idx, ok := s.byID[accountID]
	if !ok {
		return model.Account{}, false
	}
	return s.accounts[idx], true
}

// Exists implements AccountChecker.
func (s *Service) Exists(accountID string) bool {
	_, ok := s.byID[accountID]
	return ok
}

// CodeExists implements CodeChecker.
func (s *Service) CodeExists(code string) bool {
	for _, a := range s.accounts {
		if a.Code == code {
			return true
		}
	}
	return false
}

// CreateAccount validates and creates an account with a zero opening balance,
// keeps the chart sorted by code, and persists.
func (s *Service) CreateAccount(name, code string, accountType model.AccountType) (model.Account, error) {
	if errs := ValidateNewAccount(name, code, s); len(errs) > 0 {
		return model.Account{}, errs
	}

	acct := model.Account{
		ID:      id.New(),
		Name:    strings.TrimSpace(name),
		Code:    strings.TrimSpace(code),
		Type:    accountType,
		Balance: decimal.Zero,
	}
	accounts := append(cloneAccounts(s.accounts), acct)
	sortByCode(accounts)

	if err := s.commitState(accounts, s.transactions); err != nil {
		return model.Account{}, err
	}
	s.record("create_account", acct.Code+" "+acct.Name, acct.ID)
	s.log.WithFields(logrus.Fields{"code": acct.Code, "name": acct.Name}).Info("account created")
	return acct, nil
}

// CreateTransaction validates a draft, drops no-effect rows, applies the
// balance deltas, appends to history, and persists. Either everything is
// applied and stored, or the method errors and nothing changes: the deltas
// land on a working copy that only replaces the authoritative state once
// both blobs are written.
func (s *Service) CreateTransaction(date, description string, entries []model.Entry) (model.Transaction, error) {
	if errs := ValidateTransaction(description, entries, s); len(errs) > 0 {
		return model.Transaction{}, errs
	}

	effective := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Effective() {
			effective = append(effective, e)
		}
	}

	txn := model.Transaction{
		ID:          id.New(),
		Date:        dates.Coerce(date, dates.Today()),
		Description: strings.TrimSpace(description),
		Entries:     effective,
	}

	accounts := cloneAccounts(s.accounts)
	applyEntries(accounts, s.byID, txn)
	txns := append(s.Transactions(), txn)

	if err := s.commitState(accounts, txns); err != nil {
		return model.Transaction{}, err
	}
	s.record("create_transaction", txn.Description, txn.ID)
	s.log.WithFields(logrus.Fields{
		"date":    txn.Date,
		"entries": len(txn.Entries),
		"total":   txn.TotalDebits().StringFixed(2),
	}).Info("transaction committed")
	return txn, nil
}

// Clear wipes the entire account and transaction set.
func (s *Service) Clear() error {
	if err := s.commitState(nil, nil); err != nil {
		return err
	}
	s.record("clear", "all data cleared", "")
	s.log.Warn("ledger cleared")
	return nil
}

// Import wholesale-replaces the engine state from a backup document. On a
// malformed document or a failed write nothing changes and the error is
// surfaced.
func (s *Service) Import(data []byte) error {
	doc, err := backup.Decode(data)
	if err != nil {
		return err
	}

	accounts := doc.Accounts
	sortByCode(accounts)

	if err := s.commitState(accounts, doc.Transactions); err != nil {
		return err
	}
	s.record("import", "state replaced from backup", "")
	s.log.WithFields(logrus.Fields{
		"accounts":     len(s.accounts),
		"transactions": len(s.transactions),
	}).Info("ledger imported")
	return nil
}

// Export renders the current state as an indented backup document.
func (s *Service) Export() ([]byte, error) {
	return backup.Encode(backup.Document{
		Accounts:     s.accounts,
		Transactions: s.transactions,
	})
}

// Summary is the dashboard snapshot: account counts per type and the most
// recent transactions, newest first.
type Summary struct {
	AccountCounts map[model.AccountType]int
	Recent        []model.Transaction
}

// Summarize builds a Summary with at most limit recent transactions.
func (s *Service) Summarize(limit int) Summary {
	counts := make(map[model.AccountType]int, len(model.AccountTypes))
	for _, a := range s.accounts {
		counts[a.Type]++
	}

	recent := filter.Apply(s.transactions, filter.Spec{})
	if limit >= 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return Summary{AccountCounts: counts, Recent: recent}
}

// commitState persists the candidate state and, only once both writes
// succeed, swaps it in as authoritative. Transactions go first: if the
// accounts write then fails, the persisted blobs disagree only in derived
// balances, which Recompute re-derives from the history.
func (s *Service) commitState(accounts []model.Account, txns []model.Transaction) error {
	if err := store.SaveTransactions(s.kv, txns); err != nil {
		return err
	}
	if err := store.SaveAccounts(s.kv, accounts); err != nil {
		return err
	}

	s.accounts = accounts
	s.transactions = txns
	s.reindex()
	return nil
}

func (s *Service) record(action, details, refID string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(action, details, refID); err != nil {
		s.log.WithError(err).Warn("audit record failed")
	}
}

func (s *Service) reindex() {
	s.byID = make(map[string]int, len(s.accounts))
	for i, a := range s.accounts {
		s.byID[a.ID] = i
	}
}

func cloneAccounts(accounts []model.Account) []model.Account {
	if accounts == nil {
		return nil
	}
	out := make([]model.Account, len(accounts))
	copy(out, accounts)
	return out
}

func sortByCode(accounts []model.Account) {
	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].Code < accounts[j].Code
	})
}
