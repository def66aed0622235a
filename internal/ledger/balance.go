package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/bookkeep-dev/bookkeep/internal/model"
)

// applyEntries adds each entry's delta to its account balance in the given
// working copy. The validator has already guaranteed every referenced account
// exists, so this cannot partially fail.
func applyEntries(accounts []model.Account, index map[string]int, txn model.Transaction) {
	for _, e := range txn.Entries {
		idx, ok := index[e.AccountID]
		if !ok {
			continue
		}
		acct := &accounts[idx]
		acct.Balance = acct.Balance.Add(e.Delta(acct.Type))
	}
}

// Recompute re-derives every balance from zero by folding the full
// transaction history, then persists the rounded results. Idempotent and
// order-independent; the authoritative repair for any drift in the
// incremental path.
func (s *Service) Recompute() error {
	accounts := recomputeBalances(s.accounts, s.transactions)
	if err := s.commitState(accounts, s.transactions); err != nil {
		return err
	}
	s.record("recompute", "balances re-derived from transactions", "")
	s.log.Info("balances recomputed")
	return nil
}

// recomputeBalances folds every entry of every transaction into a fresh copy
// of the account list, rounding the results to 2 decimals.
func recomputeBalances(accounts []model.Account, txns []model.Transaction) []model.Account {
	types := make(map[string]model.AccountType, len(accounts))
	for _, a := range accounts {
		types[a.ID] = a.Type
	}

	balances := make(map[string]decimal.Decimal, len(accounts))
	for _, txn := range txns {
		for _, e := range txn.Entries {
			t, ok := types[e.AccountID]
			if !ok {
				// Entries referencing unknown accounts contribute nothing.
				continue
			}
			balances[e.AccountID] = balances[e.AccountID].Add(e.Delta(t))
		}
	}

	out := cloneAccounts(accounts)
	for i := range out {
		out[i].Balance = balances[out[i].ID].Round(2)
	}
	return out
}
