// Package store persists the ledger as two independent JSON text blobs in a
// key-value store. The store owns only the serialized representation; while
// the engine is active its in-memory state is the source of truth.
package store

// Keys for the two state blobs.
const (
	KeyAccounts     = "accounts"
	KeyTransactions = "transactions"
)

// KV is a text key-value store. Get returns ok=false for a missing key.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Put(key, value string) error
}
