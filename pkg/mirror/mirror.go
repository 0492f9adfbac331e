// Package mirror is the persistent local mirror: a key-value cache of the
// last known state of each collection, the offline fallback when the backend
// cannot be reached. The contract is served by an in-memory map or a
// directory of JSON files.
package mirror

// Keys under which the storefront persists its state. One blob per purpose.
const (
	KeySessionID = "session_id"
	KeyUser      = "user"
	KeyCart      = "cart"
	KeyWishlist  = "wishlist"
	KeyOrders    = "orders"
	KeyCompare   = "compare"
)

// Mirror stores JSON blobs by key.
//
// Load decodes the blob for key into out and reports whether a usable value
// existed. A missing key and a corrupt blob are the same condition: no prior
// state. Load never returns an error for either.
type Mirror interface {
	Load(key string, out any) bool
	Store(key string, v any) error
	Remove(key string) error
}
