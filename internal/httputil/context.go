package httputil

// ContextKey is the type for keys of values stored in the gin context.
type ContextKey string

// ContextURL holds the external URL of the API.
const ContextURL ContextKey = "budget-ledger-url"
