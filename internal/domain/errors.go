package domain

import "errors"

// ErrSymbolNotFound means the provider call succeeded but no such
// instrument exists. Callers must be able to tell this apart from
// ErrProviderUnavailable ("we don't know" vs "it doesn't exist").
var ErrSymbolNotFound = errors.New("symbol not found")

// ErrProviderUnavailable covers upstream failures and rate limiting.
// Nothing retries automatically server-side; the browser reissues the
// request at the user's cadence.
var ErrProviderUnavailable = errors.New("market data provider unavailable")

var ErrNotAuthenticated = errors.New("not logged in to brokerage")
