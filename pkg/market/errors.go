package market

import "errors"

// ErrSymbolNotFound indicates the requested instrument is absent from the
// snapshot or carries no usable price.
var ErrSymbolNotFound = errors.New("market: symbol not found")
