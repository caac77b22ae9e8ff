package handler

import (
	"context"
	"errors"
	"net/http"

	"ghostx-api/pkg/hyperliquid"
	marketpkg "ghostx-api/pkg/market"
	quotepkg "ghostx-api/pkg/quote"
)

// errorBody is the uniform error payload returned by every endpoint.
type errorBody struct {
	Error string `json:"error"`
}

// badRequestError marks request-shape violations detected at the boundary
// (body/path/query parsing) so they map to 400 instead of 500.
type badRequestError struct {
	err error
}

func (e badRequestError) Error() string { return e.err.Error() }

func parseError(err error) error { return badRequestError{err: err} }

// ErrorResponder maps the error-kind taxonomy deterministically to transport
// status codes. Request-shape violations and unknown symbols are the
// caller's fault; upstream connectivity, status and decode failures surface
// as bad gateway so callers can distinguish transient from permanent.
func ErrorResponder(_ context.Context, err error) (int, any) {
	var (
		badReq    badRequestError
		statusErr *hyperliquid.StatusError
	)
	switch {
	case errors.As(err, &badReq),
		errors.Is(err, quotepkg.ErrInvalidSize),
		errors.Is(err, quotepkg.ErrInvalidLeverage),
		errors.Is(err, quotepkg.ErrInvalidAddress),
		errors.Is(err, hyperliquid.ErrInvalidAddress),
		errors.Is(err, marketpkg.ErrSymbolNotFound):
		return http.StatusBadRequest, errorBody{Error: err.Error()}
	case errors.Is(err, hyperliquid.ErrUnreachable),
		errors.Is(err, hyperliquid.ErrMalformedResponse),
		errors.As(err, &statusErr):
		return http.StatusBadGateway, errorBody{Error: err.Error()}
	default:
		return http.StatusInternalServerError, errorBody{Error: err.Error()}
	}
}
