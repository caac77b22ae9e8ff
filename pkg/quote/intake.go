package quote

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// SignedOrder is an already-signed order envelope received for relay. The
// gateway never inspects or verifies the signature's cryptographic validity;
// that belongs to the settlement collaborator downstream. Intake only checks
// the structural invariants.
type SignedOrder struct {
	Symbol      string
	IsBuy       bool
	SizeUSD     float64
	Leverage    int
	UserAddress string
	Signature   json.RawMessage
	Timestamp   int64
}

// Side returns the wire representation of the order direction.
func (o SignedOrder) Side() string {
	if o.IsBuy {
		return "buy"
	}
	return "sell"
}

// ValidateOrder checks the envelope's structural invariants and returns the
// normalized signer address. It never fabricates a fill price or execution
// result; execution stays pending until a real settlement path supplies it.
func ValidateOrder(order SignedOrder) (string, error) {
	if order.SizeUSD <= 0 {
		return "", fmt.Errorf("%w: got %v", ErrInvalidSize, order.SizeUSD)
	}
	if order.Leverage < MinLeverage || order.Leverage > MaxLeverage {
		return "", fmt.Errorf("%w: got %d", ErrInvalidLeverage, order.Leverage)
	}
	if !common.IsHexAddress(order.UserAddress) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, order.UserAddress)
	}
	return common.HexToAddress(order.UserAddress).Hex(), nil
}
