package paychangu

import (
	"crypto/rand"
	"encoding/hex"
)

const txRefBytes = 10

// NewTxRef returns a fresh transaction reference: 20 lowercase hex characters.
func NewTxRef() string {
	b := make([]byte, txRefBytes)
	// crypto/rand.Read never returns an error.
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func txRefOrNew(txRef string) string {
	if txRef == "" {
		return NewTxRef()
	}
	return txRef
}
