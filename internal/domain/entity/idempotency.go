package entity

import "time"

// IdempotencyRecord remembers the response given for an idempotency key so
// that retried checkout requests reuse the first payment link.
type IdempotencyRecord struct {
	key          string
	txRef        string
	responseBody []byte
	createdAt    time.Time
}

func NewIdempotencyRecord(key, txRef string, body []byte) *IdempotencyRecord {
	return &IdempotencyRecord{
		key:          key,
		txRef:        txRef,
		responseBody: body,
		createdAt:    time.Now(),
	}
}

func ReconstructIdempotencyRecord(key, txRef string, body []byte, createdAt time.Time) *IdempotencyRecord {
	return &IdempotencyRecord{
		key:          key,
		txRef:        txRef,
		responseBody: body,
		createdAt:    createdAt,
	}
}

func (r *IdempotencyRecord) Key() string {
	return r.key
}

func (r *IdempotencyRecord) TxRef() string {
	return r.txRef
}

func (r *IdempotencyRecord) ResponseBody() []byte {
	return r.responseBody
}

func (r *IdempotencyRecord) CreatedAt() time.Time {
	return r.createdAt
}
