package service

import "context"

// PayloadArchive keeps raw provider payloads for later reprocessing.
type PayloadArchive interface {
	Store(ctx context.Context, key string, payload []byte) error
}
