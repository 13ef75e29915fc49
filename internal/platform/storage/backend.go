// Package storage implements the record store: named JSON-encoded collections
// loaded and rewritten wholesale, with a pluggable backing medium.
package storage

import "context"

// Backend persists raw collection payloads by name. Load reports ok=false
// when the collection has never been written.
type Backend interface {
	Load(ctx context.Context, collection string) (data []byte, ok bool, err error)
	Save(ctx context.Context, collection string, data []byte) error
}
