// Package store abstracts the document store backing the masking service.
//
// Records are stored as JSON documents keyed by their application-level
// "id" field, one named collection per entity type. The store's internal
// row identity is never exposed to callers.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoDocument is returned when no document matches the requested id.
var ErrNoDocument = errors.New("no document matches id")

// Collection exposes the document operations the service relies on.
type Collection interface {
	// Insert persists doc, which must marshal to a JSON object carrying a
	// non-empty "id" field.
	Insert(ctx context.Context, doc any) error
	// FindByID unmarshals the document whose "id" field equals id into out.
	// Returns ErrNoDocument when absent.
	FindByID(ctx context.Context, id string, out any) error
	// List unmarshals up to limit documents, in insertion order, into out
	// (a pointer to a slice).
	List(ctx context.Context, limit int, out any) error
	// Count reports the number of documents in the collection.
	Count(ctx context.Context) (int64, error)
	// UpdateByID merges fields into the top level of the document whose
	// "id" equals id. Returns ErrNoDocument when no document matches.
	UpdateByID(ctx context.Context, id string, fields map[string]any) error
}

// Store hands out collections and manages the underlying connection.
type Store interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
	Close() error
}

// documentID extracts the application-level id from a marshaled document.
func documentID(raw []byte) (string, error) {
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return "", fmt.Errorf("decode document id: %w", err)
	}
	if probe.ID == "" {
		return "", errors.New("document has no id field")
	}
	return probe.ID, nil
}

// mergeDocument applies a top-level field merge to a marshaled document.
func mergeDocument(raw []byte, fields map[string]any) ([]byte, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	for key, value := range fields {
		doc[key] = value
	}
	merged, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return merged, nil
}

// decodeList unmarshals a set of raw documents into out.
func decodeList(raws []json.RawMessage, out any) error {
	combined, err := json.Marshal(raws)
	if err != nil {
		return err
	}
	return json.Unmarshal(combined, out)
}
