package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type testDoc struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

func TestMemoryCollectionRoundTrip(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().Collection("docs")

	require.NoError(t, coll.Insert(ctx, testDoc{ID: "a", Name: "first", Score: 1}))

	var got testDoc
	require.NoError(t, coll.FindByID(ctx, "a", &got))
	require.Equal(t, "first", got.Name)

	err := coll.FindByID(ctx, "missing", &got)
	require.ErrorIs(t, err, ErrNoDocument)
}

func TestMemoryCollectionListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().Collection("docs")

	for i := 0; i < 5; i++ {
		doc := testDoc{ID: fmt.Sprintf("doc-%d", i), Score: i}
		require.NoError(t, coll.Insert(ctx, doc))
	}

	var docs []testDoc
	require.NoError(t, coll.List(ctx, 3, &docs))
	require.Len(t, docs, 3)
	require.Equal(t, "doc-0", docs[0].ID)
	require.Equal(t, "doc-2", docs[2].ID)

	count, err := coll.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 5, count)
}

func TestMemoryCollectionUpdateMergesFields(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().Collection("docs")

	require.NoError(t, coll.Insert(ctx, testDoc{ID: "a", Name: "keep", Score: 1}))
	require.NoError(t, coll.UpdateByID(ctx, "a", map[string]any{"score": 9}))

	var got testDoc
	require.NoError(t, coll.FindByID(ctx, "a", &got))
	require.Equal(t, 9, got.Score)
	require.Equal(t, "keep", got.Name, "untouched fields survive the merge")

	err := coll.UpdateByID(ctx, "missing", map[string]any{"score": 1})
	require.ErrorIs(t, err, ErrNoDocument)
}

func TestMemoryCollectionRejectsDocumentWithoutID(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().Collection("docs")

	err := coll.Insert(ctx, map[string]any{"name": "anonymous"})
	require.Error(t, err)
}
