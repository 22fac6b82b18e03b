//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a request body after it has been flattened to JSON keys.
type Mutation func(map[string]any)

// DtoMap renders v through its JSON tags so tests can corrupt single fields.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, mut := range muts {
		mut(m)
	}
	return m
}

// Set overwrites key with value.
func Set(key string, value any) Mutation {
	return func(m map[string]any) { m[key] = value }
}

// Drop removes key as if the client never sent it.
func Drop(key string) Mutation {
	return func(m map[string]any) { delete(m, key) }
}
