package github_test

import (
	"encoding/json"
	"testing"

	ghpkg "github.com/sgaunet/cikit/pkg/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGraphQLErrors(t *testing.T) {
	body := []byte(`{
		"data": null,
		"errors": [
			{
				"message": "Parse error on \"}\" (RCURLY)",
				"locations": [{"line": 3, "column": 5}]
			},
			{
				"type": "NOT_FOUND",
				"path": ["repository", "ref"],
				"message": "Could not resolve to a Ref"
			}
		]
	}`)

	errs, err := ghpkg.DecodeGraphQLErrors(body)
	require.NoError(t, err)
	require.Len(t, errs, 2)

	assert.Equal(t, []ghpkg.GraphQLErrorLocation{{Line: 3, Column: 5}}, errs[0].Locations)
	assert.Equal(t, `Parse error on "}" (RCURLY) (at 3:5)`, errs[0].Error())

	assert.Equal(t, "NOT_FOUND", errs[1].Type)
	assert.Equal(t, []any{"repository", "ref"}, errs[1].Path)
	assert.Equal(t, "Could not resolve to a Ref", errs[1].Error())

	assert.Equal(t, `Parse error on "}" (RCURLY) (at 3:5); Could not resolve to a Ref`, errs.Error())
}

func TestDecodeGraphQLErrors_None(t *testing.T) {
	errs, err := ghpkg.DecodeGraphQLErrors([]byte(`{"data":{"viewer":{"login":"octocat"}}}`))
	require.NoError(t, err)
	assert.Nil(t, errs)
}

func TestDecodeGraphQLErrors_InvalidJSON(t *testing.T) {
	_, err := ghpkg.DecodeGraphQLErrors([]byte(`<html>`))
	assert.Error(t, err)
}

func TestGraphQLErrorLocation_JSON(t *testing.T) {
	data, err := json.Marshal(ghpkg.GraphQLErrorLocation{Line: 12, Column: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"line":12,"column":1}`, string(data))
}

func TestBranchTargetResponse(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		var resp ghpkg.BranchTargetResponse
		require.NoError(t, json.Unmarshal(
			[]byte(`{"repository":{"ref":{"target":{"oid":"1d7d4f1c0a58e0b4c2b0fbd6f3c9a1e2d3c4b5a6"}}}}`), &resp))

		target, ok := resp.Target()
		assert.True(t, ok)
		assert.Equal(t, "1d7d4f1c0a58e0b4c2b0fbd6f3c9a1e2d3c4b5a6", target.OID)
	})

	t.Run("missing branch", func(t *testing.T) {
		var resp ghpkg.BranchTargetResponse
		require.NoError(t, json.Unmarshal([]byte(`{"repository":{"ref":null}}`), &resp))

		_, ok := resp.Target()
		assert.False(t, ok)
	})

	t.Run("oid kept raw", func(t *testing.T) {
		data, err := json.Marshal(ghpkg.BranchTarget{OID: "ABC123"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"oid":"ABC123"}`, string(data))
	})
}
