package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// batchDirs lays out two spec trees:
//
//	pets.yaml         changed (breaking)
//	graph/users.gql   changed (additive)
//	broken.yaml       fails to parse in new
//	only-old.yaml     removed
//	only-new.graphql  added
//	README.md         ignored
func batchDirs(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	oldDir, newDir := filepath.Join(root, "old"), filepath.Join(root, "new")

	writeFile(t, filepath.Join(oldDir, "pets.yaml"), petsV1)
	writeFile(t, filepath.Join(newDir, "pets.yaml"), petsV2)
	writeFile(t, filepath.Join(oldDir, "graph", "users.gql"), usersV1)
	writeFile(t, filepath.Join(newDir, "graph", "users.gql"), usersV2)
	writeFile(t, filepath.Join(oldDir, "broken.yaml"), petsV1)
	writeFile(t, filepath.Join(newDir, "broken.yaml"), "openapi: [unclosed")
	writeFile(t, filepath.Join(oldDir, "only-old.yaml"), petsV1)
	writeFile(t, filepath.Join(newDir, "only-new.graphql"), usersV1)
	writeFile(t, filepath.Join(oldDir, "README.md"), "# specs")
	writeFile(t, filepath.Join(newDir, "README.md"), "# specs v2")
	return oldDir, newDir
}

func TestCollectInputs(t *testing.T) {
	oldDir, newDir := batchDirs(t)

	inputs, failures, err := collectInputs(oldDir, newDir)
	require.NoError(t, err)

	names := make([]string, 0, len(inputs))
	for _, in := range inputs {
		names = append(names, in.Filename)
		assert.NotEmpty(t, in.OldContent)
		assert.NotEmpty(t, in.NewContent)
	}
	assert.Equal(t, []string{"broken.yaml", "graph/users.gql", "pets.yaml"}, names)

	require.Len(t, failures, 2)
	assert.Equal(t, "only-old.yaml", failures[0].Filename)
	assert.Contains(t, failures[0].Error, "removed")
	assert.Equal(t, "only-new.graphql", failures[1].Filename)
	assert.Contains(t, failures[1].Error, "added")
}

func TestCollectInputs_MissingDir(t *testing.T) {
	_, _, err := collectInputs(filepath.Join(t.TempDir(), "nope"), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scanning")
}

func TestHandleBatch_JSON(t *testing.T) {
	oldDir, newDir := batchDirs(t)

	var buf bytes.Buffer
	require.NoError(t, HandleBatch(context.Background(), &buf, []string{"--format", "json", "--concurrency", "2", oldDir, newDir}))

	var got struct {
		Results []struct {
			Filename string `json:"filename"`
		} `json:"results"`
		Failures []struct {
			Filename string `json:"filename"`
			Error    string `json:"error"`
		} `json:"failures"`
		Aggregate struct {
			Files                int    `json:"files"`
			BreakingChanges      int    `json:"breakingChanges"`
			SemverRecommendation string `json:"semverRecommendation"`
		} `json:"aggregate"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	require.Len(t, got.Results, 2)
	assert.Equal(t, "graph/users.gql", got.Results[0].Filename)
	assert.Equal(t, "pets.yaml", got.Results[1].Filename)

	require.Len(t, got.Failures, 3)
	assert.Equal(t, "broken.yaml", got.Failures[2].Filename)
	assert.Contains(t, got.Failures[2].Error, "new version")

	assert.Equal(t, 2, got.Aggregate.Files)
	assert.Equal(t, 1, got.Aggregate.BreakingChanges)
	assert.Equal(t, "MAJOR", got.Aggregate.SemverRecommendation)
}

func TestHandleBatch_Text(t *testing.T) {
	oldDir, newDir := batchDirs(t)

	var buf bytes.Buffer
	require.NoError(t, HandleBatch(context.Background(), &buf, []string{oldDir, newDir}))

	out := buf.String()
	assert.Contains(t, out, "Files (2):")
	assert.Contains(t, out, "✗ pets.yaml: 3 changes, 1 breaking")
	assert.Contains(t, out, "✓ graph/users.gql: 1 changes, 0 breaking")
	assert.Contains(t, out, "Failures (3):")
	assert.Contains(t, out, "Files compared: 2")
	assert.Contains(t, out, "Recommended version bump: Major")
}

func TestHandleBatch_FailOnBreaking(t *testing.T) {
	oldDir, newDir := batchDirs(t)

	var buf bytes.Buffer
	err := HandleBatch(context.Background(), &buf, []string{"--fail-on-breaking", oldDir, newDir})
	require.ErrorIs(t, err, ErrBreakingChanges)
}

func TestHandleBatch_Errors(t *testing.T) {
	empty := t.TempDir()
	oldDir, newDir := batchDirs(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"arg count", []string{oldDir}, "exactly two directories"},
		{"concurrency", []string{"--concurrency", "0", oldDir, newDir}, "invalid concurrency"},
		{"bad format", []string{"--format", "csv", oldDir, newDir}, "invalid format"},
		{"nothing to compare", []string{empty, empty}, "no supported files"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := HandleBatch(context.Background(), &buf, tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
