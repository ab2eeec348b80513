package spawner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiniSankaz/fleetd/pkg/models"
)

func TestBuildManifest(t *testing.T) {
	agent := &models.Agent{
		ID:   "agent-1",
		Type: models.AgentTypeTestRunner,
	}
	task := &models.Task{
		ID:          "t1",
		Description: "run the suite",
		Prompt:      "Run all unit tests and report failures.",
		Context:     map[string]any{"branch": "main"},
	}

	manifest, err := BuildManifest(agent, task)
	require.NoError(t, err)

	assert.Contains(t, manifest, "# AI Agent Task\n")
	assert.Contains(t, manifest, "**Agent Type**: test-runner\n")
	assert.Contains(t, manifest, "**Task ID**: t1\n")
	assert.Contains(t, manifest, "**Description**: run the suite\n")
	assert.Contains(t, manifest, "## Instructions\nRun all unit tests and report failures.\n")
	assert.Contains(t, manifest, "```json\n{\n  \"branch\": \"main\"\n}\n```")
	assert.Contains(t, manifest, "1. Follow the SOPs defined in CLAUDE.md")
	assert.Contains(t, manifest, "## Output Format")
	// Type-specialised appendix for the test-runner role.
	assert.Contains(t, manifest, "## Test Execution Guidelines")
}

func TestBuildManifestEmptyContext(t *testing.T) {
	agent := &models.Agent{ID: "agent-1", Type: models.AgentTypeGeneralPurpose}
	task := &models.Task{ID: "t1", Description: "d", Prompt: "p"}

	manifest, err := BuildManifest(agent, task)
	require.NoError(t, err)
	assert.Contains(t, manifest, "```json\n{}\n```")
	// General-purpose agents get no appendix.
	assert.NotContains(t, manifest, "Guidelines")
}

func TestWriteAndRemoveManifest(t *testing.T) {
	workDir := t.TempDir()

	path, err := WriteManifest(workDir, "agent-1", "content")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(workDir, ".ai-tasks", "task-agent-1.md"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(raw))

	require.NoError(t, RemoveManifest(workDir, "agent-1"))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Removing twice is not an error.
	require.NoError(t, RemoveManifest(workDir, "agent-1"))
}
