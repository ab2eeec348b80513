// Package spawner launches, supervises, and reaps the external CLI
// subprocesses that do the actual agent work. It enforces the global
// concurrency cap, streams subprocess output onto the event bus, and records
// usage on exit.
package spawner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MiniSankaz/fleetd/pkg/models"
)

// manifestDir is created under the configured work dir.
const manifestDir = ".ai-tasks"

// typeAppendices holds the type-specialised manifest appendix per agent
// role. The table is keyed over the closed agent type set; roles without
// extra guidance map to the empty string.
var typeAppendices = map[models.AgentType]string{
	models.AgentTypeBusinessAnalyst: `## Business Analysis Guidelines
- Capture functional and non-functional requirements separately
- Express requirements as testable statements
- Flag ambiguities instead of resolving them silently`,
	models.AgentTypeCodeReviewer: `## Code Review Guidelines
- Prioritize correctness, then security, then style
- Reference the exact file and line for every finding
- Distinguish blocking issues from suggestions`,
	models.AgentTypeTestRunner: `## Test Execution Guidelines
- Report pass/fail counts and the failing test names
- Include coverage deltas when available
- Never modify production code to make tests pass`,
	models.AgentTypeTechnicalArchitect: `## Architecture Guidelines
- State the decision, the alternatives considered, and the trade-offs
- Call out irreversible choices explicitly
- Include a rollback path for every proposed change`,
	models.AgentTypeDevelopmentPlanner: `## Planning Guidelines
- Break work into independently shippable increments
- Order tasks by dependency, then by risk
- Estimate in relative sizes, not calendar dates`,
	models.AgentTypeSOPEnforcer: `## Compliance Guidelines
- Cite the specific SOP section for every violation
- Classify findings by severity
- Suggest the minimal compliant alternative`,
	models.AgentTypeGeneralPurpose: "",
}

// ManifestPath returns the manifest file location for an agent.
func ManifestPath(workDir, agentID string) string {
	return filepath.Join(workDir, manifestDir, fmt.Sprintf("task-%s.md", agentID))
}

// BuildManifest renders the task manifest handed to the CLI on stdin. The
// manifest is the agent's entire input.
func BuildManifest(agent *models.Agent, task *models.Task) (string, error) {
	contextJSON := "{}"
	if len(task.Context) > 0 {
		raw, err := json.MarshalIndent(task.Context, "", "  ")
		if err != nil {
			return "", fmt.Errorf("serializing task context: %w", err)
		}
		contextJSON = string(raw)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# AI Agent Task\n")
	fmt.Fprintf(&sb, "**Agent Type**: %s\n", agent.Type)
	fmt.Fprintf(&sb, "**Task ID**: %s\n", task.ID)
	fmt.Fprintf(&sb, "**Description**: %s\n\n", task.Description)
	fmt.Fprintf(&sb, "## Instructions\n%s\n\n", task.Prompt)
	fmt.Fprintf(&sb, "## Context\n```json\n%s\n```\n\n", contextJSON)
	sb.WriteString(`## Requirements
1. Follow the SOPs defined in CLAUDE.md
2. Use the appropriate agent type guidelines
3. Provide clear, actionable output
4. Include code examples where applicable
5. Document any assumptions made

## Output Format
- Executive Summary
- Detailed Analysis
- Recommendations
- Implementation Steps
- Code Examples
`)
	if appendix := typeAppendices[agent.Type]; appendix != "" {
		sb.WriteString("\n")
		sb.WriteString(appendix)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// WriteManifest writes rendered manifest content, creating the manifest
// directory on first use.
func WriteManifest(workDir, agentID, manifest string) (string, error) {
	path := ManifestPath(workDir, agentID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating manifest directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		return "", fmt.Errorf("writing manifest: %w", err)
	}
	return path, nil
}

// RemoveManifest deletes an agent's manifest file. Missing files are not an
// error; the manifest may already be gone after a crash.
func RemoveManifest(workDir, agentID string) error {
	err := os.Remove(ManifestPath(workDir, agentID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing manifest: %w", err)
	}
	return nil
}
