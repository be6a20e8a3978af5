package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillgap/internal/types"
)

func writeTestProfile(t *testing.T, dir string) string {
	t.Helper()
	content := `{
		"skills": [
			{"name": "JavaScript", "category": "language", "proficiency": "advanced", "synonyms": ["js"]}
		]
	}`
	path := filepath.Join(dir, "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func writeTestJob(t *testing.T, dir string) string {
	t.Helper()
	content := "Senior Engineer position. Must have React and JavaScript experience. Join our development team for this role."
	path := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAnalyzeCommand_MissingProfile(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	jobFile := writeTestJob(t, tmpDir)

	cmd := exec.Command(binaryPath, "analyze", "--in", jobFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "profile")
}

func TestAnalyzeCommand_FullRun(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	jobFile := writeTestJob(t, tmpDir)
	profileFile := writeTestProfile(t, tmpDir)
	outFile := filepath.Join(tmpDir, "result.json")

	cmd := exec.Command(binaryPath, "analyze", "--in", jobFile, "--profile", profileFile, "--out", outFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "analyze failed: %s", string(output))

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)

	var result types.GapAnalysisResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, jobFile, result.JobID)
	assert.NotEmpty(t, result.Matches)
}

func TestAnalyzeCommand_ThinContent(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	profileFile := writeTestProfile(t, tmpDir)
	jobFile := filepath.Join(tmpDir, "thin.txt")
	require.NoError(t, os.WriteFile(jobFile, []byte("React job."), 0644))

	cmd := exec.Command(binaryPath, "analyze", "--in", jobFile, "--profile", profileFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "no usable job content")
}
