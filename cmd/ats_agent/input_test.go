package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-screener/internal/config"
)

func TestLoadResume_PlainTextWithNameFromFilename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Ada_Lovelace.txt")
	require.NoError(t, os.WriteFile(path, []byte("Skills\nGo, SQL"), 0o644))

	resume, err := loadResume(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", resume.CandidateName)
	assert.Contains(t, resume.Text, "Go, SQL")
}

func TestLoadResume_MissingFile(t *testing.T) {
	_, err := loadResume(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestResolveJobDescription_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("We need Go engineers."), 0o644))

	text, err := resolveJobDescription(context.Background(), path, "", false, false)
	require.NoError(t, err)
	assert.Equal(t, "We need Go engineers.", text)
}

func TestResolveJobDescription_EmptyInputs(t *testing.T) {
	text, err := resolveJobDescription(context.Background(), "", "", false, false)
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestMergedConfig_FlagsWinOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"profile":"data-analyst","strategy":"legacy","concurrency":2}`), 0o644))

	cfg, err := mergedConfig(path, config.Config{ProfileID: "software-engineer"})
	require.NoError(t, err)
	assert.Equal(t, "software-engineer", cfg.ProfileID)
	assert.Equal(t, "legacy", cfg.Strategy)
	assert.Equal(t, 2, cfg.Concurrency)
}

func TestMergedConfig_ValidatesMergedResult(t *testing.T) {
	_, err := mergedConfig("", config.Config{Strategy: "quantum"})
	assert.Error(t, err)
}

func TestAnalyzerFor_Strategies(t *testing.T) {
	weighted, err := analyzerFor("weighted")
	require.NoError(t, err)
	assert.NotNil(t, weighted)

	legacy, err := analyzerFor("legacy")
	require.NoError(t, err)
	assert.NotNil(t, legacy)

	_, err = analyzerFor("quantum")
	assert.Error(t, err)
}
