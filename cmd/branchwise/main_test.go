package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stationsCSV = "Station,Stipend (UG),Stipend (PG),Preferred Branches\n" +
	"Alpha Labs,5000,6000,A1\n" +
	"Beta Corp,abc,N/A,Any\n" +
	"Gamma Inc,3000,3500,AnyA1\n"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("BRANCHWISE_LOGGING_LEVEL", "error")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunDefaults(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("PWD", dir)
	require.NoError(t, os.WriteFile("StationDetails.csv", []byte(stationsCSV), 0644))

	out, err := execute(t)
	require.NoError(t, err)

	want := filepath.Join(dir, "Branchwise PS2 Station Details.xlsx")
	assert.Contains(t, out, "Branchwise PS2 Station Details.xlsx saved to '")
	assert.Contains(t, out, "successfully")
	_, err = os.Stat(want)
	assert.NoError(t, err)
}

func TestRunJSON(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.csv")
	output := filepath.Join(dir, "out.xlsx")
	require.NoError(t, os.WriteFile(input, []byte(stationsCSV), 0644))

	out, err := execute(t, "-i", input, "-o", output, "--skip-empty", "--json")
	require.NoError(t, err)

	var result Output
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Success)
	assert.Equal(t, output, result.Output)
	assert.Equal(t, 3, result.RowCount)
	require.Len(t, result.Sheets, 3)
	assert.Equal(t, "Any", result.Sheets[0].Name)
	assert.NotEmpty(t, result.Duration)
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "-i", filepath.Join(dir, "missing.csv"), "-o", filepath.Join(dir, "out.xlsx"))
	assert.Error(t, err)
}

func TestRunRejectsArgs(t *testing.T) {
	_, err := execute(t, "extra")
	assert.Error(t, err)
}

func TestRunInvalidConfig(t *testing.T) {
	_, err := execute(t, "-o", "out.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.csv")
	output := filepath.Join(dir, "out.xlsx")
	require.NoError(t, os.WriteFile(input, []byte(stationsCSV), 0644))

	_, err := execute(t, "-i", input, "-o", output, "--skip-empty")
	require.NoError(t, err)

	out, err := execute(t, "inspect", output)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "out.xlsx: 3 sheets", lines[0])
	assert.Equal(t, []string{"Any", "1"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"A1", "1"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"AnyA1", "1"}, strings.Fields(lines[3]))
}

func TestInspectIgnoresGenerationSettings(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.csv")
	output := filepath.Join(dir, "out.xlsx")
	require.NoError(t, os.WriteFile(input, []byte(stationsCSV), 0644))
	_, err := execute(t, "-i", input, "-o", output)
	require.NoError(t, err)

	t.Setenv("BRANCHWISE_OUTPUT", "report.csv")
	out, err := execute(t, "inspect", output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "out.xlsx: "))

	_, err = execute(t, "-i", input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestInspectMissingFile(t *testing.T) {
	_, err := execute(t, "inspect", filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}
