package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `CSCI100,Introduction to Computer Science
CSCI101,Introduction to Programming in C++,CSCI100
CSCI200,Data Structures,CSCI101
MATH201,Discrete Mathematics
CSCI300,Introduction to Algorithms,CSCI200,MATH201
CSCI350,Operating Systems,CSCI300,CSCI999
`

func writeSample(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "courses.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "courseplanner.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: error\n"), 0644))
	t.Setenv("COURSEPLANNER_CONFIG", cfgPath)
	t.Setenv("COURSEPLANNER_CATALOG", "")
	t.Setenv("COURSEPLANNER_LOG_LEVEL", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestLoadCommand_PrintsSummary(t *testing.T) {
	out, err := run(t, "load", "--catalog", writeSample(t, sampleCatalog))
	require.NoError(t, err)

	assert.Contains(t, out, "Inserted:          6")
	assert.Contains(t, out, "Unknown prereqs:   1")
	assert.Contains(t, out, "UnknownPrerequisite: Unknown prereq 'CSCI999' for CSCI350")
}

func TestLoadCommand_Strict(t *testing.T) {
	defer func() { strictLoad = false }()

	_, err := run(t, "load", "--strict", "--catalog", writeSample(t, sampleCatalog))
	assert.Error(t, err)
}

func TestLoadCommand_MissingFile(t *testing.T) {
	out, err := run(t, "load", "--catalog", filepath.Join(t.TempDir(), "nope.csv"))

	assert.Error(t, err)
	assert.Contains(t, out, "SourceError: Cannot open file:")
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "list", "--catalog", writeSample(t, sampleCatalog))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Here is a sample schedule:\n\n"+
		"CSCI100, Introduction to Computer Science\n"+
		"CSCI101, Introduction to Programming in C++\n"+
		"CSCI200, Data Structures\n"+
		"CSCI300, Introduction to Algorithms\n"+
		"CSCI350, Operating Systems\n"+
		"MATH201, Discrete Mathematics\n"), out)
	assert.Regexp(t, `\n\(List generated in \d+ ms\)\n$`, out)
}

func TestListCommand_NothingLoaded(t *testing.T) {
	_, err := run(t, "list", "--catalog", writeSample(t, "A,TitleA,B\nB,TitleB,A\n"))
	assert.Error(t, err)
}

func TestShowCommand(t *testing.T) {
	out, err := run(t, "show", "csci300", "--catalog", writeSample(t, sampleCatalog))
	require.NoError(t, err)

	assert.Equal(t, "CSCI300, Introduction to Algorithms\n"+
		"Prerequisites: CSCI200, MATH201\n"+
		"  - CSCI200: Data Structures\n"+
		"  - MATH201: Discrete Mathematics\n", out)
}

func TestShowCommand_Unknown(t *testing.T) {
	_, err := run(t, "show", "CSCI999", "--catalog", writeSample(t, sampleCatalog))
	assert.ErrorContains(t, err, "not found")
}

func TestSearchCommand(t *testing.T) {
	out, err := run(t, "search", "algorithms", "--catalog", writeSample(t, sampleCatalog))
	require.NoError(t, err)

	assert.Equal(t, "CSCI300, Introduction to Algorithms\n", out)
}
