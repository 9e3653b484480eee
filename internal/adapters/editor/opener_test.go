package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notFound(string) (string, error) { return "", errors.New("not found") }

func TestCommand_PreferredWithArgs(t *testing.T) {
	o := NewOpener("code --wait")
	o.lookPath = notFound

	cmd, err := o.Command("/tmp/courses.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"code", "--wait", "/tmp/courses.csv"}, cmd.Args)
}

func TestCommand_FallsBackToEnv(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "nano")
	o := NewOpener("")
	o.lookPath = notFound

	cmd, err := o.Command("courses.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"nano", "courses.csv"}, cmd.Args)
}

func TestCommand_NoEditor(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	o := NewOpener("")
	o.lookPath = notFound

	_, err := o.Command("courses.csv")
	assert.Error(t, err)
}
