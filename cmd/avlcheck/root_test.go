package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return outBuf.String(), errBuf.String(), err
}

func TestDemo(t *testing.T) {
	out, _, err := execCommand(t, "demo")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		`(1,"H")`,
		`(2,"e")`,
		`(3,"l")`,
		`(4,"l")`,
		`(5,"o")`,
		`count(5)=1 count(7)=0`,
		`erase(5): size=4 found=false`,
		`m[7]="" size=5`,
		`(1:H,(3:l,7:)4:l)2:e;`,
		``,
	}, "\n"), out)
}

func TestStress(t *testing.T) {
	_, logs, err := execCommand(t, "stress", "--seed=7", "--ops=2000", "--key-space=128", "--workers=3", "--clear-every=400")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(logs, "workload passed"))
	assert.Contains(t, logs, "seed=7")
}

func TestStressJSONLogs(t *testing.T) {
	_, logs, err := execCommand(t, "stress", "--seed=1", "--ops=100", "--workers=1", "--log-format=json")
	require.NoError(t, err)
	assert.Contains(t, logs, `"message":"workload passed"`)
}

func TestStressInvalid(t *testing.T) {
	_, _, err := execCommand(t, "stress", "--workers=0")
	require.Error(t, err)
	_, _, err = execCommand(t, "stress", "--key-space=0", "--workers=1")
	require.Error(t, err)
	_, _, err = execCommand(t, "demo", "--log-format=xml")
	require.Error(t, err)
}

func TestConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "avlcheck.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("ops: 50\nworkers: 2\nseed: 11\n"), 0o600))
	t.Setenv("AVLCHECK_KEY_SPACE", "16")

	_, logs, err := execCommand(t, "stress", "--config", cfgFile)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(logs, "workload passed"))
	assert.Contains(t, logs, "ops=50")

	_, logs, err = execCommand(t, "stress", "--config", cfgFile, "--workers=1")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(logs, "workload passed"))
}
