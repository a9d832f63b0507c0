package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/mvnormal/internal/plotting"
	"github.com/katalvlaran/mvnormal/mvn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
mean: [1, 2, 3]
cov:
  - [1.0, 0.0, 0.9]
  - [0.0, 1.0, 0.0]
  - [0.9, 0.0, 1.0]
samples: 10
`

// isolateEnv clears the MVN_* overrides so the host environment cannot leak
// into a test.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"MVN_SEED", "MVN_SAMPLES", "MVN_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mvn.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	return path
}

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestNewRootCmd(t *testing.T) {
	root := newRootCmd()
	assert.Equal(t, "mvn", root.Use)

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"version", "validate", "sample", "stats", "plot"}, names)

	for _, f := range []string{"config", "log-level", "json", "seed"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(f), f)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "mvn version "+version), out)

	out, _, err = run(t, "version", "--json")
	require.NoError(t, err)
	var v map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, version, v["version"])
}

func TestValidate(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, validConfig)

	out, _, err := run(t, "validate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "valid: n=3")
	assert.Contains(t, out, "rank: 3")

	out, _, err = run(t, "validate", "--config", path, "--json")
	require.NoError(t, err)
	var res struct {
		Valid          bool      `json:"valid"`
		Dim            int       `json:"dim"`
		SingularValues []float64 `json:"singular_values"`
		Rank           int       `json:"rank"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Valid)
	assert.Equal(t, 3, res.Dim)
	assert.InDeltaSlice(t, []float64{1.9, 1, 0.1}, res.SingularValues, 1e-12)
}

func TestValidate_Singular(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, "mean: [0, 0]\ncov: [[1, 1], [1, 1]]\n")

	out, _, err := run(t, "validate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "rank: 1")
	assert.Contains(t, out, "singular")
}

func TestValidate_Rejections(t *testing.T) {
	isolateEnv(t)

	tests := []struct {
		name    string
		config  string
		wantErr error
		msg     string
	}{
		{"no parameters", "samples: 5\n", mvn.ErrShape, "mean must be an array"},
		{"row count", "mean: [1, 2, 0]\ncov: [[1, 0], [0, 1]]\n", mvn.ErrShape,
			"covariance matrix had 2 rows, but it should be a 3x3 square matrix"},
		{"not symmetric", "mean: [0, 0]\ncov: [[1, 0.9], [0.8, 1]]\n", mvn.ErrNotSymmetric, ""},
		{"not psd", "mean: [0, 0]\ncov: [[1, 2], [2, 1]]\n", mvn.ErrNotPositiveSemidefinite, ""},
		{"non-numeric", "mean: [0, x]\ncov: [[1, 0], [0, 1]]\n", mvn.ErrType, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "validate", "--config", writeConfig(t, tt.config))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestValidate_BadConfig(t *testing.T) {
	isolateEnv(t)

	_, _, err := run(t, "validate", "--config", writeConfig(t, validConfig+"logging:\n  level: loud\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")

	_, _, err = run(t, "validate", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestSample_CSV(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, validConfig)

	out, _, err := run(t, "sample", "--config", path, "-n", "3", "--format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		fields := strings.Split(line, ",")
		require.Len(t, fields, 3, line)
		for _, f := range fields {
			_, err := strconv.ParseFloat(f, 64)
			require.NoError(t, err, f)
		}
	}
}

func TestSample_DefaultCountFromConfig(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, validConfig)

	out, _, err := run(t, "sample", "--config", path)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 10)
}

func TestSample_JSONSeeded(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, validConfig)

	out1, _, err := run(t, "sample", "--config", path, "-n", "5", "--json", "--seed", "7")
	require.NoError(t, err)
	out2, _, err := run(t, "sample", "--config", path, "-n", "5", "--format", "json", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, out1, out2)

	var data [][]float64
	require.NoError(t, json.Unmarshal([]byte(out1), &data))
	require.Len(t, data, 5)
	for _, x := range data {
		assert.Len(t, x, 3)
	}
}

func TestSample_SeedFromEnv(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, validConfig)

	t.Setenv("MVN_SEED", "11")
	out1, _, err := run(t, "sample", "--config", path, "-n", "4")
	require.NoError(t, err)
	out2, _, err := run(t, "sample", "--config", path, "-n", "4", "--seed", "11")
	require.NoError(t, err)
	assert.Equal(t, out1, out2)
}

func TestSample_Errors(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, validConfig)

	_, _, err := run(t, "sample", "--config", path, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")

	_, _, err = run(t, "sample", "--config", path, "-n", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestSample_TraceLogging(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, validConfig)

	_, stderr, err := run(t, "sample", "--config", path, "-n", "2", "--log-level", "trace")
	require.NoError(t, err)
	assert.Contains(t, stderr, "distribution constructed")
	assert.Equal(t, 2, strings.Count(stderr, "msg=sample"))
}

func TestStats(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, validConfig)

	out, _, err := run(t, "stats", "--config", path, "-n", "25000", "--seed", "1", "--json")
	require.NoError(t, err)

	var rep statsReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 25000, rep.Samples)
	assert.Less(t, rep.MaxMeanError, 0.05)
	assert.Less(t, rep.MaxCovError, 0.05)

	out, _, err = run(t, "stats", "--config", path, "-n", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "empirical covariance:")
	assert.Contains(t, out, "max |cov error|")
}

func TestPlot(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, validConfig)
	img := filepath.Join(t.TempDir(), "cloud.png")

	out, _, err := run(t, "plot", "--config", path, "-n", "200", "--x", "0", "--y", "2", "--out", img)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+img)

	data, err := os.ReadFile(img)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestPlot_AxisOutOfRange(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, validConfig)

	_, _, err := run(t, "plot", "--config", path, "--y", "5", "--out", filepath.Join(t.TempDir(), "x.png"))
	require.ErrorIs(t, err, plotting.ErrAxis)
}

func TestComputeStats(t *testing.T) {
	d, err := mvn.New([]float64{0, 0}, [][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	rep, err := computeStats(d, [][]float64{{1, 1}, {-1, -1}})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, rep.Mean)
	assert.InDelta(t, 2, rep.Cov[0][1], 1e-12)
	assert.InDelta(t, 2, rep.MaxCovError, 1e-12)
	assert.InDelta(t, 0, rep.MaxMeanError, 1e-12)

	_, err = computeStats(d, [][]float64{{1, 1}})
	require.Error(t, err)
}
