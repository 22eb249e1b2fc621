package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Execute(args, strings.NewReader(stdin), &out, &errOut)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jsonutil.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNormalize_YAMLGolden(t *testing.T) {
	res := run(t, "", "normalize", "-o", "canonical", "--dates", "testdata/payload.yaml")
	require.Equal(t, ExitSuccess, res.code, res.stderr)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "normalize_yaml", []byte(res.stdout))
}

func TestNormalize_JSONFromStdin(t *testing.T) {
	res := run(t, `{"b":1,"a":[true,null,"x"]}`, "normalize")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, `{"a":[true,null,"x"],"b":1}`+"\n", res.stdout)
}

func TestNormalize_Dates(t *testing.T) {
	cfg := writeConfig(t, "location: UTC\n")
	res := run(t, `{"at":"2013-07-03T16:34:52-0100","n":"x"}`, "normalize", "-c", cfg, "-o", "canonical", "--dates", "-")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, `{"at":"2013-07-03T17:34:52Z","n":"x"}`+"\n", res.stdout)
}

func TestNormalize_BinaryOutput(t *testing.T) {
	for _, format := range []string{"cbor", "msgpack"} {
		res := run(t, `{"a":1}`, "normalize", "-o", format)
		require.Equal(t, ExitSuccess, res.code, res.stderr)
		assert.NotEmpty(t, res.stdout, format)
		assert.False(t, strings.HasSuffix(res.stdout, "\n"), format)
	}
}

func TestNormalize_Errors(t *testing.T) {
	res := run(t, `{}`, "normalize", "-o", "xml")
	assert.Equal(t, ExitCommandError, res.code)
	assert.Contains(t, res.stderr, "unknown output codec")

	res = run(t, `{"broken"`, "normalize")
	assert.Equal(t, ExitFailure, res.code)

	res = run(t, "", "normalize", "testdata/missing.json")
	assert.Equal(t, ExitCommandError, res.code)

	res = run(t, `{}`, "normalize", "-i", "toml")
	assert.Equal(t, ExitFailure, res.code)
}

func TestExtract_Report(t *testing.T) {
	doc := `{"a":"2013-07-03T16:34:52+08:00","b":["x","2013-07-03T16:34:52Z"],"c/d":"invalid-date"}`
	res := run(t, doc, "extract")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t,
		`{"/a":{"offset":"+08:00","utc":"2013-07-03T08:34:52Z"},"/b/1":{"offset":"+00:00","utc":"2013-07-03T16:34:52Z"}}`+"\n",
		res.stdout)
}

func TestParseTime(t *testing.T) {
	res := run(t, "", "parse-time", "2013-07-03T16:34:52.249482-0800")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "2013-07-04T00:34:52.249482Z -08:00\n", res.stdout)

	res = run(t, "", "parse-time", "2013-07-03T16:34:52.1234567Z")
	assert.Equal(t, ExitFailure, res.code)
	assert.Contains(t, res.stderr, "jsonutil: parse-time")
}

func TestParseTime_NaiveDiagnostics(t *testing.T) {
	cfg := writeConfig(t, "location: UTC\n")

	res := run(t, "", "parse-time", "-c", cfg, "2013-07-03T16:34:52")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "2013-07-03T16:34:52Z +00:00\n", res.stdout)
	assert.Contains(t, res.stderr, "naive_timestamp")

	res = run(t, "", "parse-time", "-c", cfg, "--naive-time", "ignore", "2013-07-03T16:34:52")
	require.Equal(t, ExitSuccess, res.code)
	assert.Empty(t, res.stderr)

	res = run(t, "", "parse-time", "-c", cfg, "--naive-time", "error", "2013-07-03T16:34:52")
	assert.Equal(t, ExitFailure, res.code)
}

func TestFormatTime(t *testing.T) {
	cfg := writeConfig(t, "location: UTC\nnaive_time: ignore\n")

	res := run(t, "", "format-time", "-c", cfg, "2013-07-03T16:34:52.5")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "2013-07-03T16:34:52.5Z\n", res.stdout)

	res = run(t, "", "format-time", "-c", cfg, "2013-07-03T16:34:52+01:00")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, "2013-07-03T15:34:52Z\n", res.stdout)

	res = run(t, "", "format-time", "-c", cfg, "--naive-time", "error", "2013-07-03T16:34:52")
	assert.Equal(t, ExitFailure, res.code)
}

func TestConfigErrors(t *testing.T) {
	res := run(t, "", "parse-time", "-c", writeConfig(t, "bogus: 1\n"), "2013-07-03T16:34:52Z")
	assert.Equal(t, ExitCommandError, res.code)

	res = run(t, "", "parse-time", "-c", filepath.Join(t.TempDir(), "absent.yaml"), "2013-07-03T16:34:52Z")
	assert.Equal(t, ExitCommandError, res.code)

	res = run(t, "", "parse-time", "--naive-time", "loud", "2013-07-03T16:34:52Z")
	assert.Equal(t, ExitCommandError, res.code)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "x", assert.AnError)))
}

func TestNormalize_DuplicateMembers(t *testing.T) {
	cfg := writeConfig(t, "duplicate_members: error\n")
	res := run(t, `{"a":1,"a":2}`, "normalize", "-c", cfg)
	assert.Equal(t, ExitFailure, res.code)
	assert.Contains(t, res.stderr, "/a")

	res = run(t, `{"a":1,"a":2}`, "normalize")
	require.Equal(t, ExitSuccess, res.code, res.stderr)
	assert.Equal(t, `{"a":2}`+"\n", res.stdout)
}
