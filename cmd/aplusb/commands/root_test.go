package commands

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aplusb/internal/crypto"
)

// run executes the CLI in a fresh working directory seeded with input, if non-nil.
func run(t *testing.T, input *string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	chdir(t, t.TempDir())
	if input != nil {
		require.NoError(t, os.WriteFile("input.txt", []byte(*input), 0o644))
	}

	var out, errOut bytes.Buffer
	err = execute(args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func str(s string) *string { return &s }

func TestExecute_Success(t *testing.T) {
	stdout, stderr, err := run(t, str("3 4"))

	require.NoError(t, err)
	assert.Regexp(t, `level=INFO msg="result written" run_id=[0-9a-f-]{36} result=7\n`, stdout)
	assert.Empty(t, stderr)

	b, err := os.ReadFile("output.txt")
	require.NoError(t, err)
	assert.Equal(t, "7\n", string(b))
}

func TestExecute_Failures(t *testing.T) {
	tests := []struct {
		name       string
		input      *string
		wantStderr string
	}{
		{"missing input", nil, "Unable to open input.txt\n"},
		{"empty input", str(""), "Error reading input.txt at line 1\n"},
		{
			"first out of range",
			str("1000000001 0"),
			"Argument 1000000001 doesn't hit in the range [-1000000000, 1000000000]\n",
		},
		{
			"second out of range",
			str("5 -2000000000"),
			"Argument -2000000000 doesn't hit in the range [-1000000000, 1000000000]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := run(t, tt.input)

			require.Error(t, err)
			assert.Equal(t, tt.wantStderr, stderr)
			assert.Regexp(t, `level=WARN msg="pipeline stage failed" run_id=[0-9a-f-]{36}`, stdout)
			assert.NoFileExists(t, "output.txt")
		})
	}
}

func TestExecute_OutputNotWritable(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("input.txt", []byte("1 2"), 0o644))
	require.NoError(t, os.Mkdir("output.txt", 0o755))

	var out, errOut bytes.Buffer
	err := execute(nil, &out, &errOut)

	require.Error(t, err)
	assert.Equal(t, "Unable to open output.txt\n", errOut.String())
}

func TestExecute_UnexpectedArgument(t *testing.T) {
	_, stderr, err := run(t, str("1 2"), "extra")

	require.Error(t, err)
	assert.Equal(t, "Uncaught exception.\n", stderr)
}

func TestFingerprint(t *testing.T) {
	_, _, err := run(t, str("20 22"))
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	require.NoError(t, execute([]string{"fingerprint"}, &out, &errOut))

	assert.Equal(t, "Fingerprint: "+crypto.Fingerprint([]byte("42\n"))+"\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestFingerprint_MissingOutput(t *testing.T) {
	_, stderr, err := run(t, nil, "fingerprint")

	require.Error(t, err)
	assert.Equal(t, "Unable to open output.txt\n", stderr)
}

func TestFingerprint_HashesStoredBytes(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("output.txt", []byte("007"), 0o644))

	var out, errOut bytes.Buffer
	require.NoError(t, execute([]string{"fingerprint"}, &out, &errOut))

	assert.Equal(t, "Fingerprint: "+crypto.Fingerprint([]byte("007"))+"\n", out.String())
	assert.NotContains(t, out.String(), crypto.Fingerprint([]byte("7\n")))
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
