package main

import (
	"bytes"
	"testing"

	"github.com/filecoin-project/go-unsign/unsign"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HELPER METHODS

type run struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
	err    error
}

func runApp(t *testing.T, stdin []byte, args ...string) *run {
	t.Helper()
	r := &run{}
	log := logrus.New()
	log.SetOutput(&r.stderr)
	app := newApp(bytes.NewReader(stdin), &r.stdout, log)
	r.err = app.Run(append([]string{"unsign"}, args...))
	return r
}

// PUBLIC METHODS

func TestDecryptRaw(t *testing.T) {
	r := runApp(t, []byte{0x00, 0x00, 0x02}, "FFFFFF")
	require.NoError(t, r.err)
	assert.Equal(t, []byte{0x02, 0x00, 0x00}, r.stdout.Bytes())
}

func TestDecryptFormats(t *testing.T) {
	r := runApp(t, []byte{0x02}, "--format", "hex", "FFFFFFFF")
	require.NoError(t, r.err)
	assert.Equal(t, "02\n", r.stdout.String())

	r = runApp(t, []byte{0x02}, "--format", "cbor", "--bits", "1024", "FFFFFFFF")
	require.NoError(t, r.err)
	var expected bytes.Buffer
	require.NoError(t, (&unsign.Result{Bits: 1024, Block: []byte{0x02}}).MarshalCBOR(&expected))
	assert.Equal(t, expected.Bytes(), r.stdout.Bytes())
}

func TestDecryptModulusFromEnv(t *testing.T) {
	t.Setenv("UNSIGN_MODULUS", "ffffffff")
	t.Setenv("UNSIGN_FORMAT", "hex")
	r := runApp(t, []byte{0x00, 0x02})
	require.NoError(t, r.err)
	assert.Equal(t, "0002\n", r.stdout.String())
}

func TestDecryptExitCodes(t *testing.T) {
	cases := []struct {
		name  string
		stdin []byte
		args  []string
		msg   string
		code  int
	}{
		{"too large", make([]byte, 65), []string{"--bits", "512", "FFFF"}, "Failed to pack signature, too much input?", 2},
		{"bad modulus", []byte{0x01}, []string{"xyz"}, "Failed to load modulus, invalid or too long?", 3},
		{"not reduced", []byte{0x12, 0x34}, []string{"1234"}, "Signature is not less than modulus", 4},
		{"overflow", []byte{0x02}, []string{"FFFFFF"}, "Failed to unpack decrypted signature?!?", 5},
		{"empty stdin", nil, []string{"FFFFFF"}, "Error reading stdin", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := runApp(t, tc.stdin, tc.args...)
			require.Error(t, r.err)
			assert.Equal(t, tc.msg, r.err.Error())
			assert.Equal(t, tc.code, exitCode(r.err))
			assert.Empty(t, r.stdout.Bytes())
		})
	}
}

func TestDecryptReportsEveryConfigProblem(t *testing.T) {
	r := runApp(t, []byte{0x01}, "--bits", "3000", "--format", "xml")
	require.Error(t, r.err)
	assert.Equal(t, 1, exitCode(r.err))
	assert.Contains(t, r.err.Error(), "no modulus given")
	assert.Contains(t, r.err.Error(), "unsupported key size 3000")
	assert.Contains(t, r.err.Error(), `unknown output format "xml"`)
}

func TestDecryptVerbose(t *testing.T) {
	r := runApp(t, []byte{0x02}, "-v", "FFFFFFFF")
	require.NoError(t, r.err)
	assert.Contains(t, r.stderr.String(), "sig=02")
	assert.Contains(t, r.stderr.String(), "mod=FFFFFFFF")
	assert.Contains(t, r.stderr.String(), "out=02")
}

func TestArith(t *testing.T) {
	cases := []struct {
		args     []string
		expected string
	}{
		{[]string{"add", "FFFFFFFF", "1"}, "r=100000000\n"},
		{[]string{"sub", "100000000", "1"}, "r=FFFFFFFF\n"},
		{[]string{"mulmod", "7", "9", "D"}, "r=B\n"},
		{[]string{"expmod", "123", "345", "12345"}, "r=C720\n"},
		{[]string{"--bits", "512", "expmod", "123", "345", "12345"}, "r=C720\n"},
	}
	for _, tc := range cases {
		r := runApp(t, nil, tc.args...)
		require.NoError(t, r.err, "%v", tc.args)
		assert.Equal(t, tc.expected, r.stdout.String(), "%v", tc.args)
	}
}

func TestArithErrors(t *testing.T) {
	r := runApp(t, nil, "mulmod", "12345", "1", "12345")
	require.Error(t, r.err)
	assert.Equal(t, "a must be less than m", r.err.Error())

	r = runApp(t, nil, "expmod", "1", "1", "0")
	require.Error(t, r.err)
	assert.Equal(t, "m must not be zero", r.err.Error())

	r = runApp(t, nil, "add", "1", "xyz")
	require.Error(t, r.err)
	assert.Equal(t, "Failed to load b, invalid or too long?", r.err.Error())

	r = runApp(t, nil, "add", "1")
	require.Error(t, r.err)
	assert.Equal(t, "Usage: unsign add a b", r.err.Error())
	assert.Equal(t, 1, exitCode(r.err))
}
