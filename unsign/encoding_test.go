package unsign

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCBOR(t *testing.T) {
	res := Result{Bits: 4096, Block: []byte{0x00, 0x01, 0xff}}

	var buf bytes.Buffer
	require.NoError(t, res.MarshalCBOR(&buf))
	assert.Equal(t, []byte{0x82, 0x19, 0x10, 0x00, 0x43, 0x00, 0x01, 0xff}, buf.Bytes())

	var decoded Result
	require.NoError(t, decoded.UnmarshalCBOR(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, res, decoded)
}

func TestResultCBORNil(t *testing.T) {
	var res *Result
	var buf bytes.Buffer
	require.NoError(t, res.MarshalCBOR(&buf))
	assert.Equal(t, []byte{0xf6}, buf.Bytes())
}

func TestResultCBORRejects(t *testing.T) {
	var buf bytes.Buffer
	err := (&Result{Bits: 8192, Block: make([]byte, maxBlockLength+1)}).MarshalCBOR(&buf)
	assert.Error(t, err)

	var decoded Result
	// a map instead of a tuple
	assert.Error(t, decoded.UnmarshalCBOR(bytes.NewReader([]byte{0xa0})))
	// three fields
	assert.Error(t, decoded.UnmarshalCBOR(bytes.NewReader([]byte{0x83, 0x01, 0x40, 0x40})))
	// text where bits belong
	assert.Error(t, decoded.UnmarshalCBOR(bytes.NewReader([]byte{0x82, 0x61, 0x41, 0x40})))
	// truncated
	assert.Error(t, decoded.UnmarshalCBOR(bytes.NewReader([]byte{0x82, 0x19, 0x10})))
}
