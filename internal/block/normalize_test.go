package block

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func loadFixture(t *testing.T) []byte {
	t.Helper()

	raw, err := os.ReadFile("testdata/block.json")
	require.NoError(t, err)
	return raw
}

func TestNormalize(t *testing.T) {
	t.Run("stringifies nested args and filters event data arrays", func(t *testing.T) {
		raw := []byte(`{
			"extrinsics": [{
				"args": {"a": 1},
				"info": "kept",
				"events": [{"data": ["x", "y", 3]}]
			}]
		}`)

		normalized, err := Normalize(raw)
		require.NoError(t, err)

		var doc struct {
			Extrinsics []struct {
				Args   string `json:"args"`
				Info   string `json:"info"`
				Events []struct {
					Data []string `json:"data"`
				} `json:"events"`
			} `json:"extrinsics"`
		}
		require.NoError(t, json.Unmarshal(normalized, &doc))
		require.Len(t, doc.Extrinsics, 1)

		assert.Equal(t, `{"a":1}`, doc.Extrinsics[0].Args)
		assert.Equal(t, "kept", doc.Extrinsics[0].Info)
		assert.Equal(t, []string{"x", "y"}, doc.Extrinsics[0].Events[0].Data)
	})

	t.Run("turns event data objects into json text", func(t *testing.T) {
		raw := []byte(`{"extrinsics": [{"events": [{"data": {"b": "2", "a": "1"}}]}]}`)

		normalized, err := Normalize(raw)
		require.NoError(t, err)

		var doc struct {
			Extrinsics []struct {
				Events []struct {
					Data string `json:"data"`
				} `json:"events"`
			} `json:"extrinsics"`
		}
		require.NoError(t, json.Unmarshal(normalized, &doc))
		assert.Equal(t, `{"a":"1","b":"2"}`, doc.Extrinsics[0].Events[0].Data)
	})

	t.Run("stringifies array args and keeps large numbers exact", func(t *testing.T) {
		raw := []byte(`{"extrinsics": [{"args": [18446744073709551615, "<dest>"]}]}`)

		normalized, err := Normalize(raw)
		require.NoError(t, err)

		var doc struct {
			Extrinsics []struct {
				Args string `json:"args"`
			} `json:"extrinsics"`
		}
		require.NoError(t, json.Unmarshal(normalized, &doc))
		assert.Equal(t, `[18446744073709551615,"<dest>"]`, doc.Extrinsics[0].Args)
	})

	t.Run("leaves scalar event data untouched", func(t *testing.T) {
		raw := []byte(`{"extrinsics": [{"events": [{"data": 7}]}]}`)

		normalized, err := Normalize(raw)
		require.NoError(t, err)
		assert.JSONEq(t, `{"extrinsics": [{"events": [{"data": 7}]}]}`, string(normalized))
	})

	t.Run("ignores blocks without extrinsics", func(t *testing.T) {
		normalized, err := Normalize([]byte(`{"hash": "0x01"}`))
		require.NoError(t, err)
		assert.JSONEq(t, `{"hash": "0x01"}`, string(normalized))
	})

	t.Run("rejects invalid json", func(t *testing.T) {
		_, err := Normalize([]byte(`{"hash":`))
		assert.ErrorIs(t, err, ErrMalformedBlock)
	})
}

func TestDecode(t *testing.T) {
	t.Run("decodes the sidecar fixture into a canonical block", func(t *testing.T) {
		b, err := Decode(loadFixture(t))
		require.NoError(t, err)

		assert.Equal(t, "0x9a1f6c2d3e4b5a69788796a5b4c3d2e1f00112233445566778899aabbccddeef", b.Hash)
		assert.Equal(t, "5GNJqTPyNqANBkUVMN1LPPrxXnFouWXoe2wNSmmEoLctxiZY", b.AuthorID)
		assert.True(t, b.Finalized)
		require.Len(t, b.Logs, 2)
		assert.Equal(t, Log{Type: "Seal", Index: "5", Value: []string{"0x61757261", "0xbe12"}}, b.Logs[1])

		require.Len(t, b.OnInitialize.Events, 1)
		assert.Equal(t, DataList{
			WeightFeeValue(WeightFee{
				Weight:  Weight{RefTime: ptr("1000"), ProofSize: ptr("0")},
				Class:   "Mandatory",
				PaysFee: "Yes",
			}),
			StringValue("plain"),
			StringsValue([]string{"a", "b"}),
			NumericValue(42),
		}, b.OnInitialize.Events[0].Data)

		require.Len(t, b.Extrinsics, 2)

		timestamp := b.Extrinsics[0]
		assert.Equal(t, Method{Pallet: "timestamp", Method: "set"}, timestamp.Method)
		assert.Nil(t, timestamp.Signature)
		assert.Equal(t, `{"now":1718000000000}`, timestamp.Args)
		assert.Equal(t, `{}`, timestamp.Info)
		assert.Equal(t, DataList{
			StringValue(`{"class":"Mandatory","paysFee":"Yes","weight":{"proofSize":"1493","refTime":"260558000"}}`),
		}, timestamp.Events[0].Data)

		transfer := b.Extrinsics[1]
		assert.Equal(t, ptr("0x2aa4c9d0"), transfer.Signature)
		assert.Equal(t, ptr("7"), transfer.Nonce)
		assert.Equal(t, "already-a-string", transfer.Args)
		assert.Equal(t, `{"class":"Normal","partialFee":"1500","weight":{"proofSize":"2","refTime":"1"}}`, transfer.Info)
		assert.Equal(t, DataList{StringValue("x"), StringValue("y")}, transfer.Events[0].Data)
		assert.True(t, transfer.PaysFee)

		assert.Equal(t, DataList{StringValue("1000")}, b.OnFinalize.Events[0].Data)
	})

	t.Run("missing required field is a malformed block", func(t *testing.T) {
		_, err := Decode([]byte(`{"parentHash":"0x01","stateRoot":"0x02","extrinsicsRoot":"0x03"}`))
		assert.ErrorIs(t, err, ErrMalformedBlock)
	})

	t.Run("type mismatch is a malformed block", func(t *testing.T) {
		_, err := Decode([]byte(`{"hash":"0x00","parentHash":"0x01","stateRoot":"0x02","extrinsicsRoot":"0x03","finalized":"yes"}`))
		assert.ErrorIs(t, err, ErrMalformedBlock)
	})

	t.Run("unsupported hook event data is a malformed block", func(t *testing.T) {
		raw := []byte(`{
			"hash":"0x00","parentHash":"0x01","stateRoot":"0x02","extrinsicsRoot":"0x03",
			"onInitialize":{"events":[{"method":{"pallet":"p","method":"m"},"data":[1.5]}]}
		}`)

		_, err := Decode(raw)
		assert.ErrorIs(t, err, ErrMalformedBlock)
	})

	t.Run("extrinsic without method is a malformed block", func(t *testing.T) {
		raw := []byte(`{
			"hash":"0x00","parentHash":"0x01","stateRoot":"0x02","extrinsicsRoot":"0x03",
			"extrinsics":[{"hash":"0x04"}]
		}`)

		_, err := Decode(raw)
		assert.ErrorIs(t, err, ErrMalformedBlock)
	})
}
