package block

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataValue_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected DataValue
	}{
		{
			name:  "weight fee record",
			input: `{"weight":{"refTime":"5","proofSize":null},"class":"Normal","paysFee":"No"}`,
			expected: WeightFeeValue(WeightFee{
				Weight:  Weight{RefTime: ptr("5")},
				Class:   "Normal",
				PaysFee: "No",
			}),
		},
		{name: "string", input: `"5GrwvaEF"`, expected: StringValue("5GrwvaEF")},
		{name: "list of strings", input: `["a","b"]`, expected: StringsValue([]string{"a", "b"})},
		{name: "number", input: `18446744073709551615`, expected: NumericValue(18446744073709551615)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v DataValue
			require.NoError(t, json.Unmarshal([]byte(tc.input), &v))
			assert.Equal(t, tc.expected, v)
		})
	}

	t.Run("rejects objects that are not weight fee records", func(t *testing.T) {
		var v DataValue
		assert.ErrorIs(t, json.Unmarshal([]byte(`{"who":"alice"}`), &v), errIncompleteWeightFee)
	})

	t.Run("rejects negative and fractional numbers", func(t *testing.T) {
		var v DataValue
		assert.ErrorIs(t, json.Unmarshal([]byte(`-1`), &v), errUnsupportedDataValue)
		assert.ErrorIs(t, json.Unmarshal([]byte(`0.5`), &v), errUnsupportedDataValue)
	})

	t.Run("rejects booleans", func(t *testing.T) {
		var v DataValue
		assert.ErrorIs(t, json.Unmarshal([]byte(`true`), &v), errUnsupportedDataValue)
	})

	t.Run("rejects lists with non string members", func(t *testing.T) {
		var v DataValue
		assert.Error(t, json.Unmarshal([]byte(`["a", 1]`), &v))
	})
}

func TestDataValue_MarshalJSON(t *testing.T) {
	t.Run("writes only the active variant", func(t *testing.T) {
		values := DataList{
			WeightFeeValue(WeightFee{Weight: Weight{RefTime: ptr("1")}, Class: "Normal", PaysFee: "Yes"}),
			StringValue("s"),
			StringsValue(nil),
			NumericValue(9),
		}

		data, err := json.Marshal(values)
		require.NoError(t, err)
		assert.JSONEq(t, `[
			{"weight":{"refTime":"1","proofSize":null},"class":"Normal","paysFee":"Yes"},
			"s",
			[],
			9
		]`, string(data))
	})

	t.Run("fails on unknown kinds", func(t *testing.T) {
		_, err := json.Marshal(DataValue{Kind: 9})
		assert.ErrorIs(t, err, errUnsupportedDataValue)
	})
}

func TestDataList_UnmarshalJSON(t *testing.T) {
	t.Run("null is an empty list", func(t *testing.T) {
		var l DataList
		require.NoError(t, json.Unmarshal([]byte(`null`), &l))
		assert.Empty(t, l)
	})

	t.Run("single value becomes a one element list", func(t *testing.T) {
		var l DataList
		require.NoError(t, json.Unmarshal([]byte(`"collapsed"`), &l))
		assert.Equal(t, DataList{StringValue("collapsed")}, l)
	})

	t.Run("missing field leaves the list empty", func(t *testing.T) {
		var e Event
		require.NoError(t, json.Unmarshal([]byte(`{"method":{"pallet":"p","method":"m"}}`), &e))
		assert.Empty(t, e.Data)
	})
}
