package block

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/near/borsh-go"
)

// Kinds of DataValue. The numeric value is the enum discriminant written to
// the binary envelope.
const (
	KindWeightFee borsh.Enum = iota
	KindString
	KindStrings
	KindNumeric
)

var (
	errUnsupportedDataValue = errors.New("unsupported event data value")
	errIncompleteWeightFee  = errors.New("weight fee record requires weight, class and paysFee")
)

// Weight is the two-dimensional weight of a dispatch.
type Weight struct {
	RefTime   *string `json:"refTime"`
	ProofSize *string `json:"proofSize"`
}

// WeightFee is the structured dispatch info attached to ExtrinsicSuccess and
// ExtrinsicFailed events.
type WeightFee struct {
	Weight  Weight `json:"weight"`
	Class   string `json:"class"`
	PaysFee string `json:"paysFee"`
}

// Text, TextList and Number box the scalar variants of DataValue. borsh only
// writes the payload of a complex-enum variant when the variant is a struct.
type (
	Text     struct{ Value string }
	TextList struct{ Values []string }
	Number   struct{ Value uint64 }
)

// DataValue is one element of an event's data list. Exactly one variant is
// meaningful, selected by Kind.
//
// The layout follows the borsh complex-enum convention: the discriminant comes
// first and is followed by one struct field per variant, in discriminant order.
type DataValue struct {
	Kind      borsh.Enum `borsh_enum:"true"`
	WeightFee WeightFee
	String    Text
	Strings   TextList
	Numeric   Number
}

// WeightFeeValue returns a DataValue holding a weight/fee record.
func WeightFeeValue(w WeightFee) DataValue {
	return DataValue{Kind: KindWeightFee, WeightFee: w}
}

// StringValue returns a DataValue holding a plain string.
func StringValue(s string) DataValue {
	return DataValue{Kind: KindString, String: Text{Value: s}}
}

// StringsValue returns a DataValue holding a list of strings.
func StringsValue(s []string) DataValue {
	return DataValue{Kind: KindStrings, Strings: TextList{Values: s}}
}

// NumericValue returns a DataValue holding an unsigned number.
func NumericValue(n uint64) DataValue {
	return DataValue{Kind: KindNumeric, Numeric: Number{Value: n}}
}

// MarshalJSON writes the active variant only.
func (v DataValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindWeightFee:
		return json.Marshal(v.WeightFee)
	case KindString:
		return json.Marshal(v.String.Value)
	case KindStrings:
		if v.Strings.Values == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.Strings.Values)
	case KindNumeric:
		return json.Marshal(v.Numeric.Value)
	default:
		return nil, fmt.Errorf("%w: kind %d", errUnsupportedDataValue, v.Kind)
	}
}

// UnmarshalJSON selects the variant from the JSON value type, trying the
// variants in discriminant order: object, string, array of strings, number.
func (v *DataValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errUnsupportedDataValue
	}

	switch data[0] {
	case '{':
		var record struct {
			Weight  *Weight `json:"weight"`
			Class   *string `json:"class"`
			PaysFee *string `json:"paysFee"`
		}
		if err := json.Unmarshal(data, &record); err != nil {
			return err
		}

		if record.Weight == nil || record.Class == nil || record.PaysFee == nil {
			return errIncompleteWeightFee
		}

		*v = WeightFeeValue(WeightFee{Weight: *record.Weight, Class: *record.Class, PaysFee: *record.PaysFee})
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*v = StringValue(s)
		return nil
	case '[':
		var s []string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*v = StringsValue(s)
		return nil
	default:
		n, err := strconv.ParseUint(string(data), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s", errUnsupportedDataValue, data)
		}

		*v = NumericValue(n)
		return nil
	}
}

// DataList is the data attached to an event.
//
// A missing or null value decodes to an empty list, and a single non-array
// value (for instance an object that normalization collapsed into a string)
// decodes to a one-element list.
type DataList []DataValue

// UnmarshalJSON implements json.Unmarshaler.
func (l *DataList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if len(data) > 0 && data[0] == '[' {
		var values []DataValue
		if err := json.Unmarshal(data, &values); err != nil {
			return err
		}

		*l = values
		return nil
	}

	var value DataValue
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	*l = DataList{value}
	return nil
}
