package expense

import (
	"encoding/json"
	"testing"

	"github.com/theirongolddev/iexpense/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLayout(t *testing.T) {
	r := model.Record{ID: "id-1", Name: "Coffee", Category: "Personal", Amount: decimal.RequireFromString("3.5")}
	data, err := Encode([]model.Record{r})
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "id-1", raw[0]["id"])
	assert.Equal(t, "Coffee", raw[0]["name"])
	assert.Equal(t, "Personal", raw[0]["category"])
	assert.Equal(t, 3.5, raw[0]["amount"], "amount must be a JSON number")
}

func TestEncodeEmpty(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestRoundTrip(t *testing.T) {
	in := []model.Record{
		{ID: "a", Name: "Coffee", Category: "Personal", Amount: decimal.RequireFromString("3.50")},
		{ID: "b", Name: "Refund", Category: "Business", Amount: decimal.RequireFromString("-20.125")},
		{ID: "c", Name: "", Category: "", Amount: decimal.Zero},
	}
	data, err := Encode(in)
	require.NoError(t, err)

	out := Decode(data)
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
		assert.Equal(t, in[i].Name, out[i].Name)
		assert.Equal(t, in[i].Category, out[i].Category)
		assert.True(t, in[i].Amount.Equal(out[i].Amount), "amount %s != %s", in[i].Amount, out[i].Amount)
	}

	again, err := Encode(out)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))
}

func TestDecodeLegacyTypeField(t *testing.T) {
	out := Decode([]byte(`[{"id":"x","name":"Taxi","type":"Business","amount":18}]`))
	require.Len(t, out, 1)
	assert.Equal(t, "Business", out[0].Category)
}

func TestDecodeAcceptsEmptyStrings(t *testing.T) {
	out := Decode([]byte(`[{"id":"x","name":"","category":"","amount":-0.5}]`))
	require.Len(t, out, 1)
	assert.Equal(t, "", out[0].Name)
	assert.True(t, out[0].Amount.Equal(decimal.RequireFromString("-0.5")))
}

func TestDecodeCorruptYieldsEmpty(t *testing.T) {
	for _, in := range []string{
		``,
		`garbage`,
		`{"id":"x"}`,
		`[{"id":"x","name":"a","category":"b","amount":"lots"}]`,
		`[{"name":"a","category":"b","amount":1}]`,
		`[{"id":"x","name":"a","category":"b"}]`,
		`[{"id":"x","name":"a","category":"b","amount":1},{"id":"x","name":"b","category":"b","amount":2}]`,
		`[{"id":"x","name":"a","category":"b","amount":"5"}]`,
		`[{"id":"x","name":"a","category":"b","amount":null}]`,
		`[{"id":"x","category":"Personal","amount":5}]`,
		`[{"id":"x","name":null,"category":"Personal","amount":5}]`,
		`[{"id":"x","name":"a","amount":5}]`,
		`[{"id":"x","name":"a","category":null,"type":null,"amount":5}]`,
	} {
		out := Decode([]byte(in))
		assert.NotNil(t, out, "input %q", in)
		assert.Empty(t, out, "input %q", in)
	}
}
