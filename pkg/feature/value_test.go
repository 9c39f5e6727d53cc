package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueZeroIsNull(t *testing.T) {
	var v Value
	assert.True(t, v.IsNull())
	assert.Equal(t, ValueKindNull, v.Kind())
	assert.True(t, v.Equal(NullValue()))
}

func TestValueConstructors(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind ValueKind
	}{
		{"null", NullValue(), ValueKindNull},
		{"bool", BoolValue(true), ValueKindBool},
		{"int", IntValue(-7), ValueKindInt},
		{"float", FloatValue(3.25), ValueKindFloat},
		{"text", TextValue("harbour"), ValueKindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.v.Kind())
		})
	}

	assert.True(t, BoolValue(true).Bool())
	assert.Equal(t, int64(-7), IntValue(-7).Int())
	assert.Equal(t, 3.25, FloatValue(3.25).Float())
	assert.Equal(t, "harbour", TextValue("harbour").Text())
}

func TestValueAccessorsOnWrongKind(t *testing.T) {
	v := TextValue("not a number")
	assert.Equal(t, int64(0), v.Int())
	assert.Equal(t, 0.0, v.Float())
	assert.False(t, v.Bool())
	assert.Equal(t, "", IntValue(5).Text())
}

func TestValueEqual(t *testing.T) {
	assert.True(t, IntValue(5).Equal(IntValue(5)))
	assert.False(t, IntValue(5).Equal(IntValue(6)))
	assert.True(t, TextValue("a").Equal(TextValue("a")))
	assert.False(t, TextValue("a").Equal(TextValue("b")))
	assert.True(t, NullValue().Equal(NullValue()))

	// No numeric coercion across kinds
	assert.False(t, IntValue(5).Equal(FloatValue(5)))
	assert.False(t, BoolValue(false).Equal(NullValue()))
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v        Value
		expected string
	}{
		{NullValue(), ""},
		{BoolValue(true), "true"},
		{BoolValue(false), "false"},
		{IntValue(2000000), "2000000"},
		{IntValue(-42), "-42"},
		{FloatValue(1.5), "1.5"},
		{FloatValue(105), "105"},
		{TextValue("Paris"), "Paris"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.v.String())
	}
}

func TestValueKindString(t *testing.T) {
	assert.Equal(t, "Null", ValueKindNull.String())
	assert.Equal(t, "Bool", ValueKindBool.String())
	assert.Equal(t, "Int", ValueKindInt.String())
	assert.Equal(t, "Float", ValueKindFloat.String())
	assert.Equal(t, "Text", ValueKindText.String())
	assert.Equal(t, "Unknown", ValueKind(99).String())
}
