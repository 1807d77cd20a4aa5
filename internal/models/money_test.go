package models

import (
	"encoding/json"
	"testing"
)

func TestMoneyUnmarshalJSON(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{`"80"`, "80.00"},
		{`95.5`, "95.50"},
		{`" 0.105 "`, "0.11"},
		{`19.99`, "19.99"},
		{`null`, "0.00"},
	}
	for _, tc := range cases {
		var m Money
		if err := json.Unmarshal([]byte(tc.raw), &m); err != nil {
			t.Fatalf("unmarshal %s failed: %v", tc.raw, err)
		}
		if m.String() != tc.want {
			t.Fatalf("unmarshal %s: want %s got %s", tc.raw, tc.want, m.String())
		}
	}

	var bad Money
	if err := json.Unmarshal([]byte(`"abc"`), &bad); err == nil {
		t.Fatalf("expected error for non-numeric money")
	}
}

func TestMoneyArithmetic(t *testing.T) {
	total := ZeroMoney().Add(NewMoneyFromInt(80).MulInt(2)).Add(NewMoneyFromInt(40))
	if total.String() != "200.00" {
		t.Fatalf("expected 200.00, got %s", total.String())
	}
	body, err := json.Marshal(total)
	if err != nil {
		t.Fatalf("marshal money failed: %v", err)
	}
	if string(body) != `"200.00"` {
		t.Fatalf("unexpected json %s", body)
	}
}
