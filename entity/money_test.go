package entity

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyRounding(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"exact", "10.00", "10.00"},
		{"half up", "10.005", "10.01"},
		{"below half", "10.004", "10.00"},
		{"integer", "40", "40.00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewMoneyFromString(tc.in)
			if err != nil {
				t.Fatalf("parse %q: %v", tc.in, err)
			}
			if got := m.String(); got != tc.want {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestMoneyTaxExample(t *testing.T) {
	// price 100.00 x 2 -> subtotal 200.00, 5% tax 10.00
	price, _ := NewMoneyFromString("100.00")
	subtotal := price.MulInt(2)
	if subtotal.String() != "200.00" {
		t.Fatalf("subtotal = %s, want 200.00", subtotal)
	}
	tax := subtotal.MulRate(TaxRate)
	if tax.String() != "10.00" {
		t.Fatalf("tax = %s, want 10.00", tax)
	}
	total := subtotal.Add(tax).Add(DeliveryFee)
	if total.String() != "250.00" {
		t.Fatalf("total = %s, want 250.00", total)
	}
}

func TestMoneyJSON(t *testing.T) {
	m := NewMoney(decimal.NewFromFloat(99.5))
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"99.50"` {
		t.Fatalf("marshal = %s, want \"99.50\"", b)
	}

	var back Money
	if err := json.Unmarshal([]byte(`"12.30"`), &back); err != nil {
		t.Fatal(err)
	}
	if back.String() != "12.30" {
		t.Fatalf("unmarshal = %s, want 12.30", back)
	}
}

func TestMoneyScanValue(t *testing.T) {
	var m Money
	if err := m.Scan("149.90"); err != nil {
		t.Fatal(err)
	}
	v, err := m.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "149.90" {
		t.Fatalf("value = %v, want 149.90", v)
	}
}

func TestCartTotals(t *testing.T) {
	p1, _ := NewMoneyFromString("120.50")
	p2, _ := NewMoneyFromString("35.25")
	c := Cart{Items: []CartItem{
		{Quantity: 2, PriceSnapshot: p1},
		{Quantity: 3, PriceSnapshot: p2},
	}}
	if got := c.Subtotal().String(); got != "346.75" {
		t.Fatalf("subtotal = %s, want 346.75", got)
	}
	if got := c.Tax().String(); got != "17.34" { // 17.3375 rounds half up
		t.Fatalf("tax = %s, want 17.34", got)
	}
	if got := c.Total().String(); got != "404.09" {
		t.Fatalf("total = %s, want 404.09", got)
	}
}

func TestOrderStatusSets(t *testing.T) {
	if !StatusPlaced.Valid() || StatusPlaced.Terminal() {
		t.Fatal("placed must be valid and non-terminal")
	}
	if !StatusDelivered.Terminal() || !StatusCancelled.Terminal() {
		t.Fatal("delivered and cancelled are terminal")
	}
	if OrderStatus("shipped").Valid() {
		t.Fatal("unknown status must be invalid")
	}
	if StatusCooking.AgentSettable() {
		t.Fatal("agents may not set cooking")
	}
	if !StatusOutForDelivery.AgentSettable() || !StatusDelivered.AgentSettable() {
		t.Fatal("agents set out_for_delivery and delivered")
	}
}
