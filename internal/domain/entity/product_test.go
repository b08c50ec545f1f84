package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/ventas-api/internal/domain/entity"
)

func TestPriceForRole(t *testing.T) {
	p := &entity.Product{
		PriceClient:     decimal.NewFromInt(100),
		PriceWholesale:  decimal.NewFromInt(80),
		PriceTechnician: decimal.NewFromInt(90),
	}

	cases := []struct {
		role     string
		expected decimal.Decimal
	}{
		{"vendedor", decimal.NewFromInt(80)},
		{"rol-desconocido", decimal.NewFromInt(100)},
		{"", decimal.NewFromInt(100)},
	}
	for _, tc := range cases {
		t.Run("rol "+tc.role, func(t *testing.T) {
			got := p.PriceForRole(tc.role)
			assert.True(t, tc.expected.Equal(got),
				"rol %q: esperado %s, obtenido %s", tc.role, tc.expected, got)
		})
	}
}

func TestComputeSaleTotal(t *testing.T) {
	items := []entity.SaleItem{
		{Quantity: 3, UnitPrice: decimal.NewFromInt(100), ItemTotal: entity.ComputeItemTotal(3, decimal.NewFromInt(100))},
		{Quantity: 2, UnitPrice: decimal.RequireFromString("250.50"), ItemTotal: entity.ComputeItemTotal(2, decimal.RequireFromString("250.50"))},
	}

	total := entity.ComputeSaleTotal(items)
	assert.True(t, decimal.RequireFromString("801").Equal(total),
		"3×100 + 2×250.50 = 801")
}

func TestComputeSaleTotal_SinItems(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(entity.ComputeSaleTotal(nil)))
}
