package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "abaixo de mil", value: 999, want: "999"},
		{name: "zero", value: 0, want: "0"},
		{name: "milhares", value: 1234, want: "1.2K"},
		{name: "milhões", value: 3_400_000, want: "3.4M"},
		{name: "bilhões", value: 1_000_000_000, want: "1.0B"},
		{name: "negativo", value: -2500, want: "-2.5K"},
		{name: "arredonda para o próximo sufixo", value: 999_950, want: "1.0M"},
		{name: "logo abaixo do arredondamento", value: 999_949, want: "999.9K"},
		{name: "negativo arredonda para o próximo sufixo", value: -999_950, want: "-1.0M"},
		{name: "abaixo de mil que arredonda para mil", value: 999.6, want: "1.0K"},
		{name: "milhões que arredondam para bilhão", value: 999_960_000, want: "1.0B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Number(tt.value))
		})
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, "12.35%", Percentage(12.345, 2))
	assert.Equal(t, "5%", Percentage(5, 0))
	assert.Equal(t, "5%", Percentage(5, -1))
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "$1,234.50", Currency(1234.5, "USD"))
	assert.Equal(t, "$0.75", Currency(0.75, ""))
	assert.Equal(t, "-€10.00", Currency(-10, "eur"))
	assert.Equal(t, "CHF 3.00", Currency(3, "CHF"))
}

func TestMetric(t *testing.T) {
	assert.Equal(t, "3.20%", Metric("ctr", 3.2))
	assert.Equal(t, "$1.25", Metric("cpc", 1.25))
	assert.Equal(t, "12.0K", Metric("impressions", 12000))
}
