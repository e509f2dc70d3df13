package staff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTaxCode(t *testing.T) {
	cases := []struct {
		raw        string
		wantKind   TaxCodeKind
		wantDigits int
	}{
		{"BR", TaxCodeBasicRate, 0},
		{"br", TaxCodeBasicRate, 0},
		{"D0", TaxCodeHigherRate, 0},
		{"D1", TaxCodeAdditionalRate, 0},
		{"NT", TaxCodeNoTax, 0},
		{"0T", TaxCodeZeroAllowance, 0},
		{"1257L", TaxCodeStandard, 1257},
		{"500T", TaxCodeStandard, 500},
		{" 1100l ", TaxCodeStandard, 1100},
		{"K475", TaxCodeStandard, 0}, // no leading digit run
		{"", TaxCodeStandard, 0},
		{"garbage", TaxCodeStandard, 0},
	}
	for _, c := range cases {
		got := ParseTaxCode(c.raw)
		assert.Equal(t, c.wantKind, got.Kind, "raw %q", c.raw)
		assert.Equal(t, c.wantDigits, got.AllowanceDigits, "raw %q", c.raw)
	}
}

func TestParseNICategory(t *testing.T) {
	assert.Equal(t, NICategory("A"), ParseNICategory("A"))
	assert.Equal(t, NICategory("B"), ParseNICategory(" b "))
	assert.Equal(t, NICategory(""), ParseNICategory("AB"))
	assert.Equal(t, NICategory(""), ParseNICategory("1"))
	assert.Equal(t, NICategory(""), ParseNICategory(""))
}
