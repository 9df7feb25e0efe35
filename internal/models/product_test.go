package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenefitList_DecodesJSONArray(t *testing.T) {
	p := Product{
		ID:       "prod-1",
		Benefits: `["Emergency medical assistance","24/7 roadside assistance"]`,
	}

	benefits, err := p.BenefitList()
	require.NoError(t, err)
	assert.Equal(t, []string{"Emergency medical assistance", "24/7 roadside assistance"}, benefits)
}

func TestBenefitList_MalformedJSON(t *testing.T) {
	p := Product{
		ID:       "prod-2",
		Benefits: `not json`,
	}

	benefits, err := p.BenefitList()
	require.Error(t, err)
	assert.Nil(t, benefits)
	assert.Contains(t, err.Error(), "prod-2")
}

func TestBenefitList_EmptyArray(t *testing.T) {
	p := Product{Benefits: `[]`}

	benefits, err := p.BenefitList()
	require.NoError(t, err)
	assert.Empty(t, benefits)
}
