package dochash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/craftwise/proposal-api/internal/domain"
)

func sampleProposal() *domain.Proposal {
	return &domain.Proposal{
		Title:           "Website redesign",
		Terms:           "Net 30",
		ClientFirstName: "Ada",
		ClientLastName:  "Lovelace",
		ClientEmail:     "ada@example.com",
		Sections: []domain.ProposalCustomSection{
			{Title: "Scope", Body: "Full redesign", Position: 0},
			{Title: "Timeline", Body: "Six weeks", Position: 1},
		},
		LineItems: []domain.ProposalLineItem{
			{Description: "Design", Quantity: 1, UnitPrice: 2000, Position: 0},
			{Description: "Development", Quantity: 40, UnitPrice: 120, Position: 1},
		},
	}
}

func TestCompute_Deterministic(t *testing.T) {
	p := sampleProposal()
	first := Compute(p)
	second := Compute(p)

	require.NotEmpty(t, first)
	assert.Len(t, first, 64)
	assert.Equal(t, first, second)
}

func TestCompute_IndependentOfChildRowOrder(t *testing.T) {
	p := sampleProposal()
	base := Compute(p)

	shuffled := sampleProposal()
	shuffled.Sections[0], shuffled.Sections[1] = shuffled.Sections[1], shuffled.Sections[0]
	shuffled.LineItems[0], shuffled.LineItems[1] = shuffled.LineItems[1], shuffled.LineItems[0]

	assert.Equal(t, base, Compute(shuffled))
}

func TestCompute_SensitiveToSignedContent(t *testing.T) {
	base := Compute(sampleProposal())

	titled := sampleProposal()
	titled.Title = "Website redesign v2"
	assert.NotEqual(t, base, Compute(titled))

	priced := sampleProposal()
	priced.LineItems[1].UnitPrice = 125
	assert.NotEqual(t, base, Compute(priced))

	terms := sampleProposal()
	terms.Terms = "Net 14"
	assert.NotEqual(t, base, Compute(terms))

	client := sampleProposal()
	client.ClientEmail = "ada@other.example.com"
	assert.NotEqual(t, base, Compute(client))

	recadenced := sampleProposal()
	recadenced.LineItems[0].PricingType = domain.PricingTypeMonthly
	assert.NotEqual(t, base, Compute(recadenced))

	retyped := sampleProposal()
	retyped.Sections[0].SectionType = domain.SectionTypeReviews
	assert.NotEqual(t, base, Compute(retyped))

	reviews := sampleProposal()
	reviews.Sections[0].ReviewExcerpts = datatypes.JSON(`[{"author":"Sam","rating":5,"text":"Great"}]`)
	assert.NotEqual(t, base, Compute(reviews))
}

func TestCompute_IgnoresCosmeticFields(t *testing.T) {
	base := Compute(sampleProposal())

	cosmetic := sampleProposal()
	cosmetic.ShowPricing = true
	cosmetic.RequireSignature = true
	cosmetic.BusinessName = "Acme Consulting"
	cosmetic.DiscountValue = 50
	cosmetic.TaxRate = 25
	cosmetic.Status = domain.ProposalStatusSent

	assert.Equal(t, base, Compute(cosmetic))
}

func TestVerify(t *testing.T) {
	p := sampleProposal()
	stored := Compute(p)

	assert.Equal(t, domain.VerificationVerified, Verify(p, stored))

	edited := sampleProposal()
	edited.LineItems = append(edited.LineItems, domain.ProposalLineItem{
		Description: "Hosting", Quantity: 1, UnitPrice: 30, Position: 2,
	})
	assert.Equal(t, domain.VerificationModified, Verify(edited, stored))

	assert.Equal(t, domain.VerificationUnverifiable, Verify(p, ""))
}
