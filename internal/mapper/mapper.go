// Package mapper converts domain entities to API DTOs.
package mapper

import (
	"encoding/json"

	"github.com/craftwise/proposal-api/internal/domain"
	"github.com/craftwise/proposal-api/internal/pricing"
)

// ToLineItemDTO converts a line item entity to its DTO
func ToLineItemDTO(item *domain.ProposalLineItem) domain.LineItemDTO {
	return domain.LineItemDTO{
		ID:          item.ID,
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		PricingType: item.PricingType,
		Position:    item.Position,
	}
}

// ToCustomSectionDTO converts a custom section entity to its DTO
func ToCustomSectionDTO(section *domain.ProposalCustomSection) domain.CustomSectionDTO {
	dto := domain.CustomSectionDTO{
		ID:          section.ID,
		Title:       section.Title,
		Subtitle:    section.Subtitle,
		Body:        section.Body,
		Position:    section.Position,
		SectionType: section.SectionType,
	}
	if len(section.ReviewExcerpts) > 0 {
		// Malformed stored JSON yields an empty excerpt list rather than an error
		var excerpts []domain.ReviewExcerpt
		if err := json.Unmarshal(section.ReviewExcerpts, &excerpts); err == nil {
			dto.ReviewExcerpts = excerpts
		}
	}
	return dto
}

// ToSignatureDTO converts a signature entity to its DTO
func ToSignatureDTO(sig *domain.ProposalSignature) domain.SignatureDTO {
	return domain.SignatureDTO{
		ID:            sig.ID,
		SignerName:    sig.SignerName,
		SignerEmail:   sig.SignerEmail,
		ImagePath:     sig.ImagePath,
		AcceptedTerms: sig.AcceptedTerms,
		SignedAt:      sig.SignedAt,
	}
}

// ToTotalsDTO converts a computed pricing breakdown to its DTO
func ToTotalsDTO(t pricing.Totals) domain.TotalsDTO {
	quantityLabel, rateLabel := t.ColumnLabels()
	return domain.TotalsDTO{
		OneTimeSubtotal:   t.OneTimeSubtotal,
		MonthlySubtotal:   t.MonthlySubtotal,
		DiscountOneTime:   t.DiscountOneTime,
		DiscountMonthly:   t.DiscountMonthly,
		TaxOneTime:        t.TaxOneTime,
		TaxMonthly:        t.TaxMonthly,
		GrandTotalOneTime: t.GrandTotalOneTime,
		GrandTotalMonthly: t.GrandTotalMonthly,
		Mixed:             t.Mixed,
		UniformType:       t.UniformType,
		QuantityLabel:     quantityLabel,
		RateLabel:         rateLabel,
	}
}

// ToProposalDTO converts a proposal entity to its full DTO. The display
// number and advisory verification state are computed by the caller.
func ToProposalDTO(p *domain.Proposal, displayNumber string, totals *domain.TotalsDTO, verification domain.SignatureVerification) domain.ProposalDTO {
	dto := domain.ProposalDTO{
		ID:             p.ID,
		Token:          p.Token,
		IsTemplate:     p.IsTemplate,
		Title:          p.Title,
		ProposalDate:   p.ProposalDate,
		ExpirationDate: p.ExpirationDate,
		Terms:          p.Terms,

		ClientFirstName: p.ClientFirstName,
		ClientLastName:  p.ClientLastName,
		ClientEmail:     p.ClientEmail,
		ClientCompany:   p.ClientCompany,
		ContactID:       p.ContactID,

		BusinessName:    p.BusinessName,
		BusinessEmail:   p.BusinessEmail,
		BusinessPhone:   p.BusinessPhone,
		BusinessAddress: p.BusinessAddress,

		ShowPricing:      p.ShowPricing,
		ShowTerms:        p.ShowTerms,
		ShowSowNumber:    p.ShowSowNumber,
		RequireSignature: p.RequireSignature,

		DefaultPricingType: p.DefaultPricingType,
		DiscountType:       p.DiscountType,
		DiscountValue:      p.DiscountValue,
		TaxRate:            p.TaxRate,

		SowNumber:     p.SowNumber,
		DisplayNumber: displayNumber,

		Status:     p.Status,
		SentAt:     p.SentAt,
		ViewedAt:   p.ViewedAt,
		AcceptedAt: p.AcceptedAt,
		DeclinedAt: p.DeclinedAt,

		Totals:       totals,
		Verification: verification,

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	dto.Sections = make([]domain.CustomSectionDTO, len(p.Sections))
	for i := range p.Sections {
		dto.Sections[i] = ToCustomSectionDTO(&p.Sections[i])
	}

	dto.LineItems = make([]domain.LineItemDTO, len(p.LineItems))
	for i := range p.LineItems {
		dto.LineItems[i] = ToLineItemDTO(&p.LineItems[i])
	}

	if p.Signature != nil {
		sig := ToSignatureDTO(p.Signature)
		dto.Signature = &sig
	}

	return dto
}

// ToContactDTO converts a contact entity to its DTO
func ToContactDTO(c *domain.Contact) domain.ContactDTO {
	return domain.ContactDTO{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Company:   c.Company,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToNotificationDTO converts a notification entity to its DTO
func ToNotificationDTO(n *domain.Notification) domain.NotificationDTO {
	return domain.NotificationDTO{
		ID:         n.ID,
		Type:       n.Type,
		Title:      n.Title,
		Message:    n.Message,
		Read:       n.Read,
		ReadAt:     n.ReadAt,
		EntityID:   n.EntityID,
		EntityType: n.EntityType,
		CreatedAt:  n.CreatedAt,
	}
}
