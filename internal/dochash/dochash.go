// Package dochash produces a stable digest of the client-facing content of
// a proposal. The digest is captured at signing time and compared on later
// reads to flag post-signature edits. It is advisory only; a mismatch never
// blocks anything.
package dochash

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/craftwise/proposal-api/internal/domain"
)

// canonicalDocument is the exact field set covered by the digest.
// Adding or removing a field here invalidates every stored hash, so the
// shape is frozen: title, sections, line items, terms, client name, client
// email. Sections and line items are covered in full, their type fields
// included; a pricing type flip changes what the client agreed to pay and
// must break verification. Cosmetic settings and business identity fields
// are deliberately outside the hash.
type canonicalDocument struct {
	Title           string             `json:"title"`
	Sections        []canonicalSection `json:"sections"`
	LineItems       []canonicalItem    `json:"line_items"`
	Terms           string             `json:"terms"`
	ClientFirstName string             `json:"client_first_name"`
	ClientLastName  string             `json:"client_last_name"`
	ClientEmail     string             `json:"client_email"`
}

type canonicalSection struct {
	Title          string `json:"title"`
	Subtitle       string `json:"subtitle"`
	Body           string `json:"body"`
	SectionType    string `json:"section_type"`
	ReviewExcerpts string `json:"review_excerpts"`
}

type canonicalItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	PricingType string  `json:"pricing_type"`
	Position    int     `json:"position"`
}

// Compute returns the hex-encoded sha256 digest of the proposal's signed
// content. Child collections are ordered by position so the digest does not
// depend on database row order. Returns an empty string when the canonical
// form cannot be serialized.
func Compute(p *domain.Proposal) string {
	doc := canonicalDocument{
		Title:           p.Title,
		Terms:           p.Terms,
		ClientFirstName: p.ClientFirstName,
		ClientLastName:  p.ClientLastName,
		ClientEmail:     p.ClientEmail,
		Sections:        make([]canonicalSection, 0, len(p.Sections)),
		LineItems:       make([]canonicalItem, 0, len(p.LineItems)),
	}

	sections := make([]domain.ProposalCustomSection, len(p.Sections))
	copy(sections, p.Sections)
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Position < sections[j].Position
	})
	for _, s := range sections {
		doc.Sections = append(doc.Sections, canonicalSection{
			Title:          s.Title,
			Subtitle:       s.Subtitle,
			Body:           s.Body,
			SectionType:    string(s.SectionType),
			ReviewExcerpts: string(s.ReviewExcerpts),
		})
	}

	items := make([]domain.ProposalLineItem, len(p.LineItems))
	copy(items, p.LineItems)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Position < items[j].Position
	})
	for _, li := range items {
		doc.LineItems = append(doc.LineItems, canonicalItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			PricingType: string(li.PricingType),
			Position:    li.Position,
		})
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return ""
	}

	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// Verify compares a stored signature digest against the proposal's current
// content and returns the advisory verification state.
func Verify(p *domain.Proposal, storedHash string) domain.SignatureVerification {
	if storedHash == "" {
		return domain.VerificationUnverifiable
	}
	current := Compute(p)
	if current == "" {
		return domain.VerificationUnverifiable
	}
	if current == storedHash {
		return domain.VerificationVerified
	}
	return domain.VerificationModified
}
