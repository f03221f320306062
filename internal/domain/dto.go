package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaginatedResponse wraps list results with pagination metadata
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// ErrorResponse is a simple error envelope used in swagger annotations
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// LineItemDTO is the API representation of a proposal line item
type LineItemDTO struct {
	ID          uuid.UUID   `json:"id"`
	Description string      `json:"description"`
	Quantity    float64     `json:"quantity"`
	UnitPrice   float64     `json:"unitPrice"`
	PricingType PricingType `json:"pricingType,omitempty"`
	Position    int         `json:"position"`
}

// CustomSectionDTO is the API representation of a proposal custom section
type CustomSectionDTO struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	Subtitle       string          `json:"subtitle,omitempty"`
	Body           string          `json:"body,omitempty"`
	Position       int             `json:"position"`
	SectionType    SectionType     `json:"sectionType"`
	ReviewExcerpts []ReviewExcerpt `json:"reviewExcerpts,omitempty"`
}

// SignatureDTO is the API representation of a proposal signature
type SignatureDTO struct {
	ID            uuid.UUID `json:"id"`
	SignerName    string    `json:"signerName"`
	SignerEmail   string    `json:"signerEmail"`
	ImagePath     string    `json:"imagePath,omitempty"`
	AcceptedTerms bool      `json:"acceptedTerms"`
	SignedAt      time.Time `json:"signedAt"`
}

// TotalsDTO carries the computed pricing breakdown for a proposal
type TotalsDTO struct {
	OneTimeSubtotal   float64     `json:"oneTimeSubtotal"`
	MonthlySubtotal   float64     `json:"monthlySubtotal"`
	DiscountOneTime   float64     `json:"discountOneTime"`
	DiscountMonthly   float64     `json:"discountMonthly"`
	TaxOneTime        float64     `json:"taxOneTime"`
	TaxMonthly        float64     `json:"taxMonthly"`
	GrandTotalOneTime float64     `json:"grandTotalOneTime"`
	GrandTotalMonthly float64     `json:"grandTotalMonthly"`
	Mixed             bool        `json:"mixed"`
	UniformType       PricingType `json:"uniformType,omitempty"`
	QuantityLabel     string      `json:"quantityLabel"`
	RateLabel         string      `json:"rateLabel"`
}

// ProposalDTO is the full API representation of a proposal
type ProposalDTO struct {
	ID             uuid.UUID  `json:"id"`
	Token          string     `json:"token,omitempty"`
	IsTemplate     bool       `json:"isTemplate"`
	Title          string     `json:"title"`
	ProposalDate   time.Time  `json:"proposalDate"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
	Terms          string     `json:"terms,omitempty"`

	ClientFirstName string     `json:"clientFirstName,omitempty"`
	ClientLastName  string     `json:"clientLastName,omitempty"`
	ClientEmail     string     `json:"clientEmail,omitempty"`
	ClientCompany   string     `json:"clientCompany,omitempty"`
	ContactID       *uuid.UUID `json:"contactId,omitempty"`

	BusinessName    string `json:"businessName,omitempty"`
	BusinessEmail   string `json:"businessEmail,omitempty"`
	BusinessPhone   string `json:"businessPhone,omitempty"`
	BusinessAddress string `json:"businessAddress,omitempty"`

	ShowPricing      bool `json:"showPricing"`
	ShowTerms        bool `json:"showTerms"`
	ShowSowNumber    bool `json:"showSowNumber"`
	RequireSignature bool `json:"requireSignature"`

	DefaultPricingType PricingType  `json:"defaultPricingType"`
	DiscountType       DiscountType `json:"discountType"`
	DiscountValue      float64      `json:"discountValue"`
	TaxRate            float64      `json:"taxRate"`

	SowNumber     *int   `json:"sowNumber,omitempty"`
	DisplayNumber string `json:"displayNumber,omitempty"`

	Status     ProposalStatus `json:"status"`
	SentAt     *time.Time     `json:"sentAt,omitempty"`
	ViewedAt   *time.Time     `json:"viewedAt,omitempty"`
	AcceptedAt *time.Time     `json:"acceptedAt,omitempty"`
	DeclinedAt *time.Time     `json:"declinedAt,omitempty"`

	Sections  []CustomSectionDTO `json:"sections"`
	LineItems []LineItemDTO      `json:"lineItems"`
	Signature *SignatureDTO      `json:"signature,omitempty"`

	Totals       *TotalsDTO            `json:"totals,omitempty"`
	Verification SignatureVerification `json:"verification,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LineItemRequest is a line item as submitted by the owner.
// Position is implied by list order; the server recomputes it.
type LineItemRequest struct {
	Description string  `json:"description" validate:"required,max=500"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	PricingType string  `json:"pricingType" validate:"omitempty,oneof=fixed hourly monthly"`
}

// CustomSectionRequest is a custom section as submitted by the owner
type CustomSectionRequest struct {
	Title          string          `json:"title" validate:"required,max=200"`
	Subtitle       string          `json:"subtitle" validate:"max=200"`
	Body           string          `json:"body"`
	SectionType    string          `json:"sectionType" validate:"omitempty,oneof=text reviews"`
	ReviewExcerpts []ReviewExcerpt `json:"reviewExcerpts"`
}

// CreateProposalRequest is the payload for creating a proposal or template
type CreateProposalRequest struct {
	IsTemplate     bool       `json:"isTemplate"`
	Title          string     `json:"title" validate:"required,max=200"`
	ProposalDate   *time.Time `json:"proposalDate"`
	ExpirationDate *time.Time `json:"expirationDate"`
	Terms          string     `json:"terms"`

	ClientFirstName string     `json:"clientFirstName" validate:"max=100"`
	ClientLastName  string     `json:"clientLastName" validate:"max=100"`
	ClientEmail     string     `json:"clientEmail" validate:"omitempty,email"`
	ClientCompany   string     `json:"clientCompany" validate:"max=200"`
	ContactID       *uuid.UUID `json:"contactId"`

	BusinessName    string `json:"businessName" validate:"max=200"`
	BusinessEmail   string `json:"businessEmail" validate:"omitempty,email"`
	BusinessPhone   string `json:"businessPhone" validate:"max=50"`
	BusinessAddress string `json:"businessAddress" validate:"max=500"`

	ShowPricing      *bool `json:"showPricing"`
	ShowTerms        *bool `json:"showTerms"`
	ShowSowNumber    *bool `json:"showSowNumber"`
	RequireSignature *bool `json:"requireSignature"`

	DefaultPricingType string  `json:"defaultPricingType" validate:"omitempty,oneof=fixed hourly monthly"`
	DiscountType       string  `json:"discountType" validate:"omitempty,oneof=none percentage flat"`
	DiscountValue      float64 `json:"discountValue"`
	TaxRate            float64 `json:"taxRate"`

	Sections  []CustomSectionRequest `json:"sections" validate:"dive"`
	LineItems []LineItemRequest      `json:"lineItems" validate:"dive"`
}

// UpdateProposalRequest replaces proposal content wholesale.
// Child collections are replaced as a unit with dense positions recomputed.
type UpdateProposalRequest struct {
	Title          string     `json:"title" validate:"required,max=200"`
	ProposalDate   *time.Time `json:"proposalDate"`
	ExpirationDate *time.Time `json:"expirationDate"`
	Terms          string     `json:"terms"`

	ClientFirstName string     `json:"clientFirstName" validate:"max=100"`
	ClientLastName  string     `json:"clientLastName" validate:"max=100"`
	ClientEmail     string     `json:"clientEmail" validate:"omitempty,email"`
	ClientCompany   string     `json:"clientCompany" validate:"max=200"`
	ContactID       *uuid.UUID `json:"contactId"`

	ShowPricing      *bool `json:"showPricing"`
	ShowTerms        *bool `json:"showTerms"`
	ShowSowNumber    *bool `json:"showSowNumber"`
	RequireSignature *bool `json:"requireSignature"`

	DefaultPricingType string  `json:"defaultPricingType" validate:"omitempty,oneof=fixed hourly monthly"`
	DiscountType       string  `json:"discountType" validate:"omitempty,oneof=none percentage flat"`
	DiscountValue      float64 `json:"discountValue"`
	TaxRate            float64 `json:"taxRate"`

	Sections  []CustomSectionRequest `json:"sections" validate:"dive"`
	LineItems []LineItemRequest      `json:"lineItems" validate:"dive"`
}

// CloneProposalRequest is the payload for cloning a proposal or template
type CloneProposalRequest struct {
	Title      string `json:"title" validate:"max=200"`
	AsTemplate bool   `json:"asTemplate"`
}

// SetStatusRequest is the payload for an explicit owner status change
type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft sent on_hold accepted declined"`
}

// SetPrefixRequest is the payload for setting the account SOW prefix
type SetPrefixRequest struct {
	Prefix string `json:"prefix" validate:"required"`
}

// PrefixDTO is the API representation of the account SOW prefix
type PrefixDTO struct {
	Prefix string `json:"prefix"`
	Locked bool   `json:"locked"`
}

// SignProposalRequest is the recipient-facing signing payload.
// SignatureImage is a base64 data URL. Signing is only offered on proposals
// that require a signature, so the service enforces the image's presence
// together with that setting rather than through a validation tag.
type SignProposalRequest struct {
	SignerName     string `json:"signerName" validate:"required,max=200"`
	SignerEmail    string `json:"signerEmail" validate:"required,email"`
	SignatureImage string `json:"signatureImage"`
	AcceptedTerms  bool   `json:"acceptedTerms"`
}

// ContactDTO is the API representation of a contact
type ContactDTO struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email,omitempty"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateContactRequest is the payload for creating or updating a contact
type CreateContactRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"omitempty,email"`
	Company   string `json:"company" validate:"max=200"`
	Phone     string `json:"phone" validate:"max=50"`
}

// NotificationDTO is the API representation of a notification
type NotificationDTO struct {
	ID         uuid.UUID  `json:"id"`
	Type       string     `json:"type"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	Read       bool       `json:"read"`
	ReadAt     *time.Time `json:"readAt,omitempty"`
	EntityID   *uuid.UUID `json:"entityId,omitempty"`
	EntityType string     `json:"entityType,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// UnreadCountDTO carries the unread notification count
type UnreadCountDTO struct {
	Count int `json:"count"`
}
