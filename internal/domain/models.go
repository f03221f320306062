package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate assigns an ID when the caller did not set one
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// ProposalStatus represents the lifecycle status of a proposal
type ProposalStatus string

const (
	ProposalStatusDraft    ProposalStatus = "draft"
	ProposalStatusSent     ProposalStatus = "sent"
	ProposalStatusViewed   ProposalStatus = "viewed"
	ProposalStatusOnHold   ProposalStatus = "on_hold"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusDeclined ProposalStatus = "declined"
	ProposalStatusExpired  ProposalStatus = "expired"
)

// IsValid checks if the ProposalStatus is a valid enum value
func (s ProposalStatus) IsValid() bool {
	switch s {
	case ProposalStatusDraft, ProposalStatusSent, ProposalStatusViewed, ProposalStatusOnHold,
		ProposalStatusAccepted, ProposalStatusDeclined, ProposalStatusExpired:
		return true
	}
	return false
}

// PricingType represents the billing cadence of a line item
type PricingType string

const (
	PricingTypeFixed   PricingType = "fixed"
	PricingTypeHourly  PricingType = "hourly"
	PricingTypeMonthly PricingType = "monthly"
)

// IsValid checks if the PricingType is a valid enum value
func (p PricingType) IsValid() bool {
	switch p {
	case PricingTypeFixed, PricingTypeHourly, PricingTypeMonthly:
		return true
	}
	return false
}

// DiscountType represents how a proposal-level discount is applied
type DiscountType string

const (
	DiscountTypeNone       DiscountType = "none"
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFlat       DiscountType = "flat"
)

// IsValid checks if the DiscountType is a valid enum value
func (d DiscountType) IsValid() bool {
	switch d {
	case DiscountTypeNone, DiscountTypePercentage, DiscountTypeFlat:
		return true
	}
	return false
}

// SectionType represents the content kind of a custom section
type SectionType string

const (
	SectionTypeText    SectionType = "text"
	SectionTypeReviews SectionType = "reviews"
)

// SignatureVerification represents the advisory integrity state of a signed
// proposal. Display-only; it never blocks reads or mutations.
type SignatureVerification string

const (
	VerificationVerified     SignatureVerification = "verified"
	VerificationModified     SignatureVerification = "modified"
	VerificationUnverifiable SignatureVerification = "unverifiable"
)

// Proposal represents a statement-of-work document
type Proposal struct {
	BaseModel
	AccountID  uuid.UUID `gorm:"type:uuid;not null;index;column:account_id"`
	Token      string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	IsTemplate bool      `gorm:"not null;default:false;column:is_template;index"`

	Title          string     `gorm:"type:varchar(200);not null;index"`
	ProposalDate   time.Time  `gorm:"type:date;not null;column:proposal_date"`
	ExpirationDate *time.Time `gorm:"type:date;column:expiration_date"`
	Terms          string     `gorm:"type:text"`

	// ContactID optionally links a contact record; the client name/email
	// fields remain a snapshot taken at creation time.
	ClientFirstName string     `gorm:"type:varchar(100);column:client_first_name"`
	ClientLastName  string     `gorm:"type:varchar(100);column:client_last_name"`
	ClientEmail     string     `gorm:"type:varchar(255);column:client_email"`
	ClientCompany   string     `gorm:"type:varchar(200);column:client_company"`
	ContactID       *uuid.UUID `gorm:"type:uuid;index;column:contact_id"`
	Contact         *Contact   `gorm:"foreignKey:ContactID"`

	// Business identity snapshot captured at creation, not live-joined
	BusinessName    string `gorm:"type:varchar(200);column:business_name"`
	BusinessEmail   string `gorm:"type:varchar(255);column:business_email"`
	BusinessPhone   string `gorm:"type:varchar(50);column:business_phone"`
	BusinessAddress string `gorm:"type:varchar(500);column:business_address"`

	ShowPricing      bool `gorm:"not null;default:true;column:show_pricing"`
	ShowTerms        bool `gorm:"not null;default:true;column:show_terms"`
	ShowSowNumber    bool `gorm:"not null;default:true;column:show_sow_number"`
	RequireSignature bool `gorm:"not null;default:true;column:require_signature"`

	DefaultPricingType PricingType  `gorm:"type:varchar(20);not null;default:'fixed';column:default_pricing_type"`
	DiscountType       DiscountType `gorm:"type:varchar(20);not null;default:'none';column:discount_type"`
	DiscountValue      float64      `gorm:"type:decimal(15,2);not null;default:0;column:discount_value"`
	TaxRate            float64      `gorm:"type:decimal(5,2);not null;default:0;column:tax_rate"`

	// Assigned once at creation for non-templates, never reassigned
	SowNumber *int `gorm:"column:sow_number;index"`

	Status     ProposalStatus `gorm:"type:varchar(20);not null;default:'draft';index"`
	SentAt     *time.Time     `gorm:"column:sent_at"`
	ViewedAt   *time.Time     `gorm:"column:viewed_at"`
	AcceptedAt *time.Time     `gorm:"column:accepted_at"`
	DeclinedAt *time.Time     `gorm:"column:declined_at"`

	Sections  []ProposalCustomSection `gorm:"foreignKey:ProposalID;constraint:OnDelete:CASCADE"`
	LineItems []ProposalLineItem      `gorm:"foreignKey:ProposalID;constraint:OnDelete:CASCADE"`
	Signature *ProposalSignature      `gorm:"foreignKey:ProposalID"`
}

// ClientFullName returns the client's full name
func (p *Proposal) ClientFullName() string {
	if p.ClientFirstName != "" && p.ClientLastName != "" {
		return p.ClientFirstName + " " + p.ClientLastName
	}
	return p.ClientFirstName + p.ClientLastName
}

// ProposalLineItem represents a billable line in a proposal.
// The list is owned by the proposal and replaced wholesale on every edit.
type ProposalLineItem struct {
	BaseModel
	ProposalID  uuid.UUID   `gorm:"type:uuid;not null;index;column:proposal_id"`
	Description string      `gorm:"type:varchar(500);not null"`
	Quantity    float64     `gorm:"type:decimal(10,2);not null;default:1"`
	UnitPrice   float64     `gorm:"type:decimal(15,2);not null;default:0;column:unit_price"`
	PricingType PricingType `gorm:"type:varchar(20);column:pricing_type"`
	Position    int         `gorm:"not null;default:0"`
}

// ProposalCustomSection represents an ordered content block in a proposal.
// Positions form a dense gapless sequence, recomputed on every write.
type ProposalCustomSection struct {
	BaseModel
	ProposalID     uuid.UUID      `gorm:"type:uuid;not null;index;column:proposal_id"`
	Title          string         `gorm:"type:varchar(200);not null"`
	Subtitle       string         `gorm:"type:varchar(200)"`
	Body           string         `gorm:"type:text"`
	Position       int            `gorm:"not null;default:0"`
	SectionType    SectionType    `gorm:"type:varchar(20);not null;default:'text';column:section_type"`
	ReviewExcerpts datatypes.JSON `gorm:"column:review_excerpts"`
}

// ProposalSignature represents a client signature on a proposal.
// At most one can exist per proposal, enforced by a unique index.
// Immutable after creation.
type ProposalSignature struct {
	BaseModel
	ProposalID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:proposal_id"`
	SignerName    string    `gorm:"type:varchar(200);not null;column:signer_name"`
	SignerEmail   string    `gorm:"type:varchar(255);not null;column:signer_email"`
	ImagePath     string    `gorm:"type:varchar(500);column:image_path"`
	DocumentHash  string    `gorm:"type:varchar(64);not null;column:document_hash"`
	AcceptedTerms bool      `gorm:"not null;column:accepted_terms"`
	SignedAt      time.Time `gorm:"not null;column:signed_at"`
}

// SowPrefix holds an account's document number prefix.
// Locked becomes true the moment a non-template proposal uses the prefix;
// once locked the prefix is immutable.
type SowPrefix struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:account_id"`
	Prefix    string    `gorm:"type:varchar(10);not null"`
	Locked    bool      `gorm:"not null;default:false"`
}

// SowSequence is the per-account document number counter.
// Advanced only with an atomic increment, seeded from the highest existing
// sow_number on first use.
type SowSequence struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	AccountID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:account_id"`
	LastSequence int       `gorm:"not null;default:0;column:last_sequence"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate assigns an ID when the caller did not set one
func (s *SowSequence) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Contact represents a person proposals can be addressed to
type Contact struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;not null;index;column:account_id"`
	FirstName string    `gorm:"type:varchar(100);not null;column:first_name"`
	LastName  string    `gorm:"type:varchar(100);not null;column:last_name"`
	Email     string    `gorm:"type:varchar(255);index"`
	Company   string    `gorm:"type:varchar(200)"`
	Phone     string    `gorm:"type:varchar(50)"`
}

// FullName returns the contact's full name
func (c *Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// NotificationType represents the type of notification
type NotificationType string

const (
	NotificationTypeProposalSent     NotificationType = "proposal_sent"
	NotificationTypeProposalViewed   NotificationType = "proposal_viewed"
	NotificationTypeProposalSigned   NotificationType = "proposal_signed"
	NotificationTypeProposalDeclined NotificationType = "proposal_declined"
	NotificationTypeProposalExpiring NotificationType = "proposal_expiring"
)

// Notification represents a user notification
type Notification struct {
	BaseModel
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Type       string    `gorm:"type:varchar(50);not null"`
	Title      string    `gorm:"type:varchar(200);not null"`
	Message    string    `gorm:"type:varchar(500);not null"`
	Read       bool      `gorm:"column:read;not null;default:false;index"`
	ReadAt     *time.Time
	EntityID   *uuid.UUID `gorm:"type:uuid"`
	EntityType string     `gorm:"type:varchar(50)"`
}

// User represents an account owner or team member
type User struct {
	BaseModel
	AccountID   uuid.UUID      `gorm:"type:uuid;not null;index;column:account_id"`
	Email       string         `gorm:"type:varchar(255);not null;unique"`
	FirstName   string         `gorm:"type:varchar(100);column:first_name"`
	LastName    string         `gorm:"type:varchar(100);column:last_name"`
	DisplayName string         `gorm:"type:varchar(200);not null;column:display_name"`
	Roles       pq.StringArray `gorm:"type:text[];not null"`
	IsActive    bool           `gorm:"not null;default:true;column:is_active"`
}

// FullName returns the user's full name, or display name if first/last not set
func (u *User) FullName() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.DisplayName
}

// ReviewExcerpt is an externally sourced review embedded into a "reviews" section
type ReviewExcerpt struct {
	Author string  `json:"author"`
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
	Source string  `json:"source,omitempty"`
}
