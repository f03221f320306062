package service

import "errors"

// Common service errors
var (
	// ErrUserContextRequired is returned when user context is not available
	ErrUserContextRequired = errors.New("user context required")

	// ErrProposalNotFound is returned when a proposal is not found
	ErrProposalNotFound = errors.New("proposal not found")

	// ErrContactNotFound is returned when a contact is not found
	ErrContactNotFound = errors.New("contact not found")

	// ErrEditNotAllowed is returned when editing a proposal in a terminal status
	ErrEditNotAllowed = errors.New("proposal can no longer be edited")

	// ErrInvalidTransition is returned when a lifecycle trigger is not valid
	// for the proposal's current status
	ErrInvalidTransition = errors.New("status transition not allowed")

	// ErrAlreadySigned is returned when a proposal already carries a signature
	ErrAlreadySigned = errors.New("proposal is already signed")

	// ErrSignatureRequired is returned when signing without a signature image
	// on a proposal that requires one
	ErrSignatureRequired = errors.New("signature image required")

	// ErrTermsNotAccepted is returned when signing without accepting terms
	ErrTermsNotAccepted = errors.New("terms must be accepted to sign")

	// ErrSigningDisabled is returned when signing a proposal that does not
	// require a signature
	ErrSigningDisabled = errors.New("proposal does not accept signatures")

	// ErrProposalExpired is returned for recipient actions on an expired proposal
	ErrProposalExpired = errors.New("proposal has expired")

	// ErrInvalidPrefix is returned when a document number prefix fails validation
	ErrInvalidPrefix = errors.New("invalid document number prefix")

	// ErrPrefixLocked is returned when changing a prefix that is already in use
	ErrPrefixLocked = errors.New("document number prefix is locked")

	// ErrTemplateLifecycle is returned when a lifecycle action targets a template
	ErrTemplateLifecycle = errors.New("templates have no lifecycle")

	// ErrInvalidStatus is returned when an owner sets a status that is not allowed
	ErrInvalidStatus = errors.New("status cannot be set directly")

	// ErrNotificationNotFound is returned when a notification is not found
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrNotificationNotOwned is returned when a notification belongs to
	// another user
	ErrNotificationNotOwned = errors.New("notification belongs to another user")
)
