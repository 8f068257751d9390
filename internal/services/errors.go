// Package services defines the business logic for the adoption platform:
// the matching pool, the adoption lifecycle, and the reference-entity CRUD.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the
// handler layer.
package services

import "errors"

// Not-found errors. A pet hidden by ownership or by the caller's dislike set
// surfaces as the same ErrPetNotFound as a missing row: the API does not
// reveal whether a pet exists but was claimed by someone else.
var (
	ErrPetNotFound      = errors.New("pet not found")
	ErrSpeciesNotFound  = errors.New("species not found")
	ErrOngNotFound      = errors.New("ong not found")
	ErrGiftNotFound     = errors.New("gift not found")
	ErrPartnerNotFound  = errors.New("partner not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

// Filter-validation errors. The age and weight browsing filters must carry at
// least one digit; the two are distinguished so clients can point at the
// offending field.
var (
	// ErrInvalidAge is returned when an age filter or age field yields no
	// parseable number.
	ErrInvalidAge = errors.New("invalid age")

	// ErrInvalidWeight is returned when a weight filter or weight field
	// yields no parseable number.
	ErrInvalidWeight = errors.New("invalid weight")

	// ErrImageRequired is returned when a pet is registered without an image.
	ErrImageRequired = errors.New("image is required")
)

// Business-rule errors.
var (
	// ErrPetAdopted is returned when a deactivation is attempted on an
	// adopted pet. Adoption is a terminal, protected state.
	ErrPetAdopted = errors.New("adopted pets cannot be deactivated")

	// ErrAlreadyDisliked is returned when a user dislikes the same pet twice.
	ErrAlreadyDisliked = errors.New("pet already disliked")

	// ErrAlreadyFavorited is returned when a user favorites the same pet twice.
	ErrAlreadyFavorited = errors.New("pet already favorited")

	// ErrDuplicateName is returned when a unique-named reference entity
	// (species) collides with an existing row.
	ErrDuplicateName = errors.New("name already registered")
)
