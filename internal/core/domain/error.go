package domain

import (
	"errors"
)

// Error messages for data and validation errors double as the API error
// bodies, so the wording here is what clients display.
var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrOrderNotFound   = errors.New("Order not found")
	ErrImageNotFound   = errors.New("Image not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Validation errors.
	ErrProductTypeColorRequired = errors.New("productType and color are required")
	ErrMaterialRequired         = errors.New("material is required for t-shirts")
	ErrNoImageFile              = errors.New("No image file provided")
	ErrNotAnImage               = errors.New("Only image files are allowed")
	ErrImageTooLarge            = errors.New("Image file is too large")
)
