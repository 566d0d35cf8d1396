// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

// AddItemRequest represents the JSON body for adding an item to a cart.
//
// Size is required for pizzas and must be omitted for specialties and
// bundles; the cart engine enforces this.
//
// @Description Request to add one unit of a catalog item to the cart
// @Example {"item_id": "fromage", "size": "quarter"}
type AddItemRequest struct {
	// ItemID is the catalog item to add.
	ItemID string `json:"item_id" binding:"required" example:"fromage"`
	// Size is one of "quarter", "half", "full" for pizzas; empty otherwise.
	Size string `json:"size,omitempty" example:"quarter"`
} // @name AddItemRequest

// UpdateQuantityRequest represents the JSON body for adjusting a line quantity.
//
// @Description Request to adjust a cart line quantity by a signed delta
// @Example {"item_id": "fromage", "size": "quarter", "delta": -1}
type UpdateQuantityRequest struct {
	// ItemID identifies the line together with Size.
	ItemID string `json:"item_id" binding:"required" example:"fromage"`
	// Size is the line's size tag, empty for unsized items.
	Size string `json:"size,omitempty" example:"quarter"`
	// Delta is added to the current quantity; the line is removed when the
	// result reaches zero.
	Delta int `json:"delta" binding:"required" example:"-1"`
} // @name UpdateQuantityRequest

// CheckoutRequest represents the JSON body for composing the order message.
//
// PickupTime is deliberately not tagged required: a missing pickup time is a
// business validation failure (422), not a malformed request.
//
// @Description Request to compose the outbound order message and delivery links
// @Example {"pickup_time": "12:30"}
type CheckoutRequest struct {
	// PickupTime is the caller-supplied pickup time string, e.g. "12:30".
	PickupTime string `json:"pickup_time" example:"12:30"`
} // @name CheckoutRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrMissingItemID is returned when item_id is absent.
	ErrMissingItemID = &ValidationError{
		Field:   "item_id",
		Message: "is required",
	}
	// ErrZeroDelta is returned when delta is zero.
	ErrZeroDelta = &ValidationError{
		Field:   "delta",
		Message: "must be non-zero",
	}
)

// Validate performs custom validation on the request.
func (r *AddItemRequest) Validate() error {
	if r.ItemID == "" {
		return ErrMissingItemID
	}
	return nil
}

// Validate performs custom validation on the request.
func (r *UpdateQuantityRequest) Validate() error {
	if r.ItemID == "" {
		return ErrMissingItemID
	}
	if r.Delta == 0 {
		return ErrZeroDelta
	}
	return nil
}
