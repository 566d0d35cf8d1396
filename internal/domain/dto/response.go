package dto

import (
	"net/http"
	"time"

	"github.com/walterflo/pizzeria-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeValidationFailure indicates a business validation failure,
	// such as checking out an empty cart or omitting the pickup time.
	ErrCodeValidationFailure = "validation_failure"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response payload
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-08-30T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error     string    `json:"error" example:"validation_failure"`
	Message   string    `json:"message,omitempty" example:"pickup time is required"`
	RequestID string    `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time `json:"timestamp" example:"2026-08-30T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnprocessableEntity:
		return ErrCodeValidationFailure
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	default:
		return ErrCodeInternal
	}
}

// LineView is one cart row as rendered to the storefront.
// @Description One cart line with display labels and formatted amounts
type LineView struct {
	ItemID           string `json:"item_id" example:"fromage"`
	Size             string `json:"size,omitempty" example:"quarter"`
	SizeLabel        string `json:"size_label,omitempty" example:"1/4"`
	Name             string `json:"name" example:"Fromage"`
	UnitPrice        int64  `json:"unit_price" example:"200"`
	UnitPriceDisplay string `json:"unit_price_display" example:"2.00 €"`
	Quantity         int    `json:"quantity" example:"2"`
	Subtotal         int64  `json:"subtotal" example:"400"`
	SubtotalDisplay  string `json:"subtotal_display" example:"4.00 €"`
} // @name LineView

// CartResponse is the full cart view returned by cart reads and mutations.
// @Description Cart contents with derived total and count
type CartResponse struct {
	CartID       string     `json:"cart_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Lines        []LineView `json:"lines"`
	Total        int64      `json:"total" example:"890"`
	TotalDisplay string     `json:"total_display" example:"8.90 €"`
	Count        int        `json:"count" example:"3"`
} // @name CartResponse

// NewCartResponse builds a CartResponse from a cart snapshot.
func NewCartResponse(cartID string, cart model.Cart) CartResponse {
	lines := make([]LineView, len(cart.Lines))
	for i, l := range cart.Lines {
		lines[i] = LineView{
			ItemID:           l.Key.ItemID,
			Size:             string(l.Key.Size),
			SizeLabel:        l.Key.Size.Label(),
			Name:             l.Name,
			UnitPrice:        int64(l.UnitPrice),
			UnitPriceDisplay: l.UnitPrice.Format(),
			Quantity:         l.Quantity,
			Subtotal:         int64(l.Subtotal()),
			SubtotalDisplay:  l.Subtotal().Format(),
		}
	}
	return CartResponse{
		CartID:       cartID,
		Lines:        lines,
		Total:        int64(cart.Total()),
		TotalDisplay: cart.Total().Format(),
		Count:        cart.Count(),
	}
}

// MenuResponse groups the catalog the way the storefront displays it.
// @Description Full menu grouped as pizzas, specialties, and menus
type MenuResponse struct {
	Pizzas      []model.Item `json:"pizzas"`
	Specialties []model.Item `json:"specialties"`
	Menus       []model.Item `json:"menus"`
} // @name MenuResponse

// CheckoutResponse carries the composed order message and the delivery links.
// @Description Composed order message plus WhatsApp and SMS delivery links
type CheckoutResponse struct {
	// Message is the raw order message before any transport encoding
	Message string `json:"message"`
	// WhatsAppURL is the wa.me deep link with the message as text parameter
	WhatsAppURL string `json:"whatsapp_url"`
	// SMSURI is the messaging intent with the message as body parameter
	SMSURI string `json:"sms_uri"`
	// Total is the order total in cents
	Total int64 `json:"total" example:"890"`
	// TotalDisplay is the formatted order total
	TotalDisplay string `json:"total_display" example:"8.90 €"`
} // @name CheckoutResponse
