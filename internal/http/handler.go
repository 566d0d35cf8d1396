package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/walterflo/pizzeria-service/internal/catalog"
	"github.com/walterflo/pizzeria-service/internal/domain/dto"
	"github.com/walterflo/pizzeria-service/internal/domain/model"
	"github.com/walterflo/pizzeria-service/internal/metrics"
	"github.com/walterflo/pizzeria-service/internal/service"
)

var errCartNotFound = errors.New("cart not found")
var errItemNotFound = errors.New("item not found")

// Handler provides HTTP handlers for the menu, cart, and checkout routes.
type Handler struct {
	catalog   *catalog.Catalog
	carts     *service.CartStore
	formatter *service.OrderFormatter
	links     *service.LinkBuilder
}

// NewHandler creates a new Handler instance.
func NewHandler(cat *catalog.Catalog, carts *service.CartStore, formatter *service.OrderFormatter, links *service.LinkBuilder) *Handler {
	return &Handler{
		catalog:   cat,
		carts:     carts,
		formatter: formatter,
		links:     links,
	}
}

// GetMenu handles GET /api/menu requests.
//
// @Summary      Get the menu
// @Description  Returns the full catalog grouped as pizzas, specialties, and menus. Prices are in euro cents.
// @Tags         Menu
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Full menu"
// @Router       /api/menu [get]
func (h *Handler) GetMenu(c *gin.Context) {
	builder := NewResponseBuilder(c)
	builder.Success(http.StatusOK, dto.MenuResponse{
		Pizzas:      h.catalog.Pizzas(),
		Specialties: h.catalog.Specialties(),
		Menus:       h.catalog.Menus(),
	})
}

// CreateCart handles POST /api/carts requests.
//
// @Summary      Create a cart
// @Description  Opens a new empty cart session and returns its ID. Sessions live in memory and expire after inactivity.
// @Tags         Carts
// @Produce      json
// @Success      201 {object} dto.SuccessResponse "New empty cart"
// @Failure      429 {object} dto.ErrorResponse "Too many requests"
// @Router       /api/carts [post]
func (h *Handler) CreateCart(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id, cart := h.carts.Create()
	builder.Success(http.StatusCreated, dto.NewCartResponse(id, cart.Snapshot()))
}

// GetCart handles GET /api/carts/:id requests.
//
// @Summary      Get cart contents
// @Description  Returns the cart's lines in insertion order with the derived total and item count.
// @Tags         Carts
// @Produce      json
// @Param        id path string true "Cart ID"
// @Success      200 {object} dto.SuccessResponse "Cart contents"
// @Failure      404 {object} dto.ErrorResponse "Unknown or expired cart"
// @Router       /api/carts/{id} [get]
func (h *Handler) GetCart(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := c.Param("id")

	cart, ok := h.carts.Get(id)
	if !ok {
		builder.Error(http.StatusNotFound, errCartNotFound)
		return
	}
	builder.Success(http.StatusOK, dto.NewCartResponse(id, cart.Snapshot()))
}

// AddItem handles POST /api/carts/:id/items requests.
//
// @Summary      Add an item to the cart
// @Description  Adds one unit of a catalog item. Adding the same item and size again increments the existing line instead of creating a duplicate. Pizzas require a size; specialties and menus must not carry one.
// @Tags         Carts
// @Accept       json
// @Produce      json
// @Param        id path string true "Cart ID"
// @Param        request body dto.AddItemRequest true "Item to add"
// @Success      200 {object} dto.SuccessResponse "Updated cart"
// @Failure      400 {object} dto.ErrorResponse "Unknown item or invalid size"
// @Failure      404 {object} dto.ErrorResponse "Unknown or expired cart"
// @Router       /api/carts/{id}/items [post]
func (h *Handler) AddItem(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := c.Param("id")

	cart, ok := h.carts.Get(id)
	if !ok {
		builder.Error(http.StatusNotFound, errCartNotFound)
		return
	}

	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, err)
		return
	}

	item, ok := h.catalog.Find(req.ItemID)
	if !ok {
		metrics.RecordCartOperation("add", "unknown_item")
		builder.Error(http.StatusBadRequest, errItemNotFound)
		return
	}

	if err := cart.AddItem(item, model.Size(req.Size)); err != nil {
		metrics.RecordCartOperation("add", "invalid_size")
		builder.Error(http.StatusBadRequest, err)
		return
	}

	metrics.RecordCartOperation("add", "success")
	builder.Success(http.StatusOK, dto.NewCartResponse(id, cart.Snapshot()))
}

// UpdateQuantity handles PATCH /api/carts/:id/items requests.
//
// @Summary      Adjust a line quantity
// @Description  Applies a signed delta to the identified line's quantity. The line is removed once its quantity reaches zero. Unknown line keys are silently ignored and the cart is returned unchanged.
// @Tags         Carts
// @Accept       json
// @Produce      json
// @Param        id path string true "Cart ID"
// @Param        request body dto.UpdateQuantityRequest true "Line and delta"
// @Success      200 {object} dto.SuccessResponse "Updated cart"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Failure      404 {object} dto.ErrorResponse "Unknown or expired cart"
// @Router       /api/carts/{id}/items [patch]
func (h *Handler) UpdateQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := c.Param("id")

	cart, ok := h.carts.Get(id)
	if !ok {
		builder.Error(http.StatusNotFound, errCartNotFound)
		return
	}

	var req dto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, err)
		return
	}

	cart.UpdateQuantity(model.LineKey{
		ItemID: req.ItemID,
		Size:   model.Size(req.Size),
	}, req.Delta)

	metrics.RecordCartOperation("update", "success")
	builder.Success(http.StatusOK, dto.NewCartResponse(id, cart.Snapshot()))
}

// Checkout handles POST /api/carts/:id/checkout requests.
//
// @Summary      Compose the order message
// @Description  Composes the outbound order message from the cart and pickup time and returns it together with the WhatsApp and SMS delivery links. The cart is left untouched so the visitor can still change their mind. An empty cart or a missing pickup time is a validation failure and no message is produced.
// @Tags         Carts
// @Accept       json
// @Produce      json
// @Param        id path string true "Cart ID"
// @Param        request body dto.CheckoutRequest true "Pickup time"
// @Success      200 {object} dto.SuccessResponse "Order message and delivery links"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Failure      404 {object} dto.ErrorResponse "Unknown or expired cart"
// @Failure      422 {object} dto.ErrorResponse "Empty cart or missing pickup time"
// @Router       /api/carts/{id}/checkout [post]
func (h *Handler) Checkout(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := c.Param("id")

	cart, ok := h.carts.Get(id)
	if !ok {
		builder.Error(http.StatusNotFound, errCartNotFound)
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	snapshot := cart.Snapshot()

	message, err := h.formatter.FormatOrderMessage(snapshot, req.PickupTime)
	if err != nil {
		metrics.RecordOrderComposed(time.Since(start), "validation_error")
		builder.Error(http.StatusUnprocessableEntity, err)
		return
	}

	metrics.RecordOrderComposed(time.Since(start), "success")
	metrics.RecordCartOperation("checkout", "success")

	builder.Success(http.StatusOK, dto.CheckoutResponse{
		Message:      message,
		WhatsAppURL:  h.links.WhatsAppURL(message),
		SMSURI:       h.links.SMSURI(message),
		Total:        int64(snapshot.Total()),
		TotalDisplay: snapshot.Total().Format(),
	})
}
