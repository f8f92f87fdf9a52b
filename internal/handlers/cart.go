// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/atjshop/storefront/internal/i18n"
	"github.com/atjshop/storefront/internal/services"
	"github.com/atjshop/storefront/internal/store"
	"github.com/atjshop/storefront/internal/utils"
)

const cartSessionHeader = "X-Cart-Session"

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// cartOwner resolves the cart owner: the authenticated user if present,
// otherwise an anonymous session id carried in a header. A fresh id is
// issued (and echoed back) when the client has neither.
func cartOwner(c *gin.Context) string {
	if userID, ok := utils.GetUserIDFromContext(c); ok {
		return userID
	}
	if session := c.GetHeader(cartSessionHeader); session != "" {
		c.Header(cartSessionHeader, session)
		return session
	}
	session := uuid.NewString()
	c.Header(cartSessionHeader, session)
	return session
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
	Color     string `json:"color,omitempty" validate:"omitempty,color_token"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required"`
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.cartService.GetCart(c.Request.Context(), cartOwner(c))
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"cart":       cart,
		"total":      cart.Total(),
		"item_count": cart.ItemCount(),
	})
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if req.Quantity < 1 {
		req.Quantity = 1
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), cartOwner(c), req.ProductID, req.Quantity, req.Color)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartItemAdded),
		"cart":    cart,
		"total":   cart.Total(),
	})
}

// PUT /cart/items/:productId
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	cart, err := h.cartService.UpdateQuantity(c.Request.Context(), cartOwner(c), c.Param("productId"), req.Quantity)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartUpdated),
		"cart":    cart,
		"total":   cart.Total(),
	})
}

// DELETE /cart/items/:productId
//
// An optional ?color= query narrows the removal to one (product, color)
// line; without it every line of the product goes.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	cart, err := h.cartService.RemoveItem(c.Request.Context(), cartOwner(c), c.Param("productId"), c.Query("color"))
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartItemRemoved),
		"cart":    cart,
		"total":   cart.Total(),
	})
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if err := h.cartService.ClearCart(c.Request.Context(), cartOwner(c)); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartCleared),
	})
}
