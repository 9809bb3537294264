package handler

import (
	"log/slog"
	"net/http"

	"kusina/internal/delivery/http/response"
	"kusina/internal/errors"
	"kusina/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CartHandler holds dependencies for shopping cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetCart handles the cart listing request.
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	items, err := h.uc.ListCart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(items), "Cart retrieved successfully")
}

// AddToCart handles adding a product to the caller's cart. Adding a
// product already in the cart merges into the existing row.
func (h *CartHandler) AddToCart(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	var input *usecase.AddToCartInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.AddToCart(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartItemResponse(item), "Product added to cart")
}

// RemoveFromCart handles deleting one product's row from the cart.
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	if err := h.uc.RemoveFromCart(c.Request().Context(), userID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product removed from cart"}, "Product removed from cart")
}
