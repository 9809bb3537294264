package handler

import (
	"time"

	"kusina/internal/domain/entity"
	"kusina/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Response DTOs decouple the JSON contract from the domain entities, so
// entity changes never leak into the API by accident.

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type authResponse struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	User    userResponse `json:"user"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

type productResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Available   bool            `json:"available"`
	Category    entity.Category `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
}

type cartItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	AddedAt   time.Time       `json:"added_at"`
}

type cartResponse struct {
	Items []cartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

type orderItemResponse struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type orderResponse struct {
	ID          uuid.UUID           `json:"id"`
	Status      string              `json:"status"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	CreatedAt   time.Time           `json:"created_at"`
	Items       []orderItemResponse `json:"items"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}

func toAuthResponse(output *usecase.AuthOutput) authResponse {
	return authResponse{
		Access:  output.AccessToken,
		Refresh: output.RefreshToken,
		User:    toUserResponse(output.User),
	}
}

func toProductResponse(product *entity.Product) productResponse {
	return productResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		Available:   product.Available,
		Category:    product.Category,
		CreatedAt:   product.CreatedAt,
	}
}

func toProductResponses(products []*entity.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, product := range products {
		out = append(out, toProductResponse(product))
	}

	return out
}

func toCartItemResponse(item *entity.CartItem) cartItemResponse {
	return cartItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		Name:      item.ProductName,
		Price:     item.ProductPrice,
		ImageURL:  item.ProductImage,
		Quantity:  item.Quantity,
		Subtotal:  item.Subtotal(),
		AddedAt:   item.AddedAt,
	}
}

func toCartResponse(items []*entity.CartItem) cartResponse {
	out := cartResponse{
		Items: make([]cartItemResponse, 0, len(items)),
		Total: decimal.Zero,
	}
	for _, item := range items {
		out.Items = append(out.Items, toCartItemResponse(item))
		out.Total = out.Total.Add(item.Subtotal())
	}

	return out
}

func toOrderResponse(order *entity.Order) orderResponse {
	out := orderResponse{
		ID:          order.ID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
		Items:       make([]orderItemResponse, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		out.Items = append(out.Items, orderItemResponse{
			ProductID: item.ProductID,
			Name:      item.ProductName,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return out
}

func toOrderResponses(orders []*entity.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}

	return out
}
