package services

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"veltora/internal/domain"
	"veltora/internal/repos"
)

var (
	ErrCartEmpty = errors.New("cart empty")
)

// OrderService turns the current cart into a simulated order: validate
// the checkout form, snapshot the cart, persist the order, clear the cart.
// No payment or fulfilment happens.
type OrderService struct {
	Cart   *CartStore
	Orders *repos.OrderRepo

	validate *validator.Validate
}

func NewOrderService(cart *CartStore, orders *repos.OrderRepo) *OrderService {
	return &OrderService{Cart: cart, Orders: orders, validate: validator.New()}
}

// PlacedOrder is the confirmation returned to the caller.
type PlacedOrder struct {
	ID       string  `json:"id"`
	Subtotal int     `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// ShippingCost mirrors the product shipping rule at order level: free
// above the threshold, flat cost otherwise.
func ShippingCost(subtotal int) float64 {
	if float64(subtotal) > freeShippingThreshold {
		return 0
	}
	return flatShippingCost
}

// Place validates the form, prices the cart and persists the order.
// Validation problems surface as validator errors; an empty cart is
// ErrCartEmpty.
func (s *OrderService) Place(form domain.CheckoutForm) (PlacedOrder, error) {
	if err := s.validate.Struct(form); err != nil {
		return PlacedOrder{}, err
	}

	items := s.Cart.Items()
	if len(items) == 0 {
		return PlacedOrder{}, ErrCartEmpty
	}

	subtotal := s.Cart.CartTotal()
	shipping := ShippingCost(subtotal)
	total := float64(subtotal) + shipping

	orderID := uuid.NewString()
	if err := s.Orders.Create(repos.OrderRow{
		ID:            orderID,
		CustomerName:  form.Name,
		CustomerEmail: form.Email,
		Address:       form.Address,
		City:          form.City,
		PaymentMethod: form.PaymentMethod,
		Subtotal:      subtotal,
		Shipping:      shipping,
		Total:         total,
	}); err != nil {
		return PlacedOrder{}, err
	}
	for _, it := range items {
		if err := s.Orders.InsertItem(orderID, repos.OrderItemRow{
			ProductID: it.ID,
			Title:     it.Title,
			Qty:       it.Quantity,
			Price:     it.Price,
		}); err != nil {
			return PlacedOrder{}, err
		}
	}

	s.Cart.ClearCart()
	return PlacedOrder{ID: orderID, Subtotal: subtotal, Shipping: shipping, Total: total}, nil
}

// Get returns an order with its items.
func (s *OrderService) Get(orderID string) (repos.OrderRow, []repos.OrderItemRow, error) {
	return s.Orders.Get(orderID)
}
