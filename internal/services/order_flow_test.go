package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veltora/internal/domain"
	"veltora/internal/repos"
	"veltora/internal/services"
)

func checkoutForm() domain.CheckoutForm {
	return domain.CheckoutForm{
		Name:          "Ada",
		Email:         "ada@example.com",
		Address:       "1 Storefront Way",
		City:          "Lagos",
		PaymentMethod: "card",
	}
}

func orderFixture(t *testing.T) (*services.CartStore, *services.OrderService) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := services.NewCartStore(repos.NewKVRepo(db))
	return store, services.NewOrderService(store, repos.NewOrderRepo(db))
}

func TestOrderFlow_PlaceClearsCartAndPersists(t *testing.T) {
	store, orders := orderFixture(t)
	store.AddToCart(product("a", 120))
	store.AddToCart(product("a", 120))
	store.AddToCart(product("b", 30))

	placed, err := orders.Place(checkoutForm())
	require.NoError(t, err)
	assert.NotEmpty(t, placed.ID)
	assert.Equal(t, 270, placed.Subtotal)
	assert.Zero(t, placed.Shipping) // over the free-shipping threshold
	assert.Equal(t, 270.0, placed.Total)

	assert.Empty(t, store.Items())

	row, items, err := orders.Get(placed.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", row.CustomerName)
	assert.Equal(t, "PLACED", row.Status)
	require.Len(t, items, 2)
}

func TestOrderFlow_FlatShippingUnderThreshold(t *testing.T) {
	store, orders := orderFixture(t)
	store.AddToCart(product("a", 40))

	placed, err := orders.Place(checkoutForm())
	require.NoError(t, err)
	assert.Equal(t, 40, placed.Subtotal)
	assert.Equal(t, 5.99, placed.Shipping)
	assert.Equal(t, 45.99, placed.Total)
}

func TestOrderFlow_EmptyCartRejected(t *testing.T) {
	_, orders := orderFixture(t)
	_, err := orders.Place(checkoutForm())
	assert.ErrorIs(t, err, services.ErrCartEmpty)
}

func TestOrderFlow_InvalidFormRejected(t *testing.T) {
	store, orders := orderFixture(t)
	store.AddToCart(product("a", 40))

	form := checkoutForm()
	form.Email = "not-an-email"
	_, err := orders.Place(form)
	assert.Error(t, err)

	// The cart survives a failed placement.
	assert.Len(t, store.Items(), 1)
}
