package repos

import "github.com/jmoiron/sqlx"

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

type OrderRow struct {
	ID            string  `db:"id" json:"id"`
	CustomerName  string  `db:"customer_name" json:"customerName"`
	CustomerEmail string  `db:"customer_email" json:"customerEmail"`
	Address       string  `db:"address" json:"address"`
	City          string  `db:"city" json:"city"`
	PaymentMethod string  `db:"payment_method" json:"paymentMethod"`
	Subtotal      int     `db:"subtotal" json:"subtotal"`
	Shipping      float64 `db:"shipping" json:"shipping"`
	Total         float64 `db:"total" json:"total"`
	Status        string  `db:"status" json:"status"`
	CreatedAt     string  `db:"created_at" json:"createdAt"`
}

type OrderItemRow struct {
	ProductID string `db:"product_id" json:"productId"`
	Title     string `db:"title" json:"title"`
	Qty       int    `db:"qty" json:"quantity"`
	Price     int    `db:"price" json:"price"`
}

// Create inserts a new order header.
func (r *OrderRepo) Create(o OrderRow) error {
	_, err := r.db.Exec(`
	  INSERT INTO orders
	    (id, customer_name, customer_email, address, city, payment_method, subtotal, shipping, total, status, created_at)
	  VALUES
	    (?,  ?,             ?,              ?,       ?,    ?,              ?,        ?,        ?,     'PLACED', CURRENT_TIMESTAMP)
	`, o.ID, o.CustomerName, o.CustomerEmail, o.Address, o.City, o.PaymentMethod, o.Subtotal, o.Shipping, o.Total)
	return err
}

// InsertItem inserts a single line item.
func (r *OrderRepo) InsertItem(orderID string, it OrderItemRow) error {
	_, err := r.db.Exec(`
	  INSERT INTO order_items(order_id, product_id, title, qty, price)
	  VALUES(?, ?, ?, ?, ?)
	`, orderID, it.ProductID, it.Title, it.Qty, it.Price)
	return err
}

func (r *OrderRepo) Get(orderID string) (OrderRow, []OrderItemRow, error) {
	var o OrderRow
	if err := r.db.Get(&o, `
		SELECT id, customer_name, customer_email, COALESCE(address,'') AS address,
		       COALESCE(city,'') AS city, COALESCE(payment_method,'') AS payment_method,
		       subtotal, shipping, total, status, created_at
		FROM orders WHERE id = ?
	`, orderID); err != nil {
		return OrderRow{}, nil, err
	}

	var items []OrderItemRow
	if err := r.db.Select(&items, `
		SELECT product_id, title, qty, price
		FROM order_items
		WHERE order_id = ?
		ORDER BY title
	`, orderID); err != nil {
		return OrderRow{}, nil, err
	}
	return o, items, nil
}

func (r *OrderRepo) ListLatest(limit int) ([]OrderRow, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []OrderRow
	err := r.db.Select(&out, `
		SELECT id, customer_name, customer_email, COALESCE(address,'') AS address,
		       COALESCE(city,'') AS city, COALESCE(payment_method,'') AS payment_method,
		       subtotal, shipping, total, status, created_at
		FROM orders
		ORDER BY datetime(created_at) DESC
		LIMIT ?
	`, limit)
	return out, err
}
