package order

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	createOrdersTable = `
		CREATE TABLE IF NOT EXISTS orders (
			id BIGSERIAL PRIMARY KEY,
			order_id TEXT NOT NULL UNIQUE,
			customer_name TEXT NOT NULL,
			customer_email TEXT NOT NULL,
			customer_phone TEXT NOT NULL,
			shipping_address TEXT NOT NULL,
			payment_method TEXT NOT NULL,
			subtotal INT NOT NULL,
			shipping_cost INT NOT NULL,
			tax_amount INT NOT NULL,
			total_amount INT NOT NULL,
			status TEXT NOT NULL DEFAULT 'confirmed',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	createOrderItemsTable = `
		CREATE TABLE IF NOT EXISTS order_items (
			id BIGSERIAL PRIMARY KEY,
			order_id BIGINT NOT NULL REFERENCES orders(id),
			product_name TEXT NOT NULL,
			product_price INT NOT NULL,
			quantity INT NOT NULL,
			size TEXT NOT NULL,
			color TEXT NOT NULL,
			product_image TEXT NOT NULL DEFAULT ''
		)
	`
	createEmailNotificationsTable = `
		CREATE TABLE IF NOT EXISTS email_notifications (
			id BIGSERIAL PRIMARY KEY,
			order_id BIGINT NOT NULL REFERENCES orders(id),
			email_type TEXT NOT NULL,
			recipient_email TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`

	insertOrderQuery = `
		INSERT INTO orders (order_id, customer_name, customer_email, customer_phone, shipping_address,
			payment_method, subtotal, shipping_cost, tax_amount, total_amount, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id, created_at
	`
	// one statement for all rows: the arrays are zipped by unnest
	insertItemsQuery = `
		INSERT INTO order_items (order_id, product_name, product_price, quantity, size, color, product_image)
		SELECT $1, * FROM unnest($2::text[], $3::int[], $4::int[], $5::text[], $6::text[], $7::text[])
	`
	insertNotificationsQuery = `
		INSERT INTO email_notifications (order_id, email_type, recipient_email, status)
		SELECT * FROM unnest($1::bigint[], $2::text[], $3::text[], $4::text[])
	`

	orderColumns = `id, order_id, customer_name, customer_email, customer_phone, shipping_address,
		payment_method, subtotal, shipping_cost, tax_amount, total_amount, status, created_at`

	listOrdersQuery    = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC, id DESC`
	getOrderQuery      = `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1`
	itemsByOrdersQuery = `
		SELECT id, order_id, product_name, product_price, quantity, size, color, product_image
		FROM order_items WHERE order_id = ANY($1::bigint[]) ORDER BY id
	`
	notificationsQuery = `
		SELECT id, order_id, email_type, recipient_email, status, created_at
		FROM email_notifications WHERE order_id = $1 ORDER BY id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the order tables when missing.
func (r *PostgresRepository) EnsureSchema() error {
	for _, stmt := range []string{createOrdersTable, createOrderItemsTable, createEmailNotificationsTable} {
		if _, err := r.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) CreateOrder(o Order) (Order, error) {
	err := r.db.QueryRow(insertOrderQuery,
		o.OrderID, o.CustomerName, o.CustomerEmail, o.CustomerPhone, o.ShippingAddress,
		o.PaymentMethod, o.Subtotal, o.ShippingCost, o.TaxAmount, o.TotalAmount, o.Status,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return Order{}, err
	}
	return o, nil
}

func (r *PostgresRepository) CreateItems(orderRef int64, items []ItemRow) error {
	if len(items) == 0 {
		return nil
	}
	names := make([]string, 0, len(items))
	prices := make([]int64, 0, len(items))
	qtys := make([]int64, 0, len(items))
	sizes := make([]string, 0, len(items))
	colors := make([]string, 0, len(items))
	images := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.ProductName)
		prices = append(prices, int64(it.ProductPrice))
		qtys = append(qtys, int64(it.Quantity))
		sizes = append(sizes, it.Size)
		colors = append(colors, it.Color)
		images = append(images, it.ProductImage)
	}
	_, err := r.db.Exec(insertItemsQuery, orderRef,
		pq.Array(names), pq.Array(prices), pq.Array(qtys), pq.Array(sizes), pq.Array(colors), pq.Array(images))
	return err
}

func (r *PostgresRepository) LogNotifications(ns []Notification) error {
	if len(ns) == 0 {
		return nil
	}
	refs := make([]int64, 0, len(ns))
	types := make([]string, 0, len(ns))
	recipients := make([]string, 0, len(ns))
	statuses := make([]string, 0, len(ns))
	for _, n := range ns {
		refs = append(refs, n.OrderRef)
		types = append(types, n.EmailType)
		recipients = append(recipients, n.RecipientEmail)
		statuses = append(statuses, n.Status)
	}
	_, err := r.db.Exec(insertNotificationsQuery,
		pq.Array(refs), pq.Array(types), pq.Array(recipients), pq.Array(statuses))
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(s scanner) (Order, error) {
	var o Order
	err := s.Scan(&o.ID, &o.OrderID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &o.ShippingAddress,
		&o.PaymentMethod, &o.Subtotal, &o.ShippingCost, &o.TaxAmount, &o.TotalAmount, &o.Status, &o.CreatedAt)
	return o, err
}

func (r *PostgresRepository) List() ([]Order, error) {
	rows, err := r.db.Query(listOrdersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return orders, nil
	}

	items, err := r.itemsFor(ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}
	return orders, nil
}

func (r *PostgresRepository) itemsFor(ids []int64) (map[int64][]ItemRow, error) {
	rows, err := r.db.Query(itemsByOrdersQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]ItemRow, len(ids))
	for rows.Next() {
		var it ItemRow
		if err := rows.Scan(&it.ID, &it.OrderRef, &it.ProductName, &it.ProductPrice, &it.Quantity,
			&it.Size, &it.Color, &it.ProductImage); err != nil {
			return nil, err
		}
		out[it.OrderRef] = append(out[it.OrderRef], it)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByOrderID(orderID string) (Order, error) {
	o, err := scanOrder(r.db.QueryRow(getOrderQuery, orderID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	items, err := r.itemsFor([]int64{o.ID})
	if err != nil {
		return Order{}, err
	}
	o.Items = items[o.ID]

	rows, err := r.db.Query(notificationsQuery, o.ID)
	if err != nil {
		return Order{}, err
	}
	defer rows.Close()
	o.Notifications = make([]Notification, 0, 2)
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.OrderRef, &n.EmailType, &n.RecipientEmail, &n.Status, &n.CreatedAt); err != nil {
			return Order{}, err
		}
		o.Notifications = append(o.Notifications, n)
	}
	return o, rows.Err()
}
