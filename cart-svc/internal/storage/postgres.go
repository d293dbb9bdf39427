package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"overcooked-cart/cart-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, COALESCE(address, ''), COALESCE(description, ''), COALESCE(image_url, ''), created_at
		FROM restaurants
		ORDER BY name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.Description, &rest.ImageURL, &rest.CreatedAt); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

// ListMenu returns every dish a restaurant serves with its price tables,
// in the shape the cart copies from.
func (r *PostgresRepository) ListMenu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, name, COALESCE(description, ''), COALESCE(image_url, ''), price
		FROM dishes
		WHERE restaurant_id = $1
		ORDER BY id
	`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list dishes for restaurant %d: %w", restaurantID, err)
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	index := make(map[int]int)
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.ImageURL, &item.Price); err != nil {
			return nil, err
		}
		index[item.ID] = len(items)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}

	portions, err := r.DB.QueryContext(ctx, `
		SELECT p.dish_id, p.size, p.price
		FROM dish_portions p
		JOIN dishes d ON d.id = p.dish_id
		WHERE d.restaurant_id = $1
		ORDER BY p.dish_id, p.price
	`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list portions for restaurant %d: %w", restaurantID, err)
	}
	defer portions.Close()

	for portions.Next() {
		var dishID int
		var p domain.PortionPrice
		if err := portions.Scan(&dishID, &p.Size, &p.Price); err != nil {
			return nil, err
		}
		if i, ok := index[dishID]; ok {
			items[i].PortionSizes = append(items[i].PortionSizes, p)
		}
	}
	if err := portions.Err(); err != nil {
		return nil, err
	}

	options, err := r.DB.QueryContext(ctx, `
		SELECT c.dish_id, c.name, c.option, c.price
		FROM dish_customizations c
		JOIN dishes d ON d.id = c.dish_id
		WHERE d.restaurant_id = $1
		ORDER BY c.dish_id, c.position, c.id
	`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list customizations for restaurant %d: %w", restaurantID, err)
	}
	defer options.Close()

	for options.Next() {
		var dishID int
		var c domain.CustomizationOption
		if err := options.Scan(&dishID, &c.Name, &c.Option, &c.Price); err != nil {
			return nil, err
		}
		if i, ok := index[dishID]; ok {
			items[i].Customizations = append(items[i].Customizations, c)
		}
	}
	if err := options.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// GetMenuItem loads a dish with its portion and customization price tables.
// It returns nil, nil when the restaurant does not serve the dish.
func (r *PostgresRepository) GetMenuItem(ctx context.Context, restaurantID, dishID int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, restaurant_id, name, price
		FROM dishes
		WHERE id = $1 AND restaurant_id = $2
	`, dishID, restaurantID).Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load dish %d: %w", dishID, err)
	}

	portions, err := r.DB.QueryContext(ctx, `
		SELECT size, price
		FROM dish_portions
		WHERE dish_id = $1
		ORDER BY price
	`, dishID)
	if err != nil {
		return nil, fmt.Errorf("load portions for dish %d: %w", dishID, err)
	}
	defer portions.Close()

	for portions.Next() {
		var p domain.PortionPrice
		if err := portions.Scan(&p.Size, &p.Price); err != nil {
			return nil, err
		}
		item.PortionSizes = append(item.PortionSizes, p)
	}
	if err := portions.Err(); err != nil {
		return nil, err
	}

	options, err := r.DB.QueryContext(ctx, `
		SELECT name, option, price
		FROM dish_customizations
		WHERE dish_id = $1
		ORDER BY position, id
	`, dishID)
	if err != nil {
		return nil, fmt.Errorf("load customizations for dish %d: %w", dishID, err)
	}
	defer options.Close()

	for options.Next() {
		var c domain.CustomizationOption
		if err := options.Scan(&c.Name, &c.Option, &c.Price); err != nil {
			return nil, err
		}
		item.Customizations = append(item.Customizations, c)
	}
	if err := options.Err(); err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (session_id, restaurant_id, table_number, notes, subtotal, tax, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'submitted')
		RETURNING id, status, created_at
	`, order.SessionID, order.RestaurantID, order.TableNumber, order.Notes, order.Subtotal, order.Tax, order.TotalAmount).
		Scan(&order.ID, &order.Status, &order.CreatedAt); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range order.Items {
		customizations, err := json.Marshal(item.Customizations)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, dish_id, quantity, price, portion_size, customizations, special_instructions)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, order.ID, item.DishID, item.Quantity, item.Price, string(item.PortionSize), customizations, item.SpecialInstructions); err != nil {
			return fmt.Errorf("insert order item for dish %d: %w", item.DishID, err)
		}
	}

	return tx.Commit()
}

// GetOrder returns sql.ErrNoRows when the order does not exist.
func (r *PostgresRepository) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	var order domain.Order
	if err := r.DB.QueryRowContext(ctx, `
		SELECT id, session_id, restaurant_id, COALESCE(table_number, 0), COALESCE(notes, ''),
		       subtotal, tax, total_amount, status, created_at
		FROM orders WHERE id = $1
	`, orderID).Scan(&order.ID, &order.SessionID, &order.RestaurantID, &order.TableNumber, &order.Notes,
		&order.Subtotal, &order.Tax, &order.TotalAmount, &order.Status, &order.CreatedAt); err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT oi.dish_id, d.name, oi.quantity, oi.price, COALESCE(oi.portion_size, ''),
		       oi.customizations, COALESCE(oi.special_instructions, '')
		FROM order_items oi
		JOIN dishes d ON oi.dish_id = d.id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load items for order %d: %w", orderID, err)
	}
	defer rows.Close()

	order.Items = []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		var customizations []byte
		if err := rows.Scan(&item.DishID, &item.DishName, &item.Quantity, &item.Price, &item.PortionSize,
			&customizations, &item.SpecialInstructions); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(customizations, &item.Customizations); err != nil {
			return nil, fmt.Errorf("decode customizations for order %d: %w", orderID, err)
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) SaveQRCode(ctx context.Context, orderID int, qr []byte) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, orderID int) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRowContext(ctx, "SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode); err != nil {
		return nil, err
	}
	return qrCode, nil
}
