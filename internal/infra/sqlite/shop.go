package sqlite

import (
	"database/sql"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
)

const shopItemColumns = `id, name, description, icon, price, type, rarity`

func scanShopItem(row rowScanner) (domain.ShopItem, error) {
	var item domain.ShopItem
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Icon,
		&item.Price, &item.Type, &item.Rarity)
	if err == sql.ErrNoRows {
		return item, domain.ErrItemNotFound
	}
	return item, err
}

// ListShopItems returns the catalog ordered by type then price.
func (d *DB) ListShopItems() ([]domain.ShopItem, error) {
	rows, err := d.q.Query(`SELECT ` + shopItemColumns + ` FROM shop_items ORDER BY type, price`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.ShopItem
	for rows.Next() {
		item, err := scanShopItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetShopItem retrieves a catalog item by ID.
func (d *DB) GetShopItem(id string) (domain.ShopItem, error) {
	row := d.q.QueryRow(`SELECT `+shopItemColumns+` FROM shop_items WHERE id = ?`, id)
	return scanShopItem(row)
}

// UpsertUserItem adds one unit to the (user, item) inventory line, creating
// it at quantity 1 on first purchase. The addition happens in SQL so
// concurrent purchases cannot lose an increment.
func (d *DB) UpsertUserItem(id, userID, itemID string) error {
	_, err := d.q.Exec(
		`INSERT INTO user_items (id, user_id, item_id, quantity) VALUES (?, ?, ?, 1)
		 ON CONFLICT(user_id, item_id) DO UPDATE SET quantity = quantity + 1`,
		id, userID, itemID,
	)
	return err
}

// GetUserItem retrieves one inventory line.
func (d *DB) GetUserItem(userID, itemID string) (domain.UserItem, error) {
	var ui domain.UserItem
	err := d.q.QueryRow(
		`SELECT id, user_id, item_id, quantity FROM user_items WHERE user_id = ? AND item_id = ?`,
		userID, itemID,
	).Scan(&ui.ID, &ui.UserID, &ui.ItemID, &ui.Quantity)
	if err == sql.ErrNoRows {
		return ui, domain.ErrItemNotFound
	}
	return ui, err
}

// ConsumeUserItem decrements an inventory line by one. Fails with notHeld
// when the line is missing or empty.
func (d *DB) ConsumeUserItem(userID, itemID string, notHeld error) error {
	res, err := d.q.Exec(
		`UPDATE user_items SET quantity = quantity - 1
		 WHERE user_id = ? AND item_id = ? AND quantity > 0`,
		userID, itemID,
	)
	if err != nil {
		return err
	}
	return requireRow(res, notHeld)
}

// ListUserItems returns the inventory joined with the catalog, holding only
// lines with positive quantity.
func (d *DB) ListUserItems(userID string) ([]domain.UserItem, error) {
	rows, err := d.q.Query(
		`SELECT ui.id, ui.user_id, ui.item_id, ui.quantity,
		        si.id, si.name, si.description, si.icon, si.price, si.type, si.rarity
		 FROM user_items ui
		 JOIN shop_items si ON ui.item_id = si.id
		 WHERE ui.user_id = ? AND ui.quantity > 0
		 ORDER BY si.type, si.price`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.UserItem
	for rows.Next() {
		var ui domain.UserItem
		err := rows.Scan(&ui.ID, &ui.UserID, &ui.ItemID, &ui.Quantity,
			&ui.Item.ID, &ui.Item.Name, &ui.Item.Description, &ui.Item.Icon,
			&ui.Item.Price, &ui.Item.Type, &ui.Item.Rarity)
		if err != nil {
			return nil, err
		}
		items = append(items, ui)
	}
	return items, rows.Err()
}
