package game

import (
	"github.com/google/uuid"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/infra/metrics"
	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/infra/sqlite"
)

// ShopItems returns the catalog.
func (s *Service) ShopItems() ([]domain.ShopItem, error) {
	return s.db.ListShopItems()
}

// Inventory returns the user's items joined with the catalog; empty lines
// are filtered out.
func (s *Service) Inventory(userID string) ([]domain.UserItem, error) {
	return s.db.ListUserItems(userID)
}

// PurchaseResult is the outcome of a successful purchase.
type PurchaseResult struct {
	User domain.User
	Item domain.UserItem
}

// Purchase debits the item's price from the spendable balance and credits
// the inventory line. The currency is spendable XP only — lifetime total and
// level are untouched. Insufficient funds reject before any write.
func (s *Service) Purchase(userID, itemID string) (PurchaseResult, error) {
	var result PurchaseResult

	err := s.db.WithTx(func(tx *sqlite.DB) error {
		user, err := tx.GetUser(userID)
		if err != nil {
			return err
		}
		item, err := tx.GetShopItem(itemID)
		if err != nil {
			return err
		}
		if user.XP < item.Price {
			return domain.ErrInsufficientXP
		}

		if err := tx.SpendUserXP(userID, item.Price); err != nil {
			return err
		}
		if err := tx.UpsertUserItem(uuid.NewString(), userID, itemID); err != nil {
			return err
		}

		result.User, err = tx.GetUser(userID)
		if err != nil {
			return err
		}
		result.Item, err = tx.GetUserItem(userID, itemID)
		if err != nil {
			return err
		}
		result.Item.Item = item

		metrics.ItemsPurchased.WithLabelValues(item.Type).Inc()
		return nil
	})
	if err != nil {
		return PurchaseResult{}, err
	}
	return result, nil
}
