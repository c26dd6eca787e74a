package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/horu2day/saleslicense/internal/domain"
)

type orderRepository struct {
	db *gorm.DB
}

func (r *orderRepository) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	rec := toOrderModel(order)
	rec.ID = 0
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Order{}, err
	}
	return toDomainOrder(rec), nil
}

func (r *orderRepository) GetByID(ctx context.Context, orderID int64) (domain.Order, error) {
	var rec orderModel
	if err := r.db.WithContext(ctx).Where("id = ?", orderID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, domain.ErrNotFound
		}
		return domain.Order{}, err
	}
	return toDomainOrder(rec), nil
}

func (r *orderRepository) ListByBuyer(ctx context.Context, buyerID int64) ([]domain.Order, error) {
	return r.list(ctx, "buyer_id = ?", buyerID)
}

func (r *orderRepository) ListBySeller(ctx context.Context, sellerID int64) ([]domain.Order, error) {
	return r.list(ctx, "seller_id = ?", sellerID)
}

func (r *orderRepository) list(ctx context.Context, cond string, arg int64) ([]domain.Order, error) {
	var recs []orderModel
	if err := r.db.WithContext(ctx).
		Where(cond, arg).
		Order("created_at DESC, id DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	items := make([]domain.Order, 0, len(recs))
	for _, rec := range recs {
		items = append(items, toDomainOrder(rec))
	}
	return items, nil
}

// CompleteWithLicense settles a confirmed payment in one transaction: a
// conditional pending→completed update followed by the license insert. The
// RowsAffected check on the status update is what makes concurrent
// confirmations of the same order safe; the loser sees zero rows and backs
// out with ErrConflict before any license exists.
func (r *orderRepository) CompleteWithLicense(ctx context.Context, orderID int64, transactionID string, key domain.LicenseKey) (domain.LicenseKey, error) {
	var result domain.LicenseKey
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&orderModel{}).
			Where("id = ? AND status = ?", orderID, string(domain.OrderPending)).
			Updates(map[string]any{
				"status":         string(domain.OrderCompleted),
				"transaction_id": transactionID,
				"updated_at":     key.CreatedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrConflict
		}

		rec := toLicenseModel(key)
		rec.ID = 0
		if err := tx.Create(&rec).Error; err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicateKey
			}
			return err
		}
		result = toDomainLicense(rec)
		return nil
	})
	if err != nil {
		return domain.LicenseKey{}, err
	}
	return result, nil
}

func (r *orderRepository) MarkFailed(ctx context.Context, orderID int64) error {
	return r.swapStatus(ctx, orderID, domain.OrderPending, domain.OrderFailed)
}

func (r *orderRepository) MarkRefunded(ctx context.Context, orderID int64) error {
	return r.swapStatus(ctx, orderID, domain.OrderCompleted, domain.OrderRefunded)
}

func (r *orderRepository) swapStatus(ctx context.Context, orderID int64, from, to domain.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&orderModel{}).
		Where("id = ? AND status = ?", orderID, string(from)).
		Updates(map[string]any{"status": string(to), "updated_at": gorm.Expr("now()")})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&orderModel{}).
			Where("id = ?", orderID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	return nil
}

func (r *orderRepository) HasCompletedPurchase(ctx context.Context, buyerID, productID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&orderModel{}).
		Where("buyer_id = ? AND product_id = ? AND status = ?", buyerID, productID, string(domain.OrderCompleted)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
