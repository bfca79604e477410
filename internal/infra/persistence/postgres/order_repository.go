package postgres

import (
	"context"
	"time"

	"greenlake/internal/domain/entity"
	"greenlake/internal/domain/repository"
	"greenlake/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for the order repository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder inserts the order together with its lines.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for _, item := range order.Items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		item.OrderID = order.ID
	}
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return dbError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&orderM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, dbError(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderMs).Error
	if err != nil {
		return nil, dbError(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for _, orderM := range orderMs {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if result.Error != nil {
		return dbError(result.Error, "failed to update order status")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	if _, err := repo.FindOrderByID(ctx, id); err != nil {
		return err
	}

	return repository.ErrOrderStatusConflict
}

func (repo *orderRepository) CountOverlappingVehicleOrders(ctx context.Context, vehicleID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.item_type = ? AND order_items.item_id = ?", string(entity.ItemTypeVehicle), vehicleID).
		Where("order_items.start_date <= ? AND order_items.end_date >= ?", to, from).
		Where("orders.status <> ?", string(entity.OrderStatusCancelled)).
		Count(&count).Error
	if err != nil {
		return 0, dbError(err, "failed to count overlapping vehicle orders")
	}

	return count, nil
}

func toOrderDomain(o *model.OrderModel) *entity.Order {
	items := make([]*entity.OrderItem, 0, len(o.Items))
	for _, i := range o.Items {
		items = append(items, &entity.OrderItem{
			ID:        i.ID,
			OrderID:   i.OrderID,
			ItemType:  entity.ItemType(i.ItemType),
			ItemID:    i.ItemID,
			Quantity:  i.Quantity,
			Price:     i.Price,
			StartDate: i.StartDate,
			EndDate:   i.EndDate,
		})
	}

	return &entity.Order{
		ID:             o.ID,
		UserID:         o.UserID,
		TotalAmount:    o.TotalAmount,
		Discount:       o.Discount,
		TokensUsed:     o.TokensUsed,
		BurnTxHash:     o.BurnTxHash,
		OrderType:      entity.ItemType(o.OrderType),
		ItemID:         o.ItemID,
		Quantity:       o.Quantity,
		StartDate:      o.StartDate,
		EndDate:        o.EndDate,
		AdditionalInfo: map[string]any(o.AdditionalInfo),
		PaymentMethod:  o.PaymentMethod,
		Status:         entity.OrderStatus(o.Status),
		Items:          items,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func fromOrderDomain(o *entity.Order) *model.OrderModel {
	items := make([]*model.OrderItemModel, 0, len(o.Items))
	for _, i := range o.Items {
		items = append(items, &model.OrderItemModel{
			ID:        i.ID,
			OrderID:   i.OrderID,
			ItemType:  string(i.ItemType),
			ItemID:    i.ItemID,
			Quantity:  i.Quantity,
			Price:     i.Price,
			StartDate: i.StartDate,
			EndDate:   i.EndDate,
		})
	}

	return &model.OrderModel{
		ID:             o.ID,
		UserID:         o.UserID,
		TotalAmount:    o.TotalAmount,
		Discount:       o.Discount,
		TokensUsed:     o.TokensUsed,
		BurnTxHash:     o.BurnTxHash,
		OrderType:      string(o.OrderType),
		ItemID:         o.ItemID,
		Quantity:       o.Quantity,
		StartDate:      o.StartDate,
		EndDate:        o.EndDate,
		AdditionalInfo: datatypes.JSONMap(o.AdditionalInfo),
		PaymentMethod:  o.PaymentMethod,
		Status:         string(o.Status),
		Items:          items,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}
