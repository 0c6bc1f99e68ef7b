package service

import (
	"context"

	"github.com/Cheertaboi/storefront-service/internal/backend"
	"github.com/Cheertaboi/storefront-service/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks Backend

// Backend is the subset of the backend API client the services call.
// *backend.Client implements it.
type Backend interface {
	Login(ctx context.Context, email, password string) (*models.Customer, error)
	GetCustomer(ctx context.Context, customerID int64) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, customerID int64, update models.ProfileUpdate) (*models.Customer, error)

	GetStore(ctx context.Context, storeID int64) (*models.Store, error)
	ListStoreMenus(ctx context.Context, storeID int64) ([]models.Menu, error)
	GetMenu(ctx context.Context, menuID int64) (*models.Menu, error)

	CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error)
	ListCustomerOrders(ctx context.Context, customerID int64) ([]models.Order, error)
	GetOrderItem(ctx context.Context, orderItemID int64) (*models.OrderItem, error)

	ListCustomerReviews(ctx context.Context, customerID int64) ([]models.Review, error)
	CreateReview(ctx context.Context, req models.ReviewRequest) (*models.Review, error)
	UpdateReview(ctx context.Context, reviewID int64, req models.ReviewRequest) (*models.Review, error)
	DeleteReview(ctx context.Context, reviewID int64) error

	ListStamps(ctx context.Context, customerID int64) ([]models.Stamp, error)
	DeleteStamp(ctx context.Context, stampID int64) error
	ListCoupons(ctx context.Context, customerID int64) ([]models.Coupon, error)
	UseCoupon(ctx context.Context, couponID int64) error
	DeleteCoupon(ctx context.Context, couponID int64) error

	ResolveImageURL(ref string) string
}

var _ Backend = (*backend.Client)(nil)
