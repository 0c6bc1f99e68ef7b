package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Cheertaboi/storefront-service/internal/models"
)

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

// Login checks credentials. The backend answers 401 for a wrong password and
// 404 for an unknown account.
func (c *Client) Login(ctx context.Context, email, password string) (*models.Customer, error) {
	q := url.Values{}
	q.Set("email", email)
	q.Set("password", password)

	var out models.Customer
	if err := c.do(ctx, http.MethodGet, "GET /api/customers/login", "/api/customers/login", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetCustomer(ctx context.Context, customerID int64) (*models.Customer, error) {
	var out models.Customer
	if err := c.do(ctx, http.MethodGet, "GET /api/customers/{id}", "/api/customers/"+id(customerID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, customerID int64, update models.ProfileUpdate) (*models.Customer, error) {
	var out models.Customer
	if err := c.do(ctx, http.MethodPut, "PUT /api/customers/{id}", "/api/customers/"+id(customerID), nil, update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetStore(ctx context.Context, storeID int64) (*models.Store, error) {
	var out models.Store
	if err := c.do(ctx, http.MethodGet, "GET /api/stores/{id}", "/api/stores/"+id(storeID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListStoreMenus(ctx context.Context, storeID int64) ([]models.Menu, error) {
	var out []models.Menu
	if err := c.do(ctx, http.MethodGet, "GET /api/stores/{id}/menus", "/api/stores/"+id(storeID)+"/menus", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetMenu(ctx context.Context, menuID int64) (*models.Menu, error) {
	var out models.Menu
	if err := c.do(ctx, http.MethodGet, "GET /api/menus/{id}", "/api/menus/"+id(menuID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateOrder places an order. A 2xx whose body cannot be decoded returns a
// nil order together with an error wrapping ErrDecode.
func (c *Client) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	var out models.Order
	if err := c.do(ctx, http.MethodPost, "POST /api/orders", "/api/orders", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListCustomerOrders(ctx context.Context, customerID int64) ([]models.Order, error) {
	var out []models.Order
	if err := c.do(ctx, http.MethodGet, "GET /api/orders/customer/{id}", "/api/orders/customer/"+id(customerID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetOrderItem(ctx context.Context, orderItemID int64) (*models.OrderItem, error) {
	var out models.OrderItem
	if err := c.do(ctx, http.MethodGet, "GET /api/orders/items/{id}", "/api/orders/items/"+id(orderItemID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListCustomerReviews(ctx context.Context, customerID int64) ([]models.Review, error) {
	var out []models.Review
	if err := c.do(ctx, http.MethodGet, "GET /api/reviews/customer/{id}", "/api/reviews/customer/"+id(customerID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateReview(ctx context.Context, req models.ReviewRequest) (*models.Review, error) {
	var out models.Review
	if err := c.do(ctx, http.MethodPost, "POST /api/reviews", "/api/reviews", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateReview(ctx context.Context, reviewID int64, req models.ReviewRequest) (*models.Review, error) {
	var out models.Review
	if err := c.do(ctx, http.MethodPut, "PUT /api/reviews/{id}", "/api/reviews/"+id(reviewID), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteReview(ctx context.Context, reviewID int64) error {
	return c.do(ctx, http.MethodDelete, "DELETE /api/reviews/{id}", "/api/reviews/"+id(reviewID), nil, nil, nil)
}

func (c *Client) ListStamps(ctx context.Context, customerID int64) ([]models.Stamp, error) {
	var out []models.Stamp
	if err := c.do(ctx, http.MethodGet, "GET /api/stamps/list/{id}", "/api/stamps/list/"+id(customerID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteStamp(ctx context.Context, stampID int64) error {
	return c.do(ctx, http.MethodDelete, "DELETE /api/stamps/{id}", "/api/stamps/"+id(stampID), nil, nil, nil)
}

func (c *Client) ListCoupons(ctx context.Context, customerID int64) ([]models.Coupon, error) {
	var out []models.Coupon
	if err := c.do(ctx, http.MethodGet, "GET /api/stamps/coupons/{id}", "/api/stamps/coupons/"+id(customerID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UseCoupon(ctx context.Context, couponID int64) error {
	return c.do(ctx, http.MethodPatch, "PATCH /api/stamps/coupons/{id}/status",
		"/api/stamps/coupons/"+id(couponID)+"/status", nil, models.CouponStatusUpdate{Used: true}, nil)
}

func (c *Client) DeleteCoupon(ctx context.Context, couponID int64) error {
	return c.do(ctx, http.MethodDelete, "DELETE /api/stamps/coupons/{id}", "/api/stamps/coupons/"+id(couponID), nil, nil, nil)
}
