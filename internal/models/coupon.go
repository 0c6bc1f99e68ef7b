package models

// StampGoal is the number of stamps that earns a coupon.
const StampGoal = 10

// Stamp is a customer's stamp card for one store.
type Stamp struct {
	ID         int64 `json:"id"`
	StoreID    int64 `json:"storeId"`
	CustomerID int64 `json:"customerId,omitempty"`
	Count      int   `json:"count"`
}

// Coupon is a coupon issued from a completed stamp card.
type Coupon struct {
	ID         int64  `json:"id"`
	StoreID    int64  `json:"storeId"`
	CustomerID int64  `json:"customerId,omitempty"`
	Used       bool   `json:"used"`
	IssuedAt   string `json:"issuedAt,omitempty"`
}

// CouponStatusUpdate is the body of PATCH /api/stamps/coupons/{id}/status.
type CouponStatusUpdate struct {
	Used bool `json:"used"`
}
