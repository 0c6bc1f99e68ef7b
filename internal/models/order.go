package models

// OrderRequest is the body of POST /api/orders.
type OrderRequest struct {
	CustomerID int64              `json:"customerId"`
	StoreID    int64              `json:"storeId"`
	Items      []OrderRequestItem `json:"items"`
}

type OrderRequestItem struct {
	MenuID   int64 `json:"menuId"`
	Quantity int   `json:"quantity"`
}

// Order is a placed order as returned by the order history endpoint.
type Order struct {
	OrderID    int64       `json:"orderId"`
	StoreID    int64       `json:"storeId"`
	StoreInfo  Store       `json:"storeInfo"`
	TotalPrice int64       `json:"totalPrice"`
	OrderedAt  string      `json:"orderedAt,omitempty"`
	CreatedAt  string      `json:"createdAt,omitempty"`
	OrderDate  string      `json:"orderDate,omitempty"`
	Items      []OrderItem `json:"items"`
}

// PlacedAt returns the first non-empty timestamp field.
func (o Order) PlacedAt() string {
	switch {
	case o.OrderedAt != "":
		return o.OrderedAt
	case o.CreatedAt != "":
		return o.CreatedAt
	default:
		return o.OrderDate
	}
}

// HasItem reports whether the order contains orderItemID.
func (o Order) HasItem(orderItemID int64) bool {
	for _, it := range o.Items {
		if it.OrderItemID == orderItemID {
			return true
		}
	}
	return false
}

type OrderItem struct {
	OrderItemID int64  `json:"orderItemId"`
	MenuID      int64  `json:"menuId,omitempty"`
	MenuName    string `json:"menuName"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
}
