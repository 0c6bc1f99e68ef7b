package models

// Customer is the backend's account record.
type Customer struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

// ProfileUpdate is the body of PUT /api/customers/{id}.
type ProfileUpdate struct {
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

// Review is a customer's review of one order line.
type Review struct {
	ID          int64  `json:"id"`
	OrderItemID int64  `json:"orderItemId"`
	CustomerID  int64  `json:"customerId,omitempty"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	MenuName    string `json:"menuName,omitempty"`
	Quantity    int    `json:"quantity,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// ReviewRequest is the body of POST /api/reviews and PUT /api/reviews/{id}.
type ReviewRequest struct {
	CustomerID  int64  `json:"customerId,omitempty"`
	OrderItemID int64  `json:"orderItemId,omitempty"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
}
