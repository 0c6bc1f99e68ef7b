package models

// Quantity bounds for a single cart line.
const (
	MinLineQuantity = 1
	MaxLineQuantity = 99
)

// CartLine is one cart entry. Name, price and the other display fields are a
// snapshot of the menu taken when the line was added.
type CartLine struct {
	MenuID      int64  `json:"id"`
	Name        string `json:"name"`
	UnitPrice   int64  `json:"price"`
	Description string `json:"description,omitempty"`
	ImageRef    string `json:"image_uri,omitempty"`
	Category    string `json:"category,omitempty"`
	StoreID     int64  `json:"storeId"`
	StoreName   string `json:"storeName"`
	Quantity    int    `json:"quantity"`
}

// Subtotal is UnitPrice × Quantity.
func (l CartLine) Subtotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Cart is an ordered list of lines, at most one per menu.
type Cart []CartLine

// Total sums unit price times quantity over all lines.
func (c Cart) Total() int64 {
	var total int64
	for _, l := range c {
		total += l.Subtotal()
	}
	return total
}

// ItemCount sums quantities; used for the cart badge.
func (c Cart) ItemCount() int {
	n := 0
	for _, l := range c {
		n += l.Quantity
	}
	return n
}

// Index returns the position of the line for menuID, or -1.
func (c Cart) Index(menuID int64) int {
	for i, l := range c {
		if l.MenuID == menuID {
			return i
		}
	}
	return -1
}

// Clone returns a copy that shares no backing array with c.
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}
