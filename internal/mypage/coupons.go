package mypage

import (
	"slices"

	"github.com/Cheertaboi/storefront-service/internal/models"
)

type CouponBook struct {
	Available int            `json:"available"`
	Stores    []StoreCoupons `json:"stores"`
}

// StoreCoupons is nil-Store when the store record could not be loaded; the
// view then falls back to the store id.
type StoreCoupons struct {
	StoreID   int64           `json:"storeId"`
	Store     *models.Store   `json:"store,omitempty"`
	Total     int             `json:"total"`
	Available int             `json:"available"`
	Used      int             `json:"used"`
	Coupons   []models.Coupon `json:"coupons"`
}

// GroupCoupons groups coupons by store in ascending store id.
func GroupCoupons(coupons []models.Coupon, stores map[int64]models.Store) CouponBook {
	byStore := map[int64][]models.Coupon{}
	for _, c := range coupons {
		byStore[c.StoreID] = append(byStore[c.StoreID], c)
	}

	ids := make([]int64, 0, len(byStore))
	for id := range byStore {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	book := CouponBook{Stores: make([]StoreCoupons, 0, len(ids))}
	for _, id := range ids {
		sc := StoreCoupons{StoreID: id, Coupons: byStore[id], Total: len(byStore[id])}
		if s, ok := stores[id]; ok {
			sc.Store = &s
		}
		for _, c := range sc.Coupons {
			if c.Used {
				sc.Used++
			} else {
				sc.Available++
			}
		}
		book.Available += sc.Available
		book.Stores = append(book.Stores, sc)
	}
	return book
}
