package mypage

import (
	"cmp"
	"slices"
	"time"

	"github.com/Cheertaboi/storefront-service/internal/models"
)

type OrderHistory struct {
	Count  int           `json:"count"`
	Stores []StoreOrders `json:"stores"`
}

type StoreOrders struct {
	StoreID    int64        `json:"storeId"`
	Store      models.Store `json:"store"`
	OrderCount int          `json:"orderCount"`
	Days       []OrderDay   `json:"days"`
}

// OrderDay groups one calendar date. Date is empty for orders without a
// readable timestamp.
type OrderDay struct {
	Date       string        `json:"date"`
	TotalPrice int64         `json:"totalPrice"`
	ItemCount  int           `json:"itemCount"`
	Orders     []PlacedOrder `json:"orders"`
}

type PlacedOrder struct {
	Time  string       `json:"time"`
	Order models.Order `json:"order"`
}

// storeKey prefers the embedded store record's id.
func storeKey(o models.Order) int64 {
	if o.StoreInfo.ID != 0 {
		return o.StoreInfo.ID
	}
	return o.StoreID
}

// GroupOrders groups orders by store (ascending id), then by date (newest
// first); orders within a date run earliest to latest.
func GroupOrders(orders []models.Order, loc *time.Location) OrderHistory {
	type timed struct {
		at    stamp
		order models.Order
	}

	byStore := map[int64][]timed{}
	stores := map[int64]models.Store{}
	for _, o := range orders {
		id := storeKey(o)
		if _, ok := stores[id]; !ok {
			stores[id] = o.StoreInfo
		}
		byStore[id] = append(byStore[id], timed{at: parseStamp(o.PlacedAt(), loc), order: o})
	}

	ids := make([]int64, 0, len(byStore))
	for id := range byStore {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	history := OrderHistory{Count: len(orders), Stores: make([]StoreOrders, 0, len(ids))}
	for _, id := range ids {
		entries := byStore[id]

		byDate := map[string][]timed{}
		for _, e := range entries {
			byDate[e.at.date()] = append(byDate[e.at.date()], e)
		}
		dates := make([]string, 0, len(byDate))
		for d := range byDate {
			dates = append(dates, d)
		}
		slices.SortFunc(dates, dateKeysNewestFirst)

		so := StoreOrders{StoreID: id, Store: stores[id], OrderCount: len(entries)}
		for _, d := range dates {
			day := byDate[d]
			slices.SortStableFunc(day, func(a, b timed) int {
				switch {
				case a.at.before(b.at):
					return -1
				case b.at.before(a.at):
					return 1
				default:
					return cmp.Compare(a.order.OrderID, b.order.OrderID)
				}
			})

			od := OrderDay{Date: d, Orders: make([]PlacedOrder, 0, len(day))}
			for _, e := range day {
				od.TotalPrice += e.order.TotalPrice
				od.ItemCount += len(e.order.Items)
				od.Orders = append(od.Orders, PlacedOrder{Time: e.at.clock(), Order: e.order})
			}
			so.Days = append(so.Days, od)
		}
		history.Stores = append(history.Stores, so)
	}
	return history
}
