package mypage

import (
	"math"
	"slices"
	"time"

	"github.com/Cheertaboi/storefront-service/internal/models"
)

type ReviewHistory struct {
	Count  int            `json:"count"`
	Stores []StoreReviews `json:"stores"`
}

type StoreReviews struct {
	StoreID     int64        `json:"storeId"`
	Store       models.Store `json:"store"`
	ReviewCount int          `json:"reviewCount"`
	Days        []ReviewDay  `json:"days"`
}

type ReviewDay struct {
	Date        string       `json:"date"`
	ReviewCount int          `json:"reviewCount"`
	Slots       []ReviewSlot `json:"slots"`
}

// ReviewSlot holds the reviews of orders placed within one hour.
type ReviewSlot struct {
	Hour          string        `json:"hour"`
	AverageRating int           `json:"averageRating"`
	Reviews       []OrderReview `json:"reviews"`
}

type OrderReview struct {
	Review   models.Review `json:"review"`
	OrderID  int64         `json:"orderId"`
	PlacedAt string        `json:"placedAt,omitempty"`
}

// GroupReviews attaches each review to the order that contains its order line
// and groups by store, date (newest first) and hour (earliest first). Reviews
// whose order is unknown are counted but not grouped.
func GroupReviews(reviews []models.Review, orders []models.Order, loc *time.Location) ReviewHistory {
	type entry struct {
		at     stamp
		review OrderReview
	}

	byStore := map[int64][]entry{}
	stores := map[int64]models.Store{}
	for _, r := range reviews {
		i := slices.IndexFunc(orders, func(o models.Order) bool { return o.HasItem(r.OrderItemID) })
		if i < 0 {
			continue
		}
		o := orders[i]
		id := storeKey(o)
		if _, ok := stores[id]; !ok {
			stores[id] = o.StoreInfo
		}
		byStore[id] = append(byStore[id], entry{
			at:     parseStamp(o.PlacedAt(), loc),
			review: OrderReview{Review: r, OrderID: o.OrderID, PlacedAt: o.PlacedAt()},
		})
	}

	ids := make([]int64, 0, len(byStore))
	for id := range byStore {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	history := ReviewHistory{Count: len(reviews), Stores: make([]StoreReviews, 0, len(ids))}
	for _, id := range ids {
		entries := byStore[id]
		slices.SortStableFunc(entries, func(a, b entry) int {
			switch {
			case a.at.before(b.at):
				return -1
			case b.at.before(a.at):
				return 1
			default:
				return 0
			}
		})

		byDate := map[string][]entry{}
		for _, e := range entries {
			byDate[e.at.date()] = append(byDate[e.at.date()], e)
		}
		dates := make([]string, 0, len(byDate))
		for d := range byDate {
			dates = append(dates, d)
		}
		slices.SortFunc(dates, dateKeysNewestFirst)

		sr := StoreReviews{StoreID: id, Store: stores[id], ReviewCount: len(entries)}
		for _, d := range dates {
			day := byDate[d]
			rd := ReviewDay{Date: d, ReviewCount: len(day)}

			// day is already in time order, so slots come out earliest first
			for _, e := range day {
				h := e.at.hour()
				if n := len(rd.Slots); n == 0 || rd.Slots[n-1].Hour != h {
					rd.Slots = append(rd.Slots, ReviewSlot{Hour: h})
				}
				slot := &rd.Slots[len(rd.Slots)-1]
				slot.Reviews = append(slot.Reviews, e.review)
			}
			for i := range rd.Slots {
				rd.Slots[i].AverageRating = averageRating(rd.Slots[i].Reviews)
			}
			sr.Days = append(sr.Days, rd)
		}
		history.Stores = append(history.Stores, sr)
	}
	return history
}

func averageRating(rs []OrderReview) int {
	if len(rs) == 0 {
		return 0
	}
	total := 0
	for _, r := range rs {
		total += r.Review.Rating
	}
	return int(math.Round(float64(total) / float64(len(rs))))
}

// HasReview reports whether any review targets orderItemID.
func HasReview(reviews []models.Review, orderItemID int64) bool {
	return slices.ContainsFunc(reviews, func(r models.Review) bool {
		return r.OrderItemID == orderItemID
	})
}
