package mypage

import (
	"time"

	"github.com/Cheertaboi/storefront-service/internal/models"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type VisitedReview struct {
	ID       int64  `json:"id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	MenuName string `json:"menuName,omitempty"`
	Date     string `json:"date,omitempty"`
}

// VisitedStore summarises a customer's history with one store for the map.
type VisitedStore struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	VisitCount  int             `json:"visitCount"`
	TotalSpent  int64           `json:"totalSpent"`
	LastVisit   *time.Time      `json:"lastVisit,omitempty"`
	Reviews     []VisitedReview `json:"reviews"`
	Stamps      int             `json:"stamps"`
	Coordinates *Coordinates    `json:"coordinates,omitempty"`
	Address     string          `json:"address,omitempty"`
	Phone       string          `json:"phone,omitempty"`
}

// Locate copies location details from the store's full record.
func (v *VisitedStore) Locate(s models.Store) {
	if s.Latitude != 0 || s.Longitude != 0 {
		v.Coordinates = &Coordinates{Lat: s.Latitude, Lng: s.Longitude}
	}
	v.Address = s.Address
	v.Phone = s.Phone
}

// VisitedStores aggregates orders per store in order of first appearance and
// attaches the customer's reviews and stamp counts.
func VisitedStores(orders []models.Order, reviews []models.Review, stamps []models.Stamp, loc *time.Location) []VisitedStore {
	var out []VisitedStore
	index := map[int64]int{}

	for _, o := range orders {
		id := storeKey(o)
		if id == 0 {
			continue
		}
		i, ok := index[id]
		if !ok {
			i = len(out)
			index[id] = i
			out = append(out, VisitedStore{
				ID:          id,
				Name:        o.StoreInfo.Name,
				Description: o.StoreInfo.Description,
				Reviews:     []VisitedReview{},
			})
		}
		v := &out[i]
		v.VisitCount++
		v.TotalSpent += o.TotalPrice
		if t, ok := ParseTime(o.PlacedAt(), loc); ok && (v.LastVisit == nil || t.After(*v.LastVisit)) {
			v.LastVisit = &t
		}
	}

	for _, r := range reviews {
		for _, o := range orders {
			if !o.HasItem(r.OrderItemID) {
				continue
			}
			if i, ok := index[storeKey(o)]; ok {
				out[i].Reviews = append(out[i].Reviews, VisitedReview{
					ID:       r.ID,
					Rating:   r.Rating,
					Comment:  r.Comment,
					MenuName: r.MenuName,
					Date:     r.CreatedAt,
				})
			}
			break
		}
	}

	for _, st := range stamps {
		if i, ok := index[st.StoreID]; ok {
			out[i].Stamps = st.Count
		}
	}
	return out
}
