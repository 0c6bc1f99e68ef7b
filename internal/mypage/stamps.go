package mypage

import "github.com/Cheertaboi/storefront-service/internal/models"

// StampCard is a stamp record with progress towards the coupon goal.
type StampCard struct {
	Stamp        models.Stamp  `json:"stamp"`
	Store        *models.Store `json:"store,omitempty"`
	Goal         int           `json:"goal"`
	Remaining    int           `json:"remaining"`
	CouponIssued bool          `json:"couponIssued"`
}

func StampCards(stamps []models.Stamp, stores map[int64]models.Store) []StampCard {
	cards := make([]StampCard, 0, len(stamps))
	for _, st := range stamps {
		card := StampCard{
			Stamp:        st,
			Goal:         models.StampGoal,
			Remaining:    max(models.StampGoal-st.Count, 0),
			CouponIssued: st.Count >= models.StampGoal,
		}
		if s, ok := stores[st.StoreID]; ok {
			card.Store = &s
		}
		cards = append(cards, card)
	}
	return cards
}
