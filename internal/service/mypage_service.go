package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Cheertaboi/storefront-service/internal/cache"
	"github.com/Cheertaboi/storefront-service/internal/concurrency"
	"github.com/Cheertaboi/storefront-service/internal/models"
	"github.com/Cheertaboi/storefront-service/internal/mypage"
	"github.com/Cheertaboi/storefront-service/internal/session"
)

const (
	MinRating = 1
	MaxRating = 5
)

// MyPageService backs the account pages. Every call requires a signed-in
// device.
type MyPageService struct {
	backend  Backend
	stores   storeLookup
	sessions *session.Store
	accounts *AccountService
	loc      *time.Location
	log      *slog.Logger
}

func NewMyPageService(b Backend, stores *cache.StoreCache, sessions *session.Store, accounts *AccountService, loc *time.Location, log *slog.Logger) *MyPageService {
	if loc == nil {
		loc = time.Local
	}
	return &MyPageService{
		backend:  b,
		stores:   storeLookup{backend: b, cache: stores, log: log},
		sessions: sessions,
		accounts: accounts,
		loc:      loc,
		log:      log,
	}
}

func (s *MyPageService) customer(ctx context.Context, device string) (int64, error) {
	return signedInCustomer(s.sessions.Current(ctx, device))
}

func (s *MyPageService) Orders(ctx context.Context, device string) (mypage.OrderHistory, error) {
	id, err := s.customer(ctx, device)
	if err != nil {
		return mypage.OrderHistory{}, err
	}
	orders, err := s.backend.ListCustomerOrders(ctx, id)
	if err != nil {
		return mypage.OrderHistory{}, fmt.Errorf("list orders: %w", err)
	}
	return mypage.GroupOrders(orders, s.loc), nil
}

// reviewsAndOrders loads both lists concurrently.
func (s *MyPageService) reviewsAndOrders(ctx context.Context, id int64) ([]models.Review, []models.Order, error) {
	var (
		reviews []models.Review
		orders  []models.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rs, err := s.backend.ListCustomerReviews(gctx, id)
		if err != nil {
			return fmt.Errorf("list reviews: %w", err)
		}
		reviews = rs
		return nil
	})
	g.Go(func() error {
		list, err := s.backend.ListCustomerOrders(gctx, id)
		if err != nil {
			return fmt.Errorf("list orders: %w", err)
		}
		orders = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return reviews, orders, nil
}

func (s *MyPageService) Reviews(ctx context.Context, device string) (mypage.ReviewHistory, error) {
	id, err := s.customer(ctx, device)
	if err != nil {
		return mypage.ReviewHistory{}, err
	}
	reviews, orders, err := s.reviewsAndOrders(ctx, id)
	if err != nil {
		return mypage.ReviewHistory{}, err
	}
	return mypage.GroupReviews(reviews, orders, s.loc), nil
}

// ReviewTarget is an order line offered for review.
type ReviewTarget struct {
	Item     models.OrderItem `json:"item"`
	Reviewed bool             `json:"reviewed"`
}

func (s *MyPageService) ReviewTarget(ctx context.Context, device string, orderItemID int64) (ReviewTarget, error) {
	id, err := s.customer(ctx, device)
	if err != nil {
		return ReviewTarget{}, err
	}
	item, err := s.backend.GetOrderItem(ctx, orderItemID)
	if err != nil {
		return ReviewTarget{}, fmt.Errorf("get order item %d: %w", orderItemID, err)
	}
	reviewed, err := s.HasReview(ctx, id, orderItemID)
	if err != nil {
		return ReviewTarget{}, err
	}
	return ReviewTarget{Item: *item, Reviewed: reviewed}, nil
}

// HasReview reports whether the customer already reviewed orderItemID.
func (s *MyPageService) HasReview(ctx context.Context, customerID, orderItemID int64) (bool, error) {
	reviews, err := s.backend.ListCustomerReviews(ctx, customerID)
	if err != nil {
		return false, fmt.Errorf("list reviews: %w", err)
	}
	return mypage.HasReview(reviews, orderItemID), nil
}

func validateReview(rating int, comment string) error {
	if strings.TrimSpace(comment) == "" {
		return models.NewValidationError("comment", "must not be empty")
	}
	if rating < MinRating || rating > MaxRating {
		return models.NewValidationError("rating", fmt.Sprintf("must be between %d and %d", MinRating, MaxRating))
	}
	return nil
}

func (s *MyPageService) CreateReview(ctx context.Context, device string, orderItemID int64, rating int, comment string) (*models.Review, error) {
	if err := validateReview(rating, comment); err != nil {
		return nil, err
	}
	id, err := s.customer(ctx, device)
	if err != nil {
		return nil, err
	}
	r, err := s.backend.CreateReview(ctx, models.ReviewRequest{
		CustomerID:  id,
		OrderItemID: orderItemID,
		Rating:      rating,
		Comment:     strings.TrimSpace(comment),
	})
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return r, nil
}

func (s *MyPageService) UpdateReview(ctx context.Context, device string, reviewID int64, rating int, comment string) (*models.Review, error) {
	if err := validateReview(rating, comment); err != nil {
		return nil, err
	}
	if _, err := s.customer(ctx, device); err != nil {
		return nil, err
	}
	r, err := s.backend.UpdateReview(ctx, reviewID, models.ReviewRequest{Rating: rating, Comment: strings.TrimSpace(comment)})
	if err != nil {
		return nil, fmt.Errorf("update review %d: %w", reviewID, err)
	}
	return r, nil
}

func (s *MyPageService) DeleteReview(ctx context.Context, device string, reviewID int64) error {
	if _, err := s.customer(ctx, device); err != nil {
		return err
	}
	if err := s.backend.DeleteReview(ctx, reviewID); err != nil {
		return fmt.Errorf("delete review %d: %w", reviewID, err)
	}
	return nil
}

func (s *MyPageService) Stamps(ctx context.Context, device string) ([]mypage.StampCard, error) {
	id, err := s.customer(ctx, device)
	if err != nil {
		return nil, err
	}
	stamps, err := s.backend.ListStamps(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list stamps: %w", err)
	}

	ids := make([]int64, 0, len(stamps))
	for _, st := range stamps {
		ids = append(ids, st.StoreID)
	}
	return mypage.StampCards(stamps, s.stores.many(ctx, ids)), nil
}

func (s *MyPageService) DeleteStamp(ctx context.Context, device string, stampID int64) error {
	if _, err := s.customer(ctx, device); err != nil {
		return err
	}
	if err := s.backend.DeleteStamp(ctx, stampID); err != nil {
		return fmt.Errorf("delete stamp %d: %w", stampID, err)
	}
	return nil
}

func (s *MyPageService) Coupons(ctx context.Context, device string) (mypage.CouponBook, error) {
	id, err := s.customer(ctx, device)
	if err != nil {
		return mypage.CouponBook{}, err
	}
	coupons, err := s.backend.ListCoupons(ctx, id)
	if err != nil {
		return mypage.CouponBook{}, fmt.Errorf("list coupons: %w", err)
	}

	ids := make([]int64, 0, len(coupons))
	for _, c := range coupons {
		ids = append(ids, c.StoreID)
	}
	return mypage.GroupCoupons(coupons, s.stores.many(ctx, ids)), nil
}

func (s *MyPageService) UseCoupon(ctx context.Context, device string, couponID int64) error {
	if _, err := s.customer(ctx, device); err != nil {
		return err
	}
	if err := s.backend.UseCoupon(ctx, couponID); err != nil {
		return fmt.Errorf("use coupon %d: %w", couponID, err)
	}
	return nil
}

func (s *MyPageService) DeleteCoupon(ctx context.Context, device string, couponID int64) error {
	if _, err := s.customer(ctx, device); err != nil {
		return err
	}
	if err := s.backend.DeleteCoupon(ctx, couponID); err != nil {
		return fmt.Errorf("delete coupon %d: %w", couponID, err)
	}
	return nil
}

// VisitedStores builds the map view. Orders are required; reviews and stamps
// are best effort. Each store's location is fetched concurrently and a store
// that fails to load is shown without coordinates.
func (s *MyPageService) VisitedStores(ctx context.Context, device string) ([]mypage.VisitedStore, error) {
	id, err := s.customer(ctx, device)
	if err != nil {
		return nil, err
	}

	var (
		orders  []models.Order
		reviews []models.Review
		stamps  []models.Stamp
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := s.backend.ListCustomerOrders(gctx, id)
		if err != nil {
			return fmt.Errorf("list orders: %w", err)
		}
		orders = list
		return nil
	})
	g.Go(func() error {
		rs, err := s.backend.ListCustomerReviews(gctx, id)
		if err != nil {
			s.log.WarnContext(gctx, "map reviews unavailable", "customer_id", id, "error", err)
			return nil
		}
		reviews = rs
		return nil
	})
	g.Go(func() error {
		ss, err := s.backend.ListStamps(gctx, id)
		if err != nil {
			s.log.WarnContext(gctx, "map stamps unavailable", "customer_id", id, "error", err)
			return nil
		}
		stamps = ss
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	visited := mypage.VisitedStores(orders, reviews, stamps, s.loc)
	_ = concurrency.ForEach(ctx, concurrency.DefaultLimit, len(visited), func(ctx context.Context, i int) error {
		st, err := s.stores.get(ctx, visited[i].ID)
		if err != nil {
			s.log.WarnContext(ctx, "store location unavailable", "store_id", visited[i].ID, "error", err)
			return nil
		}
		visited[i].Locate(st)
		return nil
	})
	if visited == nil {
		visited = []mypage.VisitedStore{}
	}
	return visited, nil
}

// Overview is the whole account page in one response.
type Overview struct {
	Profile Profile              `json:"profile"`
	Orders  mypage.OrderHistory  `json:"orders"`
	Reviews mypage.ReviewHistory `json:"reviews"`
	Stamps  []mypage.StampCard   `json:"stamps"`
	Coupons mypage.CouponBook    `json:"coupons"`
}

// Overview loads profile, orders, reviews, stamps and coupons concurrently.
// The first failure aborts the rest.
func (s *MyPageService) Overview(ctx context.Context, device string) (Overview, error) {
	if _, err := s.customer(ctx, device); err != nil {
		return Overview{}, err
	}

	var out Overview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Profile, err = s.accounts.Profile(gctx, device)
		return err
	})
	g.Go(func() (err error) {
		out.Reviews, err = s.Reviews(gctx, device)
		return err
	})
	g.Go(func() (err error) {
		out.Orders, err = s.Orders(gctx, device)
		return err
	})
	g.Go(func() (err error) {
		out.Stamps, err = s.Stamps(gctx, device)
		return err
	})
	g.Go(func() (err error) {
		out.Coupons, err = s.Coupons(gctx, device)
		return err
	})
	if err := g.Wait(); err != nil {
		return Overview{}, err
	}
	return out, nil
}
