package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Cheertaboi/storefront-service/internal/api/middleware"
	"github.com/Cheertaboi/storefront-service/internal/service"
)

type ProfileRequest struct {
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

type ReviewRequest struct {
	OrderItemID int64  `json:"orderItemId"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
}

type MyPageHandler struct {
	accounts *service.AccountService
	mypage   *service.MyPageService
	log      *slog.Logger
}

func NewMyPageHandler(accounts *service.AccountService, mypage *service.MyPageService, log *slog.Logger) *MyPageHandler {
	return &MyPageHandler{accounts: accounts, mypage: mypage, log: log}
}

func (h *MyPageHandler) respond(w http.ResponseWriter, r *http.Request, v any, err error) {
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *MyPageHandler) done(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Overview handles GET /mypage
func (h *MyPageHandler) Overview(w http.ResponseWriter, r *http.Request) {
	v, err := h.mypage.Overview(r.Context(), middleware.DeviceID(r.Context()))
	h.respond(w, r, v, err)
}

// Profile handles GET /mypage/profile
func (h *MyPageHandler) Profile(w http.ResponseWriter, r *http.Request) {
	v, err := h.accounts.Profile(r.Context(), middleware.DeviceID(r.Context()))
	h.respond(w, r, v, err)
}

// UpdateProfile handles PUT /mypage/profile
func (h *MyPageHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	v, err := h.accounts.UpdateProfile(r.Context(), middleware.DeviceID(r.Context()), req.Password, req.Nickname)
	h.respond(w, r, v, err)
}

// Orders handles GET /mypage/orders
func (h *MyPageHandler) Orders(w http.ResponseWriter, r *http.Request) {
	v, err := h.mypage.Orders(r.Context(), middleware.DeviceID(r.Context()))
	h.respond(w, r, v, err)
}

// Reviews handles GET /mypage/reviews
func (h *MyPageHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	v, err := h.mypage.Reviews(r.Context(), middleware.DeviceID(r.Context()))
	h.respond(w, r, v, err)
}

// ReviewTarget handles GET /mypage/reviews/targets/{orderItemID}
func (h *MyPageHandler) ReviewTarget(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "orderItemID")
	if !ok {
		return
	}
	v, err := h.mypage.ReviewTarget(r.Context(), middleware.DeviceID(r.Context()), id)
	h.respond(w, r, v, err)
}

// CreateReview handles POST /mypage/reviews
func (h *MyPageHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req ReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.OrderItemID <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_order_item_id"})
		return
	}
	v, err := h.mypage.CreateReview(r.Context(), middleware.DeviceID(r.Context()), req.OrderItemID, req.Rating, req.Comment)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

// UpdateReview handles PUT /mypage/reviews/{reviewID}
func (h *MyPageHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "reviewID")
	if !ok {
		return
	}
	var req ReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	v, err := h.mypage.UpdateReview(r.Context(), middleware.DeviceID(r.Context()), id, req.Rating, req.Comment)
	h.respond(w, r, v, err)
}

// DeleteReview handles DELETE /mypage/reviews/{reviewID}
func (h *MyPageHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "reviewID")
	if !ok {
		return
	}
	h.done(w, r, h.mypage.DeleteReview(r.Context(), middleware.DeviceID(r.Context()), id))
}

// Stamps handles GET /mypage/stamps
func (h *MyPageHandler) Stamps(w http.ResponseWriter, r *http.Request) {
	v, err := h.mypage.Stamps(r.Context(), middleware.DeviceID(r.Context()))
	h.respond(w, r, v, err)
}

// DeleteStamp handles DELETE /mypage/stamps/{stampID}
func (h *MyPageHandler) DeleteStamp(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "stampID")
	if !ok {
		return
	}
	h.done(w, r, h.mypage.DeleteStamp(r.Context(), middleware.DeviceID(r.Context()), id))
}

// Coupons handles GET /mypage/coupons
func (h *MyPageHandler) Coupons(w http.ResponseWriter, r *http.Request) {
	v, err := h.mypage.Coupons(r.Context(), middleware.DeviceID(r.Context()))
	h.respond(w, r, v, err)
}

// UseCoupon handles PATCH /mypage/coupons/{couponID}/use
func (h *MyPageHandler) UseCoupon(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "couponID")
	if !ok {
		return
	}
	h.done(w, r, h.mypage.UseCoupon(r.Context(), middleware.DeviceID(r.Context()), id))
}

// DeleteCoupon handles DELETE /mypage/coupons/{couponID}
func (h *MyPageHandler) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "couponID")
	if !ok {
		return
	}
	h.done(w, r, h.mypage.DeleteCoupon(r.Context(), middleware.DeviceID(r.Context()), id))
}

// Map handles GET /mypage/map
func (h *MyPageHandler) Map(w http.ResponseWriter, r *http.Request) {
	v, err := h.mypage.VisitedStores(r.Context(), middleware.DeviceID(r.Context()))
	h.respond(w, r, v, err)
}
