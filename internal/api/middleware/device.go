package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// DeviceCookie names the cookie that identifies a browser.
const DeviceCookie = "device_id"

const deviceCookieMaxAge = 365 * 24 * time.Hour

type deviceKey struct{}

func WithDeviceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, deviceKey{}, id)
}

// DeviceID returns the device set by Device, or "".
func DeviceID(ctx context.Context) string {
	id, _ := ctx.Value(deviceKey{}).(string)
	return id
}

// Device reads the device cookie and issues a new one when it is missing or
// not a uuid.
func Device(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(DeviceCookie); err == nil {
			if _, err := uuid.Parse(c.Value); err == nil {
				id = c.Value
			}
		}
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     DeviceCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   int(deviceCookieMaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(WithDeviceID(r.Context(), id)))
	})
}
