package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kizuna/internal/domain/draft"
)

type SessionOptions struct {
	Cookie string
	TTL    time.Duration
	Secure bool
	// Touch marks a returning session as active in storage. Optional.
	Touch func(ctx context.Context, id string) error
}

// Session gives every visitor a storage namespace. The id lives in a
// cookie; a missing or malformed cookie starts a new session. The cookie
// is reissued on each request so its expiry slides with activity, and the
// stored session is touched so server-side eviction slides with it.
func Session(opts SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(opts.Cookie)
		returning := err == nil && uuid.Validate(id) == nil
		if !returning {
			id = uuid.NewString()
		}

		if returning && opts.Touch != nil {
			if err := opts.Touch(c.Request.Context(), id); err != nil {
				log.Printf("session_touch_failed session_id=%s err=%v", shortSession(id), err)
			}
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(opts.Cookie, id, int(opts.TTL/time.Second), "/", "", opts.Secure, true)
		c.Set(draft.SessionKey, id)

		c.Next()
	}
}
