package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
)

type cachedResponse struct {
	status      int
	contentType string
	body        []byte
}

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// ResponseCache is a short-TTL read cache for GET endpoints. Writes go
// straight through; staleness is bounded by the TTL, which is why it must
// stay short relative to how often schedules change.
type ResponseCache struct {
	store *gocache.Cache
}

func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		store: gocache.New(ttl, 2*ttl),
	}
}

func (rc *ResponseCache) Cache() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.RequestURI()
		if cached, found := rc.store.Get(key); found {
			resp := cached.(cachedResponse)
			c.Data(resp.status, resp.contentType, resp.body)
			c.Abort()
			return
		}

		w := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = w

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			rc.store.SetDefault(key, cachedResponse{
				status:      c.Writer.Status(),
				contentType: c.Writer.Header().Get("Content-Type"),
				body:        w.body.Bytes(),
			})
		}
	}
}
