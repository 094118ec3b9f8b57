package preview

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kizuna/internal/domain/draft"
	"kizuna/internal/domain/plan"
	"kizuna/internal/pkg/dataurl"
	"kizuna/internal/storage"
)

func setupTestServer(t *testing.T) (*httptest.Server, *draft.Manager) {
	t.Helper()
	manager := draft.NewManager(storage.NewMemoryStore())
	return serveLive(t, manager, LiveOptions{Tick: time.Hour}, "sess-live"), manager
}

func serveLive(t *testing.T, manager *draft.Manager, opts LiveOptions, ns string) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewHandler(manager, newTestRenderer(), opts)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(draft.SessionKey, ns)
		c.Next()
	})
	RegisterRoutes(r.Group("/api/v1"), h)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func liveURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/preview/live"
}

// staleReadStore lets a write land right after the next draft read, the
// way a concurrent request can between a load and a subscribe.
type staleReadStore struct {
	storage.Store
	armed  atomic.Bool
	during func()
}

func (s *staleReadStore) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	v, err := s.Store.Get(ctx, namespace, key)
	if key == draft.KeyData && s.armed.CompareAndSwap(true, false) {
		s.during()
	}
	return v, err
}

func readView(t *testing.T, conn *websocket.Conn) View {
	t.Helper()
	var ev struct {
		Type    string `json:"type"`
		Payload View   `json:"payload"`
	}
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&ev))
	require.Equal(t, EventView, ev.Type)
	return ev.Payload
}

func TestGetPreview(t *testing.T) {
	srv, manager := setupTestServer(t)
	_, err := manager.For("sess-live").Update(context.Background(), draft.Patch{Partner1: draft.Ptr("Ana")})
	require.NoError(t, err)

	resp, err := http.Get(srv.URL + "/api/v1/preview?lang=pt")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLive_PushesOnDraftChange(t *testing.T) {
	srv, manager := setupTestServer(t)

	conn, _, err := websocket.DefaultDialer.Dial(liveURL(srv), nil)
	require.NoError(t, err)
	defer conn.Close()

	first := readView(t, conn)
	assert.Equal(t, "Você", first.Partner1)

	// the subscription is registered before the first push, so this
	// update is always delivered
	_, err = manager.For("sess-live").Update(context.Background(), draft.Patch{Partner1: draft.Ptr("Ana")})
	require.NoError(t, err)

	next := readView(t, conn)
	assert.Equal(t, "Ana", next.Partner1)
}

func TestLive_TickerPushes(t *testing.T) {
	manager := draft.NewManager(storage.NewMemoryStore())
	srv := serveLive(t, manager, LiveOptions{Tick: 20 * time.Millisecond}, "sess-tick")

	conn, _, err := websocket.DefaultDialer.Dial(liveURL(srv), nil)
	require.NoError(t, err)
	defer conn.Close()

	for i := 0; i < 3; i++ {
		readView(t, conn)
	}
}

func TestLive_DeliversUpdateRacingFirstLoad(t *testing.T) {
	backend := &staleReadStore{Store: storage.NewMemoryStore()}
	manager := draft.NewManager(backend)
	backend.during = func() {
		_, err := manager.For("sess-race").Update(context.Background(), draft.Patch{Partner1: draft.Ptr("Ana")})
		assert.NoError(t, err)
	}
	srv := serveLive(t, manager, LiveOptions{Tick: time.Hour}, "sess-race")

	backend.armed.Store(true)
	conn, _, err := websocket.DefaultDialer.Dial(liveURL(srv), nil)
	require.NoError(t, err)
	defer conn.Close()

	// the first push renders what the load saw, the second the update
	first := readView(t, conn)
	assert.Equal(t, "Você", first.Partner1)
	next := readView(t, conn)
	assert.Equal(t, "Ana", next.Partner1)
}

func TestLive_RejectsForeignOrigin(t *testing.T) {
	manager := draft.NewManager(storage.NewMemoryStore())
	srv := serveLive(t, manager, LiveOptions{Tick: time.Hour}, "sess-origin")

	header := http.Header{"Origin": []string{"https://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(liveURL(srv), header)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// same-host origins pass
	conn, _, err := websocket.DefaultDialer.Dial(liveURL(srv), http.Header{"Origin": []string{srv.URL}})
	require.NoError(t, err)
	conn.Close()
}

func TestLive_CheckOriginAllowsConfiguredOrigin(t *testing.T) {
	manager := draft.NewManager(storage.NewMemoryStore())
	srv := serveLive(t, manager, LiveOptions{
		Tick: time.Hour,
		CheckOrigin: func(r *http.Request) bool {
			return r.Header.Get("Origin") == "https://kizuna.love"
		},
	}, "sess-origin")

	conn, _, err := websocket.DefaultDialer.Dial(liveURL(srv), http.Header{"Origin": []string{"https://kizuna.love"}})
	require.NoError(t, err)
	defer conn.Close()
	readView(t, conn)

	_, resp, err := websocket.DefaultDialer.Dial(liveURL(srv), http.Header{"Origin": []string{"https://evil.example"}})
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGetImage(t *testing.T) {
	srv, manager := setupTestServer(t)
	ctx := context.Background()
	pngBytes := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	images := []string{
		dataurl.Encode("image/png", pngBytes),
		"data:image/png;base64,@@not-base64@@",
		"https://img.example/2.jpg",
		dataurl.Encode("image/png", pngBytes),
		dataurl.Encode("image/png", pngBytes),
	}
	pl := plan.PlanPremium
	_, err := manager.For("sess-live").Update(ctx, draft.Patch{Plan: &pl, Images: &images})
	require.NoError(t, err)

	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}
	get := func(path string) *http.Response {
		resp, err := client.Get(srv.URL + "/api/v1/preview/images/" + path)
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	t.Run("inline image is decoded", func(t *testing.T) {
		resp := get("0")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, pngBytes, body)
	})

	t.Run("malformed inline image", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get("1").StatusCode)
	})

	t.Run("remote image redirects", func(t *testing.T) {
		resp := get("2")
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "https://img.example/2.jpg", resp.Header.Get("Location"))
	})

	t.Run("past the plan limit", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get("3").StatusCode)
		assert.Equal(t, http.StatusNotFound, get("4").StatusCode)
	})

	t.Run("bad index", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, get("-1").StatusCode)
		assert.Equal(t, http.StatusBadRequest, get("first").StatusCode)
	})
}
