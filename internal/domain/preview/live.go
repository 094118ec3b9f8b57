package preview

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"kizuna/internal/domain/draft"
	"kizuna/internal/domain/i18n"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

// LiveOptions tunes the live preview stream.
type LiveOptions struct {
	Tick time.Duration
	// CheckOrigin vets the handshake Origin. Nil only accepts same-host
	// origins.
	CheckOrigin func(r *http.Request) bool
}

func newUpgrader(opts LiveOptions) *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 64 * 1024,
		CheckOrigin:     opts.CheckOrigin,
	}
}

// WSEvent is a message pushed to live preview clients
type WSEvent struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

const EventView = "view"

// Live godoc
// @Summary Live preview stream
// @Description WebSocket. Pushes a "view" event every tick and whenever the draft changes.
// @Tags Preview
// @Param lang query string false "pt or jp"
// @Router /preview/live [get]
func (h *Handler) Live(c *gin.Context) {
	store, lang, ok := h.session(c)
	if !ok {
		return
	}

	// Subscribe before the first load so an update landing in between is
	// still delivered.
	changes := make(chan draft.CoupleDraft, 1)
	unsubscribe := store.Subscribe(func(next draft.CoupleDraft) {
		// keep only the newest draft if the writer is behind
		select {
		case <-changes:
		default:
		}
		select {
		case changes <- next:
		default:
		}
	})
	defer unsubscribe()

	d, err := store.Load(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("preview_ws_upgrade_failed ns=%s error=%v", store.Namespace(), err)
		return
	}
	defer conn.Close()

	// The stream lives exactly as long as the connection: the reader
	// cancels ctx when the client goes away, which stops the ticker.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go readPump(conn, cancel)

	log.Printf("preview_ws_connected ns=%s", store.Namespace())
	h.stream(ctx, conn, changes, d, lang)
	log.Printf("preview_ws_disconnected ns=%s", store.Namespace())
}

func (h *Handler) stream(ctx context.Context, conn *websocket.Conn, changes <-chan draft.CoupleDraft, d draft.CoupleDraft, lang i18n.Language) {
	tick := h.live.Tick
	if tick <= 0 {
		tick = time.Second
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	pinger := time.NewTicker(pingPeriod)
	defer pinger.Stop()

	mountedAt := time.Now()
	push := func() bool {
		view := h.renderer.Render(d, lang, time.Since(mountedAt))
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(WSEvent{Type: EventView, Payload: view}) == nil
	}

	if !push() {
		return
	}
	for {
		select {
		case <-ctx.Done():
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case next := <-changes:
			d = next
			if !push() {
				return
			}
		case <-ticker.C:
			if !push() {
				return
			}
		case <-pinger.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains client frames (the stream is push-only) and cancels
// the stream when the connection closes.
func readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	conn.SetReadLimit(maxMsgSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("preview_ws_read_error error=%v", err)
			}
			return
		}
	}
}
