package echoapi

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/edulab/markboard/core"
	"github.com/edulab/markboard/core/board"
	"github.com/edulab/markboard/core/chart"
	"github.com/edulab/markboard/core/student"
	rendersvc "github.com/edulab/markboard/services/render"
)

// Hub pushes re-render events to connected browsers. It is the concrete
// rendering substrate behind the board's Renderer port: every cascade becomes
// a set of JSON events the clients apply to their document tree, with chart
// surfaces delivered as ready-to-embed SVG.
type Hub struct {
	logger core.Logger
	width  int
	height int

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

var _ board.Renderer = (*Hub)(nil)

func NewHub(logger core.Logger, conf *core.Config) *Hub {
	return &Hub{
		logger: logger,
		width:  conf.Chart.Width,
		height: conf.Chart.Height,
		conns:  make(map[*websocket.Conn]struct{}),
	}
}

type wsEvent struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = struct{}{}
}

// broadcast writes the event to every client, dropping connections that fail.
func (h *Hub) broadcast(event string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	msg := wsEvent{Type: event, Data: data}
	for conn := range h.conns {
		if err := conn.WriteJSON(msg); err != nil {
			h.logger.Debug("dropping websocket client", err)
			_ = conn.Close()
			delete(h.conns, conn)
		}
	}
}

// Renderer port

func (h *Hub) RenderRoster(view []student.RankedStudent, sel board.Selection) {
	h.broadcast("roster", echoMap{"students": view, "selection": sel})
}

func (h *Hub) RenderInsight(view board.InsightView) {
	h.broadcast("insight", view)
}

func (h *Hub) DrawRadar(prims []chart.Primitive) {
	h.broadcast("radar", echoMap{"svg": rendersvc.Render(prims, h.width, h.height)})
}

func (h *Hub) DrawComparison(view chart.ComparisonView) {
	h.broadcast("comparison", echoMap{
		"svg":    rendersvc.Render(view.Primitives, h.width, h.height),
		"legend": view.Legend,
	})
}

func (h *Hub) DrawEmptyRadar() {
	h.broadcast("radar", echoMap{"svg": rendersvc.RenderEmpty(h.width, h.height)})
}

// DrawEmptyComparison tells clients to close the comparison view.
func (h *Hub) DrawEmptyComparison() {
	h.broadcast("comparison", nil)
}

type echoMap = map[string]interface{}
