package echoapi

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edulab/markboard/core"
	"github.com/edulab/markboard/core/board"
	"github.com/edulab/markboard/core/chart"
	"github.com/edulab/markboard/core/student"
	rendersvc "github.com/edulab/markboard/services/render"
)

type boardApi struct {
	brd  *board.Board
	svc  *student.Service
	hub  *Hub
	conf *core.Config
}

func registerBoardAPI(g *echo.Group, brd *board.Board, svc *student.Service, hub *Hub, conf *core.Config) {
	api := boardApi{brd: brd, svc: svc, hub: hub, conf: conf}

	g.GET("/insight", api.insightPanel)
	g.POST("/selection/comparison/:id", api.toggleComparison)
	g.POST("/selection/focus/:id", api.focus)
	g.POST("/search", api.search)
	g.POST("/filter", api.filter)
	g.GET("/charts/radar/:id", api.radar)
	g.GET("/charts/comparison", api.comparison)
	g.GET("/export/csv", api.exportCSV)
	g.GET("/print", api.printLayout)
	g.GET("/ws", api.ws)
}

// Handlers

func (api *boardApi) insightPanel(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.brd.InsightPanel())
}

type comparisonToggleRequest struct {
	Checked bool `json:"checked"`
}

func (api *boardApi) toggleComparison(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	var data comparisonToggleRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to comparisonToggleRequest")
	}

	accepted, sel, err := api.brd.ToggleComparison(id, data.Checked)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echoMap{"accepted": accepted, "selection": sel})
}

func (api *boardApi) focus(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err := api.brd.Focus(id); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.brd.Selection())
}

type searchRequest struct {
	Term string `json:"term"`
}

func (api *boardApi) search(ctx echo.Context) error {
	var data searchRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to searchRequest")
	}
	// render is debounced: accepted now, applied after the quiet period
	api.brd.SetSearch(data.Term)
	return ctx.NoContent(http.StatusAccepted)
}

type filterRequest struct {
	Category *student.Category `json:"category"`
	Sort     *student.SortKey  `json:"sort"`
}

func (api *boardApi) filter(ctx echo.Context) error {
	var data filterRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to filterRequest")
	}
	if data.Category != nil {
		if err := api.brd.SetCategory(*data.Category); err != nil {
			return err
		}
	}
	if data.Sort != nil {
		if err := api.brd.SetSort(*data.Sort); err != nil {
			return err
		}
	}
	return ctx.JSON(http.StatusOK, api.brd.Filter())
}

func (api *boardApi) radar(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	st, err := api.svc.GetByID(id)
	if err != nil {
		return err
	}
	prims := chart.Radar(st, api.chartConfig())
	svg := rendersvc.Render(prims, api.conf.Chart.Width, api.conf.Chart.Height)
	return ctx.Blob(http.StatusOK, "image/svg+xml", []byte(svg))
}

func (api *boardApi) comparison(ctx echo.Context) error {
	sel := api.brd.Selection()
	if len(sel.Comparison) != board.MaxComparison {
		return echo.NewHTTPError(http.StatusBadRequest, "select exactly two students to compare")
	}
	a, err := api.svc.GetByID(sel.Comparison[0])
	if err != nil {
		return err
	}
	b, err := api.svc.GetByID(sel.Comparison[1])
	if err != nil {
		return err
	}

	view := chart.Comparison(a, b, api.chartConfig())
	return ctx.JSON(http.StatusOK, echoMap{
		"svg":    rendersvc.Render(view.Primitives, api.conf.Chart.Width, api.conf.Chart.Height),
		"legend": view.Legend,
	})
}

func (api *boardApi) exportCSV(ctx echo.Context) error {
	csv, err := api.brd.ExportCSV()
	if err != nil {
		return err
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="students.csv"`)
	return ctx.Blob(http.StatusOK, "text/csv", []byte(csv))
}

func (api *boardApi) printLayout(ctx echo.Context) error {
	mode := api.brd.PrintLayout()
	resp := echoMap{"mode": mode}
	if mode == board.PrintSingle {
		sel := api.brd.Selection()
		if st, err := api.svc.GetByID(sel.Comparison[0]); err == nil {
			resp["student"] = st
		}
	}
	return ctx.JSON(http.StatusOK, resp)
}

var upgrader = websocket.Upgrader{
	// the dashboard is served from arbitrary local origins
	CheckOrigin: func(*http.Request) bool { return true },
}

func (api *boardApi) ws(ctx echo.Context) error {
	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return errors.Wrap(err, "upgrading websocket")
	}
	api.hub.add(conn)

	// push the current state so the new client starts in sync
	return api.brd.Refresh()
}

func (api *boardApi) chartConfig() chart.Config {
	return chart.Config{
		Width:  api.conf.Chart.Width,
		Height: api.conf.Chart.Height,
		Margin: float64(api.conf.Chart.Margin),
	}
}
