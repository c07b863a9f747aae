package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edulab/markboard/core/board"
	"github.com/edulab/markboard/core/student"
)

type studentApi struct {
	svc      *student.Service
	brd      *board.Board
	validate *validator.Validate
}

func registerStudentAPI(g *echo.Group, svc *student.Service, brd *board.Board, validate *validator.Validate) {
	api := studentApi{
		svc:      svc,
		brd:      brd,
		validate: validate,
	}

	sg := g.Group("/students")
	sg.GET("", api.query)
	sg.POST("", api.create)

	// detail endpoints
	dg := sg.Group("/:id")
	dg.DELETE("", api.destroy)
	dg.GET("/insight", api.insight)
	dg.PUT("/marks/:subject", api.editMark)
}

// Handlers

// query serves the same view list the board renders: the dashboard's current
// criteria, with any supplied query params layered on top.
func (api *studentApi) query(ctx echo.Context) error {
	var params student.QueryFilter
	if err := ctx.Bind(&params); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	params.Clean()

	qf := api.brd.Filter()
	if params.Search != "" {
		qf.Search = params.Search
	}
	if params.Category != "" {
		qf.Category = params.Category
	}
	if params.Sort != "" {
		qf.Sort = params.Sort
	}

	view, err := api.svc.Filter(qf)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, view)
}

func (api *studentApi) create(ctx echo.Context) error {
	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	if err := data.Validate(api.validate, api.svc); err != nil {
		return err
	}

	st, err := api.brd.RequestAdd(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, st)
}

func (api *studentApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err := api.brd.RequestDelete(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *studentApi) insight(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	ins, err := api.svc.InsightFor(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ins)
}

type markEditRequest struct {
	Value string `json:"value"`
}

func (api *studentApi) editMark(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	subj, err := student.ParseSubject(ctx.Param("subject"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var data markEditRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to markEditRequest")
	}

	// a stale id is swallowed by the board; invalid input surfaces as 400
	if err := api.brd.RequestEditMark(id, subj, data.Value); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func pathID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid student id")
	}
	return id, nil
}
