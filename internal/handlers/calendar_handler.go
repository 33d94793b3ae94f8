package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskflowhq/taskflow-api/internal/calendar"
	"github.com/taskflowhq/taskflow-api/internal/httperr"
	"github.com/taskflowhq/taskflow-api/internal/httpresp"
	ucEvent "github.com/taskflowhq/taskflow-api/internal/usecase/event"
)

type CalendarHandler struct {
	monthView *ucEvent.MonthView
	weekStart time.Weekday
}

func NewCalendarHandler(monthView *ucEvent.MonthView, weekStart time.Weekday) *CalendarHandler {
	return &CalendarHandler{monthView: monthView, weekStart: weekStart}
}

// Month renders the grid for ?year=&month= (defaulting to the current
// month). ?view= other than month is rejected: week and day are tracked
// view modes without a rendering implementation.
func (h *CalendarHandler) Month(c *gin.Context) {
	now := time.Now()

	if view := c.Query("view"); view != "" {
		v := calendar.NewView(now, h.weekStart)
		if err := v.SetMode(calendar.ViewMode(view)); err != nil {
			writeError(c, err)
			return
		}
	}

	year, err := intQuery(c, "year", now.Year())
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "year must be a number")
		return
	}
	month, err := intQuery(c, "month", int(now.Month()))
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "month must be a number")
		return
	}

	grid, err := h.monthView.Execute(c.Request.Context(), year, month)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, grid)
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
