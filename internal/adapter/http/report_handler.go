package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loanbook-backend/internal/usecase/report"
)

type ReportHandler struct{ uc *report.Usecase }

func NewReportHandler(uc *report.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

func (h *ReportHandler) GetReport(c echo.Context) error {
	w, err := report.ParseWindow(c.QueryParam("start_date"), c.QueryParam("end_date"))
	if err != nil {
		return writeError(c, err)
	}
	r, err := h.uc.Build(c.Request().Context(), w)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}
