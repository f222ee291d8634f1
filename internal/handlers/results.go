package handlers

import (
	"bytes"
	"fmt"

	"fbaprofit/internal/export"
	"fbaprofit/internal/services/session"
	"fbaprofit/internal/utils"
	"fbaprofit/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

const defaultResultsLimit = 100

type ResultsHandler struct {
	sessions session.Service
}

func NewResultsHandler(sessions session.Service) *ResultsHandler {
	return &ResultsHandler{sessions: sessions}
}

// GetResults returns one page of the rounded result matrix.
func (h *ResultsHandler) GetResults(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	res, err := h.sessions.Results(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err, "compute results")
	}

	p := utils.GetPagination(c, 1, defaultResultsLimit)
	p.SetTotal(int64(len(res.Matrix.Rows)))
	start, end := p.Bounds(len(res.Matrix.Rows))

	skipped := res.Matrix.Skipped
	if skipped == nil {
		skipped = []string{}
	}
	data := fiber.Map{
		"rows":       export.RoundRows(res.Matrix.Rows[start:end]),
		"skipped":    skipped,
		"pagination": p,
	}
	return response.WithNotice(c, "Results computed", data, res.NoticeLevel, res.Notice)
}

// ExportResults downloads the full matrix as CSV.
func (h *ResultsHandler) ExportResults(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	res, err := h.sessions.Results(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err, "compute results")
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, res.Matrix.Rows); err != nil {
		return serviceError(c, err, "export results")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.Filename))
	return c.Send(buf.Bytes())
}
