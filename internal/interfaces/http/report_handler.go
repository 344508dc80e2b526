package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lubcarv/gestor-estoque/internal/application/report"
)

// ReportHandler serve os relatórios exportados.
type ReportHandler struct {
	exporter *report.Exporter
}

// NewReportHandler constrói o handler.
func NewReportHandler(exporter *report.Exporter) *ReportHandler {
	return &ReportHandler{exporter: exporter}
}

// Excel GET /api/relatorios/estoque.xlsx.
func (h *ReportHandler) Excel(c *fiber.Ctx) error {
	data, err := h.exporter.InventoryExcel()
	if err != nil {
		return writeError(c, err)
	}
	name := fmt.Sprintf("estoque-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Send(data)
}

// PDF GET /api/relatorios/estoque.pdf.
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	data, err := h.exporter.InventoryPDF()
	if err != nil {
		return writeError(c, err)
	}
	name := fmt.Sprintf("estoque-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Send(data)
}
