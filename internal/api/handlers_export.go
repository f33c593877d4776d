package api

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclecast/internal/services"
)

func (handler *Handler) exportEntries(c *fiber.Ctx) ([]services.ExportEntry, error) {
	user, _ := currentUser(c)
	exportRange, err := services.ParseExportRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return nil, err
	}
	return handler.services.Export.Entries(c.UserContext(), user.ID, exportRange)
}

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	entries, err := handler.exportEntries(c)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(services.BuildExportSummary(entries))
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	entries, err := handler.exportEntries(c)
	if err != nil {
		return handler.respondError(c, err)
	}
	setExportAttachmentHeaders(c, fiber.MIMEApplicationJSON, handler.exportFilename("json"))
	return c.JSON(entries)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	entries, err := handler.exportEntries(c)
	if err != nil {
		return handler.respondError(c, err)
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	for _, entry := range entries {
		if err := writer.Write(services.ExportCSVRecord(entry)); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, "text/csv", handler.exportFilename("csv"))
	return c.Send(output.Bytes())
}

func (handler *Handler) exportFilename(extension string) string {
	return fmt.Sprintf("cyclecast-export-%s.%s", handler.services.Cycles.Today(), extension)
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
}
