package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/services"
	"gearguard/pkg/constants"
	"gearguard/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (c *ReportController) GetReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	filter, format := c.parseFilters(ctx)
	c.logger.Debug("Запрос на отчет с фильтрами", zap.Any("filters", filter), zap.String("format", format))

	if format == "xlsx" {
		items, _, err := c.reportService.GetReportItems(reqCtx, filter)
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		return c.respondWithXLSX(ctx, items)
	}

	data, total, err := c.reportService.GetReportDTOs(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, data, "Отчет успешно сформирован", http.StatusOK, total)
}

func (c *ReportController) parseFilters(ctx echo.Context) (dto.ReportFilterDTO, string) {
	var filter dto.ReportFilterDTO
	format := strings.ToLower(ctx.QueryParam("format"))

	if df := ctx.QueryParam("date_from"); df != "" {
		if t, err := time.Parse("2006-01-02", df); err == nil {
			filter.DateFrom = &t
		}
	}
	if dt := ctx.QueryParam("date_to"); dt != "" {
		if t, err := time.Parse("2006-01-02", dt); err == nil {
			filter.DateTo = &t
		}
	}

	if s := ctx.QueryParam("statuses"); s != "" {
		for _, code := range strings.Split(s, ",") {
			if status, err := constants.ParseRequestStatus(strings.TrimSpace(code)); err == nil {
				filter.Statuses = append(filter.Statuses, status)
			}
		}
	}

	return filter, format
}

var reportHeaders = []string{
	"№", "Тема", "Тип заявки", "Статус", "Оборудование", "Серийный номер",
	"Исполнитель", "Плановая дата", "Дата создания", "Дата решения",
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, items []entities.ReportItem) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	for i, header := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, style)
	}

	for rowIdx, item := range items {
		technician := ""
		if item.TechnicianName != nil {
			technician = *item.TechnicianName
		}
		requestType := ""
		if item.RequestType != nil {
			requestType = *item.RequestType
		}
		serial := ""
		if item.SerialNumber != nil {
			serial = *item.SerialNumber
		}
		scheduled := ""
		if item.ScheduledAt != nil {
			scheduled = item.ScheduledAt.Format("2006-01-02")
		}
		resolved := ""
		if item.ResolvedAt != nil {
			resolved = item.ResolvedAt.Format("2006-01-02 15:04")
		}

		values := []interface{}{
			item.ID, item.Subject, requestType, constants.RequestStatusName(item.Status),
			item.EquipmentName, serial, technician, scheduled,
			item.CreatedAt.Format("2006-01-02 15:04"), resolved,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	filename := fmt.Sprintf("maintenance_report_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	return f.Write(ctx.Response().Writer)
}
