package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/kottakkal/traffic-backend/internal/domain"
	"github.com/kottakkal/traffic-backend/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	trafficSvc   *service.TrafficService
	routeSvc     *service.RouteService
	reportSvc    *service.ReportService
	analyticsSvc *service.AnalyticsService
	repo         service.ReportRepository
	validate     *validator.Validate
	logger       *logrus.Logger
}

// NewHandler creates a new handler
func NewHandler(
	trafficSvc *service.TrafficService,
	routeSvc *service.RouteService,
	reportSvc *service.ReportService,
	analyticsSvc *service.AnalyticsService,
	repo service.ReportRepository,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		trafficSvc:   trafficSvc,
		routeSvc:     routeSvc,
		reportSvc:    reportSvc,
		analyticsSvc: analyticsSvc,
		repo:         repo,
		validate:     validator.New(),
		logger:       logger,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	store := "ok"
	if err := h.repo.Health(c.Context()); err != nil {
		h.logger.WithError(err).Warn("Report store health check failed")
		store = "degraded"
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "kottakkal-traffic-backend",
		"store":   store,
		"version": "1.0.0",
	})
}

// GetTraffic returns current congestion for every registered location
func (h *Handler) GetTraffic(c *fiber.Ctx) error {
	return c.JSON(h.trafficSvc.Snapshot())
}

// GetRoute returns the mode advisory for the supplied endpoints
func (h *Handler) GetRoute(c *fiber.Ctx) error {
	start := domain.Point{c.QueryFloat("start_lat", 0), c.QueryFloat("start_lng", 0)}
	end := domain.Point{c.QueryFloat("end_lat", 0), c.QueryFloat("end_lng", 0)}
	mode := domain.ParseMode(c.Query("mode", "normal"))

	return c.JSON(h.routeSvc.Advise(start, end, mode))
}

// ListReports returns all incident reports, oldest first
func (h *Handler) ListReports(c *fiber.Ctx) error {
	return c.JSON(h.reportSvc.List(c.Context()))
}

// CreateReport files a new incident report
func (h *Handler) CreateReport(c *fiber.Ctx) error {
	var req CreateReportRequest
	log := h.logger.WithField("handler", "CreateReport")

	if err := c.BodyParser(&req); err != nil {
		log.WithError(err).Warn("Failed to parse report body")
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.validate.Struct(req); err != nil {
		log.WithError(err).Warn("Report validation failed")
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	report := req.ToReport()
	if err := h.reportSvc.Submit(c.Context(), report); err != nil {
		// A write failure is surfaced as a notice, not an HTTP error
		return c.JSON(SubmitReportResponse{
			Success: false,
			Message: "Error reporting incident. Please try again.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(SubmitReportResponse{
		Success: true,
		Message: "Incident reported successfully!",
		Report:  report,
	})
}

// GetDashboard returns the aggregated analytics view
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.analyticsSvc.Dashboard(c.Context()),
	})
}
