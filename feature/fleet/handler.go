package fleet

import (
	"errors"
	"net/url"

	"ship-registry/core/logger"
	"ship-registry/core/reconcile"
	"ship-registry/feature/fleet/assemble"
	"ship-registry/feature/fleet/decode"
	"ship-registry/feature/fleet/names"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the fleet.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the fleet routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/ships", h.HandleListShips)
	app.Get("/ships/:name", h.HandleGetShip)
	app.Get("/mods", h.HandleListMods)
	app.Get("/coverage", h.HandleCoverage)
	app.Post("/refresh", h.HandleRefresh)
}

// HandleListShips lists every ship of the current snapshot.
// @Summary List Ships
// @Description Lists every reconciled ship with its stages, highest owned stage and blueprints. Optionally filtered by hull type.
// @Tags fleet
// @Security ApiKeyAuth
// @Produce json
// @Param type query string false "Hull type (e.g. '駆逐艦')"
// @Success 200 {array} fleet.ShipSummary "Ships"
// @Failure 422 {object} map[string]string "Snapshot data is inconsistent"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /ships [get]
func (h *Handler) HandleListShips(c *fiber.Ctx) error {
	ships, err := h.service.ListShips(c.Context())
	if err != nil {
		return h.fail(c, "List ships failed", err)
	}

	if shipType := c.Query("type"); shipType != "" {
		filtered := ships[:0]
		for _, s := range ships {
			if s.ShipType == shipType {
				filtered = append(filtered, s)
			}
		}
		ships = filtered
	}
	return c.JSON(ships)
}

// HandleGetShip returns the detail of one ship.
// @Summary Get Ship Detail
// @Description Returns every stage of a ship with the next stage cost and the upgrade plans of both policies. Accepts a base name or any stage name.
// @Tags fleet
// @Security ApiKeyAuth
// @Produce json
// @Param name path string true "Base or display name (e.g. '響' or 'Верный')"
// @Success 200 {object} fleet.ShipDetail "Ship Detail"
// @Failure 404 {object} map[string]string "Ship not found"
// @Failure 422 {object} map[string]string "Snapshot data is inconsistent"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /ships/{name} [get]
func (h *Handler) HandleGetShip(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid ship name"})
	}

	detail, err := h.service.GetShip(c.Context(), name)
	if err != nil {
		return h.fail(c, "Ship lookup failed", err)
	}
	return c.JSON(detail)
}

// HandleListMods lists every stage record.
// @Summary List Stage Records
// @Description Lists the merged stage records of every ship, ordered by ship and stage.
// @Tags fleet
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.ShipMod "Stage records"
// @Failure 422 {object} map[string]string "Snapshot data is inconsistent"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /mods [get]
func (h *Handler) HandleListMods(c *fiber.Ctx) error {
	mods, err := h.service.ListMods(c.Context())
	if err != nil {
		return h.fail(c, "List mods failed", err)
	}
	return c.JSON(mods)
}

// HandleCoverage reports source coverage.
// @Summary Source Coverage
// @Description Reports, per stage name, which of the picture book, roster, marriage list and wiki contributed, plus skipped records.
// @Tags fleet
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} fleet.CoverageReport "Coverage"
// @Failure 422 {object} map[string]string "Snapshot data is inconsistent"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /coverage [get]
func (h *Handler) HandleCoverage(c *fiber.Ctx) error {
	report, err := h.service.Coverage(c.Context())
	if err != nil {
		return h.fail(c, "Coverage report failed", err)
	}
	return c.JSON(report)
}

// HandleRefresh rebuilds the collection from the snapshot.
// @Summary Refresh Collection
// @Description Drops the cached collection and rebuilds it from the current snapshot.
// @Tags fleet
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} map[string]interface{} "Build summary"
// @Failure 422 {object} map[string]string "Snapshot data is inconsistent"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Refreshing collection")

	b, err := h.service.Refresh(c.Context())
	if err != nil {
		return h.fail(c, "Refresh failed", err)
	}
	return c.JSON(fiber.Map{
		"snapshot": b.Snapshot,
		"built_at": b.BuiltAt,
		"ships":    b.Report.Ships,
		"mods":     b.Report.Mods,
		"issues":   b.Report.Issues,
	})
}

// fail logs err and writes the matching error response.
func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	l := logger.WithRayID(h.service.logger, c)
	status := statusFor(err)
	if status == fiber.StatusNotFound {
		l.Debug(msg, zap.Error(err))
	} else {
		l.Error(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrShipNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, reconcile.ErrDuplicate),
		errors.Is(err, assemble.ErrInvariant),
		errors.Is(err, names.ErrUnrecognizedStageSuffix),
		errors.Is(err, decode.ErrInvalidRecord):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}
