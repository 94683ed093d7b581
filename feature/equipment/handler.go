package equipment

import (
	"errors"

	"armory/core/logger"
	"armory/feature/equipment/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EquipRequest is the body of an equip request.
type EquipRequest struct {
	// Path is the catalog path of the item.
	Path string `json:"path"`
}

// AttachmentsRequest is the body of an attachment plan request.
type AttachmentsRequest struct {
	// Bones are the skeleton bone names in scene-graph iteration order.
	Bones []string `json:"bones"`
}

// Handler handles HTTP requests for the catalog and equipment sessions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog and session routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/catalog", h.HandleCatalog)

	group := app.Group("/sessions")
	group.Post("/", h.HandleCreateSession)
	group.Get("/:id", h.HandleGetSession)
	group.Post("/:id/equip", h.HandleEquip)
	group.Delete("/:id/slots/:slot", h.HandleUnequip)
	group.Delete("/:id/slots", h.HandleClearAll)
	group.Get("/:id/equipped", h.HandleEquipped)
	group.Put("/:id/overrides", h.HandleSetOverrides)
	group.Post("/:id/attachments", h.HandleAttachments)
}

// HandleCatalog lists the catalog items.
// @Summary List Catalog
// @Description Returns every item of the active catalog in declared order.
// @Tags catalog
// @Produce json
// @Success 200 {array} models.ItemDefinition "Catalog items"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog [get]
func (h *Handler) HandleCatalog(c *fiber.Ctx) error {
	catalog, err := h.service.Catalog(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(catalog.Items())
}

// HandleCreateSession creates an empty equipment session.
// @Summary Create Session
// @Description Creates a session with every slot empty and no overrides.
// @Tags sessions
// @Produce json
// @Success 201 {object} SessionView "Created session"
// @Router /sessions [post]
func (h *Handler) HandleCreateSession(c *fiber.Ctx) error {
	sess, err := h.service.CreateSession(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sess.View())
}

// HandleGetSession returns a session snapshot.
// @Summary Get Session
// @Description Returns the equipped items of every slot and the overrides.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionView "Session"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id} [get]
func (h *Handler) HandleGetSession(c *fiber.Ctx) error {
	sess, err := h.service.Session(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(sess.View())
}

// HandleEquip equips a catalog item.
// @Summary Equip Item
// @Description Places the catalog item in its slot, replacing the current one.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body EquipRequest true "Item path"
// @Success 200 {object} SessionView "Session"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/equip [post]
func (h *Handler) HandleEquip(c *fiber.Ctx) error {
	var req EquipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "path is required"})
	}

	sess, err := h.service.Equip(c.Context(), c.Params("id"), req.Path)
	if err != nil {
		return h.fail(c, err)
	}
	logger.WithRayID(h.service.logger, c).Info("Item equipped",
		logger.Session(sess.ID), zap.String("path", req.Path))
	return c.JSON(sess.View())
}

// HandleUnequip empties a slot.
// @Summary Unequip Slot
// @Description Empties a slot. Emptying an empty slot is a no-op.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param slot path string true "Slot (mainHand, offHand, back)"
// @Success 200 {object} SessionView "Session"
// @Failure 400 {object} map[string]string "Invalid Slot"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/slots/{slot} [delete]
func (h *Handler) HandleUnequip(c *fiber.Ctx) error {
	sess, err := h.service.Unequip(c.Context(), c.Params("id"), c.Params("slot"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(sess.View())
}

// HandleClearAll empties every slot.
// @Summary Clear All Slots
// @Description Empties every slot. Overrides are kept.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionView "Session"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/slots [delete]
func (h *Handler) HandleClearAll(c *fiber.Ctx) error {
	sess, err := h.service.ClearAll(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(sess.View())
}

// HandleEquipped lists the equipped items.
// @Summary List Equipped Items
// @Description Returns the equipped items with their attach bone, in slot order.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {array} models.EquippedItem "Equipped items"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/equipped [get]
func (h *Handler) HandleEquipped(c *fiber.Ctx) error {
	items, err := h.service.EquippedItems(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(items)
}

// HandleSetOverrides replaces the transform overrides.
// @Summary Set Overrides
// @Description Replaces the rotation, position and scale overrides. An absent or null field clears that override.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body Overrides true "Overrides"
// @Success 200 {object} SessionView "Session"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/overrides [put]
func (h *Handler) HandleSetOverrides(c *fiber.Ctx) error {
	var req Overrides
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	sess, err := h.service.SetOverrides(c.Context(), c.Params("id"), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(sess.View())
}

// HandleAttachments builds the attachment plan for a skeleton.
// @Summary Plan Attachments
// @Description Resolves the attach bone of every equipped item against the given skeleton and returns the effective transforms. Unresolved items are returned with found=false.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body AttachmentsRequest true "Skeleton bones"
// @Success 200 {array} Attachment "Attachment plan"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/attachments [post]
func (h *Handler) HandleAttachments(c *fiber.Ctx) error {
	var req AttachmentsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	plan, err := h.service.Attachments(c.Context(), c.Params("id"), req.Bones)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(plan)
}

// fail maps service errors to status codes.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrItemNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, models.ErrInvalidSlot), errors.Is(err, ErrInvalidOverride):
		status = fiber.StatusBadRequest
	default:
		logger.WithRayID(h.service.logger, c).Error("Equipment request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
