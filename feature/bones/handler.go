package bones

import (
	"armory/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ResolveRequest is the body of a bone resolution request.
type ResolveRequest struct {
	// Bones are the skeleton bone names in scene-graph iteration order.
	Bones []string `json:"bones"`
	// Target is the requested bone identifier.
	Target string `json:"target"`
}

// Handler handles HTTP requests for bone resolution.
type Handler struct {
	resolver *Resolver
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(resolver *Resolver, logger *zap.Logger) *Handler {
	return &Handler{resolver: resolver, logger: logger}
}

// RegisterRoutes registers the bone routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/bones")
	group.Post("/resolve", h.HandleResolve)
	group.Get("/aliases", h.HandleAliases)
}

// HandleResolve resolves a target bone against a skeleton.
// @Summary Resolve Bone
// @Description Finds the skeleton bone matching a requested bone identifier. A miss is reported with found=false and the per-tier trace, not as an error.
// @Tags bones
// @Accept json
// @Produce json
// @Param request body ResolveRequest true "Skeleton bones and target"
// @Success 200 {object} Resolution "Resolution with trace"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /bones/resolve [post]
func (h *Handler) HandleResolve(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req ResolveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Target == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "target is required"})
	}

	res := h.resolver.Resolve(NewSkeleton(req.Bones), req.Target)
	if !res.Found {
		l.Warn("Bone resolution missed", zap.String("target", req.Target), zap.Int("bones", len(req.Bones)))
	}
	return c.JSON(res)
}

// HandleAliases returns the bone alias table.
// @Summary List Bone Aliases
// @Description Returns the alias families used by the resolver, in evaluation order.
// @Tags bones
// @Produce json
// @Success 200 {array} AliasFamily "Alias table"
// @Router /bones/aliases [get]
func (h *Handler) HandleAliases(c *fiber.Ctx) error {
	return c.JSON(h.resolver.Aliases())
}
