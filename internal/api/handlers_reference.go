package api

import (
	"sort"

	"github.com/claire-lyons/folli/internal/reference"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListTemplates(c *fiber.Ctx) error {
	snapshot := handler.reference.Snapshot()
	templates := make([]reference.CycleTemplate, 0, len(snapshot.Templates))
	for _, template := range snapshot.Templates {
		templates = append(templates, template)
	}
	sort.Slice(templates, func(i, j int) bool {
		return templates[i].TypeKey < templates[j].TypeKey
	})
	return c.JSON(templates)
}

func (handler *Handler) GetTemplate(c *fiber.Ctx) error {
	template, ok := handler.reference.Snapshot().Template(c.Params("type"))
	if !ok {
		return apiError(c, fiber.StatusNotFound, "unknown cycle type")
	}
	return c.JSON(template)
}

// RefreshReference re-fetches the reference tables. A failed refresh still
// returns 200 with refreshed=false: the store has already swapped in empty
// tables, which is the documented degraded state.
func (handler *Handler) RefreshReference(c *fiber.Ctx) error {
	if err := handler.reference.Refresh(); err != nil {
		return c.JSON(fiber.Map{"refreshed": false})
	}
	return c.JSON(fiber.Map{"refreshed": true})
}
