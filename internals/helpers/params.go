package helper

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ParseIDParam lit le paramètre :id de l'URL en entier positif.
func ParseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "ID invalide")
	}
	return uint(id), nil
}
