package bankValidator

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// BranchCode validates the :ifsc path segment. Codes are only trimmed here,
// the store upper-cases them, so any non-empty value goes through to a lookup.
func BranchCode() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params("ifsc")
		if unescaped, err := url.PathUnescape(raw); err == nil {
			raw = unescaped
		}

		ifsc := utils.CopyString(strings.TrimSpace(raw))
		if ifsc == "" {
			return fiber.NewError(fiber.StatusNotFound, "Branch with IFSC (empty) not found.")
		}

		c.Locals("validatedIFSC", ifsc)
		return c.Next()
	}
}
