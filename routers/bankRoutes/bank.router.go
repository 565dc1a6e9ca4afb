package bankRoutes

import (
	bankController "bankapi/controllers/bank"
	bankValidator "bankapi/validators/bank"

	"github.com/gofiber/fiber/v2"
)

func SetupBankRoutes(app *fiber.App, ctl *bankController.Controller) {
	app.Get("/", ctl.Home)

	api := app.Group("/api")
	api.Get("/banks", ctl.ListBanks)
	api.Get("/branches/:ifsc", bankValidator.BranchCode(), ctl.GetBranch)
}
