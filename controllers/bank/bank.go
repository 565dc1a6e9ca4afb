package bankController

import (
	"bankapi/models"
	"bankapi/store"
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// BankReader is the read side of the bank store the handlers need.
type BankReader interface {
	ListBanks(ctx context.Context) ([]models.Bank, error)
	GetBranch(ctx context.Context, ifsc string) (*models.BranchDetail, error)
}

type Controller struct {
	banks BankReader
}

func New(banks BankReader) *Controller {
	return &Controller{banks: banks}
}

// Home is a simple health check
func (ctl *Controller) Home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "online",
		"message": "Welcome to the Bank API. Use /api/banks to start.",
	})
}

// ListBanks returns all banks ordered by name
func (ctl *Controller) ListBanks(c *fiber.Ctx) error {
	banks, err := ctl.banks.ListBanks(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(banks)
}

// GetBranch returns one branch with its bank name
func (ctl *Controller) GetBranch(c *fiber.Ctx) error {
	ifsc, ok := c.Locals("validatedIFSC").(string)
	if !ok {
		ifsc = c.Params("ifsc")
	}

	detail, err := ctl.banks.GetBranch(c.UserContext(), ifsc)
	if errors.Is(err, store.ErrBranchNotFound) {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Branch with IFSC %s not found.", ifsc))
	}
	if err != nil {
		return err
	}
	return c.JSON(detail)
}
