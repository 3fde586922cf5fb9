package rest

import (
	domainAccount "github.com/ardentik/gramblast/domains/account"
	"github.com/ardentik/gramblast/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type Account struct {
	Service domainAccount.IAccountUsecase
}

func InitRestAccount(app fiber.Router, service domainAccount.IAccountUsecase) Account {
	rest := Account{Service: service}
	app.Get("/accounts", rest.ListAccounts)
	app.Get("/config", rest.GetConfig)
	app.Put("/config", rest.UpdateConfig)
	return rest
}

func (handler *Account) ListAccounts(c *fiber.Ctx) error {
	accounts, err := handler.Service.Accounts(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Accounts fetched",
		Results: accounts,
	})
}

func (handler *Account) GetConfig(c *fiber.Ctx) error {
	cfg, err := handler.Service.ConfigFor(c.UserContext(), currentUserID(c))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Config fetched",
		Results: cfg,
	})
}

func (handler *Account) UpdateConfig(c *fiber.Ctx) error {
	var request domainAccount.UserConfig
	if err := c.BodyParser(&request); err != nil {
		return c.Status(400).JSON(utils.ResponseData{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: err.Error(),
		})
	}
	request.UserID = currentUserID(c)

	cfg, err := handler.Service.SaveConfig(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Config updated",
		Results: cfg,
	})
}
