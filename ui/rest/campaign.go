package rest

import (
	"strconv"

	domainCampaign "github.com/ardentik/gramblast/domains/campaign"
	"github.com/ardentik/gramblast/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type Campaign struct {
	Service domainCampaign.ICampaignUsecase
}

func InitRestCampaign(app fiber.Router, service domainCampaign.ICampaignUsecase) Campaign {
	rest := Campaign{Service: service}
	app.Post("/campaign", rest.StartCampaign)
	app.Get("/campaign/job/:job_id", rest.JobStatus)
	return rest
}

func (handler *Campaign) StartCampaign(c *fiber.Ctx) error {
	var request domainCampaign.StartRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(400).JSON(utils.ResponseData{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: err.Error(),
		})
	}

	response, err := handler.Service.Start(c.UserContext(), currentUserID(c), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Campaign started",
		Results: response,
	})
}

func (handler *Campaign) JobStatus(c *fiber.Ctx) error {
	job, err := handler.Service.JobStatus(c.UserContext(), c.Params("job_id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Job status fetched",
		Results: job,
	})
}

// currentUserID reads the identity the auth layer in front of us injects.
// Authentication itself is not this service's concern.
func currentUserID(c *fiber.Ctx) int64 {
	id, _ := strconv.ParseInt(c.Get("X-User-ID"), 10, 64)
	return id
}
