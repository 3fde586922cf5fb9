package rest

import (
	"strconv"
	"strings"

	domainFolder "github.com/ardentik/gramblast/domains/folder"
	"github.com/ardentik/gramblast/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type Folder struct {
	Service domainFolder.IFolderUsecase
}

func InitRestFolder(app fiber.Router, service domainFolder.IFolderUsecase) Folder {
	rest := Folder{Service: service}
	app.Get("/folders", rest.ListFolders)
	return rest
}

func (handler *Folder) ListFolders(c *fiber.Ctx) error {
	accountIDs, err := parseAccountIDs(c.Query("account_ids"))
	if err != nil {
		return c.Status(400).JSON(utils.ResponseData{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: err.Error(),
		})
	}

	folders, err := handler.Service.ListByAccounts(c.UserContext(), accountIDs)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Folders fetched",
		Results: folders,
	})
}

func parseAccountIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
