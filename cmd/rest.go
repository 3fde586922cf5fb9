package cmd

import (
	globalConfig "github.com/ardentik/gramblast/config"
	"github.com/ardentik/gramblast/ui/rest"
	"github.com/ardentik/gramblast/ui/rest/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Run the campaign API over http",
	Run:   restServer,
}

func init() {
	rootCmd.AddCommand(restCmd)
}

func restServer(_ *cobra.Command, _ []string) {
	if platformDialer == nil {
		logrus.Fatalln("no platform dialer registered; call cmd.SetPlatformDialer before Execute")
	}

	app := fiber.New(fiber.Config{
		Network:               "tcp",
		AppName:               "Gramblast Campaign Engine",
		DisableStartupMessage: false,
	})

	app.Use(requestid.New())
	app.Use(middleware.Recovery())
	if globalConfig.AppDebug {
		app.Use(logger.New())
	}

	api := app.Group(globalConfig.AppBasePath)
	rest.InitRestAccount(api, accountUsecase)
	rest.InitRestFolder(api, folderUsecase)
	rest.InitRestCampaign(api, campaignUsecase)

	if err := app.Listen(":" + globalConfig.AppPort); err != nil {
		logrus.Fatalln("Failed to start server:", err)
	}
}
