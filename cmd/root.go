package cmd

import (
	"context"
	"os"

	globalConfig "github.com/ardentik/gramblast/config"
	"github.com/ardentik/gramblast/core/database"
	domainAccount "github.com/ardentik/gramblast/domains/account"
	domainCampaign "github.com/ardentik/gramblast/domains/campaign"
	domainFolder "github.com/ardentik/gramblast/domains/folder"
	"github.com/ardentik/gramblast/infrastructure/telegram"
	"github.com/ardentik/gramblast/infrastructure/valkey"
	"github.com/ardentik/gramblast/pkg/utils"
	"github.com/ardentik/gramblast/repository"
	"github.com/ardentik/gramblast/usecase"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

var (
	// Platform dialer, registered by the embedding binary before Execute.
	// The campaign engine itself is transport-agnostic.
	platformDialer telegram.Dialer

	accountsDB *gorm.DB

	// Usecases
	accountUsecase  domainAccount.IAccountUsecase
	folderUsecase   domainFolder.IFolderUsecase
	campaignUsecase domainCampaign.ICampaignUsecase
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Short: "Folder-driven bulk message campaigns over HTTP",
	Long: `gramblast runs bulk message campaigns across many independently
authorized accounts, resolving platform-side chat folders into target lists
and fanning out one rate-limited send loop per account.`,
}

func init() {
	utils.LoadConfig(".")

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	initFlags()
	cobra.OnInitialize(initEnvConfig, initApp)
}

// SetPlatformDialer registers the concrete platform client factory. Must be
// called before Execute; the rest server refuses to start without one.
func SetPlatformDialer(dialer telegram.Dialer) {
	platformDialer = dialer
}

// initEnvConfig loads configuration from environment variables
func initEnvConfig() {
	if envPort := viper.GetString("app_port"); envPort != "" {
		globalConfig.AppPort = envPort
	}
	if viper.GetBool("app_debug") {
		globalConfig.AppDebug = true
	}
	if envBasePath := viper.GetString("app_base_path"); envBasePath != "" {
		globalConfig.AppBasePath = envBasePath
	}

	// Database settings
	if envDriver := viper.GetString("db_driver"); envDriver != "" {
		globalConfig.DBDriver = envDriver
	}
	if envName := viper.GetString("db_name"); envName != "" {
		globalConfig.DBName = envName
	}
	if envHost := viper.GetString("db_host"); envHost != "" {
		globalConfig.DBHost = envHost
	}
	if envPort := viper.GetInt("db_port"); envPort != 0 {
		globalConfig.DBPort = envPort
	}
	if envUser := viper.GetString("db_user"); envUser != "" {
		globalConfig.DBUser = envUser
	}
	if envPassword := viper.GetString("db_password"); envPassword != "" {
		globalConfig.DBPassword = envPassword
	}

	// Job store settings
	if envBackend := viper.GetString("job_store_backend"); envBackend != "" {
		globalConfig.JobStoreBackend = envBackend
	}
	if envAddress := viper.GetString("valkey_address"); envAddress != "" {
		globalConfig.ValkeyAddress = envAddress
	}
	if envPassword := viper.GetString("valkey_password"); envPassword != "" {
		globalConfig.ValkeyPassword = envPassword
	}
	if viper.IsSet("valkey_db") {
		globalConfig.ValkeyDB = viper.GetInt("valkey_db")
	}
	if envPrefix := viper.GetString("valkey_key_prefix"); envPrefix != "" {
		globalConfig.ValkeyKeyPrefix = envPrefix
	}
}

func initFlags() {
	rootCmd.PersistentFlags().StringVarP(
		&globalConfig.AppPort,
		"port", "p",
		globalConfig.AppPort,
		"change port number with --port <number> | example: --port=8080",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&globalConfig.AppDebug,
		"debug", "d",
		globalConfig.AppDebug,
		"hide or displaying log with --debug <true/false> | example: --debug=true",
	)
	rootCmd.PersistentFlags().StringVarP(
		&globalConfig.AppBasePath,
		"base-path", "",
		globalConfig.AppBasePath,
		`base path for subpath deployment --base-path <string> | example: --base-path="/gramblast"`,
	)
	rootCmd.PersistentFlags().StringVarP(
		&globalConfig.DBDriver,
		"db-driver", "",
		globalConfig.DBDriver,
		`accounts database driver --db-driver <sqlite|postgres>`,
	)
	rootCmd.PersistentFlags().StringVarP(
		&globalConfig.DBName,
		"db-name", "",
		globalConfig.DBName,
		`accounts database file (sqlite) or database name (postgres)`,
	)
	rootCmd.PersistentFlags().StringVarP(
		&globalConfig.JobStoreBackend,
		"job-store", "",
		globalConfig.JobStoreBackend,
		`job tracking backend --job-store <memory|valkey>`,
	)
}

func initApp() {
	if globalConfig.AppDebug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := utils.CreateFolder(globalConfig.PathStorages, globalConfig.PathSessions); err != nil {
		logrus.Errorln(err)
	}

	ctx := context.Background()

	var err error
	accountsDB, err = database.NewDatabase()
	if err != nil {
		logrus.Fatalf("failed to open accounts database: %v", err)
	}

	accountRepo := repository.NewAccountGormRepository(accountsDB)
	if err := accountRepo.InitSchema(ctx); err != nil {
		logrus.Fatalf("failed to init accounts schema: %v", err)
	}
	configRepo := repository.NewUserConfigGormRepository(accountsDB)
	if err := configRepo.InitSchema(ctx); err != nil {
		logrus.Fatalf("failed to init user config schema: %v", err)
	}

	jobStore := newJobStore()

	accountUsecase = usecase.NewAccountService(accountRepo, configRepo)
	folderUsecase = usecase.NewFolderService(accountRepo, platformDialer)
	campaignUsecase = usecase.NewCampaignService(accountRepo, configRepo, folderUsecase, platformDialer, jobStore)
}

func newJobStore() domainCampaign.IJobStore {
	switch globalConfig.JobStoreBackend {
	case "valkey":
		client, err := valkey.NewClient(valkey.Config{
			Address:   globalConfig.ValkeyAddress,
			Password:  globalConfig.ValkeyPassword,
			DB:        globalConfig.ValkeyDB,
			KeyPrefix: globalConfig.ValkeyKeyPrefix,
		})
		if err != nil {
			logrus.Fatalf("failed to connect to valkey job store: %v", err)
		}
		return repository.NewValkeyJobStore(client)
	case "memory", "":
		return repository.NewMemoryJobStore()
	default:
		logrus.Fatalf("unsupported job store backend: %s", globalConfig.JobStoreBackend)
		return nil
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
