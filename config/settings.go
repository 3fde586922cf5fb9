package config

var (
	AppVersion  = "v1.2.0"
	AppPort     = "3000"
	AppDebug    = false
	AppOs       = "Gramblast"
	AppBasePath = ""

	PathStorages = "storages"
	PathSessions = "storages/sessions"

	// Accounts / user-config database. SQLite by default, Postgres when
	// DBDriver is set accordingly.
	DBDriver   = "sqlite"
	DBName     = "storages/gramblast.db"
	DBHost     = "localhost"
	DBPort     = 5432
	DBUser     = "gramblast"
	DBPassword = ""

	// Job tracking backend: "memory" (default) or "valkey" for multi-node
	// deployments.
	JobStoreBackend = "memory"
	ValkeyAddress   = "localhost:6379"
	ValkeyPassword  = ""
	ValkeyDB        = 0
	ValkeyKeyPrefix = "gramblast"

	// Campaign guard rails, mirrored by request validation.
	CampaignMinDelaySeconds = 1
	CampaignMaxDelaySeconds = 3600
)
