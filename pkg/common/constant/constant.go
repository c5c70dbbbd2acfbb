package constant

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	ChainOsmosis = "osmosis"

	DefaultTokenTableURL = "https://raw.githubusercontent.com/ca3-caaip/token_original_id/master/token_original_id.csv"

	JournalKeyPrefix = "journal_"
)
