package enum

type KVStoreType string
type OutputFormat string

const (
	KVStoreTypeBadger KVStoreType = "badger"
)

const (
	OutputFormatCSV  OutputFormat = "csv"
	OutputFormatJSON OutputFormat = "json"
)
