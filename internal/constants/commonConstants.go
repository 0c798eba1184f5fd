package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixSummary   CachePrefix = "SUMMARY_"
	CachePrefixReminders CachePrefix = "REMINDERS_DUE_"
)

// LocalOwnerID is the owner assigned to records when the service runs
// without authentication (single-user sqlite deployments).
const LocalOwnerID = "local"
