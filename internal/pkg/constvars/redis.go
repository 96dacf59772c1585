package constvars

const (
	RedisKeyProgramEvaluationCatalog = "catalog:program_evaluation"
	RedisKeyROMCatalog               = "catalog:rom"
	RedisKeyOverviewFormat           = "overview:%s:%s"
	RedisKeyCatalogRefreshLock       = "catalog:refresh:leader"
)

// OverviewScopeAll replaces the patient id in the overview key when the
// overview covers every patient.
const OverviewScopeAll = "all"
