package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldPath        = "path"
	FieldBackend     = "backend"
	FieldMonth       = "month"
	FieldCategory    = "category"
	FieldType        = "type"
	FieldAmountCents = "amount_cents"
	FieldCount       = "count"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentStorage = "storage"
	ComponentLedger  = "ledger"
	ComponentExport  = "export"
	ComponentChart   = "chart"
	ComponentMenu    = "menu"
)

// Operations defines standard operation names
const (
	OpLoad    = "load"
	OpSave    = "save"
	OpAppend  = "append"
	OpReport  = "report"
	OpExport  = "export"
	OpRender  = "render"
	OpStartup = "startup"
)
