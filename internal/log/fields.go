package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldForm       = "form"
	FieldRecordID   = "record_id"
	FieldSubmission = "submission_id"
	FieldPath       = "path"
	FieldCount      = "count"
	FieldFormat     = "format"
)

// Components
const (
	ComponentApp      = "app"
	ComponentStore    = "store"
	ComponentForms    = "forms"
	ComponentActivity = "activity"
	ComponentGit      = "git"
	ComponentExport   = "export"
)

// Operations
const (
	OpLoad   = "load"
	OpCreate = "create"
	OpList   = "list"
	OpExport = "export"
	OpCommit = "commit"
	OpInit   = "init"
)
