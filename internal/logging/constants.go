package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldSourceApp   = "source_app"
	FieldSource      = "source"
	FieldAmount      = "amount"
	FieldType        = "type"
	FieldPayee       = "payee"
	FieldConfidence  = "confidence"
	FieldStrategy    = "strategy"
	FieldKeyword     = "keyword"
	FieldReason      = "reason"
	FieldStatus      = "status"
	FieldError       = "error"
	FieldCount       = "count"
	FieldSubscribers = "subscribers"
	FieldDropped     = "dropped"
	FieldInputFile   = "input_file"
	FieldOutputFile  = "output_file"
)
