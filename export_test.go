package share

// Test-only exports for internal functions.
var (
	TypeToSchema   = typeToSchema
	StructToSchema = structToSchema
	JSONFieldName  = jsonFieldName

	Normalize = normalize
)
