package naming

// ============================================================================
// Name Kinds
// ============================================================================

// Kind identifies which catalog a name is resolved against
type Kind string

const (
	KindProduct    Kind = "product"
	KindIngredient Kind = "ingredient"
	KindEffect     Kind = "effect"
	KindQuality    Kind = "quality"
	KindAdditive   Kind = "additive"
)

// ============================================================================
// Resolution Outcomes
// ============================================================================

// Result labels recorded on the name resolution metric
const (
	ResultExact = "exact"
	ResultAlias = "alias"
	ResultMiss  = "miss"
)

// ============================================================================
// Fuzzy Matching
// ============================================================================

// MaxSuggestions caps how many candidates Suggest returns
const MaxSuggestions = 3

// Distance limits by key length, mirroring how far a typo can drift on short words
const (
	shortKeyLength  = 4
	mediumKeyLength = 8

	shortKeyLimit  = 1
	mediumKeyLimit = 2
	longKeyLimit   = 3
)

// keySeparators are dropped when building lookup keys so "Horse Semen",
// "horse-semen" and "HorseSemen" collapse to the same key
const keySeparators = " -_"

// ============================================================================
// Configuration Schema Constants
// ============================================================================

// SchemaMixAliases is the schema identifier for the alias configuration
const SchemaMixAliases = "mix-aliases"

// AliasesSchemaName names the embedded JSON schema the alias file is checked against
const AliasesSchemaName = "mix-aliases.schema.json"

// JSON keys of the alias configuration
const (
	JSONKeyVersion = "version"
	JSONKeySchema  = "schema"
	JSONKeyAliases = "aliases"
)

// ============================================================================
// Error Messages
// ============================================================================

// Error context messages for wrapped errors during configuration loading
const (
	ErrContextFailedToLoadAliases = "failed to load aliases"
	ErrContextFailedToReadConfig  = "failed to read config %s"
)

// Configuration validation error messages
const (
	ErrMsgInvalidJSON         = "%s is not valid JSON"
	ErrMsgMissingVersionField = "%s missing version field"
	ErrMsgInvalidSchema       = "invalid schema in %s: expected '%s', got '%s'"
	ErrMsgSchemaViolation     = "%s does not match the alias schema: %w"
	ErrMsgAliasUnknownTarget  = "alias %q in %s points to unknown tag %q"
)

// Resolution error formats
const (
	ErrFmtUnresolved     = "%w: %q"
	ErrFmtUnresolvedHint = "%w: %q (did you mean %q?)"
)
