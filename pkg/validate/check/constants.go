package check

// Categories classify checks for grouping in reports.
const (
	CategoryOS      Category = "os"
	CategoryStorage Category = "storage"
	CategoryNetwork Category = "network"
	CategorySetup   Category = "setup"
	CategoryDriver  Category = "driver"
)

// CanonicalCategoryOrder defines the order in which categories are reported.
//
//nolint:gochecknoglobals
var CanonicalCategoryOrder = []Category{
	CategoryOS,
	CategoryStorage,
	CategoryNetwork,
	CategorySetup,
	CategoryDriver,
}

// Tags shared by more than one check package.
const (
	TagBasic      = "basic"
	TagConnection = "connection"
	TagDriver     = "driver"
	TagPlugin     = "plugin"
	TagConfig     = "config"
)

// CodeInternalError is reserved for checks that crashed or returned an
// unexpected error. It is never used by a check body.
const CodeInternalError = "INTERNAL"
