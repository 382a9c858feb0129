package implementation

// Worksheet names inside the backing spreadsheet.
const (
	WorksheetUsers        = "users"
	WorksheetChildren     = "children"
	WorksheetSessions     = "sessions"
	WorksheetUserChildren = "user_children"
)

// AllWorksheets is checked at startup so a missing tab fails fast instead
// of on the first request.
var AllWorksheets = []string{
	WorksheetUsers,
	WorksheetChildren,
	WorksheetSessions,
	WorksheetUserChildren,
}
