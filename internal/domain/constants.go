package domain

// Reaction types a user can attach to a report.
const (
	ReactionMeInteresa = "me_interesa"
	ReactionIncreible  = "increible"
	ReactionAporta     = "aporta"
)

// ReactionTypes is the closed set, in the order the frontend renders them.
var ReactionTypes = []string{ReactionMeInteresa, ReactionIncreible, ReactionAporta}

func IsValidReactionType(t string) bool {
	for _, rt := range ReactionTypes {
		if rt == t {
			return true
		}
	}
	return false
}

// Default report created lazily when a comment or reaction references a
// report id that does not exist. Looked up by its Power BI report id.
const (
	DefaultReportName        = "Dashboard Principal"
	DefaultReportDescription = "Dashboard principal de la aplicación"
	DefaultPowerBIReportID   = "default-report"
	DefaultPowerBIWorkspace  = "default-workspace"
)

const (
	MaxCommentLength = 1000
)
