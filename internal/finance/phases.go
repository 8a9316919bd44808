package finance

// Phases is the fixed set of delivery roles, in display order.
var Phases = []string{
	"Frontend (App)",
	"Frontend (Web)",
	"Backend",
	"API Implemented",
	"UI/UX",
	"AI Development",
	"Deployment",
	"Other",
}

func ValidPhase(phase string) bool {
	for _, p := range Phases {
		if p == phase {
			return true
		}
	}
	return false
}
