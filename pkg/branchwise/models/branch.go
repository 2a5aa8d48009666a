package models

const (
	// BranchAny is the branch for stations open to every discipline.
	BranchAny = "Any"
	// BranchUnavailable marks stations that did not publish branch preferences.
	BranchUnavailable = "Unavailable"
	// DualDegreePrefix turns a single-degree code into its dual-degree code.
	DualDegreePrefix = "Any"
)

// DefaultSingleDegrees lists the single-degree branch codes in sheet order.
var DefaultSingleDegrees = []string{
	"A1", "A2", "A3", "A4", "A5", "A7", "A8", "AA", "AB",
	"B1", "B2", "B3", "B4", "B5",
}

// DualDegree returns the dual-degree code for a single-degree code.
func DualDegree(code string) string {
	return DualDegreePrefix + code
}

// Branches returns the ordered list of branch codes that get a sheet:
// "Any", every single degree, every dual degree, then "Unavailable".
func Branches(singles []string) []string {
	out := make([]string, 0, 2*len(singles)+2)
	out = append(out, BranchAny)
	out = append(out, singles...)
	for _, s := range singles {
		out = append(out, DualDegree(s))
	}
	return append(out, BranchUnavailable)
}
