package ai

import (
	"fmt"
	"strings"

	"github.com/DamDam98/robocall-your-rep/internal/profile"
)

const callScriptClosing = "\n\nIf you can't help, I understand. I'm simply a passionate voter who wants my voice heard. Thank you for your time."

type CallScriptParams struct {
	FullName            string
	Age                 string
	ZipCode             string
	HomeOwnershipStatus profile.HomeOwnership
	RepresentativeName  string
	PassionateIssues    []profile.Issue
	Gender              profile.Gender
	Profession          string
	Income              string
	Message             string
}

func CallScriptParamsFrom(p profile.UserProfile, representativeName string) CallScriptParams {
	return CallScriptParams{
		FullName:            p.FullName,
		Age:                 p.Age,
		ZipCode:             p.ZipCode,
		HomeOwnershipStatus: p.HomeOwnershipStatus,
		RepresentativeName:  representativeName,
		PassionateIssues:    p.PassionateIssues,
		Gender:              p.Gender,
		Profession:          p.Profession,
		Income:              p.Income,
		Message:             p.Message,
	}
}

// GenerateCallScriptPrompt renders the script spoken to a representative's
// office. Home ownership and issue keys must belong to their enumerations.
func GenerateCallScriptPrompt(params CallScriptParams) (string, error) {
	if err := profile.CheckOptions(params.HomeOwnershipStatus, params.PassionateIssues); err != nil {
		return "", err
	}
	return RenderCallScript(params), nil
}

// RenderCallScript never fails. Unknown home ownership renders as an empty
// label and unknown issues are left out of the issue list.
func RenderCallScript(params CallScriptParams) string {
	var b strings.Builder

	fmt.Fprintf(&b,
		"Hello Representative %s, I'm %s, a %s-year-old %s and %s in %s. I'm calling about the housing crisis affecting our community. I'd specifically like to discuss %s.",
		params.RepresentativeName,
		params.FullName,
		params.Age,
		params.Gender.Noun(),
		homeOwnershipLabel(params.HomeOwnershipStatus),
		params.ZipCode,
		formatIssues(params.PassionateIssues),
	)

	fmt.Fprintf(&b, " I work as a %s making %s.",
		strings.ToLower(params.Profession),
		strings.ToLower(params.Income),
	)

	if strings.TrimSpace(params.Message) != "" {
		fmt.Fprintf(&b, " I wanted to add that %s.", params.Message)
	}

	b.WriteString(callScriptClosing)

	return b.String()
}

func homeOwnershipLabel(status profile.HomeOwnership) string {
	option, ok := profile.HomeOwnershipOptions[status]
	if !ok {
		return ""
	}
	return strings.ToLower(option.Label)
}

func formatIssues(issues []profile.Issue) string {
	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		option, ok := profile.IssueOptions[issue]
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", option.Label, option.Description))
	}
	return strings.Join(parts, "; ")
}
