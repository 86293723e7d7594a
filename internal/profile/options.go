package profile

type Option struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

type HomeOwnership string

const (
	CurrentHomeowner   HomeOwnership = "currentHomeowner"
	AspiringHomeowner  HomeOwnership = "aspiringHomeowner"
	Renter             HomeOwnership = "renter"
	PreviouslyOwned    HomeOwnership = "previouslyOwned"
	LivingWithOthers   HomeOwnership = "livingWithOthers"
	Houseless          HomeOwnership = "houseless"
	HomeOwnershipUnset HomeOwnership = ""
)

var HomeOwnershipOptions = map[HomeOwnership]Option{
	CurrentHomeowner: {
		Label:       "Current Homeowner",
		Description: "I currently own my home.",
	},
	AspiringHomeowner: {
		Label:       "Aspiring Homeowner",
		Description: "I want to own a home but face barriers, such as high prices or mortgage challenges.",
	},
	Renter: {
		Label:       "Renter",
		Description: "I rent my residence and am impacted by rising rents, tenant protections, or availability of affordable rentals.",
	},
	PreviouslyOwned: {
		Label:       "Previously Owned a Home",
		Description: "I used to own a home but am no longer a homeowner due to economic or personal reasons.",
	},
	LivingWithOthers: {
		Label:       "Living with Family or Friends",
		Description: "I live with family or friends due to financial constraints or a lack of affordable housing options.",
	},
	Houseless: {
		Label:       "Houseless or Housing Insecure",
		Description: "I am currently without a stable home or face frequent moves and instability in housing.",
	},
}

// Known reports whether h is one of the selectable statuses or unset.
func (h HomeOwnership) Known() bool {
	if h == HomeOwnershipUnset {
		return true
	}
	_, ok := HomeOwnershipOptions[h]
	return ok
}

type Issue string

const (
	ZoningReform             Issue = "zoningReform"
	AffordableHousingFunding Issue = "affordableHousingFunding"
	InvestorRestrictions     Issue = "investorRestrictions"
	TaxIncentives            Issue = "taxIncentives"
	TenantProtections        Issue = "tenantProtections"
	ForeignInvestment        Issue = "foreignInvestment"
	Nimbyism                 Issue = "nimbyism"
)

// MaxIssues caps how many passionate issues a caller may pick.
const MaxIssues = 3

var IssueOptions = map[Issue]Option{
	ZoningReform: {
		Label:       "Reforming Zoning and Land Use Laws",
		Description: "Advocate for zoning changes to allow more housing options, such as multi-family units, in high-demand areas.",
	},
	AffordableHousingFunding: {
		Label:       "Increasing Affordable Housing Funding",
		Description: "Support increased federal and state funding for affordable housing projects and initiatives to make housing more accessible.",
	},
	InvestorRestrictions: {
		Label:       "Restricting Large Investor Purchases",
		Description: "Push for regulations to limit bulk home purchases by large corporations and institutional investors, which drive up prices.",
	},
	TaxIncentives: {
		Label:       "Encouraging Tax Incentives for Affordable Development",
		Description: "Promote tax incentives for private developers who commit to building affordable housing, making development more feasible.",
	},
	TenantProtections: {
		Label:       "Implementing Tenant Protections and Rent Control",
		Description: "Call for policies to protect renters, including rent control and protections against sudden rent increases and displacement.",
	},
	ForeignInvestment: {
		Label:       "Restricting Foreign Investment in Housing",
		Description: "Advocate for policies to limit foreign investment in residential real estate, helping to maintain affordability for local residents.",
	},
	Nimbyism: {
		Label:       "Combating NIMBYism in Housing Policies",
		Description: "Support policies that reduce community resistance to affordable housing projects, especially in areas with strong job opportunities.",
	},
}

func (i Issue) Known() bool {
	_, ok := IssueOptions[i]
	return ok
}

type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderUnspecified Gender = ""
)

// Noun is the word used for the caller in the call script.
func (g Gender) Noun() string {
	switch g {
	case GenderMale:
		return "man"
	case GenderFemale:
		return "woman"
	default:
		return "person"
	}
}
