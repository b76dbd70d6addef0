package taxonomy

import "github.com/wagescope/ladder/internal/model"

// DefaultRoles returns the built-in starter taxonomy that ships with ladder.
// Production callers load the full curated set from the persistence layer;
// this set keeps the engine usable out of the box and anchors the test suite.
func DefaultRoles() []model.CanonicalRole {
	return []model.CanonicalRole{
		{
			ID: 1, Name: "Software Engineer",
			OccupationCode: "15-1252", OnetCode: "15-1252.00",
			RoleFamily: "Engineering", Category: "Technology",
			TypicalSkills: []string{"programming", "algorithms", "debugging"},
			Aliases: []string{
				"software developer", "application developer", "programmer",
				"software development engineer", "full stack developer",
				"backend engineer", "frontend engineer", "web developer",
			},
		},
		{
			ID: 2, Name: "Data Scientist",
			OccupationCode: "15-2051", OnetCode: "15-2051.00",
			RoleFamily: "Data", Category: "Technology",
			TypicalSkills: []string{"statistics", "machine learning", "python"},
			Aliases:       []string{"machine learning scientist", "ml scientist", "research scientist data"},
		},
		{
			ID: 3, Name: "Data Engineer",
			OccupationCode: "15-1243", RoleFamily: "Data", Category: "Technology",
			TypicalSkills: []string{"sql", "etl", "data pipelines"},
			Aliases:       []string{"etl developer", "data platform engineer", "big data engineer"},
		},
		{
			ID: 4, Name: "Data Analyst",
			OccupationCode: "15-2041", RoleFamily: "Data", Category: "Technology",
			TypicalSkills: []string{"sql", "reporting", "dashboards"},
			Aliases:       []string{"business intelligence analyst", "bi analyst", "reporting analyst"},
		},
		{
			ID: 5, Name: "Product Manager",
			OccupationCode: "11-2021", RoleFamily: "Product", Category: "Technology",
			TypicalSkills: []string{"roadmapping", "stakeholder management"},
			Aliases:       []string{"product owner", "technical product manager"},
		},
		{
			ID: 6, Name: "Project Manager",
			OccupationCode: "11-9199", RoleFamily: "Operations", Category: "Business",
			TypicalSkills: []string{"scheduling", "budgeting", "risk management"},
			Aliases:       []string{"program manager", "project coordinator"},
		},
		{
			ID: 7, Name: "Registered Nurse",
			OccupationCode: "29-1141", OnetCode: "29-1141.00",
			RoleFamily: "Nursing", Category: "Healthcare",
			TypicalSkills: []string{"patient care", "medication administration"},
			Aliases:       []string{"rn", "staff nurse", "clinical nurse", "nurse"},
		},
		{
			ID: 8, Name: "Nurse Practitioner",
			OccupationCode: "29-1171", RoleFamily: "Nursing", Category: "Healthcare",
			TypicalSkills: []string{"diagnosis", "prescribing"},
			Aliases:       []string{"np", "family nurse practitioner", "aprn"},
		},
		{
			ID: 9, Name: "Accountant",
			OccupationCode: "13-2011", RoleFamily: "Finance", Category: "Business",
			TypicalSkills: []string{"general ledger", "reconciliation", "gaap"},
			Aliases:       []string{"staff accountant", "cpa", "general accountant"},
		},
		{
			ID: 10, Name: "Financial Analyst",
			OccupationCode: "13-2051", RoleFamily: "Finance", Category: "Business",
			TypicalSkills: []string{"forecasting", "modeling", "excel"},
			Aliases:       []string{"finance analyst", "budget analyst"},
		},
		{
			ID: 11, Name: "Administrative Assistant",
			OccupationCode: "43-6014", RoleFamily: "Administration", Category: "Business",
			TypicalSkills: []string{"scheduling", "correspondence"},
			Aliases:       []string{"admin assistant", "office assistant", "secretary", "executive assistant"},
		},
		{
			ID: 12, Name: "Teacher",
			OccupationCode: "25-2021", RoleFamily: "Education", Category: "Public Sector",
			TypicalSkills: []string{"curriculum", "classroom management"},
			Aliases:       []string{"classroom teacher", "elementary teacher", "instructor"},
		},
		{
			ID: 13, Name: "Social Worker",
			OccupationCode: "21-1021", RoleFamily: "Social Services", Category: "Public Sector",
			TypicalSkills: []string{"case management", "counseling"},
			Aliases:       []string{"caseworker", "msw", "case manager social services"},
		},
		{
			ID: 14, Name: "Police Officer",
			OccupationCode: "33-3051", RoleFamily: "Public Safety", Category: "Public Sector",
			TypicalSkills: []string{"patrol", "investigation"},
			Aliases:       []string{"patrol officer", "peace officer", "law enforcement officer"},
		},
		{
			ID: 15, Name: "Firefighter",
			OccupationCode: "33-2011", RoleFamily: "Public Safety", Category: "Public Sector",
			TypicalSkills: []string{"fire suppression", "emergency response"},
			Aliases:       []string{"fire fighter", "firefighter paramedic"},
		},
		{
			ID: 16, Name: "Custodian",
			OccupationCode: "37-2011", RoleFamily: "Facilities", Category: "Operations",
			TypicalSkills: []string{"cleaning", "maintenance"},
			Aliases:       []string{"janitor", "custodial worker", "building service worker"},
		},
		{
			ID: 17, Name: "Attorney",
			OccupationCode: "23-1011", RoleFamily: "Legal", Category: "Business",
			TypicalSkills: []string{"litigation", "legal research"},
			Aliases:       []string{"lawyer", "counsel", "legal counsel", "deputy attorney"},
		},
		{
			ID: 18, Name: "Sales Representative",
			OccupationCode: "41-4012", RoleFamily: "Sales", Category: "Business",
			TypicalSkills: []string{"prospecting", "negotiation"},
			Aliases:       []string{"sales rep", "account manager", "sales consultant"},
		},
		{
			ID: 19, Name: "Customer Service Representative",
			OccupationCode: "43-4051", RoleFamily: "Support", Category: "Business",
			TypicalSkills: []string{"communication", "crm"},
			Aliases:       []string{"customer service rep", "customer support specialist", "call center representative"},
		},
		{
			ID: 20, Name: "IT Manager",
			OccupationCode: "11-3021", RoleFamily: "Engineering", Category: "Technology",
			TypicalSkills: []string{"infrastructure", "team leadership"},
			Aliases:       []string{"information technology manager", "it operations manager"},
		},
		{
			ID: 21, Name: "Mechanical Engineer",
			OccupationCode: "17-2141", RoleFamily: "Engineering", Category: "Technology",
			TypicalSkills: []string{"cad", "thermodynamics"},
			Aliases:       []string{"mech engineer", "mechanical design engineer"},
		},
		{
			ID: 22, Name: "Civil Engineer",
			OccupationCode: "17-2051", RoleFamily: "Engineering", Category: "Public Sector",
			TypicalSkills: []string{"structural analysis", "autocad"},
			Aliases:       []string{"civil engineering associate", "transportation engineer"},
		},
		{
			ID: 23, Name: "Human Resources Specialist",
			OccupationCode: "13-1071", RoleFamily: "Human Resources", Category: "Business",
			TypicalSkills: []string{"recruiting", "onboarding"},
			Aliases:       []string{"hr specialist", "hr generalist", "human resources generalist", "recruiter"},
		},
		{
			ID: 24, Name: "Marketing Manager",
			OccupationCode: "11-2021", RoleFamily: "Marketing", Category: "Business",
			TypicalSkills: []string{"campaigns", "brand management"},
			Aliases:       []string{"marketing lead", "digital marketing manager"},
		},
		{
			ID: 25, Name: "Librarian",
			OccupationCode: "25-4022", RoleFamily: "Education", Category: "Public Sector",
			TypicalSkills: []string{"cataloging", "reference services"},
			Aliases:       []string{"library media specialist", "reference librarian"},
		},
	}
}
