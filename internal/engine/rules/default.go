package rules

// Default returns the built-in rule tables that ship with ladder.
// These were curated from government payroll and ATS title corpora and
// will grow as new sources are onboarded.
func Default() Rules {
	return Rules{
		Version: "2026.2",

		Acronyms: map[string]string{
			// Organizational
			"IT": "IT", "HR": "HR", "PR": "PR", "QA": "QA", "R&D": "R&D",
			"CEO": "CEO", "CFO": "CFO", "CTO": "CTO", "COO": "COO",
			"CIO": "CIO", "CISO": "CISO", "VP": "VP", "SVP": "SVP", "EVP": "EVP",
			// Technical
			"AI": "AI", "ML": "ML", "UX": "UX", "UI": "UI", "SQL": "SQL",
			"DBA": "DBA", "GIS": "GIS", "CAD": "CAD", "ERP": "ERP",
			"CRM": "CRM", "SEO": "SEO", "NLP": "NLP", "API": "API",
			"HVAC": "HVAC", "AV": "AV",
			// Medical
			"RN": "RN", "LPN": "LPN", "LVN": "LVN", "CNA": "CNA",
			"EMT": "EMT", "MD": "MD", "NP": "NP", "PA": "PA", "OR": "OR",
			"ICU": "ICU", "ER": "ER",
			// Degrees — PhD is the one mixed-case entry.
			"MBA": "MBA", "PHD": "PhD", "JD": "JD", "CPA": "CPA",
			"BSN": "BSN", "MSN": "MSN", "MSW": "MSW", "PE": "PE",
		},

		MinorWords: []string{
			"a", "an", "the",
			"and", "or", "nor", "but",
			"of", "in", "on", "at", "to", "for", "by", "as",
		},

		Stopwords: []string{
			"a", "an", "the", "of", "and", "or", "for", "to", "in", "on",
			// Title filler that carries no occupational signal.
			"i", "ii", "iii", "iv", "v",
		},

		Seniority: map[string]string{
			"intern": "entry", "internship": "entry", "trainee": "entry",
			"graduate": "entry", "junior": "entry", "jr": "entry",
			"apprentice": "entry", "entry": "entry", "associate": "entry",
			"mid": "mid", "intermediate": "mid",
			"senior": "senior", "sr": "senior",
			"staff": "staff", "lead": "staff", "supervisor": "staff",
			"principal": "principal", "director": "principal", "head": "principal",
			"chief": "executive", "vp": "executive", "svp": "executive",
			"evp": "executive", "president": "executive", "executive": "executive",
			"ceo": "executive", "cfo": "executive", "cto": "executive",
			"coo": "executive", "cio": "executive",
		},

		Keywords: []KeywordRule{
			{Role: "Software Engineer", AllOf: []string{"software"}, AnyOf: []string{"engineer", "developer", "programmer"}},
			{Role: "Software Engineer", AnyOf: []string{"swe", "programmer analyst"}},
			{Role: "Data Scientist", AllOf: []string{"data"}, AnyOf: []string{"scientist", "science"}},
			{Role: "Data Engineer", AllOf: []string{"data", "engineer"}},
			{Role: "Data Analyst", AllOf: []string{"data", "analyst"}},
			{Role: "Registered Nurse", AnyOf: []string{"nurse", "nursing"}},
			{Role: "Accountant", AnyOf: []string{"accountant", "accounting"}},
			{Role: "Administrative Assistant", AllOf: []string{"assistant"}, AnyOf: []string{"administrative", "admin", "office"}},
			{Role: "Project Manager", AllOf: []string{"project"}, AnyOf: []string{"manager", "management"}},
			{Role: "Product Manager", AllOf: []string{"product", "manager"}},
			{Role: "Teacher", AnyOf: []string{"teacher", "instructor", "professor", "lecturer"}},
			{Role: "Custodian", AnyOf: []string{"custodian", "janitor", "custodial"}},
			{Role: "Police Officer", AnyOf: []string{"police", "patrol officer", "sheriff deputy"}},
			{Role: "Firefighter", AnyOf: []string{"firefighter", "fire fighter"}},
			{Role: "Social Worker", AllOf: []string{"social"}, AnyOf: []string{"worker", "work"}},
			{Role: "Attorney", AnyOf: []string{"attorney", "lawyer", "counsel"}},
			{Role: "Sales Representative", AllOf: []string{"sales"}, AnyOf: []string{"representative", "rep", "associate", "executive"}},
			{Role: "Customer Service Representative", AllOf: []string{"customer"}, AnyOf: []string{"service", "support", "care"}},
		},
	}
}
