package extract

// LFTConfig returns the extraction configuration for liver function test
// reports. Several generic aliases ("bilirubin", "total", "direct") appear
// under more than one parameter on purpose: resolution priority is table
// construction order, and the bilirubin variants are usually settled by the
// parenthetical-marker heuristic before generic matching runs.
func LFTConfig() *ReportConfig {
	return &ReportConfig{
		Name:           "lft",
		FuzzyThreshold: 70,
		Parameters: []Parameter{
			{Name: "SGOT (AST)", Aliases: []string{"sgot", "ast", "sgot (ast)", "serum glutamate oxaloacetate transaminase", "aspartate transaminase"}},
			{Name: "SGPT (ALT)", Aliases: []string{"sgpt", "alt", "sgpt (alt)", "serum glutamate pyruvate transaminase", "alanine transaminase"}},
			{Name: "ALP", Aliases: []string{"alp", "alkaline phosphatase", "alk phosphatase", "alkaline", "phosphatase"}},
			{Name: "Total Bilirubin", Aliases: []string{"total bilirubin", "bilirubin total", "bilirubin t", "t bilirubin", "bilirubin", "total"}},
			{Name: "Direct Bilirubin", Aliases: []string{"direct bilirubin", "bilirubin direct", "d bilirubin", "direct", "serumi bilirubin", "serum direct bilirubin", "serum bilirubin (direct)", "bilirubin (direct)", "(direct)", "serum bilirubin direct"}},
			{Name: "Indirect Bilirubin", Aliases: []string{"indirect bilirubin", "bilirubin indirect", "i bilirubin", "indirect", "serum bilirubin (indirect)", "bilirubin (indirect)", "(indirect)", "serum bilirubin indirect"}},
			{Name: "Albumin", Aliases: []string{"albumin", "serum albumin"}},
			{Name: "Globulin", Aliases: []string{"globulin", "serum globulin"}},
			{Name: "A/G Ratio", Aliases: []string{"a/g ratio", "ag ratio", "albumin globulin ratio", "a:g ratio", "a:g"}},
			{Name: "Total Protein", Aliases: []string{"total protein", "protein total", "serum protein", "total proteins", "proteins", "protein", "serum total protein", "serum proteins", "serum total proteins"}},
			{Name: "GGT", Aliases: []string{"ggt", "gamma glutamyl transferase", "gamma gt", "gamma glutamyl", "gamma-glutamyl transferase", "gamma-glutamyl", "gamma glutamyl (ggt)", "(ggt)", "ggt (gamma glutamyl)", "gamma glutamyltransferase"}},
			{Name: "SGOT/SGPT Ratio", Aliases: []string{"sgot/sgpt ratio", "sgot/sgpt", "sgot sgot/sgpt ratio", "ratio"}},
			{Name: "Total Proteins", Aliases: []string{"proteins total"}},
		},
		Metadata: map[string]Metadata{
			"SGOT (AST)":         {Unit: "U/L", Range: "5 - 40"},
			"SGPT (ALT)":         {Unit: "U/L", Range: "7 - 56"},
			"ALP":                {Unit: "U/L", Range: "44 - 147"},
			"Total Bilirubin":    {Unit: "mg/dL", Range: "0.1 - 1.2"},
			"Direct Bilirubin":   {Unit: "mg/dL", Range: "<0.3"},
			"Indirect Bilirubin": {Unit: "mg/dL", Range: "<1.0"},
			"Albumin":            {Unit: "g/dL", Range: "3.5 - 5.0"},
			"Globulin":           {Unit: "g/dL", Range: "2.0 - 3.5"},
			"A/G Ratio":          {Unit: "-", Range: "1.0 - 2.2"},
			"Total Protein":      {Unit: "g/dL", Range: "6.0 - 8.3"},
			"GGT":                {Unit: "U/L", Range: "9 - 48"},
			"SGOT/SGPT Ratio":    {Unit: "RATIO", Range: "0 - 46"},
		},
		HeaderKeywords: []string{"liver", "function", "test", "description", "reference", "range", "unit", "result", "protein", "enzyme", "remarks", "interpretation", "parameters"},
		ValidUnits:     []string{"U/L", "mg/dL", "g/dL", "g/L", "%", "-", "gm/dL", "IU/L", "RATIO"},
		UnitFixes: []UnitFix{
			{Match: "mgidl", Canonical: "mg/dL"},
			{Match: "mg/di", Canonical: "mg/dL"},
			{Match: "mgldi", Canonical: "mg/dL"},
			{Match: "mg/dl", Canonical: "mg/dL"},
			{Match: "mgid", Canonical: "mg/dL"},
			{Match: "gidi", Canonical: "g/dL"},
			{Match: "g/di", Canonical: "g/dL"},
			{Match: "gldi", Canonical: "g/dL"},
			{Match: "g/dl", Canonical: "g/dL"},
			{Match: "gid", Canonical: "g/dL"},
			{Match: "uai", Canonical: "U/L"},
			{Match: "u/i", Canonical: "U/L"},
			{Match: "iu/l", Canonical: "U/L"},
			{Match: "u/l", Canonical: "U/L"},
		},
	}
}
