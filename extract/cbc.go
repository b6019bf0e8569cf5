package extract

// CBCConfig returns the extraction configuration for complete blood count
// reports. The last four table entries are section headers carried as
// pseudo-parameters so section-scoped resolution can recognize them.
func CBCConfig() *ReportConfig {
	return &ReportConfig{
		Name:           "cbc",
		FuzzyThreshold: 50,
		Parameters: []Parameter{
			{Name: "Haemoglobin", Aliases: []string{"haemoglobin", "hemoglobin", "hb"}},
			{Name: "Total Leucocyte Count", Aliases: []string{"total leucocyte count", "wbc", "total w.b.c. count", "leucocyte count", "tlc", "total leukocyte count", "total leucocytes"}},
			{Name: "Neutrophils", Aliases: []string{"neutrophils", "neutrophil", "neut"}},
			{Name: "Lymphocytes", Aliases: []string{"lymphocytes", "lymphocyte", "lymph"}},
			{Name: "Eosinophils", Aliases: []string{"eosinophils", "eosinophil", "eos"}},
			{Name: "Monocytes", Aliases: []string{"monocytes", "monocyte", "mono"}},
			{Name: "Basophils", Aliases: []string{"basophils", "basophil", "baso"}},
			{Name: "Absolute Neutrophils", Aliases: []string{"absolute neutrophils", "abs neutrophils", "abs neut", "absolute neut", "absolute neutrophil count", "abs neutrophil count"}},
			{Name: "Absolute Lymphocytes", Aliases: []string{"absolute lymphocytes", "abs lymphocytes", "abs lymph", "absolute lymph", "absolute lymphocyte count", "abs lymphocyte count"}},
			{Name: "Absolute Eosinophils", Aliases: []string{"absolute eosinophils", "abs eosinophils", "abs eos", "absolute eos", "absolute eosinophil count", "abs eosinophil count"}},
			{Name: "Absolute Monocytes", Aliases: []string{"absolute monocytes", "abs monocytes", "abs mono", "absolute mono", "absolute monocyte count", "abs monocyte count"}},
			{Name: "RBC Count", Aliases: []string{"rbc count", "total r.b.c. count", "rbc", "r b c count", "r b c"}},
			{Name: "MCV", Aliases: []string{"mcv", "mean corpuscular volume", "m c v"}},
			{Name: "MCH", Aliases: []string{"mch", "mean corpuscular hemoglobin", "m c h"}},
			{Name: "MCHC", Aliases: []string{"mchc", "mean corpuscular hemoglobin concentration", "m c h c"}},
			{Name: "Hct", Aliases: []string{"hct", "pcv", "hematocrit", "packed cell volume"}},
			{Name: "RDW-CV", Aliases: []string{"rdw-cv", "rdw cv", "rdwcv", "red cell distribution width cv"}},
			{Name: "RDW-SD", Aliases: []string{"rdw-sd", "rdw sd", "rdwsd", "red cell distribution width sd"}},
			{Name: "Platelet Count", Aliases: []string{"platelet count", "platelets", "plt count", "plt", "platelet cnt"}},
			{Name: "MPV", Aliases: []string{"mpv", "mean platelet volume"}},
			{Name: "PCT", Aliases: []string{"pct", "plateletcrit"}},
			{Name: "PDW", Aliases: []string{"pdw", "platelet distribution width"}},
			{Name: "Differential Leucocyte Count", Aliases: []string{"differential leucocyte count", "differential", "differential count"}},
			{Name: "Absolute Leucocyte Count", Aliases: []string{"absolute leucocyte count", "absolute", "absolute count"}},
			{Name: "RBC Indices", Aliases: []string{"rbc indices", "rbc index", "indices"}},
			{Name: "Platelets Indices", Aliases: []string{"platelets indices", "platelet indices", "platelets index"}},
		},
		Metadata: map[string]Metadata{
			"Haemoglobin":           {Unit: "g/dL", Range: "13 - 17"},
			"Total Leucocyte Count": {Unit: "/cumm", Range: "4000 - 10000"},
			"Neutrophils":           {Unit: "%", Range: "40 - 80"},
			"Lymphocytes":           {Unit: "%", Range: "20 - 40"},
			"Eosinophils":           {Unit: "%", Range: "1 - 6"},
			"Monocytes":             {Unit: "%", Range: "2 - 10"},
			"Basophils":             {Unit: "%", Range: "0 - 1"},
			"Absolute Neutrophils":  {Unit: "/cumm", Range: "2000 - 7000"},
			"Absolute Lymphocytes":  {Unit: "/cumm", Range: "1000 - 3000"},
			"Absolute Eosinophils":  {Unit: "/cumm", Range: "20 - 500"},
			"Absolute Monocytes":    {Unit: "/cumm", Range: "200 - 1000"},
			"RBC Count":             {Unit: "Million/cumm", Range: "4.5 - 5.5"},
			"MCV":                   {Unit: "fL", Range: "81 - 101"},
			"MCH":                   {Unit: "pg", Range: "27 - 32"},
			"MCHC":                  {Unit: "g/dL", Range: "31.5 - 34.5"},
			"Hct":                   {Unit: "%", Range: "40 - 50"},
			"RDW-CV":                {Unit: "%", Range: "11.6 - 14.0"},
			"RDW-SD":                {Unit: "fL", Range: "39 - 46"},
			"Platelet Count":        {Unit: "/cumm", Range: "150000 - 410000"},
			"PCT":                   {},
			"MPV":                   {Unit: "fL", Range: "7.5 - 11.5"},
			"PDW":                   {},
			"Platelets on Smear":    {},
		},
		HeaderKeywords: []string{"complete", "test", "description", "ref.", "range", "differential", "absolute", "indices", "interpretation"},
		ValidUnits:     []string{"%", "g/dL", "pg", "fL", "/cumm", "Million/cumm", "x10³/µL"},
	}
}
