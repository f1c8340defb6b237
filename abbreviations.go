package main

import "github.com/dlclark/regexp2"

// An abbreviation maps one charting shorthand to the full condition name it
// stands for. Matching is case-sensitive on purpose: "HTN" is shorthand,
// "htn" in prose is left alone.
type abbreviation struct {
	Short string
	Long  string
	re    *regexp2.Regexp
}

// abbreviations is applied in declaration order, so expansion output is
// stable across runs.
var abbreviations = buildAbbreviations([]abbreviation{
	{Short: "DM2", Long: "Type 2 diabetes mellitus"},
	{Short: "DM1", Long: "Type 1 diabetes mellitus"},
	{Short: "HTN", Long: "Hypertension"},
	{Short: "AKI", Long: "Acute kidney injury"},
	{Short: "CKD", Long: "Chronic kidney disease"},
	{Short: "CHF", Long: "Congestive heart failure"},
	{Short: "COPD", Long: "Chronic obstructive pulmonary disease"},
	{Short: "OSA", Long: "Obstructive sleep apnea"},
	{Short: "CAD", Long: "Coronary artery disease"},
	{Short: "AFib", Long: "Atrial fibrillation"},
})

func buildAbbreviations(abbrs []abbreviation) []abbreviation {
	for i := range abbrs {
		abbrs[i].re = regexp2.MustCompile(`\b`+abbrs[i].Short+`\b`, regexp2.None)
	}
	return abbrs
}

// expandAbbreviations rewrites known shorthands into full condition names so
// the downstream extractor and classifiers only deal with one spelling.
func expandAbbreviations(text string) string {
	for _, a := range abbreviations {
		expanded, err := a.re.Replace(text, a.Long, -1, -1)
		if err != nil {
			continue
		}
		text = expanded
	}
	return text
}
