package main

// classifyProblem runs every axis over one span of note text and returns the
// assembled record for the given base diagnosis. Supporting data is
// extracted from the same text, capped at maxFindings items. Severity stays
// empty: no severity detector exists, the stage axis already covers graded
// systems, and callers that receive severity from an upstream source set it
// on the record themselves.
func classifyProblem(text, diagnosis string, maxFindings int) Problem {
	return Problem{
		Diagnosis:      diagnosis,
		Modifier:       modifierAxis.Detect(text),
		Complication:   complicationAxis.Detect(text),
		Stage:          stageAxis.Detect(text),
		Temporal:       temporalAxis.Detect(text),
		Laterality:     lateralityAxis.Detect(text),
		Location:       locationAxis.Detect(text),
		Etiology:       etiologyAxis.Detect(text),
		Context:        contextAxis.Detect(text),
		SupportingData: extractSupportingData(text, maxFindings),
	}
}
