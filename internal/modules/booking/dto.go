package booking

type OpenWizardRequest struct {
	CompanionID int64 `json:"companion_id" binding:"required"`
}

type SetFieldsRequest struct {
	Fields map[string]string `json:"fields" binding:"required"`
}

// WizardStateResponse is the state echoed back after every wizard operation.
// Errors carries the field errors that blocked a transition, if any.
type WizardStateResponse struct {
	SessionID string       `json:"session_id"`
	Listing   Listing      `json:"listing"`
	Step      Step         `json:"step"`
	Draft     Draft        `json:"draft"`
	Summary   *Summary     `json:"summary,omitempty"`
	Errors    []FieldError `json:"errors,omitempty"`
}

func ToWizardStateResponse(sess *Session, errs []FieldError) WizardStateResponse {
	resp := WizardStateResponse{
		SessionID: sess.ID,
		Listing:   sess.Wizard.Listing,
		Step:      sess.Wizard.Step,
		Draft:     sess.Wizard.Draft,
		Errors:    errs,
	}
	if sess.Wizard.Step == StepConfirmation {
		summary := sess.Wizard.Summary()
		resp.Summary = &summary
	}
	return resp
}
