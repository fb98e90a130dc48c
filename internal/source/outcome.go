package source

import "strings"

// Exact action phrases with known outcomes, tried before the substring
// families.
var actionOutcomes = map[string]Outcome{
	"Adopted":                 OutcomePass,
	"Adopted as Amended":      OutcomePass,
	"Adopted by Consent Vote": OutcomePass,
	"Approved":                OutcomePass,
	"Received":                OutcomePass,
	"Failed":                  OutcomeFail,
	"Defeated":                OutcomeFail,
	"Postponed":               OutcomeTabled,
	"Tabled":                  OutcomeTabled,
	"Withdrawn":               OutcomeWithdrawn,
	"Continued":               OutcomeContinued,
	"Removed":                 OutcomeRemoved,
}

// NormalizeOutcome determines the outcome from the pass/fail flag and the
// free-text action. The flag wins when present; a "0" flag still yields
// PASS when the action text says adopted or approved, since some batches
// zero the flag on consent adoptions. Anything unclassifiable becomes
// OutcomeFlag.
func NormalizeOutcome(passed, action string) Outcome {
	if passed == "1" {
		return OutcomePass
	}
	actionLower := strings.ToLower(action)
	if passed == "0" {
		if strings.Contains(actionLower, "adopted") || strings.Contains(actionLower, "approved") {
			return OutcomePass
		}
		return OutcomeFail
	}

	if action == "" {
		return OutcomeFlag
	}
	if outcome, ok := actionOutcomes[action]; ok {
		return outcome
	}
	switch {
	case strings.Contains(actionLower, "adopted") || strings.Contains(actionLower, "approved"):
		return OutcomePass
	case strings.Contains(actionLower, "failed") || strings.Contains(actionLower, "defeated"):
		return OutcomeFail
	case strings.Contains(actionLower, "tabled") || strings.Contains(actionLower, "postponed"):
		return OutcomeTabled
	case strings.Contains(actionLower, "withdrawn"):
		return OutcomeWithdrawn
	case strings.Contains(actionLower, "continued"):
		return OutcomeContinued
	case strings.Contains(actionLower, "removed"):
		return OutcomeRemoved
	}
	return OutcomeFlag
}
