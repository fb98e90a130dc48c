package source

import "testing"

func TestNormalizeOutcome(t *testing.T) {
	cases := []struct {
		name   string
		passed string
		action string
		want   Outcome
	}{
		{"explicit pass flag", "1", "", OutcomePass},
		{"explicit fail flag", "0", "Motion failed", OutcomeFail},
		{"zero flag but adopted action", "0", "Adopted by Consent Vote", OutcomePass},
		{"exact adopted as amended", "", "Adopted as Amended", OutcomePass},
		{"exact received", "", "Received", OutcomePass},
		{"exact defeated", "", "Defeated", OutcomeFail},
		{"substring adopted", "", "Motion Adopted Unanimously", OutcomePass},
		{"substring approved lowercase", "", "approved with changes", OutcomePass},
		{"substring failed", "", "Amendment Failed on Roll Call", OutcomeFail},
		{"substring postponed", "", "Postponed to next meeting", OutcomeTabled},
		{"substring tabled", "", "Item tabled", OutcomeTabled},
		{"substring withdrawn", "", "Withdrawn by sponsor", OutcomeWithdrawn},
		{"substring continued", "", "Continued to March", OutcomeContinued},
		{"substring removed", "", "Removed from agenda", OutcomeRemoved},
		{"unknown action flags", "", "Discussed at length", OutcomeFlag},
		{"no signal at all", "", "", OutcomeFlag},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeOutcome(tc.passed, tc.action); got != tc.want {
				t.Errorf("NormalizeOutcome(%q, %q) = %q, want %q", tc.passed, tc.action, got, tc.want)
			}
		})
	}
}

func TestDecodeChoice(t *testing.T) {
	cases := []struct {
		token string
		want  Choice
		ok    bool
	}{
		{"Yes", ChoiceAye, true},
		{"No", ChoiceNay, true},
		{"Absent", ChoiceAbsent, true},
		{"Excused", ChoiceAbsent, true},
		{"Abstain", ChoiceAbstain, true},
		{"Recused", ChoiceRecusal, true},
		{"Present", ChoiceAye, true},
		{"", "", false},
		{"Maybe", "", false},
	}

	for _, tc := range cases {
		got, ok := DecodeChoice(tc.token)
		if ok != tc.ok || got != tc.want {
			t.Errorf("DecodeChoice(%q) = %q/%v, want %q/%v", tc.token, got, ok, tc.want, tc.ok)
		}
	}
}

func TestChoiceSubstantive(t *testing.T) {
	if !ChoiceAye.Substantive() || !ChoiceNay.Substantive() {
		t.Error("AYE and NAY are substantive")
	}
	for _, c := range []Choice{ChoiceAbstain, ChoiceAbsent, ChoiceRecusal} {
		if c.Substantive() {
			t.Errorf("%s should not be substantive", c)
		}
	}
}
