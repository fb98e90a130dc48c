package source

// Raw vote tokens the upstream extractions emit. Excused absences fold
// into ABSENT; "Present" is the default affirmative used for consent
// items where attendance stands in for the vote.
var choiceTokens = map[string]Choice{
	"Yes":     ChoiceAye,
	"No":      ChoiceNay,
	"Absent":  ChoiceAbsent,
	"Abstain": ChoiceAbstain,
	"Recused": ChoiceRecusal,
	"Excused": ChoiceAbsent,
	"Present": ChoiceAye,
}

// DecodeChoice maps a raw vote token to its canonical choice. Empty and
// unrecognized tokens yield ok=false, meaning no recorded choice.
func DecodeChoice(token string) (Choice, bool) {
	choice, ok := choiceTokens[token]
	return choice, ok
}
