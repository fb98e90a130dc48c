package roster

import (
	"testing"

	"gavel/internal/source"
	"gavel/internal/taxonomy"
)

func mustTaxonomy(t *testing.T) *taxonomy.Taxonomy {
	t.Helper()
	tax, err := taxonomy.Default()
	if err != nil {
		t.Fatalf("taxonomy.Default: %v", err)
	}
	return tax
}

func record(date string, tag source.Tag, votes map[string]source.Choice) source.RawRecord {
	return source.RawRecord{EventDate: date, Source: tag, MemberVotes: votes, Voted: true}
}

func TestBuildSortsByLastNameAndAssignsIDs(t *testing.T) {
	records := []source.RawRecord{
		record("2024-01-09", source.Tag{Year: 2024}, map[string]source.Choice{
			"Jackie Goldberg": source.ChoiceAye,
			"Nick Melvoin":    source.ChoiceAye,
			"Kelly Gonez":     source.ChoiceNay,
			"George McKenna":  source.ChoiceAye,
		}),
	}

	registry := Build(records, mustTaxonomy(t), nil)
	want := []string{"Jackie Goldberg", "Kelly Gonez", "George McKenna", "Nick Melvoin"}
	if len(registry.Members) != len(want) {
		t.Fatalf("got %d members, want %d", len(registry.Members), len(want))
	}
	for i, member := range registry.Members {
		if member.FullName != want[i] {
			t.Errorf("member %d = %q, want %q", i, member.FullName, want[i])
		}
		if member.ID != i+1 {
			t.Errorf("member %q id = %d, want %d", member.FullName, member.ID, i+1)
		}
		if member.Position != "Board Member" {
			t.Errorf("member %q position = %q", member.FullName, member.Position)
		}
	}
}

func TestBuildIDsIndependentOfRecordOrder(t *testing.T) {
	a := record("2024-01-09", source.Tag{Year: 2024}, map[string]source.Choice{"Jackie Goldberg": source.ChoiceAye})
	b := record("2024-02-13", source.Tag{Year: 2024}, map[string]source.Choice{"Nick Melvoin": source.ChoiceNay})

	forward := Build([]source.RawRecord{a, b}, mustTaxonomy(t), nil)
	reversed := Build([]source.RawRecord{b, a}, mustTaxonomy(t), nil)

	for i := range forward.Members {
		if forward.Members[i].FullName != reversed.Members[i].FullName ||
			forward.Members[i].ID != reversed.Members[i].ID {
			t.Fatalf("id assignment depends on record order: %+v vs %+v",
				forward.Members[i], reversed.Members[i])
		}
	}
}

func TestBuildCurrentStatusFollowsLatestBatch(t *testing.T) {
	old := source.Tag{Year: 2020, Quarter: 1}
	newer := source.Tag{Year: 2024}
	records := []source.RawRecord{
		record("2020-02-04", old, map[string]source.Choice{
			"Jackie Goldberg":  source.ChoiceAye,
			"Richard Vladovic": source.ChoiceAye,
		}),
		record("2024-03-12", newer, map[string]source.Choice{
			"Jackie Goldberg": source.ChoiceNay,
		}),
	}

	registry := Build(records, mustTaxonomy(t), nil)

	goldberg, ok := registry.Lookup("Jackie Goldberg")
	if !ok || !goldberg.IsCurrent {
		t.Errorf("Goldberg should be current: %+v", goldberg)
	}
	if goldberg.EndDate != "" {
		t.Errorf("current member EndDate should be empty, got %q", goldberg.EndDate)
	}
	if goldberg.StartDate != "2020-02-04" {
		t.Errorf("StartDate = %q, want first observed date", goldberg.StartDate)
	}

	vladovic, ok := registry.Lookup("Richard Vladovic")
	if !ok || vladovic.IsCurrent {
		t.Errorf("Vladovic should be former: %+v", vladovic)
	}
	if vladovic.EndDate != "2020-02-04" {
		t.Errorf("former member EndDate = %q, want last observed date", vladovic.EndDate)
	}
}

func TestShortNames(t *testing.T) {
	tax := mustTaxonomy(t)
	cases := []struct {
		full string
		want string
	}{
		{"Jackie Goldberg", "Goldberg"},
		{"George McKenna III", "McKenna III"},
		{"Tanya Ortiz Franklin", "Ortiz Franklin"},
		{"Sherlett H. Newbill", "Newbill"},
	}
	for _, tc := range cases {
		if got := shortName(tc.full, tax); got != tc.want {
			t.Errorf("shortName(%q) = %q, want %q", tc.full, got, tc.want)
		}
	}
}

func TestRegistryLookups(t *testing.T) {
	records := []source.RawRecord{
		record("2024-01-09", source.Tag{Year: 2024}, map[string]source.Choice{"Jackie Goldberg": source.ChoiceAye}),
	}
	registry := Build(records, mustTaxonomy(t), nil)

	member, ok := registry.Lookup("Jackie Goldberg")
	if !ok {
		t.Fatal("Lookup failed")
	}
	byID, ok := registry.ByID(member.ID)
	if !ok || byID.FullName != member.FullName {
		t.Errorf("ByID mismatch: %+v", byID)
	}
	if _, ok := registry.Lookup("Nobody"); ok {
		t.Error("Lookup should miss unknown names")
	}
}
