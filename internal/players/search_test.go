package players

import "testing"

func fixtureDataset() *Dataset {
	return Normalize([]Row{
		row("Lautaro Martínez", "ATT", "Inter", 90),
		row("Mario Rui", "DIF", "Napoli", 40),
		row("José Mourinho-typo", "X", "Roma", 0),
	}, nil)
}

func idsOf(ps []*Player) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestSearch_PartialName(t *testing.T) {
	ds := fixtureDataset()
	got := ds.Search("lauta")
	if len(got) != 1 || got[0].Name != "Lautaro Martínez" {
		t.Errorf("Search(lauta) = %v, want exactly Lautaro Martínez", idsOf(got))
	}
}

func TestSearch_AccentInsensitive(t *testing.T) {
	ds := fixtureDataset()
	got := ds.Search("jose")
	if len(got) != 1 || got[0].Name != "José Mourinho-typo" {
		t.Errorf("Search(jose) = %v, want the Mourinho row", idsOf(got))
	}
	// Accented query normalizes to the same thing.
	if got := ds.Search("José"); len(got) != 1 {
		t.Errorf("Search(José) = %v, want 1 match", idsOf(got))
	}
}

func TestSearch_SubstringOfAnyToken(t *testing.T) {
	ds := fixtureDataset()
	// "rtine" sits inside the token "martinez", a substring match on index keys.
	got := ds.Search("rtine")
	if len(got) != 1 || got[0].Name != "Lautaro Martínez" {
		t.Errorf("Search(rtine) = %v, want Lautaro", idsOf(got))
	}
}

func TestSearch_FullNameViaIndex(t *testing.T) {
	ds := fixtureDataset()
	got := ds.Search("lautaro martinez")
	if len(got) != 1 {
		t.Errorf("Search(full name) = %v, want 1 match", idsOf(got))
	}
}

func TestSearch_NoMatchAndEmptyQuery(t *testing.T) {
	ds := fixtureDataset()
	if got := ds.Search("zzz"); len(got) != 0 {
		t.Errorf("Search(zzz) = %v, want none", idsOf(got))
	}
	if got := ds.Search(""); got != nil {
		t.Errorf("Search(\"\") = %v, want nil", idsOf(got))
	}
	if got := ds.Search("!?"); got != nil {
		t.Errorf("Search(punctuation) = %v, want nil", idsOf(got))
	}
}

func TestSearch_NoDuplicatesAcrossKeys(t *testing.T) {
	// "mari" hits both the token "mario" and the full key "mario rui";
	// set membership keeps the player single.
	ds := fixtureDataset()
	got := ds.Search("mari")
	if len(got) != 1 || got[0].ID != "mario_rui" {
		t.Errorf("Search(mari) = %v, want mario_rui once", idsOf(got))
	}
}

func TestSearch_IndexAndScanAgree(t *testing.T) {
	ds := fixtureDataset()
	scan := &Dataset{Players: ds.Players, byID: ds.byID} // Index nil -> linear path

	for _, q := range []string{"ma", "rui", "jose", "lautaro", "o", "zz", "ínez"} {
		a := idsOf(ds.Search(q))
		b := idsOf(scan.Search(q))
		if len(a) != len(b) {
			t.Errorf("q=%q: index %v vs scan %v", q, a, b)
			continue
		}
		set := make(map[string]bool, len(a))
		for _, id := range a {
			set[id] = true
		}
		for _, id := range b {
			if !set[id] {
				t.Errorf("q=%q: scan found %s, index did not", q, id)
			}
		}
	}
}

func TestSearch_EverySubstringFindsPlayer(t *testing.T) {
	// Property from the normalization contract: any length>=2 substring of a
	// player's normalized name must find that player.
	ds := fixtureDataset()
	target := ds.Players[0]
	norm := "lautaro martinez"
	for i := 0; i < len(norm); i++ {
		for j := i + MinQueryLen; j <= len(norm); j++ {
			sub := norm[i:j]
			found := false
			for _, p := range ds.Search(sub) {
				if p == target {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("substring %q did not find %s", sub, target.Name)
			}
		}
	}
}

func TestIndex_InsertionOrderStable(t *testing.T) {
	ds := Normalize([]Row{
		row("Rossi Uno", "ATT", "A", 1),
		row("Rossi Due", "ATT", "B", 2),
	}, nil)
	got := idsOf(ds.Search("rossi"))
	want := []string{"rossi_uno", "rossi_due"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Search(rossi) = %v, want %v (first-inserted first)", got, want)
	}
}

func TestIndex_Len(t *testing.T) {
	ds := fixtureDataset()
	if ds.Index.Len() == 0 {
		t.Error("index has no keys")
	}
	var nilIx *SearchIndex
	if nilIx.Len() != 0 {
		t.Error("nil index Len != 0")
	}
}
