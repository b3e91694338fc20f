package sandhi

import "testing"

func TestJoinWithinPadaSavarnaDirgha(t *testing.T) {
	if got, want := JoinWithinPada("rAma", "asya"), "rAmAsya"; got != want {
		t.Errorf("JoinWithinPada(rAma,asya) = %q, want %q", got, want)
	}
	if got, want := JoinWithinPada("muni", "indra"), "munIndra"; got != want {
		t.Errorf("JoinWithinPada(muni,indra) = %q, want %q", got, want)
	}
}

func TestJoinWithinPadaGuna(t *testing.T) {
	if got, want := JoinWithinPada("upa", "iti"), "upeti"; got != want {
		t.Errorf("JoinWithinPada(upa,iti) = %q, want %q", got, want)
	}
	if got, want := JoinWithinPada("ca", "uta"), "cota"; got != want {
		t.Errorf("JoinWithinPada(ca,uta) = %q, want %q", got, want)
	}
}

func TestJoinWithinPadaVrddhi(t *testing.T) {
	if got, want := JoinWithinPada("tava", "eva"), "tavEva"; got != want {
		t.Errorf("JoinWithinPada(tava,eva) = %q, want %q", got, want)
	}
}

func TestJoinWithinPadaYanAdesha(t *testing.T) {
	if got, want := JoinWithinPada("iti", "uvAca"), "ityuvAca"; got != want {
		t.Errorf("JoinWithinPada(iti,uvAca) = %q, want %q", got, want)
	}
}

func TestJoinWithinPadaEcoAvAyava(t *testing.T) {
	if got, want := JoinWithinPada("ne", "anam"), "nayanam"; got != want {
		t.Errorf("JoinWithinPada(ne,anam) = %q, want %q", got, want)
	}
}

func TestJoinWithinPadaNoRuleFires(t *testing.T) {
	if got, want := JoinWithinPada("Bav", "ati"), "Bavati"; got != want {
		t.Errorf("JoinWithinPada(Bav,ati) = %q, want %q", got, want)
	}
}

func TestJoinWithinPadaEmptyOperands(t *testing.T) {
	if got := JoinWithinPada("", "ati"); got != "ati" {
		t.Errorf("JoinWithinPada(\"\",ati) = %q", got)
	}
	if got := JoinWithinPada("Bav", ""); got != "Bav" {
		t.Errorf("JoinWithinPada(Bav,\"\") = %q", got)
	}
}

func TestJoinTermsFoldsAcrossTerms(t *testing.T) {
	got := JoinTerms([]string{"rAma", "", "asya"})
	if want := "rAmAsya"; got != want {
		t.Errorf("JoinTerms = %q, want %q", got, want)
	}
}
