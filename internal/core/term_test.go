package core

import (
	"testing"

	"github.com/sanskritgo/vyakarana/internal/sounds"
)

func TestMakeUpadeshaMakeText(t *testing.T) {
	u := MakeUpadesha("BU")
	if !u.HasU() || u.U != "BU" || u.Text != "BU" {
		t.Errorf("MakeUpadesha unexpected state: %+v", u)
	}
	plain := MakeText("Bavati")
	if plain.HasU() {
		t.Error("MakeText should leave U unset")
	}
	if plain.Text != "Bavati" {
		t.Errorf("MakeText text = %q", plain.Text)
	}
}

func TestMakeDhatuSetsTagAndGana(t *testing.T) {
	d := MakeDhatu("BU", 1, "")
	if !d.IsDhatu() {
		t.Error("MakeDhatu should tag Dhatu")
	}
	g, ok := d.Gana()
	if !ok || g != 1 {
		t.Errorf("Gana() = %v, %v; want 1, true", g, ok)
	}
}

func TestSoundSelectors(t *testing.T) {
	term := MakeText("Bavati")
	if c, ok := term.Adi(); !ok || c != 'B' {
		t.Errorf("Adi() = %q, %v", c, ok)
	}
	if c, ok := term.Antya(); !ok || c != 'i' {
		t.Errorf("Antya() = %q, %v", c, ok)
	}
	if c, ok := term.Upadha(); !ok || c != 't' {
		t.Errorf("Upadha() = %q, %v", c, ok)
	}
	if c, ok := term.LastVowel(); !ok || c != 'i' {
		t.Errorf("LastVowel() = %q, %v", c, ok)
	}
	empty := MakeText("")
	if _, ok := empty.Adi(); ok {
		t.Error("Adi() on empty term should be (_, false)")
	}
}

func TestHasPredicates(t *testing.T) {
	term := MakeText("Bavati")
	if !term.HasAdi(sounds.Byte('B')) {
		t.Error("HasAdi should match 'B'")
	}
	if !term.HasAntya(sounds.AC) {
		t.Error("HasAntya should match a vowel")
	}
	if term.HasAntya(sounds.HAL) {
		t.Error("HasAntya should not match a consonant set")
	}
}

func TestIsEkacIsSamyogadi(t *testing.T) {
	if !MakeText("kf").IsEkac() {
		t.Error("kf should be ekac")
	}
	if MakeText("BU").IsEkac() == false {
		t.Error("BU (one vowel U) should be ekac")
	}
	if !MakeText("krI").IsSamyogadi() {
		t.Error("krI should be samyogadi")
	}
	if MakeText("kf").IsSamyogadi() {
		t.Error("kf should not be samyogadi")
	}
}

func TestSetAdiSetAntya(t *testing.T) {
	term := MakeText("Bavati")
	term.SetAntya("e")
	if term.Text != "Bavate" {
		t.Errorf("SetAntya result = %q", term.Text)
	}
	term2 := MakeText("gam")
	term2.SetAdi("s")
	if term2.Text != "sam" {
		t.Errorf("SetAdi result = %q", term2.Text)
	}
}

func TestSetAdiAppendsOnEmpty(t *testing.T) {
	term := MakeText("")
	term.SetAdi("a")
	if term.Text != "a" {
		t.Errorf("SetAdi on empty should append, got %q", term.Text)
	}
}

func TestSaveLakshana(t *testing.T) {
	term := MakeUpadesha("gam")
	term.SaveLakshana()
	term.SetU("gaCC")
	if !term.HasLakshana("gam") {
		t.Error("expected former upadesha 'gam' recorded as lakshana")
	}
	if !term.HasAnyLakshana() {
		t.Error("HasAnyLakshana should be true")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	term := MakeUpadesha("BU")
	term.SaveLakshana()
	clone := term.Clone()
	clone.SetText("changed")
	clone.Lakshanas = append(clone.Lakshanas, "extra")
	if term.Text == "changed" {
		t.Error("mutating the clone's text should not affect the original")
	}
	if len(term.Lakshanas) == len(clone.Lakshanas) {
		t.Error("mutating the clone's lakshana slice should not affect the original")
	}
}

func TestIsLaghuIsGuru(t *testing.T) {
	if !MakeText("kf").IsLaghu() {
		t.Error("kf ends in a hrasva vowel, should be laghu")
	}
	if !MakeText("kat").IsLaghu() {
		t.Error("kat has a hrasva upadha before a non-C consonant, should be laghu")
	}
	if MakeText("kA").IsLaghu() {
		t.Error("kA ends in a dirgha vowel, should not be laghu")
	}
	if !MakeText("kA").IsGuru() {
		t.Error("kA should be guru")
	}
}

func TestMaybeSaveSthanivatSkipsAtLopa(t *testing.T) {
	term := MakeText("Bava")
	term.Sthanivat = "Bava"
	term.SetAntya("")
	term.MaybeSaveSthanivat()
	if term.Sthanivat != "Bava" {
		t.Errorf("sthanivat should be preserved across an a-final lopa, got %q", term.Sthanivat)
	}
}

func TestMaybeSaveSthanivatCopiesOtherwise(t *testing.T) {
	term := MakeText("Bavati")
	term.Sthanivat = "Bavati"
	term.SetAntya("e")
	term.MaybeSaveSthanivat()
	if term.Sthanivat != "Bavate" {
		t.Errorf("sthanivat should follow a non-exempt change, got %q", term.Sthanivat)
	}
}
