package sounds

import "testing"

func TestSetContains(t *testing.T) {
	if !AC.Contains('a') {
		t.Error("AC should contain 'a'")
	}
	if AC.Contains('k') {
		t.Error("AC should not contain 'k'")
	}
	if !HAL.Contains('k') {
		t.Error("HAL should contain 'k'")
	}
	if !JHAL.Contains('k') || !JHAL.Contains('s') {
		t.Error("JHAL should contain obstruents including sibilants")
	}
}

func TestSetUnion(t *testing.T) {
	u := IK.Union(NewSet("fx"))
	for _, c := range "iIuUfFxXfx" {
		if !u.ContainsRune(c) {
			t.Errorf("union should contain %q", c)
		}
	}
}

func TestPatternMatches(t *testing.T) {
	var p Pattern = Byte('k')
	if !p.Matches('k') || p.Matches('g') {
		t.Error("Byte pattern mismatch")
	}
	p = List{'k', 'g'}
	if !p.Matches('k') || !p.Matches('g') || p.Matches('c') {
		t.Error("List pattern mismatch")
	}
	p = AC
	if !p.Matches('a') || p.Matches('k') {
		t.Error("Set pattern mismatch")
	}
}

func TestIsHrasvaIsDirgha(t *testing.T) {
	for _, c := range []byte{'a', 'i', 'u', 'f', 'x'} {
		if !IsHrasva(c) {
			t.Errorf("%q should be hrasva", c)
		}
		if IsDirgha(c) {
			t.Errorf("%q should not be dirgha", c)
		}
	}
	for _, c := range []byte{'A', 'I', 'U', 'F', 'X', 'e', 'E', 'o', 'O'} {
		if !IsDirgha(c) {
			t.Errorf("%q should be dirgha", c)
		}
		if IsHrasva(c) {
			t.Errorf("%q should not be hrasva", c)
		}
	}
}

func TestIsSamyogadiSamyoganta(t *testing.T) {
	if !IsSamyogadi("kriya") {
		t.Error("kriya should be samyogadi (kr- conjunct)")
	}
	if IsSamyogadi("kim") {
		t.Error("kim should not be samyogadi")
	}
	if IsSamyoganta("vAkya") {
		t.Error("vAkya ends in a vowel, should not be samyoganta")
	}
	if !IsSamyoganta("tyakt") {
		t.Error("tyakt ends in kt conjunct, should be samyoganta")
	}
}

func TestGuna(t *testing.T) {
	cases := map[byte]string{'i': "e", 'I': "e", 'u': "o", 'U': "o", 'f': "ar", 'x': "al"}
	for c, want := range cases {
		got, ok := Guna(c)
		if !ok || got != want {
			t.Errorf("Guna(%q) = %q, %v; want %q", c, got, ok, want)
		}
	}
	if _, ok := Guna('k'); ok {
		t.Error("Guna('k') should not be ok")
	}
}

func TestVrddhi(t *testing.T) {
	cases := map[byte]string{'i': "E", 'u': "O", 'f': "Ar", 'x': "Al", 'a': "A", 'e': "E", 'o': "O"}
	for c, want := range cases {
		got, ok := Vrddhi(c)
		if !ok || got != want {
			t.Errorf("Vrddhi(%q) = %q, %v; want %q", c, got, ok, want)
		}
	}
}

func TestValidateSLP1(t *testing.T) {
	ok, _, _ := ValidateSLP1("Bavati")
	if !ok {
		t.Error("Bavati should validate")
	}
	ok, _, _ = ValidateSLP1("qukf\\Y")
	if !ok {
		t.Error("qukf\\Y should validate (accent marker after vowel f)")
	}
	ok, idx, _ := ValidateSLP1("ka1")
	if ok {
		t.Error("ka1 should not validate")
	} else if idx != 2 {
		t.Errorf("expected offending index 2, got %d", idx)
	}
	ok, idx, _ = ValidateSLP1("~aka")
	if ok || idx != 0 {
		t.Errorf("leading '~' should fail at index 0, got ok=%v idx=%d", ok, idx)
	}
	ok, _, _ = ValidateSLP1("a~ka")
	if !ok {
		t.Error("nasal marker after vowel should validate")
	}
}
