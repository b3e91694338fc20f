package kosha

import (
	"encoding/binary"
	"fmt"

	"github.com/sanskritgo/vyakarana/internal/args"
)

// pack serializes an Entry's payload into a compact byte string: a kind
// tag followed by the kind-specific fixed-width fields, mirroring
// vidyut-kosha's PackedEntry bit-packing without needing a dedicated
// bitfield type in Go.
func pack(e Entry) ([]byte, error) {
	switch e.Kind {
	case KindDhatu:
		if e.Dhatu == nil {
			return nil, fmt.Errorf("kosha: KindDhatu entry missing DhatuEntry payload")
		}
		buf := []byte{byte(KindDhatu), byte(e.Dhatu.Gana)}
		return appendString(buf, e.Dhatu.Upadesha), nil
	case KindPratipadika:
		if e.Prati == nil {
			return nil, fmt.Errorf("kosha: KindPratipadika entry missing PratipadikaEntry payload")
		}
		buf := []byte{byte(KindPratipadika), byte(e.Prati.Linga)}
		return appendString(buf, e.Prati.Text), nil
	case KindPada:
		if e.Pada == nil {
			return nil, fmt.Errorf("kosha: KindPada entry missing PadaEntry payload")
		}
		p := e.Pada
		isVerb := byte(0)
		if p.IsVerb {
			isVerb = 1
		}
		buf := []byte{
			byte(KindPada), isVerb,
			byte(p.Linga), byte(p.Vibhakti),
			byte(p.Lakara), byte(p.Purusha), byte(p.Prayoga),
			byte(p.Vacana),
		}
		return appendString(buf, p.Lemma), nil
	default:
		return nil, fmt.Errorf("kosha: unknown entry kind %d", e.Kind)
	}
}

func appendString(buf []byte, s string) []byte {
	var length [2]byte
	binary.LittleEndian.PutUint16(length[:], uint16(len(s)))
	buf = append(buf, length[:]...)
	return append(buf, s...)
}

// unpack reverses pack, given the surface text the entry was stored under.
func unpack(text string, blob []byte) (Entry, error) {
	if len(blob) == 0 {
		return Entry{}, fmt.Errorf("kosha: empty packed entry")
	}
	kind := EntryKind(blob[0])
	switch kind {
	case KindDhatu:
		if len(blob) < 2 {
			return Entry{}, fmt.Errorf("kosha: truncated dhatu entry")
		}
		gana := args.Gana(blob[1])
		lemma, err := readString(blob[2:])
		if err != nil {
			return Entry{}, err
		}
		return Entry{Text: text, Kind: KindDhatu, Dhatu: &DhatuEntry{Upadesha: lemma, Gana: gana}}, nil
	case KindPratipadika:
		if len(blob) < 2 {
			return Entry{}, fmt.Errorf("kosha: truncated pratipadika entry")
		}
		linga := args.Linga(blob[1])
		lemma, err := readString(blob[2:])
		if err != nil {
			return Entry{}, err
		}
		return Entry{Text: text, Kind: KindPratipadika, Prati: &PratipadikaEntry{Text: lemma, Linga: linga}}, nil
	case KindPada:
		if len(blob) < 8 {
			return Entry{}, fmt.Errorf("kosha: truncated pada entry")
		}
		p := &PadaEntry{
			IsVerb:   blob[1] != 0,
			Linga:    args.Linga(blob[2]),
			Vibhakti: args.Vibhakti(blob[3]),
			Lakara:   args.Lakara(blob[4]),
			Purusha:  args.Purusha(blob[5]),
			Prayoga:  args.Prayoga(blob[6]),
			Vacana:   args.Vacana(blob[7]),
		}
		lemma, err := readString(blob[8:])
		if err != nil {
			return Entry{}, err
		}
		p.Lemma = lemma
		return Entry{Text: text, Kind: KindPada, Pada: p}, nil
	default:
		return Entry{}, fmt.Errorf("kosha: unknown packed kind %d", kind)
	}
}

func readString(blob []byte) (string, error) {
	if len(blob) < 2 {
		return "", fmt.Errorf("kosha: truncated string length prefix")
	}
	n := int(binary.LittleEndian.Uint16(blob))
	if len(blob) < 2+n {
		return "", fmt.Errorf("kosha: truncated string payload")
	}
	return string(blob[2 : 2+n]), nil
}
