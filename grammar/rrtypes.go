package grammar

import "strings"

// The handful of RR types this reference grammar recognizes by
// mnemonic; anything else is accepted via RFC 3597 generic notation
// once the TYPEnnn numeric form is given.
const (
	TypeA     uint16 = 1
	TypeNS    uint16 = 2
	TypeCNAME uint16 = 5
	TypeSOA   uint16 = 6
	TypeMX    uint16 = 15
	TypeTXT   uint16 = 16
	TypeAAAA  uint16 = 28
)

const (
	ClassIN uint16 = 1
	ClassCH uint16 = 3
	ClassHS uint16 = 4
)

var mnemonicToType = map[string]uint16{
	"A":     TypeA,
	"NS":    TypeNS,
	"CNAME": TypeCNAME,
	"SOA":   TypeSOA,
	"MX":    TypeMX,
	"TXT":   TypeTXT,
	"AAAA":  TypeAAAA,
}

var mnemonicToClass = map[string]uint16{
	"IN": ClassIN,
	"CH": ClassCH,
	"HS": ClassHS,
}

// ClassByName resolves a class mnemonic (IN, CH, HS) case-insensitively,
// for callers building zone.Options.DefaultClass from configuration.
func ClassByName(name string) (uint16, bool) {
	c, ok := mnemonicToClass[strings.ToUpper(name)]
	return c, ok
}

func typeOf(b []byte) (uint16, bool) {
	s := strings.ToUpper(string(b))
	if t, ok := mnemonicToType[s]; ok {
		return t, true
	}
	if strings.HasPrefix(s, "TYPE") {
		return parseDecimalUint16(s[4:])
	}
	return 0, false
}

func classOf(b []byte) (uint16, bool) {
	s := strings.ToUpper(string(b))
	if c, ok := mnemonicToClass[s]; ok {
		return c, true
	}
	if strings.HasPrefix(s, "CLASS") {
		return parseDecimalUint16(s[5:])
	}
	return 0, false
}

func parseDecimalUint16(s string) (uint16, bool) {
	if s == "" {
		return 0, false
	}
	var v uint32
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + uint32(c-'0')
		if v > 0xFFFF {
			return 0, false
		}
	}
	return uint16(v), true
}
