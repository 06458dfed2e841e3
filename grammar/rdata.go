package grammar

import (
	"bytes"
	"encoding/hex"
	"strconv"
)

// maybeDecodeGeneric recognizes RFC 3597 generic RDATA notation
// (`\# <length> <hex...>`) and, when well-formed, replaces it with the
// decoded raw octets; any other input — including a malformed generic
// record, left for the caller to reject — passes through unchanged.
// Ported from the `strncmp(token->data, "\\#", 2)` check in the
// original C grammar layer's parse_rr.
func maybeDecodeGeneric(raw []byte) []byte {
	if !bytes.HasPrefix(raw, []byte(`\# `)) {
		return raw
	}
	fields := bytes.Fields(raw)
	if len(fields) < 2 {
		return raw
	}
	length, err := strconv.Atoi(string(fields[1]))
	if err != nil || length < 0 {
		return raw
	}

	hexDigits := bytes.Join(fields[2:], nil)
	decoded, err := hex.DecodeString(string(hexDigits))
	if err != nil || len(decoded) != length {
		return raw
	}
	return decoded
}
