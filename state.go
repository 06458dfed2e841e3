package zone

// The accessors below expose the per-frame bookkeeping a RecordHandler
// needs to implement RFC 1035's owner/class/ttl inheritance rules
// (an omitted owner repeats the previous record's; an omitted class or
// ttl falls back to the file's running default) without reaching into
// Parser's unexported fields directly.

// Origin returns the current frame's $ORIGIN, in wire format.
func (p *Parser) Origin() Name {
	return p.file.origin
}

// SetOrigin installs a new $ORIGIN for the current frame, in wire
// format (already validated and length-prefixed).
func (p *Parser) SetOrigin(wire []byte) {
	installOrigin(p.file, wire)
}

// LastOwner returns the owner name of the previous record in the
// current frame, or the zero Name if none has been seen yet.
func (p *Parser) LastOwner() Name {
	return p.file.owner
}

// SetLastOwner records owner as the owner of the record just parsed,
// copying it into the NameBuffer the frame took from the pool when it
// was opened.
func (p *Parser) SetLastOwner(owner []byte) {
	buf := p.file.ownerBuf
	buf.Length = uint8(len(owner))
	copy(buf.Octets[:], owner)
	p.file.owner = Name{Octets: buf.Octets[:len(owner)]}
}

// NextOwnerBuffer rotates to the next NameBuffer slot in the pool,
// for a RecordHandler that wants to build an owner name itself before
// calling SetLastOwner.
func (p *Parser) NextOwnerBuffer() *NameBuffer {
	return p.ring.nextOwner()
}

// NextRDATABuffer rotates to the next RDATABuffer slot in the pool.
func (p *Parser) NextRDATABuffer() *RDATABuffer {
	return p.ring.nextRDATA()
}

// LastType returns the RR type of the previous record in the current
// frame.
func (p *Parser) LastType() uint16 { return p.file.lastType }

// SetLastType records the RR type of the record just parsed.
func (p *Parser) SetLastType(t uint16) { p.file.lastType = t }

// LastClass returns the RR class currently in effect for the current
// frame (either inherited or set by the most recent record).
func (p *Parser) LastClass() uint16 { return p.file.lastClass }

// SetLastClass updates the RR class in effect for the current frame.
func (p *Parser) SetLastClass(c uint16) { p.file.lastClass = c }

// LastTTL returns the TTL currently in effect for the current frame.
func (p *Parser) LastTTL() uint32 { return p.file.lastTTL }

// SetLastTTL updates the TTL in effect for the current frame.
func (p *Parser) SetLastTTL(ttl uint32) { p.file.lastTTL = ttl }

// DefaultTTL returns the frame's $TTL default (Options.DefaultTTL
// until changed by a $TTL directive).
func (p *Parser) DefaultTTL() uint32 { return p.file.defaultTTL }

// SetDefaultTTL updates the frame's $TTL default.
func (p *Parser) SetDefaultTTL(ttl uint32) { p.file.defaultTTL = ttl }

// Secondary reports Options.Secondary, which a RecordHandler consults
// to relax checks that only make sense for an authored, primary zone
// (e.g. AXFR-transferred zones need not enforce SOA-first ordering).
// It has no bearing on $INCLUDE; see NoIncludes.
func (p *Parser) Secondary() bool { return p.options.Secondary }

// NoIncludes reports Options.NoIncludes, which a RecordHandler consults
// to decide whether $INCLUDE is permitted.
func (p *Parser) NoIncludes() bool { return p.options.NoIncludes }

// FriendlyTTLs reports Options.FriendlyTTLs.
func (p *Parser) FriendlyTTLs() bool { return p.options.FriendlyTTLs }

// Include resolves and pushes a frame for a $INCLUDE target, honoring
// Options.NoIncludes and Options.Open.
func (p *Parser) Include(path string) error {
	return p.include(path)
}

// Log emits a message through the configured LogFunc at category,
// tagged with the current file/line/session.
func (p *Parser) Log(category LogCategory, function, message string) {
	p.logf(category, function, message)
}

// Fail builds and logs a *Error for status without returning early,
// so a RecordHandler can report a syntax/semantic error using the same
// log plumbing the core uses for its own errors.
func (p *Parser) Fail(status Status, function, message string) error {
	return p.fail(status, function, message)
}
