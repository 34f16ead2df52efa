package dns

// ParseRR builds a concrete RR from one scanned zonefile entry (§4.4/§4.5
// integration): it instantiates the registered variant for sc.Type (or
// Unknown), fills in the shared header, then hands the RDATA tokens to the
// variant's parseRData.
func ParseRR(sc *ScannedRR, origin Name) (RR, error) {
	rr := newRRForType(sc.Type)
	h := rr.Header()
	h.Name = sc.Owner
	h.Rrtype = sc.Type
	h.Class = sc.Class
	h.Ttl = sc.Ttl
	toks := newTokenCursor(sc.RData)
	if err := rr.parseRData(toks, origin); err != nil {
		return nil, err
	}
	return rr, nil
}

// ParseZone scans every record in data relative to origin, returning them
// in file order. It stops and returns the first error encountered,
// matching Message.Unpack's all-or-nothing semantics for wire decoding.
func ParseZone(data []byte, origin Name) ([]RR, error) {
	scanner := NewScanner(data)
	state := &ScanState{}
	var rrs []RR
	for {
		sc, err := scanner.ScanRR(state, origin)
		if err == ErrScanEOF {
			return rrs, nil
		}
		if err != nil {
			return nil, err
		}
		rr, err := ParseRR(sc, origin)
		if err != nil {
			return nil, err
		}
		rrs = append(rrs, rr)
	}
}
