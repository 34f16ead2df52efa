package dns

// Dedup removes RRs from rrs that are identical once their TTL is
// disregarded, keeping the lowest TTL among duplicates on the surviving
// copy. It preserves the original ordering and reuses the supplied map as
// scratch space if non-nil.
func Dedup(rrs []RR, seen map[string]RR) []RR {
	if seen == nil {
		seen = make(map[string]RR, len(rrs))
	}
	keys := make([]string, len(rrs))
	for i, r := range rrs {
		keys[i] = rrsetKey(r)
	}

	for i, r := range rrs {
		key := keys[i]
		if existing, ok := seen[key]; ok {
			if existing.Header().Ttl > r.Header().Ttl {
				existing.Header().Ttl = r.Header().Ttl
			}
			continue
		}
		seen[key] = r
	}
	if len(seen) == len(rrs) {
		return rrs
	}

	j := 0
	for i, r := range rrs {
		key := keys[i]
		if existing, ok := seen[key]; ok && existing == r {
			delete(seen, key)
			rrs[j] = r
			j++
		}
	}
	return rrs[:j]
}

// rrsetKey renders r's header (minus TTL) and RDATA into a comparison key,
// lower-casing the owner name so dedup is case-insensitive per RFC 4343.
func rrsetKey(r RR) string {
	h := r.Header()
	return h.Name.canonicalKey() + "\x00" + h.Rrtype.String() + "\x00" + h.Class.String() + "\x00" + r.presentRData()
}
