package dns

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LOC carries geographic location information (RFC 1876). Latitude and
// longitude are stored on the wire as RFC 1876 §2's milliarcsecond-offset
// uint32s; size/horiz/vert precision use the base*10^exponent nibble
// encoding from the same section.
type LOC struct {
	Hdr       RRHeader
	Version   uint8
	Size      uint8 // base*10^exp encoded centimeters
	HorizPre  uint8
	VertPre   uint8
	Latitude  uint32 // 2^31 + milliarcseconds north of the equator
	Longitude uint32 // 2^31 + milliarcseconds east of the prime meridian
	Altitude  uint32 // centimeters above -100000m
}

const locEquator = uint32(1) << 31
const locAltBase = int64(10000000) // -100000m expressed in centimeters

func (rr *LOC) Header() *RRHeader { return &rr.Hdr }

func (rr *LOC) packRData(w *Buffer, c *Compressor) error {
	if err := w.WriteU8(rr.Version); err != nil {
		return err
	}
	if err := w.WriteU8(rr.Size); err != nil {
		return err
	}
	if err := w.WriteU8(rr.HorizPre); err != nil {
		return err
	}
	if err := w.WriteU8(rr.VertPre); err != nil {
		return err
	}
	if err := w.WriteU32(rr.Latitude); err != nil {
		return err
	}
	if err := w.WriteU32(rr.Longitude); err != nil {
		return err
	}
	return w.WriteU32(rr.Altitude)
}

func (rr *LOC) unpackRData(r *Reader, rdlength int) error {
	ver, err := r.ReadU8()
	if err != nil {
		return err
	}
	size, err := r.ReadU8()
	if err != nil {
		return err
	}
	hp, err := r.ReadU8()
	if err != nil {
		return err
	}
	vp, err := r.ReadU8()
	if err != nil {
		return err
	}
	lat, err := r.ReadU32()
	if err != nil {
		return err
	}
	lon, err := r.ReadU32()
	if err != nil {
		return err
	}
	alt, err := r.ReadU32()
	if err != nil {
		return err
	}
	rr.Version, rr.Size, rr.HorizPre, rr.VertPre = ver, size, hp, vp
	rr.Latitude, rr.Longitude, rr.Altitude = lat, lon, alt
	return nil
}

// locPowerOf10 decodes the base*10^exponent nibble encoding used by LOC's
// size/horiz/vert precision bytes, in centimeters.
func locPowerOf10(b uint8) uint64 {
	base := uint64(b >> 4)
	exp := uint64(b & 0x0f)
	v := base
	for i := uint64(0); i < exp; i++ {
		v *= 10
	}
	return v
}

// encodeLocPowerOf10 finds the nibble pair whose base*10^exp best
// approximates v centimeters, preferring the largest exponent that does
// not overshoot.
func encodeLocPowerOf10(v uint64) uint8 {
	// Walk exponents from high to low, picking the first where the
	// quotient is at least 1; the base is that quotient, capped at 9.
	var bestExp, bestBase uint64
	for e := uint64(9); ; e-- {
		div := uint64(1)
		for i := uint64(0); i < e; i++ {
			div *= 10
		}
		if v/div >= 1 || e == 0 {
			base := v / div
			if base > 9 {
				base = 9
			}
			bestExp, bestBase = e, base
			break
		}
	}
	return uint8(bestBase<<4) | uint8(bestExp)
}

func (rr *LOC) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	lat, err := parseLocAngle(toks, true)
	if err != nil {
		return err
	}
	lon, err := parseLocAngle(toks, false)
	if err != nil {
		return err
	}
	alt, err := parseLocAltitude(toks)
	if err != nil {
		return err
	}
	size := uint64(100) // 1m default
	hp := uint64(1000000)
	vp := uint64(1000)
	if tok, ok := toks.next(); ok {
		size, err = parseLocMeters(tok)
		if err != nil {
			return err
		}
		if tok, ok := toks.next(); ok {
			hp, err = parseLocMeters(tok)
			if err != nil {
				return err
			}
			if tok, ok := toks.next(); ok {
				vp, err = parseLocMeters(tok)
				if err != nil {
					return err
				}
			}
		}
	}
	rr.Version = 0
	rr.Latitude, rr.Longitude, rr.Altitude = lat, lon, alt
	rr.Size = encodeLocPowerOf10(size)
	rr.HorizPre = encodeLocPowerOf10(hp)
	rr.VertPre = encodeLocPowerOf10(vp)
	return nil
}

// parseLocMeters parses a value like "10000m" or "0.01m" into centimeters.
func parseLocMeters(tok string) (uint64, error) {
	tok = strings.TrimSuffix(tok, "m")
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil || f < 0 {
		return 0, newParseError("rdata", "invalid LOC size/precision "+tok, -1)
	}
	return uint64(math.Round(f * 100)), nil
}

// parseLocAngle consumes "deg min sec dir" (min/sec optional) and returns
// the RFC 1876 2^31-centered milliarcsecond wire value.
func parseLocAngle(toks *tokenCursor, isLat bool) (uint32, error) {
	degTok, err := toks.requireNext("degrees")
	if err != nil {
		return 0, err
	}
	deg, err := strconv.Atoi(degTok)
	if err != nil {
		return 0, newParseError("rdata", "invalid LOC degrees", -1)
	}
	min, sec := 0, 0.0
	next, ok := toks.next()
	if !ok {
		return 0, newParseError("rdata", "incomplete LOC angle", -1)
	}
	dir := next
	if isLocDirection(next) {
		dir = next
	} else {
		min, err = strconv.Atoi(next)
		if err != nil {
			return 0, newParseError("rdata", "invalid LOC minutes", -1)
		}
		next, ok = toks.next()
		if !ok {
			return 0, newParseError("rdata", "incomplete LOC angle", -1)
		}
		if isLocDirection(next) {
			dir = next
		} else {
			sec, err = strconv.ParseFloat(next, 64)
			if err != nil {
				return 0, newParseError("rdata", "invalid LOC seconds", -1)
			}
			dir, err = toks.requireNext("direction")
			if err != nil {
				return 0, err
			}
		}
	}
	milliarcsec := (float64(deg)*3600 + float64(min)*60 + sec) * 1000
	val := int64(math.Round(milliarcsec))
	switch strings.ToUpper(dir) {
	case "N", "E":
		return locEquator + uint32(val), nil
	case "S", "W":
		return locEquator - uint32(val), nil
	default:
		return 0, newParseError("rdata", "invalid LOC direction "+dir, -1)
	}
}

func isLocDirection(s string) bool {
	switch strings.ToUpper(s) {
	case "N", "S", "E", "W":
		return true
	}
	return false
}

// parseLocAltitude consumes "<float>m" meters above/below sea level.
func parseLocAltitude(toks *tokenCursor) (uint32, error) {
	tok, err := toks.requireNext("altitude")
	if err != nil {
		return 0, err
	}
	tok = strings.TrimSuffix(tok, "m")
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, newParseError("rdata", "invalid LOC altitude "+tok, -1)
	}
	cm := int64(math.Round(f*100)) + locAltBase
	if cm < 0 || cm > math.MaxUint32 {
		return 0, newRangeError("rdata", "LOC altitude out of range")
	}
	return uint32(cm), nil
}

func (rr *LOC) presentRData() string {
	latDeg, latMin, latSec, latDir := formatLocAngle(rr.Latitude, true)
	lonDeg, lonMin, lonSec, lonDir := formatLocAngle(rr.Longitude, false)
	altMeters := (float64(rr.Altitude) - float64(locAltBase)) / 100
	sizeM := float64(locPowerOf10(rr.Size)) / 100
	hpM := float64(locPowerOf10(rr.HorizPre)) / 100
	vpM := float64(locPowerOf10(rr.VertPre)) / 100
	return fmt.Sprintf("%d %d %.3f %s %d %d %.3f %s %.2fm %.2fm %.2fm %.2fm",
		latDeg, latMin, latSec, latDir,
		lonDeg, lonMin, lonSec, lonDir,
		altMeters, sizeM, hpM, vpM)
}

func formatLocAngle(v uint32, isLat bool) (deg, min int, sec float64, dir string) {
	var signed int64
	positive := v >= locEquator
	if positive {
		signed = int64(v - locEquator)
	} else {
		signed = int64(locEquator - v)
	}
	total := float64(signed) / 1000
	deg = int(total / 3600)
	rem := total - float64(deg)*3600
	min = int(rem / 60)
	sec = rem - float64(min)*60
	if isLat {
		if positive {
			dir = "N"
		} else {
			dir = "S"
		}
	} else {
		if positive {
			dir = "E"
		} else {
			dir = "W"
		}
	}
	return
}
