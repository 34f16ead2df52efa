package dns

import (
	"strconv"
	"strings"
)

// NSEC3 proves denial of existence using hashed owner names (RFC 5155 §3).
type NSEC3 struct {
	Hdr        RRHeader
	HashAlgo   uint8
	Flags      uint8
	Iterations uint16
	Salt       []byte
	NextHashed []byte
	TypeBitmap []Type
}

func (rr *NSEC3) Header() *RRHeader { return &rr.Hdr }

func (rr *NSEC3) packRData(w *Buffer, c *Compressor) error {
	if err := w.WriteU8(rr.HashAlgo); err != nil {
		return err
	}
	if err := w.WriteU8(rr.Flags); err != nil {
		return err
	}
	if err := w.WriteU16(rr.Iterations); err != nil {
		return err
	}
	if err := w.WriteU8(uint8(len(rr.Salt))); err != nil {
		return err
	}
	if err := w.WriteBytes(rr.Salt); err != nil {
		return err
	}
	if err := w.WriteU8(uint8(len(rr.NextHashed))); err != nil {
		return err
	}
	if err := w.WriteBytes(rr.NextHashed); err != nil {
		return err
	}
	return PackTypeBitmap(w, rr.TypeBitmap)
}

func (rr *NSEC3) unpackRData(r *Reader, rdlength int) error {
	algo, err := r.ReadU8()
	if err != nil {
		return err
	}
	flags, err := r.ReadU8()
	if err != nil {
		return err
	}
	iter, err := r.ReadU16()
	if err != nil {
		return err
	}
	saltLen, err := r.ReadU8()
	if err != nil {
		return err
	}
	salt, err := r.ReadBytes(int(saltLen))
	if err != nil {
		return err
	}
	hashLen, err := r.ReadU8()
	if err != nil {
		return err
	}
	hashed, err := r.ReadBytes(int(hashLen))
	if err != nil {
		return err
	}
	types, err := UnpackTypeBitmap(r)
	if err != nil {
		return err
	}
	rr.HashAlgo, rr.Flags, rr.Iterations = algo, flags, iter
	rr.Salt = append([]byte(nil), salt...)
	rr.NextHashed = append([]byte(nil), hashed...)
	rr.TypeBitmap = types
	return nil
}

func (rr *NSEC3) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	algoTok, err := toks.requireNext("hash algorithm")
	if err != nil {
		return err
	}
	flagsTok, err := toks.requireNext("flags")
	if err != nil {
		return err
	}
	iterTok, err := toks.requireNext("iterations")
	if err != nil {
		return err
	}
	saltTok, err := toks.requireNext("salt")
	if err != nil {
		return err
	}
	hashTok, err := toks.requireNext("next hashed owner")
	if err != nil {
		return err
	}
	algo, err := strconv.ParseUint(algoTok, 10, 8)
	if err != nil {
		return newParseError("rdata", "invalid NSEC3 hash algorithm", -1)
	}
	flags, err := strconv.ParseUint(flagsTok, 10, 8)
	if err != nil {
		return newParseError("rdata", "invalid NSEC3 flags", -1)
	}
	iter, err := strconv.ParseUint(iterTok, 10, 16)
	if err != nil {
		return newParseError("rdata", "invalid NSEC3 iterations", -1)
	}
	var salt []byte
	if saltTok != "-" {
		salt, err = hexDecodeLoose(saltTok)
		if err != nil {
			return err
		}
	}
	hashed, err := NewBase32ExtendedHex().WithPadding(0).DecodeString(strings.ToUpper(hashTok))
	if err != nil {
		return err
	}
	var types []Type
	for {
		tok, ok := toks.next()
		if !ok {
			break
		}
		t, err := ParseType(tok)
		if err != nil {
			return err
		}
		types = append(types, t)
	}
	rr.HashAlgo, rr.Flags, rr.Iterations = uint8(algo), uint8(flags), uint16(iter)
	rr.Salt, rr.NextHashed, rr.TypeBitmap = salt, hashed, types
	return nil
}

func (rr *NSEC3) presentRData() string {
	salt := "-"
	if len(rr.Salt) > 0 {
		salt = HexEncode(rr.Salt)
	}
	s := strconv.FormatUint(uint64(rr.HashAlgo), 10) + " " +
		strconv.FormatUint(uint64(rr.Flags), 10) + " " +
		strconv.FormatUint(uint64(rr.Iterations), 10) + " " + salt + " " +
		NewBase32ExtendedHex().WithPadding(0).EncodeToString(rr.NextHashed)
	for _, t := range rr.TypeBitmap {
		s += " " + t.String()
	}
	return s
}

// NSEC3PARAM announces the NSEC3 hashing parameters used by a zone
// (RFC 5155 §4), without the per-name next-hashed-owner and bitmap fields.
type NSEC3PARAM struct {
	Hdr        RRHeader
	HashAlgo   uint8
	Flags      uint8
	Iterations uint16
	Salt       []byte
}

func (rr *NSEC3PARAM) Header() *RRHeader { return &rr.Hdr }

func (rr *NSEC3PARAM) packRData(w *Buffer, c *Compressor) error {
	if err := w.WriteU8(rr.HashAlgo); err != nil {
		return err
	}
	if err := w.WriteU8(rr.Flags); err != nil {
		return err
	}
	if err := w.WriteU16(rr.Iterations); err != nil {
		return err
	}
	if err := w.WriteU8(uint8(len(rr.Salt))); err != nil {
		return err
	}
	return w.WriteBytes(rr.Salt)
}

func (rr *NSEC3PARAM) unpackRData(r *Reader, rdlength int) error {
	algo, err := r.ReadU8()
	if err != nil {
		return err
	}
	flags, err := r.ReadU8()
	if err != nil {
		return err
	}
	iter, err := r.ReadU16()
	if err != nil {
		return err
	}
	saltLen, err := r.ReadU8()
	if err != nil {
		return err
	}
	salt, err := r.ReadBytes(int(saltLen))
	if err != nil {
		return err
	}
	rr.HashAlgo, rr.Flags, rr.Iterations = algo, flags, iter
	rr.Salt = append([]byte(nil), salt...)
	return nil
}

func (rr *NSEC3PARAM) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	algoTok, err := toks.requireNext("hash algorithm")
	if err != nil {
		return err
	}
	flagsTok, err := toks.requireNext("flags")
	if err != nil {
		return err
	}
	iterTok, err := toks.requireNext("iterations")
	if err != nil {
		return err
	}
	saltTok, err := toks.requireNext("salt")
	if err != nil {
		return err
	}
	algo, err := strconv.ParseUint(algoTok, 10, 8)
	if err != nil {
		return newParseError("rdata", "invalid NSEC3PARAM hash algorithm", -1)
	}
	flags, err := strconv.ParseUint(flagsTok, 10, 8)
	if err != nil {
		return newParseError("rdata", "invalid NSEC3PARAM flags", -1)
	}
	iter, err := strconv.ParseUint(iterTok, 10, 16)
	if err != nil {
		return newParseError("rdata", "invalid NSEC3PARAM iterations", -1)
	}
	var salt []byte
	if saltTok != "-" {
		salt, err = hexDecodeLoose(saltTok)
		if err != nil {
			return err
		}
	}
	rr.HashAlgo, rr.Flags, rr.Iterations, rr.Salt = uint8(algo), uint8(flags), uint16(iter), salt
	return nil
}

func (rr *NSEC3PARAM) presentRData() string {
	salt := "-"
	if len(rr.Salt) > 0 {
		salt = HexEncode(rr.Salt)
	}
	return strconv.FormatUint(uint64(rr.HashAlgo), 10) + " " +
		strconv.FormatUint(uint64(rr.Flags), 10) + " " +
		strconv.FormatUint(uint64(rr.Iterations), 10) + " " + salt
}
