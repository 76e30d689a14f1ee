// Package markers names the anatomical marker roles and turns raw trial data into frames keyed by
// those roles.
package markers

// Lower body markers.
const (
	RASI = "RASI"
	LASI = "LASI"
	RPSI = "RPSI"
	LPSI = "LPSI"
	SACR = "SACR"
	RTHI = "RTHI"
	LTHI = "LTHI"
	RKNE = "RKNE"
	LKNE = "LKNE"
	RTIB = "RTIB"
	LTIB = "LTIB"
	RANK = "RANK"
	LANK = "LANK"
	RTOE = "RTOE"
	LTOE = "LTOE"
	RHEE = "RHEE"
	LHEE = "LHEE"
)

// Upper body markers.
const (
	LFHD = "LFHD"
	RFHD = "RFHD"
	LBHD = "LBHD"
	RBHD = "RBHD"
	C7   = "C7"
	T10  = "T10"
	CLAV = "CLAV"
	STRN = "STRN"
	RSHO = "RSHO"
	LSHO = "LSHO"
	RELB = "RELB"
	LELB = "LELB"
	RWRA = "RWRA"
	RWRB = "RWRB"
	LWRA = "LWRA"
	LWRB = "LWRB"
	RFIN = "RFIN"
	LFIN = "LFIN"
)

// Canonical lists every marker role the calculators read, in a stable order.
var Canonical = []string{
	RASI, LASI, RPSI, LPSI, SACR,
	RTHI, LTHI, RKNE, LKNE, RTIB, LTIB, RANK, LANK, RTOE, LTOE, RHEE, LHEE,
	LFHD, RFHD, LBHD, RBHD,
	C7, T10, CLAV, STRN,
	RSHO, LSHO, RELB, LELB, RWRA, RWRB, LWRA, LWRB, RFIN, LFIN,
}

var canonicalSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Canonical))
	for _, name := range Canonical {
		set[name] = struct{}{}
	}
	return set
}()

// IsCanonical reports whether name is a known marker role.
func IsCanonical(name string) bool {
	_, ok := canonicalSet[name]
	return ok
}
