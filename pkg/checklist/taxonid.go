package checklist

import (
	"crypto/md5"
	"encoding/hex"
)

// TaxonID derives the stable identifier of a scientific name:
// '<shortName>:taxon:' followed by the hex MD5 digest of the name.
// The digest covers the name exactly as given, without trimming or case
// folding, so the identifier survives row reordering and re-exports but
// changes with any respelling.
func TaxonID(shortName, name string) string {
	sum := md5.Sum([]byte(name))
	return shortName + ":taxon:" + hex.EncodeToString(sum[:])
}

// AssignTaxonIDs computes and stores the TaxonID of every record in
// place. It returns the number of records with an empty accepted name;
// such records all collapse onto the digest of the empty string and
// deserve a data-quality warning from the caller.
func AssignTaxonIDs(recs []Record, shortName string) int {
	var empty int
	for i := range recs {
		if recs[i].AcceptedName == "" {
			empty++
		}
		recs[i].TaxonID = TaxonID(shortName, recs[i].AcceptedName)
	}
	return empty
}
