package hash

import (
	"encoding/binary"

	cristalbase64 "github.com/cristalhq/base64"
	"github.com/glycerine/blake3"
)

const prefix = "blake3.33B-"

// OfResults fingerprints an ordered result vector: each
// value is fed to blake3 as 8 little-endian bytes, in
// order, so the same results in a different order give
// a different digest. The output starts with the
// "blake3.33B-" prefix.
func OfResults(results []int64) string {
	h := blake3.New(64, nil)
	var buf [8]byte
	for _, r := range results {
		binary.LittleEndian.PutUint64(buf[:], uint64(r))
		h.Write(buf[:])
	}
	return RawSumBytesToString(h.Sum(nil))
}

// if you already have the Hasher.Sum() output:
func RawSumBytesToString(by []byte) string {
	return prefix + cristalbase64.URLEncoding.EncodeToString(by[:33])
}
