package seqhash

import (
	"math/big"
	"math/rand"
	"testing"

	cv "github.com/glycerine/goconvey/convey"
)

// bigHash is the loop written out straight, with
// arbitrary precision and Euclidean modulus.
func bigHash(value, seed int64) int64 {
	h := big.NewInt(seed)
	m := big.NewInt(Modulus)
	for v := value; v > 0; v-- {
		h.Mul(h, big.NewInt(31))
		h.Add(h, big.NewInt(v))
		h.Mod(h, m)
	}
	return h.Int64()
}

func Test001_hash_golden_values(t *testing.T) {

	cv.Convey("Hash should match the reference outputs, starting from v = N", t, func() {
		cv.So(Modulus, cv.ShouldEqual, int64(1<<30))

		cv.So(Hash(1, 0), cv.ShouldEqual, int64(1))
		// v=2 first: h=2; then v=1: 2*31+1
		cv.So(Hash(2, 0), cv.ShouldEqual, int64(63))
		cv.So(Hash(3, 0), cv.ShouldEqual, int64(2946))
		cv.So(Hash(10, 0), cv.ShouldEqual, int64(1025556027))
		cv.So(Hash(1000, 0), cv.ShouldEqual, int64(532507148))
		cv.So(Hash(100000, 0), cv.ShouldEqual, int64(621419696))

		// worker seeds
		cv.So(Hash(1, 4), cv.ShouldEqual, int64(125))
		cv.So(Hash(1000, 4), cv.ShouldEqual, int64(964572688))
		cv.So(Hash(1000, 8), cv.ShouldEqual, int64(322896404))
		cv.So(Hash(100000, 12), cv.ShouldEqual, int64(474033340))
	})

	cv.Convey("a negative seed is floored into [0, Modulus) on the first step", t, func() {
		cv.So(Hash(5, -7), cv.ShouldEqual, int64(878077482))
		cv.So(Hash(1, -1), cv.ShouldEqual, Modulus-30)
	})

	cv.Convey("no step runs for value <= 0", t, func() {
		cv.So(Hash(0, 0), cv.ShouldEqual, int64(0))
		cv.So(Hash(0, 12), cv.ShouldEqual, int64(12))
		cv.So(Hash(-3, -9), cv.ShouldEqual, int64(-9))
	})
}

func Test002_hash_agrees_with_big_int_reference(t *testing.T) {

	cv.Convey("Hash should equal the arbitrary precision loop for random inputs", t, func() {
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 200; i++ {
			value := rng.Int63n(2000) + 1
			seed := rng.Int63() - rng.Int63()
			got := Hash(value, seed)
			cv.So(got, cv.ShouldEqual, bigHash(value, seed))
			cv.So(got, cv.ShouldBeGreaterThanOrEqualTo, int64(0))
			cv.So(got, cv.ShouldBeLessThan, Modulus)
		}
	})
}

func Test003_hash_is_deterministic(t *testing.T) {

	cv.Convey("the same N gives the same result every run", t, func() {
		first := Hash(123457, 0)
		for i := 0; i < 5; i++ {
			cv.So(Hash(123457, 0), cv.ShouldEqual, first)
		}
	})
}

func BenchmarkHash1e6(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Hash(1_000_000, 0)
	}
}
