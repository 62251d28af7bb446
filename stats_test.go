package seqhash

import (
	"strings"
	"testing"
	"time"

	cv "github.com/glycerine/goconvey/convey"
)

func Test050_sampler_quantiles(t *testing.T) {

	cv.Convey("an empty Sampler reports zeros", t, func() {
		s := NewSampler()
		cv.So(s.Count(), cv.ShouldEqual, 0)
		cv.So(s.Quantile(0.5), cv.ShouldEqual, time.Duration(0))
		cv.So(s.Slowest(), cv.ShouldEqual, time.Duration(0))
	})

	cv.Convey("the Sampler should track count, slowest and a sane median", t, func() {
		s := NewSampler()
		for i := 1; i <= 100; i++ {
			s.Add(time.Duration(i) * time.Millisecond)
		}
		cv.So(s.Count(), cv.ShouldEqual, 100)
		cv.So(s.Slowest(), cv.ShouldEqual, 100*time.Millisecond)

		q50 := s.Quantile(0.5)
		cv.So(q50, cv.ShouldBeGreaterThan, 40*time.Millisecond)
		cv.So(q50, cv.ShouldBeLessThan, 60*time.Millisecond)
		cv.So(s.Quantile(0.99), cv.ShouldBeGreaterThanOrEqualTo, q50)

		cv.So(strings.HasPrefix(s.String(), "reps=100 "), cv.ShouldBeTrue)
	})
}

func Test051_wall_timer_line(t *testing.T) {

	cv.Convey("TimeLine renders whole milliseconds", t, func() {
		cv.So(TimeLine(1670*time.Millisecond+400*time.Microsecond), cv.ShouldEqual, "time: 1670ms")
		cv.So(TimeLine(0), cv.ShouldEqual, "time: 0ms")

		w := NewWallTimer()
		cv.So(timeLineRegex.MatchString(w.Line()), cv.ShouldBeTrue)
		cv.So(w.Elapsed(), cv.ShouldBeGreaterThanOrEqualTo, time.Duration(0))
	})
}
