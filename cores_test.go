package seqhash

import (
	"runtime"
	"strings"
	"testing"

	cv "github.com/glycerine/goconvey/convey"
)

func Test045_logical_cores_is_the_os_count(t *testing.T) {

	cv.Convey("LogicalCores should agree with the OS, not with cpuid's per-package count", t, func() {
		cv.So(LogicalCores(), cv.ShouldEqual, runtime.NumCPU())
		cv.So(LogicalCores(), cv.ShouldBeGreaterThan, 0)
	})

	cv.Convey("HostSummary carries the OS count", t, func() {
		cv.So(strings.Contains(HostSummary(), "logical processors: "), cv.ShouldBeTrue)
	})
}
