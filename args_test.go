package seqhash

import (
	"errors"
	"testing"

	cv "github.com/glycerine/goconvey/convey"
)

func Test010_parse_index(t *testing.T) {

	cv.Convey("ParseIndex should take the last positional argument", t, func() {
		n, err := ParseIndex([]string{"120000000"})
		cv.So(err, cv.ShouldBeNil)
		cv.So(n, cv.ShouldEqual, int64(120000000))

		n, err = ParseIndex([]string{"7", "junk", " 42 "})
		cv.So(err, cv.ShouldBeNil)
		cv.So(n, cv.ShouldEqual, int64(42))

		n, err = ParseIndex([]string{"+9"})
		cv.So(err, cv.ShouldBeNil)
		cv.So(n, cv.ShouldEqual, int64(9))
	})

	cv.Convey("no argument is ErrMissingArgument, exit code 1", t, func() {
		_, err := ParseIndex(nil)
		cv.So(errors.Is(err, ErrMissingArgument), cv.ShouldBeTrue)
		cv.So(ExitCode(err), cv.ShouldEqual, 1)
		cv.So(UserMessage(err), cv.ShouldEqual, "provide test sequence index")
	})

	cv.Convey("non-integers, zero and negatives are ErrInvalidArgument, exit code 2", t, func() {
		for _, bad := range []string{"abc", "", "1.5", "12abc", "0", "-3", "99999999999999999999"} {
			_, err := ParseIndex([]string{bad})
			cv.So(errors.Is(err, ErrInvalidArgument), cv.ShouldBeTrue)
			cv.So(ExitCode(err), cv.ShouldEqual, 2)
			cv.So(UserMessage(err), cv.ShouldEqual, "invalid test sequence index")
		}
	})

	cv.Convey("a nil error is exit code 0", t, func() {
		cv.So(ExitCode(nil), cv.ShouldEqual, 0)
	})
}

func Test011_plan_tasks(t *testing.T) {

	cv.Convey("PlanTasks should seed task i with i*4 over the same value", t, func() {
		tasks := PlanTasks(1000, 4)
		cv.So(len(tasks), cv.ShouldEqual, 4)
		for i, tk := range tasks {
			cv.So(tk.Value, cv.ShouldEqual, int64(1000))
			cv.So(tk.Seed, cv.ShouldEqual, int64(i*4))
		}
		cv.So(len(PlanTasks(5, 0)), cv.ShouldEqual, 0)
	})
}
