package tuple_test

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	. "github.com/flier/dbvh/pkg/tuple"
)

func ExampleNew2() {
	t := New2("hello", 42)

	fmt.Println(t)
	fmt.Println(t.Unpack())

	// Output:
	// (hello, 42)
	// hello 42
}

func TestTuple2(t *testing.T) {
	Convey("Given a new pair", t, func() {
		p := New2("hello", 42)

		Convey("It should unpack and stringify", func() {
			v0, v1 := p.Unpack()
			So(v0, ShouldEqual, "hello")
			So(v1, ShouldEqual, 42)

			So(p.String(), ShouldEqual, "(hello, 42)")
		})
	})
}
