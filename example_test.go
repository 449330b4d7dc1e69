package cascade_test

import (
	"fmt"
	"runtime"

	"github.com/zoobzio/cascade"
)

func Example() {
	d := cascade.New[float32]()

	consumer := d.Register(func(v float32) cascade.Status {
		fmt.Println("function called with", v)
		if v > 0 {
			return cascade.Consumed
		}
		return cascade.Continue
	})
	lambda := d.RegisterAt(func(v float32) cascade.Status {
		fmt.Println("lambda called with", v)
		return cascade.Continue
	}, 1)

	d.Dispatch(9)
	d.Dispatch(0)

	first := d.RegisterAt(func(v float32) cascade.Status {
		fmt.Println("higher priority called with", v)
		return cascade.Continue
	}, -1)
	d.Dispatch(-9)

	// Releasing the handle has the same effect once it is collected.
	first.Close()
	d.Dispatch(3.5)

	runtime.KeepAlive(consumer)
	runtime.KeepAlive(lambda)

	// Output:
	// function called with 9
	// function called with 0
	// lambda called with 0
	// higher priority called with -9
	// function called with -9
	// lambda called with -9
	// function called with 3.5
}

func ExampleFilter() {
	d := cascade.New[string]()

	alerts := d.Register(cascade.Filter(
		func(line string) bool { return len(line) > 0 && line[0] == '!' },
		func(line string) cascade.Status {
			fmt.Println("error:", line[1:])
			return cascade.Consumed
		},
	))
	plain := d.RegisterAt(func(line string) cascade.Status {
		fmt.Println("info:", line)
		return cascade.Continue
	}, 1)

	d.Dispatch("started")
	d.Dispatch("!disk full")

	runtime.KeepAlive(alerts)
	runtime.KeepAlive(plain)

	// Output:
	// info: started
	// error: disk full
}

func ExampleDispatcher2() {
	d := cascade.New2[string, int]()

	l := d.Register(func(key string, code int) cascade.Status {
		fmt.Printf("%s pressed (%d)\n", key, code)
		return cascade.Continue
	})

	d.Dispatch("enter", 13)
	fmt.Println(d.Remove(l), d.Remove(l))

	// Output:
	// enter pressed (13)
	// true false
}
