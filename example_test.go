package pool_test

import (
	"fmt"
	"reflect"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/host6/pool"
)

func ExampleNewPool() {
	registry := pool.NewRegistry()
	registry.SetInitialCounts(map[reflect.Type]int{pool.TypeOf[*wrapperspb.StringValue](): 2})
	registry.SetDepthReporting(true)
	p := pool.NewPool[wrapperspb.StringValue](pool.WithRegistry(registry))

	data, err := proto.Marshal(wrapperspb.String("hello"))
	if err != nil {
		panic(err)
	}

	msg := p.Get()
	if err := proto.Unmarshal(data, msg); err != nil {
		panic(err)
	}
	fmt.Println(msg.GetValue())

	depth, _ := registry.DepthOf(pool.TypeOf[*wrapperspb.StringValue]())
	fmt.Println(depth)

	p.Release(msg)
	fmt.Println(msg.GetValue() == "", p.Len())

	// Output:
	// hello
	// 1
	// true 2
}
