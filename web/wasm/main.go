//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-stats/internal/webdemo"
)

var (
	engine *webdemo.Engine
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		typeName := "u8"
		capacity := 16
		if len(args) > 0 {
			typeName = args[0].String()
		}
		if len(args) > 1 {
			capacity = args[1].Int()
		}
		if engine != nil {
			engine.Close()
		}
		e, err := webdemo.NewEngine(typeName, capacity)
		if err != nil {
			return err.Error()
		}
		engine = e
		return js.Null()
	}))

	api.Set("push", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		if err := engine.Push(args[0].Float()); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("pushMany", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		arr := args[0]
		for i := 0; i < arr.Length(); i++ {
			if err := engine.Push(arr.Index(i).Float()); err != nil {
				return err.Error()
			}
		}
		return js.Null()
	}))

	api.Set("stats", export(func(_ []js.Value) any {
		obj := js.Global().Get("Object").New()
		if engine == nil {
			return obj
		}
		s := engine.Stats()
		obj.Set("capacity", s.Capacity)
		obj.Set("full", s.Full)
		obj.Set("max", s.Max)
		obj.Set("min", s.Min)
		obj.Set("mean", s.Mean)
		obj.Set("variance", s.Variance)
		obj.Set("stdev", s.Stdev)
		obj.Set("defined", s.Defined)
		return obj
	}))

	api.Set("window", export(func(_ []js.Value) any {
		if engine == nil {
			return js.Global().Get("Float64Array").New(0)
		}
		w := engine.Window()
		arr := js.Global().Get("Float64Array").New(len(w))
		for i, v := range w {
			arr.SetIndex(i, v)
		}
		return arr
	}))

	api.Set("reset", export(func(_ []js.Value) any {
		if engine != nil {
			engine.Reset()
		}
		return js.Null()
	}))

	js.Global().Set("AlgoStatsDemo", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
