// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/bitdepot/depot"
)

type comp1 struct {
	V, W int64
}

type comp2 struct {
	V, W int64
}

func main() {
	iters := 10000
	entities := 10000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(iters, entities)
	p.Stop()
}

func run(iters, numEntities int) {
	r := depot.Factory.NewRegistry()
	for range numEntities {
		e, err := r.CreateEntity()
		if err != nil {
			panic(err)
		}
		depot.Assign(e, comp1{V: 1, W: 2})
		depot.Assign(e, comp2{V: 3, W: 4})
	}

	for range iters {
		depot.ForJoined2(r, func(_ depot.Entity, a *comp1, b *comp2) {
			a.V += b.V
			a.W += b.W
		})
	}
}
