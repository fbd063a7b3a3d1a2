// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities cpu.pprof

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
	rounds := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		r := depot.Factory.NewRegistry()
		buf := make([]depot.Entity, 0, numEntities)

		for range iters {
			buf = buf[:0]
			for range numEntities {
				e, err := r.CreateEntity()
				if err != nil {
					panic(err)
				}
				depot.Assign(e, comp1{V: 1, W: 2})
				depot.Assign(e, comp2{V: 3, W: 4})
				buf = append(buf, e)
			}
			for _, e := range buf {
				r.DestroyEntity(e)
			}
		}
	}
}
