package components

import "github.com/yohamta/donburi"

// TimeData carries the host scheduler's time step into the systems.
// Singleton, advanced once per tick before the pipeline runs.
type TimeData struct {
	// Delta is the time step for this tick, in seconds. Never negative.
	Delta float64
	// Elapsed is total scene time, in seconds.
	Elapsed float64
}

var Time = donburi.NewComponentType[TimeData]()
