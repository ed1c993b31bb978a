package main

import "time"

type FPS struct {
	lastUpdate time.Time
	cnt        int
	fps        int
}

func (f *FPS) Update() {
	f.update(time.Now())
}

func (f *FPS) update(now time.Time) {
	if f.lastUpdate.IsZero() {
		f.lastUpdate = now
		return
	}
	f.cnt++
	p := now.Sub(f.lastUpdate)
	if p >= time.Second {
		f.fps = int(float64(f.cnt) / p.Seconds())
		f.cnt = 0
		f.lastUpdate = now
	}
}

func (f *FPS) Fps() int {
	return f.fps
}
