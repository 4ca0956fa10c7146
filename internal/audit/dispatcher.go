package audit

import "log"

// Dispatcher hands events to its sink from a single background worker so
// audit writes never sit on the request path.
type Dispatcher struct {
	sink  Sink
	queue chan Event
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Record(ev); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// full queue: drop the event rather than block the API
		log.Println("audit queue full, dropping event")
	}
}
