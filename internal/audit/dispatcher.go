package audit

import (
	"log"

	"github.com/google/uuid"
)

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(ev); err != nil {
			log.Println("audit error:", err)
		}
	}
}

// Dispatch queues an event without ever blocking the request path. A full
// queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}

	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}
