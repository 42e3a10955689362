package metrics

import (
	"context"
	"sync"

	"github.com/kilianp07/scenariolp/core/logger"
	coremetrics "github.com/kilianp07/scenariolp/core/metrics"
	"github.com/kilianp07/scenariolp/core/model"
	"github.com/kilianp07/scenariolp/internal/eventbus"
)

// StartEventCollector forwards builder events from bus to sink until ctx is
// cancelled or the bus is closed. Events buffered at cancellation are still
// recorded. The returned WaitGroup is done once the collector has stopped.
func StartEventCollector(ctx context.Context, bus *eventbus.Bus[model.Event], sink coremetrics.BuildRecorder, log logger.Logger) *sync.WaitGroup {
	var wg sync.WaitGroup
	if bus == nil || sink == nil {
		return &wg
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	sub := bus.Subscribe()
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				drain(sub, sink, log)
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				record(ev, sink, log)
			}
		}
	}()
	return &wg
}

// drain records events already buffered when the collector is stopped.
func drain(sub <-chan model.Event, sink coremetrics.BuildRecorder, log logger.Logger) {
	for {
		select {
		case ev, ok := <-sub:
			if !ok {
				return
			}
			record(ev, sink, log)
		default:
			return
		}
	}
}

func record(ev model.Event, sink coremetrics.BuildRecorder, log logger.Logger) {
	if err := sink.RecordBuild(coremetrics.FromModelEvent(ev)); err != nil {
		log.Warnf("record %s event for %s: %v", ev.Phase, ev.ModelID, err)
	}
}
