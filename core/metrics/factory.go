package metrics

import "github.com/kilianp07/scenariolp/core/factory"

var registry = factory.NewRegistry[BuildRecorder]()

func init() {
	_ = registry.Register("nop", func(map[string]any) (BuildRecorder, error) {
		return NopSink{}, nil
	})
}

// Register adds a sink factory under name.
func Register(name string, f factory.Factory[BuildRecorder]) error {
	return registry.Register(name, f)
}

// NewRecorder builds the sinks listed in cfgs. No entries yields a NopSink,
// several yield a MultiSink.
func NewRecorder(cfgs []factory.ModuleConfig) (BuildRecorder, error) {
	switch len(cfgs) {
	case 0:
		return NopSink{}, nil
	case 1:
		return registry.Create(cfgs[0])
	}
	sinks := make([]BuildRecorder, len(cfgs))
	for i, c := range cfgs {
		s, err := registry.Create(c)
		if err != nil {
			return nil, err
		}
		sinks[i] = s
	}
	return NewMultiSink(sinks...), nil
}
