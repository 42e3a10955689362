// Package factory builds pluggable modules from configuration blocks of the
// form {type, conf}. A Registry maps each type name to a constructor that
// decodes conf into its own settings struct with Decode.
//
//	reg := factory.NewRegistry[metrics.BuildRecorder]()
//	_ = reg.Register("nop", func(map[string]any) (metrics.BuildRecorder, error) {
//	    return metrics.NopSink{}, nil
//	})
//	sink, err := reg.Create(factory.ModuleConfig{Type: "nop"})
package factory
