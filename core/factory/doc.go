// Package factory provides a small generic registry that turns kind-tagged
// raw settings into typed values. Each kind name maps to a Factory that
// decodes the settings (usually with Decode) and returns the concrete value.
//
// Example usage:
//
//	reg := factory.NewRegistry[Sink]()
//	reg.Register("file", func(fields map[string]any) (Sink, error) {
//	    var c struct{ Path string `json:"path"` }
//	    if err := factory.Decode(fields, &c); err != nil {
//	        return nil, err
//	    }
//	    return NewFileSink(c.Path), nil
//	})
//	s, err := reg.Create(factory.Spec{Kind: "file", Fields: map[string]any{"path": "app.log"}})
package factory
