package metrics

import "github.com/kilianp07/langlog/core/factory"

var recorderRegistry = factory.NewRegistry[Recorder]()

// RegisterRecorder adds a recorder factory identified by kind.
func RegisterRecorder(kind string, f factory.Factory[Recorder]) error {
	return recorderRegistry.Register(kind, f)
}

// NewRecorder creates a Recorder from the provided specs.
func NewRecorder(specs []factory.Spec) (Recorder, error) {
	if len(specs) == 0 {
		return NopRecorder{}, nil
	}
	if len(specs) == 1 {
		return recorderRegistry.Create(specs[0])
	}
	recs := make([]Recorder, len(specs))
	for i, s := range specs {
		r, err := recorderRegistry.Create(s)
		if err != nil {
			return nil, err
		}
		recs[i] = r
	}
	return NewMultiRecorder(recs...), nil
}

// Kinds returns the registered recorder kinds.
func Kinds() []string {
	return recorderRegistry.Kinds()
}
