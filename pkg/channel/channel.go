// Package channel models the caller channels allowed to consume the API and
// the read-only registry contract the pipeline validates them against.
// Channel records are owned by an external registry; the pipeline fetches
// them fresh on every request and tolerates staleness.
package channel

import "context"

// ServiceHours is the weekly availability window of a channel. Start and End
// use the "HH:MM:SS" 24-hour format; the window is inclusive of Start and
// exclusive of End.
type ServiceHours struct {
	Days  []string `json:"dias" koanf:"days"`
	Start string   `json:"horaInicio" koanf:"start"`
	End   string   `json:"horaFin" koanf:"end"`
}

// Record describes one caller channel.
type Record struct {
	ID          string        `json:"id" koanf:"id"`
	Code        string        `json:"canal" koanf:"code"`
	Name        string        `json:"nombre" koanf:"name"`
	Description string        `json:"descripcion" koanf:"description"`
	Active      bool          `json:"activo" koanf:"active"`
	Hours       *ServiceHours `json:"horarioServicio,omitempty" koanf:"hours"`
}

// Registry lists the known channels. Implementations front whatever store
// owns the channel collection.
type Registry interface {
	List(ctx context.Context) ([]Record, error)
}

// RegistryFunc adapts a function to the Registry interface.
type RegistryFunc func(ctx context.Context) ([]Record, error)

func (f RegistryFunc) List(ctx context.Context) ([]Record, error) { return f(ctx) }

// Find returns the record whose code equals code, matching exactly and
// case-sensitively. An empty slice simply yields no match.
func Find(records []Record, code string) (Record, bool) {
	for _, r := range records {
		if r.Code == code {
			return r, true
		}
	}
	return Record{}, false
}
