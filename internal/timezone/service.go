package timezone

import (
	"fmt"
	"sync"

	"city-weather/internal/types"

	"github.com/ringsaturn/tzf"
)

// Service resolves the IANA timezone of a coordinate without a network call
type Service interface {
	Lookup(coords types.Coords) (string, error)
}

// finder is the subset of tzf.F the service needs
type finder interface {
	GetTimezoneName(lng float64, lat float64) string
}

type service struct {
	finder finder
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService returns the shared timezone service.
// tzf keeps its polygon data in memory, so the finder is built once per process.
func NewService() (Service, error) {
	once.Do(func() {
		f, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{finder: f}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// Lookup returns names like "America/Denver" or "Europe/London"
func (s *service) Lookup(coords types.Coords) (string, error) {
	name := s.finder.GetTimezoneName(coords.Longitude, coords.Latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", coords.Latitude, coords.Longitude)
	}
	return name, nil
}
