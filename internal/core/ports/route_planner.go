package ports

import "context"

// RoutePlanner is the outbound routing collaborator used by the submission
// distance guard. Implementations must bound the call with a timeout; a
// failure here fails the submission cleanly rather than hanging it.
type RoutePlanner interface {
	// DrivingDistance returns the driving distance in meters between two
	// free-text addresses.
	DrivingDistance(ctx context.Context, origin, destination string) (int, error)
}
