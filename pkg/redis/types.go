package redis

// HealthStatus represents the health status
type HealthStatus string

const (
	// StatusUp indicates the server answered a ping
	StatusUp HealthStatus = "UP"
	// StatusDown indicates the server could not be reached
	StatusDown HealthStatus = "DOWN"
)
