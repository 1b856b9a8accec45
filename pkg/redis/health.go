package redis

import (
	"context"
	"strconv"
	"time"
)

// RedisHealthCheck represents the health check response for Redis
type RedisHealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthCheck pings the server and reports the pool statistics
func (c *Client) HealthCheck(ctx context.Context) RedisHealthCheck {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	details := map[string]string{
		"address":  c.config.Addr(),
		"database": strconv.Itoa(c.config.Database),
	}

	if err := c.Ping(ctx); err != nil {
		details["message"] = "ping failed: " + err.Error()
		return RedisHealthCheck{Status: StatusDown, Details: details}
	}

	stats := c.Stats()
	details["message"] = string(StatusUp)
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	details["timeouts"] = strconv.FormatUint(uint64(stats.Timeouts), 10)

	return RedisHealthCheck{Status: StatusUp, Details: details}
}
