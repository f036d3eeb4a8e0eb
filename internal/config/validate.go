package config

import (
	"fmt"
	"slices"
)

const maxPageSize = 200

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("database.query_timeout must be > 0 (got %v)", c.Database.QueryTimeout)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if !slices.Contains([]string{"json", "text"}, c.Log.Format) {
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Workflow.validate(); err != nil {
		return fmt.Errorf("workflow: %w", err)
	}

	if c.Notifications.DefaultPageSize < 1 || c.Notifications.DefaultPageSize > maxPageSize {
		return fmt.Errorf("notifications.default_page_size must be in [1, %d] (got %d)", maxPageSize, c.Notifications.DefaultPageSize)
	}

	if c.Telemetry.Enabled && c.Telemetry.ServiceName == "" {
		return fmt.Errorf("telemetry.service_name is required when telemetry is enabled")
	}

	return nil
}

func (w *WorkflowConfig) validate() error {
	if w.ApprovedPoints < 0 {
		return fmt.Errorf("approved_points must be >= 0 (got %d)", w.ApprovedPoints)
	}
	if w.ImplementedPoints < 0 {
		return fmt.Errorf("implemented_points must be >= 0 (got %d)", w.ImplementedPoints)
	}
	return nil
}
