package logging

import (
	"fmt"

	"studioops/internal/config"
)

// Manager manages the logging system initialization and configuration
type Manager struct {
	logger *MultiLogger
}

// NewManager creates a new logging manager
func NewManager() *Manager {
	return &Manager{
		logger: NewMultiLogger(),
	}
}

// Initialize initializes the logging system from configuration
func (m *Manager) Initialize(cfg *config.Config) error {
	level := ParseLogLevel(cfg.Logging.Level)
	m.logger.SetLevel(level)

	// If adapter configuration is provided, use it
	if len(cfg.Logging.Adapters) > 0 {
		return m.initializeFromAdapters(cfg)
	}

	// Fallback to legacy output/format configuration
	return m.initializeFromLegacyConfig(cfg)
}

func (m *Manager) initializeFromAdapters(cfg *config.Config) error {
	for _, ac := range cfg.Logging.Adapters {
		if !ac.Enabled {
			continue
		}

		adapter, err := m.createAdapter(ac.Name, ac.Type, ac.Options)
		if err != nil {
			return fmt.Errorf("failed to create adapter %s: %w", ac.Name, err)
		}

		m.logger.AddAdapter(adapter)
	}

	return nil
}

func (m *Manager) initializeFromLegacyConfig(cfg *config.Config) error {
	switch cfg.Logging.Output {
	case "stdout", "":
		m.logger.AddAdapter(NewStdoutAdapter("stdout", cfg.Logging.Format))
	default:
		adapter, err := NewFileAdapter("file", cfg.Logging.Output, cfg.Logging.Format)
		if err != nil {
			return fmt.Errorf("failed to create file adapter: %w", err)
		}
		m.logger.AddAdapter(adapter)
	}

	return nil
}

func (m *Manager) createAdapter(name, adapterType string, options map[string]interface{}) (LogAdapter, error) {
	switch adapterType {
	case "stdout":
		format := getStringOption(options, "format", "json")
		return NewStdoutAdapter(name, format), nil
	case "file":
		path := getStringOption(options, "path", "")
		if path == "" {
			return nil, fmt.Errorf("file adapter requires a path option")
		}
		format := getStringOption(options, "format", "json")
		return NewFileAdapter(name, path, format)
	default:
		return nil, fmt.Errorf("unknown adapter type: %s", adapterType)
	}
}

func getStringOption(options map[string]interface{}, key, defaultValue string) string {
	if v, ok := options[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return defaultValue
}

// GetLogger returns the configured logger
func (m *Manager) GetLogger() Logger {
	return m.logger
}

// Close closes the logging system
func (m *Manager) Close() error {
	return m.logger.Close()
}

// Global logging manager instance
var globalManager *Manager

// InitializeLogging initializes the global logging system
func InitializeLogging(cfg *config.Config) error {
	globalManager = NewManager()
	return globalManager.Initialize(cfg)
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() Logger {
	if globalManager == nil {
		// Fallback logger when logging hasn't been initialized yet
		fallback := NewMultiLogger()
		fallback.AddAdapter(NewStdoutAdapter("stdout", "text"))
		return fallback
	}
	return globalManager.GetLogger()
}

// CloseLogging closes the global logging system
func CloseLogging() error {
	if globalManager == nil {
		return nil
	}
	return globalManager.Close()
}

// LogWithRequestID returns a logger with the request ID field attached
func LogWithRequestID(requestID string) Logger {
	return GetGlobalLogger().WithField("request_id", requestID)
}
