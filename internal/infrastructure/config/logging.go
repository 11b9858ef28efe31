package config

// LoggingConfig holds the console logging knobs. Handler logs go to the
// terminal; there is no file logging.
type LoggingConfig struct {
	// Log level: debug, info, warn, error
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`

	// Line format: text, json
	Format string `mapstructure:"format" validate:"required,oneof=text json"`

	// Output stream: stdout, stderr
	Output string `mapstructure:"output" validate:"required,oneof=stdout stderr"`
}
