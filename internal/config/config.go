// Package config loads the settings of the epubmetric command.
package config

// Config is the root configuration.
type Config struct {
	Convert ConvertConfig `yaml:"convert"`
	Log     LogConfig     `yaml:"log"`
}

// ConvertConfig holds conversion settings.
type ConvertConfig struct {
	TitleSuffix  string `yaml:"title_suffix"  env:"EPUBMETRIC_TITLE_SUFFIX"  env-default:"converted to metric"`
	OutputSuffix string `yaml:"output_suffix" env:"EPUBMETRIC_OUTPUT_SUFFIX" env-default:"_converted"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
