package analysis

import (
	"fmt"

	"github.com/jeduden/proselens/internal/metrics"
	"github.com/jeduden/proselens/internal/recommend"
)

// Setting keys accepted by ApplySettings.
const (
	SettingAdvancedLength    = "advanced-length"
	SettingSampleBasicMax    = "sample-basic-max"
	SettingSampleAdvancedMin = "sample-advanced-min"
	SettingSampleLimit       = "sample-limit"
)

// Options tunes the pipeline. The metrics advanced-length threshold and
// the two sample bounds are separate settings.
type Options struct {
	Metrics metrics.Options
	Sample  recommend.SampleOptions
}

// DefaultOptions returns the built-in pipeline options.
func DefaultOptions() Options {
	return Options{
		Metrics: metrics.DefaultOptions(),
		Sample:  recommend.DefaultSampleOptions(),
	}
}

// ApplySettings overrides options from a config settings map.
func (o *Options) ApplySettings(settings map[string]any) error {
	for k, v := range settings {
		n, ok := toInt(v)
		if !ok {
			return fmt.Errorf("%s must be an integer, got %T", k, v)
		}
		if n < 0 {
			return fmt.Errorf("%s must be >= 0, got %d", k, n)
		}
		switch k {
		case SettingAdvancedLength:
			o.Metrics.AdvancedLength = n
		case SettingSampleBasicMax:
			o.Sample.BasicMaxLength = n
		case SettingSampleAdvancedMin:
			o.Sample.AdvancedMinLength = n
		case SettingSampleLimit:
			o.Sample.Limit = n
		default:
			return fmt.Errorf("unknown setting %q", k)
		}
	}
	return nil
}

// Settings returns the options as a config settings map.
func (o Options) Settings() map[string]any {
	return map[string]any{
		SettingAdvancedLength:    o.Metrics.AdvancedLength,
		SettingSampleBasicMax:    o.Sample.BasicMaxLength,
		SettingSampleAdvancedMin: o.Sample.AdvancedMinLength,
		SettingSampleLimit:       o.Sample.Limit,
	}
}

// DefaultSettings returns the built-in options as a settings map.
func DefaultSettings() map[string]any {
	return DefaultOptions().Settings()
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}
