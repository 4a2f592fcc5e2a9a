package integrate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
)

// Configuration keys read by ConfigFrom.
const (
	KeySubdivisions     = "integrate.subdivisions"
	KeyRelativeAccuracy = "integrate.rel.tol"
	KeyAbsoluteAccuracy = "integrate.abs.tol"
	KeyWorkSize         = "integrate.work.size"
)

// ConfigFrom reads a configuration from an application configuration.
// Keys not set take the defaults of MakeConfig, including the derivation of
// the absolute accuracy and the work size. The result is validated.
//
//	conf := koanfadapter.New(nil, "myapp", []string{"nt"})
//	conf.InitDefaults()
//	cfg, err := integrate.ConfigFrom(conf)
func ConfigFrom(conf schuko.Configuration) (Config, error) {
	if conf == nil {
		return DefaultConfig(), nil
	}
	var opts []ConfigOption
	if conf.IsSet(KeySubdivisions) {
		n, err := intSetting(conf, KeySubdivisions)
		if err != nil {
			return Config{}, err
		}
		opts = append(opts, SubdivisionLimit(n))
	}
	if conf.IsSet(KeyRelativeAccuracy) {
		x, err := floatSetting(conf, KeyRelativeAccuracy)
		if err != nil {
			return Config{}, err
		}
		opts = append(opts, RelativeAccuracy(x))
	}
	if conf.IsSet(KeyAbsoluteAccuracy) {
		x, err := floatSetting(conf, KeyAbsoluteAccuracy)
		if err != nil {
			return Config{}, err
		}
		opts = append(opts, AbsoluteAccuracy(x))
	}
	if conf.IsSet(KeyWorkSize) {
		n, err := intSetting(conf, KeyWorkSize)
		if err != nil {
			return Config{}, err
		}
		opts = append(opts, WorkSize(n))
	}
	cfg, err := NewConfig(opts...)
	if err != nil {
		return cfg, err
	}
	tracer().Debugf("integrate: configuration loaded: %v", cfg)
	return cfg, nil
}

// intSetting reads an integer. Configurations differ in how they convert
// strings to ints, so strings are parsed here.
func intSetting(conf schuko.Configuration, key string) (int, error) {
	s := strings.TrimSpace(conf.GetString(key))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &Error{
			Kind:   InvalidInput,
			Detail: fmt.Sprintf("configuration key %q", key),
			Cause:  err,
		}
	}
	return n, nil
}

func floatSetting(conf schuko.Configuration, key string) (float64, error) {
	s := strings.TrimSpace(conf.GetString(key))
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &Error{
			Kind:   InvalidInput,
			Detail: fmt.Sprintf("configuration key %q", key),
			Cause:  err,
		}
	}
	return x, nil
}
