package integrate

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDefaultConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "integrate")
	defer teardown()
	//
	c := DefaultConfig()
	if c.MaxSubdivisions() != 100 || c.WorkSize() != 400 {
		t.Errorf("unexpected default configuration %v", c)
	}
	if c.RelativeAccuracy() != c.AbsoluteAccuracy() || c.RelativeAccuracy() != DefaultAccuracy {
		t.Errorf("expected both accuracies to be ε^¼, have %v", c)
	}
	if !c.IsValid() {
		t.Errorf("default configuration should be valid")
	}
	if math.Abs(DefaultAccuracy-math.Pow(epsilon, 0.25)) > 1e-18 {
		t.Errorf("expected default accuracy ε^¼, have %g", DefaultAccuracy)
	}
	var zero Config
	if zero.IsValid() {
		t.Errorf("zero configuration should be invalid")
	}
}

func TestValidConfigs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "integrate")
	defer teardown()
	//
	configs := []Config{
		MakeConfig(),
		MakeConfig(SubdivisionLimit(1)),
		MakeConfig(SubdivisionLimit(50), WorkSize(200)),
		MakeConfig(RelativeAccuracy(1e-8), AbsoluteAccuracy(0)),
		MakeConfig(RelativeAccuracy(0), AbsoluteAccuracy(1e-10)),
		MakeConfig(RelativeAccuracy(minRelativeAccuracy), AbsoluteAccuracy(0)),
	}
	for _, c := range configs {
		if !c.IsValid() {
			t.Errorf("expected %v to be valid", c)
		}
		if err := c.Validate(); err != nil {
			t.Errorf("expected %v to validate, have %v", c, err)
		}
	}
}

func TestInvalidConfigs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "integrate")
	defer teardown()
	//
	opts := [][]ConfigOption{
		{SubdivisionLimit(0)},
		{SubdivisionLimit(-5), WorkSize(100)},
		{SubdivisionLimit(50), WorkSize(10)},
		{SubdivisionLimit(50), WorkSize(199)},
		{RelativeAccuracy(1e-20), AbsoluteAccuracy(0)},
		{RelativeAccuracy(0), AbsoluteAccuracy(-1)},
		{SubdivisionLimit(math.MaxInt/2), WorkSize(0)},
		{SubdivisionLimit(math.MaxInt/4 + 1)},
		{SubdivisionLimit(math.MaxInt), WorkSize(math.MaxInt)},
	}
	for _, o := range opts {
		c, err := NewConfig(o...)
		if c.IsValid() {
			t.Errorf("expected %v to be invalid", c)
		}
		if err == nil {
			t.Errorf("expected NewConfig to fail for %v", c)
			continue
		}
		if !errors.Is(err, InvalidInput) || !errors.Is(err, LogicFailure) {
			t.Errorf("expected invalid-input logic error, have %v", err)
		}
		if errors.Is(err, RuntimeFailure) {
			t.Errorf("invalid configuration must not be a runtime failure")
		}
		if out, ok := ResultOf(err); !ok || out != (Outcome{}) {
			t.Errorf("expected zero outcome, have %v", out)
		}
		if c.Validate() == nil {
			t.Errorf("expected Validate to fail for %v", c)
		}
	}
}

func TestHugeSubdivisionLimitIsRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "integrate")
	defer teardown()
	//
	c := MakeConfig(SubdivisionLimit(math.MaxInt/4 + 1))
	if c.WorkSize() < 0 {
		t.Errorf("derived work size must not wrap around, have %d", c.WorkSize())
	}
	_, err := New(c).Evaluate(func(x float64) float64 { return x }, 0, 1)
	if !errors.Is(err, InvalidInput) {
		t.Errorf("expected invalid input instead of an allocation, have %v", err)
	}
	if MakeConfig(SubdivisionLimit(math.MaxInt / 4)).WorkSize() != math.MaxInt/4*4 {
		t.Errorf("expected work size to be derived for the largest limit")
	}
}

func TestConfigCopiesAreIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "integrate")
	defer teardown()
	//
	c := DefaultConfig()
	d := c.WithMaxSubdivisions(1000)
	if c.MaxSubdivisions() != 100 {
		t.Errorf("With… must not modify the receiver")
	}
	if d.IsValid() {
		t.Errorf("expected 1000 subdivisions with work size 400 to be invalid")
	}
	if !d.WithWorkSize(4000).IsValid() {
		t.Errorf("expected raising the work size to repair the configuration")
	}
	if e := c.WithAbsoluteAccuracy(1e-3).WithRelativeAccuracy(1e-5); e.AbsoluteAccuracy() != 1e-3 ||
		e.RelativeAccuracy() != 1e-5 {
		t.Errorf("unexpected accuracies in %v", e)
	}
}

func TestConfigFromTestConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "integrate")
	defer teardown()
	//
	conf := testconfig.Conf{
		KeySubdivisions:     200,
		KeyRelativeAccuracy: 1e-8,
	}
	c, err := ConfigFrom(conf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.MaxSubdivisions() != 200 || c.WorkSize() != 800 {
		t.Errorf("expected 200 subdivisions and derived work size 800, have %v", c)
	}
	if c.RelativeAccuracy() != 1e-8 || c.AbsoluteAccuracy() != 1e-8 {
		t.Errorf("expected accuracies of 1e-8, have %v", c)
	}
	c, err = ConfigFrom(testconfig.Conf{})
	if err != nil || c != DefaultConfig() {
		t.Errorf("expected defaults from an empty configuration, have %v, %v", c, err)
	}
}

func TestConfigFromRejectsBadValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "integrate")
	defer teardown()
	//
	_, err := ConfigFrom(testconfig.Conf{KeyRelativeAccuracy: "tiny"})
	var numErr *strconv.NumError
	if !errors.Is(err, InvalidInput) || !errors.As(err, &numErr) {
		t.Errorf("expected invalid input caused by a parse error, have %v", err)
	}
	_, err = ConfigFrom(testconfig.Conf{KeySubdivisions: "50", KeyWorkSize: "10"})
	if !errors.Is(err, InvalidInput) {
		t.Errorf("expected invalid input for work size 10, have %v", err)
	}
}

func TestConfigFromKoanf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "integrate")
	defer teardown()
	//
	conf := koanfadapter.New(nil, "", nil)
	conf.Set(KeySubdivisions, 250)
	conf.Set(KeyAbsoluteAccuracy, 1e-9)
	c, err := ConfigFrom(conf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.MaxSubdivisions() != 250 || c.WorkSize() != 1000 {
		t.Errorf("expected 250 subdivisions, have %v", c)
	}
	if c.AbsoluteAccuracy() != 1e-9 || c.RelativeAccuracy() != DefaultAccuracy {
		t.Errorf("unexpected accuracies in %v", c)
	}
}
