package arcform

import "testing"

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.FitTolerancePx() != 2.0 {
		t.Errorf("FitTolerancePx() = %v, want 2.0", cfg.FitTolerancePx())
	}
	if cfg.CoarseTolerancePx() != 6.0 {
		t.Errorf("CoarseTolerancePx() = %v, want 6.0", cfg.CoarseTolerancePx())
	}
}

func TestNewConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithFitTolerancePx(1.0),
		WithCoarseErrorWeight(4),
		WithObjectSizePx(50),
		WithLineWeightPx(3),
	)
	if cfg.FitTolerancePx() != 1.0 {
		t.Errorf("FitTolerancePx() = %v, want 1.0", cfg.FitTolerancePx())
	}
	if cfg.CoarseTolerancePx() != 4.0 {
		t.Errorf("CoarseTolerancePx() = %v, want 4.0", cfg.CoarseTolerancePx())
	}
	if cfg.ObjectSizePx() != 50 {
		t.Errorf("ObjectSizePx() = %v, want 50", cfg.ObjectSizePx())
	}
	if cfg.LineWeightPx() != 3 {
		t.Errorf("LineWeightPx() = %v, want 3", cfg.LineWeightPx())
	}
}
