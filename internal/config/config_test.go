package config

import "testing"

func TestParseEnvFileOverridesFields(t *testing.T) {
	content := "BASESTATION_PORT=/dev/ttyACM3\nBASESTATION_VID=0x0483\nBASESTATION_BAUD=9600\n# comment\n\n"
	cfg := &BaseStationConfig{}
	parseEnvFile(content, cfg)

	if cfg.Port != "/dev/ttyACM3" {
		t.Errorf("Port = %q, want /dev/ttyACM3", cfg.Port)
	}
	if cfg.VID != 0x0483 {
		t.Errorf("VID = 0x%04X, want 0x0483", cfg.VID)
	}
	if cfg.Baud != 9600 {
		t.Errorf("Baud = %d, want 9600", cfg.Baud)
	}
}

func TestParseEnvFileIgnoresMalformedLines(t *testing.T) {
	cfg := &BaseStationConfig{}
	parseEnvFile("not a valid line\nBASESTATION_PID=not-hex\n", cfg)

	if cfg.PID != 0 {
		t.Errorf("expected PID to stay 0 on unparsable value, got %d", cfg.PID)
	}
}
