package trust

import (
	"bytes"
	"strings"
	"testing"
)

// SetLevel cascades: the most severe mask bit present enables itself and
// every chattier level below it.
func TestLevelCascade(t *testing.T) {
	prevLevel := SetLevel(ErrorMask)
	defer SetLevel(prevLevel)

	if Level()&DebugMask == 0 {
		t.Errorf("error threshold should cascade down to debug, level is %s", LevelToString())
	}

	SetLevel(StatsMask)
	if Level()&ErrorMask != 0 {
		t.Errorf("stats-only threshold should not enable error, level is %s", LevelToString())
	}
}

func TestMaskingAndPrefixes(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	prevLevel := SetLevel(StatsMask)
	defer SetLevel(prevLevel)

	Errorf("masked error %d", 4)
	Statsf("uart", "retries %d", 2)

	out := buf.String()
	if strings.Contains(out, "masked error") {
		t.Errorf("error line leaked through stats-only mask: %q", out)
	}
	if !strings.Contains(out, "STATS[uart]:retries 2\n") {
		t.Errorf("stats category not rendered: %q", out)
	}
}

func TestPrefixes(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	prevLevel := SetLevel(ErrorMask)
	defer SetLevel(prevLevel)

	Errorf("broke: %d", 4)
	Warnf("iffy")
	out := buf.String()
	if !strings.Contains(out, "ERROR:broke: 4\n") {
		t.Errorf("missing error line in %q", out)
	}
	if !strings.Contains(out, " WARN:iffy\n") {
		t.Errorf("missing warn line in %q", out)
	}
}
