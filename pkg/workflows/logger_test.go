package workflows

import (
	"bytes"
	"strings"
	"testing"

	"github.com/baustelle-app/lager/pkg/logger"
)

func TestLogger_WritesThroughWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(logger.NewWithWriter(&buf, "debug"))

	l.With("workflow_id", "bulk-init-1").Warn("activity retry", "attempt", 2)

	out := buf.String()
	for _, want := range []string{`"component":"temporal"`, `"workflow_id":"bulk-init-1"`, `"attempt":2`, `"level":"WARN"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in %s", want, out)
		}
	}
}
