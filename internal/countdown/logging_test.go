package countdown_test

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/akyairhashvil/tickdown/internal/countdown"
	"github.com/akyairhashvil/tickdown/internal/testutil"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestLifecycleMisuseLogsWarnings(t *testing.T) {
	buf := captureLog(t)

	w, _, _ := testutil.NewWidget().WithDuration(5).Build()
	w.Pause()
	w.Start()
	w.Start()

	if n := strings.Count(buf.String(), "warning:"); n != 2 {
		t.Fatalf("expected 2 warnings, got %d:\n%s", n, buf.String())
	}
}

func TestUnresolvedSurfaceLogsError(t *testing.T) {
	buf := captureLog(t)

	reg := countdown.NewRegistry()
	if w := countdown.New(reg, "ghost", 5, testutil.NewScheduler(), countdown.Config{}); w != nil {
		t.Fatalf("expected nil widget")
	}
	if !strings.Contains(buf.String(), `no surface registered for "ghost"`) {
		t.Fatalf("missing resolution error log:\n%s", buf.String())
	}
}
