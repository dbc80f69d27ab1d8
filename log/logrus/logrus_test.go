package logrus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/unkn0wn-root/uacodec"
)

func TestLevelsAndFields(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := New(base)

	l.Debug("encoding error", uacodec.Fields{"err": uacodec.BadEncoding})
	l.Error("boom", nil)

	entries := hook.AllEntries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	first := entries[0]
	if first.Level != logrus.DebugLevel || first.Message != "encoding error" {
		t.Fatalf("unexpected first entry: %+v", first)
	}
	if first.Data[logrus.ErrorKey] != uacodec.BadEncoding || first.Data["component"] != "uacodec" {
		t.Fatalf("unexpected data: %v", first.Data)
	}
	if entries[1].Level != logrus.ErrorLevel || entries[1].Message != "boom" {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}
}
