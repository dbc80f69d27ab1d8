// Package zap routes uacodec diagnostics to a *zap.Logger.
package zap

import (
	"sort"

	"go.uber.org/zap"

	"github.com/unkn0wn-root/uacodec"
)

var _ uacodec.Logger = Logger{}

type Logger struct{ L *zap.Logger }

// New tags every entry with component=uacodec.
func New(l *zap.Logger) Logger { return Logger{L: l.With(zap.String("component", "uacodec"))} }

func (z Logger) Debug(msg string, f uacodec.Fields) { z.L.Debug(msg, fields(f)...) }
func (z Logger) Info(msg string, f uacodec.Fields)  { z.L.Info(msg, fields(f)...) }
func (z Logger) Warn(msg string, f uacodec.Fields)  { z.L.Warn(msg, fields(f)...) }
func (z Logger) Error(msg string, f uacodec.Fields) { z.L.Error(msg, fields(f)...) }

// fields emits keys in sorted order; an error value becomes a zap error field.
func fields(f uacodec.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(f))
	for _, k := range keys {
		if err, ok := f[k].(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, f[k]))
	}
	return out
}
