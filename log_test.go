package datatable

import (
	"bytes"
	"log/slog"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	DataRows([]point{{1, 2}}, NewColumns("x"), nil)
	assert.Contains(t, buf.String(), "row cell count differs from column count")

	SetLogger(nil)
	buf.Reset()
	DataRows([]point{{1, 2}}, NewColumns("x"), nil)
	assert.Empty(t, buf.String())
	assert.NotNil(t, Logger())
}

func TestSetLogger_Concurrent(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			} else {
				SetLogger(nil)
			}
		}()
		go func() {
			defer wg.Done()
			DataRows([]point{{1, 2}}, NewColumns("x"), nil)
			FormatValue(reflect.ValueOf(i), nil, "")
		}()
	}
	wg.Wait()
	assert.NotNil(t, Logger())
}
