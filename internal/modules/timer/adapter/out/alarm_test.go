package out_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	timerout "studytimer/internal/modules/timer/adapter/out"
)

func TestBellAndMultiAlarm(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	alarm := timerout.MultiAlarm{
		timerout.NewBellAlarm(&buf),
		nil,
		timerout.NewCommandAlarm(nil, nil),
		timerout.NewCommandAlarm([]string{"/nonexistent/studytimer-player"}, nil),
	}
	alarm.Play()
	alarm.Play()
	assert.Equal(t, "\a\a", buf.String())
}
