package utils

import (
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLevel(t *testing.T) {
	defer Init("info")

	Init("debug")
	assert.Equal(t, log.DebugLevel, Log.GetLevel())

	Init("nonsense")
	assert.Equal(t, log.InfoLevel, Log.GetLevel())
}

func TestStartCronRunsJob(t *testing.T) {
	ran := make(chan struct{}, 1)
	c, err := StartCron("@every 1s", "test", func() {
		select {
		case ran <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer c.Stop()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatalf("job did not run")
	}
}

func TestStartCronBadSpec(t *testing.T) {
	_, err := StartCron("every now and then", "bad", func() {})
	assert.Error(t, err)
}
