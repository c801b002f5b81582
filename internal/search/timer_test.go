package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPollStopsAfterStop(t *testing.T) {
	tc := NewTimeControl()
	tc.Start()
	assert.False(t, tc.Poll())
	tc.Stop()
	assert.True(t, tc.Poll())
}

func TestCheckTimeRespectsBudget(t *testing.T) {
	tc := NewTimeControl().WithTimeBudget(10 * time.Millisecond)
	tc.Start()
	assert.False(t, tc.CheckTime())
	time.Sleep(15 * time.Millisecond)
	assert.True(t, tc.CheckTime())
}

func TestNodeCapReached(t *testing.T) {
	tc := NewTimeControl().WithMaxNodes(100)
	assert.False(t, tc.NodeCapReached(99))
	assert.True(t, tc.NodeCapReached(100))
}

func TestAllocateTimeNeverExceedsEighth(t *testing.T) {
	d := AllocateTime(8*time.Second, 0, 0)
	assert.LessOrEqual(t, d, time.Second)
}

func TestShouldPoll(t *testing.T) {
	assert.True(t, ShouldPoll(0))
	assert.True(t, ShouldPoll(nodePollInterval))
	assert.False(t, ShouldPoll(1))
}
