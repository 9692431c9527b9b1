package settings

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceGet(t *testing.T) {
	ref := NewReference(41)

	assert.Equal(t, 41, ref.Get())

	ref.Update(42)

	assert.Equal(t, 42, ref.Get())
}

func TestReferenceNotifiesSubscribersInOrder(t *testing.T) {
	ref := NewReference("initial")

	var notified []string

	ref.Subscribe(func(value string) {
		notified = append(notified, "first:"+value)
	})
	ref.Subscribe(func(value string) {
		notified = append(notified, "second:"+value)
	})

	ref.Update("changed")

	require.Equal(t, []string{"first:changed", "second:changed"}, notified)
}

func TestReferenceSubscriberSeesCommittedValue(t *testing.T) {
	ref := NewReference(0)

	var observed int

	ref.Subscribe(func(int) {
		observed = ref.Get()
	})

	ref.Update(7)

	assert.Equal(t, 7, observed)
}

func TestReferenceConcurrentReadersAndWriters(t *testing.T) {
	ref := NewReference(0)

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func(value int) {
			defer wg.Done()
			ref.Update(value)
		}(i)

		go func() {
			defer wg.Done()
			_ = ref.Get()
		}()
	}

	wg.Wait()

	assert.GreaterOrEqual(t, ref.Get(), 0)
}
