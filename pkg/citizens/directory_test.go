package citizens

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/citizenkit/internal/testutil"
	"github.com/joshuapare/citizenkit/pkg/types"
)

func newReferenceDirectory(t *testing.T) *Directory {
	t.Helper()
	d := New(Options{Now: testutil.ReferenceNow})
	for _, p := range testutil.ReferencePeople() {
		require.True(t, d.Add(p))
	}
	return d
}

func counter(operation, result string) float64 {
	return promtest.ToFloat64(operationsTotal.WithLabelValues(operation, result))
}

func TestDirectory_Queries(t *testing.T) {
	d := newReferenceDirectory(t)

	assert.Equal(t, 5, d.Len())
	assert.Equal(t, []int{4, 3, 1, 5, 2}, testutil.IDs(d.AllByAge()))
	assert.Equal(t, []int{3, 5, 2, 1, 4}, testutil.IDs(d.AllByLastName()))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, testutil.IDs(d.AllByID()))

	assert.Equal(t, []int{3, 1}, testutil.IDs(d.FindByAge(25, 35)))
	assert.Equal(t, []int{3, 1}, testutil.IDs(d.FindByAgeAsOf(25, 35, testutil.ReferenceDate)))
	assert.Equal(t, []int{2}, testutil.IDs(d.FindByLastName("JOHNSON")))
	assert.Empty(t, d.FindByLastName("Nobody"))

	p, ok := d.Find(4)
	require.True(t, ok)
	assert.Equal(t, "Williams", p.LastName)

	require.NoError(t, d.Verify())
	st := d.Stats()
	assert.Equal(t, 5, st.Count)
	assert.Equal(t, 5, st.DistinctLastNames)
}

func TestDirectory_Mutations(t *testing.T) {
	d := newReferenceDirectory(t)

	assert.False(t, d.Add(nil))
	assert.False(t, d.Add(types.NewPerson(1, "Dup", "Smith", testutil.ReferenceDate)))
	assert.Equal(t, 5, d.Len())

	assert.True(t, d.Remove(1))
	assert.False(t, d.Remove(1))
	_, ok := d.Find(1)
	assert.False(t, ok)
	assert.Equal(t, 4, d.Len())
	require.NoError(t, d.Verify())
}

func TestDirectory_Metrics(t *testing.T) {
	d := newReferenceDirectory(t)

	addOK := counter("add", resultOK)
	addRejected := counter("add", resultRejected)
	findMiss := counter("find", resultMiss)
	removeOK := counter("remove", resultOK)
	ageEmpty := counter("find_by_age", resultEmpty)

	d.Add(types.NewPerson(6, "Frank", "Miller", testutil.ReferenceDate))
	d.Add(types.NewPerson(6, "Frank", "Miller", testutil.ReferenceDate))
	d.Find(42)
	d.Remove(6)
	d.FindByAge(100, 120)

	assert.Equal(t, addOK+1, counter("add", resultOK))
	assert.Equal(t, addRejected+1, counter("add", resultRejected))
	assert.Equal(t, findMiss+1, counter("find", resultMiss))
	assert.Equal(t, removeOK+1, counter("remove", resultOK))
	assert.Equal(t, ageEmpty+1, counter("find_by_age", resultEmpty))
	assert.Positive(t, promtest.CollectAndCount(operationDuration))
}

func TestDirectory_LogsMutations(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	d := New(Options{Logger: log})

	d.Add(types.NewPerson(7, "Gail", "Ng", testutil.ReferenceDate))
	d.Add(types.NewPerson(7, "Gail", "Ng", testutil.ReferenceDate))
	d.Remove(7)

	out := buf.String()
	assert.Contains(t, out, "person added")
	assert.Contains(t, out, "reason=\"duplicate id\"")
	assert.Contains(t, out, "person removed")
	assert.Contains(t, out, "component=citizens")
}

func TestDirectory_Concurrent(t *testing.T) {
	d := newReferenceDirectory(t)

	const writers, readers, perWriter = 4, 4, 200
	var wg sync.WaitGroup
	for w := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWriter {
				id := 1000 + w*perWriter + i
				d.Add(types.NewPerson(id, "Concurrent", "Writer", testutil.ReferenceDate))
				if i%2 == 0 {
					d.Remove(id)
				}
			}
		}()
	}
	for range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWriter {
				all := d.AllByID()
				for i := 1; i < len(all); i++ {
					if all[i-1].ID >= all[i].ID {
						t.Errorf("AllByID out of order at %d", i)
						return
					}
				}
				d.FindByLastName("writer")
				d.FindByAge(0, 150)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5+writers*perWriter/2, d.Len())
	require.NoError(t, d.Verify())
}

func durationSum(t *testing.T, operation string) (float64, uint64) {
	t.Helper()
	var m dto.Metric
	h, ok := operationDuration.WithLabelValues(operation).(prometheus.Histogram)
	require.True(t, ok)
	require.NoError(t, h.Write(&m))
	return m.GetHistogram().GetSampleSum(), m.GetHistogram().GetSampleCount()
}

func TestDirectory_DurationIncludesLockWait(t *testing.T) {
	d := newReferenceDirectory(t)
	sumBefore, countBefore := durationSum(t, "remove")

	const wait = 20 * time.Millisecond
	d.mu.Lock()
	started := make(chan struct{})
	done := make(chan bool)
	go func() {
		close(started)
		done <- d.Remove(3)
	}()
	<-started
	time.Sleep(wait)
	d.mu.Unlock()
	require.True(t, <-done)

	sumAfter, countAfter := durationSum(t, "remove")
	assert.Equal(t, countBefore+1, countAfter)
	assert.GreaterOrEqual(t, sumAfter-sumBefore, (wait / 2).Seconds())
}

func TestMetrics_NoProcessWideSizeGauge(t *testing.T) {
	newReferenceDirectory(t)
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		assert.NotEqual(t, "citizens_directory_people", mf.GetName())
	}
}
