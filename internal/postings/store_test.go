package postings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studioops/pkg/models"
)

func TestMemoryStoreInsertionOrder(t *testing.T) {
	store := NewMemoryStore()
	store.Put(models.JobPosting{ID: "post_b"})
	store.Put(models.JobPosting{ID: "post_a"})
	store.Put(models.JobPosting{ID: "post_c"})

	list := store.List()
	require.Len(t, list, 3)
	assert.Equal(t, "post_b", list[0].ID)
	assert.Equal(t, "post_a", list[1].ID)
	assert.Equal(t, "post_c", list[2].ID)

	// Replacing keeps the original slot.
	store.Put(models.JobPosting{ID: "post_b", Status: models.PostingPaused})
	list = store.List()
	assert.Equal(t, "post_b", list[0].ID)
	assert.Equal(t, models.PostingPaused, list[0].Status)
}

func TestMemoryStoreIsolatesCallers(t *testing.T) {
	store := NewMemoryStore()
	store.Put(models.JobPosting{
		ID:         "post_a",
		Applicants: []models.JobApplicant{{ID: "appl_1"}},
	})

	got, ok := store.Get("post_a")
	require.True(t, ok)
	got.Applicants[0].Status = models.ApplicantHired
	got.Applicants = append(got.Applicants, models.JobApplicant{ID: "appl_2"})

	fresh, _ := store.Get("post_a")
	require.Len(t, fresh.Applicants, 1)
	assert.Equal(t, models.ApplicantStatus(""), fresh.Applicants[0].Status)
}

func TestMemoryStoreSnapshotRestore(t *testing.T) {
	store := NewMemoryStore()
	store.Put(models.JobPosting{ID: "post_a"})
	store.Put(models.JobPosting{ID: "post_b"})

	snapshot := store.Snapshot()
	store.Delete("post_a")
	_, ok := store.Get("post_a")
	assert.False(t, ok)

	other := NewMemoryStore()
	other.Restore(snapshot)
	list := other.List()
	require.Len(t, list, 2)
	assert.Equal(t, "post_a", list[0].ID)
	assert.Equal(t, "post_b", list[1].ID)
}
