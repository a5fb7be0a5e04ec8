package store_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chillapavankarthik-codes/fullstack-sportstore/models"
	"github.com/chillapavankarthik-codes/fullstack-sportstore/store"
)

func openTestStore(t *testing.T) (*store.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	st, err := store.Open(path)
	require.NoError(t, err)
	t.Cleanup(st.Close)
	return st, path
}

func TestOpenInitializesEmptyDocument(t *testing.T) {
	st, path := openTestStore(t)

	doc := st.Snapshot()
	require.NotNil(t, doc.Users)
	require.NotNil(t, doc.Products)
	require.NotNil(t, doc.Orders)
	require.Empty(t, doc.Users)
	require.Empty(t, doc.Products)
	require.Empty(t, doc.Orders)

	// First access creates the file on disk
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var onDisk map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	require.Contains(t, onDisk, "users")
	require.Contains(t, onDisk, "products")
	require.Contains(t, onDisk, "orders")
}

func TestSnapshotIsIdempotent(t *testing.T) {
	st, _ := openTestStore(t)

	doc := st.Snapshot()
	doc.Products = append(doc.Products, models.Product{ID: "p1", Name: "Ball", Price: 10, Stock: 3})
	require.NoError(t, st.Submit(doc))

	first := st.Snapshot()
	second := st.Snapshot()
	require.Equal(t, first, second)
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	st, _ := openTestStore(t)

	doc := st.Snapshot()
	doc.Products = append(doc.Products, models.Product{
		ID: "p1", Name: "Ball", Price: 10, Stock: 3,
		Images:     []string{"a.png"},
		Highlights: []string{"light"},
		Specs:      map[string]string{"size": "5"},
	})
	require.NoError(t, st.Submit(doc))

	snap := st.Snapshot()
	snap.Products[0].Stock = 0
	snap.Products[0].Images[0] = "mutated.png"
	snap.Products[0].Specs["size"] = "mutated"

	fresh := st.Snapshot()
	require.Equal(t, 3, fresh.Products[0].Stock)
	require.Equal(t, "a.png", fresh.Products[0].Images[0])
	require.Equal(t, "5", fresh.Products[0].Specs["size"])
}

func TestSubmitThenSnapshotObservesNewState(t *testing.T) {
	st, _ := openTestStore(t)

	doc := st.Snapshot()
	doc.Users = append(doc.Users, models.User{ID: "u1", Email: "a@b.c", CreatedAt: time.Now().UTC()})
	require.NoError(t, st.Submit(doc))

	after := st.Snapshot()
	require.Len(t, after.Users, 1)
	require.Equal(t, "u1", after.Users[0].ID)
}

func TestSubmitRejectsStaleSnapshot(t *testing.T) {
	st, _ := openTestStore(t)

	first := st.Snapshot()
	second := st.Snapshot()

	first.Products = append(first.Products, models.Product{ID: "p1"})
	require.NoError(t, st.Submit(first))

	second.Products = append(second.Products, models.Product{ID: "p2"})
	require.ErrorIs(t, st.Submit(second), store.ErrConflict)

	// The durable state is exactly the winner's document, not a merge.
	final := st.Snapshot()
	require.Len(t, final.Products, 1)
	require.Equal(t, "p1", final.Products[0].ID)
}

func TestConcurrentSubmitsFromSameBaselineCommitExactlyOne(t *testing.T) {
	st, _ := openTestStore(t)

	base := st.Snapshot()
	a := base.Clone()
	b := base.Clone()
	a.Products = append(a.Products, models.Product{ID: "pa"})
	b.Products = append(b.Products, models.Product{ID: "pb"})

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for _, doc := range []*models.Document{a, b} {
		wg.Add(1)
		go func(d *models.Document) {
			defer wg.Done()
			errs <- st.Submit(d)
		}(doc)
	}
	wg.Wait()
	close(errs)

	var ok, conflict int
	for err := range errs {
		switch err {
		case nil:
			ok++
		case store.ErrConflict:
			conflict++
		default:
			t.Fatalf("unexpected submit error: %v", err)
		}
	}
	require.Equal(t, 1, ok)
	require.Equal(t, 1, conflict)

	final := st.Snapshot()
	require.Len(t, final.Products, 1)
}

func TestConcurrentWritersAllLandWithRetry(t *testing.T) {
	st, _ := openTestStore(t)

	const writers = 16
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for {
				doc := st.Snapshot()
				doc.Orders = append(doc.Orders, models.Order{ID: orderID(n)})
				err := st.Submit(doc)
				if err == nil {
					return
				}
				if err != store.ErrConflict {
					t.Errorf("writer %d: unexpected error: %v", n, err)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	final := st.Snapshot()
	require.Len(t, final.Orders, writers)

	seen := make(map[string]bool)
	for _, o := range final.Orders {
		require.False(t, seen[o.ID], "order %s persisted twice", o.ID)
		seen[o.ID] = true
	}
}

func TestReopenReadsPersistedState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	st, err := store.Open(path)
	require.NoError(t, err)

	doc := st.Snapshot()
	doc.Products = append(doc.Products, models.Product{ID: "p1", Name: "Ball", Stock: 7})
	require.NoError(t, st.Submit(doc))
	st.Close()

	reopened, err := store.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	doc = reopened.Snapshot()
	require.Len(t, doc.Products, 1)
	require.Equal(t, "Ball", doc.Products[0].Name)
	require.Equal(t, 7, doc.Products[0].Stock)
}

func TestOpenRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := store.Open(path)
	require.Error(t, err)
}

func orderID(n int) string {
	return "ORD-" + string(rune('A'+n))
}
