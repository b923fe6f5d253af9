package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhmetshin/warranty-keeper/internal/logger"
	"github.com/akhmetshin/warranty-keeper/internal/store"
	"github.com/akhmetshin/warranty-keeper/migrations"
	"github.com/akhmetshin/warranty-keeper/models"
)

// fakeWarrantyServer is an in-memory stand-in for the remote API. Its clock
// advances one second per mutation so change timestamps are always distinct.
type fakeWarrantyServer struct {
	mu sync.Mutex

	token     string
	nextID    int
	now       time.Time
	records   map[string]models.ServerWarranty
	updatedAt map[string]time.Time

	// failProducts makes CreateWarranty/UpdateWarranty fail for records with
	// the given product name.
	failProducts map[string]error

	// lastPulledArg records the cursor value of the most recent ListChanges.
	lastPulledArg int64

	// failList makes ListChanges fail, emulating a network drop between the
	// push and the pull of a cycle.
	failList error

	// beforeCreate runs inside CreateWarranty before the response, emulating
	// concurrent activity while the request is on the wire.
	beforeCreate func()

	// holdSync blocks ListChanges until released, keeping a cycle in flight;
	// enteredSync receives a value when the held call is reached.
	holdSync    chan struct{}
	enteredSync chan struct{}
}

func newFakeWarrantyServer() *fakeWarrantyServer {
	return &fakeWarrantyServer{
		token:        "test-token",
		now:          time.Date(2025, time.August, 1, 12, 0, 0, 0, time.UTC),
		records:      make(map[string]models.ServerWarranty),
		updatedAt:    make(map[string]time.Time),
		failProducts: make(map[string]error),
	}
}

func (f *fakeWarrantyServer) tick() time.Time {
	f.now = f.now.Add(time.Second)
	return f.now
}

func (f *fakeWarrantyServer) SetToken(token string) { f.token = token }
func (f *fakeWarrantyServer) Token() string         { return f.token }

func (f *fakeWarrantyServer) Register(ctx context.Context, user models.User) error { return nil }
func (f *fakeWarrantyServer) Login(ctx context.Context, user models.User) error    { return nil }

func (f *fakeWarrantyServer) CreateWarranty(ctx context.Context, payload models.WarrantyPayload) (models.ServerWarranty, error) {
	f.mu.Lock()
	if err := f.failProducts[payload.ProductName]; err != nil {
		f.mu.Unlock()
		return models.ServerWarranty{}, err
	}

	f.nextID++
	id := fmt.Sprintf("srv-%d", f.nextID)
	saved := models.ServerWarranty{ServerID: id, WarrantyPayload: payload}
	f.records[id] = saved
	f.updatedAt[id] = f.tick()
	beforeCreate := f.beforeCreate
	f.mu.Unlock()

	if beforeCreate != nil {
		beforeCreate()
	}

	return saved, nil
}

func (f *fakeWarrantyServer) UpdateWarranty(ctx context.Context, serverID string, payload models.WarrantyPayload) (models.ServerWarranty, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.failProducts[payload.ProductName]; err != nil {
		return models.ServerWarranty{}, err
	}

	saved := models.ServerWarranty{ServerID: serverID, WarrantyPayload: payload}
	f.records[serverID] = saved
	f.updatedAt[serverID] = f.tick()

	return saved, nil
}

func (f *fakeWarrantyServer) DeleteWarranty(ctx context.Context, serverID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.records, serverID)
	delete(f.updatedAt, serverID)
	f.tick()

	return nil
}

func (f *fakeWarrantyServer) ListChanges(ctx context.Context, lastPulledAt int64) ([]models.ServerWarranty, time.Time, error) {
	if f.holdSync != nil {
		if f.enteredSync != nil {
			select {
			case f.enteredSync <- struct{}{}:
			default:
			}
		}
		<-f.holdSync
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failList != nil {
		return nil, time.Time{}, f.failList
	}

	f.lastPulledArg = lastPulledAt

	var changes []models.ServerWarranty
	for id, record := range f.records {
		if f.updatedAt[id].UnixMilli() > lastPulledAt {
			changes = append(changes, record)
		}
	}

	return changes, f.now, nil
}

// putServerSide emulates another device writing straight to the server.
func (f *fakeWarrantyServer) putServerSide(id string, payload models.WarrantyPayload) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.records[id] = models.ServerWarranty{ServerID: id, WarrantyPayload: payload}
	f.updatedAt[id] = f.tick()
}

func (f *fakeWarrantyServer) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	return models.ChatResponse{}, nil
}

func (f *fakeWarrantyServer) ProcessReceipt(ctx context.Context, imageBase64 string) (models.ReceiptScan, error) {
	return models.ReceiptScan{}, nil
}

func (f *fakeWarrantyServer) FindProductImage(ctx context.Context, req models.ImageLookupRequest) (models.ImageLookupResponse, error) {
	return models.ImageLookupResponse{}, nil
}

type syncFixture struct {
	repo    store.WarrantyRepository
	cursor  store.CursorStore
	server  *fakeWarrantyServer
	sync    ClientSyncService
	catalog ClientWarrantyService
}

func newSyncFixture(t *testing.T) *syncFixture {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	conn.SetMaxOpenConns(1)
	require.NoError(t, migrations.MigrateClient(conn))

	storages, err := store.NewClientStoragesFromDB(conn, logger.Nop())
	require.NoError(t, err)

	server := newFakeWarrantyServer()

	return &syncFixture{
		repo:    storages.WarrantyRepository,
		cursor:  storages.Cursor,
		server:  server,
		sync:    NewClientSyncService(storages.WarrantyRepository, storages.Cursor, server, logger.Nop()),
		catalog: NewClientWarrantyService(storages.WarrantyRepository, logger.Nop()),
	}
}

// bootstrap runs the first, cursor-establishing cycle against an empty store
// so subsequent cycles in a test are incremental.
func (f *syncFixture) bootstrap(t *testing.T) {
	t.Helper()
	require.NoError(t, f.sync.Sync(context.Background()))
}

func draft(name string) models.WarrantyDraft {
	return models.WarrantyDraft{
		ProductName:          name,
		PurchaseDate:         time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		WarrantyLengthMonths: 12,
	}
}

func TestSync_PushCreateAssignsServerID(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()
	f.bootstrap(t)

	created, err := f.catalog.Create(ctx, draft("Laptop"))
	require.NoError(t, err)

	require.NoError(t, f.sync.Sync(ctx))

	record, err := f.repo.FindByLocalID(ctx, created.LocalID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSynced, record.Status)
	assert.NotEmpty(t, record.ServerID)
	assert.Contains(t, f.server.records, record.ServerID)

	// a second cycle has nothing dirty to push
	require.NoError(t, f.sync.Sync(ctx))
	assert.Len(t, f.server.records, 1)
}

func TestSync_PushContinuesPastFailures(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()
	f.bootstrap(t)

	bad, err := f.catalog.Create(ctx, draft("Broken"))
	require.NoError(t, err)
	good, err := f.catalog.Create(ctx, draft("Working"))
	require.NoError(t, err)

	f.server.failProducts["Broken"] = errors.New("server rejected it")

	err = f.sync.Sync(ctx)
	require.Error(t, err)

	badRecord, err := f.repo.FindByLocalID(ctx, bad.LocalID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCreated, badRecord.Status, "failed record stays dirty")

	goodRecord, err := f.repo.FindByLocalID(ctx, good.LocalID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSynced, goodRecord.Status, "other records still pushed")

	// the failure clears, the retry drains it
	delete(f.server.failProducts, "Broken")
	require.NoError(t, f.sync.Sync(ctx))

	badRecord, err = f.repo.FindByLocalID(ctx, bad.LocalID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSynced, badRecord.Status)
}

func TestSync_FirstPullWipesLocalState(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	// stale rows from a previous session: one synced, one never pushed whose
	// push keeps failing
	err := f.repo.ApplyBatch(ctx, func(batch store.RecordBatch) error {
		return batch.Save(models.WarrantyRecord{
			LocalID:      "stale-1",
			ServerID:     "stale-srv",
			ProductName:  "Old toaster",
			PurchaseDate: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
			ReceiptsBlob: "[]",
			Status:       models.StatusSynced,
			CreatedAt:    time.Now().UTC(),
			UpdatedAt:    time.Now().UTC(),
		})
	})
	require.NoError(t, err)

	orphan, err := f.catalog.Create(ctx, draft("Unpushable"))
	require.NoError(t, err)
	f.server.failProducts["Unpushable"] = errors.New("server rejected it")

	f.server.putServerSide("srv-100", models.WarrantyPayload{
		ProductName:          "Fridge",
		PurchaseDate:         time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		WarrantyLengthMonths: 24,
	})

	err = f.sync.Sync(ctx)
	require.Error(t, err, "failed push surfaces")

	all, err := f.repo.QueryByStatus(ctx, models.StatusQuery{})
	require.NoError(t, err)
	require.Len(t, all, 1, "baseline pull leaves only the server's records")
	assert.Equal(t, "Fridge", all[0].ProductName)
	assert.Equal(t, models.StatusSynced, all[0].Status)

	_, err = f.repo.FindByLocalID(ctx, orphan.LocalID)
	assert.ErrorIs(t, err, store.ErrWarrantyNotFound)

	_, ok, err := f.cursor.LastPulledAt(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSync_IncrementalPullUsesCursor(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	f.server.putServerSide("srv-1", models.WarrantyPayload{
		ProductName: "Fridge", PurchaseDate: time.Now().UTC(), WarrantyLengthMonths: 24,
	})
	require.NoError(t, f.sync.Sync(ctx))

	firstCursor, ok, err := f.cursor.LastPulledAt(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	f.server.putServerSide("srv-2", models.WarrantyPayload{
		ProductName: "Washer", PurchaseDate: time.Now().UTC(), WarrantyLengthMonths: 36,
	})
	require.NoError(t, f.sync.Sync(ctx))

	assert.Equal(t, firstCursor, f.server.lastPulledArg, "second pull starts at the stored cursor")

	secondCursor, ok, err := f.cursor.LastPulledAt(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Greater(t, secondCursor, firstCursor, "cursor only moves forward")

	all, err := f.repo.QueryByStatus(ctx, models.StatusQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSync_PullServerWins(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	f.server.putServerSide("srv-1", models.WarrantyPayload{
		ProductName: "Fridge", PurchaseDate: time.Now().UTC(), WarrantyLengthMonths: 24,
	})
	require.NoError(t, f.sync.Sync(ctx))

	// the other device renames it
	f.server.putServerSide("srv-1", models.WarrantyPayload{
		ProductName: "Fridge XL", PurchaseDate: time.Now().UTC(), WarrantyLengthMonths: 24,
	})
	require.NoError(t, f.sync.Sync(ctx))

	record, err := f.repo.FindByServerID(ctx, "srv-1")
	require.NoError(t, err)
	assert.Equal(t, "Fridge XL", record.ProductName)
	assert.Equal(t, models.StatusSynced, record.Status)
}

func TestSync_TombstoneCompletion(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()
	f.bootstrap(t)

	created, err := f.catalog.Create(ctx, draft("Laptop"))
	require.NoError(t, err)
	require.NoError(t, f.sync.Sync(ctx))

	synced, err := f.repo.FindByLocalID(ctx, created.LocalID)
	require.NoError(t, err)

	require.NoError(t, f.catalog.Delete(ctx, created.LocalID))

	tombstone, err := f.repo.FindByLocalID(ctx, created.LocalID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeleted, tombstone.Status, "tombstone survives until pushed")

	require.NoError(t, f.sync.Sync(ctx))

	_, err = f.repo.FindByLocalID(ctx, created.LocalID)
	assert.ErrorIs(t, err, store.ErrWarrantyNotFound, "tombstone removed after server ack")
	assert.NotContains(t, f.server.records, synced.ServerID)
}

func TestSync_DeleteBeforeFirstPushDestroysOutright(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	created, err := f.catalog.Create(ctx, draft("Never pushed"))
	require.NoError(t, err)

	require.NoError(t, f.catalog.Delete(ctx, created.LocalID))

	_, err = f.repo.FindByLocalID(ctx, created.LocalID)
	assert.ErrorIs(t, err, store.ErrWarrantyNotFound)

	require.NoError(t, f.sync.Sync(ctx))
	assert.Empty(t, f.server.records, "the server never hears about it")
}

func TestSync_EditDuringPushStaysDirty(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()
	f.bootstrap(t)

	created, err := f.catalog.Create(ctx, draft("Laptop"))
	require.NoError(t, err)

	f.server.beforeCreate = func() {
		f.server.beforeCreate = nil
		_, err := f.catalog.Edit(ctx, created.LocalID, draft("Laptop Pro"))
		require.NoError(t, err)
	}

	// the pull of this cycle drops, so the dirty record is what is left behind
	f.server.failList = errors.New("connection reset")

	err = f.sync.Sync(ctx)
	require.Error(t, err)

	record, err := f.repo.FindByLocalID(ctx, created.LocalID)
	require.NoError(t, err)
	assert.NotEmpty(t, record.ServerID, "server identifier linked despite the race")
	assert.Equal(t, models.StatusUpdated, record.Status, "mid-flight edit keeps the record dirty")
	assert.Equal(t, "Laptop Pro", record.ProductName)

	// the next cycle pushes the edit
	f.server.failList = nil
	require.NoError(t, f.sync.Sync(ctx))

	record, err = f.repo.FindByLocalID(ctx, created.LocalID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSynced, record.Status)
	assert.Equal(t, "Laptop Pro", f.server.records[record.ServerID].ProductName)
}

func TestSync_SingleFlight(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	hold := make(chan struct{})
	entered := make(chan struct{}, 1)
	f.server.holdSync = hold
	f.server.enteredSync = entered

	firstDone := make(chan error, 1)
	go func() { firstDone <- f.sync.Sync(ctx) }()

	// wait for the first cycle to reach the held pull
	<-entered

	assert.ErrorIs(t, f.sync.Sync(ctx), ErrSyncInFlight)

	close(hold)
	require.NoError(t, <-firstDone)

	// with the cycle finished the guard is released
	f.server.holdSync = nil
	require.NoError(t, f.sync.Sync(ctx))
}

func TestSync_NotAuthenticated(t *testing.T) {
	f := newSyncFixture(t)
	f.server.token = ""

	assert.ErrorIs(t, f.sync.Sync(context.Background()), ErrNotAuthenticated)
}

func TestSync_LastSyncedAt(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	_, ok, err := f.sync.LastSyncedAt(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, f.sync.Sync(ctx))

	at, ok, err := f.sync.LastSyncedAt(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	ms, _, err := f.cursor.LastPulledAt(ctx)
	require.NoError(t, err)
	assert.Equal(t, ms, at.UnixMilli())
}
