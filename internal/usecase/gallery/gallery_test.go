package gallery

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/andreyxaxa/Photo-Gallery/internal/dto"
	"github.com/andreyxaxa/Photo-Gallery/internal/entity"
	"github.com/andreyxaxa/Photo-Gallery/pkg/types/errs"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

type testEnv struct {
	uc       *GalleryUseCase
	metadata *memMetadata
	objects  *memObjects
	events   *recordEvents
}

func newTestEnv(now time.Time) *testEnv {
	clock := func() time.Time { return now }

	env := &testEnv{
		metadata: newMemMetadata(clock),
		objects:  newMemObjects(),
		events:   &recordEvents{},
	}
	env.uc = New(env.objects, env.metadata, env.events, time.UTC, nopLogger{}, Clock(clock))

	return env
}

func (e *testEnv) seed(times ...time.Time) {
	for _, t := range times {
		e.metadata.add(entity.ImageRecord{
			Filename:    "seed.jpg",
			StoragePath: "images/" + t.Format("2006/01") + "/seed.jpg",
			CreatedAt:   t,
		})
	}
}

func TestLoad_DefaultsToCurrentMonth(t *testing.T) {
	now := time.Date(2025, time.July, 15, 9, 0, 0, 0, time.UTC)
	env := newTestEnv(now)
	env.seed(
		time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.July, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2025, time.June, 30, 23, 59, 59, 0, time.UTC),
		time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC),
	)

	view := &entity.ViewState{}
	page, err := env.uc.Load(context.Background(), view)
	require.NoError(t, err)

	assert.Equal(t, month(2025, time.July), view.Current)
	assert.Equal(t, "July 2025", page.Label)
	require.Len(t, page.Images, 2)
	assert.Equal(t, time.Date(2025, time.July, 31, 23, 59, 59, 0, time.UTC), page.Images[0].CreatedAt)
	assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), page.Images[1].CreatedAt)

	assert.Equal(t, []entity.Month{
		month(2025, time.August),
		month(2025, time.July),
		month(2025, time.June),
	}, view.Available)
	assert.True(t, page.ShowPager)
	assert.Equal(t, ptr(month(2025, time.June)), page.Prev)
	assert.Equal(t, ptr(month(2025, time.August)), page.Next)
}

func TestLoad_EmptyGallery(t *testing.T) {
	env := newTestEnv(time.Date(2025, time.July, 15, 9, 0, 0, 0, time.UTC))

	view := &entity.ViewState{}
	page, err := env.uc.Load(context.Background(), view)
	require.NoError(t, err)

	assert.Empty(t, page.Images)
	assert.Empty(t, page.Available)
	assert.False(t, page.ShowPager)
	assert.Nil(t, page.Prev)
	assert.Nil(t, page.Next)
}

func TestLoad_SingleMonthHidesPager(t *testing.T) {
	env := newTestEnv(time.Date(2025, time.July, 15, 9, 0, 0, 0, time.UTC))
	env.seed(time.Date(2025, time.July, 2, 0, 0, 0, 0, time.UTC))

	page, err := env.uc.Load(context.Background(), &entity.ViewState{})
	require.NoError(t, err)

	assert.False(t, page.ShowPager)
}

func TestNavigate_WalksAvailableMonths(t *testing.T) {
	env := newTestEnv(time.Date(2025, time.July, 15, 9, 0, 0, 0, time.UTC))
	env.seed(
		time.Date(2025, time.July, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC),
	)

	ctx := context.Background()
	view := &entity.ViewState{}

	_, err := env.uc.Load(ctx, view)
	require.NoError(t, err)

	page, err := env.uc.Navigate(ctx, view, dto.Previous)
	require.NoError(t, err)
	assert.Equal(t, month(2025, time.June), page.Month)

	page, err = env.uc.Navigate(ctx, view, dto.Previous)
	require.NoError(t, err)
	assert.Equal(t, month(2025, time.March), page.Month)
	assert.Nil(t, page.Prev)

	// oldest month: previous is a no-op
	page, err = env.uc.Navigate(ctx, view, dto.Previous)
	require.NoError(t, err)
	assert.Equal(t, month(2025, time.March), page.Month)
	require.Len(t, page.Images, 1)

	page, err = env.uc.Navigate(ctx, view, dto.Next)
	require.NoError(t, err)
	assert.Equal(t, month(2025, time.June), page.Month)

	page, err = env.uc.Navigate(ctx, view, dto.Next)
	require.NoError(t, err)
	assert.Equal(t, month(2025, time.July), page.Month)

	// newest month: next is a no-op
	page, err = env.uc.Navigate(ctx, view, dto.Next)
	require.NoError(t, err)
	assert.Equal(t, month(2025, time.July), page.Month)
}

func TestUpload_StoragePathAndRecord(t *testing.T) {
	now := time.Date(2025, time.July, 4, 15, 30, 0, 0, time.UTC)
	env := newTestEnv(now)

	results := env.uc.Upload(context.Background(), []dto.UploadFile{
		{OriginalName: "photo.PNG", ContentType: "image/png", Data: pngHeader},
	})
	require.Len(t, results, 1)
	require.True(t, results[0].OK(), "%v", results[0].Err)

	rec := results[0].Record
	require.NotNil(t, rec)

	assert.Regexp(t, regexp.MustCompile(`^images/2025/07/\d+_[0-9a-z]{6}\.PNG$`), rec.StoragePath)
	assert.True(t, strings.HasSuffix(rec.StoragePath, "/"+rec.Filename))
	assert.True(t, strings.HasPrefix(rec.Filename, "1751643000000_"))
	assert.Equal(t, "photo.PNG", rec.OriginalName)
	assert.Equal(t, int64(len(pngHeader)), rec.Size)
	assert.Equal(t, "image/png", rec.MimeType)
	assert.Equal(t, "http://storage.local/images-bucket/"+rec.StoragePath, rec.PublicURL)

	assert.True(t, env.objects.has(rec.StoragePath))
	assert.Equal(t, entity.UploadOptions{CacheControl: "3600", Upsert: false}, env.objects.opts[rec.StoragePath])

	stored, err := env.metadata.GetByID(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.StoragePath, stored.StoragePath)

	require.Len(t, env.events.events, 1)
	assert.Equal(t, entity.ImageUploaded, env.events.events[0].Type)
}

func TestUpload_SniffsMissingContentType(t *testing.T) {
	env := newTestEnv(time.Date(2025, time.July, 4, 15, 30, 0, 0, time.UTC))

	results := env.uc.Upload(context.Background(), []dto.UploadFile{
		{OriginalName: "noext", ContentType: "application/octet-stream", Data: pngHeader},
	})
	require.True(t, results[0].OK(), "%v", results[0].Err)

	assert.Equal(t, "image/png", results[0].Record.MimeType)
	assert.Regexp(t, `^images/2025/07/\d+_[0-9a-z]{6}$`, results[0].Record.StoragePath)
}

func TestUpload_PartialFailure(t *testing.T) {
	env := newTestEnv(time.Date(2025, time.July, 4, 15, 30, 0, 0, time.UTC))
	env.objects.uploadErr[".gif"] = errBoom

	results := env.uc.Upload(context.Background(), []dto.UploadFile{
		{OriginalName: "a.png", ContentType: "image/png", Data: pngHeader},
		{OriginalName: "notes.txt", ContentType: "text/plain", Data: []byte("hello")},
		{OriginalName: "b.gif", ContentType: "image/gif", Data: []byte("GIF89a")},
		{OriginalName: "c.png", ContentType: "image/png", Data: pngHeader},
	})
	require.Len(t, results, 4)

	assert.True(t, results[0].OK())
	assert.ErrorIs(t, results[1].Err, errs.ErrUnsupportedMediaType)
	assert.ErrorIs(t, results[2].Err, errBoom)
	assert.True(t, results[3].OK())

	all, err := env.metadata.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpload_MetadataFailureLeavesObject(t *testing.T) {
	env := newTestEnv(time.Date(2025, time.July, 4, 15, 30, 0, 0, time.UTC))
	env.metadata.createErr = errBoom

	results := env.uc.Upload(context.Background(), []dto.UploadFile{
		{OriginalName: "a.png", ContentType: "image/png", Data: pngHeader},
	})

	assert.ErrorIs(t, results[0].Err, errBoom)
	assert.Nil(t, results[0].Record)
	assert.Len(t, env.objects.objects, 1)
	assert.Empty(t, env.events.events)
}

func TestUpload_EventErrorDoesNotFailUpload(t *testing.T) {
	env := newTestEnv(time.Date(2025, time.July, 4, 15, 30, 0, 0, time.UTC))
	env.events.err = errBoom

	results := env.uc.Upload(context.Background(), []dto.UploadFile{
		{OriginalName: "a.png", ContentType: "image/png", Data: pngHeader},
	})

	assert.True(t, results[0].OK())
}

func TestUpload_StalledEventFeedIsBounded(t *testing.T) {
	now := time.Date(2025, time.July, 4, 15, 30, 0, 0, time.UTC)
	env := newTestEnv(now)
	env.events.block = true
	env.uc = New(env.objects, env.metadata, env.events, time.UTC, nopLogger{},
		Clock(func() time.Time { return now }),
		EventTimeout(20*time.Millisecond),
	)

	start := time.Now()
	results := env.uc.Upload(context.Background(), []dto.UploadFile{
		{OriginalName: "a.png", ContentType: "image/png", Data: pngHeader},
		{OriginalName: "b.png", ContentType: "image/png", Data: pngHeader},
	})

	assert.Less(t, time.Since(start), time.Second)
	require.Len(t, results, 2)
	assert.True(t, results[0].OK())
	assert.True(t, results[1].OK())
	assert.Len(t, env.events.events, 2)
}

func TestDelete_RemovesFromLaterQueries(t *testing.T) {
	now := time.Date(2025, time.July, 4, 15, 30, 0, 0, time.UTC)
	env := newTestEnv(now)
	ctx := context.Background()

	results := env.uc.Upload(ctx, []dto.UploadFile{
		{OriginalName: "a.png", ContentType: "image/png", Data: pngHeader},
		{OriginalName: "b.png", ContentType: "image/png", Data: pngHeader},
	})
	require.True(t, results[0].OK())
	require.True(t, results[1].OK())

	target := results[0].Record
	require.NoError(t, env.uc.Delete(ctx, target.ID))

	assert.False(t, env.objects.has(target.StoragePath))

	page, err := env.uc.Load(ctx, &entity.ViewState{})
	require.NoError(t, err)
	require.Len(t, page.Images, 1)
	assert.Equal(t, results[1].Record.ID, page.Images[0].ID)

	_, err = env.metadata.GetByID(ctx, target.ID)
	assert.ErrorIs(t, err, errs.ErrRecordNotFound)

	assert.Equal(t, entity.ImageDeleted, env.events.events[len(env.events.events)-1].Type)
}

func TestDelete_UnknownID(t *testing.T) {
	env := newTestEnv(time.Now())

	err := env.uc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, errs.ErrRecordNotFound)
}

func TestDelete_ObjectFailureKeepsRow(t *testing.T) {
	env := newTestEnv(time.Date(2025, time.July, 4, 15, 30, 0, 0, time.UTC))
	ctx := context.Background()

	results := env.uc.Upload(ctx, []dto.UploadFile{
		{OriginalName: "a.png", ContentType: "image/png", Data: pngHeader},
	})
	require.True(t, results[0].OK())

	env.objects.removeErr = errBoom

	err := env.uc.Delete(ctx, results[0].Record.ID)
	assert.ErrorIs(t, err, errBoom)

	_, err = env.metadata.GetByID(ctx, results[0].Record.ID)
	assert.NoError(t, err)
}
