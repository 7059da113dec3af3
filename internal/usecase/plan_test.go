package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wky114/media-duplicate-cleaner/internal/domain/entity"
)

// The worked example: a numbered image copy next to its base, and a video
// pair of equal size within tolerance.
func TestBuildPlanExample(t *testing.T) {
	mtime := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	beach := mf("/media/beach.jpg", entity.MediaImage, 2_100_000, mtime)
	beachCopy := mf("/media/beach(1).jpg", entity.MediaImage, 2_100_000, mtime.Add(time.Minute))
	movie := mf("/media/movie.mp4", entity.MediaVideo, 800_000_000, mtime)
	movieCopy := mf("/media/movie(1).mp4", entity.MediaVideo, 800_000_000, mtime.Add(time.Minute))

	meta := &fakeMetadata{meta: map[string]entity.VideoMetadata{
		movie.Path:     {Duration: 120.0, FrameRate: 24.00},
		movieCopy.Path: {Duration: 120.2, FrameRate: 24.00},
	}}
	imgs := &fakeImageInfo{dims: map[string]entity.ImageMetadata{
		beach.Path:     {Width: 4000, Height: 3000},
		beachCopy.Path: {Width: 4000, Height: 3000},
	}}
	p := testPlanner(meta, imgs)

	plan, err := p.BuildPlan(context.Background(), uuid.New(), "/media",
		[]entity.MediaFile{beach, beachCopy, movie, movieCopy})
	require.NoError(t, err)

	copyGroups := plan.CategoryGroups(entity.CategoryImageCopy)
	require.Len(t, copyGroups, 1)
	assert.Equal(t, beach.Path, copyGroups[0].Keep.Path)
	require.Len(t, copyGroups[0].Delete, 1)
	assert.Equal(t, beachCopy.Path, copyGroups[0].Delete[0].Path)

	videoGroups := plan.CategoryGroups(entity.CategoryVideo)
	require.Len(t, videoGroups, 1)
	assert.Equal(t, movie.Path, videoGroups[0].Keep.Path)
	require.Len(t, videoGroups[0].Delete, 1)
	assert.Equal(t, movieCopy.Path, videoGroups[0].Delete[0].Path)

	assert.Equal(t, 2, plan.DeleteCount())
	assert.Equal(t, beachCopy.Size+movieCopy.Size, plan.ReclaimableBytes())
	assert.False(t, plan.VideoStageSkipped)
}

// A file delete-marked by one stage must never reappear in a later group,
// and a keep member must never be delete-marked anywhere.
func TestBuildPlanGroupsAreDisjoint(t *testing.T) {
	mtime := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	beach := mf("/media/beach.jpg", entity.MediaImage, 2048, mtime)
	beachCopy := mf("/media/beach(1).jpg", entity.MediaImage, 2048, mtime)
	sunset := mf("/media/sunset-x.jpg", entity.MediaImage, 2048, mtime)

	imgs := &fakeImageInfo{dims: map[string]entity.ImageMetadata{
		beach.Path:     {Width: 800, Height: 600},
		beachCopy.Path: {Width: 800, Height: 600},
		sunset.Path:    {Width: 800, Height: 600},
	}}
	p := testPlanner(nil, imgs)

	plan, err := p.BuildPlan(context.Background(), uuid.New(), "/media",
		[]entity.MediaFile{beach, beachCopy, sunset})
	require.NoError(t, err)

	deleted := make(map[string]int)
	kept := make(map[string]bool)
	for _, g := range plan.Groups {
		kept[g.Keep.Path] = true
		for _, f := range g.Delete {
			deleted[f.Path]++
			assert.NotEqual(t, g.Keep.Path, f.Path)
		}
	}
	for path, n := range deleted {
		assert.Equal(t, 1, n, "%s delete-marked in more than one group", path)
		assert.False(t, kept[path], "%s is both keep and delete", path)
	}

	// beach(1) claimed by the copy matcher, sunset by the dimension group;
	// beach anchors both groups.
	assert.Equal(t, 1, deleted[beachCopy.Path])
	assert.Equal(t, 1, deleted[sunset.Path])
	dimGroups := plan.CategoryGroups(entity.CategoryImageDimension)
	require.Len(t, dimGroups, 1)
	assert.Equal(t, beach.Path, dimGroups[0].Keep.Path)
}

func TestBuildPlanWithoutMetadataProviderSkipsVideos(t *testing.T) {
	mtime := time.Now()
	video := mf("/media/movie.mp4", entity.MediaVideo, 5000, mtime)
	videoCopy := mf("/media/movie(1).mp4", entity.MediaVideo, 5000, mtime)
	image := mf("/media/pic.jpg", entity.MediaImage, 100, mtime)
	imageCopy := mf("/media/pic(1).jpg", entity.MediaImage, 100, mtime)

	p := testPlanner(nil, &fakeImageInfo{})

	plan, err := p.BuildPlan(context.Background(), uuid.New(), "/media",
		[]entity.MediaFile{video, videoCopy, image, imageCopy})
	require.NoError(t, err)

	assert.True(t, plan.VideoStageSkipped)
	assert.Empty(t, plan.CategoryGroups(entity.CategoryVideo))
	// image logic still ran
	require.Len(t, plan.CategoryGroups(entity.CategoryImageCopy), 1)
}

func TestBuildPlanSameNameRunsBeforeCopyMatcher(t *testing.T) {
	mtime := time.Now()
	video := mf("/media/trip.mp4", entity.MediaVideo, 5000, mtime)
	cover := mf("/media/trip.jpg", entity.MediaImage, 100, mtime)
	coverCopy := mf("/media/trip(1).jpg", entity.MediaImage, 100, mtime)

	p := testPlanner(nil, &fakeImageInfo{})

	plan, err := p.BuildPlan(context.Background(), uuid.New(), "/media",
		[]entity.MediaFile{video, cover, coverCopy})
	require.NoError(t, err)

	sameName := plan.CategoryGroups(entity.CategorySameName)
	require.Len(t, sameName, 1)
	assert.Equal(t, video.Path, sameName[0].Keep.Path)
	require.Len(t, sameName[0].Delete, 1)
	assert.Equal(t, cover.Path, sameName[0].Delete[0].Path)

	// trip(1).jpg's base was already delete-marked, so the copy matcher
	// leaves it alone; its own stem matches no video.
	for _, g := range plan.Groups {
		for _, f := range g.Delete {
			assert.NotEqual(t, coverCopy.Path, f.Path)
		}
	}
}
