package domain

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/nwave-fx/fxpipe/internal/adapter/mocks"
	m "github.com/nwave-fx/fxpipe/internal/model"
)

func testEncodeSettings() m.EncodeSettings {
	settings := m.DefaultEncodeSettings()
	settings.Threads = 2
	settings.Artist = "jdoe"
	settings.OCIOConfig = "/pipe/aces.ocio"

	return settings
}

func TestParseSequence(t *testing.T) {
	seq, err := ParseSequence("/shots/010/010_0020_smoke_v003.1001.exr")
	require.NoError(t, err)

	assert.Equal(t, m.Path("/shots/010"), seq.Dir)
	assert.Equal(t, "010_0020_smoke_v003", seq.Name)
	assert.Equal(t, "1001", seq.StartFrame)
	assert.Equal(t, "010_0020", seq.SeqShot)
	assert.Equal(t, "smoke", seq.Title)
	assert.Equal(t, 4, seq.Padding())
}

func TestParseSequence_Defaults(t *testing.T) {
	seq, err := ParseSequence("/renders/beauty.000120.EXR")
	require.NoError(t, err)

	assert.Equal(t, "beauty", seq.Name)
	assert.Equal(t, "000120", seq.StartFrame)
	assert.Equal(t, m.DefaultSeqShot, seq.SeqShot)
	assert.Empty(t, seq.Title)
	assert.Equal(t, 6, seq.Padding())
}

func TestParseSequence_Errors(t *testing.T) {
	tests := []struct {
		name string
		path m.Path
		want error
	}{
		{"no frame number", "/renders/beauty.exr", m.ErrBadSequenceName},
		{"short frame number", "/renders/beauty.101.exr", m.ErrBadSequenceName},
		{"wrong extension", "/renders/beauty.1001.png", m.ErrBadExtension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSequence(tt.path)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNeedsTitle(t *testing.T) {
	assert.True(t, NeedsTitle(""))
	assert.True(t, NeedsTitle("masterLayer"))
	assert.False(t, NeedsTitle("smoke"))
}

func TestSplitIntoBuckets(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6}

	assert.Equal(t, [][]int{{0, 3, 6}, {1, 4}, {2, 5}}, SplitIntoBuckets(items, 3))
	assert.Equal(t, [][]int{{0}, {1}}, SplitIntoBuckets([]int{0, 1}, 50))
	assert.Equal(t, [][]int{items}, SplitIntoBuckets(items, 0))
	assert.Empty(t, SplitIntoBuckets([]int{}, 4))
}

func TestConversionJobs(t *testing.T) {
	jobs := ConversionJobs([]m.Path{"/s/a.1001.exr", "/s/a.1002.exr"}, "/s/TEMP")

	assert.Equal(t, []m.ConversionJob{
		{In: "/s/a.1001.exr", Out: "/s/TEMP/a.1001.png"},
		{In: "/s/a.1002.exr", Out: "/s/TEMP/a.1002.png"},
	}, jobs)
}

func TestDrawText(t *testing.T) {
	settings := m.DefaultEncodeSettings()
	settings.FontNormal = "/fonts/regular.ttf"
	settings.FontBold = "/fonts/bold.ttf"

	got := DrawText(settings, TextBox{Text: `Shot\: 010_0020`, X: 15, Y: 53})
	assert.Equal(t,
		`drawtext=fontfile=/fonts/regular.ttf:fontcolor=white:fontsize=10:box=1:boxcolor=DarkGray:boxborderw=5:text='Shot\: 010_0020':x=+15:y=+53`,
		got)

	got = DrawText(settings, TextBox{
		Text: "%{frame_num}", Bold: true, Size: 14, X: 15, Y: 10,
		Anchor: Anchor{Right: true, Bottom: true},
		Extra:  []string{"start_number=1001"},
	})
	assert.Equal(t,
		`drawtext=fontfile=/fonts/bold.ttf:fontcolor=white:fontsize=14:box=1:boxcolor=DarkGray:boxborderw=5:start_number=1001:text='%{frame_num}':x=w-text_w-15:y=h-text_h-10`,
		got)

	settings.FontNormal = ""
	assert.True(t, strings.HasPrefix(DrawText(settings, TextBox{Text: "x"}), "drawtext=fontcolor=white"))
}

func TestFFmpegArgs(t *testing.T) {
	settings := testEncodeSettings()
	seq := m.ImageSequence{Dir: "/s", Name: "010_0020_smoke", StartFrame: "1001"}
	overlay := m.MovieOverlay{Production: "Corgi", SeqShot: "010_0020", Title: "smoke", Artist: "jdoe", StartFrame: "1001"}

	args := FFmpegArgs(settings, seq, "/s/TEMP", "/s/010_0020_smoke.mov", overlay)

	require.Len(t, args, 19)
	assert.Equal(t, []string{"-hide_banner", "-loglevel", "panic", "-start_number", "1001", "-r", "24", "-f", "image2"}, args[:9])
	assert.Equal(t, []string{"-i", filepath.Join("/s/TEMP", "010_0020_smoke.%04d.png")}, args[9:11])
	assert.Equal(t, "-vf", args[11])
	assert.Equal(t, []string{"-vcodec", "mjpeg", "-b:v", "96000K", "-y", "/s/010_0020_smoke.mov"}, args[13:])

	filters := strings.Split(args[12], ", ")
	require.Len(t, filters, 6)
	assert.Contains(t, filters[0], `text='Production\: Corgi'`)
	assert.Contains(t, filters[0], "fontsize=12")
	assert.Contains(t, filters[1], `text='Shot\: 010_0020'`)
	assert.Contains(t, filters[3], `text='Content\: smoke'`)
	assert.Contains(t, filters[4], `text='Artist\: jdoe'`)
	assert.Contains(t, filters[5], "start_number=1001")
}

func expectFrames(fs *adaptermocks.MockImageFSAdapter, dir m.Path, frames ...m.Path) m.Path {
	temp := m.Path(filepath.Join(string(dir), m.DefaultTempFolder))

	fs.EXPECT().ListFrames(dir, m.InImageExtension).Return(frames, nil).Once()
	fs.EXPECT().MkdirAll(temp).Return(nil).Once()
	fs.EXPECT().RemoveAll(temp).Return(nil).Once()

	return temp
}

func anyFFmpegCall(runner *adaptermocks.MockCommandRunner, settings m.EncodeSettings) *mock.Call {
	args := []interface{}{mock.Anything, mock.Anything, settings.FFmpeg}
	for range FFmpegArgs(settings, m.ImageSequence{}, "", "", m.MovieOverlay{}) {
		args = append(args, mock.Anything)
	}

	return runner.On("Run", args...)
}

func TestEncoder_Encode(t *testing.T) {
	ctx := context.Background()
	fs := adaptermocks.NewMockImageFSAdapter(t)
	runner := adaptermocks.NewMockCommandRunner(t)
	settings := testEncodeSettings()
	settings.Opener = "xdg-open"

	frames := []m.Path{
		"/s/010_0020_smoke.1001.exr",
		"/s/010_0020_smoke.1002.exr",
		"/s/010_0020_smoke.1003.exr",
	}
	temp := expectFrames(fs, "/s", frames...)
	env := []string{"OCIO=/pipe/aces.ocio"}

	for _, frame := range frames {
		out := filepath.Join(string(temp), strings.TrimSuffix(filepath.Base(string(frame)), ".exr")+".png")
		runner.EXPECT().Run(mock.Anything, env, "ocioconvert", string(frame), settings.InProfile, out, settings.OutProfile).Return(nil).Once()
	}

	seq, err := ParseSequence(frames[0])
	require.NoError(t, err)

	movie := m.Path("/s/010_0020_smoke.mov")
	overlay := m.MovieOverlay{Production: "Corgi", SeqShot: "010_0020", Title: "smoke", Artist: "jdoe", StartFrame: "1001"}

	ffmpegArgs := []interface{}{mock.Anything, []string(nil), "ffmpeg"}
	for _, arg := range FFmpegArgs(settings, seq, temp, movie, overlay) {
		ffmpegArgs = append(ffmpegArgs, arg)
	}

	runner.On("Run", ffmpegArgs...).Return(nil).Once()
	runner.EXPECT().Run(mock.Anything, []string(nil), "xdg-open", string(movie)).Return(errors.New("no display")).Once()

	var (
		mu       sync.Mutex
		progress []m.EncodeProgress
	)

	enc := NewEncoder(fs, runner, settings, nil)
	got, err := enc.Encode(ctx, frames[0], WithProgress(func(p m.EncodeProgress) {
		mu.Lock()
		defer mu.Unlock()

		progress = append(progress, p)
	}), WithTitlePrompt(func() (string, error) {
		t.Fatal("title prompt must not be called")

		return "", nil
	}))

	require.NoError(t, err)
	assert.Equal(t, movie, got)
	require.Len(t, progress, 3)

	for i, p := range progress {
		assert.Equal(t, i+1, p.Done)
		assert.Equal(t, 3, p.Total)
	}
}

func TestEncoder_Encode_PromptsForTitle(t *testing.T) {
	ctx := context.Background()
	fs := adaptermocks.NewMockImageFSAdapter(t)
	runner := adaptermocks.NewMockCommandRunner(t)
	settings := testEncodeSettings()

	first := m.Path("/s/010_0020_masterlayer.1001.exr")
	expectFrames(fs, "/s", first)

	runner.EXPECT().Run(mock.Anything, mock.Anything, "ocioconvert", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	var filter string

	anyFFmpegCall(runner, settings).Run(func(args mock.Arguments) {
		filter = args.String(15)
	}).Return(nil).Once()

	prompted := 0
	enc := NewEncoder(fs, runner, settings, nil)

	_, err := enc.Encode(ctx, first, WithTitlePrompt(func() (string, error) {
		prompted++

		return "  fire sim  ", nil
	}))

	require.NoError(t, err)
	assert.Equal(t, 1, prompted)
	assert.Contains(t, filter, `text='Content\: fire sim'`)
}

func TestEncoder_Encode_TitlePromptError(t *testing.T) {
	fs := adaptermocks.NewMockImageFSAdapter(t)
	runner := adaptermocks.NewMockCommandRunner(t)
	enc := NewEncoder(fs, runner, testEncodeSettings(), nil)

	_, err := enc.Encode(context.Background(), "/s/beauty.1001.exr", WithTitlePrompt(func() (string, error) {
		return "", errors.New("eof")
	}))

	require.ErrorContains(t, err, "read title")
}

func TestEncoder_Encode_ConvertFailureStopsAndCleansUp(t *testing.T) {
	ctx := context.Background()
	fs := adaptermocks.NewMockImageFSAdapter(t)
	runner := adaptermocks.NewMockCommandRunner(t)
	settings := testEncodeSettings()
	settings.Threads = 1

	frames := []m.Path{"/s/010_0020_smoke.1001.exr", "/s/010_0020_smoke.1002.exr"}
	expectFrames(fs, "/s", frames...)

	runner.EXPECT().Run(mock.Anything, mock.Anything, "ocioconvert", string(frames[0]), mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("bad colorspace")).Once()

	enc := NewEncoder(fs, runner, settings, nil)
	_, err := enc.Encode(ctx, frames[0])

	require.Error(t, err)
	assert.Contains(t, err.Error(), "convert /s/010_0020_smoke.1001.exr")
	assert.Contains(t, err.Error(), "bad colorspace")
}

func TestEncoder_Encode_BadName(t *testing.T) {
	enc := NewEncoder(adaptermocks.NewMockImageFSAdapter(t), adaptermocks.NewMockCommandRunner(t), testEncodeSettings(), nil)

	_, err := enc.Encode(context.Background(), "/s/beauty.png")
	require.ErrorIs(t, err, m.ErrBadSequenceName)
}

func TestEncoder_Encode_FFmpegFailure(t *testing.T) {
	fs := adaptermocks.NewMockImageFSAdapter(t)
	runner := adaptermocks.NewMockCommandRunner(t)
	settings := testEncodeSettings()

	first := m.Path("/s/010_0020_smoke.1001.exr")
	expectFrames(fs, "/s", first)

	runner.EXPECT().Run(mock.Anything, mock.Anything, "ocioconvert", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	anyFFmpegCall(runner, settings).Return(errors.New("codec missing")).Once()

	_, err := NewEncoder(fs, runner, settings, nil).Encode(context.Background(), first)
	require.ErrorContains(t, err, "generate movie")
}
