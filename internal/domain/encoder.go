package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/nwave-fx/fxpipe/internal/adapter"
	m "github.com/nwave-fx/fxpipe/internal/model"
)

var (
	sequenceNamePattern = regexp.MustCompile(`^(.+?)\.([0-9]{4,})$`)
	seqShotPattern      = regexp.MustCompile(`[0-9]{3,}_[0-9]{4,}`)
)

// Encoder turns an EXR image sequence into a colour corrected review movie.
type Encoder interface {
	ParseSequence(first m.Path) (m.ImageSequence, error)
	Encode(ctx context.Context, first m.Path, opts ...EncodeOption) (m.Path, error)
}

// EncodeOption is a functional option for Encode.
type EncodeOption func(*encodeRun)

type encodeRun struct {
	title    func() (string, error)
	progress func(m.EncodeProgress)
}

// WithTitlePrompt asks for a title when the file name does not carry one.
func WithTitlePrompt(prompt func() (string, error)) EncodeOption {
	return func(r *encodeRun) {
		r.title = prompt
	}
}

// WithProgress is called once per converted frame. Calls are serialised.
func WithProgress(fn func(m.EncodeProgress)) EncodeOption {
	return func(r *encodeRun) {
		r.progress = fn
	}
}

type encoder struct {
	fs       adapter.ImageFSAdapter
	runner   adapter.CommandRunner
	settings m.EncodeSettings
	logger   *slog.Logger
}

// NewEncoder creates an Encoder running external tools through runner.
func NewEncoder(fs adapter.ImageFSAdapter, runner adapter.CommandRunner, settings m.EncodeSettings, logger *slog.Logger) Encoder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if settings.Threads <= 0 {
		settings.Threads = 1
	}

	if settings.TempFolder == "" {
		settings.TempFolder = m.DefaultTempFolder
	}

	return &encoder{
		fs:       fs,
		runner:   runner,
		settings: settings,
		logger:   logger,
	}
}

// ParseSequence reads the sequence layout from the path of one of its frames,
// expected as name.NNNN.exr.
func (e *encoder) ParseSequence(first m.Path) (m.ImageSequence, error) {
	return ParseSequence(first)
}

// ParseSequence is the stateless form of Encoder.ParseSequence.
func ParseSequence(first m.Path) (m.ImageSequence, error) {
	abs, err := filepath.Abs(string(first))
	if err != nil {
		return m.ImageSequence{}, fmt.Errorf("resolve %s: %w", first, err)
	}

	dir, base := filepath.Split(filepath.Clean(abs))
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	match := sequenceNamePattern.FindStringSubmatch(stem)
	if match == nil {
		return m.ImageSequence{}, fmt.Errorf("%w: %s, want name.frame.%s", m.ErrBadSequenceName, base, m.InImageExtension)
	}

	if !strings.EqualFold(ext, "."+m.InImageExtension) {
		return m.ImageSequence{}, fmt.Errorf("%w: %s, want %s", m.ErrBadExtension, base, m.InImageExtension)
	}

	seq := m.ImageSequence{
		Dir:        m.Path(filepath.Clean(dir)),
		Name:       match[1],
		StartFrame: match[2],
		SeqShot:    m.DefaultSeqShot,
	}

	if shot := seqShotPattern.FindString(seq.Name); shot != "" {
		seq.SeqShot = shot
	}

	if parts := strings.Split(seq.Name, "_"); len(parts) > 2 {
		seq.Title = parts[2]
	}

	return seq, nil
}

// NeedsTitle reports whether title has to be asked to the user.
func NeedsTitle(title string) bool {
	if title == "" {
		return true
	}

	for _, placeholder := range m.TitlesToReplace {
		if strings.EqualFold(title, placeholder) {
			return true
		}
	}

	return false
}

// SplitIntoBuckets deals items round robin into at most n buckets, so
// bucket i holds items i, i+n, i+2n and so on.
func SplitIntoBuckets[T any](items []T, n int) [][]T {
	if n <= 0 {
		n = 1
	}

	if len(items) < n {
		n = len(items)
	}

	buckets := make([][]T, n)
	for i, item := range items {
		buckets[i%n] = append(buckets[i%n], item)
	}

	return buckets
}

// Encode converts every frame of the sequence next to first, assembles the
// movie beside the frames and returns its path. The temporary folder is
// removed whether or not encoding succeeds.
func (e *encoder) Encode(ctx context.Context, first m.Path, opts ...EncodeOption) (m.Path, error) {
	run := &encodeRun{}
	for _, opt := range opts {
		opt(run)
	}

	seq, err := e.ParseSequence(first)
	if err != nil {
		return "", err
	}

	if NeedsTitle(seq.Title) && run.title != nil {
		title, err := run.title()
		if err != nil {
			return "", fmt.Errorf("read title: %w", err)
		}

		seq.Title = strings.TrimSpace(title)
	}

	frames, err := e.fs.ListFrames(seq.Dir, m.InImageExtension)
	if err != nil {
		return "", err
	}

	tempDir := m.Path(filepath.Join(string(seq.Dir), e.settings.TempFolder))
	if err := e.fs.MkdirAll(tempDir); err != nil {
		return "", fmt.Errorf("create %s: %w", tempDir, err)
	}

	defer func() {
		if err := e.fs.RemoveAll(tempDir); err != nil {
			e.logger.Warn("temporary folder not removed", "path", tempDir, "error", err)
		}
	}()

	jobs := ConversionJobs(frames, tempDir)
	e.logger.Info("converting frames", "sequence", seq.Name, "frames", len(jobs), "threads", e.settings.Threads)

	if err := e.convert(ctx, jobs, run.progress); err != nil {
		return "", err
	}

	movie := m.Path(filepath.Join(string(seq.Dir), seq.Name+"."+m.OutVideoExtension))
	overlay := m.MovieOverlay{
		Production: e.settings.Production,
		SeqShot:    seq.SeqShot,
		Title:      seq.Title,
		Artist:     e.settings.Artist,
		StartFrame: seq.StartFrame,
	}

	args := FFmpegArgs(e.settings, seq, tempDir, movie, overlay)
	if err := e.runner.Run(ctx, nil, e.settings.FFmpeg, args...); err != nil {
		return "", fmt.Errorf("generate movie: %w", err)
	}

	e.logger.Info("movie written", "path", movie)

	if e.settings.Opener != "" {
		if err := e.runner.Run(ctx, nil, e.settings.Opener, string(movie)); err != nil {
			e.logger.Warn("movie not opened", "path", movie, "error", err)
		}
	}

	return movie, nil
}

// ConversionJobs maps every frame to a png of the same name in outDir.
func ConversionJobs(frames []m.Path, outDir m.Path) []m.ConversionJob {
	jobs := make([]m.ConversionJob, 0, len(frames))

	for _, frame := range frames {
		base := filepath.Base(string(frame))
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		jobs = append(jobs, m.ConversionJob{
			In:  frame,
			Out: m.Path(filepath.Join(string(outDir), stem+"."+m.OutImageExtension)),
		})
	}

	return jobs
}

func (e *encoder) convert(ctx context.Context, jobs []m.ConversionJob, progress func(m.EncodeProgress)) error {
	env := e.ocioEnv()
	group, gctx := errgroup.WithContext(ctx)

	var (
		mu   sync.Mutex
		done int
	)

	for _, bucket := range SplitIntoBuckets(jobs, e.settings.Threads) {
		group.Go(func() error {
			for _, job := range bucket {
				if err := gctx.Err(); err != nil {
					return err
				}

				err := e.runner.Run(gctx, env, e.settings.OCIOConvert,
					string(job.In), e.settings.InProfile, string(job.Out), e.settings.OutProfile)
				if err != nil {
					return fmt.Errorf("convert %s: %w", job.In, err)
				}

				mu.Lock()
				done++
				e.logger.Debug("frame converted", "frame", job.In)

				if progress != nil {
					progress(m.EncodeProgress{Frame: job.In, Done: done, Total: len(jobs)})
				}
				mu.Unlock()
			}

			return nil
		})
	}

	return group.Wait()
}

func (e *encoder) ocioEnv() []string {
	var env []string

	if e.settings.OCIOConfig != "" {
		env = append(env, "OCIO="+e.settings.OCIOConfig)
	}

	if e.settings.OCIOLib != "" {
		if runtime.GOOS == "windows" {
			env = append(env, "PATH="+e.settings.OCIOLib)
		} else {
			env = append(env, "LD_LIBRARY_PATH="+e.settings.OCIOLib)
		}
	}

	return env
}

// Anchor places an overlay box relative to a frame corner.
type Anchor struct {
	Right  bool
	Bottom bool
}

// TextBox is one drawtext overlay.
type TextBox struct {
	Text   string
	Bold   bool
	Size   int
	X, Y   int
	Anchor Anchor
	Extra  []string
}

// DrawText renders box as an ffmpeg drawtext filter.
func DrawText(settings m.EncodeSettings, box TextBox) string {
	size := box.Size
	if size == 0 {
		size = 10
	}

	x := fmt.Sprintf("%+d", box.X)
	if box.Anchor.Right {
		x = "w-text_w" + fmt.Sprintf("%+d", -box.X)
	}

	y := fmt.Sprintf("%+d", box.Y)
	if box.Anchor.Bottom {
		y = "h-text_h" + fmt.Sprintf("%+d", -box.Y)
	}

	font := settings.FontNormal
	if box.Bold {
		font = settings.FontBold
	}

	var b strings.Builder

	b.WriteString("drawtext=")

	if font != "" {
		b.WriteString("fontfile=" + font + ":")
	}

	b.WriteString("fontcolor=white:fontsize=" + strconv.Itoa(size) + ":")
	b.WriteString("box=1:boxcolor=DarkGray:boxborderw=5:")

	for _, extra := range box.Extra {
		b.WriteString(extra + ":")
	}

	fmt.Fprintf(&b, "text='%s':x=%s:y=%s", box.Text, x, y)

	return b.String()
}

// OverlayBoxes returns the text boxes burnt into the review movie.
func OverlayBoxes(overlay m.MovieOverlay) []TextBox {
	return []TextBox{
		{Text: `Production\: ` + overlay.Production, Bold: true, Size: 12, X: 15, Y: 10},
		{Text: `Shot\: ` + overlay.SeqShot, X: 15, Y: 53},
		{Text: `Date %{localtime\:%d-%m-%Y}`, X: 15, Y: 75},
		{Text: `Content\: ` + overlay.Title, X: 15, Y: 97},
		{Text: `Artist\: ` + overlay.Artist, X: 15, Y: 119},
		{
			Text: "%{frame_num}", Bold: true, Size: 14, X: 15, Y: 10,
			Anchor: Anchor{Right: true, Bottom: true},
			Extra:  []string{"start_number=" + overlay.StartFrame},
		},
	}
}

// FFmpegArgs builds the encoder command line for the converted frames.
func FFmpegArgs(settings m.EncodeSettings, seq m.ImageSequence, frames m.Path, movie m.Path, overlay m.MovieOverlay) []string {
	input := filepath.Join(string(frames),
		fmt.Sprintf("%s.%%0%dd.%s", seq.Name, seq.Padding(), m.OutImageExtension))

	boxes := OverlayBoxes(overlay)
	filters := make([]string, 0, len(boxes))

	for _, box := range boxes {
		filters = append(filters, DrawText(settings, box))
	}

	return []string{
		"-hide_banner",
		"-loglevel", "panic",
		"-start_number", seq.StartFrame,
		"-r", settings.FrameRate,
		"-f", "image2",
		"-i", input,
		"-vf", strings.Join(filters, ", "),
		"-vcodec", settings.Codec,
		"-b:v", settings.Bitrate,
		"-y", string(movie),
	}
}
