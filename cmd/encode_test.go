package cmd

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"

	"github.com/nwave-fx/fxpipe/internal/adapter"
	"github.com/nwave-fx/fxpipe/internal/controller"
	controllermocks "github.com/nwave-fx/fxpipe/internal/controller/mocks"
	"github.com/nwave-fx/fxpipe/internal/domain"
	domainmocks "github.com/nwave-fx/fxpipe/internal/domain/mocks"
	m "github.com/nwave-fx/fxpipe/internal/model"
)

const firstFrame = m.Path("/renders/fx_010_0020_smoke_v003.1001.exr")

// useEncoder makes the encode command run enc and records the settings it
// was built with.
func useEncoder(t *testing.T, enc domain.Encoder) *m.EncodeSettings {
	t.Helper()

	captured := &m.EncodeSettings{}
	original := newEncoder
	newEncoder = func(_ adapter.ImageFSAdapter, _ adapter.CommandRunner, settings m.EncodeSettings, _ *slog.Logger) domain.Encoder {
		*captured = settings

		return enc
	}

	t.Cleanup(func() { newEncoder = original })

	return captured
}

func TestEncodeCmd_Flags(t *testing.T) {
	mockUI := controllermocks.NewMockUI(t)
	useUI(t, func(*cobra.Command) controller.UI { return mockUI })

	mockEncoder := domainmocks.NewMockEncoder(t)
	settings := useEncoder(t, mockEncoder)

	seq := m.ImageSequence{Dir: "/renders", Name: "fx_010_0020_smoke_v003", StartFrame: "1001", SeqShot: "010_0020", Title: "smoke"}
	movie := m.Path("/renders/fx_010_0020_smoke_v003.mov")

	mockEncoder.EXPECT().ParseSequence(firstFrame).Return(seq, nil)
	mockUI.EXPECT().Start(mock.Anything).Return(nil)
	mockUI.EXPECT().DisplayEncodeStart(seq, 8).Return()
	mockEncoder.EXPECT().Encode(mock.Anything, firstFrame, mock.Anything, mock.Anything).Return(movie, nil)
	mockUI.EXPECT().DisplayEncodeDone(movie, nil).Return()
	mockUI.EXPECT().Wait().Return()

	if _, _, err := execute(t, newEncodeCmd(), string(firstFrame), "-c", "8", "-p", "Badger", "--artist", "jo"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if settings.Threads != 8 || settings.Production != "Badger" || settings.Artist != "jo" {
		t.Fatalf("settings = %+v, want flags applied", *settings)
	}

	if settings.Opener != "" {
		t.Fatalf("Opener = %q, want empty without --open", settings.Opener)
	}
}

func TestEncodeCmd_PromptsForTitle(t *testing.T) {
	mockUI := controllermocks.NewMockUI(t)
	useUI(t, func(*cobra.Command) controller.UI { return mockUI })

	mockEncoder := domainmocks.NewMockEncoder(t)
	useEncoder(t, mockEncoder)

	frame := m.Path("/renders/fx_010_0020_masterlayer.1001.exr")
	seq := m.ImageSequence{Dir: "/renders", Name: "fx_010_0020_masterlayer", StartFrame: "1001", SeqShot: "010_0020", Title: "masterlayer"}
	prompted := seq
	prompted.Title = "dust"

	mockEncoder.EXPECT().ParseSequence(frame).Return(seq, nil)
	mockUI.EXPECT().PromptTitle().Return("dust", nil)
	mockUI.EXPECT().Start(mock.Anything).Return(nil)
	mockUI.EXPECT().DisplayEncodeStart(prompted, m.DefaultThreads).Return()
	mockEncoder.EXPECT().Encode(mock.Anything, frame, mock.Anything, mock.Anything).
		Return("/renders/fx_010_0020_masterlayer.mov", nil)
	mockUI.EXPECT().DisplayEncodeDone(m.Path("/renders/fx_010_0020_masterlayer.mov"), nil).Return()
	mockUI.EXPECT().Wait().Return()

	if _, _, err := execute(t, newEncodeCmd(), string(frame)); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
}

func TestEncodeCmd_Errors(t *testing.T) {
	t.Run("bad sequence name", func(t *testing.T) {
		mockUI := controllermocks.NewMockUI(t)
		useUI(t, func(*cobra.Command) controller.UI { return mockUI })

		mockEncoder := domainmocks.NewMockEncoder(t)
		useEncoder(t, mockEncoder)

		mockEncoder.EXPECT().ParseSequence(m.Path("movie.mov")).Return(m.ImageSequence{}, m.ErrBadExtension)

		_, _, err := execute(t, newEncodeCmd(), "movie.mov")
		if !errors.Is(err, m.ErrBadExtension) {
			t.Fatalf("Execute() error = %v, want ErrBadExtension", err)
		}
	})

	t.Run("prompt failure", func(t *testing.T) {
		mockUI := controllermocks.NewMockUI(t)
		useUI(t, func(*cobra.Command) controller.UI { return mockUI })

		mockEncoder := domainmocks.NewMockEncoder(t)
		useEncoder(t, mockEncoder)

		promptErr := errors.New("input closed")
		mockEncoder.EXPECT().ParseSequence(firstFrame).Return(m.ImageSequence{Name: "fx", Title: ""}, nil)
		mockUI.EXPECT().PromptTitle().Return("", promptErr)

		if _, _, err := execute(t, newEncodeCmd(), string(firstFrame)); !errors.Is(err, promptErr) {
			t.Fatalf("Execute() error = %v, want %v", err, promptErr)
		}
	})

	t.Run("encode failure reported", func(t *testing.T) {
		mockUI := controllermocks.NewMockUI(t)
		useUI(t, func(*cobra.Command) controller.UI { return mockUI })

		mockEncoder := domainmocks.NewMockEncoder(t)
		useEncoder(t, mockEncoder)

		encodeErr := errors.New("ffmpeg: exit status 1")
		seq := m.ImageSequence{Name: "fx_010_0020_smoke_v003", Title: "smoke"}

		mockEncoder.EXPECT().ParseSequence(firstFrame).Return(seq, nil)
		mockUI.EXPECT().Start(mock.Anything).Return(nil)
		mockUI.EXPECT().DisplayEncodeStart(seq, m.DefaultThreads).Return()
		mockEncoder.EXPECT().Encode(mock.Anything, firstFrame, mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, _ m.Path, _ ...domain.EncodeOption) (m.Path, error) {
				return "", encodeErr
			})
		mockUI.EXPECT().DisplayEncodeDone(m.Path(""), encodeErr).Return()
		mockUI.EXPECT().Wait().Return()

		if _, _, err := execute(t, newEncodeCmd(), string(firstFrame)); !errors.Is(err, encodeErr) {
			t.Fatalf("Execute() error = %v, want %v", err, encodeErr)
		}
	})
}

func TestEncodeCmd_SimpleUIOutput(t *testing.T) {
	useSimpleUI(t)

	mockEncoder := domainmocks.NewMockEncoder(t)
	useEncoder(t, mockEncoder)

	seq := m.ImageSequence{Name: "fx_010_0020_smoke_v003", SeqShot: "010_0020", Title: "smoke"}

	mockEncoder.EXPECT().ParseSequence(firstFrame).Return(seq, nil)
	mockEncoder.EXPECT().Encode(mock.Anything, firstFrame, mock.Anything, mock.Anything).
		Return("/renders/fx_010_0020_smoke_v003.mov", nil)

	out, _, err := execute(t, newEncodeCmd(), string(firstFrame), "--threads", "4")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{
		"Encoding fx_010_0020_smoke_v003 (shot 010_0020, content smoke) with 4 worker(s)",
		"Movie written to /renders/fx_010_0020_smoke_v003.mov",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, out)
		}
	}
}
