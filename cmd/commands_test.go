package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mouse-blink/fretmap/internal/domain"
	m "github.com/mouse-blink/fretmap/internal/model"
	"github.com/mouse-blink/fretmap/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBoardCmd_PassesHighlight(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("Board", domain.BoardArgs{
		Config: m.DefaultConfig(),
		Note:   "C",
		Chord:  "EM",
	}).Return(nil)

	cmd := newTestRoot(newBoardCmd())
	cmd.SetArgs([]string{"--config", writeConfig(t, ""), "board", "--note", "C", "--chord", "EM"})
	require.NoError(t, cmd.Execute())
}

func TestNoteCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("Note", domain.NoteArgs{Config: m.DefaultConfig(), String: 1, Fret: 8}).Return(nil)

	cmd := newTestRoot(newNoteCmd())
	cmd.SetArgs([]string{"--config", writeConfig(t, ""), "note", "1", "8"})
	require.NoError(t, cmd.Execute())
}

func TestNoteCmd_RejectsBadArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "string not a number", args: []string{"note", "one", "8"}},
		{name: "fret not a number", args: []string{"note", "1", "eight"}},
		{name: "missing fret", args: []string{"note", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withMockWorkflow(t)

			cmd := newTestRoot(newNoteCmd())
			cmd.SetArgs(append([]string{"--config", writeConfig(t, "")}, tt.args...))
			require.Error(t, cmd.Execute())
		})
	}
}

func TestNoteCmd_PropagatesDomainError(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("Note", mock.Anything).Return(domain.ErrOutOfRange)

	cmd := newTestRoot(newNoteCmd())
	cmd.SetArgs([]string{"--config", writeConfig(t, ""), "note", "1", "15"})
	require.ErrorIs(t, cmd.Execute(), domain.ErrOutOfRange)
}

func TestScaleCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("Scale", domain.ScaleArgs{Config: m.DefaultConfig(), Note: "Db"}).Return(nil)

	cmd := newTestRoot(newScaleCmd())
	cmd.SetArgs([]string{"--config", writeConfig(t, ""), "scale", "Db"})
	require.NoError(t, cmd.Execute())
}

func TestChordCmd(t *testing.T) {
	for _, spec := range []string{"CM", "Cm", "C+", "C-"} {
		t.Run(spec, func(t *testing.T) {
			mockWorkflow := withMockWorkflow(t)

			mockWorkflow.On("Chord", domain.ChordArgs{Config: m.DefaultConfig(), Chord: spec}).Return(nil)

			cmd := newTestRoot(newChordCmd())
			cmd.SetArgs([]string{"--config", writeConfig(t, ""), "chord", spec})
			require.NoError(t, cmd.Execute())
		})
	}
}

func TestChordsCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("Chords").Return(nil)

	cmd := newTestRoot(newChordsCmd())
	cmd.SetArgs([]string{"chords"})
	require.NoError(t, cmd.Execute())
}

func TestServeCmd_UsesConfiguredAddress(t *testing.T) {
	withMockWorkflow(t)

	var gotAddr string

	original := runServer
	runServer = func(_ context.Context, srv *server.Server, addr string) error {
		assert.NotNil(t, srv)

		gotAddr = addr

		return nil
	}

	defer func() { runServer = original }()

	cmd := newTestRoot(newServeCmd())
	cmd.SetArgs([]string{"--config", writeConfig(t, "server:\n  address: 127.0.0.1:9000\n"), "serve"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "127.0.0.1:9000", gotAddr)

	cmd = newTestRoot(newServeCmd())
	cmd.SetArgs([]string{"--config", writeConfig(t, ""), "serve", "--addr", ":9999"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, ":9999", gotAddr)
}

func TestServeCmd_InvalidTuningFailsBeforeListening(t *testing.T) {
	withMockWorkflow(t)

	called := false

	original := runServer
	runServer = func(context.Context, *server.Server, string) error {
		called = true

		return errors.New("unexpected")
	}

	defer func() { runServer = original }()

	cmd := newTestRoot(newServeCmd())
	cmd.SetArgs([]string{"--config", writeConfig(t, ""), "--tuning", "E,X", "serve"})
	require.ErrorIs(t, cmd.Execute(), domain.ErrInvalidTuning)
	assert.False(t, called)
}

func TestServeCmd_GinMode(t *testing.T) {
	withMockWorkflow(t)

	originalMode := gin.Mode()
	t.Cleanup(func() { gin.SetMode(originalMode) })

	original := runServer
	runServer = func(context.Context, *server.Server, string) error { return nil }

	defer func() { runServer = original }()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "release by default", args: []string{"serve"}, want: gin.ReleaseMode},
		{name: "debug when verbose", args: []string{"--verbose", "serve"}, want: gin.DebugMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verboseFlag = false
			t.Cleanup(func() { verboseFlag = false })

			cmd := newTestRoot(newServeCmd())
			cmd.SetArgs(append([]string{"--config", writeConfig(t, "")}, tt.args...))
			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.want, gin.Mode())
		})
	}
}

func TestServeCmd_RejectsFretsAboveLimit(t *testing.T) {
	withMockWorkflow(t)

	called := false

	original := runServer
	runServer = func(context.Context, *server.Server, string) error {
		called = true

		return nil
	}

	defer func() { runServer = original }()

	cmd := newTestRoot(newServeCmd())
	cmd.SetArgs([]string{"--config", writeConfig(t, ""), "--frets", "1000000000", "serve"})
	require.ErrorIs(t, cmd.Execute(), domain.ErrInvalidTuning)
	assert.False(t, called)
}
