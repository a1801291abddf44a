package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-nas-keeper/internal/config"
	"github.com/MKhiriev/go-nas-keeper/internal/logger"
	"github.com/MKhiriev/go-nas-keeper/internal/mock"
	"github.com/MKhiriev/go-nas-keeper/internal/store"
	"github.com/MKhiriev/go-nas-keeper/internal/tui"
	"github.com/MKhiriev/go-nas-keeper/internal/workers"
	"github.com/MKhiriev/go-nas-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	run func(ctx context.Context) error
}

func (f fakeUI) Run(ctx context.Context) error { return f.run(ctx) }

type fakeCloser struct {
	closed bool
	err    error
}

func (f *fakeCloser) Close() error {
	f.closed = true
	return f.err
}

func newTestWorkers(t *testing.T, repo store.HistoryRepository) *workers.Workers {
	t.Helper()
	return workers.NewClientWorkers(config.ClientWorkers{HistoryBuffer: 4}, &store.ClientStorages{History: repo}, logger.Nop())
}

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(nil, &workers.Workers{}, nil, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(fakeUI{}, nil, nil, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name     string
		uiErr    error
		closeErr error
		wantErr  bool
	}{
		{name: "normal exit"},
		{name: "user quit", uiErr: tui.ErrUserQuit},
		{name: "ui failure", uiErr: errors.New("no tty"), wantErr: true},
		{name: "close failure", closeErr: errors.New("database is locked"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			closer := &fakeCloser{err: tt.closeErr}
			ui := fakeUI{run: func(context.Context) error { return tt.uiErr }}

			a, err := NewApp(ui, newTestWorkers(t, mock.NewMockHistoryRepository(ctrl)), closer, logger.Nop())
			require.NoError(t, err)

			err = a.Run(context.Background())

			assert.Equal(t, tt.wantErr, err != nil)
			assert.True(t, closer.closed)
		})
	}
}

func TestApp_Run_FlushesHistoryBeforeClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockHistoryRepository(ctrl)
	ws := newTestWorkers(t, repo)
	closer := &fakeCloser{}

	repo.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.HistoryEntry) error {
			assert.False(t, closer.closed, "history is written before storages close")
			assert.Equal(t, "nas", entry.Host)
			assert.Equal(t, "df -h", entry.Command)
			return nil
		})

	ui := fakeUI{run: func(context.Context) error {
		ws.History.ForHost("nas").Record("df -h")
		return nil
	}}

	a, err := NewApp(ui, ws, closer, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, a.Run(context.Background()))
	assert.True(t, closer.closed)
}
