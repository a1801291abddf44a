package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-nas-keeper/internal/logger"
	"github.com/MKhiriev/go-nas-keeper/internal/mock"
	"github.com/MKhiriev/go-nas-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHistoryService_Preload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockHistoryRepository(ctrl)
	svc := NewHistoryService(repo, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().Recent(ctx, "nas.local", 3).Return([]models.HistoryEntry{
		{ID: 1, Host: "nas.local", Command: "uptime"},
		{ID: 2, Host: "nas.local", Command: "df -h"},
	}, nil)

	got, err := svc.Preload(ctx, "nas.local", 3)

	require.NoError(t, err)
	assert.Equal(t, []string{"uptime", "df -h"}, got)
}

func TestHistoryService_Preload_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockHistoryRepository(ctrl)
	svc := NewHistoryService(repo, logger.Nop())
	repo.EXPECT().Recent(gomock.Any(), "nas.local", 0).Return(nil, nil)

	got, err := svc.Preload(context.Background(), "nas.local", 0)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHistoryService_Preload_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockHistoryRepository(ctrl)
	svc := NewHistoryService(repo, logger.Nop())
	dbErr := errors.New("database is locked")
	repo.EXPECT().Recent(gomock.Any(), "nas.local", 10).Return(nil, dbErr)

	got, err := svc.Preload(context.Background(), "nas.local", 10)

	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, got)
}

func TestHistoryService_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockHistoryRepository(ctrl)
	svc := NewHistoryService(repo, logger.Nop())
	dbErr := errors.New("boom")

	gomock.InOrder(
		repo.EXPECT().Clear(gomock.Any(), "nas.local").Return(nil),
		repo.EXPECT().Clear(gomock.Any(), "").Return(dbErr),
	)

	require.NoError(t, svc.Clear(context.Background(), "nas.local"))
	assert.ErrorIs(t, svc.Clear(context.Background(), ""), dbErr)
}

func TestAppInfoService(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("v1.2.0", "2026-10-01", "abc123"))
	assert.Equal(t, "v1.2.0", svc.Version())
	assert.Equal(t, "abc123", svc.BuildInfo().BuildCommit())

	assert.Equal(t, "N/A", NewAppInfoService(models.AppBuildInfo{}).Version())
}
