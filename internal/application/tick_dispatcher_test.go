package application

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/mcarrasqub/itimer/internal/domain"
	"github.com/mcarrasqub/itimer/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestTickDispatcherSwallowsFailuresAndLogsAtDebug(t *testing.T) {
	t.Parallel()

	reporter := mocks.NewMockTickReporter(t)
	reporter.EXPECT().ReportTick(mock.Anything, "42", 8, "csrf-1").
		Return(domain.TickReply{}, errors.New("connection refused")).Once()

	var logs bytes.Buffer
	dispatcher := NewTickDispatcher(reporter, debugLogger(&logs))

	dispatcher.Dispatch(context.Background(), "42", 8, "csrf-1")
	dispatcher.Wait()

	assert.Contains(t, logs.String(), "level=DEBUG")
	assert.Contains(t, logs.String(), "tick_report_failed")
	assert.Contains(t, logs.String(), "connection refused")
}

func TestTickDispatcherOutlivesCanceledContext(t *testing.T) {
	t.Parallel()

	reporter := mocks.NewMockTickReporter(t)
	reporter.EXPECT().ReportTick(mock.Anything, "42", 8, "").
		Run(func(ctx context.Context, _ string, _ int, _ string) {
			assert.NoError(t, ctx.Err())
		}).
		Return(domain.TickReply{Success: true, Status: "RUNNING"}, nil).Once()

	var logs bytes.Buffer
	dispatcher := NewTickDispatcher(reporter, debugLogger(&logs))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dispatcher.Dispatch(ctx, "42", 8, "")
	dispatcher.Wait()

	assert.Contains(t, logs.String(), "tick_reported")
	assert.Contains(t, logs.String(), "status=RUNNING")
}

func TestTickDispatcherDoesNotBlockCaller(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	reporter := mocks.NewMockTickReporter(t)
	reporter.EXPECT().ReportTick(mock.Anything, "42", 8, "").
		RunAndReturn(func(context.Context, string, int, string) (domain.TickReply, error) {
			<-release
			return domain.TickReply{Success: true}, nil
		}).Once()

	dispatcher := NewTickDispatcher(reporter, nil)
	dispatcher.Dispatch(context.Background(), "42", 8, "")

	close(release)
	dispatcher.Wait()
}
