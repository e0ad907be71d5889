package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Broadcaster is the push side of the bot: run a screen and deliver it
// to subscribed chats.
type Broadcaster interface {
	BroadcastScreen(ctx context.Context)
}

// Scheduler triggers the periodic auto-screen push. The spec uses the
// 6-field cron format (seconds first).
type Scheduler struct {
	cron   *cron.Cron
	target Broadcaster
	spec   string
	logger *logrus.Logger
}

func New(target Broadcaster, spec string, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		target: target,
		spec:   spec,
		logger: logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.WithField("schedule", s.spec).Info("Starting screen scheduler")

	_, err := s.cron.AddFunc(s.spec, func() {
		s.logger.Info("Scheduled screen push starting")
		s.target.BroadcastScreen(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	s.logger.Info("Stopping screen scheduler")
	s.cron.Stop()
}
