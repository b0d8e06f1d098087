package main

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	// wizardIdle shu vaqtdan ortiq ishlatilmagan wizardlar yopiladi
	wizardIdle = 2 * time.Hour
	// chatRetention oxirgi xabari bundan eski chat sessiyalari o'chiriladi
	chatRetention = 7 * 24 * time.Hour
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// newScheduler sessiya, wizard va chat tarixini tozalash vazifalari
func newScheduler(a *app) (*cron.Cron, error) {
	sched := cron.New(cron.WithLocation(time.Local), cron.WithParser(cronParser))

	if _, err := sched.AddFunc("@every 10m", func() { purgeSessions(a) }); err != nil {
		return nil, err
	}
	if _, err := sched.AddFunc("@every 15m", func() { purgeWizards(a) }); err != nil {
		return nil, err
	}
	if _, err := sched.AddFunc("@every 1h", func() { purgeChats(a) }); err != nil {
		return nil, err
	}
	return sched, nil
}

func purgeSessions(a *app) {
	defer recoverJob("purge sessions")
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	purged, err := a.repos.sessions.PurgeExpired(ctx)
	if err != nil {
		zap.S().Errorw("purge sessions failed", "error", err)
		return
	}
	if purged > 0 {
		zap.S().Infow("expired sessions purged", "count", purged)
	}
}

func purgeWizards(a *app) {
	defer recoverJob("purge wizards")
	if purged := a.builder.PurgeWizards(wizardIdle); purged > 0 {
		zap.S().Infow("idle wizards closed", "count", purged)
	}
}

func purgeChats(a *app) {
	defer recoverJob("purge chats")
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	purged, err := a.repos.chats.PurgeBefore(ctx, time.Now().Add(-chatRetention))
	if err != nil {
		zap.S().Errorw("purge chats failed", "error", err)
		return
	}
	if purged > 0 {
		zap.S().Infow("stale chat sessions purged", "count", purged)
	}
}

func recoverJob(name string) {
	if r := recover(); r != nil {
		zap.S().Errorw("job panic", "job", name, "recover", r)
	}
}
