package utils

import (
	"github.com/robfig/cron/v3"
)

// StartCron schedules job under spec ("@every 30s", "*/1 * * * *") and
// starts the scheduler. Callers stop it with the returned Cron.
func StartCron(spec, name string, job func()) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		Log.Debug("cron job running", "job", name)
		job()
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	Log.Info("cron job scheduled", "job", name, "spec", spec)
	return c, nil
}
